package article

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/mdreader/internal/articleprops"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestParseFrontMatter(t *testing.T) {
	raw := "---\ntitle: Hello\ntags: [go, tui]\n---\n# Body\n"
	meta, body, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Equal(t, "Hello", meta.Title)
	assert.Equal(t, []string{"go", "tui"}, meta.Tags)
	assert.Equal(t, "# Body", strings.TrimSpace(body))
}

func TestParseWithoutFrontMatter(t *testing.T) {
	raw := "# Only body\n"
	meta, body, err := Parse([]byte(raw))
	require.NoError(t, err)
	assert.Empty(t, meta.Title)
	assert.Equal(t, raw, body)
}

func TestLoadFallsBackToFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")
	writeFile(t, path, "text")

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "notes", doc.Meta.Title)
	assert.Equal(t, "text", doc.Body)
}

func TestScanSkipsVCSDirsAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.md"), "b")
	writeFile(t, filepath.Join(dir, "A.md"), "a")
	writeFile(t, filepath.Join(dir, "sub", "c.mdx"), "c")
	writeFile(t, filepath.Join(dir, ".git", "ignored.md"), "x")
	writeFile(t, filepath.Join(dir, "readme.txt"), "x")

	lib, err := Scan(dir)
	require.NoError(t, err)

	var rels []string
	for _, e := range lib.Entries {
		rels = append(rels, e.Rel)
	}
	assert.Equal(t, []string{"A.md", "b.md", "sub/c.mdx"}, rels)
	assert.Equal(t, 3, lib.Len())
}

func TestScanEmptyDirectory(t *testing.T) {
	_, err := Scan(t.TempDir())
	assert.ErrorIs(t, err, ErrNoArticles)
}

func TestWithTag(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "one.md"), "---\ntags: [Go]\n---\none")
	writeFile(t, filepath.Join(dir, "two.md"), "---\ntags: [rust]\n---\ntwo")

	lib, err := Scan(dir)
	require.NoError(t, err)

	tagged, err := lib.WithTag("go")
	require.NoError(t, err)
	require.Equal(t, 1, tagged.Len())
	assert.Equal(t, "one.md", tagged.Entries[0].Rel)

	_, err = lib.WithTag("zig")
	assert.ErrorIs(t, err, ErrNoTagMatch)
}

func TestSingle(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "solo.md")
	writeFile(t, path, "---\ntitle: Solo\n---\nbody")

	lib, err := Single(path)
	require.NoError(t, err)
	require.Equal(t, 1, lib.Len())
	assert.Equal(t, "Solo", lib.Entries[0].Meta.Title)
}

func TestThemeForDefault(t *testing.T) {
	theme, err := ThemeFor(articleprops.Default(), 0)
	require.NoError(t, err)

	assert.Equal(t, "#000000", theme.Foreground)
	assert.Equal(t, "#ffffff", theme.Background)
	assert.Equal(t, uint(1), theme.Margin)
	assert.Equal(t, 139, theme.Columns)
	require.NotNil(t, theme.Style.Document.Color)
	assert.Equal(t, "#000000", *theme.Style.Document.Color)
}

func TestThemeForDoesNotTouchSharedStyles(t *testing.T) {
	state := articleprops.Default()
	green, _ := articleprops.Lookup(articleprops.FontColor, "#80D994")
	_, err := ThemeFor(state.With(articleprops.FontColor, green), 10)
	require.NoError(t, err)

	again, err := ThemeFor(state, 10)
	require.NoError(t, err)
	assert.Equal(t, "#000000", *again.Style.Document.Color)
}

func TestThemeSizesAndWidths(t *testing.T) {
	state := articleprops.Default()
	big, _ := articleprops.Lookup(articleprops.FontSize, "38px")
	narrow, _ := articleprops.Lookup(articleprops.ContentWidth, "948px")

	theme, err := ThemeFor(state.With(articleprops.FontSize, big).With(articleprops.ContentWidth, narrow), 10)
	require.NoError(t, err)
	assert.Equal(t, uint(3), theme.Margin)
	assert.Equal(t, 94, theme.Columns)

	assert.Equal(t, 94, theme.WrapWidth(200))
	assert.Equal(t, 60, theme.WrapWidth(60))
	assert.Equal(t, 0, theme.WrapWidth(0))
}

func TestThemeRejectsMalformedValues(t *testing.T) {
	state := articleprops.Default().With(articleprops.ContentWidth, articleprops.Option{Value: "wide"})
	_, err := ThemeFor(state, 10)
	assert.ErrorContains(t, err, "content width")

	state = articleprops.Default().With(articleprops.FontColor, articleprops.Option{Value: "green"})
	_, err = ThemeFor(state, 10)
	assert.ErrorContains(t, err, "font color")
}

func TestThemeRenderer(t *testing.T) {
	theme, err := ThemeFor(articleprops.Default(), 10)
	require.NoError(t, err)

	r, err := theme.Renderer(80)
	require.NoError(t, err)
	out, err := r.Render("# Title\n\nparagraph")
	require.NoError(t, err)
	assert.Contains(t, out, "paragraph")
}
