package app

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/mdreader/internal/article"
	"github.com/kyaoi/mdreader/internal/config"
)

func TestLoadInitialStateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.md")
	require.NoError(t, os.WriteFile(path, []byte("# post"), 0o644))

	state, err := LoadInitialState(path, "", config.Default())
	require.NoError(t, err)
	assert.Equal(t, 1, state.Library.Len())
	assert.Equal(t, 44, state.PanelWidth)
	assert.Equal(t, 10, state.CellPixels)
	assert.True(t, state.Watch)
}

func TestLoadInitialStateDirectoryWithTag(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("---\ntags: [daily]\n---\na"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.md"), []byte("b"), 0o644))

	state, err := LoadInitialState(dir, "daily", config.Default())
	require.NoError(t, err)
	require.Equal(t, 1, state.Library.Len())
	assert.Equal(t, "a.md", state.Library.Entries[0].Rel)
	assert.Equal(t, "daily", state.Filter)

	_, err = LoadInitialState(dir, "weekly", config.Default())
	assert.ErrorIs(t, err, article.ErrNoTagMatch)
}

func TestLoadInitialStateMissingTarget(t *testing.T) {
	_, err := LoadInitialState(filepath.Join(t.TempDir(), "nope"), "", config.Default())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PrintCatalog(&buf))
	out := buf.String()
	assert.Contains(t, out, "fontFamily")
	assert.Contains(t, out, "Cormorant Garamond")
	assert.Contains(t, out, "1394px")
}
