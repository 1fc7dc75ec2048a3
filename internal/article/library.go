package article

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrNoArticles is returned when a directory holds no markdown files.
	ErrNoArticles = errors.New("no markdown articles found")
	// ErrNoTagMatch is returned when no article carries the requested tag.
	ErrNoTagMatch = errors.New("no article matches tag")
)

// Entry is one article of a library.
type Entry struct {
	Path string
	Rel  string
	Meta Meta
}

// Library is an ordered set of articles below a root directory.
type Library struct {
	Root    string
	Entries []Entry
}

// Single returns a library holding only the file at path.
func Single(path string) (*Library, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	doc, err := Load(abs)
	if err != nil {
		return nil, err
	}
	return &Library{
		Root:    filepath.Dir(abs),
		Entries: []Entry{{Path: abs, Rel: filepath.Base(abs), Meta: doc.Meta}},
	}, nil
}

// Scan collects every markdown file below root.
func Scan(root string) (*Library, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	lib := &Library{Root: abs}
	err = filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != abs && shouldSkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !isMarkdown(d.Name()) {
			return nil
		}
		doc, err := Load(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			return err
		}
		lib.Entries = append(lib.Entries, Entry{Path: path, Rel: filepath.ToSlash(rel), Meta: doc.Meta})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", abs, err)
	}
	if len(lib.Entries) == 0 {
		return nil, fmt.Errorf("%s: %w", abs, ErrNoArticles)
	}

	sort.Slice(lib.Entries, func(i, j int) bool {
		return strings.ToLower(lib.Entries[i].Rel) < strings.ToLower(lib.Entries[j].Rel)
	})
	return lib, nil
}

// WithTag returns the articles tagged with tag.
func (l *Library) WithTag(tag string) (*Library, error) {
	filtered := &Library{Root: l.Root}
	for _, e := range l.Entries {
		if e.Meta.HasTag(tag) {
			filtered.Entries = append(filtered.Entries, e)
		}
	}
	if len(filtered.Entries) == 0 {
		return nil, fmt.Errorf("%q: %w", tag, ErrNoTagMatch)
	}
	return filtered, nil
}

// Len returns the number of articles.
func (l *Library) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Entries)
}

func shouldSkipDir(name string) bool {
	switch strings.ToLower(name) {
	case ".git", "node_modules", ".hg", ".svn", ".idea", ".vscode":
		return true
	default:
		return false
	}
}

func isMarkdown(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".mdx")
}
