// Package article loads markdown articles and turns the reader settings into
// a rendering theme for them.
package article

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// Meta is the front matter understood by the reader.
type Meta struct {
	Title string   `yaml:"title" toml:"title"`
	Tags  []string `yaml:"tags" toml:"tags"`
}

// HasTag reports whether the article carries tag, ignoring case.
func (m Meta) HasTag(tag string) bool {
	tag = strings.TrimSpace(tag)
	for _, t := range m.Tags {
		if strings.EqualFold(strings.TrimSpace(t), tag) {
			return true
		}
	}
	return false
}

// Document is a parsed article.
type Document struct {
	Path string
	Meta Meta
	Body string
}

// Parse splits raw into front matter and markdown body. Input without front
// matter is returned unchanged as the body.
func Parse(raw []byte) (Meta, string, error) {
	var meta Meta
	rest, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return Meta{}, "", fmt.Errorf("parse front matter: %w", err)
	}
	return meta, string(rest), nil
}

// Load reads and parses the article at path.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}
	meta, body, err := Parse(data)
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", path, err)
	}
	if meta.Title == "" {
		meta.Title = titleFromPath(path)
	}
	return Document{Path: path, Meta: meta, Body: body}, nil
}

func titleFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
