package app

import (
	"os"

	"github.com/kyaoi/mdreader/internal/article"
	"github.com/kyaoi/mdreader/internal/config"
	"github.com/kyaoi/mdreader/internal/ui"
)

// LoadInitialState analyses the target path and prepares the UI state. A
// directory becomes a library of every markdown file below it; tag narrows it
// to the articles carrying that tag.
func LoadInitialState(target, tag string, cfg *config.Config) (ui.State, error) {
	info, err := os.Stat(target)
	if err != nil {
		return ui.State{}, err
	}

	var lib *article.Library
	if info.IsDir() {
		lib, err = article.Scan(target)
	} else {
		lib, err = article.Single(target)
	}
	if err != nil {
		return ui.State{}, err
	}

	if tag != "" {
		lib, err = lib.WithTag(tag)
		if err != nil {
			return ui.State{}, err
		}
	}

	return ui.State{
		Library:    lib,
		Filter:     tag,
		PanelWidth: cfg.Panel.Width,
		CellPixels: cfg.Reader.CellPixels,
		Watch:      cfg.Reader.Watch,
	}, nil
}
