package ui

import (
	"github.com/rs/zerolog"

	"github.com/kyaoi/mdreader/internal/article"
)

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Library    *article.Library
	Active     int
	Filter     string
	PanelWidth int
	CellPixels int
	Watch      bool
	Logger     zerolog.Logger
}
