package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/kyaoi/mdreader/internal/articleprops"
)

// PrintCatalog writes every field's options as a table, marking defaults.
func PrintCatalog(w io.Writer) error {
	def := articleprops.Default()
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("field", "title", "value", "default")
	for _, f := range articleprops.Fields() {
		for _, opt := range f.Options() {
			mark := ""
			if opt == def.Get(f) {
				mark = "*"
			}
			t.Row(f.String(), opt.Title, opt.Value, mark)
		}
	}
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
