package article

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	gansi "github.com/charmbracelet/glamour/ansi"
	styles "github.com/charmbracelet/glamour/styles"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/kyaoi/mdreader/internal/articleprops"
)

// DefaultCellPixels is the assumed width of one terminal column in pixels.
const DefaultCellPixels = 10

// A terminal cannot switch typefaces, so each family picks the glamour style
// whose headings and emphasis come closest to its character.
var familyStyles = map[string]gansi.StyleConfig{
	"open-sans":          styles.DarkStyleConfig,
	"ubuntu":             styles.DraculaStyleConfig,
	"cormorant-garamond": styles.TokyoNightStyleConfig,
	"days-one":           styles.PinkStyleConfig,
	"merriweather":       styles.LightStyleConfig,
}

// Theme is an ArticleState translated to terminal rendering terms.
type Theme struct {
	Style      gansi.StyleConfig
	Foreground string
	Background string
	Margin     uint
	Columns    int
}

// ThemeFor builds the theme for state. cellPixels converts the content width
// option into columns; values below one fall back to DefaultCellPixels.
func ThemeFor(state articleprops.ArticleState, cellPixels int) (Theme, error) {
	if cellPixels < 1 {
		cellPixels = DefaultCellPixels
	}

	fg, err := normalizeHex(state.FontColor.Value)
	if err != nil {
		return Theme{}, fmt.Errorf("font color: %w", err)
	}
	bg, err := normalizeHex(state.BackgroundColor.Value)
	if err != nil {
		return Theme{}, fmt.Errorf("background color: %w", err)
	}
	size, err := parsePixels(state.FontSize.Value)
	if err != nil {
		return Theme{}, fmt.Errorf("font size: %w", err)
	}
	width, err := parsePixels(state.ContentWidth.Value)
	if err != nil {
		return Theme{}, fmt.Errorf("content width: %w", err)
	}

	style, ok := familyStyles[state.FontFamily.ClassName]
	if !ok {
		style = styles.DarkStyleConfig
	}
	margin := uint(min(max(size/12, 1), 4))

	style.Document.Color = &fg
	style.Document.BackgroundColor = &bg
	style.Document.Margin = &margin

	return Theme{
		Style:      style,
		Foreground: fg,
		Background: bg,
		Margin:     margin,
		Columns:    width / cellPixels,
	}, nil
}

// WrapWidth returns the columns to wrap at inside a viewport of the given
// width.
func (t Theme) WrapWidth(available int) int {
	if available <= 0 {
		return 0
	}
	if t.Columns <= 0 || t.Columns > available {
		return available
	}
	return t.Columns
}

// Renderer returns a glamour renderer for a viewport of the given width.
func (t Theme) Renderer(available int) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStyles(t.Style),
		glamour.WithWordWrap(t.WrapWidth(available)),
	)
}

func normalizeHex(value string) (string, error) {
	c, err := colorful.Hex(value)
	if err != nil {
		return "", fmt.Errorf("%q: %w", value, err)
	}
	return c.Hex(), nil
}

func parsePixels(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(value), "px"))
	if err != nil {
		return 0, fmt.Errorf("%q is not a pixel size", value)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%q must be positive", value)
	}
	return n, nil
}
