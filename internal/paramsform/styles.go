package paramsform

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	panelBorderColor = lipgloss.Color("#7aa2f7")
	panelStyle       = lipgloss.NewStyle().
				Padding(1, 2).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(panelBorderColor)
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#c0caf5")).
			Bold(true)
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a9b1d6"))
	valueFocusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1a1b26")).
			Background(lipgloss.Color("#7aa2f7")).
			Bold(true)
	optionCursorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#c0caf5")).
				Background(lipgloss.Color("#283457"))
	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#3b4261"))
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a9b1d6"))
	buttonFocusStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1a1b26")).
				Background(lipgloss.Color("#9ece6a")).
				Bold(true)
	toggleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1a1b26")).
			Background(lipgloss.Color("#7aa2f7")).
			Bold(true)
)

// swatch renders a two-cell color sample for hex option values and an empty
// string for anything else.
func swatch(value string) string {
	c, err := colorful.Hex(value)
	if err != nil {
		return ""
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(contrastColor(c)).
		Render("  ") + " "
}

// contrastColor picks black or white text for a background color.
func contrastColor(c colorful.Color) lipgloss.Color {
	l, _, _ := c.Lab()
	if l > 0.6 {
		return lipgloss.Color("#000000")
	}
	return lipgloss.Color("#ffffff")
}
