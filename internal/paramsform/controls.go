package paramsform

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/kyaoi/mdreader/internal/articleprops"
)

// Binding connects a control to one field: the value flows down through
// Value and changes flow back up through OnChange.
type Binding struct {
	Value    func() articleprops.Option
	OnChange func(articleprops.Option)
}

// Control is a single-choice input shown in the panel. Coordinates passed to
// HandleClick are relative to the control's top-left cell.
type Control interface {
	Title() string
	Height() int
	View(width int, focused bool) string
	HandleKey(msg tea.KeyMsg, keys KeyMap) bool
	HandleClick(x, y int) bool
	Blur()
}

// Select is a dropdown: one line showing the current value which expands into
// the option list.
type Select struct {
	title    string
	options  []articleprops.Option
	bind     Binding
	expanded bool
	cursor   int
}

// NewSelect builds a dropdown over options.
func NewSelect(title string, options []articleprops.Option, bind Binding) *Select {
	return &Select{title: title, options: options, bind: bind}
}

// Title implements Control.
func (s *Select) Title() string { return s.title }

// Expanded reports whether the option list is shown.
func (s *Select) Expanded() bool { return s.expanded }

// Height implements Control.
func (s *Select) Height() int {
	if s.expanded {
		return 2 + len(s.options)
	}
	return 2
}

// View implements Control.
func (s *Select) View(width int, focused bool) string {
	lines := []string{titleStyle.Render(truncate(s.title, width))}

	indicator := " ▾"
	if s.expanded {
		indicator = " ▴"
	}
	current := s.bind.Value()
	label := truncate(swatch(current.Value)+current.Title, width-lipgloss.Width(indicator))
	line := padRight(label, width-lipgloss.Width(indicator)) + indicator
	if focused {
		line = valueFocusStyle.Render(line)
	} else {
		line = valueStyle.Render(line)
	}
	lines = append(lines, line)

	if s.expanded {
		for i, opt := range s.options {
			marker := "  "
			if opt == current {
				marker = "✓ "
			}
			text := padRight(truncate(marker+swatch(opt.Value)+opt.Title, width), width)
			if i == s.cursor {
				text = optionCursorStyle.Render(text)
			}
			lines = append(lines, text)
		}
	}
	return strings.Join(lines, "\n")
}

// HandleKey implements Control.
func (s *Select) HandleKey(msg tea.KeyMsg, keys KeyMap) bool {
	if s.expanded {
		switch {
		case key.Matches(msg, keys.Close):
			s.expanded = false
			return true
		case key.Matches(msg, keys.Activate):
			s.choose(s.cursor)
			return true
		case msg.String() == "down" || msg.String() == "j":
			s.cursor = clamp(s.cursor+1, 0, len(s.options)-1)
			return true
		case msg.String() == "up" || msg.String() == "k":
			s.cursor = clamp(s.cursor-1, 0, len(s.options)-1)
			return true
		}
		s.expanded = false
		return false
	}

	switch {
	case key.Matches(msg, keys.Activate):
		s.expand()
		return true
	case key.Matches(msg, keys.Left):
		s.step(-1)
		return true
	case key.Matches(msg, keys.Right):
		s.step(1)
		return true
	}
	return false
}

// HandleClick implements Control.
func (s *Select) HandleClick(_, y int) bool {
	switch {
	case y == 1:
		if s.expanded {
			s.expanded = false
		} else {
			s.expand()
		}
		return true
	case s.expanded && y >= 2 && y-2 < len(s.options):
		s.choose(y - 2)
		return true
	}
	return false
}

// Blur implements Control.
func (s *Select) Blur() {
	s.expanded = false
}

func (s *Select) expand() {
	s.expanded = true
	s.cursor = max(indexOf(s.options, s.bind.Value()), 0)
}

func (s *Select) choose(i int) {
	s.expanded = false
	if i < 0 || i >= len(s.options) {
		return
	}
	s.bind.OnChange(s.options[i])
}

func (s *Select) step(delta int) {
	if len(s.options) == 0 {
		return
	}
	i := indexOf(s.options, s.bind.Value())
	i = (i + delta + len(s.options)) % len(s.options)
	s.bind.OnChange(s.options[i])
}

// RadioGroup lays all options out on one line.
type RadioGroup struct {
	title   string
	options []articleprops.Option
	bind    Binding
}

// NewRadioGroup builds a radio group over options.
func NewRadioGroup(title string, options []articleprops.Option, bind Binding) *RadioGroup {
	return &RadioGroup{title: title, options: options, bind: bind}
}

// Title implements Control.
func (r *RadioGroup) Title() string { return r.title }

// Height implements Control.
func (r *RadioGroup) Height() int { return 2 }

const radioGap = "  "

func (r *RadioGroup) label(opt articleprops.Option, current articleprops.Option) string {
	if opt == current {
		return "◉ " + opt.Title
	}
	return "○ " + opt.Title
}

// View implements Control.
func (r *RadioGroup) View(width int, focused bool) string {
	current := r.bind.Value()
	parts := make([]string, 0, len(r.options))
	for _, opt := range r.options {
		text := r.label(opt, current)
		switch {
		case opt == current && focused:
			text = valueFocusStyle.Render(text)
		default:
			text = valueStyle.Render(text)
		}
		parts = append(parts, text)
	}
	return titleStyle.Render(truncate(r.title, width)) + "\n" + truncate(strings.Join(parts, radioGap), width)
}

// HandleKey implements Control.
func (r *RadioGroup) HandleKey(msg tea.KeyMsg, keys KeyMap) bool {
	switch {
	case key.Matches(msg, keys.Left):
		r.step(-1)
		return true
	case key.Matches(msg, keys.Right), key.Matches(msg, keys.Activate):
		r.step(1)
		return true
	}
	return false
}

// HandleClick implements Control.
func (r *RadioGroup) HandleClick(x, y int) bool {
	if y != 1 {
		return false
	}
	current := r.bind.Value()
	start := 0
	for _, opt := range r.options {
		w := lipgloss.Width(r.label(opt, current))
		if x >= start && x < start+w {
			r.bind.OnChange(opt)
			return true
		}
		start += w + lipgloss.Width(radioGap)
	}
	return false
}

// Blur implements Control.
func (r *RadioGroup) Blur() {}

func (r *RadioGroup) step(delta int) {
	if len(r.options) == 0 {
		return
	}
	i := indexOf(r.options, r.bind.Value())
	i = (i + delta + len(r.options)) % len(r.options)
	r.bind.OnChange(r.options[i])
}

func indexOf(options []articleprops.Option, opt articleprops.Option) int {
	for i, o := range options {
		if o == opt {
			return i
		}
	}
	return -1
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
