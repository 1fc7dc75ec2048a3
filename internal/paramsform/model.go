// Package paramsform implements the reader settings side panel: a form of
// five presentation options with Reset and Apply actions, shown on demand
// and closed by a pointer-down outside of it.
package paramsform

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/kyaoi/mdreader/internal/articleprops"
)

const (
	headingText = "表示設定"
	resetLabel  = "[ リセット ]"
	applyLabel  = "[ 適用 ]"
	buttonGap   = "  "
)

// Sink receives the state the user applies.
type Sink func(articleprops.ArticleState)

type rowKind int

const (
	rowHeading rowKind = iota
	rowGap
	rowControl
	rowSeparator
	rowButtons
)

type row struct {
	kind    rowKind
	control int
	y       int
	height  int
}

type item struct {
	control   Control
	separator bool
}

// Option configures a Model.
type Option func(*Model)

// WithLogger sets the logger used for panel events.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Model) { m.log = log }
}

// WithKeyMap overrides the default bindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// Model renders the settings panel and routes input to its controls.
type Model struct {
	form     *Form
	panel    *Panel
	sink     Sink
	items    []item
	controls []Control
	focus    int
	keys     KeyMap
	bounds   Rect
	mounted  bool
	log      zerolog.Logger
}

// New builds the panel. sink is called with the full state on Apply and with
// the default on Reset.
func New(bus *PointerBus, sink Sink, opts ...Option) *Model {
	m := &Model{
		form: NewForm(),
		sink: sink,
		keys: DefaultKeyMap(),
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.panel = NewPanel(bus, m.currentBounds, m.log)

	fontFamily := NewSelect("フォント", articleprops.FontFamilyOptions(), m.bind(articleprops.FontFamily))
	fontSize := NewRadioGroup("文字サイズ", articleprops.FontSizeOptions(), m.bind(articleprops.FontSize))
	fontColor := NewSelect("文字色", articleprops.FontColors(), m.bind(articleprops.FontColor))
	background := NewSelect("背景色", articleprops.BackgroundColors(), m.bind(articleprops.BackgroundColor))
	width := NewSelect("コンテンツ幅", articleprops.ContentWidthOptions(), m.bind(articleprops.ContentWidth))

	m.items = []item{
		{control: fontFamily},
		{control: fontSize},
		{control: fontColor},
		{separator: true},
		{control: background},
		{control: width},
	}
	for _, it := range m.items {
		if it.control != nil {
			m.controls = append(m.controls, it.control)
		}
	}
	return m
}

// bind returns the adapter wiring one field's control to the form.
func (m *Model) bind(field articleprops.Field) Binding {
	return Binding{
		Value: func() articleprops.Option { return m.form.State().Get(field) },
		OnChange: func(opt articleprops.Option) {
			m.form.SetField(field, opt)
			m.log.Debug().Stringer("field", field).Str("value", opt.Value).Msg("field changed")
		},
	}
}

// State returns the in-progress selection.
func (m *Model) State() articleprops.ArticleState {
	return m.form.State()
}

// SetField changes one field as if the user picked opt in its control.
func (m *Model) SetField(field articleprops.Field, opt articleprops.Option) {
	m.bind(field).OnChange(opt)
}

// Apply pushes the in-progress selection to the sink. The panel stays open
// and the selection is kept.
func (m *Model) Apply() {
	state := m.form.State()
	m.log.Info().
		Str("font_family", state.FontFamily.Value).
		Str("font_size", state.FontSize.Value).
		Str("font_color", state.FontColor.Value).
		Str("background", state.BackgroundColor.Value).
		Str("width", state.ContentWidth.Value).
		Msg("apply article state")
	if m.sink != nil {
		m.sink(state)
	}
}

// Reset restores the default both in the form and in the sink.
func (m *Model) Reset() {
	m.form.Reset()
	m.log.Info().Msg("reset article state")
	if m.sink != nil {
		m.sink(m.form.State())
	}
}

// IsOpen reports whether the panel is visible.
func (m *Model) IsOpen() bool {
	return m.panel.IsOpen()
}

// Toggle opens or closes the panel.
func (m *Model) Toggle() {
	m.panel.Toggle()
	m.blurAll()
}

// SetBounds records where the panel is drawn. The viewer calls it on every
// resize.
func (m *Model) SetBounds(r Rect) {
	m.bounds = r
	m.mounted = true
}

// Bounds returns the rectangle recorded by SetBounds.
func (m *Model) Bounds() Rect {
	return m.bounds
}

// Unmount closes the panel and forgets its bounds.
func (m *Model) Unmount() {
	m.mounted = false
	m.panel.Unmount()
	m.blurAll()
}

func (m *Model) currentBounds() (Rect, bool) {
	return m.bounds, m.mounted
}

// KeyMap returns the bindings in use.
func (m *Model) KeyMap() KeyMap {
	return m.keys
}

// HandleKey processes a key press. It returns false when the panel is closed
// or the key means nothing to it.
func (m *Model) HandleKey(msg tea.KeyMsg) bool {
	if !m.IsOpen() {
		if key.Matches(msg, m.keys.Toggle) {
			m.Toggle()
			return true
		}
		return false
	}

	switch {
	case key.Matches(msg, m.keys.Apply):
		m.Apply()
		return true
	case key.Matches(msg, m.keys.Reset):
		m.Reset()
		return true
	}

	if c := m.focusedControl(); c != nil && c.HandleKey(msg, m.keys) {
		return true
	}

	switch {
	case key.Matches(msg, m.keys.Toggle), key.Matches(msg, m.keys.Close):
		m.Toggle()
	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)
	case key.Matches(msg, m.keys.Activate):
		m.pressFocusedButton()
	default:
		return false
	}
	return true
}

// HandleClick routes a pointer-down inside the panel to the control under it.
// x and y are screen cells.
func (m *Model) HandleClick(x, y int) bool {
	if !m.IsOpen() || !m.mounted || !m.bounds.Contains(x, y) {
		return false
	}
	lx := x - m.bounds.X - panelStyle.GetBorderLeftSize() - panelStyle.GetPaddingLeft()
	ly := y - m.bounds.Y - panelStyle.GetBorderTopSize() - panelStyle.GetPaddingTop()

	for _, r := range m.layout() {
		if ly < r.y || ly >= r.y+r.height {
			continue
		}
		switch r.kind {
		case rowControl:
			m.setFocus(r.control)
			m.controls[r.control].HandleClick(lx, ly-r.y)
		case rowButtons:
			resetW := lipgloss.Width(resetLabel)
			applyStart := resetW + lipgloss.Width(buttonGap)
			switch {
			case lx >= 0 && lx < resetW:
				m.setFocus(len(m.controls))
				m.Reset()
			case lx >= applyStart && lx < applyStart+lipgloss.Width(applyLabel):
				m.setFocus(len(m.controls) + 1)
				m.Apply()
			}
		}
		return true
	}
	return true
}

// ToggleView renders the toggle affordance.
func (m *Model) ToggleView() string {
	if m.IsOpen() {
		return toggleStyle.Render("[>]")
	}
	return toggleStyle.Render("[<]")
}

// View renders the panel sized to its bounds, or nothing while closed.
func (m *Model) View() string {
	if !m.IsOpen() || m.bounds.Empty() {
		return ""
	}
	width := m.contentWidth()
	var lines []string
	for _, r := range m.layout() {
		switch r.kind {
		case rowHeading:
			lines = append(lines, headingStyle.Render(truncate(headingText, width)))
		case rowGap:
			lines = append(lines, "")
		case rowSeparator:
			lines = append(lines, separatorStyle.Render(strings.Repeat("─", max(width, 0))))
		case rowControl:
			lines = append(lines, m.controls[r.control].View(width, m.focus == r.control))
		case rowButtons:
			lines = append(lines, m.buttonsView())
		}
	}
	return panelStyle.
		Width(m.bounds.W - panelStyle.GetHorizontalBorderSize()).
		Height(m.bounds.H - panelStyle.GetVerticalBorderSize()).
		MaxHeight(m.bounds.H).
		Render(strings.Join(lines, "\n"))
}

func (m *Model) contentWidth() int {
	return m.bounds.W - panelStyle.GetHorizontalFrameSize()
}

func (m *Model) buttonsView() string {
	reset, apply := buttonStyle, buttonStyle
	switch m.focus {
	case len(m.controls):
		reset = buttonFocusStyle
	case len(m.controls) + 1:
		apply = buttonFocusStyle
	}
	return reset.Render(resetLabel) + buttonGap + apply.Render(applyLabel)
}

// layout lists the panel rows top to bottom with their offsets inside the
// padded content area.
func (m *Model) layout() []row {
	var rows []row
	y := 0
	add := func(r row) {
		r.y = y
		rows = append(rows, r)
		y += r.height
	}

	add(row{kind: rowHeading, height: 1})
	add(row{kind: rowGap, height: 1})
	idx := 0
	for _, it := range m.items {
		if it.separator {
			add(row{kind: rowSeparator, height: 1})
			add(row{kind: rowGap, height: 1})
			continue
		}
		add(row{kind: rowControl, control: idx, height: it.control.Height()})
		add(row{kind: rowGap, height: 1})
		idx++
	}
	add(row{kind: rowButtons, height: 1})
	return rows
}

func (m *Model) focusedControl() Control {
	if m.focus >= 0 && m.focus < len(m.controls) {
		return m.controls[m.focus]
	}
	return nil
}

func (m *Model) focusCount() int {
	return len(m.controls) + 2
}

func (m *Model) moveFocus(delta int) {
	n := m.focusCount()
	m.setFocus((m.focus + delta + n) % n)
}

func (m *Model) setFocus(i int) {
	if i == m.focus {
		return
	}
	if c := m.focusedControl(); c != nil {
		c.Blur()
	}
	m.focus = i
}

func (m *Model) pressFocusedButton() {
	switch m.focus {
	case len(m.controls):
		m.Reset()
	case len(m.controls) + 1:
		m.Apply()
	}
}

func (m *Model) blurAll() {
	for _, c := range m.controls {
		c.Blur()
	}
}
