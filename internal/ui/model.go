package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/kyaoi/mdreader/internal/article"
	"github.com/kyaoi/mdreader/internal/articleprops"
	"github.com/kyaoi/mdreader/internal/logging"
	"github.com/kyaoi/mdreader/internal/paramsform"
)

const (
	headerHeight      = 1
	minContentWidth   = 20
	defaultPanelWidth = 44
	toggleWidth       = 3
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a9b1d6")).
			Background(lipgloss.Color("#1f2335"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
	helpBoxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Background(lipgloss.Color("#1f2335"))
	searchBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#a9b1d6")).
			Background(lipgloss.Color("#1f2335"))
)

// Model implements the Bubble Tea program for the article reader.
type Model struct {
	contentVP       viewport.Model
	library         *article.Library
	active          int
	filter          string
	doc             article.Document
	renderedContent string

	applied    articleprops.ArticleState
	theme      article.Theme
	cellPixels int

	pointer    *paramsform.PointerBus
	params     *paramsform.Model
	panelWidth int

	search     search
	showHelp   bool
	pendingKey string
	ready      bool
	width      int
	height     int
	err        error

	watch        fileWatch
	watchEnabled bool
	log          zerolog.Logger
}

// NewModel constructs the reader model with the provided initial state.
func NewModel(state State) *Model {
	contentVP := viewport.New(0, 0)
	contentVP.SetHorizontalStep(2)

	m := &Model{
		contentVP:    contentVP,
		library:      state.Library,
		active:       state.Active,
		filter:       state.Filter,
		cellPixels:   state.CellPixels,
		panelWidth:   state.PanelWidth,
		search:       newSearch(),
		watchEnabled: state.Watch,
		log:          logging.Component(state.Logger, "ui"),
		pointer:      paramsform.NewPointerBus(),
	}
	if m.panelWidth <= 0 {
		m.panelWidth = defaultPanelWidth
	}
	m.params = paramsform.New(m.pointer, m.applyArticleState,
		paramsform.WithLogger(logging.Component(state.Logger, "paramsform")))

	_ = m.setArticleState(articleprops.Default())
	m.loadActive()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.startWatching()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.showHelp {
		helpOverlay := helpBoxStyle.Render(m.helpText())
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpOverlay)
		}
		return helpOverlay
	}

	body := m.contentVP.View()
	if m.err != nil {
		body = lipgloss.JoinVertical(lipgloss.Left, errorStyle.Render(m.err.Error()), body)
	}
	if m.search.active {
		body = lipgloss.JoinVertical(lipgloss.Left, body, searchBarStyle.Render(m.search.input.View()))
	} else if status := m.search.statusLine(); status != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, searchBarStyle.Render(status))
	}
	screen := m.headerView() + "\n" + body

	if m.params.IsOpen() {
		panel := m.params.Bounds()
		screen = overlay(screen, m.params.View(), panel.X)
	}
	return screen
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileEventMsg:
		if m.watch.matches(msg) {
			m.reloadActive()
		}
		m.watch.waiting = false
		return m, m.watch.wait()
	case fileWatchErrMsg:
		m.err = msg.err
		m.watch.waiting = false
		return m, m.watch.wait()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.active {
		switch msg.Type {
		case tea.KeyEnter:
			query := strings.TrimSpace(m.search.input.Value())
			m.exitSearchMode()
			if query == "" {
				m.search.clear()
				m.err = nil
				return m, nil
			}
			m.performSearch(query)
			return m, nil
		case tea.KeyEsc, tea.KeyCtrlC:
			m.exitSearchMode()
			return m, nil
		}
		var cmd tea.Cmd
		m.search.input, cmd = m.search.input.Update(msg)
		return m, cmd
	}

	key := msg.String()
	if key != "g" {
		m.pendingKey = ""
	}

	if m.showHelp {
		switch key {
		case "q", "?", "esc":
			m.showHelp = false
		}
		return m, nil
	}

	if key == "ctrl+c" {
		return m, m.quit()
	}
	if m.params.HandleKey(msg) {
		return m, nil
	}

	switch key {
	case "q":
		return m, m.quit()
	case "?":
		m.showHelp = true
		return m, nil
	case "/":
		return m, m.enterSearchMode()
	case "n":
		if len(m.search.matches) > 0 {
			m.search.step(1)
			m.gotoSearchMatch()
			return m, nil
		}
	case "N":
		if len(m.search.matches) > 0 {
			m.search.step(-1)
			m.gotoSearchMatch()
			return m, nil
		}
	case "]":
		return m, m.openArticle(m.active + 1)
	case "[":
		return m, m.openArticle(m.active - 1)
	}

	if m.handleContentKey(key) {
		return m, nil
	}

	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	return m, cmd
}

// handleMouse routes a press: a left press on the toggle affordance toggles,
// any other press goes to every pointer observer, and left presses then reach
// the panel's own controls.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action == tea.MouseActionPress && !tea.MouseEvent(msg).IsWheel() {
		left := msg.Button == tea.MouseButtonLeft
		if left && m.toggleRect().Contains(msg.X, msg.Y) {
			m.params.Toggle()
			return nil
		}
		m.pointer.Dispatch(paramsform.PointerEvent{X: msg.X, Y: msg.Y})
		if left {
			m.params.HandleClick(msg.X, msg.Y)
		}
		return nil
	}

	if m.params.IsOpen() && m.params.Bounds().Contains(msg.X, msg.Y) {
		return nil
	}
	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	return cmd
}

func (m *Model) handleContentKey(key string) bool {
	switch key {
	case "j":
		m.contentVP.ScrollDown(1)
	case "k":
		m.contentVP.ScrollUp(1)
	case "ctrl+d":
		m.contentVP.HalfPageDown()
	case "ctrl+u":
		m.contentVP.HalfPageUp()
	case "h":
		m.contentVP.ScrollLeft(max(2, m.contentVP.Width/6))
	case "l":
		m.contentVP.ScrollRight(max(2, m.contentVP.Width/6))
	case "g":
		if m.pendingKey == "g" {
			m.contentVP.GotoTop()
			m.pendingKey = ""
		} else {
			m.pendingKey = "g"
		}
		return true
	case "G":
		m.contentVP.GotoBottom()
	default:
		return false
	}
	m.pendingKey = ""
	return true
}

// applyArticleState is the sink handed to the settings panel.
func (m *Model) applyArticleState(state articleprops.ArticleState) {
	if err := m.setArticleState(state); err != nil {
		return
	}
	m.renderArticle()
}

func (m *Model) setArticleState(state articleprops.ArticleState) error {
	theme, err := article.ThemeFor(state, m.cellPixels)
	if err != nil {
		m.err = err
		m.log.Error().Err(err).Msg("cannot build article theme")
		return err
	}
	m.applied = state
	m.theme = theme
	return nil
}

// AppliedState returns the state last pushed by the settings panel.
func (m *Model) AppliedState() articleprops.ArticleState {
	return m.applied
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= headerHeight {
		return
	}
	m.width = width
	m.height = height
	m.ready = true

	m.contentVP.Width = width
	m.contentVP.Height = max(height-headerHeight, 1)
	m.params.SetBounds(m.panelRect())
	m.renderArticle()
}

func (m *Model) panelRect() paramsform.Rect {
	w := m.panelWidth
	if m.width-w < minContentWidth {
		w = m.width
	}
	return paramsform.Rect{X: m.width - w, Y: 0, W: w, H: m.height}
}

func (m *Model) toggleRect() paramsform.Rect {
	x := m.width - toggleWidth
	if m.params.IsOpen() {
		x = m.panelRect().X - toggleWidth
	}
	return paramsform.Rect{X: max(x, 0), Y: 0, W: toggleWidth, H: headerHeight}
}

func (m *Model) headerView() string {
	toggle := m.toggleRect()
	title := m.doc.Meta.Title
	if n := m.library.Len(); n > 1 {
		title = fmt.Sprintf("%s (%d/%d)", title, m.active+1, n)
	}
	if m.filter != "" {
		title += fmt.Sprintf(" [tag: %s]", m.filter)
	}
	left := padRight(ansi.Truncate(" "+title, toggle.X, "…"), toggle.X)
	right := padRight("", m.width-toggle.X-toggleWidth)
	return headerStyle.Render(left) + m.params.ToggleView() + headerStyle.Render(right)
}

func (m *Model) renderArticle() {
	if !m.ready {
		return
	}
	available := max(m.contentVP.Width-2, 0)
	spare := available - m.theme.WrapWidth(available)
	m.contentVP.Style = lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Background)).
		PaddingLeft(1 + spare/2).
		PaddingRight(1 + spare - spare/2)

	renderer, err := m.theme.Renderer(available)
	if err != nil {
		m.err = err
		return
	}
	rendered, err := renderer.Render(m.doc.Body)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.contentVP.SetContent(rendered)
	m.renderedContent = rendered
	m.onContentChanged()
}

func (m *Model) loadActive() {
	if m.library.Len() == 0 {
		m.doc = article.Document{Meta: article.Meta{Title: "mdreader"}, Body: "記事が見つかりません。"}
		return
	}
	m.active = clamp(m.active, 0, m.library.Len()-1)
	doc, err := article.Load(m.library.Entries[m.active].Path)
	if err != nil {
		m.err = err
		return
	}
	m.doc = doc
}

func (m *Model) openArticle(index int) tea.Cmd {
	if m.library.Len() < 2 {
		return nil
	}
	index = clamp(index, 0, m.library.Len()-1)
	if index == m.active {
		return nil
	}
	m.active = index
	m.loadActive()
	m.renderArticle()
	m.contentVP.GotoTop()
	m.log.Debug().Str("path", m.doc.Path).Msg("article opened")
	return m.startWatching()
}

func (m *Model) reloadActive() {
	offset := m.contentVP.YOffset
	m.loadActive()
	m.renderArticle()
	if m.err == nil {
		m.contentVP.SetYOffset(offset)
	}
}

func (m *Model) startWatching() tea.Cmd {
	if !m.watchEnabled || m.doc.Path == "" {
		return nil
	}
	cmd, err := m.watch.start(m.doc.Path)
	if err != nil {
		m.err = err
		m.log.Warn().Err(err).Str("path", m.doc.Path).Msg("cannot watch article")
		return nil
	}
	return cmd
}

func (m *Model) quit() tea.Cmd {
	m.params.Unmount()
	if err := m.watch.close(); err != nil {
		m.log.Warn().Err(err).Msg("close watcher")
	}
	return tea.Quit
}

func (m *Model) enterSearchMode() tea.Cmd {
	m.search.active = true
	m.pendingKey = ""
	m.search.input.SetValue(m.search.query)
	m.search.input.CursorEnd()
	return m.search.input.Focus()
}

func (m *Model) exitSearchMode() {
	m.search.active = false
	m.search.input.Blur()
}

func (m *Model) performSearch(query string) {
	if err := m.search.run(m.renderedContent, query, true); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) onContentChanged() {
	if m.search.query == "" {
		return
	}
	if err := m.search.rerun(m.renderedContent); err != nil {
		m.err = err
		return
	}
	m.gotoSearchMatch()
}

func (m *Model) gotoSearchMatch() {
	line := m.search.currentLine()
	if line < 0 {
		return
	}
	totalLines := strings.Count(m.renderedContent, "\n") + 1
	maxOffset := max(totalLines-m.contentVP.Height, 0)
	m.contentVP.SetYOffset(clamp(line, 0, maxOffset))
}

func (m *Model) helpText() string {
	keys := m.params.KeyMap()
	return strings.Join([]string{
		"ヘルプ (?:閉じる / Esc)",
		"j / k            : スクロール",
		"Ctrl+d / Ctrl+u : 半ページ移動",
		"gg / G           : 先頭 / 末尾へ移動",
		"h / l            : 水平スクロール",
		"[ / ]            : 前 / 次の記事",
		"/                : 検索モード開始",
		"n / N            : 次 / 前の一致へ移動",
		fmt.Sprintf("%-16s : %s", keys.Toggle.Help().Key, keys.Toggle.Help().Desc),
		fmt.Sprintf("%-16s : %s (パネル内)", keys.Apply.Help().Key, keys.Apply.Help().Desc),
		fmt.Sprintf("%-16s : %s (パネル内)", keys.Reset.Help().Key, keys.Reset.Help().Desc),
		"q / Ctrl+c       : 終了",
	}, "\n")
}

// overlay replaces the columns from x onwards of the first lines of base with
// the lines of top.
func overlay(base, top string, x int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(top, "\n") {
		if i >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		left := padRight(ansi.Truncate(baseLines[i], x, "")+ansi.ResetStyle, x)
		baseLines[i] = left + line
	}
	return strings.Join(baseLines, "\n")
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
