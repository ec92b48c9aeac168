package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/control-theory/hitview/internal/stats"
)

// RefreshMsg repaints the display from fresh data, typically after the
// snapshot on disk changed. A nil Store keeps the current one, which may
// have been refilled in place.
type RefreshMsg struct {
	Store stats.Store
}

// Model is the interactive display: a header summary, the scrollable main
// panel of module blocks, a status line and at most one popup stack.
type Model struct {
	ctx  *DisplayContext
	keys KeyMap

	width  int
	height int
	ready  bool

	layout   *Layout
	renderer RowRenderer
	main     *Viewport
	active   stats.Module

	help   *HelpPopup
	list   *ListPopup
	detail *DetailPopup

	err error
}

// NewModel creates the display model over a context
func NewModel(ctx *DisplayContext) *Model {
	if ctx == nil {
		ctx = NewDisplayContext(nil, NewStyles(nil))
	}
	ctx.applyDefaults()

	return &Model{
		ctx:    ctx,
		keys:   DefaultKeyMap(),
		active: stats.UniqueVisitors,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Err returns the fatal error that ended the display, if any
func (m *Model) Err() error {
	return m.err
}

// Active returns the selected module
func (m *Model) Active() stats.Module {
	return m.active
}

// Viewport returns the main panel scroll controller
func (m *Model) Viewport() *Viewport {
	return m.main
}

// List returns the open list popup, if any
func (m *Model) List() *ListPopup {
	return m.list
}

// Detail returns the open detail popup, if any
func (m *Model) Detail() *DetailPopup {
	return m.detail
}

// Help returns the open help popup, if any
func (m *Model) Help() *HelpPopup {
	return m.help
}

// mainHeight is the number of rows left for the main panel
func (m *Model) mainHeight() int {
	return max(0, m.height-headerHeight-footerHeight)
}

// relayout rebuilds the layout from the store and repaints the main panel
// from scratch, keeping the scroll offset when it is still valid
func (m *Model) relayout() {
	m.layout = BuildLayout(m.ctx.Store)
	m.renderer = NewRowRenderer(&m.ctx.Styles, m.width)
	if m.main == nil {
		m.main = NewViewport(m.layout, m.renderer.Render, m.mainHeight())
		return
	}
	m.main.Reset(m.layout, m.renderer.Render, m.mainHeight())
}

// fail records a fatal error and stops the program
func (m *Model) fail(err error) tea.Cmd {
	m.err = err
	m.help, m.list, m.detail = nil, nil, nil
	return tea.Quit
}
