package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/control-theory/hitview/internal/stats"
	"github.com/mattn/go-runewidth"
)

const (
	msgPatternNotFound = "Pattern not found"
	msgSearchBottom    = "search hit BOTTOM"
	listMark           = " => "
	listFooter         = 1
)

// listItem is one choice of the list popup: a short hit count and the long
// label text the search runs against
type listItem struct {
	hits  int
	label string
	text  string
}

func (i listItem) Short() string { return fmt.Sprintf("%3d", i.hits) }
func (i listItem) FilterValue() string { return i.text }

// listDelegate draws a choice on a single line with a mark on the selection
type listDelegate struct {
	styles *Styles
}

func (d listDelegate) Height() int { return 1 }
func (d listDelegate) Spacing() int { return 0 }
func (d listDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d listDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(listItem)
	if !ok {
		return
	}

	mark := strings.Repeat(" ", len(listMark))
	style := d.styles.Label
	if index == m.Index() {
		mark = listMark
		style = d.styles.Selected
	}

	line := mark + i.Short() + " " + i.text
	if width := m.Width(); width > 0 {
		line = runewidth.Truncate(line, width, "")
	}
	fmt.Fprint(w, style.Render(line))
}

// popupAction tells the model what a popup key press asks for
type popupAction int

const (
	actionNone popupAction = iota
	actionClose
	actionDetail
)

// ListPopup shows every entry of one module, sorted, selectable and
// searchable. It owns a snapshot of the entries for its whole lifetime.
type ListPopup struct {
	ctx    *DisplayContext
	keys   KeyMap
	module stats.Module

	entries []stats.Entry
	byLabel bool

	list      list.Model
	input     textinput.Model
	searching bool
	query     string
	status    string

	width  int
	height int
}

// OpenList snapshots the entries of module and builds the popup sorted by
// hits. A store that cannot enumerate the module is fatal.
func OpenList(ctx *DisplayContext, keys KeyMap, module stats.Module, width, height int) (*ListPopup, error) {
	entries, err := ctx.Store.Entries(module)
	if err != nil {
		return nil, &FatalError{Kind: FatalAllocation, Msg: "Unable to allocate memory", Err: err}
	}

	input := textinput.New()
	input.Prompt = "/"
	input.CharLimit = 256
	input.PromptStyle = ctx.Styles.Input
	input.TextStyle = ctx.Styles.Input

	p := &ListPopup{
		ctx:     ctx,
		keys:    keys,
		module:  module,
		entries: entries,
		input:   input,
	}

	l := list.New(nil, listDelegate{styles: &ctx.Styles}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = ctx.Styles.Muted
	p.list = l

	p.Resize(width, height)
	p.rebuild()
	return p, nil
}

// rebuild sorts the snapshot and recreates the items, selecting the first
func (p *ListPopup) rebuild() {
	if p.byLabel {
		stats.SortByLabel(p.entries)
	} else {
		stats.SortByHits(p.entries)
	}

	n := min(len(p.entries), p.ctx.MaxChoices)
	items := make([]list.Item, 0, n)
	for _, e := range p.entries[:n] {
		items = append(items, listItem{
			hits:  e.Hits,
			label: e.Label,
			text:  DisplayLabel(p.module, e.Label),
		})
	}
	p.list.SetItems(items)
	p.list.Select(0)
}

// Resize fits the popup to a new terminal size
func (p *ListPopup) Resize(width, height int) {
	p.width, p.height = popupSize(width, height)
	p.list.SetSize(p.width-2, max(1, p.height-popupChrome-listFooter))
	p.input.Width = p.width - 6
}

// Module returns the module the popup lists
func (p *ListPopup) Module() stats.Module {
	return p.module
}

// Index returns the selected item
func (p *ListPopup) Index() int {
	return p.list.Index()
}

// Len returns the number of items shown
func (p *ListPopup) Len() int {
	return len(p.list.Items())
}

// Status returns the inline message, if any
func (p *ListPopup) Status() string {
	return p.status
}

// Query returns the remembered search text
func (p *ListPopup) Query() string {
	return p.query
}

// Labels returns the raw labels of the items in display order
func (p *ListPopup) Labels() []string {
	items := p.list.Items()
	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.(listItem).label
	}
	return labels
}

// Selected returns the selected item's raw label
func (p *ListPopup) Selected() (string, bool) {
	it, ok := p.list.SelectedItem().(listItem)
	if !ok {
		return "", false
	}
	return it.label, true
}

// HandleKey applies a key press and reports what the model should do next
func (p *ListPopup) HandleKey(msg tea.KeyMsg) (popupAction, tea.Cmd) {
	if p.searching {
		return p.handleSearchKey(msg)
	}

	p.status = ""
	switch {
	case key.Matches(msg, p.keys.Quit):
		p.entries = nil
		return actionClose, nil
	case key.Matches(msg, p.keys.Down):
		p.list.CursorDown()
	case key.Matches(msg, p.keys.Up):
		p.list.CursorUp()
	case key.Matches(msg, p.keys.PageDown):
		p.selectIndex(p.list.Index() + p.perPage())
	case key.Matches(msg, p.keys.PageUp):
		p.selectIndex(p.list.Index() - p.perPage())
	case key.Matches(msg, p.keys.First):
		p.selectIndex(0)
	case key.Matches(msg, p.keys.Last):
		p.selectIndex(p.Len() - 1)
	case key.Matches(msg, p.keys.SortLabel):
		p.sort(true)
	case key.Matches(msg, p.keys.SortHits):
		p.sort(false)
	case key.Matches(msg, p.keys.Search):
		p.searching = true
		p.input.SetValue("")
		return actionNone, p.input.Focus()
	case key.Matches(msg, p.keys.SearchNext):
		p.Next()
	case key.Matches(msg, p.keys.Detail):
		if p.module.IsAddress() {
			if _, ok := p.Selected(); ok {
				return actionDetail, nil
			}
		}
	case key.Matches(msg, p.keys.Copy):
		p.copySelected()
	}
	return actionNone, nil
}

func (p *ListPopup) handleSearchKey(msg tea.KeyMsg) (popupAction, tea.Cmd) {
	switch {
	case key.Matches(msg, p.keys.Submit):
		p.endSearch()
		p.Search(p.input.Value())
		return actionNone, nil
	case key.Matches(msg, p.keys.Cancel):
		p.endSearch()
		return actionNone, nil
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return actionNone, cmd
}

func (p *ListPopup) endSearch() {
	p.searching = false
	p.input.Blur()
}

// Search remembers query and selects the next item containing it. An empty
// query only clears the remembered one.
func (p *ListPopup) Search(query string) {
	p.query = query
	if query == "" {
		return
	}
	p.find(msgPatternNotFound)
}

// Next repeats the remembered search
func (p *ListPopup) Next() {
	if p.query == "" {
		return
	}
	p.find(msgSearchBottom)
}

// find scans forward from the item after the selection to the last item,
// without wrapping
func (p *ListPopup) find(miss string) {
	items := p.list.Items()
	for i := p.list.Index() + 1; i < len(items); i++ {
		if strings.Contains(items[i].(listItem).text, p.query) {
			p.selectIndex(i)
			return
		}
	}
	p.status = miss
}

// sort reorders the date module by label or by hits
func (p *ListPopup) sort(byLabel bool) {
	if !p.module.IsDateBased() {
		return
	}
	p.byLabel = byLabel
	p.rebuild()
}

func (p *ListPopup) copySelected() {
	label, ok := p.Selected()
	if !ok {
		return
	}
	if err := p.ctx.Copy(label); err != nil {
		p.status = "Copy failed: " + err.Error()
		return
	}
	p.status = "Copied " + label
}

// selectIndex selects i clamped to the items; the list pages to keep it
// visible
func (p *ListPopup) selectIndex(i int) {
	if p.Len() == 0 {
		return
	}
	p.list.Select(clamp(i, 0, p.Len()-1))
}

func (p *ListPopup) perPage() int {
	return max(1, p.list.Paginator.PerPage)
}

// View renders the popup box
func (p *ListPopup) View() string {
	styles := &p.ctx.Styles
	inner := p.width - 2

	hint := styles.Band.Width(inner).Render(popupHint)
	title := styles.Title.Width(inner).Render(p.module.Title())

	var footer string
	switch {
	case p.searching:
		footer = p.input.View()
	case p.status == msgPatternNotFound || p.status == msgSearchBottom:
		footer = styles.Error.Render(p.status)
	case p.status != "":
		footer = styles.Muted.Render(p.status)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, hint, title, "", p.list.View(), " "+footer)
	return styles.Popup.Width(inner).Render(content)
}
