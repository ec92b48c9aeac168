package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const popupHint = "  Use cursor UP/DOWN - PGUP/PGDOWN to scroll. q:quit"

var helpText = []string{
	"hitview - interactive web log statistics",
	"",
	"MAIN PANEL:",
	"  DOWN / j       Scroll down one line",
	"  UP / k         Scroll up one line",
	"  PGDOWN         Scroll down one page",
	"  PGUP           Scroll up one page",
	"  TAB            Select the next module",
	"  SHIFT+TAB      Select the previous module",
	"  1-9, 0         Select module 1 through 10",
	"  o / ENTER      Expand the selected module",
	"  F1 / h / ?     This help",
	"  q              Quit",
	"",
	"EXPANDED MODULE:",
	"  UP / DOWN      Move the selection",
	"  PGUP / PGDOWN  Move one page",
	"  HOME / t       First item",
	"  END / b        Last item",
	"  /              Search forward from the selection",
	"  n              Repeat the last search",
	"  s              Sort by date (visitors module)",
	"  S              Sort by hits (visitors module)",
	"  ENTER / RIGHT  Host details (hosts module)",
	"  y              Copy the selected label",
	"  q              Close",
	"",
	"MODULES:",
	"  1  Unique visitors per day",
	"  2  Requested files",
	"  3  Requested static files",
	"  4  Referrers URLs",
	"  5  HTTP 404 not found URLs",
	"  6  Operating systems",
	"  7  Browsers",
	"  8  Hosts",
	"  9  HTTP status codes",
	"  0  Top referring sites",
	"     Top keyphrases (TAB)",
	"",
	"Percentages of operating systems and browsers are relative to the",
	"unique visitors total. Hosts and status codes are relative to the",
	"total number of processed requests.",
}

// HelpPopup is the scrollable key reference
type HelpPopup struct {
	keys     KeyMap
	viewport viewport.Model
	width    int
	height   int
}

// NewHelpPopup creates a help popup sized for a terminal of width x height
func NewHelpPopup(keys KeyMap, width, height int) *HelpPopup {
	h := &HelpPopup{keys: keys, viewport: viewport.New(0, 0)}
	h.viewport.SetContent(strings.Join(helpText, "\n"))
	h.Resize(width, height)
	return h
}

// Resize fits the popup to a new terminal size, keeping the offset in range
func (h *HelpPopup) Resize(width, height int) {
	h.width, h.height = popupSize(width, height)
	h.viewport.Width = h.width - 2
	h.viewport.Height = max(1, h.height-popupChrome)
	h.viewport.SetYOffset(h.viewport.YOffset)
}

// Offset returns the first visible help line
func (h *HelpPopup) Offset() int {
	return h.viewport.YOffset
}

// HandleKey scrolls the help text. It returns true when the popup closes.
func (h *HelpPopup) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, h.keys.Quit), key.Matches(msg, h.keys.Cancel):
		return true
	case key.Matches(msg, h.keys.Down):
		h.viewport.ScrollDown(1)
	case key.Matches(msg, h.keys.Up):
		h.viewport.ScrollUp(1)
	case key.Matches(msg, h.keys.PageDown):
		h.viewport.PageDown()
	case key.Matches(msg, h.keys.PageUp):
		h.viewport.PageUp()
	}
	return false
}

// View renders the popup box
func (h *HelpPopup) View(styles *Styles) string {
	inner := h.width - 2
	title := styles.Title.Width(inner).Render(" hitview help")
	hint := styles.Band.Width(inner).Render(popupHint)
	body := h.viewport.View()

	content := lipgloss.JoinVertical(lipgloss.Left, title, hint, "", body)
	return styles.Popup.Width(inner).Render(content)
}

// popupChrome is the border, title, hint and spacer lines around a popup body
const popupChrome = 5

// popupSize returns the outer size of a popup on a width x height terminal
func popupSize(width, height int) (int, int) {
	return max(20, width-40), max(8, height-12)
}
