package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// renderStatusLine draws the key hints and the position of the main panel
func (m *Model) renderStatusLine() string {
	base := m.ctx.Styles.StatusLine

	var hints string
	switch {
	case m.detail != nil:
		hints = m.detail.Addr() + " • q: Close"
	case m.list != nil && m.list.searching:
		hints = "Enter: Search • ESC: Cancel"
	case m.list != nil:
		hints = "/: Search • n: Next • t/b: First/Last • y: Copy • q: Close"
	case m.help != nil:
		hints = "↑↓/PgUp/PgDn: Scroll • q: Close"
	case m.width < 120:
		hints = "F1: Help • Tab: Module • o: Expand • q: Quit"
	default:
		hints = "F1/h: Help • ↑↓/PgUp/PgDn: Scroll • Tab/1-0: Module • o/Enter: Expand • q: Quit"
	}

	left := fmt.Sprintf(" [%s]", m.active.Name())
	right := ""
	if m.main != nil {
		last := min(m.main.Offset()+m.main.Height(), m.layout.Len())
		right = fmt.Sprintf("%d-%d/%d ", m.main.Offset()+1, last, m.layout.Len())
	}

	leftWidth := lipgloss.Width(left) + 2
	rightWidth := lipgloss.Width(right) + 1
	centerWidth := max(0, m.width-leftWidth-rightWidth)
	hints = runewidth.Truncate(hints, centerWidth, "")

	return lipgloss.JoinHorizontal(lipgloss.Top,
		base.Width(leftWidth).Align(lipgloss.Left).Render(left),
		base.Width(centerWidth).Align(lipgloss.Center).Render(hints),
		base.Width(rightWidth).Align(lipgloss.Right).Render(right),
	)
}
