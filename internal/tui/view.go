package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// View renders the display
func (m *Model) View() string {
	if m.err != nil {
		return ""
	}
	if !m.ready {
		return "Initializing display..."
	}

	// Show the topmost popup over a cleared screen
	var popup string
	switch {
	case m.detail != nil:
		popup = m.detail.View(&m.ctx.Styles, m.width, m.height)
	case m.list != nil:
		popup = m.list.View()
	case m.help != nil:
		popup = m.help.View(&m.ctx.Styles)
	}
	if popup != "" {
		body := lipgloss.Place(m.width, m.height-footerHeight, lipgloss.Center, lipgloss.Center, popup)
		return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusLine())
	}

	return m.renderDashboard()
}

// renderDashboard draws the header, the main panel and the status line
func (m *Model) renderDashboard() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.ctx, m.width, m.active),
		m.main.View(),
		m.renderStatusLine(),
	)
}
