package tui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.err != nil {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m, m.resize(msg.Width, msg.Height)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case detailResultMsg:
		if m.detail != nil {
			m.detail.apply(msg)
		}

	case RefreshMsg:
		if msg.Store != nil {
			m.ctx.Store = msg.Store
		}
		if m.ready {
			m.relayout()
		}
		log.Printf("display refreshed")
	}

	return m, nil
}

// resize relays out everything for a new terminal size. List and detail
// popups do not survive a resize.
func (m *Model) resize(width, height int) tea.Cmd {
	if width < MinWidth || height < MinHeight {
		return m.fail(errScreenTooSmall(width, height))
	}

	m.width, m.height = width, height
	m.ready = true
	m.list, m.detail = nil, nil
	if m.help != nil {
		m.help.Resize(width, height)
	}
	m.relayout()
	return nil
}
