package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/control-theory/hitview/internal/stats"
)

// handleKeyPress routes a key to the topmost popup, or to the main panel
// when none is open
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if !m.ready {
		return m, nil
	}

	// Priority: detail over list, then help, then the main panel
	switch {
	case m.detail != nil:
		if m.detail.HandleKey(msg, m.keys) {
			m.detail = nil
			m.relayout()
		}
		return m, nil

	case m.list != nil:
		action, cmd := m.list.HandleKey(msg)
		switch action {
		case actionClose:
			m.list = nil
			m.relayout()
		case actionDetail:
			if addr, ok := m.list.Selected(); ok {
				m.detail = NewDetailPopup(addr)
				return m, lookupDetails(m.ctx, addr)
			}
		}
		return m, cmd

	case m.help != nil:
		if m.help.HandleKey(msg) {
			m.help = nil
			m.relayout()
		}
		return m, nil
	}

	return m, m.handleMainKey(msg)
}

func (m *Model) handleMainKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.main.ScrollDown()
	case key.Matches(msg, m.keys.Up):
		m.main.ScrollUp()
	case key.Matches(msg, m.keys.PageDown):
		m.main.PageDown()
	case key.Matches(msg, m.keys.PageUp):
		m.main.PageUp()
	case key.Matches(msg, m.keys.NextModule):
		m.active = nextModule(m.active, 1)
	case key.Matches(msg, m.keys.PrevModule):
		m.active = nextModule(m.active, -1)
	case key.Matches(msg, m.keys.Help):
		m.help = NewHelpPopup(m.keys, m.width, m.height)
	case key.Matches(msg, m.keys.Open):
		list, err := OpenList(m.ctx, m.keys, m.active, m.width, m.height)
		if err != nil {
			return m.fail(err)
		}
		m.list = list
	default:
		if module, ok := moduleForDigit(msg.String()); ok {
			m.active = module
		}
	}
	return nil
}

// nextModule cycles through the modules in enumeration order
func nextModule(current stats.Module, step int) stats.Module {
	n := int(current) - 1 + step
	n = ((n % stats.ModuleCount) + stats.ModuleCount) % stats.ModuleCount
	return stats.Module(n + 1)
}

// moduleForDigit maps 1..9 to modules 1..9 and 0 to module 10
func moduleForDigit(s string) (stats.Module, bool) {
	if len(s) != 1 || s[0] < '0' || s[0] > '9' {
		return 0, false
	}
	n := int(s[0] - '0')
	if n == 0 {
		n = 10
	}
	return stats.Module(n), true
}
