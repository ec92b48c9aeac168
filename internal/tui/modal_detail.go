package tui

import (
	"context"
	"errors"
	"log"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/control-theory/hitview/internal/lookup"
)

const (
	notAvailable = "N/A"
	noCountry    = "Not found"
)

// detailResultMsg carries the finished lookups of one address
type detailResultMsg struct {
	addr    string
	name    string
	country string
}

// DetailPopup shows the reverse DNS name and country of a host address
type DetailPopup struct {
	addr      string
	name      string
	country   string
	resolving bool
}

// NewDetailPopup creates a popup for addr waiting on its lookups
func NewDetailPopup(addr string) *DetailPopup {
	return &DetailPopup{addr: addr, resolving: true}
}

// Addr returns the address being described
func (d *DetailPopup) Addr() string {
	return d.addr
}

// Resolving reports whether the lookups are still running
func (d *DetailPopup) Resolving() bool {
	return d.resolving
}

// apply stores a lookup result meant for this popup
func (d *DetailPopup) apply(msg detailResultMsg) bool {
	if msg.addr != d.addr {
		return false
	}
	d.name = msg.name
	d.country = msg.country
	d.resolving = false
	return true
}

// HandleKey reports whether the key closes the popup
func (d *DetailPopup) HandleKey(msg tea.KeyMsg, keys KeyMap) bool {
	return key.Matches(msg, keys.Quit) || key.Matches(msg, keys.Cancel)
}

// Lines returns the popup text
func (d *DetailPopup) Lines() []string {
	lines := []string{"Reverse DNS for address: " + d.addr}
	if d.resolving {
		return append(lines, "Resolving...")
	}
	return append(lines, d.name, "Country: "+d.country)
}

// View renders the popup box for a terminal of width x height
func (d *DetailPopup) View(styles *Styles, width, height int) string {
	w, h := popupSize(width, height)
	inner := max(10, w-10)

	title := styles.Title.Width(inner).Render(" Host details")
	body := lipgloss.NewStyle().Width(inner).Height(max(1, h-popupChrome-6)).
		Render(lipgloss.JoinVertical(lipgloss.Left, d.renderLines(styles)...))
	hint := styles.Muted.Render(" q:close")

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body, hint)
	return styles.Popup.Width(inner).Render(content)
}

func (d *DetailPopup) renderLines(styles *Styles) []string {
	lines := d.Lines()
	out := make([]string, len(lines))
	for i, line := range lines {
		style := styles.Label
		if i == 0 {
			style = styles.Value
		}
		out[i] = style.Render("  " + line)
	}
	return out
}

// lookupDetails runs the reverse DNS resolution and the country lookup of
// addr off the update loop, bounded by the context timeout. Failures are
// shown as missing values.
func lookupDetails(dc *DisplayContext, addr string) tea.Cmd {
	resolver, locator, timeout := dc.Resolver, dc.Locator, dc.LookupTimeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		result := detailResultMsg{addr: addr, name: notAvailable, country: noCountry}

		if name, err := resolver.Reverse(ctx, addr); err == nil && name != "" {
			result.name = name
		} else if err != nil {
			log.Printf("reverse dns for %s: %v", addr, err)
		}

		if country, err := locator.Country(ctx, addr); err == nil && country != "" {
			result.country = country
		} else if err != nil && !errors.Is(err, lookup.ErrNotFound) {
			log.Printf("country lookup for %s: %v", addr, err)
		}

		return result
	}
}
