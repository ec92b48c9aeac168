package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds every lipgloss style the display draws with. It is built
// once from a skin and carried in the display context.
type Styles struct {
	Title     lipgloss.Style // color treatment 1: module titles
	Band      lipgloss.Style // color treatment 2: subtitles and popup headers
	Hits      lipgloss.Style
	Attention lipgloss.Style
	Neutral   lipgloss.Style
	Label     lipgloss.Style
	Bar       lipgloss.Style
	Value     lipgloss.Style
	Path      lipgloss.Style

	StatusLine lipgloss.Style
	Popup      lipgloss.Style
	Selected   lipgloss.Style
	Input      lipgloss.Style
	Error      lipgloss.Style
	Muted      lipgloss.Style
}

// NewStyles creates the styles for a skin, falling back to the default skin
func NewStyles(skin *Skin) Styles {
	if skin == nil {
		skin = DefaultSkin()
	}
	c := skin.Colors

	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.TitleText)).
			Background(lipgloss.Color(c.TitleBackground)).
			Bold(true),
		Band: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.BandText)).
			Background(lipgloss.Color(c.BandBackground)),
		Hits:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hits)),
		Attention: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Attention)).Bold(true),
		Neutral:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Neutral)),
		Label:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.Label)),
		Bar:       lipgloss.NewStyle().Foreground(lipgloss.Color(c.Bar)),
		Value:     lipgloss.NewStyle().Foreground(lipgloss.Color(c.Value)).Bold(true),
		Path:      lipgloss.NewStyle().Foreground(lipgloss.Color(c.Path)),

		StatusLine: lipgloss.NewStyle().
			Foreground(lipgloss.Color(c.StatusText)).
			Background(lipgloss.Color(c.StatusBackground)),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(c.Border)),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color(c.Selected)).Bold(true),
		Input:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Value)),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Error)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(c.Border)).Faint(true),
	}
}
