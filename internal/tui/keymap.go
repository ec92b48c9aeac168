package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding of the display
type KeyMap struct {
	Down       key.Binding
	Up         key.Binding
	PageDown   key.Binding
	PageUp     key.Binding
	NextModule key.Binding
	PrevModule key.Binding
	Open       key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding

	First      key.Binding
	Last       key.Binding
	SortLabel  key.Binding
	SortHits   key.Binding
	Search     key.Binding
	SearchNext key.Binding
	Detail     key.Binding
	Copy       key.Binding
	Submit     key.Binding
	Cancel     key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+f"), key.WithHelp("pgdn", "page down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+b"), key.WithHelp("pgup", "page up")),
		NextModule: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next module")),
		PrevModule: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous module")),
		Open:       key.NewBinding(key.WithKeys("o", "enter"), key.WithHelp("o/enter", "expand module")),
		Help:       key.NewBinding(key.WithKeys("f1", "h", "?"), key.WithHelp("F1/h", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),

		First:      key.NewBinding(key.WithKeys("home", "t"), key.WithHelp("home/t", "first item")),
		Last:       key.NewBinding(key.WithKeys("end", "b"), key.WithHelp("end/b", "last item")),
		SortLabel:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort by date")),
		SortHits:   key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "sort by hits")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		SearchNext: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next match")),
		Detail:     key.NewBinding(key.WithKeys("enter", "right"), key.WithHelp("enter", "host details")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy label")),
		Submit:     key.NewBinding(key.WithKeys("enter")),
		Cancel:     key.NewBinding(key.WithKeys("esc")),
	}
}
