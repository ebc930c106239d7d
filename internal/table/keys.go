package table

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the table's navigation bindings
type KeyMap struct {
	Home     key.Binding
	End      key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Up       key.Binding
	Down     key.Binding
}

// DefaultKeyMap returns the standard navigation keys
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Home:     key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first row")),
		End:      key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last row")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	}
}

// ShortHelp returns the bindings shown in a one-line help footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End}
}

// FullHelp returns the bindings grouped for an expanded help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.PageUp, k.PageDown}, {k.Home, k.End}}
}
