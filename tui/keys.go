package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the application key bindings. Table navigation keys live in
// the table's own key map.
type KeyMap struct {
	Quit   key.Binding
	Back   key.Binding
	Yank   key.Binding
	Jump   key.Binding
	Reload key.Binding
}

// DefaultKeyMap returns the default application keys
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
		Back:   key.NewBinding(key.WithKeys("backspace", "b"), key.WithHelp("b", "back")),
		Yank:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),
		Jump:   key.NewBinding(key.WithKeys("g", ":"), key.WithHelp("g", "go to parent")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

// ShortHelp returns the bindings shown in the status line
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Yank, k.Back, k.Reload, k.Quit}
}

// helpText renders bindings as "key desc • key desc"
func helpText(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
