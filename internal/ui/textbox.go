package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyFilter decides which keys a TextBox rejects
type KeyFilter interface {
	IsKeyInvalid(msg tea.KeyMsg) bool
}

// KeyFilterFunc adapts a function to KeyFilter
type KeyFilterFunc func(msg tea.KeyMsg) bool

// IsKeyInvalid calls f
func (f KeyFilterFunc) IsKeyInvalid(msg tea.KeyMsg) bool {
	return f(msg)
}

// NumberFilter rejects any rune that is not a decimal digit
type NumberFilter struct{}

// IsKeyInvalid implements KeyFilter
func (NumberFilter) IsKeyInvalid(msg tea.KeyMsg) bool {
	if msg.Type != tea.KeyRunes {
		return false
	}
	for _, r := range msg.Runes {
		if !unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// TextBox is a single-line editable value
type TextBox struct {
	Label

	Filter KeyFilter
}

// NewTextBox creates an empty text box
func NewTextBox(ctx *Context) *TextBox {
	tb := &TextBox{}
	tb.initGrid(ctx)
	tb.Focusable = true
	return tb
}

// Value returns the current text
func (tb *TextBox) Value() string {
	return tb.text
}

// SetValue replaces the text
func (tb *TextBox) SetValue(s string) {
	tb.text = s
}

// HandleKey edits the value and reports whether the key was consumed.
// Enter, Tab, Delete and Backspace always pass the filter.
func (tb *TextBox) HandleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyEnter, tea.KeyTab, tea.KeyDelete:
		return false
	case tea.KeyBackspace:
		if r := []rune(tb.text); len(r) > 0 {
			tb.text = string(r[:len(r)-1])
		}
		return true
	}
	if tb.Filter != nil && tb.Filter.IsKeyInvalid(msg) {
		return true
	}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		if msg.Type == tea.KeySpace {
			tb.text += " "
		} else {
			tb.text += string(msg.Runes)
		}
		return true
	}
	return false
}
