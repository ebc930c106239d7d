package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/tableview/internal/render"
)

// VAlign is the vertical placement of a caption
type VAlign int

const (
	VAlignTop VAlign = iota
	VAlignCenter
	VAlignBottom
)

// Label is a grid element with a single caption. Alignment is applied when
// the caption is drawn, so changing it takes effect on the next render.
type Label struct {
	Grid

	text string

	HAlign  render.Align
	VAlign  VAlign
	Padding int
	Bold    bool
}

// NewLabel creates a label with the given caption
func NewLabel(ctx *Context, text string) *Label {
	t := &Label{text: text}
	t.initGrid(ctx)
	return t
}

// Text returns the caption
func (t *Label) Text() string {
	return t.text
}

// SetText replaces the caption
func (t *Label) SetText(s string) {
	t.text = s
}

// Render draws the caption inside the bounds. Children added to the grid
// are not drawn over the caption.
func (t *Label) Render() string {
	return t.renderCaption(t.text)
}

func (t *Label) renderCaption(caption string) string {
	w, h := t.bounds.W, t.bounds.H
	if w <= 0 || h <= 0 {
		return ""
	}

	inner := w - 2*t.Padding
	if inner < 0 {
		inner = 0
	}
	pad := strings.Repeat(" ", (w-inner)/2)
	line := pad + render.Fit(caption, inner, t.HAlign)
	line = render.PadRight(line, w)

	at := 0
	switch t.VAlign {
	case VAlignCenter:
		at = (h - 1) / 2
	case VAlignBottom:
		at = h - 1
	}
	empty := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = empty
	}
	lines[at] = line

	return t.textStyle().Render(strings.Join(lines, "\n"))
}

func (t *Label) textStyle() lipgloss.Style {
	return t.style().Bold(t.Bold)
}
