package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel is a layout container: it owns a child collection, places the
// children inside a rectangle and composes their output.
type Panel interface {
	Children() *Children
	Arrange(r Rect)
	Render(r Rect) string
}

// Orientation is the stacking direction of a StackPanel
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// StackPanel places children one after another. Children with a fixed
// Height (vertical) or Width (horizontal) get it; the rest share what is left.
type StackPanel struct {
	Orientation Orientation
	children    *Children
}

// NewStackPanel creates an empty stack
func NewStackPanel(o Orientation) *StackPanel {
	return &StackPanel{Orientation: o, children: NewChildren()}
}

// Children returns the panel's collection
func (p *StackPanel) Children() *Children {
	return p.children
}

// Arrange places the children along the stacking axis
func (p *StackPanel) Arrange(r Rect) {
	n := p.children.Len()
	if n == 0 {
		return
	}

	total := r.H
	if p.Orientation == Horizontal {
		total = r.W
	}
	requested := make([]int, n)
	p.children.Each(func(i int, c Node) {
		if p.Orientation == Horizontal {
			requested[i] = c.Base().Width
		} else {
			requested[i] = c.Base().Height
		}
	})
	sizes := distribute(requested, total)

	offset := 0
	p.children.Each(func(i int, c Node) {
		if p.Orientation == Horizontal {
			c.Arrange(Rect{X: r.X + offset, Y: r.Y, W: sizes[i], H: r.H})
		} else {
			c.Arrange(Rect{X: r.X, Y: r.Y + offset, W: r.W, H: sizes[i]})
		}
		offset += sizes[i]
	})
}

// Render joins the children's blocks and pads the result to r
func (p *StackPanel) Render(r Rect) string {
	var parts []string
	p.children.Each(func(_ int, c Node) {
		b := c.Base().bounds
		if b.Empty() {
			return
		}
		parts = append(parts, c.Render())
	})
	if len(parts) == 0 {
		return blank(r.W, r.H)
	}
	var s string
	if p.Orientation == Horizontal {
		s = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	} else {
		s = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return fit(s, r.W, r.H)
}

// Stack is an element whose panel is a StackPanel
type Stack struct {
	Element
	panel *StackPanel
}

// NewStack creates a stack element in ctx
func NewStack(ctx *Context, o Orientation) *Stack {
	s := &Stack{panel: NewStackPanel(o)}
	s.init(ctx, s.panel)
	return s
}

// Panel returns the stack's panel
func (s *Stack) Panel() *StackPanel {
	return s.panel
}

// distribute gives every fixed request its size (capped by what remains)
// and shares the remainder evenly between the zero requests, handing the
// leftover cells to the first ones.
func distribute(requested []int, total int) []int {
	sizes := make([]int, len(requested))
	remaining := total
	fill := 0
	for i, req := range requested {
		if req <= 0 {
			fill++
			continue
		}
		if req > remaining {
			req = remaining
		}
		if req < 0 {
			req = 0
		}
		sizes[i] = req
		remaining -= req
	}
	if fill == 0 || remaining <= 0 {
		return sizes
	}
	share, extra := remaining/fill, remaining%fill
	for i, req := range requested {
		if req > 0 {
			continue
		}
		sizes[i] = share
		if extra > 0 {
			sizes[i]++
			extra--
		}
	}
	return sizes
}

// blank returns a w x h block of spaces
func blank(w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	line := strings.Repeat(" ", w)
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}

// fit pads or clips s to exactly w x h cells
func fit(s string, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Width(w).MaxWidth(w).
		Height(h).MaxHeight(h).
		Render(s)
}
