// Package ui provides a small retained-mode element tree for terminal hosts:
// composable elements that own one layout panel, grid placement, text and
// button widgets, and click detection shared through a Context.
package ui

import "github.com/charmbracelet/lipgloss"

// Rect is a rectangle in terminal cells
type Rect struct {
	X, Y int
	W, H int
}

// Contains reports whether the cell (x, y) lies inside r
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no area
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Node is anything that can live in a child collection.
type Node interface {
	// Base returns the element carrying tree-wide state for this node
	Base() *Element

	// Arrange assigns the node its rectangle and lays out its children
	Arrange(r Rect)

	// Render draws the node into exactly its arranged rectangle
	Render() string
}

// Element wraps a single layout panel and turns paired pointer events into
// click notifications. Widgets embed Element and inherit Base, Arrange and
// Render from it.
type Element struct {
	ctx      *Context
	layout   Panel
	children *Children

	clickHandlers []func()
	activate      func()

	// Focusable elements take input focus when pressed
	Focusable bool

	// Width and Height request a fixed size from stacking panels; 0 means fill
	Width  int
	Height int

	Background lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor

	bounds   Rect
	row, col int
}

// NewElement creates an element owning layout. The element's child
// collection is the panel's own collection, not a copy.
func NewElement(ctx *Context, layout Panel) *Element {
	e := &Element{}
	e.init(ctx, layout)
	return e
}

func (e *Element) init(ctx *Context, layout Panel) {
	e.ctx = ctx
	e.layout = layout
	if layout != nil {
		e.children = layout.Children()
	}
}

// Base returns e
func (e *Element) Base() *Element {
	return e
}

// Context returns the context this element was created in
func (e *Element) Context() *Context {
	return e.ctx
}

// Layout returns the panel owned by this element
func (e *Element) Layout() Panel {
	return e.layout
}

// Children returns the exposed child collection. Mutating it changes the
// rendered tree on the next render with no commit step.
func (e *Element) Children() *Children {
	return e.children
}

// SetChildren replaces the exposed child collection. Composite widgets use it
// to expose an inner panel's children instead of their own.
func (e *Element) SetChildren(c *Children) {
	e.children = c
}

// Bounds returns the rectangle assigned by the last arrange pass
func (e *Element) Bounds() Rect {
	return e.bounds
}

// Row returns the grid row assigned to this element
func (e *Element) Row() int {
	return e.row
}

// Col returns the grid column assigned to this element
func (e *Element) Col() int {
	return e.col
}

// OnClick registers fn to run whenever the element is clicked
func (e *Element) OnClick(fn func()) {
	e.clickHandlers = append(e.clickHandlers, fn)
}

// IsFocused reports whether e holds input focus in its context
func (e *Element) IsFocused() bool {
	return e.ctx != nil && e.ctx.focused == e
}

// Focus moves input focus to e
func (e *Element) Focus() {
	if e.ctx != nil {
		e.ctx.Focus(e)
	}
}

// PointerDown arms the context's gesture slot with e, pre-empting any
// gesture another element had in flight.
func (e *Element) PointerDown() {
	if e.ctx != nil {
		e.ctx.armed = e
	}
}

// PointerUp fires a click if e is still the armed element. The slot is
// cleared whether or not it matched.
func (e *Element) PointerUp() {
	if e.ctx == nil {
		return
	}
	armed := e.ctx.armed
	e.ctx.armed = nil
	if armed == e {
		e.raiseClicked()
	}
}

func (e *Element) raiseClicked() {
	for _, fn := range e.clickHandlers {
		fn()
	}
	if e.activate != nil {
		e.activate()
	}
}

// Arrange stores r and lets the panel place the children
func (e *Element) Arrange(r Rect) {
	e.bounds = r
	if e.layout != nil {
		e.layout.Arrange(r)
	}
}

// Render draws the panel, or a blank block when the element has none
func (e *Element) Render() string {
	if e.layout == nil {
		return e.style().Render(blank(e.bounds.W, e.bounds.H))
	}
	return e.paint(e.layout.Render(e.bounds))
}

func (e *Element) style() lipgloss.Style {
	return lipgloss.NewStyle().
		Background(colorOr(e.Background)).
		Foreground(colorOr(e.Foreground))
}

// paint applies the element colors to an already rendered block when set
func (e *Element) paint(s string) string {
	if e.Background == nil && e.Foreground == nil {
		return s
	}
	return e.style().Render(s)
}

func colorOr(c lipgloss.TerminalColor) lipgloss.TerminalColor {
	if c == nil {
		return lipgloss.NoColor{}
	}
	return c
}
