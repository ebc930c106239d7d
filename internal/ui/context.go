package ui

import tea "github.com/charmbracelet/bubbletea"

// Context is shared by construction among the elements of one tree. It holds
// the gesture slot (the element that received the last unreleased
// pointer-down), the focused element and the key previewers.
type Context struct {
	armed   *Element
	focused *Element
	keys    []KeyPreviewer
}

// NewContext creates an idle context
func NewContext() *Context {
	return &Context{}
}

// Armed returns the element holding the gesture slot, or nil
func (c *Context) Armed() *Element {
	return c.armed
}

// Focused returns the focused element, or nil
func (c *Context) Focused() *Element {
	return c.focused
}

// Focus moves input focus to e. A nil e clears focus.
func (c *Context) Focus(e *Element) {
	c.focused = e
}

// Pointer is a pointer event translated into a node's local coordinates
type Pointer struct {
	X, Y   int
	Clicks int
}

// PointerHandler receives pointer presses for every node on the hit path,
// outermost first, before the gesture slot is updated.
type PointerHandler interface {
	HandlePointerDown(p Pointer)
}

// WheelHandler receives wheel movement. delta is positive when the wheel
// moves up. Returning true stops the event from reaching outer nodes.
type WheelHandler interface {
	HandleWheel(delta float64) bool
}

// KeyPreviewer sees every key before normal handling, wherever focus is
type KeyPreviewer interface {
	PreviewKey(msg tea.KeyMsg) bool
}

// AddKeyPreview registers p to see every key delivered through Key
func (c *Context) AddKeyPreview(p KeyPreviewer) {
	c.keys = append(c.keys, p)
}

// RemoveKeyPreview unregisters p
func (c *Context) RemoveKeyPreview(p KeyPreviewer) {
	for i, k := range c.keys {
		if k == p {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			return
		}
	}
}

// Key offers msg to the previewers in registration order and reports
// whether one of them handled it.
func (c *Context) Key(msg tea.KeyMsg) bool {
	for _, p := range c.keys {
		if p.PreviewKey(msg) {
			return true
		}
	}
	return false
}

// PointerDown dispatches a press at (x, y) in root coordinates. The deepest
// focusable node on the hit path takes focus, pointer handlers on the path
// are notified, and the deepest node arms the gesture slot.
func (c *Context) PointerDown(root Node, x, y, clicks int) {
	path := HitPath(root, x, y)
	if len(path) == 0 {
		return
	}

	for i := len(path) - 1; i >= 0; i-- {
		if b := path[i].Base(); b.Focusable {
			c.Focus(b)
			break
		}
	}

	for _, n := range path {
		if h, ok := n.(PointerHandler); ok {
			b := n.Base().bounds
			h.HandlePointerDown(Pointer{X: x - b.X, Y: y - b.Y, Clicks: clicks})
		}
	}

	path[len(path)-1].Base().PointerDown()
}

// PointerUp dispatches a release at (x, y). Releasing outside the tree
// cancels any gesture in flight.
func (c *Context) PointerUp(root Node, x, y int) {
	path := HitPath(root, x, y)
	if len(path) == 0 {
		c.armed = nil
		return
	}
	path[len(path)-1].Base().PointerUp()
}

// Wheel bubbles wheel movement from the deepest node outwards until a
// handler accepts it.
func (c *Context) Wheel(root Node, x, y int, delta float64) bool {
	path := HitPath(root, x, y)
	for i := len(path) - 1; i >= 0; i-- {
		if h, ok := path[i].(WheelHandler); ok && h.HandleWheel(delta) {
			return true
		}
	}
	return false
}

// HitPath returns the nodes containing (x, y) from root down to the deepest
// one. Later children are on top of earlier ones.
func HitPath(root Node, x, y int) []Node {
	if root == nil || !root.Base().bounds.Contains(x, y) {
		return nil
	}
	path := []Node{root}
	for {
		layout := path[len(path)-1].Base().layout
		if layout == nil {
			return path
		}
		children := layout.Children()
		if children == nil {
			return path
		}
		var hit Node
		for i := children.Len() - 1; i >= 0; i-- {
			n := children.At(i)
			if n.Base().bounds.Contains(x, y) {
				hit = n
				break
			}
		}
		if hit == nil {
			return path
		}
		path = append(path, hit)
	}
}
