package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// doubleClickWindow is the longest gap between presses that still counts
// as a repeated click
const doubleClickWindow = 400 * time.Millisecond

// clickCounter counts consecutive presses on the same cell. The terminal
// reports single presses only.
type clickCounter struct {
	now   func() time.Time
	x, y  int
	count int
	last  time.Time
}

func newClickCounter(now func() time.Time) *clickCounter {
	if now == nil {
		now = time.Now
	}
	return &clickCounter{now: now}
}

// press records a press at (x, y) and returns the click count
func (c *clickCounter) press(x, y int) int {
	t := c.now()
	if c.count > 0 && x == c.x && y == c.y && t.Sub(c.last) <= doubleClickWindow {
		c.count++
	} else {
		c.count = 1
	}
	c.x, c.y, c.last = x, y, t
	return c.count
}

// handleMouseMsg maps terminal mouse events onto the element tree
func (m Model) handleMouseMsg(msg tea.MouseMsg) {
	s := m.s
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		s.ctx.Wheel(s.root, msg.X, msg.Y, s.wheelDelta)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		s.ctx.Wheel(s.root, msg.X, msg.Y, -s.wheelDelta)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		s.ctx.PointerDown(s.root, msg.X, msg.Y, s.clicks.press(msg.X, msg.Y))
	case msg.Action == tea.MouseActionRelease:
		s.ctx.PointerUp(s.root, msg.X, msg.Y)
	}
}
