package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/tableview/internal/nav"
	"github.com/young1lin/tableview/internal/render"
)

// ButtonKind selects a button's default caption and alignment
type ButtonKind int

const (
	ButtonPlain ButtonKind = iota
	ButtonMenu
)

// Button is a text element that navigates to URL when clicked
type Button struct {
	Label

	Kind ButtonKind
	URL  string

	// Radius rounds the button's border when there is room to draw one
	Radius int

	navigator nav.Navigator
}

// NewButton creates a button. Plain buttons read "Button" and are centered;
// menu buttons read "Menu Item". A nil navigator disables URL activation.
func NewButton(ctx *Context, kind ButtonKind, navigator nav.Navigator) *Button {
	b := &Button{Kind: kind, navigator: navigator}
	b.initGrid(ctx)
	b.VAlign = VAlignCenter
	b.Padding = 1
	switch kind {
	case ButtonMenu:
		b.text = "Menu Item"
	default:
		b.text = "Button"
		b.HAlign = render.AlignCenter
	}
	b.activate = b.navigate
	return b
}

// navigate runs after the click listeners
func (b *Button) navigate() {
	if b.navigator == nil || strings.TrimSpace(b.URL) == "" {
		return
	}
	b.navigator.Execute(b.URL)
}

// Render draws the caption, inside a rounded border when Radius is set and
// the button is at least three lines tall.
func (b *Button) Render() string {
	w, h := b.bounds.W, b.bounds.H
	if b.Radius <= 0 || h < 3 || w < 3 {
		return b.Label.Render()
	}
	inner := render.Fit(b.text, w-2, b.HAlign)
	return b.textStyle().
		Border(lipgloss.RoundedBorder()).
		Width(w - 2).
		Height(h - 2).
		AlignVertical(lipgloss.Center).
		Render(inner)
}

// NewHorizontalMenu creates a horizontal stack for menu buttons
func NewHorizontalMenu(ctx *Context) *Stack {
	return NewStack(ctx, Horizontal)
}

// SideMenu is a vertical menu with a caption. Its exposed children are the
// inner item stack, so added items land below the caption.
type SideMenu struct {
	Stack

	caption *Label
	items   *Stack
}

// NewSideMenu creates a side menu with an empty caption
func NewSideMenu(ctx *Context) *SideMenu {
	m := &SideMenu{
		caption: NewLabel(ctx, ""),
		items:   NewStack(ctx, Vertical),
	}
	m.panel = NewStackPanel(Vertical)
	m.init(ctx, m.panel)

	m.caption.Height = 1
	m.caption.Bold = true
	m.Children().Add(m.caption, m.items)
	m.SetChildren(m.items.Children())
	return m
}

// Text returns the caption
func (m *SideMenu) Text() string {
	return m.caption.Text()
}

// SetText replaces the caption
func (m *SideMenu) SetText(s string) {
	m.caption.SetText(s)
}

// Caption returns the caption element
func (m *SideMenu) Caption() *Label {
	return m.caption
}
