// Package table implements a virtualized, scroll-driven table widget: a
// fixed pool of row views sized to the viewport is re-bound to a window of
// an item source on every render or scroll step.
package table

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/tableview/internal/render"
)

// Column describes one table column
type Column struct {
	// Name is the record field shown in the column. An empty name makes a
	// spacer column whose cells stay blank.
	Name string

	// Header is the header caption; empty means Name
	Header string

	// Width is a fixed width in cells; 0 shares the remaining space
	Width int

	Align      render.Align
	Background lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
}

// HeaderText returns Header, falling back to Name
func (c Column) HeaderText() string {
	if c.Header != "" {
		return c.Header
	}
	return c.Name
}

// Columns is an ordered, mutable column set. Order is left-to-right cell
// order and is preserved from insertion.
type Columns struct {
	items []*Column
}

// NewColumns creates a set holding cols in order
func NewColumns(cols ...Column) *Columns {
	c := &Columns{}
	for _, col := range cols {
		c.Add(col)
	}
	return c
}

// Add appends a column and returns the stored descriptor
func (c *Columns) Add(col Column) *Column {
	stored := col
	c.items = append(c.items, &stored)
	return &stored
}

// Clear removes every column
func (c *Columns) Clear() {
	c.items = nil
}

// Len returns the number of columns
func (c *Columns) Len() int {
	return len(c.items)
}

// At returns the column at index i
func (c *Columns) At(i int) *Column {
	return c.items[i]
}

// ByName returns the first column with the given name, or nil
func (c *Columns) ByName(name string) *Column {
	for _, col := range c.items {
		if col.Name == name {
			return col
		}
	}
	return nil
}

// Snapshot copies the current descriptors. Rows built from a snapshot keep
// its geometry and style until they are rebuilt.
func (c *Columns) Snapshot() []Column {
	out := make([]Column, len(c.items))
	for i, col := range c.items {
		out[i] = *col
	}
	return out
}
