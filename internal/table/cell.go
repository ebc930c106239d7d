package table

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/tableview/internal/ui"
)

// CellKind tells data cells from header cells
type CellKind int

const (
	CellData CellKind = iota
	CellHeader
)

// Cell is a styled label that knows its column through its grid placement
type Cell struct {
	ui.Label

	Kind CellKind
}

// CellFactory builds the cell for one column of a row
type CellFactory func(ctx *ui.Context, col Column) *Cell

// ColumnIndex returns the cell's position in its row
func (c *Cell) ColumnIndex() int {
	return c.Col()
}

// DataCell builds an empty cell carrying the column's alignment and colors
func DataCell(ctx *ui.Context, col Column) *Cell {
	c := &Cell{Label: *ui.NewLabel(ctx, ""), Kind: CellData}
	c.HAlign = col.Align
	c.VAlign = ui.VAlignCenter
	c.Padding = 1
	c.Background = col.Background
	c.Foreground = col.Foreground
	return c
}

// HeaderCell builds a bold cell showing the column header. Header cells use
// the header row's colors rather than the column's.
func HeaderCell(ctx *ui.Context, col Column) *Cell {
	c := &Cell{Label: *ui.NewLabel(ctx, col.HeaderText()), Kind: CellHeader}
	c.HAlign = col.Align
	c.VAlign = ui.VAlignCenter
	c.Padding = 1
	c.Bold = true
	return c
}

// HeaderBackground is the default background of header rows
var HeaderBackground lipgloss.TerminalColor = lipgloss.AdaptiveColor{Light: "255", Dark: "236"}
