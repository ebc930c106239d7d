package table

import "github.com/young1lin/tableview/internal/ui"

// Row is a grid holding one cell per column. The cell factory is the only
// difference between data rows and header rows.
type Row struct {
	ui.Grid

	factory CellFactory

	// RowIndex is the item index rendered into the row, or -1 while the row
	// is blank
	RowIndex int
}

// NewRow creates a data row
func NewRow(ctx *ui.Context) *Row {
	return NewRowWith(ctx, DataCell)
}

// NewHeader creates a header row
func NewHeader(ctx *ui.Context) *Row {
	r := NewRowWith(ctx, HeaderCell)
	r.Background = HeaderBackground
	return r
}

// NewRowWith creates a row whose cells are built by factory
func NewRowWith(ctx *ui.Context, factory CellFactory) *Row {
	r := &Row{Grid: *ui.NewGrid(ctx), factory: factory, RowIndex: -1}
	return r
}

// SetColumns discards the row's cells and column definitions and builds
// one cell per column, packed into a single grid row. Columns with a
// non-zero width get a fixed column size; the rest share the remainder.
func (r *Row) SetColumns(cols []Column) {
	r.Columns().Clear()
	r.Children().Clear()

	for _, col := range cols {
		r.Children().Add(r.factory(r.Context(), col))
	}
	r.Split(0, len(cols))
	for i, col := range cols {
		if col.Width != 0 {
			r.Columns().At(i).Size = col.Width
		}
	}
}

// Cells returns the row's cells in column order
func (r *Row) Cells() []*Cell {
	out := make([]*Cell, 0, r.Children().Len())
	r.Children().Each(func(_ int, n ui.Node) {
		if c, ok := n.(*Cell); ok {
			out = append(out, c)
		}
	})
	return out
}

// Texts returns the cell captions in column order
func (r *Row) Texts() []string {
	cells := r.Cells()
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Text()
	}
	return out
}

// blank clears every cell and marks the row as not live
func (r *Row) blank() {
	for _, c := range r.Cells() {
		c.SetText("")
	}
	r.RowIndex = -1
}
