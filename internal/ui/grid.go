package ui

import "github.com/charmbracelet/lipgloss"

// Definition sizes one grid row or column. Size 0 shares the space left
// after the fixed definitions.
type Definition struct {
	Size int
}

// Definitions is an ordered, mutable list of row or column definitions
type Definitions struct {
	items []*Definition
}

// Add appends a definition and returns it
func (d *Definitions) Add(def *Definition) *Definition {
	if def == nil {
		def = &Definition{}
	}
	d.items = append(d.items, def)
	return def
}

// Clear removes every definition
func (d *Definitions) Clear() {
	d.items = d.items[:0]
}

// Len returns the number of definitions
func (d *Definitions) Len() int {
	return len(d.items)
}

// At returns the definition at index i
func (d *Definitions) At(i int) *Definition {
	return d.items[i]
}

// sizes resolves the definitions against total cells. An empty list acts
// as a single filling definition.
func (d *Definitions) sizes(total int) []int {
	if len(d.items) == 0 {
		return []int{total}
	}
	requested := make([]int, len(d.items))
	for i, def := range d.items {
		requested[i] = def.Size
	}
	return distribute(requested, total)
}

// GridPanel places each child in the cell named by its row and column.
// Placement is metadata on the child; geometry is resolved here on arrange.
type GridPanel struct {
	rows     Definitions
	cols     Definitions
	children *Children

	rowSizes []int
	colSizes []int
}

// NewGridPanel creates an empty grid
func NewGridPanel() *GridPanel {
	return &GridPanel{children: NewChildren()}
}

// Children returns the panel's collection
func (p *GridPanel) Children() *Children {
	return p.children
}

// Arrange resolves row and column sizes and places every child in its
// cell. Out of range placements are clamped to the last row or column.
func (p *GridPanel) Arrange(r Rect) {
	p.rowSizes = p.rows.sizes(r.H)
	p.colSizes = p.cols.sizes(r.W)
	rowOffsets := offsets(p.rowSizes)
	colOffsets := offsets(p.colSizes)

	p.children.Each(func(_ int, c Node) {
		row := clamp(c.Base().row, len(p.rowSizes)-1)
		col := clamp(c.Base().col, len(p.colSizes)-1)
		c.Arrange(Rect{
			X: r.X + colOffsets[col],
			Y: r.Y + rowOffsets[row],
			W: p.colSizes[col],
			H: p.rowSizes[row],
		})
	})
}

// Render composes the cells row by row. When several children share a
// cell the last one wins.
func (p *GridPanel) Render(r Rect) string {
	if len(p.rowSizes) == 0 || len(p.colSizes) == 0 {
		return blank(r.W, r.H)
	}
	cells := make([][]Node, len(p.rowSizes))
	for i := range cells {
		cells[i] = make([]Node, len(p.colSizes))
	}
	p.children.Each(func(_ int, c Node) {
		row := clamp(c.Base().row, len(p.rowSizes)-1)
		col := clamp(c.Base().col, len(p.colSizes)-1)
		cells[row][col] = c
	})

	lines := make([]string, 0, len(p.rowSizes))
	for i, h := range p.rowSizes {
		if h <= 0 {
			continue
		}
		parts := make([]string, 0, len(p.colSizes))
		for j, w := range p.colSizes {
			if w <= 0 {
				continue
			}
			if c := cells[i][j]; c != nil {
				parts = append(parts, fit(c.Render(), w, h))
			} else {
				parts = append(parts, blank(w, h))
			}
		}
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return fit(lipgloss.JoinVertical(lipgloss.Left, lines...), r.W, r.H)
}

// Grid is an element whose panel is a GridPanel, with helpers to place
// children automatically or explicitly.
type Grid struct {
	Element
	panel *GridPanel
}

// NewGrid creates a grid element in ctx
func NewGrid(ctx *Context) *Grid {
	g := &Grid{}
	g.initGrid(ctx)
	return g
}

func (g *Grid) initGrid(ctx *Context) {
	g.panel = NewGridPanel()
	g.init(ctx, g.panel)
}

// Rows returns the row definitions
func (g *Grid) Rows() *Definitions {
	return &g.panel.rows
}

// Columns returns the column definitions
func (g *Grid) Columns() *Definitions {
	return &g.panel.cols
}

// Split appends rows row definitions and cols column definitions, then
// places the existing children left to right, top to bottom, wrapping
// every cols children. It is a one-time pass: children added later are not
// packed.
func (g *Grid) Split(rows, cols int) *Grid {
	for i := 0; i < rows; i++ {
		g.Rows().Add(nil)
	}
	for i := 0; i < cols; i++ {
		g.Columns().Add(nil)
	}

	r, c := 0, 0
	g.panel.children.Each(func(_ int, n Node) {
		SetCell(n, r, c)
		c++
		if c >= cols {
			r++
			c = 0
		}
	})
	return g
}

// Add appends n to the children and places it at (row, col)
func (g *Grid) Add(n Node, row, col int) Node {
	g.panel.children.Add(n)
	SetCell(n, row, col)
	return n
}

// SetCell writes the grid placement of n. No layout happens until the next
// arrange pass.
func SetCell(n Node, row, col int) {
	b := n.Base()
	b.row = row
	b.col = col
}

func offsets(sizes []int) []int {
	out := make([]int, len(sizes))
	sum := 0
	for i, s := range sizes {
		out[i] = sum
		sum += s
	}
	return out
}

func clamp(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}
