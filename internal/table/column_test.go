package table

import (
	"reflect"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/tableview/internal/render"
	"github.com/young1lin/tableview/internal/ui"
)

func TestColumn_HeaderText(t *testing.T) {
	if got := (Column{Name: "ten"}).HeaderText(); got != "ten" {
		t.Errorf("HeaderText() = %q, want ten", got)
	}
	if got := (Column{Name: "ten", Header: "Name"}).HeaderText(); got != "Name" {
		t.Errorf("HeaderText() = %q, want Name", got)
	}
}

func TestColumns_ByNameReturnsFirstMatch(t *testing.T) {
	c := NewColumns(
		Column{Name: "id", Header: "first"},
		Column{Name: "ten"},
		Column{Name: "id", Header: "second"},
	)

	got := c.ByName("id")
	if got == nil {
		t.Fatal("ByName(id) = nil")
	}
	if got.Header != "first" {
		t.Errorf("ByName(id).Header = %q, want first", got.Header)
	}
	if c.ByName("missing") != nil {
		t.Error("ByName(missing) != nil")
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestColumns_AddClearAndSnapshot(t *testing.T) {
	c := NewColumns()
	col := c.Add(Column{Name: "cap"})
	col.Width = 12

	snap := c.Snapshot()
	col.Width = 20
	if snap[0].Width != 12 {
		t.Errorf("snapshot width = %d, want 12", snap[0].Width)
	}
	if c.At(0).Width != 20 {
		t.Errorf("At(0).Width = %d, want 20", c.At(0).Width)
	}

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
}

func TestRow_SetColumnsIsIdempotent(t *testing.T) {
	r := NewRow(ui.NewContext())
	cols := []Column{
		{Name: "id", Width: 6, Align: render.AlignRight},
		{Name: "ten"},
		{Name: "cap", Width: 10},
	}

	r.SetColumns(cols)
	r.SetColumns(cols)

	if got := r.Children().Len(); got != 3 {
		t.Fatalf("children = %d, want 3", got)
	}
	if got := r.Columns().Len(); got != 3 {
		t.Fatalf("column definitions = %d, want 3", got)
	}
	var sizes []int
	for i := 0; i < r.Columns().Len(); i++ {
		sizes = append(sizes, r.Columns().At(i).Size)
	}
	if want := []int{6, 0, 10}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("sizes = %v, want %v", sizes, want)
	}
	for i, c := range r.Cells() {
		if c.ColumnIndex() != i {
			t.Errorf("cell %d ColumnIndex() = %d", i, c.ColumnIndex())
		}
		if c.Kind != CellData {
			t.Errorf("cell %d Kind = %v, want CellData", i, c.Kind)
		}
	}
	if r.Cells()[0].HAlign != render.AlignRight {
		t.Errorf("cell 0 HAlign = %v, want right", r.Cells()[0].HAlign)
	}
	if r.RowIndex != -1 {
		t.Errorf("RowIndex = %d, want -1", r.RowIndex)
	}
}

func TestRow_CapturesColumnsAtRebuild(t *testing.T) {
	r := NewRow(ui.NewContext())
	cols := NewColumns(Column{Name: "id", Width: 4})
	r.SetColumns(cols.Snapshot())

	cols.At(0).Width = 9
	if got := r.Columns().At(0).Size; got != 4 {
		t.Errorf("size = %d, want 4 until the next rebuild", got)
	}
	r.SetColumns(cols.Snapshot())
	if got := r.Columns().At(0).Size; got != 9 {
		t.Errorf("size = %d, want 9", got)
	}
}

func TestHeader_Cells(t *testing.T) {
	h := NewHeader(ui.NewContext())
	h.SetColumns([]Column{
		{Name: "id", Background: lipgloss.Color("1")},
		{Name: "ten", Header: "Name"},
	})

	if got, want := h.Texts(), []string{"id", "Name"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Texts() = %q, want %q", got, want)
	}
	if h.Background != HeaderBackground {
		t.Errorf("Background = %v, want HeaderBackground", h.Background)
	}
	for i, c := range h.Cells() {
		if c.Kind != CellHeader || !c.Bold {
			t.Errorf("cell %d is not a bold header cell", i)
		}
		if c.Background != nil {
			t.Errorf("cell %d Background = %v, want nil", i, c.Background)
		}
	}
}

func TestRow_CustomFactory(t *testing.T) {
	calls := 0
	r := NewRowWith(ui.NewContext(), func(ctx *ui.Context, col Column) *Cell {
		calls++
		c := DataCell(ctx, col)
		c.SetText("[" + col.Name + "]")
		return c
	})
	r.SetColumns([]Column{{Name: "a"}, {Name: "b"}})

	if calls != 2 {
		t.Errorf("factory calls = %d, want 2", calls)
	}
	if got, want := r.Texts(), []string{"[a]", "[b]"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Texts() = %q, want %q", got, want)
	}
}

func TestScrollRange(t *testing.T) {
	var s ScrollRange
	var changes [][2]int
	s.OnChange(func(old, v int) { changes = append(changes, [2]int{old, v}) })

	s.SetValue(5)
	if s.Value() != 0 {
		t.Errorf("Value() = %d with maximum 0, want 0", s.Value())
	}

	s.SetMaximum(10)
	s.SetValue(7)
	s.SetValue(7)
	s.SetValue(-3)
	s.SetValue(99)
	s.SetMaximum(4)
	s.SetMaximum(-1)

	want := [][2]int{{0, 7}, {7, 0}, {0, 10}, {10, 4}, {4, 0}}
	if !reflect.DeepEqual(changes, want) {
		t.Errorf("changes = %v, want %v", changes, want)
	}
	if s.Maximum() != 0 {
		t.Errorf("Maximum() = %d, want 0", s.Maximum())
	}
}
