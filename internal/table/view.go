package table

import (
	"math"
	"reflect"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/tableview/internal/document"
	"github.com/young1lin/tableview/internal/render"
	"github.com/young1lin/tableview/internal/ui"
)

const (
	// DefaultItemHeight is the height of one row in layout units
	DefaultItemHeight = 30

	// DefaultLineUnits is the number of layout units in one terminal line
	DefaultLineUnits = 30
)

// Sized is an item source that knows its length and can be indexed
type Sized interface {
	Len() int
	At(i int) any
}

// View is a virtualized table. It keeps one row view per visible line of
// items and re-binds those rows to the window starting at FirstVisible.
//
// Item height must be positive; the view does not check it.
type View struct {
	ui.Grid

	columns *Columns
	header  *Row
	body    *bodyStack
	bar     *ScrollBar
	rows    []*Row
	scroll  ScrollRange

	items      []any
	itemHeight float64
	viewport   float64
	visible    int
	arranged   bool

	accessor document.Accessor
	onOpen   []func(item any)

	// Keys are matched while the view has focus
	Keys KeyMap

	// LineUnits converts terminal lines to layout units when the view is
	// arranged by a terminal host
	LineUnits float64
}

// NewView creates an empty, focusable table in ctx. The view previews every
// key delivered through ctx and reacts only while focused.
func NewView(ctx *ui.Context) *View {
	v := &View{
		Grid:       *ui.NewGrid(ctx),
		columns:    NewColumns(),
		header:     NewHeader(ctx),
		itemHeight: DefaultItemHeight,
		accessor:   document.FromObject,
		Keys:       DefaultKeyMap(),
		LineUnits:  DefaultLineUnits,
	}
	v.body = &bodyStack{Stack: ui.NewStack(ctx, ui.Vertical), view: v}
	v.bar = newScrollBar(ctx, v)
	v.Focusable = true

	v.Children().Add(v.header, v.body)
	v.Split(2, 1)
	v.Rows().At(0).Size = v.rowLines()
	v.Columns().Add(&ui.Definition{Size: 1})
	v.Add(v.bar, 1, 1)

	v.scroll.OnChange(func(_, _ int) { v.bind() })
	ctx.AddKeyPreview(v)
	return v
}

// TableColumns returns the column set. After editing it in place call
// Invalidate so the rows are rebuilt.
func (v *View) TableColumns() *Columns {
	return v.columns
}

// SetColumns replaces the column set and rebuilds the rows
func (v *View) SetColumns(c *Columns) {
	if c == nil {
		c = NewColumns()
	}
	v.columns = c
	v.Invalidate()
}

// SetItems assigns the item source. Slices, arrays and Sized values are
// copied into a fixed snapshot; later changes to source are not seen until
// it is assigned again. nil or any other shape leaves the table empty.
func (v *View) SetItems(source any) {
	v.items = snapshot(source)
	v.Invalidate()
}

// Items returns the current snapshot, nil when there is no item source
func (v *View) Items() []any {
	return v.items
}

// ItemCount returns the number of items in the snapshot
func (v *View) ItemCount() int {
	return len(v.items)
}

// ItemAt returns the item at index
func (v *View) ItemAt(index int) (any, bool) {
	if index < 0 || index >= len(v.items) {
		return nil, false
	}
	return v.items[index], true
}

// ItemHeight returns the row height in layout units
func (v *View) ItemHeight() float64 {
	return v.itemHeight
}

// SetItemHeight changes the row height. h must be positive.
func (v *View) SetItemHeight(h float64) {
	v.itemHeight = h
	v.Invalidate()
}

// SetAccessor replaces the record accessor; nil restores document.FromObject
func (v *View) SetAccessor(a document.Accessor) {
	if a == nil {
		a = document.FromObject
	}
	v.accessor = a
	v.bind()
}

// OnOpen registers fn to receive the item of a double-clicked row
func (v *View) OnOpen(fn func(item any)) {
	v.onOpen = append(v.onOpen, fn)
}

// FirstVisible returns the index of the item in the first row
func (v *View) FirstVisible() int {
	return v.scroll.Value()
}

// SetFirstVisible scrolls to index i. Values below 0 become 0 and values at
// or above the scroll maximum become maximum-1, so the maximum itself is
// only reachable through the scroll bar.
func (v *View) SetFirstVisible(i int) {
	max := v.scroll.Maximum()
	if i < 0 {
		i = 0
	} else if i >= max {
		i = max - 1
	}
	v.scroll.SetValue(i)
}

// ScrollMaximum returns max(0, items - visible rows)
func (v *View) ScrollMaximum() int {
	return v.scroll.Maximum()
}

// Scroll returns the scroll range control
func (v *View) Scroll() *ScrollRange {
	return &v.scroll
}

// VisibleRowCount returns how many rows fit the viewport
func (v *View) VisibleRowCount() int {
	return v.visible
}

// TableRows returns the row pool in display order
func (v *View) TableRows() []*Row {
	return v.rows
}

// Header returns the header row
func (v *View) Header() *Row {
	return v.header
}

// RowAt returns the item index rendered at body offset y (layout units), or
// -1 when no live row is there.
func (v *View) RowAt(y float64) int {
	if y < 0 {
		return -1
	}
	i := int(math.Floor(y / v.itemHeight))
	if i >= len(v.rows) {
		return -1
	}
	return v.rows[i].RowIndex
}

// Refresh re-measures for a viewport of the given height and renders
func (v *View) Refresh(viewportHeight float64) {
	v.viewport = viewportHeight
	v.measure()
	v.bind()
}

// Invalidate re-measures and renders with the last known viewport. It does
// nothing before the first Refresh or Arrange.
func (v *View) Invalidate() {
	switch {
	case v.arranged:
		v.Arrange(v.Bounds())
	case v.viewport > 0:
		v.Refresh(v.viewport)
	}
}

// Arrange lays the table out in r: the header takes one row height, the
// body the rest, and the scroll bar the last column. Every row is drawn
// rowLines tall, so the viewport holds whole rows of the body lines.
func (v *View) Arrange(r ui.Rect) {
	lines := v.rowLines()
	v.Rows().At(0).Size = lines
	body := r.H - lines
	if body < 0 {
		body = 0
	}
	v.arranged = true
	v.Refresh(float64(body/lines) * v.itemHeight)
	v.Grid.Arrange(r)
}

// measure rebuilds the row pool and header for the current columns and
// viewport, then resets the scroll range.
func (v *View) measure() {
	visible := int(math.Floor(v.viewport / v.itemHeight))
	if visible < 0 {
		visible = 0
	}
	v.visible = visible

	cols := v.columns.Snapshot()
	lines := v.rowLines()
	v.body.Children().Clear()
	v.rows = make([]*Row, 0, visible)
	for i := 0; i < visible; i++ {
		r := NewRow(v.Context())
		r.Height = lines
		r.SetColumns(cols)
		v.body.Children().Add(r)
		v.rows = append(v.rows, r)
	}
	v.header.SetColumns(cols)

	max := 0
	if v.items != nil {
		max = len(v.items) - visible
	}
	v.scroll.SetMaximum(max)
}

// bind writes the window of items starting at FirstVisible into the rows.
// Rows past the end of the items are blanked.
func (v *View) bind() {
	if v.items == nil {
		return
	}
	cols := v.columns.Snapshot()
	k := v.FirstVisible()
	for _, r := range v.rows {
		if k >= len(v.items) {
			r.blank()
			continue
		}
		doc := v.accessor(v.items[k])
		r.RowIndex = k
		k++
		for _, c := range r.Cells() {
			name := ""
			if i := c.ColumnIndex(); i >= 0 && i < len(cols) {
				name = cols[i].Name
			}
			if name == "" {
				c.SetText("")
				continue
			}
			c.SetText(doc.GetString(name))
		}
	}
}

// OpenAt raises the open notification for the row at body offset y
func (v *View) OpenAt(y float64) {
	index := v.FirstVisible() + int(math.Floor(y/v.itemHeight))
	item, ok := v.ItemAt(index)
	if !ok {
		return
	}
	for _, fn := range v.onOpen {
		fn(item)
	}
}

// Wheel scrolls by delta/itemHeight rows; wheel up moves towards the first
// item.
func (v *View) Wheel(delta float64) bool {
	v.SetFirstVisible(v.FirstVisible() - int(delta/v.itemHeight))
	return true
}

// HandlePointerDown opens the row under a double click in the body
func (v *View) HandlePointerDown(p ui.Pointer) {
	lines := v.Rows().At(0).Size
	if p.Y < lines || p.X >= v.Bounds().W-1 {
		return
	}
	if p.Clicks >= 2 {
		v.OpenAt(float64((p.Y-lines)/v.rowLines()) * v.itemHeight)
	}
}

// bodyStack holds the row pool and scrolls the view under the wheel
type bodyStack struct {
	*ui.Stack
	view *View
}

func (b *bodyStack) HandleWheel(delta float64) bool {
	return b.view.Wheel(delta)
}

// PreviewKey scrolls on navigation keys while the view is focused
func (v *View) PreviewKey(msg tea.KeyMsg) bool {
	if !v.IsFocused() {
		return false
	}
	switch {
	case key.Matches(msg, v.Keys.Home):
		v.SetFirstVisible(0)
	case key.Matches(msg, v.Keys.End):
		v.SetFirstVisible(v.scroll.Maximum())
	case key.Matches(msg, v.Keys.PageDown):
		v.SetFirstVisible(v.FirstVisible() + v.visible)
	case key.Matches(msg, v.Keys.PageUp):
		v.SetFirstVisible(v.FirstVisible() - v.visible)
	case key.Matches(msg, v.Keys.Down):
		v.SetFirstVisible(v.FirstVisible() + 1)
	case key.Matches(msg, v.Keys.Up):
		v.SetFirstVisible(v.FirstVisible() - 1)
	default:
		return false
	}
	return true
}

// rowLines is the number of terminal lines one row occupies
func (v *View) rowLines() int {
	lines := int(math.Floor(v.itemHeight / v.LineUnits))
	if lines < 1 {
		return 1
	}
	return lines
}

// snapshot copies an item source into a fixed slice
func snapshot(source any) []any {
	switch s := source.(type) {
	case nil:
		return nil
	case []any:
		return append(make([]any, 0, len(s)), s...)
	case Sized:
		out := make([]any, s.Len())
		for i := range out {
			out[i] = s.At(i)
		}
		return out
	}

	rv := reflect.ValueOf(source)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil
	}
	if rv.Kind() == reflect.Slice && rv.IsNil() {
		return nil
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// ScrollBar draws the view's scroll range and jumps to a position when
// pressed. Unlike SetFirstVisible it can reach the scroll maximum.
type ScrollBar struct {
	ui.Element

	view *View
}

func newScrollBar(ctx *ui.Context, v *View) *ScrollBar {
	return &ScrollBar{Element: *ui.NewElement(ctx, nil), view: v}
}

// HandlePointerDown moves the scroll value proportionally to the press
func (b *ScrollBar) HandlePointerDown(p ui.Pointer) {
	h := b.Bounds().H
	max := b.view.scroll.Maximum()
	if h <= 1 || max == 0 {
		b.view.scroll.SetValue(0)
		return
	}
	b.view.scroll.SetValue((p.Y*max + (h-1)/2) / (h - 1))
}

func (b *ScrollBar) HandleWheel(delta float64) bool {
	return b.view.Wheel(delta)
}

// Render draws the track with the thumb highlighted while the view has focus
func (b *ScrollBar) Render() string {
	r := b.Bounds()
	if r.Empty() {
		return ""
	}
	color := lipgloss.Color("239")
	if b.view.IsFocused() {
		color = lipgloss.Color("86")
	}
	track := render.ScrollTrackString(r.H, b.view.scroll.Value(), b.view.scroll.Maximum(), b.view.visible)
	return lipgloss.NewStyle().Foreground(color).Render(track)
}
