package tui

import (
	"fmt"

	"github.com/young1lin/tableview/internal/table"
	"github.com/young1lin/tableview/internal/ui"
)

// Page is the model rendered by HomeView
type Page struct {
	Title string
	Items any
}

// HomeView shows a title line above the unit table
type HomeView struct {
	root  *ui.Stack
	title *ui.Label
	table *table.View
}

var _ ui.View = (*HomeView)(nil)

// NewHomeView creates the view in ctx
func NewHomeView(ctx *ui.Context, cols *table.Columns, itemHeight, lineUnits float64) *HomeView {
	h := &HomeView{
		root:  ui.NewStack(ctx, ui.Vertical),
		title: ui.NewLabel(ctx, ""),
		table: table.NewView(ctx),
	}
	h.title.Height = 1
	h.title.Bold = true
	h.title.Padding = 1
	h.title.Foreground = primaryColor

	h.table.LineUnits = lineUnits
	h.table.SetItemHeight(itemHeight)
	h.table.SetColumns(cols)

	h.root.Children().Add(h.title, h.table)
	return h
}

// Render shows model, a Page or a bare item source, from the first row
func (h *HomeView) Render(model any) {
	page, ok := model.(Page)
	if !ok {
		page = Page{Items: model}
	}
	h.table.SetItems(page.Items)
	h.table.SetFirstVisible(0)

	title := page.Title
	if page.Items != nil {
		title = fmt.Sprintf("%s (%d)", title, h.table.ItemCount())
	}
	h.title.SetText(title)
}

// Content returns the view's root element
func (h *HomeView) Content() ui.Node {
	return h.root
}

// Title returns the title line text
func (h *HomeView) Title() string {
	return h.title.Text()
}

// Table returns the unit table
func (h *HomeView) Table() *table.View {
	return h.table
}
