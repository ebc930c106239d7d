package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/young1lin/tableview/internal/config"
	"github.com/young1lin/tableview/internal/render"
	"github.com/young1lin/tableview/internal/table"
)

// TableColumns converts configured columns into a table column set. Empty
// colors leave the terminal default.
func TableColumns(cfgs []config.ColumnConfig) *table.Columns {
	cols := table.NewColumns()
	for _, c := range cfgs {
		cols.Add(table.Column{
			Name:       c.Name,
			Header:     c.Header,
			Width:      c.Width,
			Align:      render.ParseAlign(c.Align),
			Background: color(c.Background),
			Foreground: color(c.Foreground),
		})
	}
	return cols
}

func color(s string) lipgloss.TerminalColor {
	if s == "" {
		return nil
	}
	return lipgloss.Color(s)
}
