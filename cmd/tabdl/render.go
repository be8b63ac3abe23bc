package main

import (
	"fmt"
	"io"

	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/models"
	"github.com/jedib0t/go-pretty/v6/table"
)

func renderWorkbooks(w io.Writer, workbooks []models.WorkbookRef) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "ID", "Project"})
	for _, wb := range workbooks {
		t.AppendRow(table.Row{wb.Name, wb.ID, wb.ProjectName})
	}
	t.Render()
}

func renderViews(w io.Writer, views []models.ViewRef) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "ID", "Content URL"})
	for _, v := range views {
		t.AppendRow(table.Row{v.Name, v.ID, v.ContentURL})
	}
	t.Render()
}

// renderPreview prints up to limit rows of a downloaded table.
func renderPreview(w io.Writer, data *models.Table, limit int) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(data.Columns))
	for i, c := range data.Columns {
		header[i] = c
	}
	t.AppendHeader(header)

	for _, r := range data.Rows[:min(limit, len(data.Rows))] {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = v
		}
		t.AppendRow(row)
	}
	if len(data.Rows) > limit {
		t.AppendFooter(table.Row{fmt.Sprintf("%d of %d rows", limit, len(data.Rows))})
	}
	t.Render()
}
