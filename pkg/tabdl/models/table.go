// Package models defines data structures for view downloads.
package models

import "fmt"

// Table is a two-dimensional result: ordered column names plus rows of values.
// Every row has exactly len(Columns) values.
type Table struct {
	// Columns holds the column names in order.
	Columns []string `json:"columns"`
	// Rows holds the cell values, one slice per row.
	Rows [][]string `json:"rows"`
}

// NumRows returns the number of data rows.
func (t *Table) NumRows() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// ColumnIndex returns the position of each column name.
func (t *Table) ColumnIndex() map[string]int {
	idx := make(map[string]int, len(t.Columns))
	for i, name := range t.Columns {
		idx[name] = i
	}
	return idx
}

// Project returns a copy of the table restricted and reordered to columns.
// Columns of t that are not listed are dropped. A listed column that t does
// not have is an error.
func (t *Table) Project(columns []string) (*Table, error) {
	idx := t.ColumnIndex()
	positions := make([]int, len(columns))
	for i, name := range columns {
		pos, ok := idx[name]
		if !ok {
			return nil, fmt.Errorf("column %q missing from table with columns %q", name, t.Columns)
		}
		positions[i] = pos
	}

	out := &Table{
		Columns: append([]string(nil), columns...),
		Rows:    make([][]string, len(t.Rows)),
	}
	for r, row := range t.Rows {
		projected := make([]string, len(positions))
		for i, pos := range positions {
			projected[i] = row[pos]
		}
		out.Rows[r] = projected
	}
	return out, nil
}

// Concat appends the rows of tables to a new table with the given columns.
// Each table must already have exactly those columns in that order.
func Concat(columns []string, tables ...*Table) (*Table, error) {
	total := 0
	for _, t := range tables {
		total += t.NumRows()
	}

	out := &Table{
		Columns: append([]string(nil), columns...),
		Rows:    make([][]string, 0, total),
	}
	for i, t := range tables {
		if !sameColumns(t.Columns, columns) {
			return nil, fmt.Errorf("table %d has columns %q, want %q", i, t.Columns, columns)
		}
		out.Rows = append(out.Rows, t.Rows...)
	}
	return out, nil
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
