package parser

import (
	"fmt"
	"strconv"

	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/models"
	"github.com/xuri/excelize/v2"
)

// ReadSheet reads a sheet into a Table.
// The first row is the header; shorter rows are padded with empty values.
func ReadSheet(f *excelize.File, sheetName string) (*models.Table, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	header := rows[0]
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	table := &models.Table{Columns: header, Rows: make([][]string, 0, len(rows)-1)}
	for rowIdx, row := range rows[1:] {
		if len(row) > len(header) {
			return nil, fmt.Errorf("row %d has %d cells, header has %d", rowIdx+2, len(row), len(header))
		}
		// GetRows trims trailing empty cells
		padded := make([]string, len(header))
		copy(padded, row)
		table.Rows = append(table.Rows, padded)
	}

	return table, nil
}

// ParseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func ParseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	// Return as string
	return s
}
