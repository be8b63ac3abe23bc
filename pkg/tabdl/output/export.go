// Package output writes downloaded tables to files.
package output

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/models"
	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/parser"
	"github.com/xuri/excelize/v2"
)

// Format is an export file format.
type Format string

const (
	// FormatCSV writes comma-separated text.
	FormatCSV Format = "csv"
	// FormatXLSX writes an Excel workbook.
	FormatXLSX Format = "xlsx"
)

// SheetName is the worksheet that receives the table in xlsx exports.
const SheetName = "Sheet1"

// ParseFormat validates a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q (must be csv or xlsx)", ErrUnknownFormat, s)
	}
}

// FormatFromPath infers the format from the file extension.
// Anything other than .xlsx is treated as csv.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// Export writes the table to path in the given format, replacing any existing
// file. Failures are returned as *ExportError.
func Export(t *models.Table, path string, format Format) error {
	var err error
	switch format {
	case FormatCSV:
		err = exportCSV(t, path)
	case FormatXLSX:
		err = exportXLSX(t, path)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err != nil {
		return NewExportError(path, format, err)
	}
	return nil
}

func exportCSV(t *models.Table, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteCSV(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCSV writes the header and rows as comma-separated text, without a row
// index column.
func WriteCSV(w io.Writer, t *models.Table) error {
	buf := bufio.NewWriter(w)
	csvWriter := csv.NewWriter(buf)
	if err := csvWriter.Write(t.Columns); err != nil {
		return err
	}
	if err := csvWriter.WriteAll(t.Rows); err != nil {
		return err
	}
	return buf.Flush()
}

func exportXLSX(t *models.Table, path string) error {
	f, err := ToXLSX(t)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

// ToXLSX builds a workbook holding the table on SheetName, with numeric
// values stored as numbers and an autofilter on the header row.
func ToXLSX(t *models.Table) (*excelize.File, error) {
	f := excelize.NewFile()

	header := make([]interface{}, len(t.Columns))
	for i, name := range t.Columns {
		header[i] = name
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		f.Close()
		return nil, err
	}

	for r, row := range t.Rows {
		cells := make([]interface{}, len(row))
		for i, v := range row {
			cells[i] = cellValue(v)
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			f.Close()
			return nil, err
		}
	}

	if len(t.Columns) > 0 {
		rangeRef, err := parser.DataRange(len(t.Rows), len(t.Columns))
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.AutoFilter(SheetName, rangeRef, nil); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// cellValue types a value for a spreadsheet cell. NaN and infinities are not
// representable as numbers and stay text.
func cellValue(s string) interface{} {
	v := parser.ParseValue(s)
	if f, ok := v.(float64); ok && (math.IsNaN(f) || math.IsInf(f, 0)) {
		return s
	}
	return v
}
