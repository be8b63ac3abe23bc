package parser

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadSheet(t *testing.T) {
	// Create a temporary Excel file for testing
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Region")
	f.SetCellValue(sheetName, "B1", "Sales")
	f.SetCellValue(sheetName, "C1", "Note")
	f.SetCellValue(sheetName, "A2", "east")
	f.SetCellValue(sheetName, "B2", 100)
	f.SetCellValue(sheetName, "C2", "ok")
	f.SetCellValue(sheetName, "A3", "west")
	f.SetCellValue(sheetName, "B3", 200.5)

	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()

	table, err := ReadSheet(f2, sheetName)
	if err != nil {
		t.Fatalf("ReadSheet failed: %v", err)
	}

	if len(table.Columns) != 3 || table.Columns[0] != "Region" || table.Columns[2] != "Note" {
		t.Errorf("Unexpected columns %q", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0][1] != "100" {
		t.Errorf("Expected '100', got %q", table.Rows[0][1])
	}
	if table.Rows[1][1] != "200.5" {
		t.Errorf("Expected '200.5', got %q", table.Rows[1][1])
	}
	// Trailing empty cell is padded
	if len(table.Rows[1]) != 3 || table.Rows[1][2] != "" {
		t.Errorf("Expected padded row, got %q", table.Rows[1])
	}
}

func TestReadSheet_Empty(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	if _, err := ReadSheet(f, "Sheet1"); err != ErrEmptyInput {
		t.Errorf("Expected ErrEmptyInput, got %v", err)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := ParseValue(tt.input)
		if result != tt.expected {
			t.Errorf("ParseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}

func TestDataRange(t *testing.T) {
	tests := []struct {
		rows     int
		cols     int
		expected string
		wantErr  bool
	}{
		{2, 2, "A1:B3", false},
		{0, 1, "A1:A1", false},
		{9, 27, "A1:AA10", false},
		{1, 0, "", true},
		{-1, 2, "", true},
	}

	for _, tt := range tests {
		result, err := DataRange(tt.rows, tt.cols)
		if (err != nil) != tt.wantErr {
			t.Errorf("DataRange(%d, %d) error = %v, wantErr %v", tt.rows, tt.cols, err, tt.wantErr)
			continue
		}
		if result != tt.expected {
			t.Errorf("DataRange(%d, %d) = %q, expected %q", tt.rows, tt.cols, result, tt.expected)
		}
	}
}
