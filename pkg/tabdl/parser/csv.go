// Package parser decodes tabular payloads and sheets into Tables.
package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/models"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrEmptyInput indicates the payload holds no header row.
var ErrEmptyInput = errors.New("empty tabular input")

// ErrInvalidEncoding indicates the payload is not valid UTF-8.
var ErrInvalidEncoding = errors.New("input is not valid UTF-8")

// ParseCSV decodes comma-separated UTF-8 text into a Table.
// The first record is the header. A leading byte order mark is dropped.
func ParseCSV(data []byte) (*models.Table, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidEncoding
	}
	text, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(bytes.TrimSpace(text)) == 0 {
		return nil, ErrEmptyInput
	}

	r := csv.NewReader(bytes.NewReader(text))
	r.Comma = ','

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyInput
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	table := &models.Table{Columns: header, Rows: [][]string{}}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(table.Rows)+1, err)
		}
		table.Rows = append(table.Rows, record)
	}
	return table, nil
}

// checkHeader rejects headers that cannot address columns by name.
func checkHeader(header []string) error {
	seen := make(map[string]struct{}, len(header))
	for i, name := range header {
		if name == "" {
			return fmt.Errorf("header column %d has no name", i+1)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("duplicate header column %q", name)
		}
		seen[name] = struct{}{}
	}
	return nil
}
