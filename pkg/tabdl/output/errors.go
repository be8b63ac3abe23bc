package output

import (
	"errors"
	"fmt"
)

// ErrUnknownFormat indicates an export format other than csv or xlsx.
var ErrUnknownFormat = errors.New("unknown export format")

// ExportError represents a failure writing a table to a file.
type ExportError struct {
	Path   string
	Format Format
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s to %s: %v", e.Format, e.Path, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// NewExportError creates a new ExportError.
func NewExportError(path string, format Format, err error) *ExportError {
	return &ExportError{Path: path, Format: format, Err: err}
}
