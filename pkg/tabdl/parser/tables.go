package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DataRange returns the A1-style range covering a header row plus rows data
// rows across cols columns, starting at A1.
func DataRange(rows, cols int) (string, error) {
	if cols < 1 {
		return "", fmt.Errorf("invalid column count %d", cols)
	}
	if rows < 0 {
		return "", fmt.Errorf("invalid row count %d", rows)
	}

	startCell, err := excelize.CoordinatesToCellName(1, 1)
	if err != nil {
		return "", err
	}
	endCell, err := excelize.CoordinatesToCellName(cols, rows+1)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", startCell, endCell), nil
}
