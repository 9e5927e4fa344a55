package core

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

const (
	minColumnChars = 4
	columnPadding  = 2
	columnScale    = 1.2
)

// AutoFitColumns sizes every used column of s to its longest written value.
// Cells inside merged regions are ignored since they span several columns.
func AutoFitColumns(s *Sheet) error {
	maxRow, maxCol := s.Extent()
	for col := 1; col <= maxCol; col++ {
		longest := minColumnChars
		for row := 1; row <= maxRow; row++ {
			if s.InMerge(row, col) {
				continue
			}
			v, ok := s.Value(row, col)
			if !ok {
				continue
			}
			if n := utf8.RuneCountInString(displayText(v)); n > longest {
				longest = n
			}
		}
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return err
		}
		if err := s.file.SetColWidth(s.name, name, name, ColumnWidth(longest)); err != nil {
			return fmt.Errorf("set width of %s!%s: %w", s.name, name, err)
		}
	}
	return nil
}

// ColumnWidth converts a character count into a column width.
func ColumnWidth(chars int) float64 {
	return float64(chars+columnPadding) * columnScale
}

// displayText is the text used to measure a value. Floats count with two
// decimals regardless of their display format.
func displayText(v interface{}) string {
	switch x := v.(type) {
	case float64:
		return fmt.Sprintf("%.2f", x)
	case float32:
		return fmt.Sprintf("%.2f", x)
	case time.Time:
		return x.Format("2006-01-02 15:04:05")
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}
