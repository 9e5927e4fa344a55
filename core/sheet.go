package core

import (
	"fmt"
	"math"
)

type cellKey struct {
	row, col int
}

// Sheet is a view onto one worksheet. It remembers what the report wrote
// (values, resolved styles, merges) so that styles can be composed cell by
// cell and column widths measured without reading the workbook back.
type Sheet struct {
	file   ExcelFile
	name   string
	values map[cellKey]interface{}
	styles map[cellKey]CellStyle
	merges []Region
	maxRow int
	maxCol int
}

// NewSheet wraps an existing worksheet of f.
func NewSheet(f ExcelFile, name string) *Sheet {
	return &Sheet{
		file:   f,
		name:   name,
		values: make(map[cellKey]interface{}),
		styles: make(map[cellKey]CellStyle),
	}
}

func (s *Sheet) Name() string { return s.name }

// Extent returns the last row and column the report has touched.
func (s *Sheet) Extent() (maxRow, maxCol int) { return s.maxRow, s.maxCol }

func (s *Sheet) touch(row, col int) {
	if row > s.maxRow {
		s.maxRow = row
	}
	if col > s.maxCol {
		s.maxCol = col
	}
}

// SetValue writes v at (row, col). NaN has no xlsx representation and is
// written as an empty string.
func (s *Sheet) SetValue(row, col int, v interface{}) error {
	if f, ok := v.(float64); ok && math.IsNaN(f) {
		v = ""
	}
	if v == nil {
		v = ""
	}
	if err := s.file.SetCellValue(s.name, ToAddress(row, col), v); err != nil {
		return fmt.Errorf("set %s!%s: %w", s.name, ToAddress(row, col), err)
	}
	s.values[cellKey{row, col}] = v
	s.touch(row, col)
	return nil
}

// Value returns what the report last wrote at (row, col).
func (s *Sheet) Value(row, col int) (interface{}, bool) {
	v, ok := s.values[cellKey{row, col}]
	return v, ok
}

// Style returns the resolved style of (row, col).
func (s *Sheet) Style(row, col int) CellStyle {
	return s.styles[cellKey{row, col}]
}

// ApplyStyle overlays st on the cell's current style and writes the result.
func (s *Sheet) ApplyStyle(row, col int, st CellStyle) error {
	key := cellKey{row, col}
	resolved := s.styles[key].Overlay(st)
	id, err := s.file.NewStyle(resolved.toExcelize())
	if err != nil {
		return fmt.Errorf("create style: %w", err)
	}
	addr := ToAddress(row, col)
	if err := s.file.SetCellStyle(s.name, addr, addr, id); err != nil {
		return fmt.Errorf("style %s!%s: %w", s.name, addr, err)
	}
	s.styles[key] = resolved
	s.touch(row, col)
	return nil
}

// setEdge replaces one side of the cell's border, keeping the others.
func (s *Sheet) setEdge(row, col int, edit func(b *Border)) error {
	b := s.Style(row, col).Border.clone()
	edit(b)
	return s.ApplyStyle(row, col, CellStyle{Border: b})
}

// Merge combines the region into one logical cell.
func (s *Sheet) Merge(r Region) error {
	if r.Single() {
		return nil
	}
	if err := s.file.MergeCell(s.name, r.TopLeft(), r.BottomRight()); err != nil {
		return fmt.Errorf("merge %s!%s: %w", s.name, r.Ref(), err)
	}
	s.merges = append(s.merges, r)
	s.touch(r.Bottom, r.Right)
	return nil
}

// Merges lists the regions merged through this view.
func (s *Sheet) Merges() []Region {
	return s.merges
}

// InMerge reports whether (row, col) belongs to a merged region.
func (s *Sheet) InMerge(row, col int) bool {
	for _, m := range s.merges {
		if m.Contains(row, col) {
			return true
		}
	}
	return false
}
