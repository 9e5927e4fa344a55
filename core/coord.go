package core

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ToAddress converts a 1-based (row, col) pair to a cell address like "B2".
// Callers only pass coordinates produced by the layout code, so the
// conversion error is not surfaced.
func ToAddress(row, col int) string {
	cell, _ := excelize.CoordinatesToCellName(col, row)
	return cell
}

// AddressToTuple splits a cell address into its 1-based row and column.
func AddressToTuple(addr string) (row, col int, err error) {
	col, row, err = excelize.CellNameToCoordinates(addr)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cell address %q: %w", addr, err)
	}
	return row, col, nil
}

// Region is a rectangular span of cells, inclusive on all sides.
type Region struct {
	Top, Left, Bottom, Right int
}

// NewRegion builds a region from two corners given in any order.
func NewRegion(row1, col1, row2, col2 int) Region {
	if row2 < row1 {
		row1, row2 = row2, row1
	}
	if col2 < col1 {
		col1, col2 = col2, col1
	}
	return Region{Top: row1, Left: col1, Bottom: row2, Right: col2}
}

// CellRegion is the single-cell region at (row, col).
func CellRegion(row, col int) Region {
	return Region{Top: row, Left: col, Bottom: row, Right: col}
}

// ParseRegion parses "A1:C3" or a single address "B2".
func ParseRegion(ref string) (Region, error) {
	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return Region{}, fmt.Errorf("invalid range: %s", ref)
	}
	r1, c1, err := AddressToTuple(parts[0])
	if err != nil {
		return Region{}, err
	}
	if len(parts) == 1 {
		return CellRegion(r1, c1), nil
	}
	r2, c2, err := AddressToTuple(parts[1])
	if err != nil {
		return Region{}, err
	}
	return NewRegion(r1, c1, r2, c2), nil
}

// TopLeft returns the address of the region's first cell.
func (r Region) TopLeft() string { return ToAddress(r.Top, r.Left) }

// BottomRight returns the address of the region's last cell.
func (r Region) BottomRight() string { return ToAddress(r.Bottom, r.Right) }

// Ref renders the region as "B2:D3".
func (r Region) Ref() string { return r.TopLeft() + ":" + r.BottomRight() }

func (r Region) Single() bool { return r.Top == r.Bottom && r.Left == r.Right }

func (r Region) Rows() int { return r.Bottom - r.Top + 1 }

func (r Region) Cols() int { return r.Right - r.Left + 1 }

// Contains reports whether (row, col) lies inside the region.
func (r Region) Contains(row, col int) bool {
	return row >= r.Top && row <= r.Bottom && col >= r.Left && col <= r.Right
}
