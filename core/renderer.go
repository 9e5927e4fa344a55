package core

import "fmt"

// Layout is the header/body geometry used for a table, chosen by its
// grouping depth.
type Layout int

const (
	// LayoutFlat: one header row of column names, one body row per result row.
	LayoutFlat Layout = iota + 1
	// LayoutTwoLevel: outer values across, leaf values down.
	LayoutTwoLevel
	// LayoutThreeLevel: merged outer headers over mid-level sub-headers,
	// leaf values down.
	LayoutThreeLevel
)

func (l Layout) String() string {
	switch l {
	case LayoutFlat:
		return "flat"
	case LayoutTwoLevel:
		return "two-level"
	case LayoutThreeLevel:
		return "three-level"
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// blankPadding is the number of empty rows left under every rendered table.
const blankPadding = 2

// LayoutFor maps a grouping depth onto its layout.
func LayoutFor(depth int) (Layout, error) {
	switch depth {
	case 1:
		return LayoutFlat, nil
	case 2:
		return LayoutTwoLevel, nil
	case 3:
		return LayoutThreeLevel, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedDepth, depth)
}

// RowsConsumed is the vertical extent RenderTable claims for t: the title
// and header rows, at least one body row, and the blank padding.
func RowsConsumed(t *GroupedTable) int {
	leaves := t.LeafCount()
	if leaves < 1 {
		leaves = 1
	}
	return t.Depth() + leaves + blankPadding
}

// RenderTable lays out t with its title at start and returns the number of
// rows the block consumes, so that the next table can start below it.
func RenderTable(s *Sheet, t *GroupedTable, start, title, indexLabel string) (int, error) {
	layout, err := LayoutFor(t.Depth())
	if err != nil {
		return 0, err
	}
	row, col, err := AddressToTuple(start)
	if err != nil {
		return 0, err
	}
	if err := SetTitle(s, row, col, title); err != nil {
		return 0, err
	}

	r := &tableRenderer{sheet: s, table: t, row: row, col: col, indexLabel: indexLabel}
	switch layout {
	case LayoutFlat:
		err = r.flat()
	case LayoutTwoLevel:
		err = r.twoLevel()
	case LayoutThreeLevel:
		err = r.threeLevel()
	}
	if err != nil {
		return 0, fmt.Errorf("render %s table %q: %w", layout, title, err)
	}
	return RowsConsumed(t), nil
}

type tableRenderer struct {
	sheet      *Sheet
	table      *GroupedTable
	row, col   int
	indexLabel string
}

// flat writes the column names on the start row and one row per record
// below it. Floats are shown as integers; they arrive pre-rounded.
func (r *tableRenderer) flat() error {
	for j, name := range r.table.Columns {
		if err := SetHeader(r.sheet, CellRegion(r.row, r.col+j), name, false); err != nil {
			return err
		}
	}
	for i := 0; i < r.table.RowCount(); i++ {
		for j, name := range r.table.Columns {
			row, col := r.row+1+i, r.col+j
			if err := SetBody(r.sheet, CellRegion(row, col)); err != nil {
				return err
			}
			v, _ := r.table.Cell(i, name)
			if err := r.sheet.SetValue(row, col, v); err != nil {
				return err
			}
			if _, ok := v.(float64); ok && !isBlank(v) {
				if err := r.sheet.ApplyStyle(row, col, CellStyle{NumFmt: numFmt(NumFmtInteger)}); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// twoLevel puts the index label and one column per outer value on the row
// under the title, and the leaf values down the first column.
func (r *tableRenderer) twoLevel() error {
	outer, leaves := r.table.Levels[0], r.table.Levels[1]
	headerRow, bodyRow := r.row+1, r.row+2

	if err := SetHeader(r.sheet, CellRegion(headerRow, r.col), r.indexLabel, false); err != nil {
		return err
	}
	for k, name := range outer {
		if err := SetHeader(r.sheet, CellRegion(headerRow, r.col+1+k), name, false); err != nil {
			return err
		}
	}
	if len(leaves) == 0 {
		return nil
	}

	if err := SetBody(r.sheet, NewRegion(bodyRow, r.col, bodyRow+len(leaves)-1, r.col)); err != nil {
		return err
	}
	for i, leaf := range leaves {
		if err := r.sheet.SetValue(bodyRow+i, r.col, leaf); err != nil {
			return err
		}
	}
	for k, o := range outer {
		valueCol := r.col + 1 + k
		if err := SetBodyNumeric(r.sheet, NewRegion(bodyRow, valueCol, bodyRow+len(leaves)-1, valueCol)); err != nil {
			return err
		}
		for i, leaf := range leaves {
			if err := r.writeValue(bodyRow+i, valueCol, o, leaf); err != nil {
				return err
			}
		}
	}
	return nil
}

// threeLevel spans each outer value across its mid-level sub-headers, with
// the index label merged over both header rows.
func (r *tableRenderer) threeLevel() error {
	outer, mids, leaves := r.table.Levels[0], r.table.Levels[1], r.table.Levels[2]
	topRow, subRow, bodyRow := r.row+1, r.row+2, r.row+3

	if err := SetHeader(r.sheet, NewRegion(topRow, r.col, subRow, r.col), r.indexLabel, true); err != nil {
		return err
	}
	if len(mids) == 0 {
		return nil
	}
	col := r.col + 1
	for _, o := range outer {
		span := NewRegion(topRow, col, topRow, col+len(mids)-1)
		if err := SetHeader(r.sheet, span, o, true); err != nil {
			return err
		}
		for j, m := range mids {
			if err := r.sheet.SetValue(subRow, col+j, m); err != nil {
				return err
			}
		}
		if err := SetHeader(r.sheet, NewRegion(subRow, col, subRow, col+len(mids)-1), nil, false); err != nil {
			return err
		}
		col += len(mids)
	}
	if len(leaves) == 0 {
		return nil
	}

	lastRow := bodyRow + len(leaves) - 1
	if err := SetBody(r.sheet, NewRegion(bodyRow, r.col, lastRow, r.col)); err != nil {
		return err
	}
	writeIndex := true
	valueCol := r.col + 1
	for _, o := range outer {
		block := NewRegion(bodyRow, valueCol, lastRow, valueCol+len(mids)-1)
		if err := SetBodyNumeric(r.sheet, block); err != nil {
			return err
		}
		for _, m := range mids {
			for i, leaf := range leaves {
				if writeIndex {
					if err := r.sheet.SetValue(bodyRow+i, r.col, leaf); err != nil {
						return err
					}
				}
				if err := r.writeValue(bodyRow+i, valueCol, o, m, leaf); err != nil {
					return err
				}
			}
			writeIndex = false
			valueCol++
		}
	}
	return nil
}

// writeValue looks up the coordinate and writes it with its number format.
// Missing combinations are written as empty text and keep the General format.
func (r *tableRenderer) writeValue(row, col int, keys ...interface{}) error {
	v, ok := r.table.Lookup(keys...)
	if !ok || isBlank(v) {
		return r.sheet.SetValue(row, col, "")
	}
	if err := r.sheet.SetValue(row, col, v); err != nil {
		return err
	}
	if id, ok := valueFormat(v); ok {
		return r.sheet.ApplyStyle(row, col, CellStyle{NumFmt: numFmt(id)})
	}
	return nil
}
