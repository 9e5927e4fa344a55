package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// MaxDepth is the deepest grouping the renderer lays out.
const MaxDepth = 3

var (
	ErrUnsupportedDepth = errors.New("unsupported grouping depth")
	ErrUnknownColumn    = errors.New("unknown column")
)

// GroupedTable is a query result indexed by one to three grouping columns.
// Index columns are ordered outer to inner and are not part of Columns.
type GroupedTable struct {
	Index   []string
	Columns []string
	// Levels holds, per grouping level, its distinct values in sorted order.
	Levels [][]interface{}

	rows  []map[string]interface{}
	byKey map[string]map[string]interface{}
}

// NewGroupedTable indexes rs by the given columns.
func NewGroupedTable(rs *ResultSet, index []string) (*GroupedTable, error) {
	if len(index) < 1 || len(index) > MaxDepth {
		return nil, fmt.Errorf("%w: %d index columns (want 1 to %d)", ErrUnsupportedDepth, len(index), MaxDepth)
	}

	known := make(map[string]bool, len(rs.Columns))
	for _, c := range rs.Columns {
		known[c] = true
	}
	isIndex := make(map[string]bool, len(index))
	for _, name := range index {
		if !known[name] {
			return nil, fmt.Errorf("%w: index column %q not in result", ErrUnknownColumn, name)
		}
		isIndex[name] = true
	}

	t := &GroupedTable{
		Index:  append([]string(nil), index...),
		Levels: make([][]interface{}, len(index)),
		rows:   rs.Rows,
		byKey:  make(map[string]map[string]interface{}, len(rs.Rows)),
	}
	for _, c := range rs.Columns {
		if !isIndex[c] {
			t.Columns = append(t.Columns, c)
		}
	}

	seen := make([]map[string]struct{}, len(index))
	for i := range seen {
		seen[i] = make(map[string]struct{})
	}
	for _, row := range rs.Rows {
		keys := make([]interface{}, len(index))
		for i, name := range index {
			v := row[name]
			keys[i] = v
			if v == nil {
				continue
			}
			k := keyString(v)
			if _, ok := seen[i][k]; !ok {
				seen[i][k] = struct{}{}
				t.Levels[i] = append(t.Levels[i], v)
			}
		}
		// Duplicate coordinates keep their first row.
		k := joinKeys(keys)
		if _, ok := t.byKey[k]; !ok {
			t.byKey[k] = row
		}
	}
	for _, level := range t.Levels {
		sort.SliceStable(level, func(a, b int) bool {
			return compareValues(level[a], level[b]) < 0
		})
	}
	return t, nil
}

// Depth is the number of grouping levels.
func (t *GroupedTable) Depth() int { return len(t.Index) }

// RowCount is the number of result rows.
func (t *GroupedTable) RowCount() int { return len(t.rows) }

// LeafCount is the number of body rows the table renders to: the row count
// for a flat table, otherwise the number of innermost level values.
func (t *GroupedTable) LeafCount() int {
	if t.Depth() == 1 {
		return t.RowCount()
	}
	return len(t.Levels[len(t.Levels)-1])
}

// Cell returns column of the i-th row in result order.
func (t *GroupedTable) Cell(i int, column string) (interface{}, bool) {
	if i < 0 || i >= len(t.rows) {
		return nil, false
	}
	v, ok := t.rows[i][column]
	return v, ok
}

// Lookup returns the first value column at the full index coordinate.
// A missing combination is reported with ok == false.
func (t *GroupedTable) Lookup(keys ...interface{}) (interface{}, bool) {
	if len(keys) != t.Depth() || len(t.Columns) == 0 {
		return nil, false
	}
	row, ok := t.byKey[joinKeys(keys)]
	if !ok {
		return nil, false
	}
	v, ok := row[t.Columns[0]]
	return v, ok
}

func keyString(v interface{}) string {
	if tm, ok := v.(time.Time); ok {
		return tm.Format(time.RFC3339Nano)
	}
	return fmt.Sprint(v)
}

func joinKeys(keys []interface{}) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		if k == nil {
			parts[i] = "\x00"
			continue
		}
		parts[i] = keyString(k)
	}
	return strings.Join(parts, "\x1f")
}

// compareValues orders numbers numerically, times chronologically and
// everything else by its text.
func compareValues(a, b interface{}) int {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			switch {
			case fa < fb:
				return -1
			case fa > fb:
				return 1
			}
			return 0
		}
	}
	if ta, ok := a.(time.Time); ok {
		if tb, ok := b.(time.Time); ok {
			return ta.Compare(tb)
		}
	}
	return strings.Compare(keyString(a), keyString(b))
}

// toFloat reports numeric values as float64.
func toFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	}
	return 0, false
}
