package core

import (
	"context"
	"time"
)

// Querier runs free-form query text and returns rows of named fields.
type Querier interface {
	Query(ctx context.Context, text string) (*ResultSet, error)
}

// ResultSet is a query result with its columns in declared order.
type ResultSet struct {
	Columns []string
	Rows    []map[string]interface{}
}

// normalizeValue maps driver-specific representations onto the handful of
// types the renderer knows how to lay out.
func normalizeValue(v interface{}) interface{} {
	switch x := v.(type) {
	case []byte:
		return string(x)
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case float32:
		return float64(x)
	case time.Time:
		return x
	default:
		return v
	}
}
