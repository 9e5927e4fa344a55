package core

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLQuerier runs query text on a database/sql connection. Any registered
// driver works; the command registers duckdb, mysql, postgres and sqlite3.
type SQLQuerier struct {
	DB         *sql.DB
	DriverName string
}

// NewSQLQuerier creates a new querier.
func NewSQLQuerier(db *sql.DB, driverName string) *SQLQuerier {
	return &SQLQuerier{
		DB:         db,
		DriverName: driverName,
	}
}

// OpenSQLQuerier opens and pings a connection.
func OpenSQLQuerier(ctx context.Context, driverName, dsn string) (*SQLQuerier, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}
	return NewSQLQuerier(db, driverName), nil
}

func (q *SQLQuerier) Query(ctx context.Context, text string) (*ResultSet, error) {
	rows, err := q.DB.QueryContext(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}

	rs := &ResultSet{Columns: columns}
	for rows.Next() {
		values := make([]interface{}, len(columns))
		valuePtrs := make([]interface{}, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}

		entry := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			entry[col] = normalizeValue(values[i])
		}
		rs.Rows = append(rs.Rows, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return rs, nil
}

func (q *SQLQuerier) Close() error {
	return q.DB.Close()
}
