package core

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// CsvQuerier answers queries from CSV files, for dry runs without a
// database. The query text names a file under RootDir, with or without the
// ".csv" extension; the first record is the header.
type CsvQuerier struct {
	RootDir string
}

func NewCsvQuerier(rootDir string) *CsvQuerier {
	return &CsvQuerier{RootDir: rootDir}
}

func (q *CsvQuerier) Query(_ context.Context, text string) (*ResultSet, error) {
	name := strings.TrimSpace(text)
	if !strings.HasSuffix(name, ".csv") {
		name += ".csv"
	}
	filePath := filepath.Join(q.RootDir, filepath.Clean("/"+name))

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv file %s: %w", filePath, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv content: %w", err)
	}
	if len(records) < 1 {
		return &ResultSet{}, nil
	}

	header := records[0]
	rs := &ResultSet{Columns: header}
	for _, record := range records[1:] {
		item := make(map[string]interface{}, len(header))
		for j, col := range header {
			if j < len(record) {
				item[col] = parseCSVValue(record[j])
			} else {
				item[col] = nil
			}
		}
		rs.Rows = append(rs.Rows, item)
	}
	return rs, nil
}

// parseCSVValue types a CSV field: integers, then floats, else text. An
// empty field is a missing value.
func parseCSVValue(s string) interface{} {
	if s == "" {
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
