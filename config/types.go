package config

import (
	"encoding/json"
	"fmt"
)

// IndexColumns is the grouping key of a metric, outer level first. In JSON
// it may be a single column name or a list of names.
type IndexColumns []string

func (c *IndexColumns) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*c = IndexColumns{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("index must be a column name or a list of column names: %w", err)
	}
	*c = many
	return nil
}

// MetricDescriptor: one metric of a report sheet
type MetricDescriptor struct {
	Path      string       `json:"-"`
	SQL       string       `json:"sql"`
	Index     IndexColumns `json:"index"`
	IndexName string       `json:"index_name"`
	Title     string       `json:"title"`
}

// SheetSpec: one report sheet and its metrics in stacking order
type SheetSpec struct {
	Name    string
	Metrics []MetricDescriptor
}

// QuerierConfig selects the query collaborator.
type QuerierConfig struct {
	Driver string `json:"driver" yaml:"driver"` // "duckdb", "mysql", "postgres", "sqlite3", "csv", "dynamodb"
	DSN    string `json:"dsn,omitempty" yaml:"dsn,omitempty"`
	CSVDir string `json:"csvDir,omitempty" yaml:"csvDir,omitempty"`
}

// S3Config: optional upload target for the finished report
type S3Config struct {
	Bucket string `json:"bucket,omitempty" yaml:"bucket,omitempty"`
	Prefix string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
}

// RunConfig: everything the driver needs besides the descriptors
type RunConfig struct {
	ResourceDir string            `json:"resourceDir" yaml:"resourceDir"`
	ReportDir   string            `json:"reportDir"   yaml:"reportDir"`
	FileName    string            `json:"fileName"    yaml:"fileName"` // may hold ${param} placeholders
	StartCell   string            `json:"startCell"   yaml:"startCell"`
	Querier     QuerierConfig     `json:"querier"     yaml:"querier"`
	S3          S3Config          `json:"s3,omitempty" yaml:"s3,omitempty"`
	Parameters  map[string]string `json:"parameters,omitempty" yaml:"parameters,omitempty"`
}
