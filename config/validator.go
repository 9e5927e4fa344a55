package config

import (
	"fmt"
	"strings"
)

// MaxIndexColumns is the deepest grouping key a descriptor may name.
const MaxIndexColumns = 3

var knownDrivers = map[string]bool{
	"duckdb":   true,
	"mysql":    true,
	"postgres": true,
	"sqlite3":  true,
	"csv":      true,
	"dynamodb": true,
}

// Validator validates the configuration objects.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRunConfig validates the RunConfig.
func (v *Validator) ValidateRunConfig(cfg *RunConfig) error {
	if cfg.ResourceDir == "" {
		return fmt.Errorf("resource directory is required")
	}
	if cfg.ReportDir == "" {
		return fmt.Errorf("report directory is required")
	}
	if cfg.FileName == "" {
		return fmt.Errorf("report file name is required")
	}
	if cfg.StartCell == "" {
		return fmt.Errorf("start cell is required")
	}
	if !knownDrivers[cfg.Querier.Driver] {
		return fmt.Errorf("unknown querier driver '%s'", cfg.Querier.Driver)
	}
	switch cfg.Querier.Driver {
	case "mysql", "postgres":
		if cfg.Querier.DSN == "" {
			return fmt.Errorf("querier driver '%s' requires a DSN", cfg.Querier.Driver)
		}
	case "csv":
		if cfg.Querier.CSVDir == "" {
			return fmt.Errorf("csv querier requires csvDir")
		}
	}
	return nil
}

// ValidateSheets validates every sheet and its descriptors.
func (v *Validator) ValidateSheets(sheets []SheetSpec) error {
	if len(sheets) == 0 {
		return fmt.Errorf("report must have at least one sheet")
	}
	seen := make(map[string]bool, len(sheets))
	for i := range sheets {
		s := &sheets[i]
		if s.Name == "" {
			return fmt.Errorf("sheet %d name is required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate sheet name '%s'", s.Name)
		}
		seen[s.Name] = true
		for j := range s.Metrics {
			if err := v.ValidateDescriptor(&s.Metrics[j]); err != nil {
				return fmt.Errorf("sheet '%s' metric %d error: %w", s.Name, j, err)
			}
		}
	}
	return nil
}

// ValidateDescriptor validates the MetricDescriptor.
func (v *Validator) ValidateDescriptor(d *MetricDescriptor) error {
	if strings.TrimSpace(d.SQL) == "" {
		return fmt.Errorf("descriptor %s: sql is required", d.Path)
	}
	if len(d.Index) == 0 || len(d.Index) > MaxIndexColumns {
		return fmt.Errorf("descriptor %s: index must name 1 to %d columns, got %d", d.Path, MaxIndexColumns, len(d.Index))
	}
	for i, c := range d.Index {
		if c == "" {
			return fmt.Errorf("descriptor %s: index column %d is empty", d.Path, i)
		}
	}
	return nil
}
