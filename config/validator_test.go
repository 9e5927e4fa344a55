package config

import (
	"strings"
	"testing"
)

func TestValidator_ValidateRunConfig(t *testing.T) {
	validator := NewValidator()
	base := func() *RunConfig {
		return DefaultRunConfig("/home/u")
	}

	tests := []struct {
		name    string
		mutate  func(*RunConfig)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "Defaults",
			mutate: func(*RunConfig) {},
		},
		{
			name:    "Missing Resource Dir",
			mutate:  func(c *RunConfig) { c.ResourceDir = "" },
			wantErr: true,
			errMsg:  "resource directory is required",
		},
		{
			name:    "Missing File Name",
			mutate:  func(c *RunConfig) { c.FileName = "" },
			wantErr: true,
			errMsg:  "report file name is required",
		},
		{
			name:    "Unknown Driver",
			mutate:  func(c *RunConfig) { c.Querier.Driver = "oracle" },
			wantErr: true,
			errMsg:  "unknown querier driver 'oracle'",
		},
		{
			name:    "MySQL Without DSN",
			mutate:  func(c *RunConfig) { c.Querier.Driver = "mysql" },
			wantErr: true,
			errMsg:  "requires a DSN",
		},
		{
			name:    "CSV Without Dir",
			mutate:  func(c *RunConfig) { c.Querier.Driver = "csv" },
			wantErr: true,
			errMsg:  "csv querier requires csvDir",
		},
		{
			name: "CSV With Dir",
			mutate: func(c *RunConfig) {
				c.Querier.Driver = "csv"
				c.Querier.CSVDir = "/data"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := validator.ValidateRunConfig(cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRunConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateRunConfig() error message = %v, want %v", err, tt.errMsg)
			}
		})
	}
}

func TestValidator_ValidateSheets(t *testing.T) {
	validator := NewValidator()
	good := MetricDescriptor{Path: "m.json", SQL: "select 1", Index: IndexColumns{"a", "b"}}

	tests := []struct {
		name    string
		sheets  []SheetSpec
		wantErr bool
		errMsg  string
	}{
		{
			name:   "Valid",
			sheets: []SheetSpec{{Name: "S1", Metrics: []MetricDescriptor{good}}, {Name: "S2"}},
		},
		{
			name:    "No Sheets",
			wantErr: true,
			errMsg:  "at least one sheet",
		},
		{
			name:    "Duplicate Sheet",
			sheets:  []SheetSpec{{Name: "S1"}, {Name: "S1"}},
			wantErr: true,
			errMsg:  "duplicate sheet name 'S1'",
		},
		{
			name:    "Blank SQL",
			sheets:  []SheetSpec{{Name: "S1", Metrics: []MetricDescriptor{{Path: "m.json", SQL: "  ", Index: IndexColumns{"a"}}}}},
			wantErr: true,
			errMsg:  "sql is required",
		},
		{
			name:    "Index Too Deep",
			sheets:  []SheetSpec{{Name: "S1", Metrics: []MetricDescriptor{{Path: "m.json", SQL: "x", Index: IndexColumns{"a", "b", "c", "d"}}}}},
			wantErr: true,
			errMsg:  "index must name 1 to 3 columns, got 4",
		},
		{
			name:    "Empty Index Column",
			sheets:  []SheetSpec{{Name: "S1", Metrics: []MetricDescriptor{{Path: "m.json", SQL: "x", Index: IndexColumns{"a", ""}}}}},
			wantErr: true,
			errMsg:  "index column 1 is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateSheets(tt.sheets)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateSheets() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err != nil && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("ValidateSheets() error message = %v, want %v", err, tt.errMsg)
			}
		})
	}
}
