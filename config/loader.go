package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMissingKey is returned for a descriptor lacking one of its keys.
var ErrMissingKey = errors.New("missing descriptor key")

var descriptorKeys = []string{"sql", "index", "index_name", "title"}

// Default locations, relative to the user's home directory.
const (
	DefaultResourceDir = "POLICY/resource"
	DefaultReportDir   = "POLICY/report"
	DefaultFileName    = "数据监控日报${month}月${day}日"
	DefaultStartCell   = "B2"
	DefaultDriver      = "duckdb"
)

// DefaultRunConfig builds the configuration used when none is given.
func DefaultRunConfig(home string) *RunConfig {
	return &RunConfig{
		ResourceDir: filepath.Join(home, DefaultResourceDir),
		ReportDir:   filepath.Join(home, DefaultReportDir),
		FileName:    DefaultFileName,
		StartCell:   DefaultStartCell,
		Querier:     QuerierConfig{Driver: DefaultDriver},
		Parameters: map[string]string{
			"month": "$date:m:day:0",
			"day":   "$date:d:day:0",
		},
	}
}

// LoadRunConfig reads a YAML run configuration on top of the defaults.
// A leading "~/" in directory settings is expanded to home.
func LoadRunConfig(path, home string) (*RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run config file: %w", err)
	}

	// Decoding on top of the defaults keeps unset fields; parameter maps merge.
	cfg := DefaultRunConfig(home)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse run config: %w", err)
	}
	cfg.ResourceDir = ExpandHome(cfg.ResourceDir, home)
	cfg.ReportDir = ExpandHome(cfg.ReportDir, home)
	cfg.Querier.CSVDir = ExpandHome(cfg.Querier.CSVDir, home)
	return cfg, nil
}

// ExpandHome replaces a leading "~" with home.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}

// LoadDescriptor parses one metric descriptor. Every key must be present.
func LoadDescriptor(path string) (*MetricDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor %s: %w", path, err)
	}
	for _, key := range descriptorKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("%w %q in %s", ErrMissingKey, key, path)
		}
	}

	var d MetricDescriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor %s: %w", path, err)
	}
	d.Path = path
	return &d, nil
}

// LoadSheet loads every .json descriptor directly inside dir, in path order.
func LoadSheet(dir string) (*SheetSpec, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".json" {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	sheet := &SheetSpec{Name: filepath.Base(dir)}
	for _, p := range paths {
		d, err := LoadDescriptor(p)
		if err != nil {
			return nil, err
		}
		sheet.Metrics = append(sheet.Metrics, *d)
	}
	return sheet, nil
}

// LoadResourceTree loads the report layout under root: each immediate
// subdirectory is a sheet, in directory listing order.
func LoadResourceTree(root string) ([]SheetSpec, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource dir: %w", err)
	}

	var sheets []SheetSpec
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		sheet, err := LoadSheet(filepath.Join(root, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading sheet %s: %w", entry.Name(), err)
		}
		sheets = append(sheets, *sheet)
	}
	return sheets, nil
}
