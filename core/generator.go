package core

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"metric-report/config"
)

type Generator struct {
	Context  *ReportContext
	Provider config.Provider
}

func NewGenerator(ctx *ReportContext, provider config.Provider) *Generator {
	return &Generator{Context: ctx, Provider: provider}
}

// OutputPath is where the report is saved: the configured file name with
// parameters substituted, inside the report directory.
func (g *Generator) OutputPath() string {
	cfg := g.Context.Config
	name := replacePlaceholders(cfg.FileName, g.Context.Parameters)
	if filepath.Ext(name) != ".xlsx" {
		name += ".xlsx"
	}
	return filepath.Join(cfg.ReportDir, name)
}

// Generate renders every sheet and metric into a new workbook and saves it.
// Any descriptor or query failure aborts the run before anything is saved.
func (g *Generator) Generate(ctx context.Context) (outputPath string, err error) {
	sheets, err := g.Provider.Sheets()
	if err != nil {
		return "", fmt.Errorf("failed to load report layout: %w", err)
	}
	if err := config.NewValidator().ValidateSheets(sheets); err != nil {
		return "", err
	}

	f := NewExcelFile()
	defer func(f ExcelFile) {
		if closeErr := f.Close(); closeErr != nil {
			if err == nil {
				err = fmt.Errorf("failed to close workbook: %w", closeErr)
			} else {
				err = fmt.Errorf("%w; (cleanup error: %v)", err, closeErr)
			}
		}
	}(f)

	if err := createSheets(f, sheets); err != nil {
		return "", err
	}
	for i := range sheets {
		if err := g.processSheet(ctx, f, &sheets[i]); err != nil {
			return "", fmt.Errorf("processing sheet %s: %w", sheets[i].Name, err)
		}
	}

	for _, sheet := range f.GetSheetList() {
		_ = f.SetSelection(sheet, "A1")
	}
	f.SetActiveSheet(0)

	outputPath = g.OutputPath()
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := f.SaveAs(outputPath); err != nil {
		return "", fmt.Errorf("failed to save output: %w", err)
	}
	return outputPath, nil
}

// createSheets lays out one worksheet per sheet spec in order; the first
// takes over the workbook's default sheet.
func createSheets(f ExcelFile, sheets []config.SheetSpec) error {
	for i, spec := range sheets {
		if i == 0 {
			if first := f.GetSheetList()[0]; first != spec.Name {
				if err := f.SetSheetName(first, spec.Name); err != nil {
					return fmt.Errorf("failed to rename sheet %s: %w", first, err)
				}
			}
			continue
		}
		if _, err := f.NewSheet(spec.Name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", spec.Name, err)
		}
	}
	return nil
}

func (g *Generator) processSheet(ctx context.Context, f ExcelFile, spec *config.SheetSpec) error {
	log := g.Context.Logger.With("sheet", spec.Name)
	sheet := NewSheet(f, spec.Name)

	row, col, err := AddressToTuple(g.Context.Config.StartCell)
	if err != nil {
		return err
	}
	for i := range spec.Metrics {
		m := &spec.Metrics[i]
		log.Info("Rendering metric", "file", m.Path, "title", m.Title)
		log.Debug("Metric query", "sql", m.SQL)

		rs, err := g.Context.Query(ctx, m.SQL)
		if err != nil {
			return fmt.Errorf("query for %s: %w", m.Path, err)
		}
		table, err := NewGroupedTable(rs, m.Index)
		if err != nil {
			return fmt.Errorf("metric %s: %w", m.Path, err)
		}
		rows, err := RenderTable(sheet, table, ToAddress(row, col), m.Title, m.IndexName)
		if err != nil {
			return fmt.Errorf("metric %s: %w", m.Path, err)
		}
		log.Debug("Metric rendered", "start", ToAddress(row, col), "rows", rows, "depth", table.Depth())
		row += rows
	}
	return AutoFitColumns(sheet)
}
