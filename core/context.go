package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"metric-report/config"
)

// ReportContext holds the state shared by one report run: configuration,
// resolved parameters, the query session and the logger. It is built once at
// startup and closed at exit; layout code never sees it.
type ReportContext struct {
	Config     *config.RunConfig
	Parameters map[string]string
	Querier    Querier
	Logger     *slog.Logger
	// Now is the run's reference time for dynamic dates.
	Now time.Time
}

// NewReportContext merges the configured parameters with params (which win)
// and resolves "$date:" values against the current time.
func NewReportContext(cfg *config.RunConfig, querier Querier, logger *slog.Logger, params map[string]string) *ReportContext {
	if logger == nil {
		logger = slog.Default()
	}
	now := time.Now()

	merged := make(map[string]string, len(cfg.Parameters)+len(params))
	for k, v := range cfg.Parameters {
		merged[k] = v
	}
	for k, v := range params {
		merged[k] = v
	}
	for k, v := range merged {
		if !strings.HasPrefix(v, dynamicDatePrefix) {
			continue
		}
		val, err := ParseDynamicDate(v, now)
		if err != nil {
			logger.Warn("Ignoring dynamic parameter", "param", k, "value", v, "error", err)
			continue
		}
		merged[k] = val
	}

	return &ReportContext{
		Config:     cfg,
		Parameters: merged,
		Querier:    querier,
		Logger:     logger,
		Now:        now,
	}
}

// Query runs text on the context's querier.
func (ctx *ReportContext) Query(c context.Context, text string) (*ResultSet, error) {
	if ctx.Querier == nil {
		return nil, fmt.Errorf("no querier configured")
	}
	rs, err := ctx.Querier.Query(c, text)
	if err != nil {
		return nil, err
	}
	ctx.Logger.Debug("Query finished", "columns", rs.Columns, "rows", len(rs.Rows))
	return rs, nil
}

// Close releases the query session, if it holds one.
func (ctx *ReportContext) Close() error {
	if c, ok := ctx.Querier.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func replacePlaceholders(input string, params map[string]string) string {
	output := input
	for k, v := range params {
		output = strings.ReplaceAll(output, fmt.Sprintf("${%s}", k), v)
	}
	return output
}
