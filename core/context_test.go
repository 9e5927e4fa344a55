package core

import (
	"context"
	"testing"
	"time"

	"metric-report/config"
)

type closingQuerier struct {
	StubQuerier
	closed bool
}

func (q *closingQuerier) Close() error {
	q.closed = true
	return nil
}

func TestNewReportContext_MergeParams(t *testing.T) {
	cfg := &config.RunConfig{
		Parameters: map[string]string{
			"env":    "prod",
			"region": "us",
		},
	}

	ctx := NewReportContext(cfg, nil, nil, map[string]string{
		"env":   "dev",
		"extra": "1",
	})

	if ctx.Parameters["env"] != "dev" {
		t.Fatalf("env = %s, want dev", ctx.Parameters["env"])
	}
	if ctx.Parameters["region"] != "us" {
		t.Fatalf("region = %s, want us", ctx.Parameters["region"])
	}
	if ctx.Parameters["extra"] != "1" {
		t.Fatalf("extra = %s, want 1", ctx.Parameters["extra"])
	}
	if ctx.Logger == nil {
		t.Fatalf("a default logger is expected")
	}
}

func TestNewReportContext_DynamicDates(t *testing.T) {
	cfg := &config.RunConfig{
		Parameters: map[string]string{
			"today":  "$date:day:day:0",
			"broken": "$date:week:day:0",
		},
	}
	ctx := NewReportContext(cfg, nil, nil, nil)

	want := ctx.Now.Format("2006-01-02")
	if ctx.Parameters["today"] != want {
		t.Fatalf("today = %s, want %s", ctx.Parameters["today"], want)
	}
	if ctx.Parameters["broken"] != "$date:week:day:0" {
		t.Fatalf("an invalid dynamic date must keep its raw value, got %s", ctx.Parameters["broken"])
	}
	if time.Since(ctx.Now) > time.Minute {
		t.Fatalf("Now = %v is not the current time", ctx.Now)
	}
}

func TestReportContext_Query(t *testing.T) {
	q := &closingQuerier{StubQuerier: StubQuerier{Results: map[string]*ResultSet{
		"select 1": {Columns: []string{"v"}, Rows: []map[string]interface{}{{"v": int64(1)}}},
	}}}
	ctx := NewReportContext(&config.RunConfig{}, q, nil, nil)

	rs, err := ctx.Query(context.Background(), "select 1")
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(rs.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rs.Rows))
	}
	if _, err := ctx.Query(context.Background(), "select 2"); err == nil {
		t.Fatalf("expected error for an unknown query")
	}

	if err := ctx.Close(); err != nil {
		t.Fatalf("Close error: %v", err)
	}
	if !q.closed {
		t.Fatalf("Close must close the querier")
	}
}

func TestReportContext_NoQuerier(t *testing.T) {
	ctx := NewReportContext(&config.RunConfig{}, nil, nil, nil)
	if _, err := ctx.Query(context.Background(), "select 1"); err == nil {
		t.Fatalf("expected error without a querier")
	}
	if err := ctx.Close(); err != nil {
		t.Fatalf("Close without a querier = %v", err)
	}
}
