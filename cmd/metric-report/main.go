package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"metric-report/config"
	"metric-report/core"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	// Database drivers
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/marcboeker/go-duckdb"
	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		slog.Error("Report failed", "error", err)
		os.Exit(1)
	}
}

func run(output io.Writer, args []string) error {
	flags := flag.NewFlagSet("metric-report", flag.ContinueOnError)
	flags.SetOutput(output)

	configFile := flags.String("config", "", "Path to run configuration (YAML, optional)")
	resourceDir := flags.String("resources", "", "Descriptor directory (default ~/"+config.DefaultResourceDir+")")
	reportDir := flags.String("reports", "", "Directory for the report file (default ~/"+config.DefaultReportDir+")")
	querierType := flags.String("querier", "", "Query engine: duckdb, mysql, postgres, sqlite3, csv, dynamodb")
	dsn := flags.String("dsn", "", "Database connection string (DSN)")
	csvDir := flags.String("csv-dir", "", "CSV directory for the csv querier")
	s3Bucket := flags.String("s3-bucket", "", "S3 bucket name for uploading the report")
	s3Prefix := flags.String("s3-prefix", "", "S3 prefix (folder) for the uploaded report")

	if err := flags.Parse(args); err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// 1. Run configuration
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}
	cfg := config.DefaultRunConfig(home)
	if *configFile != "" {
		slog.Info("Loading run configuration", "file", *configFile)
		if cfg, err = config.LoadRunConfig(*configFile, home); err != nil {
			return err
		}
	}
	override(&cfg.ResourceDir, *resourceDir)
	override(&cfg.ReportDir, *reportDir)
	override(&cfg.Querier.Driver, *querierType)
	override(&cfg.Querier.DSN, *dsn)
	override(&cfg.Querier.CSVDir, *csvDir)
	override(&cfg.S3.Bucket, *s3Bucket)
	override(&cfg.S3.Prefix, *s3Prefix)
	if err := config.NewValidator().ValidateRunConfig(cfg); err != nil {
		return err
	}

	ctx := context.Background()

	// 2. Query session
	querier, err := newQuerier(ctx, cfg.Querier)
	if err != nil {
		return err
	}
	reportCtx := core.NewReportContext(cfg, querier, logger, nil)
	defer func() {
		if err := reportCtx.Close(); err != nil {
			slog.Warn("Closing query session failed", "error", err)
		}
	}()

	// 3. Render
	slog.Info("Generating report", "resources", cfg.ResourceDir, "querier", cfg.Querier.Driver)
	generator := core.NewGenerator(reportCtx, config.NewDirectoryProvider(cfg.ResourceDir))
	outputPath, err := generator.Generate(ctx)
	if err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	slog.Info("Successfully generated", "file", outputPath)

	// 4. Upload
	if cfg.S3.Bucket != "" {
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return fmt.Errorf("unable to load AWS SDK config for S3: %w", err)
		}
		uploader := core.NewS3Uploader(awsCfg, cfg.S3.Bucket, cfg.S3.Prefix)
		key, err := uploader.UploadReport(ctx, outputPath)
		if err != nil {
			return err
		}
		slog.Info("Successfully uploaded to S3", "bucket", cfg.S3.Bucket, "key", key)
	}
	return nil
}

func newQuerier(ctx context.Context, qc config.QuerierConfig) (core.Querier, error) {
	switch qc.Driver {
	case "csv":
		slog.Info("Initializing CSV querier", "dir", qc.CSVDir)
		return core.NewCsvQuerier(qc.CSVDir), nil
	case "dynamodb":
		slog.Info("Initializing DynamoDB querier")
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
		}
		return core.NewDynamoDBQuerier(awsCfg), nil
	default:
		slog.Info("Initializing SQL querier", "driver", qc.Driver)
		return core.OpenSQLQuerier(ctx, qc.Driver, qc.DSN)
	}
}

func override(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
