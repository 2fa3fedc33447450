package main

import (
	"context"
	"os"

	"viaggio/internal/cli"
	"viaggio/internal/export"
	"viaggio/internal/export/google"
	"viaggio/internal/services"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger("viaggio-export")
	cfg := cli.LoadAndValidateConfig(logger)

	res := cli.OpenBackend(logger, cfg)
	defer func() {
		if err := res.Cleanup(); err != nil {
			logger.Error("Cleanup failed", "error", err)
		}
	}()

	ctx := context.Background()

	sum, err := services.NewSummaryService(res.Store).Build(ctx)
	if err != nil {
		logger.Error("Failed to build summary", "error", err)
		os.Exit(1)
	}

	var writer export.SummaryWriter
	switch cfg.ExportTarget {
	case "csv":
		writer = export.NewCSVWriter(cfg.ExportCSVPath)
	case "sheets":
		writer, err = google.NewFromEnv(ctx)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
	default:
		logger.Error("Unsupported export target", "target", cfg.ExportTarget)
		os.Exit(1)
	}

	if err := writer.WriteSummary(ctx, sum); err != nil {
		logger.Error("Export failed", "error", err, "target", cfg.ExportTarget)
		os.Exit(1)
	}
	logger.Info("Summary exported",
		"target", cfg.ExportTarget,
		"trips", len(sum.Trips))
}
