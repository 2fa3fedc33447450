package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"viaggio/internal/amqp"
	"viaggio/internal/cli"
	"viaggio/internal/export"
	"viaggio/internal/export/google"
	"viaggio/internal/services"
)

// refreshInterval re-exports the summary even when no change events arrive,
// covering messages lost while the worker was down.
const refreshInterval = 15 * time.Minute

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger("viaggio-worker")
	cfg := cli.LoadAndValidateConfig(logger)

	if cfg.AMQPURL == "" {
		logger.Error("AMQP_URL is required for the worker")
		os.Exit(1)
	}

	res := cli.OpenBackend(logger, cfg)
	defer func() {
		if err := res.Cleanup(); err != nil {
			logger.Error("Cleanup failed", "error", err)
		}
	}()
	if res.Notifier == nil {
		logger.Error("Failed to connect to AMQP broker", "url", cfg.AMQPURL)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary := services.NewSummaryService(res.Store)

	writer, err := buildWriter(ctx, cfg.ExportTarget, cfg.ExportCSVPath)
	if err != nil {
		logger.Error("Failed to initialize export writer", "error", err, "target", cfg.ExportTarget)
		os.Exit(1)
	}

	exportSummary := func(ctx context.Context, reason string) error {
		sum, err := summary.Build(ctx)
		if err != nil {
			return fmt.Errorf("build summary: %w", err)
		}
		if err := writer.WriteSummary(ctx, sum); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		logger.Info("Summary exported", "reason", reason, "trips", len(sum.Trips))
		return nil
	}

	// Export once on startup so the target reflects the current data even
	// when no events arrive.
	if err := exportSummary(ctx, "startup"); err != nil {
		logger.Error("Startup export failed", "error", err)
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		handler := func(msg *amqp.RecordChangeMessage) error {
			logger.Info("Record change received",
				"set", msg.Set,
				"id", msg.ID,
				"action", msg.Action)
			return exportSummary(ctx, "change event")
		}
		return res.Notifier.ConsumeRecordChanges(ctx, handler)
	})

	g.Go(func() error {
		ticker := time.NewTicker(refreshInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				if err := exportSummary(ctx, "periodic refresh"); err != nil {
					logger.Error("Periodic export failed", "error", err)
				}
			}
		}
	})

	logger.Info("Worker started",
		"queue", cfg.AMQPQueue,
		"target", cfg.ExportTarget)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("Worker shut down")
}

func buildWriter(ctx context.Context, target, csvPath string) (export.SummaryWriter, error) {
	switch target {
	case "csv":
		return export.NewCSVWriter(csvPath), nil
	case "sheets":
		return google.NewFromEnv(ctx)
	default:
		return nil, fmt.Errorf("unsupported export target: %s", target)
	}
}
