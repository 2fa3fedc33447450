package main

import (
	"context"
	"errors"
	"os"

	"viaggio/internal/cli"
	"viaggio/internal/services"
	"viaggio/internal/storage"
	"viaggio/internal/ui"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger("viaggio")
	cfg := cli.LoadAndValidateConfig(logger)

	res := cli.OpenBackend(logger, cfg)
	defer func() {
		if err := res.Cleanup(); err != nil {
			logger.Error("Cleanup failed", "error", err)
		}
	}()

	app := ui.New(os.Stdin, os.Stdout,
		services.NewTripService(res.Store, res.Notifier),
		services.NewItineraryService(res.Store, res.Notifier, cfg.ItineraryFutureOnly),
		services.NewExpenseService(res.Store, res.Notifier),
		services.NewPackingService(res.Store, res.Notifier),
		services.NewSummaryService(res.Store),
	)

	if err := app.Run(context.Background()); err != nil {
		if errors.Is(err, storage.ErrCorrupted) {
			logger.Error("Stored data is corrupted, refusing to continue", "error", err)
		} else {
			logger.Error("Planner stopped", "error", err)
		}
		os.Exit(1)
	}
}
