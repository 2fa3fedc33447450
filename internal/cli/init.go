// Package cli provides the initialization steps shared by cmd/viaggio,
// cmd/viaggio-export, and cmd/viaggio-worker.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"viaggio/internal/backend"
	"viaggio/internal/config"
	applog "viaggio/internal/log"
)

// LoadEnvFile loads the .env file for local development. Errors are
// ignored; the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes component-tagged structured logging and installs
// it as the process default.
func SetupLogger(component string) *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     slog.LevelInfo,
		Component: component,
	})
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and exits the process when it
// does not validate.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// OpenBackend builds the record store (and optional notifier) or exits the
// process on failure.
func OpenBackend(logger *applog.Logger, cfg *config.Config) *backend.Result {
	res, err := backend.NewFactory(logger.Logger).Open(cfg)
	if err != nil {
		logger.Error("Failed to open storage backend", "error", err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	return res
}
