// Package backend builds the record store and its optional collaborators
// from configuration.
package backend

import (
	"fmt"
	"log/slog"

	"viaggio/internal/amqp"
	"viaggio/internal/config"
	"viaggio/internal/storage"
)

// Type selects the record-store implementation.
type Type string

const (
	JSONBackend   Type = "json"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// IsValid reports whether the backend type is known.
func (t Type) IsValid() bool {
	switch t {
	case JSONBackend, SQLiteBackend, MemoryBackend:
		return true
	}
	return false
}

// Result bundles the opened store with the optional AMQP notifier and a
// cleanup function. Cleanup is never nil.
type Result struct {
	Store    storage.RecordStore
	Notifier *amqp.Client // nil when AMQP is not configured
	Cleanup  func() error
}

// Factory creates backends based on configuration.
type Factory struct {
	logger *slog.Logger
}

func NewFactory(logger *slog.Logger) *Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &Factory{logger: logger}
}

// Open builds the record store selected by cfg and, when an AMQP URL is
// configured, the change-event notifier. A broker that cannot be reached
// is logged and skipped; the planner works without it.
func (f *Factory) Open(cfg *config.Config) (*Result, error) {
	res := &Result{Cleanup: func() error { return nil }}

	switch Type(cfg.DataBackend) {
	case JSONBackend:
		store, err := storage.NewJSONStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize json store: %w", err)
		}
		res.Store = store
		f.logger.Info("Initialized json backend", "data_dir", cfg.DataDir)

	case SQLiteBackend:
		store, err := storage.NewSQLiteStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite store: %w", err)
		}
		res.Store = store
		res.Cleanup = store.Close
		f.logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)

	case MemoryBackend:
		res.Store = storage.NewMemoryStore()
		f.logger.Info("Initialized memory backend")

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", cfg.DataBackend)
	}

	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			f.logger.Warn("Failed to initialize AMQP client, continuing without change events", "error", err)
		} else {
			res.Notifier = client
			storeCleanup := res.Cleanup
			res.Cleanup = func() error {
				client.Close()
				return storeCleanup()
			}
			f.logger.Info("Initialized AMQP notifier",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}
	return res, nil
}
