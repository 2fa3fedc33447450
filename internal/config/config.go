package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	// Storage backend
	DataBackend  string
	DataDir      string
	SQLiteDBPath string

	// AMQP (optional; empty URL disables change events)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Summary export
	ExportTarget  string
	ExportCSVPath string

	// Ruleset: reject itinerary dates before today
	ItineraryFutureOnly bool
}

func Load() *Config {
	return &Config{
		DataBackend:  getEnv("DATA_BACKEND", "json"),
		DataDir:      getEnv("DATA_DIR", "./data"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/viaggio.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "viaggio"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "record_changes"),

		ExportTarget:  getEnv("EXPORT_TARGET", "csv"),
		ExportCSVPath: getEnv("EXPORT_CSV_PATH", "./data/summary.csv"),

		ItineraryFutureOnly: getEnvBool("ITINERARY_FUTURE_ONLY", false),
	}
}

// Validate checks the configuration and returns every problem at once.
func (c *Config) Validate() error {
	var errors []string

	switch c.DataBackend {
	case "json":
		if c.DataDir == "" {
			errors = append(errors, "data directory cannot be empty when using the json backend")
		}
	case "sqlite":
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using the sqlite backend")
		} else if dir := filepath.Dir(c.SQLiteDBPath); dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
				}
			}
		}
	case "memory":
		// Nothing to check; contents are lost on exit.
	default:
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [json sqlite memory]", c.DataBackend))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	switch c.ExportTarget {
	case "csv":
		if c.ExportCSVPath == "" {
			errors = append(errors, "CSV export path cannot be empty when the export target is csv")
		}
	case "sheets":
		// Sheets credentials are read from the environment by the exporter.
	default:
		errors = append(errors, fmt.Sprintf("invalid export target '%s': must be one of [csv sheets]", c.ExportTarget))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
