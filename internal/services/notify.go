// Package services contains the entity managers and the summary aggregator.
// Managers take raw strings from the presentation layer, do all
// parsing and validation through internal/core, and run one full
// load-mutate-save cycle per operation against the record store.
package services

import (
	"context"
	"log/slog"

	"viaggio/internal/amqp"
)

// notify publishes a record-change event when a notifier is configured.
// The local write already succeeded, so a publish failure is logged and
// swallowed.
func notify(ctx context.Context, client *amqp.Client, set, id, action string) {
	if client == nil {
		return
	}
	if err := client.PublishRecordChange(ctx, set, id, action); err != nil {
		slog.WarnContext(ctx, "Failed to publish record change",
			"set", set,
			"id", id,
			"action", action,
			"error", err)
	}
}
