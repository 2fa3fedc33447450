// Package export sends a built summary to an external destination.
package export

import (
	"context"

	"viaggio/internal/core"
)

// SummaryWriter is the outbound port for summary export. Implementations
// exist for CSV files and Google Sheets.
type SummaryWriter interface {
	WriteSummary(ctx context.Context, sum core.Summary) error
}
