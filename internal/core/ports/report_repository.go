package ports

import (
	"context"
	"time"

	"restaurant/internal/core/domain/model/report"
)

// ReportRepository stores sales snapshots and computes the figures they freeze.
type ReportRepository interface {
	Add(ctx context.Context, aggregate *report.Report) error

	// Summarize aggregates orders and reservations created in [from, to).
	// TotalSales only counts delivered orders.
	Summarize(ctx context.Context, from, to time.Time) (report.Summary, error)
}
