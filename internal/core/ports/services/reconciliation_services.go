package services

import (
	"context"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// SalesReconcilerSvc combines ledger entries with order aggregates into
// point-in-time or range cash-flow summaries.
type SalesReconcilerSvc interface {
	// GetDailySummary returns the single-day view for one outlet. Its
	// closing balance folds in cash sales only.
	GetDailySummary(ctx context.Context, outletID string, date time.Time) (*domain.DailySummary, error)

	// GetRangeSummary computes the reconciliation report over [start,
	// end]. An empty outletID means all outlets. When includeBreakdown is
	// set the per-day breakdown is attached, one entry per calendar day,
	// both bounds inclusive.
	GetRangeSummary(ctx context.Context, start, end time.Time, outletID string, includeBreakdown bool) (*domain.RangeSummary, error)

	// GetDailyBreakdown computes the per-day decomposition of a range on
	// its own.
	GetDailyBreakdown(ctx context.Context, start, end time.Time, outletID string) ([]domain.DailyBreakdownEntry, error)
}
