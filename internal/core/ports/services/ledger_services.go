package services

import (
	"context"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// DailyLedgerSvc owns the per-outlet, per-day cash record: opening
// balance, accumulated expenses and the append-only expense note log.
type DailyLedgerSvc interface {
	// SetOpeningBalance upserts the entry for (outlet, date) with the
	// given opening balance. Repeated calls overwrite; last write wins.
	// Amount must be >= 0 or apperrors.ErrValidation is returned before
	// any mutation.
	SetOpeningBalance(ctx context.Context, outletID string, date time.Time, amount int64, actor string) (*domain.DailyLedger, error)

	// AddExpense increments the entry's expenses by amount, creating the
	// entry with a zero opening balance if needed, and appends one
	// timestamped line to the note log. Amount must be >= 0.
	AddExpense(ctx context.Context, outletID string, date time.Time, amount int64, note string, actor string) (*domain.DailyLedger, error)

	// GetEntry returns the ledger entry for (outlet, date), or a
	// zero-valued synthetic entry when none exists. Never fails for a
	// missing entry.
	GetEntry(ctx context.Context, outletID string, date time.Time) (*domain.DailyLedger, error)
}
