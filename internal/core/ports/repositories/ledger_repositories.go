package repositories

import (
	"context"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// LedgerRepository defines persistence operations for daily cash ledgers.
// All writes are single-statement atomic upserts keyed by (outlet_id,
// date); concurrent expense appends on the same entry serialize as
// increments and never lose updates.
type LedgerRepository interface {
	// UpsertOpeningBalance creates the (outlet, date) entry with the given
	// opening balance, or overwrites the opening balance if the entry
	// already exists. Last write wins. Returns the resulting entry.
	UpsertOpeningBalance(ctx context.Context, outletID string, date time.Time, amount int64, actor string, now time.Time) (*domain.DailyLedger, error)

	// AppendExpense atomically increments the entry's expenses by amount
	// and appends one note entry to the ordered expense log, creating the
	// (outlet, date) row with a zero opening balance if it does not exist
	// yet. Returns the resulting entry.
	AppendExpense(ctx context.Context, outletID string, date time.Time, amount int64, note domain.ExpenseNoteEntry, actor string, now time.Time) (*domain.DailyLedger, error)

	// FindEntry returns the ledger entry for (outlet, date), or
	// apperrors.ErrNotFound when none exists.
	FindEntry(ctx context.Context, outletID string, date time.Time) (*domain.DailyLedger, error)

	// SumRange sums opening balances and expenses over all ledger rows in
	// [start, end]. An empty outletID means no outlet filter.
	SumRange(ctx context.Context, start, end time.Time, outletID string) (domain.LedgerTotals, error)

	// SumByDay sums opening balances and expenses per calendar day over
	// [start, end]. Days without ledger rows are absent from the result.
	SumByDay(ctx context.Context, start, end time.Time, outletID string) ([]domain.DayLedgerTotals, error)
}
