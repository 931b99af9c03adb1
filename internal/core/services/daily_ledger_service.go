package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/apperrors"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	portsrepo "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/repositories"
	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/utils"
)

// dailyLedgerService implements the DailyLedgerSvc interface
type dailyLedgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepository
	now        func() time.Time
}

// DailyLedgerServiceOption is a functional option for configuring the service
type DailyLedgerServiceOption func(*dailyLedgerService)

// WithLedgerClock overrides the clock used for note timestamps and audit
// fields. Tests use this to pin time.
func WithLedgerClock(now func() time.Time) DailyLedgerServiceOption {
	return func(s *dailyLedgerService) {
		s.now = now
	}
}

// NewDailyLedgerService creates a new daily ledger service
func NewDailyLedgerService(repo portsrepo.LedgerRepository, options ...DailyLedgerServiceOption) portssvc.DailyLedgerSvc {
	svc := &dailyLedgerService{
		ledgerRepo: repo,
		now:        time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure dailyLedgerService implements the DailyLedgerSvc interface
var _ portssvc.DailyLedgerSvc = (*dailyLedgerService)(nil)

// SetOpeningBalance upserts the ledger entry for (outlet, date) with the
// given opening balance. Overwrite semantics: repeated calls replace the
// previous value, they never accumulate.
func (s *dailyLedgerService) SetOpeningBalance(ctx context.Context, outletID string, date time.Time, amount int64, actor string) (*domain.DailyLedger, error) {
	if err := validateLedgerWrite(outletID, amount, actor); err != nil {
		return nil, err
	}

	entry, err := s.ledgerRepo.UpsertOpeningBalance(ctx, outletID, date, amount, actor, s.now())
	if err != nil {
		s.LogError(ctx, err, "Failed to upsert opening balance",
			slog.String("outlet_id", outletID),
			slog.String("date", date.Format(domain.DateFormat)))
		return nil, fmt.Errorf("failed to upsert opening balance: %w", err)
	}

	s.LogInfo(ctx, "Opening balance set",
		slog.String("outlet_id", outletID),
		slog.String("date", date.Format(domain.DateFormat)),
		slog.Int64("amount", amount))
	return entry, nil
}

// AddExpense atomically increments the day's expenses and appends one
// formatted line to the note log, creating the entry with a zero opening
// balance when the expense arrives first.
func (s *dailyLedgerService) AddExpense(ctx context.Context, outletID string, date time.Time, amount int64, note string, actor string) (*domain.DailyLedger, error) {
	if err := validateLedgerWrite(outletID, amount, actor); err != nil {
		return nil, err
	}

	now := s.now()
	entry, err := s.ledgerRepo.AppendExpense(ctx, outletID, date, amount, formatExpenseNote(now, amount, note), actor, now)
	if err != nil {
		s.LogError(ctx, err, "Failed to append expense",
			slog.String("outlet_id", outletID),
			slog.String("date", date.Format(domain.DateFormat)))
		return nil, fmt.Errorf("failed to append expense: %w", err)
	}

	s.LogInfo(ctx, "Expense recorded",
		slog.String("outlet_id", outletID),
		slog.String("date", date.Format(domain.DateFormat)),
		slog.Int64("amount", amount))
	return entry, nil
}

// GetEntry returns the ledger entry for (outlet, date). A missing entry is
// not an error: the zero-valued synthetic entry is returned instead.
func (s *dailyLedgerService) GetEntry(ctx context.Context, outletID string, date time.Time) (*domain.DailyLedger, error) {
	if outletID == "" {
		return nil, fmt.Errorf("%w: outlet ID is required", apperrors.ErrValidation)
	}

	entry, err := s.ledgerRepo.FindEntry(ctx, outletID, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			zero := domain.ZeroLedger(outletID, date)
			return &zero, nil
		}
		s.LogError(ctx, err, "Failed to fetch ledger entry",
			slog.String("outlet_id", outletID),
			slog.String("date", date.Format(domain.DateFormat)))
		return nil, fmt.Errorf("failed to fetch ledger entry: %w", err)
	}
	return entry, nil
}

// validateLedgerWrite rejects malformed writes before any mutation occurs.
func validateLedgerWrite(outletID string, amount int64, actor string) error {
	if outletID == "" {
		return fmt.Errorf("%w: outlet ID is required", apperrors.ErrValidation)
	}
	if actor == "" {
		return fmt.Errorf("%w: acting user is required", apperrors.ErrUnauthorized)
	}
	if amount < 0 {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// formatExpenseNote builds the single note line appended per expense, e.g.
// "[14:05] Rp 50.000 - gas". An empty note falls back to "No description".
func formatExpenseNote(at time.Time, amount int64, note string) domain.ExpenseNoteEntry {
	if note == "" {
		note = "No description"
	}
	clock := at.Format("15:04")
	return domain.ExpenseNoteEntry{
		Time: clock,
		Line: fmt.Sprintf("[%s] %s - %s", clock, utils.FormatRupiahWithSymbol(amount), note),
	}
}
