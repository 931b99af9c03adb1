package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/apperrors"
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
	portsrepo "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/repositories"
	portssvc "github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/ports/services"
)

// salesReconcilerService implements the SalesReconcilerSvc interface
type salesReconcilerService struct {
	BaseService
	ledgerSvc    portssvc.DailyLedgerSvc
	ledgerRepo   portsrepo.LedgerRepository
	orderAggRepo portsrepo.OrderAggregateRepository
}

// NewSalesReconcilerService creates a new sales reconciler service.
// Single-entry reads go through the ledger service so one code path owns
// the zero-entry fallback; range sums stay on the repository.
func NewSalesReconcilerService(ledgerSvc portssvc.DailyLedgerSvc, ledgerRepo portsrepo.LedgerRepository, orderAggRepo portsrepo.OrderAggregateRepository) portssvc.SalesReconcilerSvc {
	return &salesReconcilerService{
		ledgerSvc:    ledgerSvc,
		ledgerRepo:   ledgerRepo,
		orderAggRepo: orderAggRepo,
	}
}

// Ensure salesReconcilerService implements the SalesReconcilerSvc interface
var _ portssvc.SalesReconcilerSvc = (*salesReconcilerService)(nil)

// GetDailySummary computes the single-day view for one outlet. The
// closing balance only folds in cash sales: QRIS settles to the bank, so
// the drawer count at end of day tracks cash alone.
func (s *salesReconcilerService) GetDailySummary(ctx context.Context, outletID string, date time.Time) (*domain.DailySummary, error) {
	if outletID == "" {
		return nil, fmt.Errorf("%w: outlet ID is required", apperrors.ErrValidation)
	}

	entry, err := s.ledgerSvc.GetEntry(ctx, outletID, date)
	if err != nil {
		return nil, err
	}

	cashSales, err := s.orderAggRepo.GetCashSales(ctx, outletID, date)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch cash sales for daily summary",
			slog.String("outlet_id", outletID),
			slog.String("date", date.Format(domain.DateFormat)))
		return nil, fmt.Errorf("failed to fetch cash sales: %w", err)
	}

	summary := &domain.DailySummary{
		OutletID:       outletID,
		Date:           date,
		OpeningBalance: entry.OpeningBalance,
		Expenses:       entry.Expenses,
		ExpensesNote:   entry.ExpensesNote,
		CashSales:      cashSales,
		ClosingBalance: entry.OpeningBalance + cashSales - entry.Expenses,
	}

	s.LogInfo(ctx, "Daily summary computed",
		slog.String("outlet_id", outletID),
		slog.String("date", date.Format(domain.DateFormat)),
		slog.Int64("closing_balance", summary.ClosingBalance))
	return summary, nil
}

// GetRangeSummary computes the reconciliation report over [start, end],
// optionally restricted to one outlet and optionally carrying the per-day
// breakdown.
func (s *salesReconcilerService) GetRangeSummary(ctx context.Context, start, end time.Time, outletID string, includeBreakdown bool) (*domain.RangeSummary, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	sales, err := s.orderAggRepo.GetSalesTotals(ctx, start, end, outletID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch sales totals", rangeAttrs(start, end, outletID)...)
		return nil, fmt.Errorf("failed to fetch sales totals: %w", err)
	}

	methods, err := s.orderAggRepo.GetPaymentMethodBreakdown(ctx, start, end, outletID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch payment method breakdown", rangeAttrs(start, end, outletID)...)
		return nil, fmt.Errorf("failed to fetch payment method breakdown: %w", err)
	}

	beverageSales, err := s.orderAggRepo.GetBeverageSales(ctx, start, end, outletID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch beverage sales", rangeAttrs(start, end, outletID)...)
		return nil, fmt.Errorf("failed to fetch beverage sales: %w", err)
	}

	ledgerTotals, err := s.ledgerRepo.SumRange(ctx, start, end, outletID)
	if err != nil {
		s.LogError(ctx, err, "Failed to sum ledger rows", rangeAttrs(start, end, outletID)...)
		return nil, fmt.Errorf("failed to sum ledger rows: %w", err)
	}

	summary := &domain.RangeSummary{
		StartDate:      start,
		EndDate:        end,
		Sales:          sales,
		BeverageSales:  beverageSales,
		OpeningBalance: ledgerTotals.OpeningBalance,
		Expenses:       ledgerTotals.Expenses,
		PaymentMethods: methods,
		ClosingBalance: ledgerTotals.OpeningBalance + sales.CashSales + sales.QRISSales - ledgerTotals.Expenses - sales.QRISFee,
	}

	if includeBreakdown {
		breakdown, err := s.GetDailyBreakdown(ctx, start, end, outletID)
		if err != nil {
			return nil, err
		}
		summary.DailyBreakdown = breakdown
	}

	s.LogInfo(ctx, "Range summary computed", append(rangeAttrs(start, end, outletID),
		slog.Int64("total_revenue", sales.TotalRevenue),
		slog.Int64("closing_balance", summary.ClosingBalance))...)
	return summary, nil
}

// GetDailyBreakdown decomposes a range into exactly one entry per calendar
// day, both bounds inclusive. Days without orders or ledger rows still
// appear, zero-valued.
func (s *salesReconcilerService) GetDailyBreakdown(ctx context.Context, start, end time.Time, outletID string) ([]domain.DailyBreakdownEntry, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	daySales, err := s.orderAggRepo.GetDailySalesTotals(ctx, start, end, outletID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch per-day sales totals", rangeAttrs(start, end, outletID)...)
		return nil, fmt.Errorf("failed to fetch per-day sales totals: %w", err)
	}

	dayLedgers, err := s.ledgerRepo.SumByDay(ctx, start, end, outletID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch per-day ledger totals", rangeAttrs(start, end, outletID)...)
		return nil, fmt.Errorf("failed to fetch per-day ledger totals: %w", err)
	}

	salesByDay := make(map[string]domain.DaySales, len(daySales))
	for _, ds := range daySales {
		salesByDay[ds.Date.Format(domain.DateFormat)] = ds
	}
	ledgersByDay := make(map[string]domain.DayLedgerTotals, len(dayLedgers))
	for _, dl := range dayLedgers {
		ledgersByDay[dl.Date.Format(domain.DateFormat)] = dl
	}

	var breakdown []domain.DailyBreakdownEntry
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format(domain.DateFormat)
		sales := salesByDay[key]
		ledger := ledgersByDay[key]
		totalSales := sales.CashSales + sales.QRISSales

		breakdown = append(breakdown, domain.DailyBreakdownEntry{
			Date:           day,
			OpeningBalance: ledger.OpeningBalance,
			Expenses:       ledger.Expenses,
			CashSales:      sales.CashSales,
			QRISSales:      sales.QRISSales,
			QRISFee:        sales.QRISFee,
			TotalSales:     totalSales,
			ClosingBalance: ledger.OpeningBalance + totalSales - ledger.Expenses - sales.QRISFee,
		})
	}
	return breakdown, nil
}

// validateRange rejects inverted ranges before touching the store.
func validateRange(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("%w: start date must not be after end date", apperrors.ErrValidation)
	}
	return nil
}

func rangeAttrs(start, end time.Time, outletID string) []any {
	attrs := []any{
		slog.String("start_date", start.Format(domain.DateFormat)),
		slog.String("end_date", end.Format(domain.DateFormat)),
	}
	if outletID != "" {
		attrs = append(attrs, slog.String("outlet_id", outletID))
	}
	return attrs
}
