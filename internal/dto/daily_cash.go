package dto

import (
	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/core/domain"
)

// OpeningBalanceRequest sets (or overwrites) the opening balance for the
// caller's outlet on the given date.
type OpeningBalanceRequest struct {
	Date           string `json:"date" binding:"required,datetime=2006-01-02"`
	OpeningBalance *int64 `json:"opening_balance" binding:"required,gte=0"`
}

// ExpenseRequest appends one expense to the caller's outlet ledger.
type ExpenseRequest struct {
	Date   string `json:"date" binding:"required,datetime=2006-01-02"`
	Amount *int64 `json:"amount" binding:"required,gte=0"`
	Note   string `json:"note"`
}

// DailyCashResponse is the single-day ledger view, including the computed
// cash sales and closing balance. ExpensesNote is the legacy newline-joined
// rendering of the note log, null when no expenses were recorded.
type DailyCashResponse struct {
	OutletID       string  `json:"outlet_id"`
	Date           string  `json:"date"`
	OpeningBalance int64   `json:"opening_balance"`
	Expenses       int64   `json:"expenses"`
	ExpensesNote   *string `json:"expenses_note"`
	CashSales      int64   `json:"cash_sales"`
	ClosingBalance int64   `json:"closing_balance"`
}

// LedgerEntryResponse is the ledger entry as stored, returned from the two
// write endpoints.
type LedgerEntryResponse struct {
	LedgerID       string  `json:"ledger_id"`
	OutletID       string  `json:"outlet_id"`
	Date           string  `json:"date"`
	OpeningBalance int64   `json:"opening_balance"`
	Expenses       int64   `json:"expenses"`
	ExpensesNote   *string `json:"expenses_note"`
	UserID         string  `json:"user_id"`
}

// ToLedgerEntryResponse converts a domain.DailyLedger to its API shape.
func ToLedgerEntryResponse(entry *domain.DailyLedger) LedgerEntryResponse {
	return LedgerEntryResponse{
		LedgerID:       entry.LedgerID,
		OutletID:       entry.OutletID,
		Date:           entry.Date.Format(domain.DateFormat),
		OpeningBalance: entry.OpeningBalance,
		Expenses:       entry.Expenses,
		ExpensesNote:   noteText(entry.ExpensesNote),
		UserID:         entry.UserID,
	}
}

// ToDailyCashResponse converts a domain.DailySummary to its API shape.
func ToDailyCashResponse(summary *domain.DailySummary) DailyCashResponse {
	return DailyCashResponse{
		OutletID:       summary.OutletID,
		Date:           summary.Date.Format(domain.DateFormat),
		OpeningBalance: summary.OpeningBalance,
		Expenses:       summary.Expenses,
		ExpensesNote:   noteText(summary.ExpensesNote),
		CashSales:      summary.CashSales,
		ClosingBalance: summary.ClosingBalance,
	}
}

// noteText joins note entries into the legacy single-string format used on
// the wire, or nil when the log is empty.
func noteText(entries []domain.ExpenseNoteEntry) *string {
	if len(entries) == 0 {
		return nil
	}
	text := domain.DailyLedger{ExpensesNote: entries}.NoteText()
	return &text
}
