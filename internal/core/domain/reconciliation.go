package domain

import "time"

// DailySummary is the single-day reconciliation view for one outlet.
// By design it only folds cash into the closing balance: QRIS settles
// to the bank, not the drawer, so end-of-day drawer counts track cash
// alone. Range summaries use the wider formula instead.
type DailySummary struct {
	OutletID       string             `json:"outletID"`
	Date           time.Time          `json:"date"`
	OpeningBalance int64              `json:"openingBalance"`
	Expenses       int64              `json:"expenses"`
	ExpensesNote   []ExpenseNoteEntry `json:"expensesNote"`
	CashSales      int64              `json:"cashSales"`
	ClosingBalance int64              `json:"closingBalance"` // opening + cash sales - expenses
}

// SalesTotals are the straight sums over a filtered order set.
type SalesTotals struct {
	TotalRevenue       int64 `json:"totalRevenue"`
	TotalDiscount      int64 `json:"totalDiscount"`
	TotalTax           int64 `json:"totalTax"`
	TotalServiceCharge int64 `json:"totalServiceCharge"`
	TotalSubTotal      int64 `json:"totalSubTotal"`
	CashSales          int64 `json:"cashSales"`
	QRISSales          int64 `json:"qrisSales"`
	QRISFee            int64 `json:"qrisFee"` // Summed over QRIS orders only
}

// PaymentMethodTotals is one group of the per-payment-method breakdown.
// QRISFees is only populated for the qris group and stays 0 elsewhere.
type PaymentMethodTotals struct {
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Count         int64         `json:"count"`
	Total         int64         `json:"total"`
	QRISFees      int64         `json:"qrisFees"`
}

// LedgerTotals aggregates ledger rows over a range. Summing opening
// balances across days/outlets is a running total of daily openings, not a
// current-balance figure; callers must not treat it as one.
type LedgerTotals struct {
	OpeningBalance int64 `json:"openingBalance"`
	Expenses       int64 `json:"expenses"`
}

// RangeSummary is the reconciliation report over a date range, optionally
// filtered to one outlet.
type RangeSummary struct {
	StartDate      time.Time             `json:"startDate"`
	EndDate        time.Time             `json:"endDate"`
	Sales          SalesTotals           `json:"sales"`
	BeverageSales  int64                 `json:"beverageSales"`
	OpeningBalance int64                 `json:"openingBalance"`
	Expenses       int64                 `json:"expenses"`
	ClosingBalance int64                 `json:"closingBalance"` // opening + cash + qris - expenses - qris fee
	PaymentMethods []PaymentMethodTotals `json:"paymentMethods"`
	DailyBreakdown []DailyBreakdownEntry `json:"dailyBreakdown,omitempty"`
}

// DailyBreakdownEntry is one calendar day of a range summary, computed
// with the same per-day rules as the range itself.
type DailyBreakdownEntry struct {
	Date           time.Time `json:"date"`
	OpeningBalance int64     `json:"openingBalance"`
	Expenses       int64     `json:"expenses"`
	CashSales      int64     `json:"cashSales"`
	QRISSales      int64     `json:"qrisSales"`
	QRISFee        int64     `json:"qrisFee"`
	TotalSales     int64     `json:"totalSales"`     // cash + qris
	ClosingBalance int64     `json:"closingBalance"` // opening + total sales - expenses - qris fee
}

// DaySales carries per-day order aggregates used to assemble breakdowns.
type DaySales struct {
	Date      time.Time `json:"date"`
	CashSales int64     `json:"cashSales"`
	QRISSales int64     `json:"qrisSales"`
	QRISFee   int64     `json:"qrisFee"`
}

// DayLedgerTotals carries per-day ledger aggregates used to assemble
// breakdowns. When no outlet filter is applied, rows from multiple outlets
// on the same day are already summed.
type DayLedgerTotals struct {
	Date           time.Time `json:"date"`
	OpeningBalance int64     `json:"openingBalance"`
	Expenses       int64     `json:"expenses"`
}
