package domain

import (
	"strings"
	"time"
)

// DateFormat is the wire format for calendar dates across the API.
const DateFormat = "2006-01-02"

// ExpenseNoteEntry is one line of the append-only expense log kept on a
// daily ledger. Entries are stored as an ordered sequence; the legacy
// single-string rendering only exists at the API boundary.
type ExpenseNoteEntry struct {
	Time string `json:"time"` // HH:MM, outlet local time
	Line string `json:"line"` // "[HH:MM] Rp <amount> - <note>"
}

// DailyLedger is the authoritative cash record for one outlet on one
// calendar day. At most one entry exists per (outlet, date); it is created
// lazily on the first opening-balance write or the first expense of the
// day. Amounts are whole rupiah.
type DailyLedger struct {
	LedgerID       string             `json:"ledgerID"` // Primary Key (UUID)
	OutletID       string             `json:"outletID"`
	Date           time.Time          `json:"date"`
	OpeningBalance int64              `json:"openingBalance"`
	Expenses       int64              `json:"expenses"` // Monotonically increasing via appended expense transactions
	ExpensesNote   []ExpenseNoteEntry `json:"expensesNote"`
	UserID         string             `json:"userID"` // Who set or last touched the entry
	AuditFields                       // Embed common audit fields
}

// ZeroLedger returns the synthetic zero-valued entry used when no ledger
// row exists yet for an outlet/day. Reads never fail for a missing entry.
func ZeroLedger(outletID string, date time.Time) DailyLedger {
	return DailyLedger{
		OutletID: outletID,
		Date:     date,
	}
}

// NoteText renders the ordered note entries as the legacy newline-joined
// string. Returns the empty string when no expenses have been logged.
func (l DailyLedger) NoteText() string {
	if len(l.ExpensesNote) == 0 {
		return ""
	}
	lines := make([]string, len(l.ExpensesNote))
	for i, entry := range l.ExpensesNote {
		lines[i] = entry.Line
	}
	return strings.Join(lines, "\n")
}
