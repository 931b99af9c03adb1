package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	date, err := time.Parse(DateFormat, value)
	require.NoError(t, err)
	return date
}

func TestQRISFee(t *testing.T) {
	// Fee is 0.3% of the total, rounded to the nearest rupiah.
	assert.Equal(t, int64(300), QRISFee(PaymentQRIS, 100000))
	assert.Equal(t, int64(150), QRISFee(PaymentQRIS, 50000))
	assert.Equal(t, int64(0), QRISFee(PaymentQRIS, 0))

	// 0.3% of 55500 is 166.5, which rounds up.
	assert.Equal(t, int64(167), QRISFee(PaymentQRIS, 55500))
	// 0.3% of 55400 is 166.2, which rounds down.
	assert.Equal(t, int64(166), QRISFee(PaymentQRIS, 55400))

	// Only QRIS payments carry the fee.
	assert.Equal(t, int64(0), QRISFee(PaymentCash, 100000))
	assert.Equal(t, int64(0), QRISFee(PaymentOther, 100000))
}

func TestDiscountApply(t *testing.T) {
	percent := Discount{Type: DiscountPercentage, Value: 10}
	assert.Equal(t, int64(5000), percent.Apply(50000))
	assert.Equal(t, int64(0), percent.Apply(0))

	fixed := Discount{Type: DiscountFixed, Value: 7000}
	assert.Equal(t, int64(7000), fixed.Apply(50000))

	// A fixed discount larger than the subtotal is clamped.
	assert.Equal(t, int64(5000), fixed.Apply(5000))
}

func TestLedgerNoteText(t *testing.T) {
	ledger := ZeroLedger("outlet-1", mustDate(t, "2025-01-10"))
	assert.Equal(t, "", ledger.NoteText())

	ledger.ExpensesNote = []ExpenseNoteEntry{
		{Time: "08:15", Line: "[08:15] Rp 50.000 - gas"},
		{Time: "13:40", Line: "[13:40] Rp 20.000 - No description"},
	}
	assert.Equal(t, "[08:15] Rp 50.000 - gas\n[13:40] Rp 20.000 - No description", ledger.NoteText())
}
