package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatRupiah renders an integer rupiah amount with Indonesian thousand
// separators. Example: 1250000 returns "1.250.000".
func FormatRupiah(amount int64) string {
	negative := amount < 0
	digits := decimal.NewFromInt(amount).Abs().String()

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return b.String()
}

// FormatRupiahWithSymbol prefixes the formatted amount with the currency
// symbol, the way amounts appear in expense notes and receipts.
// Example: 50000 returns "Rp 50.000".
func FormatRupiahWithSymbol(amount int64) string {
	return "Rp " + FormatRupiah(amount)
}
