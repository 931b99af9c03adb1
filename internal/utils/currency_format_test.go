package utils_test

import (
	"testing"

	"github.com/abdulaziz27/seblak-sulthane-api-sub001/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount   int64
		expected string
	}{
		{0, "0"},
		{500, "500"},
		{1000, "1.000"},
		{50000, "50.000"},
		{1250000, "1.250.000"},
		{2000000000, "2.000.000.000"},
		{-75500, "-75.500"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, utils.FormatRupiah(tc.amount), "amount %d", tc.amount)
	}
}

func TestFormatRupiahWithSymbol(t *testing.T) {
	assert.Equal(t, "Rp 50.000", utils.FormatRupiahWithSymbol(50000))
	assert.Equal(t, "Rp 0", utils.FormatRupiahWithSymbol(0))
}
