package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCapitalGainsTax(t *testing.T) {
	gain := decimal.NewFromInt(2_500_000)

	t.Run("Export income is CGT exempt", func(t *testing.T) {
		assert.True(t, CapitalGainsTax(gain, true).IsZero())
	})

	t.Run("Flat 10 percent otherwise", func(t *testing.T) {
		// 2,500,000 * 0.10 = 250,000
		assert.True(t, decimal.NewFromInt(250_000).Equal(CapitalGainsTax(gain, false)))
	})

	t.Run("Zero gain", func(t *testing.T) {
		assert.True(t, CapitalGainsTax(decimal.Zero, false).IsZero())
	})
}

func TestDividendTax(t *testing.T) {
	t.Run("Flat 10 percent withholding", func(t *testing.T) {
		// 600,000 * 0.10 = 60,000
		assert.True(t, decimal.NewFromInt(60_000).Equal(DividendTax(decimal.NewFromInt(600_000))))
	})

	t.Run("Zero dividend", func(t *testing.T) {
		assert.True(t, DividendTax(decimal.Zero).IsZero())
	})
}
