package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	cgtRate      = decimal.NewFromFloat(0.10)
	dividendRate = decimal.NewFromFloat(0.10)
)

// CapitalGainsTax computes CGT on a capital gain. Export income is
// unconditionally CGT-exempt.
func CapitalGainsTax(capitalGain decimal.Decimal, isExportIncome bool) decimal.Decimal {
	if isExportIncome {
		return decimal.Zero
	}
	return capitalGain.Mul(cgtRate)
}

// DividendTax computes the withholding tax on a dividend amount. There is
// no exemption path.
func DividendTax(dividendAmount decimal.Decimal) decimal.Decimal {
	return dividendAmount.Mul(dividendRate)
}
