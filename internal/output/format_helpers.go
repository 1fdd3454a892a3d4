package output

import (
	"github.com/shopspring/decimal"

	"github.com/nairaledger/nairaledger/internal/domain"
	"github.com/nairaledger/nairaledger/pkg/money"
)

var hundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal as NGN currency with kobo precision.
// Kept here so it can be reused by multiple formatters and unit tested in
// isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.New(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatTrend renders a trend for console display. An invalid trend (no
// meaningful comparison) renders as "n/a", never as 0%.
func FormatTrend(t domain.Trend) string {
	if !t.Valid {
		return "n/a"
	}
	sign := ""
	if !t.Percent.IsNegative() {
		sign = "+"
	}
	marker := "▲"
	if !t.Favorable {
		marker = "▼"
	}
	return sign + FormatPercentage(t.Percent) + " " + marker
}
