package report

import (
	"github.com/shopspring/decimal"

	"github.com/nairaledger/nairaledger/internal/domain"
)

// direction is a metric's direction-of-good for trend styling.
type direction int

const (
	goodWhenRising direction = iota
	goodWhenFalling
)

var hundred = decimal.NewFromInt(100)

// computeTrend returns the percentage change from previous to current.
// A zero previous value yields an invalid trend: "no meaningful
// comparison" is distinct from a 0% change. Favorable follows the
// metric's direction-of-good, so a rising expense is never styled as
// positive even though the raw percentage is.
func computeTrend(current, previous decimal.Decimal, dir direction) domain.Trend {
	if previous.IsZero() {
		return domain.Trend{}
	}
	percent := current.Sub(previous).Div(previous).Mul(hundred)
	favorable := !percent.IsNegative()
	if dir == goodWhenFalling {
		favorable = !percent.IsPositive()
	}
	return domain.Trend{Percent: percent, Valid: true, Favorable: favorable}
}
