package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nairaledger/nairaledger/internal/domain"
	"github.com/nairaledger/nairaledger/pkg/money"
)

// Small-business exemption ceilings. Both must hold for a business to be
// exempt; the bounds are inclusive.
var (
	turnoverCeiling    = decimal.NewFromInt(100_000_000)
	fixedAssetsCeiling = decimal.NewFromInt(250_000_000)
)

// SmallBusinessExempt reports whether a business qualifies for the
// small-business CIT exemption.
func SmallBusinessExempt(turnover, fixedAssets decimal.Decimal) bool {
	return turnover.LessThanOrEqual(turnoverCeiling) &&
		fixedAssets.LessThanOrEqual(fixedAssetsCeiling)
}

// CITCalculator computes corporate income tax and the development levy.
type CITCalculator struct {
	Rate     decimal.Decimal
	LevyRate decimal.Decimal
}

// NewCITCalculator creates a CIT calculator with the statutory rates:
// 30% CIT plus a 4% development levy.
func NewCITCalculator() *CITCalculator {
	return &CITCalculator{
		Rate:     decimal.NewFromFloat(0.30),
		LevyRate: decimal.NewFromFloat(0.04),
	}
}

// Calculate computes CIT on a taxable profit. The caller clamps taxable
// profit non-negative before this runs; a zero profit on a liable business
// yields zero tax.
func (c *CITCalculator) Calculate(taxableProfit, turnover, fixedAssets decimal.Decimal) domain.CITResult {
	if SmallBusinessExempt(turnover, fixedAssets) {
		return domain.CITResult{
			Exempt:          true,
			CIT:             decimal.Zero,
			DevelopmentLevy: decimal.Zero,
			Total:           decimal.Zero,
			Reason: fmt.Sprintf(
				"small business exemption: turnover %s within %s and fixed assets %s within %s",
				money.New(turnover).Format(), money.New(turnoverCeiling).Format(),
				money.New(fixedAssets).Format(), money.New(fixedAssetsCeiling).Format()),
		}
	}

	cit := taxableProfit.Mul(c.Rate)
	levy := taxableProfit.Mul(c.LevyRate)
	hundred := decimal.NewFromInt(100)
	return domain.CITResult{
		Exempt:          false,
		CIT:             cit,
		DevelopmentLevy: levy,
		Total:           cit.Add(levy),
		Reason: fmt.Sprintf("liable for %s%% CIT and %s%% development levy",
			c.Rate.Mul(hundred), c.LevyRate.Mul(hundred)),
	}
}
