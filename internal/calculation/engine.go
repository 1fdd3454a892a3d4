package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nairaledger/nairaledger/internal/domain"
)

// Engine orchestrates all tax computations. It holds no state between
// invocations; every call takes explicit inputs and returns a fresh result.
type Engine struct {
	PITCalc *PITCalculator
	CITCalc *CITCalculator
	Logger  Logger
}

// NewEngine creates a tax engine with the statutory calculators.
func NewEngine() *Engine {
	return &Engine{
		PITCalc: NewPITCalculator(),
		CITCalc: NewCITCalculator(),
		Logger:  NopLogger{},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// FullLiability computes every tax component for one aggregated period:
// taxable profit and CIT, PIT on salary income, CGT and dividend
// withholding. Both report builders call this one path so the dashboard
// and the reports view can never drift apart.
func (e *Engine) FullLiability(in domain.LiabilityInput, profile domain.BusinessProfile) domain.FullLiabilityResult {
	profit := TaxableProfit(in.TotalIncome, in.Expenses, in.AnnualRent, in.SalaryIncome, profile.PensionRate, profile.NHFRate)
	cit := e.CITCalc.Calculate(profit.TaxableProfit, profile.AnnualTurnover, profile.FixedAssets)

	var pit *domain.PITResult
	pitTotal := decimal.Zero
	if in.SalaryIncome.GreaterThan(decimal.Zero) {
		pension := in.SalaryIncome.Mul(profile.PensionRate)
		nhf := in.SalaryIncome.Mul(profile.NHFRate)
		result := e.PITCalc.Calculate(in.SalaryIncome, pension, nhf, in.AnnualRent)
		pit = &result
		pitTotal = result.TotalPIT
	}

	cgt := CapitalGainsTax(in.CapitalGains, in.ExportIncome)
	dividendTax := DividendTax(in.DividendIncome)

	total := cit.Total.Add(pitTotal).Add(cgt).Add(dividendTax)
	e.Logger.Debugf("full liability: cit=%s pit=%s cgt=%s dividend=%s total=%s",
		cit.Total, pitTotal, cgt, dividendTax, total)

	return domain.FullLiabilityResult{
		Profit:      profit,
		CIT:         cit,
		PIT:         pit,
		CGT:         cgt,
		DividendTax: dividendTax,
		Total:       total,
	}
}
