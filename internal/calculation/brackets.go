package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nairaledger/nairaledger/internal/domain"
)

// TaxBracket represents one progressive PIT bracket. A zero Max marks the
// open-ended top bracket. Bounds are [Min, Max): income exactly at a
// boundary belongs to the lower bracket.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  decimal.Decimal
	Rate decimal.Decimal
}

// Rent relief against personal taxable income: 20% of annual rent, capped.
var (
	rentReliefRate = decimal.NewFromFloat(0.20)
	rentReliefCap  = decimal.NewFromInt(500_000)
)

// PITCalculator computes personal income tax under the progressive
// bracket schedule.
type PITCalculator struct {
	Brackets []TaxBracket
}

// NewPITCalculator creates a PIT calculator with the statutory 2025
// bracket schedule.
func NewPITCalculator() *PITCalculator {
	return &PITCalculator{
		Brackets: []TaxBracket{
			{decimal.Zero, decimal.NewFromInt(800_000), decimal.Zero},
			{decimal.NewFromInt(800_000), decimal.NewFromInt(2_000_000), decimal.NewFromFloat(0.15)},
			{decimal.NewFromInt(2_000_000), decimal.NewFromInt(4_000_000), decimal.NewFromFloat(0.19)},
			{decimal.NewFromInt(4_000_000), decimal.NewFromInt(6_000_000), decimal.NewFromFloat(0.21)},
			{decimal.NewFromInt(6_000_000), decimal.NewFromInt(10_000_000), decimal.NewFromFloat(0.23)},
			{decimal.NewFromInt(10_000_000), decimal.Zero, decimal.NewFromFloat(0.25)},
		},
	}
}

// RentRelief returns the capped personal rent relief for an annual rent.
func RentRelief(annualRent decimal.Decimal) decimal.Decimal {
	relief := annualRent.Mul(rentReliefRate)
	return decimal.Min(relief, rentReliefCap)
}

// Calculate computes PIT on a gross salary after pension, NHF and rent
// relief deductions. Deductions can never push taxable income negative.
func (c *PITCalculator) Calculate(grossSalary, pensionContribution, nhfContribution, annualRent decimal.Decimal) domain.PITResult {
	relief := RentRelief(annualRent)
	totalDeductions := pensionContribution.Add(nhfContribution).Add(relief)

	taxableIncome := grossSalary.Sub(totalDeductions)
	if taxableIncome.IsNegative() {
		taxableIncome = decimal.Zero
	}

	var lines []domain.PITBracketLine
	totalTax := decimal.Zero
	for _, bracket := range c.Brackets {
		if taxableIncome.LessThanOrEqual(bracket.Min) {
			break
		}
		upper := taxableIncome
		if !bracket.Max.IsZero() {
			upper = decimal.Min(taxableIncome, bracket.Max)
		}
		inBracket := upper.Sub(bracket.Min)
		if inBracket.GreaterThan(decimal.Zero) {
			tax := inBracket.Mul(bracket.Rate)
			lines = append(lines, domain.PITBracketLine{
				Rate:          bracket.Rate,
				LowerBound:    bracket.Min,
				TaxableAmount: inBracket,
				Tax:           tax,
			})
			totalTax = totalTax.Add(tax)
		}
	}

	return domain.PITResult{
		GrossIncome:     grossSalary,
		TotalDeductions: totalDeductions,
		TaxableIncome:   taxableIncome,
		Brackets:        lines,
		TotalPIT:        totalTax,
	}
}
