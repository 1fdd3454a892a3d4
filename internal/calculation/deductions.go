package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/nairaledger/nairaledger/internal/domain"
)

// categoryDeductibility maps expense categories to the fraction of their
// amount that reduces taxable profit. Categories not listed default to
// full deductibility: unknown or future categories are assumed ordinary
// business expenses unless proven capital or entertainment-related.
var categoryDeductibility = map[domain.ExpenseCategory]decimal.Decimal{
	domain.CategoryEquipment:          decimal.Zero,
	domain.CategoryMealsEntertainment: decimal.NewFromFloat(0.5),
}

var fullyDeductible = decimal.NewFromInt(1)

// DeductibilityRate returns the deductible fraction for a category.
func DeductibilityRate(category domain.ExpenseCategory) decimal.Decimal {
	if rate, ok := categoryDeductibility[category]; ok {
		return rate
	}
	return fullyDeductible
}

// DeductibleAmount returns the portion of an expense amount that reduces
// taxable profit. A personal tag zeroes deductibility regardless of
// category; otherwise the category table decides.
func DeductibleAmount(amount decimal.Decimal, category domain.ExpenseCategory, tag domain.ExpenseTag) decimal.Decimal {
	if tag == domain.TagPersonal {
		return decimal.Zero
	}
	return amount.Mul(DeductibilityRate(category))
}

// TaxableProfit works out taxable profit from a period's income total and
// its expense groups, applying the category deductibility table plus the
// pension, NHF and rent relief deduction streams. The result is floored at
// zero: deductions exceeding income never produce a negative profit.
//
// Itemized deductions merge per category (a category split across tags
// contributes one line) and exclude categories whose deductible amount is
// exactly zero.
func TaxableProfit(totalIncome decimal.Decimal, expenses []domain.ExpenseGroup, annualRent, grossSalary, pensionRate, nhfRate decimal.Decimal) domain.TaxableProfitResult {
	deductibleTotal := decimal.Zero
	byCategory := make(map[domain.ExpenseCategory]decimal.Decimal)
	var order []domain.ExpenseCategory
	for _, group := range expenses {
		deductible := DeductibleAmount(group.Total, group.Category, group.Tag)
		if !deductible.GreaterThan(decimal.Zero) {
			continue
		}
		deductibleTotal = deductibleTotal.Add(deductible)
		if _, seen := byCategory[group.Category]; !seen {
			order = append(order, group.Category)
		}
		byCategory[group.Category] = byCategory[group.Category].Add(deductible)
	}

	var itemized []domain.ItemizedDeduction
	for _, category := range order {
		itemized = append(itemized, domain.ItemizedDeduction{
			Category: category,
			Amount:   byCategory[category],
		})
	}

	pension := grossSalary.Mul(pensionRate)
	nhf := grossSalary.Mul(nhfRate)
	relief := RentRelief(annualRent)
	totalDeductions := deductibleTotal.Add(pension).Add(nhf).Add(relief)

	profit := totalIncome.Sub(totalDeductions)
	if profit.IsNegative() {
		profit = decimal.Zero
	}

	return domain.TaxableProfitResult{
		TotalIncome:        totalIncome,
		DeductibleExpenses: deductibleTotal,
		PensionDeduction:   pension,
		NHFDeduction:       nhf,
		RentRelief:         relief,
		TotalDeductions:    totalDeductions,
		TaxableProfit:      profit,
		Itemized:           itemized,
	}
}
