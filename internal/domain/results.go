package domain

import (
	"github.com/shopspring/decimal"
)

// CITResult is the corporate income tax outcome for one computation.
type CITResult struct {
	Exempt          bool            `json:"exempt"`
	CIT             decimal.Decimal `json:"cit"`
	DevelopmentLevy decimal.Decimal `json:"development_levy"`
	Total           decimal.Decimal `json:"total"`
	Reason          string          `json:"reason"`
}

// PITBracketLine is one progressive bracket's share of a PIT computation.
// Only brackets with a nonzero taxable slice appear in a breakdown.
type PITBracketLine struct {
	Rate          decimal.Decimal `json:"rate"`
	LowerBound    decimal.Decimal `json:"lower_bound"`
	TaxableAmount decimal.Decimal `json:"taxable_amount"`
	Tax           decimal.Decimal `json:"tax"`
}

// PITResult is the personal income tax outcome for one computation.
type PITResult struct {
	GrossIncome     decimal.Decimal  `json:"gross_income"`
	TotalDeductions decimal.Decimal  `json:"total_deductions"`
	TaxableIncome   decimal.Decimal  `json:"taxable_income"`
	Brackets        []PITBracketLine `json:"brackets"`
	TotalPIT        decimal.Decimal  `json:"total_pit"`
}

// ItemizedDeduction is one category's deductible contribution to taxable
// profit. Categories whose deductible amount is zero are never itemized.
type ItemizedDeduction struct {
	Category ExpenseCategory `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// TaxableProfitResult is the deduction workout behind a CIT computation.
type TaxableProfitResult struct {
	TotalIncome        decimal.Decimal     `json:"total_income"`
	DeductibleExpenses decimal.Decimal     `json:"deductible_expenses"`
	PensionDeduction   decimal.Decimal     `json:"pension_deduction"`
	NHFDeduction       decimal.Decimal     `json:"nhf_deduction"`
	RentRelief         decimal.Decimal     `json:"rent_relief"`
	TotalDeductions    decimal.Decimal     `json:"total_deductions"`
	TaxableProfit      decimal.Decimal     `json:"taxable_profit"`
	Itemized           []ItemizedDeduction `json:"itemized"`
}

// ExpenseGroup is the aggregate of all in-period expenses sharing one
// category and tag.
type ExpenseGroup struct {
	Category ExpenseCategory `json:"category"`
	Tag      ExpenseTag      `json:"tag"`
	Total    decimal.Decimal `json:"total"`
}

// LiabilityInput carries the pre-aggregated figures a full liability
// computation runs on. The engine never sees individual records.
type LiabilityInput struct {
	TotalIncome    decimal.Decimal
	SalaryIncome   decimal.Decimal
	DividendIncome decimal.Decimal
	CapitalGains   decimal.Decimal
	ExportIncome   bool
	Expenses       []ExpenseGroup
	AnnualRent     decimal.Decimal
}

// FullLiabilityResult combines every tax component for one period.
// PIT is nil when the period carried no salary income.
type FullLiabilityResult struct {
	Profit      TaxableProfitResult `json:"profit"`
	CIT         CITResult           `json:"cit"`
	PIT         *PITResult          `json:"pit,omitempty"`
	CGT         decimal.Decimal     `json:"cgt"`
	DividendTax decimal.Decimal     `json:"dividend_tax"`
	Total       decimal.Decimal     `json:"total"`
}
