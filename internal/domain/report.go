package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is an inclusive date range a report covers.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Trend is the percentage change of a metric against the immediately
// preceding period of equal length. Valid is false when the previous value
// was zero, which means "no meaningful comparison" rather than 0% change.
// Favorable applies the metric's own direction-of-good: rising income is
// favorable, rising expenses are not.
type Trend struct {
	Percent   decimal.Decimal `json:"percent"`
	Valid     bool            `json:"valid"`
	Favorable bool            `json:"favorable"`
}

// Stat is a single trend-annotated dashboard figure.
type Stat struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Trend Trend           `json:"trend"`
}

// SeriesPoint is one bucket of the dashboard income/expense series.
type SeriesPoint struct {
	Label    string          `json:"label"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
}

// TaxSeriesPoint is one bucket of the reports tax-breakdown series.
type TaxSeriesPoint struct {
	Label    string          `json:"label"`
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	CIT      decimal.Decimal `json:"cit"`
	PIT      decimal.Decimal `json:"pit"`
	TotalTax decimal.Decimal `json:"total_tax"`
}

// CategoryBreakdown is one category's share of total expenses in a period.
type CategoryBreakdown struct {
	Category ExpenseCategory `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Percent  decimal.Decimal `json:"percent"`
}

// DeductibleSplit divides period expenses into the portion that reduces
// taxable profit and the portion that does not.
type DeductibleSplit struct {
	Deductible    decimal.Decimal `json:"deductible"`
	NonDeductible decimal.Decimal `json:"non_deductible"`
}

// DashboardSummary is the trend-annotated overview of one reporting period.
type DashboardSummary struct {
	Period             Period              `json:"period"`
	TotalIncome        Stat                `json:"total_income"`
	TotalExpenses      Stat                `json:"total_expenses"`
	NetProfit          Stat                `json:"net_profit"`
	DeductibleExpenses Stat                `json:"deductible_expenses"`
	TaxLiability       Stat                `json:"tax_liability"`
	Series             []SeriesPoint       `json:"series"`
	Categories         []CategoryBreakdown `json:"categories"`
	Split              DeductibleSplit     `json:"split"`
	Liability          FullLiabilityResult `json:"liability"`
}

// ReportsSummary is the per-bucket tax breakdown of one reporting period.
type ReportsSummary struct {
	Period    Period              `json:"period"`
	Series    []TaxSeriesPoint    `json:"series"`
	Liability FullLiabilityResult `json:"liability"`
}
