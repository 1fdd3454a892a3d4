package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nairaledger/nairaledger/internal/calculation"
	"github.com/nairaledger/nairaledger/internal/domain"
	"github.com/nairaledger/nairaledger/internal/store"
)

// Builder assembles report summaries from the record and profile stores.
// It is stateless; every call fetches fresh records and computes from
// scratch.
type Builder struct {
	records  store.RecordStore
	profiles store.ProfileStore
	engine   *calculation.Engine
}

// NewBuilder creates a report builder.
func NewBuilder(records store.RecordStore, profiles store.ProfileStore, engine *calculation.Engine) *Builder {
	return &Builder{records: records, profiles: profiles, engine: engine}
}

// fetch loads one window's records and aggregates them. Category and tag
// filters apply identically to whichever window is fetched, so current
// and previous periods always compare like for like.
func (b *Builder) fetch(ctx context.Context, userID string, r Range, filter store.ExpenseFilter) (*periodAggregate, error) {
	incomes, err := b.records.IncomeRecords(ctx, userID, r.Start, r.End)
	if err != nil {
		return nil, fmt.Errorf("fetch income records: %w", err)
	}
	expenses, err := b.records.ExpenseRecords(ctx, userID, r.Start, r.End, filter)
	if err != nil {
		return nil, fmt.Errorf("fetch expense records: %w", err)
	}
	return aggregate(r, incomes, expenses), nil
}

// Dashboard builds the trend-annotated overview for one window: five
// headline stats compared against the equal-length preceding window, the
// bucketed income/expense series, the category breakdown, the
// deductible split, and the full tax liability.
func (b *Builder) Dashboard(ctx context.Context, userID string, r Range, filter store.ExpenseFilter) (*domain.DashboardSummary, error) {
	profile, err := b.profiles.BusinessProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load business profile: %w", err)
	}

	current, err := b.fetch(ctx, userID, r, filter)
	if err != nil {
		return nil, err
	}
	previous, err := b.fetch(ctx, userID, r.Previous(), filter)
	if err != nil {
		return nil, err
	}

	liability := b.engine.FullLiability(current.liabilityInput(profile), profile)
	prevLiability := b.engine.FullLiability(previous.liabilityInput(profile), profile)

	netProfit := current.totalIncome.Sub(current.totalExpenses)
	prevNetProfit := previous.totalIncome.Sub(previous.totalExpenses)

	summary := &domain.DashboardSummary{
		Period: r.Period(),
		TotalIncome: domain.Stat{
			Label: "Total Income",
			Value: current.totalIncome,
			Trend: computeTrend(current.totalIncome, previous.totalIncome, goodWhenRising),
		},
		TotalExpenses: domain.Stat{
			Label: "Total Expenses",
			Value: current.totalExpenses,
			Trend: computeTrend(current.totalExpenses, previous.totalExpenses, goodWhenFalling),
		},
		NetProfit: domain.Stat{
			Label: "Net Profit",
			Value: netProfit,
			Trend: computeTrend(netProfit, prevNetProfit, goodWhenRising),
		},
		DeductibleExpenses: domain.Stat{
			Label: "Deductible Expenses",
			Value: liability.Profit.DeductibleExpenses,
			Trend: computeTrend(liability.Profit.DeductibleExpenses, prevLiability.Profit.DeductibleExpenses, goodWhenRising),
		},
		TaxLiability: domain.Stat{
			Label: "Tax Liability",
			Value: liability.Total,
			Trend: computeTrend(liability.Total, prevLiability.Total, goodWhenFalling),
		},
		Series:     buildSeries(current),
		Categories: buildCategoryBreakdown(current),
		Split: domain.DeductibleSplit{
			Deductible:    liability.Profit.DeductibleExpenses,
			NonDeductible: current.totalExpenses.Sub(liability.Profit.DeductibleExpenses),
		},
		Liability: liability,
	}
	return summary, nil
}

// Reports builds the per-bucket tax-breakdown series for one window plus
// the full-range liability. Empty buckets stay in the series with all-zero
// values so charts stay continuous.
func (b *Builder) Reports(ctx context.Context, userID string, r Range, filter store.ExpenseFilter) (*domain.ReportsSummary, error) {
	profile, err := b.profiles.BusinessProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load business profile: %w", err)
	}

	current, err := b.fetch(ctx, userID, r, filter)
	if err != nil {
		return nil, err
	}

	bucketRent := current.bucketRent(profile)
	series := make([]domain.TaxSeriesPoint, 0, len(current.buckets))
	for _, bkt := range current.buckets {
		profit := calculation.TaxableProfit(bkt.income, bkt.groups.groups, bucketRent, bkt.salary, profile.PensionRate, profile.NHFRate)
		cit := b.engine.CITCalc.Calculate(profit.TaxableProfit, profile.AnnualTurnover, profile.FixedAssets)
		pitTotal := decimal.Zero
		if bkt.salary.GreaterThan(decimal.Zero) {
			pension := bkt.salary.Mul(profile.PensionRate)
			nhf := bkt.salary.Mul(profile.NHFRate)
			pitTotal = b.engine.PITCalc.Calculate(bkt.salary, pension, nhf, bucketRent).TotalPIT
		}
		series = append(series, domain.TaxSeriesPoint{
			Label:    bkt.label,
			Income:   bkt.income,
			Expenses: bkt.expenses,
			CIT:      cit.Total,
			PIT:      pitTotal,
			TotalTax: cit.Total.Add(pitTotal),
		})
	}

	return &domain.ReportsSummary{
		Period:    r.Period(),
		Series:    series,
		Liability: b.engine.FullLiability(current.liabilityInput(profile), profile),
	}, nil
}

func buildSeries(agg *periodAggregate) []domain.SeriesPoint {
	series := make([]domain.SeriesPoint, 0, len(agg.buckets))
	for _, bkt := range agg.buckets {
		series = append(series, domain.SeriesPoint{
			Label:    bkt.label,
			Income:   bkt.income,
			Expenses: bkt.expenses,
		})
	}
	return series
}

func buildCategoryBreakdown(agg *periodAggregate) []domain.CategoryBreakdown {
	breakdown := make([]domain.CategoryBreakdown, 0, len(agg.categoryOrder))
	for _, category := range agg.categoryOrder {
		amount := agg.categoryTotals[category]
		percent := decimal.Zero
		if !agg.totalExpenses.IsZero() {
			percent = amount.Div(agg.totalExpenses).Mul(hundred)
		}
		breakdown = append(breakdown, domain.CategoryBreakdown{
			Category: category,
			Amount:   amount,
			Percent:  percent,
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})
	return breakdown
}
