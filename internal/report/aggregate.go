package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nairaledger/nairaledger/internal/domain"
	"github.com/nairaledger/nairaledger/pkg/dateutil"
)

// Annual figures are prorated into reporting windows against an average
// calendar year.
var daysPerYear = decimal.NewFromFloat(365.25)

type groupKey struct {
	category domain.ExpenseCategory
	tag      domain.ExpenseTag
}

// expenseGroups accumulates expense totals per (category, tag) pair in
// first-seen order. Grouping by the pair rather than by category alone
// keeps a category used with mixed tags from silently collapsing onto
// whichever tag came last.
type expenseGroups struct {
	groups []domain.ExpenseGroup
	index  map[groupKey]int
}

func (g *expenseGroups) add(category domain.ExpenseCategory, tag domain.ExpenseTag, amount decimal.Decimal) {
	if g.index == nil {
		g.index = make(map[groupKey]int)
	}
	key := groupKey{category, tag}
	i, ok := g.index[key]
	if !ok {
		g.index[key] = len(g.groups)
		g.groups = append(g.groups, domain.ExpenseGroup{Category: category, Tag: tag, Total: amount})
		return
	}
	g.groups[i].Total = g.groups[i].Total.Add(amount)
}

// bucket is one day or month slice of the reporting window with its own
// accumulated totals.
type bucket struct {
	label    string
	start    time.Time
	income   decimal.Decimal
	expenses decimal.Decimal
	salary   decimal.Decimal
	groups   expenseGroups
}

// periodAggregate holds everything derived from one window's record lists.
type periodAggregate struct {
	rng        Range
	resolution Resolution
	buckets    []*bucket
	byKey      map[string]*bucket

	totalIncome    decimal.Decimal
	totalExpenses  decimal.Decimal
	salaryIncome   decimal.Decimal
	dividendIncome decimal.Decimal
	exportIncome   bool

	expenses       expenseGroups
	categoryTotals map[domain.ExpenseCategory]decimal.Decimal
	categoryOrder  []domain.ExpenseCategory
}

// aggregate buckets a window's records and derives the whole-range totals.
// Every bucket in the window exists even when empty so chart series carry
// no gaps.
func aggregate(r Range, incomes []domain.IncomeRecord, expenses []domain.ExpenseRecord) *periodAggregate {
	resolution := r.Resolution()
	agg := &periodAggregate{
		rng:            r,
		resolution:     resolution,
		byKey:          make(map[string]*bucket),
		categoryTotals: make(map[domain.ExpenseCategory]decimal.Decimal),
	}

	if resolution == ResolutionDaily {
		for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
			agg.addBucket(d, r.bucketKey(d, resolution))
		}
	} else {
		last := dateutil.Month(r.End)
		for m := dateutil.Month(r.Start); !m.After(last); m = m.AddDate(0, 1, 0) {
			agg.addBucket(m, r.bucketKey(m, resolution))
		}
	}

	for _, record := range incomes {
		agg.totalIncome = agg.totalIncome.Add(record.Amount)
		switch record.Type {
		case domain.IncomeSalary:
			agg.salaryIncome = agg.salaryIncome.Add(record.Amount)
		case domain.IncomeDividend:
			agg.dividendIncome = agg.dividendIncome.Add(record.Amount)
		}
		if record.ExportIncome {
			agg.exportIncome = true
		}
		if b := agg.byKey[r.bucketKey(record.Date, resolution)]; b != nil {
			b.income = b.income.Add(record.Amount)
			if record.Type == domain.IncomeSalary {
				b.salary = b.salary.Add(record.Amount)
			}
		}
	}

	for _, record := range expenses {
		agg.totalExpenses = agg.totalExpenses.Add(record.Amount)
		agg.expenses.add(record.Category, record.Tag, record.Amount)
		if _, seen := agg.categoryTotals[record.Category]; !seen {
			agg.categoryOrder = append(agg.categoryOrder, record.Category)
		}
		agg.categoryTotals[record.Category] = agg.categoryTotals[record.Category].Add(record.Amount)
		if b := agg.byKey[r.bucketKey(record.Date, resolution)]; b != nil {
			b.expenses = b.expenses.Add(record.Amount)
			b.groups.add(record.Category, record.Tag, record.Amount)
		}
	}

	return agg
}

func (a *periodAggregate) addBucket(start time.Time, key string) {
	b := &bucket{label: a.rng.bucketLabel(start, a.resolution), start: start}
	a.buckets = append(a.buckets, b)
	a.byKey[key] = b
}

// scaledAnnualRent prorates the profile's annual rent into the window by
// elapsed days rather than recomputing a true annual figure.
func (a *periodAggregate) scaledAnnualRent(profile domain.BusinessProfile) decimal.Decimal {
	days := a.rng.Days()
	if days < 1 {
		days = 1
	}
	scale := decimal.NewFromInt(int64(days)).Div(daysPerYear)
	return profile.AnnualRent().Mul(scale)
}

// liabilityInput assembles the engine input for the whole window.
// Capital gains enter as an explicit aggregate figure, zero for ledgers
// that record none; export-flagged income anywhere in the window marks the
// aggregate CGT-exempt.
func (a *periodAggregate) liabilityInput(profile domain.BusinessProfile) domain.LiabilityInput {
	return domain.LiabilityInput{
		TotalIncome:    a.totalIncome,
		SalaryIncome:   a.salaryIncome,
		DividendIncome: a.dividendIncome,
		CapitalGains:   decimal.Zero,
		ExportIncome:   a.exportIncome,
		Expenses:       a.expenses.groups,
		AnnualRent:     a.scaledAnnualRent(profile),
	}
}

// bucketRent returns the rent slice for one bucket's own duration: a
// day's share of annual rent for day buckets, the full monthly rent for
// month buckets.
func (a *periodAggregate) bucketRent(profile domain.BusinessProfile) decimal.Decimal {
	if a.resolution == ResolutionDaily {
		return profile.AnnualRent().Div(daysPerYear)
	}
	return profile.MonthlyRent
}
