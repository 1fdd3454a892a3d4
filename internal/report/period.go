package report

import (
	"fmt"
	"time"

	"github.com/nairaledger/nairaledger/internal/domain"
	"github.com/nairaledger/nairaledger/pkg/dateutil"
)

// Resolution selects the bucket granularity of a reporting window.
type Resolution int

const (
	ResolutionDaily Resolution = iota
	ResolutionMonthly
)

// Ranges longer than this bucket by month: sub-quarter windows benefit
// from daily granularity, longer ones would produce unreadably dense
// daily charts.
const dailyResolutionLimitDays = 93

// Day buckets in a window this short are labeled by weekday.
const weekdayLabelLimitDays = 7

// Range is an inclusive day-granular reporting window.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange builds a Range normalized to calendar days.
func NewRange(start, end time.Time) (Range, error) {
	s := dateutil.Day(start)
	e := dateutil.Day(end)
	if e.Before(s) {
		return Range{}, fmt.Errorf("range end %s precedes start %s", e.Format("2006-01-02"), s.Format("2006-01-02"))
	}
	return Range{Start: s, End: e}, nil
}

// Days returns the inclusive day count of the window.
func (r Range) Days() int {
	return dateutil.DaysBetween(r.Start, r.End)
}

// Resolution returns the bucket granularity for the window length.
func (r Range) Resolution() Resolution {
	if r.Days() <= dailyResolutionLimitDays {
		return ResolutionDaily
	}
	return ResolutionMonthly
}

// Previous returns the equal-length window immediately preceding this one,
// used for trend comparison.
func (r Range) Previous() Range {
	prevEnd := r.Start.AddDate(0, 0, -1)
	prevStart := prevEnd.Add(-r.End.Sub(r.Start))
	return Range{Start: dateutil.Day(prevStart), End: dateutil.Day(prevEnd)}
}

// Period converts the range into the report output shape.
func (r Range) Period() domain.Period {
	return domain.Period{Start: r.Start, End: r.End}
}

// bucketKey maps a record date onto its bucket for the given resolution.
func (r Range) bucketKey(t time.Time, resolution Resolution) string {
	if resolution == ResolutionDaily {
		return dateutil.Day(t).Format("2006-01-02")
	}
	return dateutil.Month(t).Format("2006-01")
}

// bucketLabel formats a chart label for the bucket starting at t.
// Day buckets use the weekday name in week-or-shorter windows and an
// "2 Jan" form otherwise; month buckets carry the year whenever the
// window crosses a calendar-year boundary.
func (r Range) bucketLabel(t time.Time, resolution Resolution) string {
	if resolution == ResolutionDaily {
		if r.Days() <= weekdayLabelLimitDays {
			return t.Format("Mon")
		}
		return t.Format("2 Jan")
	}
	if dateutil.CrossesYearBoundary(r.Start, r.End) {
		return t.Format("Jan 2006")
	}
	return t.Format("Jan")
}
