package dateutil

import (
	"time"
)

// Day truncates a timestamp to midnight UTC so records taken at any time of
// day fall into the expected calendar bucket.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Month truncates a timestamp to the first day of its calendar month.
func Month(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the inclusive number of calendar days from start to end.
// A range covering a single day counts as 1.
func DaysBetween(start, end time.Time) int {
	s := Day(start)
	e := Day(end)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// MonthsBetween returns the inclusive number of calendar months touched by
// the range, counting partial months at either edge as whole months.
func MonthsBetween(start, end time.Time) int {
	s := Month(start)
	e := Month(end)
	if e.Before(s) {
		return 0
	}
	return (e.Year()-s.Year())*12 + int(e.Month()) - int(s.Month()) + 1
}

// CrossesYearBoundary reports whether the range touches more than one
// calendar year.
func CrossesYearBoundary(start, end time.Time) bool {
	return start.Year() != end.Year()
}

// IsLeapYear checks if a year is a leap year
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns the number of days in a given year
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of calendar days in the month containing t.
func DaysInMonth(t time.Time) int {
	first := Month(t)
	return first.AddDate(0, 1, -1).Day()
}
