package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) Range {
	t.Helper()
	r, err := NewRange(start, end)
	require.NoError(t, err)
	return r
}

func TestNewRangeRejectsInvertedRange(t *testing.T) {
	_, err := NewRange(date(2025, 3, 10), date(2025, 3, 1))
	assert.Error(t, err)
}

func TestRangeResolution(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected Resolution
	}{
		{"Single day", date(2025, 1, 1), date(2025, 1, 1), ResolutionDaily},
		{"Exactly 93 days", date(2025, 1, 1), date(2025, 4, 3), ResolutionDaily},
		{"94 days", date(2025, 1, 1), date(2025, 4, 4), ResolutionMonthly},
		{"Full year", date(2025, 1, 1), date(2025, 12, 31), ResolutionMonthly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mustRange(t, tt.start, tt.end)
			assert.Equal(t, tt.expected, r.Resolution())
		})
	}
}

func TestRangePrevious(t *testing.T) {
	tests := []struct {
		name          string
		start         time.Time
		end           time.Time
		expectedStart time.Time
		expectedEnd   time.Time
	}{
		{
			name:  "Calendar month",
			start: date(2025, 3, 1), end: date(2025, 3, 31),
			expectedStart: date(2025, 1, 29), expectedEnd: date(2025, 2, 28),
		},
		{
			name:  "Single day",
			start: date(2025, 6, 15), end: date(2025, 6, 15),
			expectedStart: date(2025, 6, 14), expectedEnd: date(2025, 6, 14),
		},
		{
			name:  "Across a year boundary",
			start: date(2025, 1, 1), end: date(2025, 1, 7),
			expectedStart: date(2024, 12, 25), expectedEnd: date(2024, 12, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := mustRange(t, tt.start, tt.end).Previous()
			assert.Equal(t, tt.expectedStart, prev.Start)
			assert.Equal(t, tt.expectedEnd, prev.End)
			// Equal length by construction.
			assert.Equal(t, mustRange(t, tt.start, tt.end).Days(), prev.Days())
		})
	}
}

func TestBucketLabels(t *testing.T) {
	t.Run("Week-or-shorter ranges use weekday names", func(t *testing.T) {
		r := mustRange(t, date(2025, 6, 2), date(2025, 6, 8)) // Mon..Sun
		assert.Equal(t, "Mon", r.bucketLabel(date(2025, 6, 2), ResolutionDaily))
		assert.Equal(t, "Sun", r.bucketLabel(date(2025, 6, 8), ResolutionDaily))
	})

	t.Run("Longer daily ranges use day and month", func(t *testing.T) {
		r := mustRange(t, date(2025, 6, 1), date(2025, 6, 30))
		assert.Equal(t, "5 Jun", r.bucketLabel(date(2025, 6, 5), ResolutionDaily))
	})

	t.Run("Month buckets within one year omit the year", func(t *testing.T) {
		r := mustRange(t, date(2025, 1, 1), date(2025, 8, 31))
		assert.Equal(t, "Mar", r.bucketLabel(date(2025, 3, 1), ResolutionMonthly))
	})

	t.Run("Month buckets across years carry the year", func(t *testing.T) {
		r := mustRange(t, date(2024, 11, 1), date(2025, 2, 28))
		assert.Equal(t, "Dec 2024", r.bucketLabel(date(2024, 12, 1), ResolutionMonthly))
		assert.Equal(t, "Jan 2025", r.bucketLabel(date(2025, 1, 1), ResolutionMonthly))
	})
}
