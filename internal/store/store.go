package store

import (
	"context"
	"errors"
	"time"

	"github.com/nairaledger/nairaledger/internal/domain"
)

// ErrProfileNotFound signals that a user has no business profile on file.
// Report builders treat this as fatal: computing tax liability on absent
// profile data produces meaningless results, so it is never defaulted.
var ErrProfileNotFound = errors.New("business profile not found")

// ExpenseFilter narrows an expense fetch. Zero-valued fields match
// everything.
type ExpenseFilter struct {
	Category domain.ExpenseCategory
	Tag      domain.ExpenseTag
}

// Matches reports whether a record passes the filter.
func (f ExpenseFilter) Matches(record domain.ExpenseRecord) bool {
	if f.Category != "" && record.Category != f.Category {
		return false
	}
	if f.Tag != "" && record.Tag != f.Tag {
		return false
	}
	return true
}

// RecordStore provides the full unpaginated record lists for one user and
// one date window. Implementations scope results to the user; callers do
// no further row-level filtering.
type RecordStore interface {
	IncomeRecords(ctx context.Context, userID string, start, end time.Time) ([]domain.IncomeRecord, error)
	ExpenseRecords(ctx context.Context, userID string, start, end time.Time, filter ExpenseFilter) ([]domain.ExpenseRecord, error)
}

// ProfileStore provides the business profile for a user, or
// ErrProfileNotFound as a condition distinct from an empty profile.
type ProfileStore interface {
	BusinessProfile(ctx context.Context, userID string) (domain.BusinessProfile, error)
}
