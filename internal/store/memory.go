package store

import (
	"context"
	"sync"
	"time"

	"github.com/nairaledger/nairaledger/internal/domain"
	"github.com/nairaledger/nairaledger/pkg/dateutil"
)

// MemoryStore implements RecordStore and ProfileStore with in-memory
// storage. It backs the CLI (seeded from a ledger file) and the tests.
type MemoryStore struct {
	mu       sync.RWMutex
	incomes  map[string][]domain.IncomeRecord
	expenses map[string][]domain.ExpenseRecord
	profiles map[string]domain.BusinessProfile
}

// NewMemoryStore creates a new in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		incomes:  make(map[string][]domain.IncomeRecord),
		expenses: make(map[string][]domain.ExpenseRecord),
		profiles: make(map[string]domain.BusinessProfile),
	}
}

// PutProfile stores the business profile for a user.
func (s *MemoryStore) PutProfile(userID string, profile domain.BusinessProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[userID] = profile
}

// AddIncome appends income records for a user.
func (s *MemoryStore) AddIncome(userID string, records ...domain.IncomeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incomes[userID] = append(s.incomes[userID], records...)
}

// AddExpense appends expense records for a user.
func (s *MemoryStore) AddExpense(userID string, records ...domain.ExpenseRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses[userID] = append(s.expenses[userID], records...)
}

// IncomeRecords returns the user's income records dated within [start, end].
func (s *MemoryStore) IncomeRecords(_ context.Context, userID string, start, end time.Time) ([]domain.IncomeRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.IncomeRecord
	for _, record := range s.incomes[userID] {
		if inRange(record.Date, start, end) {
			out = append(out, record)
		}
	}
	return out, nil
}

// ExpenseRecords returns the user's matching expense records dated within
// [start, end].
func (s *MemoryStore) ExpenseRecords(_ context.Context, userID string, start, end time.Time, filter ExpenseFilter) ([]domain.ExpenseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.ExpenseRecord
	for _, record := range s.expenses[userID] {
		if inRange(record.Date, start, end) && filter.Matches(record) {
			out = append(out, record)
		}
	}
	return out, nil
}

// BusinessProfile returns the user's profile or ErrProfileNotFound.
func (s *MemoryStore) BusinessProfile(_ context.Context, userID string) (domain.BusinessProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return domain.BusinessProfile{}, ErrProfileNotFound
	}
	return profile, nil
}

// inRange compares at day granularity so records timestamped late on the
// end date still count.
func inRange(t, start, end time.Time) bool {
	day := dateutil.Day(t)
	return !day.Before(dateutil.Day(start)) && !day.After(dateutil.Day(end))
}
