package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nairaledger/nairaledger/internal/domain"
	"github.com/nairaledger/nairaledger/internal/store"
)

// Ledger is the on-disk document the CLI works from: one business profile
// plus the raw income and expense records.
type Ledger struct {
	Profile  *domain.BusinessProfile `yaml:"profile"`
	Income   []domain.IncomeRecord   `yaml:"income"`
	Expenses []domain.ExpenseRecord  `yaml:"expenses"`
}

// InputParser handles parsing of ledger files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a ledger from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Ledger, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var ledger Ledger
	if err := yaml.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateLedger(&ledger); err != nil {
		return nil, fmt.Errorf("ledger validation failed: %w", err)
	}

	return &ledger, nil
}

// ValidateLedger validates the loaded ledger. Unknown expense categories
// are accepted: the deductibility table treats them as ordinary business
// expenses.
func (ip *InputParser) ValidateLedger(ledger *Ledger) error {
	if ledger.Profile != nil {
		ledger.Profile.ApplyDefaults()
		if err := ledger.Profile.Validate(); err != nil {
			return fmt.Errorf("profile: %w", err)
		}
	}

	for i, record := range ledger.Income {
		if record.Date.IsZero() {
			return fmt.Errorf("income record %d: date is required", i)
		}
		if record.Amount.IsNegative() {
			return fmt.Errorf("income record %d: amount cannot be negative", i)
		}
		if !record.Type.Valid() {
			return fmt.Errorf("income record %d: unknown income type %q", i, record.Type)
		}
	}

	for i, record := range ledger.Expenses {
		if record.Date.IsZero() {
			return fmt.Errorf("expense record %d: date is required", i)
		}
		if record.Amount.IsNegative() {
			return fmt.Errorf("expense record %d: amount cannot be negative", i)
		}
		if record.Category == "" {
			return fmt.Errorf("expense record %d: category is required", i)
		}
		if !record.Tag.Valid() {
			return fmt.Errorf("expense record %d: unknown expense tag %q", i, record.Tag)
		}
	}

	return nil
}

// Seed loads the ledger's contents into a memory store under one user.
// A ledger without a profile seeds no profile, so report builders fail
// with store.ErrProfileNotFound rather than computing on defaults.
func (l *Ledger) Seed(s *store.MemoryStore, userID string) {
	if l.Profile != nil {
		s.PutProfile(userID, *l.Profile)
	}
	s.AddIncome(userID, l.Income...)
	s.AddExpense(userID, l.Expenses...)
}
