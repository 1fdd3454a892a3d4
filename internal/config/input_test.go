package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairaledger/nairaledger/internal/domain"
)

func writeLedger(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeLedger(t, `
profile:
  annual_turnover: 50000000
  fixed_assets: 100000000
  monthly_rent: 100000
  tax_year: 2025
income:
  - date: 2025-06-10
    amount: 200000
    type: salary
  - date: 2025-06-20
    amount: 75000
    type: export
    export_income: true
expenses:
  - date: 2025-06-12
    amount: 50000
    category: office_supplies
    tag: business
`)

	ledger, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)

	require.NotNil(t, ledger.Profile)
	assert.True(t, decimal.NewFromInt(50_000_000).Equal(ledger.Profile.AnnualTurnover))
	// Statutory defaults fill in when the file omits the rates.
	assert.True(t, domain.DefaultPensionRate.Equal(ledger.Profile.PensionRate))
	assert.True(t, domain.DefaultNHFRate.Equal(ledger.Profile.NHFRate))

	require.Len(t, ledger.Income, 2)
	assert.Equal(t, domain.IncomeSalary, ledger.Income[0].Type)
	assert.True(t, ledger.Income[1].ExportIncome)

	require.Len(t, ledger.Expenses, 1)
	assert.Equal(t, domain.CategoryOfficeSupplies, ledger.Expenses[0].Category)
}

func TestValidateLedger(t *testing.T) {
	parser := NewInputParser()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "Unknown income type",
			content: `
income:
  - date: 2025-06-10
    amount: 100
    type: lottery
`,
			wantErr: "unknown income type",
		},
		{
			name: "Unknown expense tag",
			content: `
expenses:
  - date: 2025-06-10
    amount: 100
    category: travel
    tag: maybe
`,
			wantErr: "unknown expense tag",
		},
		{
			name: "Negative amount",
			content: `
income:
  - date: 2025-06-10
    amount: -5
    type: salary
`,
			wantErr: "cannot be negative",
		},
		{
			name: "Missing record date",
			content: `
expenses:
  - amount: 100
    category: travel
    tag: business
`,
			wantErr: "date is required",
		},
		{
			name: "Pension rate above 1",
			content: `
profile:
  pension_rate: 1.5
`,
			wantErr: "pension rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLedger(t, tt.content)
			_, err := parser.LoadFromFile(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateLedgerAcceptsUnknownCategory(t *testing.T) {
	path := writeLedger(t, `
expenses:
  - date: 2025-06-10
    amount: 100
    category: cloud_hosting
    tag: business
`)

	ledger, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, domain.ExpenseCategory("cloud_hosting"), ledger.Expenses[0].Category)
}
