package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nairaledger/nairaledger/internal/domain"
)

func TestDeductibleAmount(t *testing.T) {
	amount := decimal.NewFromInt(100_000)

	tests := []struct {
		name     string
		category domain.ExpenseCategory
		tag      domain.ExpenseTag
		expected decimal.Decimal
	}{
		{
			name:     "Equipment is capital, never deductible",
			category: domain.CategoryEquipment,
			tag:      domain.TagBusiness,
			expected: decimal.Zero,
		},
		{
			name:     "Meals and entertainment at half",
			category: domain.CategoryMealsEntertainment,
			tag:      domain.TagBusiness,
			expected: decimal.NewFromInt(50_000),
		},
		{
			name:     "Ordinary category fully deductible",
			category: domain.CategoryOfficeSupplies,
			tag:      domain.TagBusiness,
			expected: amount,
		},
		{
			name:     "Unknown category defaults to fully deductible",
			category: domain.ExpenseCategory("cloud_hosting"),
			tag:      domain.TagDeductible,
			expected: amount,
		},
		{
			name:     "Personal tag zeroes a deductible category",
			category: domain.CategoryOfficeSupplies,
			tag:      domain.TagPersonal,
			expected: decimal.Zero,
		},
		{
			name:     "Personal tag zeroes even unknown categories",
			category: domain.ExpenseCategory("cloud_hosting"),
			tag:      domain.TagPersonal,
			expected: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeductibleAmount(amount, tt.category, tt.tag)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestTaxableProfitFloorsAtZero(t *testing.T) {
	// Income 100,000 against a fully deductible 500,000 expense.
	result := TaxableProfit(
		decimal.NewFromInt(100_000),
		[]domain.ExpenseGroup{
			{Category: domain.CategoryOfficeSupplies, Tag: domain.TagBusiness, Total: decimal.NewFromInt(500_000)},
		},
		decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)

	assert.True(t, result.TaxableProfit.IsZero())
	assert.True(t, decimal.NewFromInt(500_000).Equal(result.DeductibleExpenses))
}

func TestTaxableProfitItemization(t *testing.T) {
	groups := []domain.ExpenseGroup{
		{Category: domain.CategoryOfficeSupplies, Tag: domain.TagBusiness, Total: decimal.NewFromInt(200_000)},
		{Category: domain.CategoryEquipment, Tag: domain.TagCapital, Total: decimal.NewFromInt(900_000)},
		{Category: domain.CategoryTravel, Tag: domain.TagPersonal, Total: decimal.NewFromInt(80_000)},
		{Category: domain.CategoryMealsEntertainment, Tag: domain.TagBusiness, Total: decimal.NewFromInt(60_000)},
	}

	result := TaxableProfit(decimal.NewFromInt(5_000_000), groups, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)

	// Equipment and personal travel produce zero deductible amounts and are
	// excluded from the itemized list.
	require.Len(t, result.Itemized, 2)
	assert.Equal(t, domain.CategoryOfficeSupplies, result.Itemized[0].Category)
	assert.True(t, decimal.NewFromInt(200_000).Equal(result.Itemized[0].Amount))
	assert.Equal(t, domain.CategoryMealsEntertainment, result.Itemized[1].Category)
	assert.True(t, decimal.NewFromInt(30_000).Equal(result.Itemized[1].Amount)) // 60,000 * 0.5

	assert.True(t, decimal.NewFromInt(230_000).Equal(result.DeductibleExpenses))
}

func TestTaxableProfitMergesCategoryAcrossTags(t *testing.T) {
	// Same category under two tags: both fold into one itemized line.
	groups := []domain.ExpenseGroup{
		{Category: domain.CategoryTravel, Tag: domain.TagBusiness, Total: decimal.NewFromInt(100_000)},
		{Category: domain.CategoryTravel, Tag: domain.TagDeductible, Total: decimal.NewFromInt(50_000)},
	}

	result := TaxableProfit(decimal.NewFromInt(1_000_000), groups, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero)

	require.Len(t, result.Itemized, 1)
	assert.True(t, decimal.NewFromInt(150_000).Equal(result.Itemized[0].Amount))
}

func TestTaxableProfitDeductionStreams(t *testing.T) {
	// Salary 2,400,000 at pension 8% and NHF 2.5%, annual rent 1,200,000.
	// pension = 192,000; nhf = 60,000; rent relief = min(240,000, 500,000).
	result := TaxableProfit(
		decimal.NewFromInt(10_000_000),
		nil,
		decimal.NewFromInt(1_200_000),
		decimal.NewFromInt(2_400_000),
		decimal.NewFromFloat(0.08),
		decimal.NewFromFloat(0.025))

	assert.True(t, decimal.NewFromInt(192_000).Equal(result.PensionDeduction))
	assert.True(t, decimal.NewFromInt(60_000).Equal(result.NHFDeduction))
	assert.True(t, decimal.NewFromInt(240_000).Equal(result.RentRelief))
	assert.True(t, decimal.NewFromInt(492_000).Equal(result.TotalDeductions))
	assert.True(t, decimal.NewFromInt(9_508_000).Equal(result.TaxableProfit))
}
