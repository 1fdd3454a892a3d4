package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeType classifies an income record for tax treatment.
type IncomeType string

const (
	IncomeSalary    IncomeType = "salary"
	IncomeDividend  IncomeType = "dividend"
	IncomeFreelance IncomeType = "freelance"
	IncomeExport    IncomeType = "export"
	IncomeOther     IncomeType = "other"
)

// Valid reports whether the income type is one of the known values.
func (t IncomeType) Valid() bool {
	switch t {
	case IncomeSalary, IncomeDividend, IncomeFreelance, IncomeExport, IncomeOther:
		return true
	}
	return false
}

// ExpenseTag marks how the business treats an expense.
type ExpenseTag string

const (
	TagDeductible ExpenseTag = "deductible"
	TagCapital    ExpenseTag = "capital"
	TagPersonal   ExpenseTag = "personal"
	TagBusiness   ExpenseTag = "business"
)

// Valid reports whether the tag is one of the known values.
func (t ExpenseTag) Valid() bool {
	switch t {
	case TagDeductible, TagCapital, TagPersonal, TagBusiness:
		return true
	}
	return false
}

// ExpenseCategory names what an expense was spent on. The set below covers
// the categories the product ships with; unrecognized categories are still
// accepted and treated as ordinary business expenses by the deductibility
// table.
type ExpenseCategory string

const (
	CategoryOfficeSupplies       ExpenseCategory = "office_supplies"
	CategoryTravel               ExpenseCategory = "travel"
	CategoryMealsEntertainment   ExpenseCategory = "meals_entertainment"
	CategoryEquipment            ExpenseCategory = "equipment"
	CategoryRent                 ExpenseCategory = "rent"
	CategoryUtilities            ExpenseCategory = "utilities"
	CategorySalaries             ExpenseCategory = "salaries"
	CategoryMarketing            ExpenseCategory = "marketing"
	CategoryProfessionalServices ExpenseCategory = "professional_services"
	CategoryOther                ExpenseCategory = "other"
)

// IncomeRecord is a single ledger entry of money received.
type IncomeRecord struct {
	Date         time.Time       `yaml:"date" json:"date"`
	Amount       decimal.Decimal `yaml:"amount" json:"amount"`
	Type         IncomeType      `yaml:"type" json:"type"`
	ExportIncome bool            `yaml:"export_income,omitempty" json:"export_income,omitempty"`
}

// ExpenseRecord is a single ledger entry of money spent.
type ExpenseRecord struct {
	Date     time.Time       `yaml:"date" json:"date"`
	Amount   decimal.Decimal `yaml:"amount" json:"amount"`
	Category ExpenseCategory `yaml:"category" json:"category"`
	Tag      ExpenseTag      `yaml:"tag" json:"tag"`
}
