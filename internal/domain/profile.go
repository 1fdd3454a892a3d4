package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Statutory default contribution rates applied when a profile omits them.
var (
	DefaultPensionRate = decimal.NewFromFloat(0.08)
	DefaultNHFRate     = decimal.NewFromFloat(0.025)
)

// BusinessProfile declares the figures a business reports about itself.
// All monetary values are annual NGN amounts except MonthlyRent.
type BusinessProfile struct {
	AnnualTurnover decimal.Decimal `yaml:"annual_turnover" json:"annual_turnover"`
	FixedAssets    decimal.Decimal `yaml:"fixed_assets" json:"fixed_assets"`
	MonthlyRent    decimal.Decimal `yaml:"monthly_rent" json:"monthly_rent"`
	PensionRate    decimal.Decimal `yaml:"pension_rate" json:"pension_rate"`
	NHFRate        decimal.Decimal `yaml:"nhf_rate" json:"nhf_rate"`
	TaxYear        int             `yaml:"tax_year" json:"tax_year"`
}

// ApplyDefaults fills in the statutory contribution rates when unset.
func (p *BusinessProfile) ApplyDefaults() {
	if p.PensionRate.IsZero() {
		p.PensionRate = DefaultPensionRate
	}
	if p.NHFRate.IsZero() {
		p.NHFRate = DefaultNHFRate
	}
}

// Validate checks the profile invariants: rates are fractions in [0,1] and
// monetary figures are non-negative.
func (p *BusinessProfile) Validate() error {
	one := decimal.NewFromInt(1)
	if p.PensionRate.IsNegative() || p.PensionRate.GreaterThan(one) {
		return fmt.Errorf("pension rate must be a fraction between 0 and 1, got %s", p.PensionRate)
	}
	if p.NHFRate.IsNegative() || p.NHFRate.GreaterThan(one) {
		return fmt.Errorf("NHF rate must be a fraction between 0 and 1, got %s", p.NHFRate)
	}
	if p.AnnualTurnover.IsNegative() {
		return fmt.Errorf("annual turnover cannot be negative")
	}
	if p.FixedAssets.IsNegative() {
		return fmt.Errorf("fixed assets value cannot be negative")
	}
	if p.MonthlyRent.IsNegative() {
		return fmt.Errorf("monthly rent cannot be negative")
	}
	return nil
}

// AnnualRent returns the declared rent scaled to a full year.
func (p *BusinessProfile) AnnualRent() decimal.Decimal {
	return p.MonthlyRent.Mul(decimal.NewFromInt(12))
}
