package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount in NGN with proper financial precision
type Money struct {
	decimal.Decimal
}

// New creates a new Money instance from a decimal.Decimal
func New(d decimal.Decimal) Money {
	return Money{d}
}

// FromFloat creates a new Money instance from a float64
func FromFloat(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromString creates a new Money instance from a string
func FromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the amount to kobo using banker's rounding
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the plain fixed-point representation
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount as naira with thousands separators, e.g.
// ₦1,250,000.00. Negative amounts keep the sign ahead of the currency mark.
func (m Money) Format() string {
	s := m.Decimal.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	whole, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₦")
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
