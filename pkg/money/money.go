// Package money provides a decimal-backed amount type for report output.
// The simulation engine itself works on float64; Money exists at the
// formatting boundary so displayed figures round predictably instead of
// inheriting float printing artifacts.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with financial rounding semantics.
type Money struct {
	decimal.Decimal
}

// New creates a Money from a float64.
func New(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// FromDecimal creates a Money from a decimal.Decimal.
func FromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// FromString creates a Money from its string form.
func FromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds to cents using banker's rounding.
func (m Money) Round() Money {
	return Money{m.Decimal.RoundBank(2)}
}

// Format renders the amount rounded to whole units with thousands
// separators, e.g. 1234567.89 -> "1,234,568".
func (m Money) Format() string {
	s := m.Decimal.Round(0).StringFixed(0)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
		if len(s) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(s); i += 3 {
		b.WriteString(s[i : i+3])
		if i+3 < len(s) {
			b.WriteByte(',')
		}
	}
	return b.String()
}

// FormatCents renders the amount with two decimal places and thousands
// separators in the integer part.
func (m Money) FormatCents() string {
	rounded := m.Round()
	neg := rounded.IsNegative()
	abs := rounded.Abs()
	intPart := Money{abs.Truncate(0)}.Format()
	frac := abs.Sub(abs.Truncate(0)).StringFixed(2)
	s := intPart + frac[1:]
	if neg {
		s = "-" + s
	}
	return s
}
