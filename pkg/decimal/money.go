package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RupeeSymbol is the display prefix for formatted amounts.
const RupeeSymbol = "₹"

// Money represents a monetary amount in rupees with arbitrary precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds to whole rupees, half away from zero.
func (m Money) Round() Money {
	return Money{m.Decimal.Round(0)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// Ratio returns m / other as a plain decimal.
func (m Money) Ratio(other Money) decimal.Decimal {
	return m.Decimal.Div(other.Decimal)
}

// IsPositive checks if the amount is positive
func (m Money) IsPositive() bool {
	return m.Decimal.IsPositive()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// String returns the amount rounded to whole rupees without grouping.
func (m Money) String() string {
	return m.Decimal.StringFixed(0)
}

// Format renders the amount the way en-IN renders INR with no fraction
// digits: ₹ prefix, sign before the symbol, and Indian digit grouping
// (12,34,567). An amount that rounds to zero is shown unsigned.
func (m Money) Format() string {
	r := m.Round()
	digits := r.Decimal.Abs().StringFixed(0)
	sign := ""
	if r.IsNegative() {
		sign = "-"
	}
	return sign + RupeeSymbol + GroupIndian(digits)
}

// GroupIndian inserts separators into a run of digits using the Indian
// convention: the last three digits form one group, the rest are paired.
func GroupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var b strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}
