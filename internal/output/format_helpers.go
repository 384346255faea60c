package output

import (
	"github.com/eei/returns-calculator/internal/domain"
	money "github.com/eei/returns-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats an amount as en-IN rupees with no fraction digits.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.NewMoneyFromDecimal(amount).Format() }

// FormatPercentage formats a value that is already a percentage with 1 decimal.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(1) + "%" }

// FormatRate formats a fraction (0.18) as a percentage (18.0%).
func FormatRate(fraction decimal.Decimal) string { return FormatPercentage(fraction.Mul(decimalHundred)) }

// FormatValue renders a result line value according to its kind.
func FormatValue(l domain.ResultLine) string {
	switch l.Kind {
	case domain.KindPercent:
		return FormatPercentage(l.Value)
	case domain.KindPercentPerAnnum:
		return FormatPercentage(l.Value) + " p.a."
	default:
		return FormatCurrency(l.Value)
	}
}
