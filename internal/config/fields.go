package config

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/eei/returns-calculator/internal/domain"
	money "github.com/eei/returns-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// Field identifiers of the franchisee form.
const (
	FieldVehicleCost = "vehicleCost"
	FieldLoanRate    = "loanRate"
	FieldTopupRate   = "topupRate"
	FieldTaxRate     = "taxRate"
	FieldSalvageRate = "salvageRate"
	FieldYears       = "years"
)

// Field identifiers of the investor form.
const (
	FieldInvPrincipal = "invPrincipal"
	FieldInvHighRate  = "invHighRate"
	FieldInvSafeRate  = "invSafeRate"
	FieldInvYears     = "invYears"
)

// FieldSource supplies raw form field values by identifier.
type FieldSource interface {
	Lookup(id string) (string, bool)
}

// FormValues adapts submitted form values.
type FormValues url.Values

// Lookup returns the first value submitted for id.
func (f FormValues) Lookup(id string) (string, bool) {
	vs, ok := f[id]
	if !ok {
		return "", false
	}
	if len(vs) == 0 {
		return "", true
	}
	return vs[0], true
}

// FieldMap adapts a plain id → value map (CLI flags, YAML input files).
type FieldMap map[string]string

// Lookup returns the value stored for id.
func (m FieldMap) Lookup(id string) (string, bool) {
	v, ok := m[id]
	return v, ok
}

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	hundred      = decimal.NewFromInt(100)
)

// ParseAmount reads the longest numeric prefix of raw, ignoring leading
// whitespace ("12.5 lakh" is 12.5). Anything unreadable or non-finite is 0.
// The value is taken from the float64 reading, so an exponent far outside
// float range ("1e-5000") collapses to 0 or is rejected instead of producing
// a decimal with an unbounded scale.
func ParseAmount(raw string) decimal.Decimal {
	m := leadingFloat.FindString(strings.TrimSpace(raw))
	if m == "" {
		return decimal.Zero
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) || f == 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// ParseRate reads a percentage field and returns it as a fraction.
func ParseRate(raw string) decimal.Decimal {
	return ParseAmount(raw).Div(hundred)
}

// ParseYears reads the leading integer of raw; "5.7" is 5 and garbage is 0.
// Values beyond the int32 range saturate, keeping their sign.
func ParseYears(raw string) int {
	m := leadingInt.FindString(strings.TrimSpace(raw))
	if m == "" {
		return 0
	}
	// On ErrRange ParseInt still returns the saturated bound.
	n, _ := strconv.ParseInt(m, 10, 32)
	return int(n)
}

func value(src FieldSource, id string) string {
	v, _ := src.Lookup(id)
	return v
}

// CollectFranchise reads the franchisee form. It reports false when the
// vehicle cost field is absent, meaning the source is some other form.
func CollectFranchise(src FieldSource) (domain.FranchiseInputs, bool) {
	cost, ok := src.Lookup(FieldVehicleCost)
	if !ok {
		return domain.FranchiseInputs{}, false
	}
	return domain.FranchiseInputs{
		Cost:        money.NewMoneyFromDecimal(ParseAmount(cost)),
		LoanRate:    ParseRate(value(src, FieldLoanRate)),
		TopupRate:   ParseRate(value(src, FieldTopupRate)),
		TaxRate:     ParseRate(value(src, FieldTaxRate)),
		SalvageRate: ParseRate(value(src, FieldSalvageRate)),
		Years:       ParseYears(value(src, FieldYears)),
	}, true
}

// CollectInvestor reads the investor form. It reports false when the
// principal field is absent.
func CollectInvestor(src FieldSource) (domain.InvestorInputs, bool) {
	principal, ok := src.Lookup(FieldInvPrincipal)
	if !ok {
		return domain.InvestorInputs{}, false
	}
	return domain.InvestorInputs{
		Principal: money.NewMoneyFromDecimal(ParseAmount(principal)),
		HighRate:  ParseRate(value(src, FieldInvHighRate)),
		SafeRate:  ParseRate(value(src, FieldInvSafeRate)),
		Years:     ParseYears(value(src, FieldInvYears)),
	}, true
}
