package domain

import (
	money "github.com/eei/returns-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FranchiseInputs holds the parsed fields of the franchisee form.
// Rates are fractions: 10% is 0.10.
type FranchiseInputs struct {
	Cost        money.Money     `json:"cost" yaml:"cost"`
	LoanRate    decimal.Decimal `json:"loan_rate" yaml:"loan_rate"`
	TopupRate   decimal.Decimal `json:"topup_rate" yaml:"topup_rate"`
	TaxRate     decimal.Decimal `json:"tax_rate" yaml:"tax_rate"`
	SalvageRate decimal.Decimal `json:"salvage_rate" yaml:"salvage_rate"`
	Years       int             `json:"years" yaml:"years"`
}

// InvestorInputs holds the parsed fields of the investor comparison form.
type InvestorInputs struct {
	Principal money.Money     `json:"principal" yaml:"principal"`
	HighRate  decimal.Decimal `json:"high_rate" yaml:"high_rate"`
	SafeRate  decimal.Decimal `json:"safe_rate" yaml:"safe_rate"`
	Years     int             `json:"years" yaml:"years"`
}

// FranchiseResult is the full set of quantities derived from FranchiseInputs.
type FranchiseResult struct {
	Inputs FranchiseInputs `json:"inputs"`

	// Annual components, accrued simply (not compounded)
	AnnualInterest   money.Money `json:"annual_interest"`
	AnnualTopup      money.Money `json:"annual_topup"`
	AnnualTaxBenefit money.Money `json:"annual_tax_benefit"`

	// Term totals
	TotalBenefits money.Money `json:"total_benefits"`
	SalvageValue  money.Money `json:"salvage_value"`
	TotalCashIn   money.Money `json:"total_cash_in"`
	NetProfit     money.Money `json:"net_profit"`

	// Percentages (already multiplied by 100)
	ROIPercent             decimal.Decimal `json:"roi_percent"`
	EffectiveAnnualReturn  decimal.Decimal `json:"effective_annual_return"`
	EffectiveReturnDefined bool            `json:"effective_return_defined"` // false when the cash-in ratio has no real root
}

// InvestorResult is the outcome of compounding a principal at two rates.
type InvestorResult struct {
	Inputs     InvestorInputs `json:"inputs"`
	HighFuture money.Money    `json:"high_future"`
	SafeFuture money.Money    `json:"safe_future"`
	Difference money.Money    `json:"difference"`
}

// ValueKind tells a renderer how to display a ResultLine value.
type ValueKind int

const (
	KindCurrency ValueKind = iota
	KindPercent
	KindPercentPerAnnum
)

// String returns the identifier used in JSON and CSV output.
func (k ValueKind) String() string {
	switch k {
	case KindPercent:
		return "percent"
	case KindPercentPerAnnum:
		return "percent_pa"
	default:
		return "currency"
	}
}

// ResultLine is one labelled value of a rendered result. Key is a stable
// machine identifier for data exports. Detail lines carry intermediate
// figures: data exports include them, the display panel leaves them out.
type ResultLine struct {
	Key    string          `json:"key"`
	Label  string          `json:"label"`
	Value  decimal.Decimal `json:"value"`
	Kind   ValueKind       `json:"-"`
	Detail bool            `json:"detail,omitempty"`
}

// CalculationResult is the ordered, display-ready outcome of one calculation.
// It lives for a single form submission or CLI invocation.
type CalculationResult struct {
	Heading string       `json:"heading"`
	Lines   []ResultLine `json:"lines"`
	Note    string       `json:"note"`
	// Message replaces the lines when the inputs were rejected.
	Message string `json:"message,omitempty"`
}

// IsMessage reports whether the result carries only a user-facing message.
func (r *CalculationResult) IsMessage() bool {
	return r.Message != "" && len(r.Lines) == 0
}
