package calculation

import (
	"errors"
	"fmt"

	"github.com/eei/returns-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Disclaimers rendered under each result.
const (
	FranchiseNote = "Note: This is a simplified illustration. Actual returns depend on utilisation, " +
		"downtime, exact loan structure and your tax situation."
	InvestorNote = "This comparison assumes annual compounding and no withdrawals. It is for " +
		"illustration only and not a guarantee, offer or forecast of actual returns."
)

// FranchiseReport lays out a franchise result in display order. The annual
// components follow as detail lines for data exports.
func FranchiseReport(r *domain.FranchiseResult) *domain.CalculationResult {
	lines := []domain.ResultLine{
		{Key: "total_benefits", Label: fmt.Sprintf("Total benefits from EEI (interest + top-up + tax) over %d years", r.Inputs.Years), Value: r.TotalBenefits.Decimal, Kind: domain.KindCurrency},
		{Key: "salvage_value", Label: "Estimated salvage value at end of term", Value: r.SalvageValue.Decimal, Kind: domain.KindCurrency},
		{Key: "total_cash_in", Label: "Total value received compared to your initial cost", Value: r.TotalCashIn.Decimal, Kind: domain.KindCurrency},
		{Key: "net_profit", Label: "Net profit over term", Value: r.NetProfit.Decimal, Kind: domain.KindCurrency},
		{Key: "roi_percent", Label: "ROI over term", Value: r.ROIPercent, Kind: domain.KindPercent},
	}
	if r.EffectiveReturnDefined {
		lines = append(lines, domain.ResultLine{Key: "effective_annual_return", Label: "Effective annualised return", Value: r.EffectiveAnnualReturn, Kind: domain.KindPercentPerAnnum})
	}
	lines = append(lines,
		domain.ResultLine{Key: "annual_interest", Label: "Annual interest from EEI", Value: r.AnnualInterest.Decimal, Kind: domain.KindCurrency, Detail: true},
		domain.ResultLine{Key: "annual_topup", Label: "Annual top-up from EEI", Value: r.AnnualTopup.Decimal, Kind: domain.KindCurrency, Detail: true},
		domain.ResultLine{Key: "annual_tax_benefit", Label: "Annual tax benefit", Value: r.AnnualTaxBenefit.Decimal, Kind: domain.KindCurrency, Detail: true},
	)
	return &domain.CalculationResult{
		Heading: "Illustrative Results",
		Lines:   lines,
		Note:    FranchiseNote,
	}
}

// InvestorReport lays out an investor comparison in display order. The rates
// are echoed in the labels as percentages.
func InvestorReport(r *domain.InvestorResult) *domain.CalculationResult {
	return &domain.CalculationResult{
		Heading: fmt.Sprintf("Illustrative Outcome After %d Years", r.Inputs.Years),
		Lines: []domain.ResultLine{
			{Key: "high_future", Label: fmt.Sprintf("Illustrative EEI investment at %s p.a.", ratePercent(r.Inputs.HighRate)), Value: r.HighFuture.Decimal, Kind: domain.KindCurrency},
			{Key: "safe_future", Label: fmt.Sprintf("Traditional safe deposit at %s p.a.", ratePercent(r.Inputs.SafeRate)), Value: r.SafeFuture.Decimal, Kind: domain.KindCurrency},
			{Key: "difference", Label: "Additional wealth created with the higher compounding rate", Value: r.Difference.Decimal, Kind: domain.KindCurrency},
		},
		Note: InvestorNote,
	}
}

func ratePercent(fraction decimal.Decimal) string {
	return fraction.Mul(decimalHundred).StringFixed(1) + "%"
}

// Notes overrides the disclaimer shown under each calculator's result.
// An empty field keeps the built-in text.
type Notes struct {
	Franchise string
	Investor  string
}

// Engine runs one handling cycle: validate, compute, lay out. Rejected
// inputs come back as a message-only result, never as an error.
type Engine struct {
	Logger Logger
	Notes  Notes
}

// NewEngine creates an engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Franchise runs the franchise calculator and returns the display result.
func (e *Engine) Franchise(in domain.FranchiseInputs) *domain.CalculationResult {
	r, err := CalculateFranchiseReturns(in)
	if err != nil {
		return e.reject("franchise", err)
	}
	e.Logger.Debugf("franchise: cost=%s years=%d cash_in=%s roi=%s%%",
		in.Cost, in.Years, r.TotalCashIn.StringFixed(2), r.ROIPercent.StringFixed(1))
	if !r.EffectiveReturnDefined {
		e.Logger.Warnf("franchise: no annualised return for cash_in=%s cost=%s",
			r.TotalCashIn.StringFixed(2), in.Cost)
	}

	rep := FranchiseReport(r)
	if e.Notes.Franchise != "" {
		rep.Note = e.Notes.Franchise
	}
	return rep
}

// Investor runs the investor comparison and returns the display result.
func (e *Engine) Investor(in domain.InvestorInputs) *domain.CalculationResult {
	r, err := CalculateInvestorComparison(in)
	if err != nil {
		return e.reject("investor", err)
	}
	e.Logger.Debugf("investor: principal=%s years=%d difference=%s",
		in.Principal, in.Years, r.Difference.StringFixed(2))

	rep := InvestorReport(r)
	if e.Notes.Investor != "" {
		rep.Note = e.Notes.Investor
	}
	return rep
}

func (e *Engine) reject(calc string, err error) *domain.CalculationResult {
	if errors.Is(err, ErrInvalidInput) {
		e.Logger.Infof("%s: rejected input: %v", calc, err)
	} else {
		e.Logger.Errorf("%s: calculation failed: %v", calc, err)
	}
	return &domain.CalculationResult{Message: UserMessage(err)}
}
