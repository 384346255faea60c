package calculation

import (
	"math"

	"github.com/eei/returns-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	// MsgInvalidInvestor is shown when the principal or period is unusable.
	MsgInvalidInvestor = "Please enter a valid principal amount and period."
	// MsgOutOfRange is shown when compounding overflows float64.
	MsgOutOfRange = "The values entered are too large to illustrate."
)

// CalculateInvestorComparison compounds the principal annually at the high
// and the safe rate and reports how far the two outcomes diverge.
func CalculateInvestorComparison(in domain.InvestorInputs) (*domain.InvestorResult, error) {
	if !in.Principal.IsPositive() || in.Years <= 0 {
		return nil, invalidInput(MsgInvalidInvestor)
	}

	highGrowth, ok := growthFactor(in.HighRate, in.Years)
	if !ok {
		return nil, invalidInput(MsgOutOfRange)
	}
	safeGrowth, ok := growthFactor(in.SafeRate, in.Years)
	if !ok {
		return nil, invalidInput(MsgOutOfRange)
	}

	highFuture := in.Principal.Mul(highGrowth)
	safeFuture := in.Principal.Mul(safeGrowth)

	return &domain.InvestorResult{
		Inputs:     in,
		HighFuture: highFuture,
		SafeFuture: safeFuture,
		Difference: highFuture.Sub(safeFuture),
	}, nil
}

// growthFactor returns (1+rate)^years, evaluated in float64 so that very long
// terms stay cheap. It reports false when the factor is not finite.
func growthFactor(rate decimal.Decimal, years int) (decimal.Decimal, bool) {
	g := math.Pow(1+rate.InexactFloat64(), float64(years))
	if math.IsNaN(g) || math.IsInf(g, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(g), true
}
