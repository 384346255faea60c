package calculation

import (
	"math"

	"github.com/eei/returns-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// MsgInvalidFranchise is shown when the vehicle cost or period is unusable.
const MsgInvalidFranchise = "Please enter a valid vehicle cost and period."

// CalculateFranchiseReturns computes the illustrative multi-year return of a
// vehicle franchise. Benefits accrue simply each year and are multiplied by
// the term; salvage is recovered once at the end.
func CalculateFranchiseReturns(in domain.FranchiseInputs) (*domain.FranchiseResult, error) {
	if !in.Cost.IsPositive() || in.Years <= 0 {
		return nil, invalidInput(MsgInvalidFranchise)
	}

	years := decimal.NewFromInt(int64(in.Years))

	annualInterest := in.Cost.Mul(in.LoanRate)
	annualTopup := in.Cost.Mul(in.LoanRate).Mul(in.TopupRate)
	annualTaxBenefit := in.Cost.Mul(in.TaxRate)

	totalBenefits := annualInterest.Add(annualTopup).Add(annualTaxBenefit).Mul(years)
	salvageValue := in.Cost.Mul(in.SalvageRate)
	totalCashIn := totalBenefits.Add(salvageValue)
	netProfit := totalCashIn.Sub(in.Cost)
	roi := netProfit.Ratio(in.Cost).Mul(decimalHundred)

	effective, defined := effectiveAnnualReturn(totalCashIn.Ratio(in.Cost), in.Years)

	return &domain.FranchiseResult{
		Inputs:                 in,
		AnnualInterest:         annualInterest,
		AnnualTopup:            annualTopup,
		AnnualTaxBenefit:       annualTaxBenefit,
		TotalBenefits:          totalBenefits,
		SalvageValue:           salvageValue,
		TotalCashIn:            totalCashIn,
		NetProfit:              netProfit,
		ROIPercent:             roi,
		EffectiveAnnualReturn:  effective,
		EffectiveReturnDefined: defined,
	}, nil
}

// effectiveAnnualReturn is the constant yearly rate, in percent, that turns 1
// into ratio over years. The root is taken in float64; a negative ratio has
// no real root and reports false.
func effectiveAnnualReturn(ratio decimal.Decimal, years int) (decimal.Decimal, bool) {
	root := math.Pow(ratio.InexactFloat64(), 1/float64(years))
	if math.IsNaN(root) || math.IsInf(root, 0) {
		return decimal.Zero, false
	}
	return decimal.NewFromFloat(root - 1).Mul(decimalHundred), true
}
