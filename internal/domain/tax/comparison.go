package tax

import (
	"github.com/shopspring/decimal"
)

// RegimeComparison holds the side-by-side result of computing both regimes
// for the same gross income.
type RegimeComparison struct {
	Old         *Breakdown
	New         *Breakdown
	Savings     decimal.Decimal
	Recommended Regime
}

// CompareRegimes computes the breakdown under both regimes and recommends
// the cheaper one.
//
// The old regime uses the caller-supplied deductions; the new regime does
// not accept the old regime's deduction claims, so its breakdown is always
// computed with deductions forced to zero. Savings is old total minus new
// total and can be negative. Ties resolve to the new regime.
func CompareRegimes(income, deductions decimal.Decimal) (*RegimeComparison, error) {
	oldBreakdown, err := Calculate(income, RegimeOld, deductions, nil)
	if err != nil {
		return nil, err
	}

	newBreakdown, err := Calculate(income, RegimeNew, decimal.Zero, nil)
	if err != nil {
		return nil, err
	}

	recommended := RegimeNew
	if oldBreakdown.TotalTax.LessThan(newBreakdown.TotalTax) {
		recommended = RegimeOld
	}

	return &RegimeComparison{
		Old:         oldBreakdown,
		New:         newBreakdown,
		Savings:     oldBreakdown.TotalTax.Sub(newBreakdown.TotalTax),
		Recommended: recommended,
	}, nil
}
