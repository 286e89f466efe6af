package tax

import (
	"github.com/shopspring/decimal"
)

var (
	oneHundred = decimal.NewFromInt(100)
	twelve     = decimal.NewFromInt(12)

	// cessRate is the health and education cess: 4% of tax plus surcharge.
	cessRate = decimal.RequireFromString("0.04")

	// Surcharge brackets keyed on gross income, highest matching threshold
	// wins, no stacking. Ordered descending so the first match applies.
	surchargeBrackets = []surchargeBracket{
		{threshold: decimal.NewFromInt(5000000), rate: decimal.RequireFromString("0.25")},
		{threshold: decimal.NewFromInt(2000000), rate: decimal.RequireFromString("0.15")},
		{threshold: decimal.NewFromInt(1000000), rate: decimal.RequireFromString("0.10")},
	}
)

type surchargeBracket struct {
	threshold decimal.Decimal
	rate      decimal.Decimal
}

// Breakdown is the detailed result of a tax calculation. All monetary
// fields are rounded to 2 decimal places; intermediate accumulation is
// unrounded. A Breakdown is immutable once produced.
type Breakdown struct {
	GrossIncome         decimal.Decimal
	Deductions          decimal.Decimal
	TaxableIncome       decimal.Decimal
	BaseTax             decimal.Decimal
	Surcharge           decimal.Decimal
	HealthEducationCess decimal.Decimal
	TotalTax            decimal.Decimal
	EffectiveTaxRate    decimal.Decimal
	TakeHomeAnnual      decimal.Decimal
	TakeHomeMonthly     decimal.Decimal
}

// Calculate computes the full tax breakdown for the given gross income
// under the selected regime.
//
// Taxable income is gross income minus deductions, floored at zero;
// deductions exceeding income are not an error. Each rebate is subtracted
// from the base tax individually, flooring at zero after every subtraction,
// so rebates never drive the tax negative. The surcharge bracket is chosen
// on gross income (not taxable income) and applied to the rebated base tax;
// the 4% cess applies to base tax plus surcharge.
//
// Income is caller-validated to be non-negative. The only failure is an
// unrecognized regime tag.
func Calculate(income decimal.Decimal, regime Regime, deductions decimal.Decimal, rebates map[string]decimal.Decimal) (*Breakdown, error) {
	slabs, err := SlabsFor(regime)
	if err != nil {
		return nil, err
	}

	taxable := income.Sub(deductions)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	baseTax := marginalTax(taxable, slabs)

	for _, rebate := range rebates {
		baseTax = baseTax.Sub(rebate)
		if baseTax.IsNegative() {
			baseTax = decimal.Zero
		}
	}

	surcharge := baseTax.Mul(surchargeRate(income))
	cess := baseTax.Add(surcharge).Mul(cessRate)
	totalTax := baseTax.Add(surcharge).Add(cess)

	effectiveRate := decimal.Zero
	if income.IsPositive() {
		effectiveRate = totalTax.Div(income).Mul(oneHundred)
	}

	takeHomeAnnual := income.Sub(totalTax)

	return &Breakdown{
		GrossIncome:         income.Round(2),
		Deductions:          deductions.Round(2),
		TaxableIncome:       taxable.Round(2),
		BaseTax:             baseTax.Round(2),
		Surcharge:           surcharge.Round(2),
		HealthEducationCess: cess.Round(2),
		TotalTax:            totalTax.Round(2),
		EffectiveTaxRate:    effectiveRate.Round(2),
		TakeHomeAnnual:      takeHomeAnnual.Round(2),
		TakeHomeMonthly:     takeHomeAnnual.Div(twelve).Round(2),
	}, nil
}

// marginalTax integrates the slab table over the taxable income.
// Slabs are ascending, so once the taxable income no longer exceeds a
// slab's lower bound no further slabs apply.
func marginalTax(taxable decimal.Decimal, slabs []Slab) decimal.Decimal {
	total := decimal.Zero

	for _, s := range slabs {
		if taxable.LessThanOrEqual(s.Lower) {
			break
		}

		upTo := taxable
		if !s.Unbounded && upTo.GreaterThan(s.Upper) {
			upTo = s.Upper
		}

		amountInSlab := upTo.Sub(s.Lower)
		if amountInSlab.IsPositive() {
			total = total.Add(amountInSlab.Mul(s.Rate))
		}
	}

	return total
}

// surchargeRate picks the surcharge rate for the given gross income.
func surchargeRate(income decimal.Decimal) decimal.Decimal {
	for _, b := range surchargeBrackets {
		if income.GreaterThan(b.threshold) {
			return b.rate
		}
	}
	return decimal.Zero
}
