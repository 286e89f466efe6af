package tax

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SlabItem describes how much of a gross income falls into one slab and
// the tax it attracts there. Purely descriptive: it itemizes gross income,
// so deductions are not reflected here.
type SlabItem struct {
	Range        string
	Rate         string
	IncomeInSlab decimal.Decimal
	TaxInSlab    decimal.Decimal
}

// SlabBreakdown itemizes the given gross income across the regime's slab
// table in ascending order, stopping at the first slab the income does not
// reach. With zero deductions the tax amounts sum to the same base tax
// Calculate produces.
func SlabBreakdown(income decimal.Decimal, regime Regime) ([]SlabItem, error) {
	slabs, err := SlabsFor(regime)
	if err != nil {
		return nil, err
	}

	items := make([]SlabItem, 0, len(slabs))

	for _, s := range slabs {
		if income.LessThanOrEqual(s.Lower) {
			break
		}

		upTo := income
		if !s.Unbounded && upTo.GreaterThan(s.Upper) {
			upTo = s.Upper
		}

		incomeInSlab := upTo.Sub(s.Lower)
		if incomeInSlab.IsNegative() {
			incomeInSlab = decimal.Zero
		}

		items = append(items, SlabItem{
			Range:        rangeLabel(s),
			Rate:         rateLabel(s.Rate),
			IncomeInSlab: incomeInSlab.Round(2),
			TaxInSlab:    incomeInSlab.Mul(s.Rate).Round(2),
		})
	}

	return items, nil
}

// rangeLabel renders a human-readable bracket description.
func rangeLabel(s Slab) string {
	if s.Unbounded {
		return fmt.Sprintf("Above %s", s.Lower.Sub(decimal.NewFromInt(1)))
	}
	if s.Lower.IsZero() {
		return fmt.Sprintf("Up to %s", s.Upper)
	}
	return fmt.Sprintf("%s - %s", s.Lower, s.Upper)
}

// rateLabel renders the marginal rate as a whole-percent string, e.g. "5%".
func rateLabel(rate decimal.Decimal) string {
	return rate.Mul(oneHundred).StringFixed(0) + "%"
}
