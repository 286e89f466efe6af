// Package tax contains tax computation use cases.
package tax

import (
	"context"

	"github.com/shopspring/decimal"

	domainerror "github.com/tax-planner/backend/internal/domain/error"
	domaintax "github.com/tax-planner/backend/internal/domain/tax"
)

// SlabBreakdownInput represents the input for a slab itemization.
type SlabBreakdownInput struct {
	Income decimal.Decimal
	Regime domaintax.Regime
}

// SlabBreakdownOutput represents the output of a slab itemization.
type SlabBreakdownOutput struct {
	Regime domaintax.Regime
	Slabs  []domaintax.SlabItem
}

// SlabBreakdownUseCase itemizes a gross income across a regime's slabs.
type SlabBreakdownUseCase struct{}

// NewSlabBreakdownUseCase creates a new SlabBreakdownUseCase instance.
func NewSlabBreakdownUseCase() *SlabBreakdownUseCase {
	return &SlabBreakdownUseCase{}
}

// Execute performs the slab itemization on gross income; deductions are
// deliberately not part of this view.
func (uc *SlabBreakdownUseCase) Execute(ctx context.Context, input SlabBreakdownInput) (*SlabBreakdownOutput, error) {
	if input.Income.IsNegative() {
		return nil, domainerror.NewTaxError(
			domainerror.ErrCodeNegativeIncome,
			"income cannot be negative",
			domainerror.ErrNegativeIncome,
		)
	}

	slabs, err := domaintax.SlabBreakdown(input.Income, input.Regime)
	if err != nil {
		return nil, err
	}

	return &SlabBreakdownOutput{
		Regime: input.Regime,
		Slabs:  slabs,
	}, nil
}
