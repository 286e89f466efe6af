// Package tax contains tax computation use cases.
package tax

import (
	"context"

	"github.com/shopspring/decimal"

	domainerror "github.com/tax-planner/backend/internal/domain/error"
	domaintax "github.com/tax-planner/backend/internal/domain/tax"
)

// CompareRegimesInput represents the input for a regime comparison.
type CompareRegimesInput struct {
	Income     decimal.Decimal
	Deductions decimal.Decimal
}

// CompareRegimesOutput represents the output of a regime comparison.
type CompareRegimesOutput struct {
	Comparison *domaintax.RegimeComparison
}

// CompareRegimesUseCase computes both regimes side by side.
type CompareRegimesUseCase struct{}

// NewCompareRegimesUseCase creates a new CompareRegimesUseCase instance.
func NewCompareRegimesUseCase() *CompareRegimesUseCase {
	return &CompareRegimesUseCase{}
}

// Execute performs the regime comparison. Deductions apply to the old
// regime only; the engine forces the new regime's deductions to zero.
func (uc *CompareRegimesUseCase) Execute(ctx context.Context, input CompareRegimesInput) (*CompareRegimesOutput, error) {
	if input.Income.IsNegative() {
		return nil, domainerror.NewTaxError(
			domainerror.ErrCodeNegativeIncome,
			"income cannot be negative",
			domainerror.ErrNegativeIncome,
		)
	}

	comparison, err := domaintax.CompareRegimes(input.Income, input.Deductions)
	if err != nil {
		return nil, err
	}

	return &CompareRegimesOutput{
		Comparison: comparison,
	}, nil
}
