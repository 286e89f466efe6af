// Package tax contains tax computation use cases.
package tax

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tax-planner/backend/internal/application/adapter"
	"github.com/tax-planner/backend/internal/domain/entity"
	domainerror "github.com/tax-planner/backend/internal/domain/error"
	domaintax "github.com/tax-planner/backend/internal/domain/tax"
)

// CalculateTaxInput represents the input for a tax calculation.
type CalculateTaxInput struct {
	UserID        uuid.UUID
	Income        decimal.Decimal
	Regime        domaintax.Regime
	Deductions    decimal.Decimal
	Rebates       map[string]decimal.Decimal
	SaveToHistory bool
}

// CalculateTaxOutput represents the output of a tax calculation. RecordID
// is set only when the breakdown was persisted to history.
type CalculateTaxOutput struct {
	Breakdown *domaintax.Breakdown
	Regime    domaintax.Regime
	RecordID  *uuid.UUID
}

// CalculateTaxUseCase computes a tax breakdown and optionally persists it
// as a history record.
type CalculateTaxUseCase struct {
	calculationRepo adapter.TaxCalculationRepository
}

// NewCalculateTaxUseCase creates a new CalculateTaxUseCase instance.
func NewCalculateTaxUseCase(calculationRepo adapter.TaxCalculationRepository) *CalculateTaxUseCase {
	return &CalculateTaxUseCase{
		calculationRepo: calculationRepo,
	}
}

// Execute performs the tax calculation. The breakdown is computed before
// any write, so a store failure never produces a partial result: the
// caller receives the error and nothing is persisted.
func (uc *CalculateTaxUseCase) Execute(ctx context.Context, input CalculateTaxInput) (*CalculateTaxOutput, error) {
	if input.Income.IsNegative() {
		return nil, domainerror.NewTaxError(
			domainerror.ErrCodeNegativeIncome,
			"income cannot be negative",
			domainerror.ErrNegativeIncome,
		)
	}

	breakdown, err := domaintax.Calculate(input.Income, input.Regime, input.Deductions, input.Rebates)
	if err != nil {
		return nil, err
	}

	output := &CalculateTaxOutput{
		Breakdown: breakdown,
		Regime:    input.Regime,
	}

	if input.SaveToHistory {
		record := entity.NewTaxCalculation(input.UserID, *breakdown, input.Regime)
		if err := uc.calculationRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to save calculation to history: %w", err)
		}
		output.RecordID = &record.ID
	}

	return output, nil
}
