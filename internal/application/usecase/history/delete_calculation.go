// Package history contains calculation history use cases.
package history

import (
	"context"

	"github.com/google/uuid"

	"github.com/tax-planner/backend/internal/application/adapter"
)

// DeleteCalculationInput represents the input for deleting a history record.
type DeleteCalculationInput struct {
	RecordID uuid.UUID
	UserID   uuid.UUID
}

// DeleteCalculationUseCase handles owner-scoped deletion of a single record.
type DeleteCalculationUseCase struct {
	calculationRepo adapter.TaxCalculationRepository
}

// NewDeleteCalculationUseCase creates a new DeleteCalculationUseCase instance.
func NewDeleteCalculationUseCase(calculationRepo adapter.TaxCalculationRepository) *DeleteCalculationUseCase {
	return &DeleteCalculationUseCase{
		calculationRepo: calculationRepo,
	}
}

// Execute deletes the record if it belongs to the user. A record that is
// absent or owned by another user surfaces as ErrCalculationNotFound.
func (uc *DeleteCalculationUseCase) Execute(ctx context.Context, input DeleteCalculationInput) error {
	return uc.calculationRepo.DeleteByIDAndUser(ctx, input.RecordID, input.UserID)
}
