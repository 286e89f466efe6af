// Package history contains calculation history use cases.
package history

import (
	"context"

	"github.com/google/uuid"

	"github.com/tax-planner/backend/internal/application/adapter"
	domainerror "github.com/tax-planner/backend/internal/domain/error"
)

// ListHistoryInput represents the input for listing calculation history.
type ListHistoryInput struct {
	UserID   uuid.UUID
	Page     int
	PageSize int
}

// ListHistoryOutput represents one page of calculation history.
type ListHistoryOutput struct {
	Page *adapter.HistoryPage
}

// ListHistoryUseCase handles paginated history retrieval.
type ListHistoryUseCase struct {
	calculationRepo adapter.TaxCalculationRepository
}

// NewListHistoryUseCase creates a new ListHistoryUseCase instance.
func NewListHistoryUseCase(calculationRepo adapter.TaxCalculationRepository) *ListHistoryUseCase {
	return &ListHistoryUseCase{
		calculationRepo: calculationRepo,
	}
}

// Execute retrieves one page of the user's history, newest first. Pages
// beyond the available range come back empty with real totals.
func (uc *ListHistoryUseCase) Execute(ctx context.Context, input ListHistoryInput) (*ListHistoryOutput, error) {
	if input.Page < 1 || input.PageSize < 1 {
		return nil, domainerror.NewHistoryError(
			domainerror.ErrCodeInvalidPage,
			"page and page_size must be positive",
			domainerror.ErrInvalidPage,
		)
	}

	page, err := uc.calculationRepo.FindByUser(ctx, input.UserID, adapter.HistoryPagination{
		Page:     input.Page,
		PageSize: input.PageSize,
	})
	if err != nil {
		return nil, err
	}

	return &ListHistoryOutput{
		Page: page,
	}, nil
}
