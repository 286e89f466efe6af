// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/tax-planner/backend/internal/domain/entity"
)

// HistoryPagination defines offset-based pagination options. Page and
// PageSize are positive integers supplied by the caller.
type HistoryPagination struct {
	Page     int
	PageSize int
}

// HistoryPage represents one page of calculation history, newest first.
// Pages beyond the available range are empty pages with real totals, not
// failures.
type HistoryPage struct {
	Calculations []*entity.TaxCalculation
	Total        int64
	Page         int
	PageSize     int
	TotalPages   int
}

// TaxCalculationRepository defines the interface for calculation history
// persistence. Each operation is a single transaction; implementations
// apply a bounded timeout and surface transient failures as
// ErrStoreUnavailable rather than blocking.
type TaxCalculationRepository interface {
	// Create persists an immutable calculation snapshot. There is no
	// uniqueness constraint; a user may hold unlimited records. Creation
	// is not idempotent and must not be blindly retried.
	Create(ctx context.Context, calculation *entity.TaxCalculation) error

	// FindByUser retrieves one page of the user's history, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID, pagination HistoryPagination) (*HistoryPage, error)

	// DeleteByIDAndUser deletes a record only if it belongs to the given
	// user. A record that is absent or owned by someone else is reported
	// as ErrCalculationNotFound, never Forbidden, so record IDs of other
	// users cannot be probed.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error
}
