// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tax-planner/backend/internal/domain/tax"
)

// TaxCalculation is a persisted snapshot of one tax computation, owned by
// exactly one user. Records are immutable after creation; they are removed
// individually by owner-scoped delete or together with their owning user.
type TaxCalculation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Breakdown tax.Breakdown
	Regime    tax.Regime
	CreatedAt time.Time
}

// NewTaxCalculation creates a new TaxCalculation snapshot for the given user.
func NewTaxCalculation(userID uuid.UUID, breakdown tax.Breakdown, regime tax.Regime) *TaxCalculation {
	return &TaxCalculation{
		ID:        uuid.New(),
		UserID:    userID,
		Breakdown: breakdown,
		Regime:    regime,
		CreatedAt: time.Now().UTC(),
	}
}
