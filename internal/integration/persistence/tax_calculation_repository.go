// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tax-planner/backend/internal/application/adapter"
	"github.com/tax-planner/backend/internal/domain/entity"
	domainerror "github.com/tax-planner/backend/internal/domain/error"
	"github.com/tax-planner/backend/internal/integration/persistence/model"
)

// defaultQueryTimeout bounds every history store operation so a wedged
// database surfaces as a transient failure instead of a hung request.
const defaultQueryTimeout = 5 * time.Second

// taxCalculationRepository implements the adapter.TaxCalculationRepository interface.
type taxCalculationRepository struct {
	db           *gorm.DB
	queryTimeout time.Duration
}

// NewTaxCalculationRepository creates a new calculation history repository instance.
func NewTaxCalculationRepository(db *gorm.DB) adapter.TaxCalculationRepository {
	return NewTaxCalculationRepositoryWithTimeout(db, defaultQueryTimeout)
}

// NewTaxCalculationRepositoryWithTimeout creates a repository with a custom
// per-operation timeout.
func NewTaxCalculationRepositoryWithTimeout(db *gorm.DB, timeout time.Duration) adapter.TaxCalculationRepository {
	return &taxCalculationRepository{
		db:           db,
		queryTimeout: timeout,
	}
}

// Create persists an immutable calculation snapshot.
func (r *taxCalculationRepository) Create(ctx context.Context, calculation *entity.TaxCalculation) error {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	calculationModel := model.TaxCalculationFromEntity(calculation)
	result := r.db.WithContext(ctx).Create(calculationModel)
	if result.Error != nil {
		return storeError(result.Error)
	}
	return nil
}

// FindByUser retrieves one page of the user's history, newest first.
// Pages beyond the available range yield an empty page with real totals.
func (r *taxCalculationRepository) FindByUser(ctx context.Context, userID uuid.UUID, pagination adapter.HistoryPagination) (*adapter.HistoryPage, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := r.db.WithContext(ctx).
		Model(&model.TaxCalculationModel{}).
		Where("user_id = ?", userID)

	var total int64
	countQuery := query.Session(&gorm.Session{})
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, storeError(err)
	}

	offset := (pagination.Page - 1) * pagination.PageSize

	var calculationModels []model.TaxCalculationModel
	// id breaks ties between records created in the same instant, so
	// page boundaries stay stable across queries.
	result := query.
		Order("created_at DESC").
		Order("id DESC").
		Offset(offset).
		Limit(pagination.PageSize).
		Find(&calculationModels)
	if result.Error != nil {
		return nil, storeError(result.Error)
	}

	calculations := make([]*entity.TaxCalculation, len(calculationModels))
	for i, cm := range calculationModels {
		calculations[i] = cm.ToEntity()
	}

	totalPages := int((total + int64(pagination.PageSize) - 1) / int64(pagination.PageSize))

	return &adapter.HistoryPage{
		Calculations: calculations,
		Total:        total,
		Page:         pagination.Page,
		PageSize:     pagination.PageSize,
		TotalPages:   totalPages,
	}, nil
}

// DeleteByIDAndUser deletes a record only if it belongs to the given user.
// Misses and foreign records both surface as not-found.
func (r *taxCalculationRepository) DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TaxCalculationModel{})
	if result.Error != nil {
		return storeError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerror.NewHistoryError(
			domainerror.ErrCodeCalculationNotFound,
			"tax calculation not found",
			domainerror.ErrCalculationNotFound,
		)
	}
	return nil
}

// storeError maps database failures to the transient store-unavailable error.
func storeError(err error) error {
	return domainerror.NewHistoryError(
		domainerror.ErrCodeStoreUnavailable,
		"calculation history store unavailable: "+err.Error(),
		domainerror.ErrStoreUnavailable,
	)
}
