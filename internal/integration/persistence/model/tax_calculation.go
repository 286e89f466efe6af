// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tax-planner/backend/internal/domain/entity"
	"github.com/tax-planner/backend/internal/domain/tax"
)

// TaxCalculationModel represents the tax_calculations table in the database.
// Rows are immutable after creation and cascade-delete with their user.
type TaxCalculationModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	GrossIncome         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Deductions          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TaxableIncome       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	BaseTax             decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Surcharge           decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	HealthEducationCess decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TotalTax            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	EffectiveTaxRate    decimal.Decimal `gorm:"type:decimal(7,2);not null;default:0"`
	Regime              string          `gorm:"type:varchar(10);not null"`
	TakeHomeAnnual      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	TakeHomeMonthly     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt           time.Time       `gorm:"not null;index"`

	// Relationships (not loaded by default, use Preload)
	User *UserModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for the TaxCalculationModel.
func (TaxCalculationModel) TableName() string {
	return "tax_calculations"
}

// ToEntity converts a TaxCalculationModel to a domain TaxCalculation entity.
func (m *TaxCalculationModel) ToEntity() *entity.TaxCalculation {
	return &entity.TaxCalculation{
		ID:     m.ID,
		UserID: m.UserID,
		Breakdown: tax.Breakdown{
			GrossIncome:         m.GrossIncome,
			Deductions:          m.Deductions,
			TaxableIncome:       m.TaxableIncome,
			BaseTax:             m.BaseTax,
			Surcharge:           m.Surcharge,
			HealthEducationCess: m.HealthEducationCess,
			TotalTax:            m.TotalTax,
			EffectiveTaxRate:    m.EffectiveTaxRate,
			TakeHomeAnnual:      m.TakeHomeAnnual,
			TakeHomeMonthly:     m.TakeHomeMonthly,
		},
		Regime:    tax.Regime(m.Regime),
		CreatedAt: m.CreatedAt,
	}
}

// TaxCalculationFromEntity creates a TaxCalculationModel from a domain entity.
func TaxCalculationFromEntity(calculation *entity.TaxCalculation) *TaxCalculationModel {
	b := calculation.Breakdown
	return &TaxCalculationModel{
		ID:                  calculation.ID,
		UserID:              calculation.UserID,
		GrossIncome:         b.GrossIncome,
		Deductions:          b.Deductions,
		TaxableIncome:       b.TaxableIncome,
		BaseTax:             b.BaseTax,
		Surcharge:           b.Surcharge,
		HealthEducationCess: b.HealthEducationCess,
		TotalTax:            b.TotalTax,
		EffectiveTaxRate:    b.EffectiveTaxRate,
		Regime:              string(calculation.Regime),
		TakeHomeAnnual:      b.TakeHomeAnnual,
		TakeHomeMonthly:     b.TakeHomeMonthly,
		CreatedAt:           calculation.CreatedAt,
	}
}
