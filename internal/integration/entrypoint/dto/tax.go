// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/google/uuid"

	"github.com/tax-planner/backend/internal/domain/tax"
)

// CalculateTaxRequest represents the request body for a tax calculation.
// Income is a pointer so that an explicit zero passes the required check.
type CalculateTaxRequest struct {
	Income     *float64           `json:"income" binding:"required,gte=0"`
	Regime     string             `json:"regime" binding:"required,oneof=old new"`
	Deductions float64            `json:"deductions" binding:"omitempty,gte=0"`
	Rebates    map[string]float64 `json:"rebates" binding:"omitempty,dive,gte=0"`
	Save       bool               `json:"save"`
}

// CompareRegimesRequest represents the request body for a regime comparison.
type CompareRegimesRequest struct {
	Income     *float64 `json:"income" binding:"required,gte=0"`
	Deductions float64  `json:"deductions" binding:"omitempty,gte=0"`
}

// SlabBreakdownQuery represents the query parameters for a slab itemization.
type SlabBreakdownQuery struct {
	Income *float64 `form:"income" binding:"required,gte=0"`
	Regime string   `form:"regime" binding:"required,oneof=old new"`
}

// TaxBreakdownResponse represents a full tax breakdown in API responses.
type TaxBreakdownResponse struct {
	GrossIncome         float64 `json:"gross_income"`
	Deductions          float64 `json:"deductions"`
	TaxableIncome       float64 `json:"taxable_income"`
	BaseTax             float64 `json:"base_tax"`
	Surcharge           float64 `json:"surcharge"`
	HealthEducationCess float64 `json:"health_education_cess"`
	TotalTax            float64 `json:"total_tax"`
	EffectiveTaxRate    float64 `json:"effective_tax_rate"`
	TakeHomeAnnual      float64 `json:"take_home_annual"`
	TakeHomeMonthly     float64 `json:"take_home_monthly"`
	Regime              string  `json:"regime"`
	RecordID            *string `json:"record_id,omitempty"`
}

// CompareRegimesResponse represents the response for a regime comparison.
type CompareRegimesResponse struct {
	Old         TaxBreakdownResponse `json:"old"`
	New         TaxBreakdownResponse `json:"new"`
	Savings     float64              `json:"savings"`
	Recommended string               `json:"recommended"`
}

// SlabItemResponse represents one slab line in a slab itemization.
type SlabItemResponse struct {
	Range        string  `json:"range"`
	Rate         string  `json:"rate"`
	IncomeInSlab float64 `json:"income_in_slab"`
	TaxInSlab    float64 `json:"tax_in_slab"`
}

// SlabBreakdownResponse represents the response for a slab itemization.
type SlabBreakdownResponse struct {
	Regime string             `json:"regime"`
	Slabs  []SlabItemResponse `json:"slabs"`
}

// ToTaxBreakdownResponse converts an engine breakdown to its API shape.
func ToTaxBreakdownResponse(b *tax.Breakdown, regime tax.Regime, recordID *uuid.UUID) TaxBreakdownResponse {
	response := TaxBreakdownResponse{
		GrossIncome:         b.GrossIncome.InexactFloat64(),
		Deductions:          b.Deductions.InexactFloat64(),
		TaxableIncome:       b.TaxableIncome.InexactFloat64(),
		BaseTax:             b.BaseTax.InexactFloat64(),
		Surcharge:           b.Surcharge.InexactFloat64(),
		HealthEducationCess: b.HealthEducationCess.InexactFloat64(),
		TotalTax:            b.TotalTax.InexactFloat64(),
		EffectiveTaxRate:    b.EffectiveTaxRate.InexactFloat64(),
		TakeHomeAnnual:      b.TakeHomeAnnual.InexactFloat64(),
		TakeHomeMonthly:     b.TakeHomeMonthly.InexactFloat64(),
		Regime:              string(regime),
	}

	if recordID != nil {
		id := recordID.String()
		response.RecordID = &id
	}

	return response
}

// ToCompareRegimesResponse converts an engine comparison to its API shape.
func ToCompareRegimesResponse(c *tax.RegimeComparison) CompareRegimesResponse {
	return CompareRegimesResponse{
		Old:         ToTaxBreakdownResponse(c.Old, tax.RegimeOld, nil),
		New:         ToTaxBreakdownResponse(c.New, tax.RegimeNew, nil),
		Savings:     c.Savings.InexactFloat64(),
		Recommended: string(c.Recommended),
	}
}

// ToSlabBreakdownResponse converts engine slab items to their API shape.
func ToSlabBreakdownResponse(regime tax.Regime, items []tax.SlabItem) SlabBreakdownResponse {
	slabs := make([]SlabItemResponse, len(items))
	for i, item := range items {
		slabs[i] = SlabItemResponse{
			Range:        item.Range,
			Rate:         item.Rate,
			IncomeInSlab: item.IncomeInSlab.InexactFloat64(),
			TaxInSlab:    item.TaxInSlab.InexactFloat64(),
		}
	}
	return SlabBreakdownResponse{
		Regime: string(regime),
		Slabs:  slabs,
	}
}
