// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/tax-planner/backend/internal/application/adapter"
)

// HistoryListQuery represents the query parameters for listing history.
// Zero values are replaced with defaults by the controller.
type HistoryListQuery struct {
	Page     int `form:"page" binding:"omitempty,gt=0"`
	PageSize int `form:"page_size" binding:"omitempty,gt=0,lte=100"`
}

// HistoryRecordResponse represents one persisted calculation in API responses.
type HistoryRecordResponse struct {
	ID                  string    `json:"id"`
	GrossIncome         float64   `json:"gross_income"`
	Deductions          float64   `json:"deductions"`
	TaxableIncome       float64   `json:"taxable_income"`
	BaseTax             float64   `json:"base_tax"`
	Surcharge           float64   `json:"surcharge"`
	HealthEducationCess float64   `json:"health_education_cess"`
	TotalTax            float64   `json:"total_tax"`
	EffectiveTaxRate    float64   `json:"effective_tax_rate"`
	Regime              string    `json:"regime"`
	TakeHomeAnnual      float64   `json:"take_home_annual"`
	TakeHomeMonthly     float64   `json:"take_home_monthly"`
	CreatedAt           time.Time `json:"created_at"`
}

// HistoryListResponse represents one page of calculation history.
type HistoryListResponse struct {
	Calculations []HistoryRecordResponse `json:"calculations"`
	Total        int64                   `json:"total"`
	Page         int                     `json:"page"`
	PageSize     int                     `json:"page_size"`
	TotalPages   int                     `json:"total_pages"`
}

// ToHistoryListResponse converts a repository page to its API shape.
func ToHistoryListResponse(page *adapter.HistoryPage) HistoryListResponse {
	calculations := make([]HistoryRecordResponse, len(page.Calculations))
	for i, c := range page.Calculations {
		b := c.Breakdown
		calculations[i] = HistoryRecordResponse{
			ID:                  c.ID.String(),
			GrossIncome:         b.GrossIncome.InexactFloat64(),
			Deductions:          b.Deductions.InexactFloat64(),
			TaxableIncome:       b.TaxableIncome.InexactFloat64(),
			BaseTax:             b.BaseTax.InexactFloat64(),
			Surcharge:           b.Surcharge.InexactFloat64(),
			HealthEducationCess: b.HealthEducationCess.InexactFloat64(),
			TotalTax:            b.TotalTax.InexactFloat64(),
			EffectiveTaxRate:    b.EffectiveTaxRate.InexactFloat64(),
			Regime:              string(c.Regime),
			TakeHomeAnnual:      b.TakeHomeAnnual.InexactFloat64(),
			TakeHomeMonthly:     b.TakeHomeMonthly.InexactFloat64(),
			CreatedAt:           c.CreatedAt,
		}
	}

	return HistoryListResponse{
		Calculations: calculations,
		Total:        page.Total,
		Page:         page.Page,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
	}
}
