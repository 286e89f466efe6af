// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	taxusecase "github.com/tax-planner/backend/internal/application/usecase/tax"
	domainerror "github.com/tax-planner/backend/internal/domain/error"
	domaintax "github.com/tax-planner/backend/internal/domain/tax"
	"github.com/tax-planner/backend/internal/integration/entrypoint/dto"
	"github.com/tax-planner/backend/internal/integration/entrypoint/middleware"
)

// TaxController handles tax computation endpoints.
type TaxController struct {
	calculateUseCase *taxusecase.CalculateTaxUseCase
	compareUseCase   *taxusecase.CompareRegimesUseCase
	slabsUseCase     *taxusecase.SlabBreakdownUseCase
}

// NewTaxController creates a new tax controller instance.
func NewTaxController(
	calculateUseCase *taxusecase.CalculateTaxUseCase,
	compareUseCase *taxusecase.CompareRegimesUseCase,
	slabsUseCase *taxusecase.SlabBreakdownUseCase,
) *TaxController {
	return &TaxController{
		calculateUseCase: calculateUseCase,
		compareUseCase:   compareUseCase,
		slabsUseCase:     slabsUseCase,
	}
}

// Calculate handles POST /tax/calculate requests.
func (c *TaxController) Calculate(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CalculateTaxRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTaxFields),
		})
		return
	}

	rebates := make(map[string]decimal.Decimal, len(req.Rebates))
	for name, amount := range req.Rebates {
		rebates[name] = decimal.NewFromFloat(amount)
	}

	output, err := c.calculateUseCase.Execute(ctx.Request.Context(), taxusecase.CalculateTaxInput{
		UserID:        userID,
		Income:        decimal.NewFromFloat(*req.Income),
		Regime:        domaintax.Regime(req.Regime),
		Deductions:    decimal.NewFromFloat(req.Deductions),
		Rebates:       rebates,
		SaveToHistory: req.Save,
	})
	if err != nil {
		c.handleTaxError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaxBreakdownResponse(output.Breakdown, output.Regime, output.RecordID))
}

// Compare handles POST /tax/compare requests.
func (c *TaxController) Compare(ctx *gin.Context) {
	var req dto.CompareRegimesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTaxFields),
		})
		return
	}

	output, err := c.compareUseCase.Execute(ctx.Request.Context(), taxusecase.CompareRegimesInput{
		Income:     decimal.NewFromFloat(*req.Income),
		Deductions: decimal.NewFromFloat(req.Deductions),
	})
	if err != nil {
		c.handleTaxError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCompareRegimesResponse(output.Comparison))
}

// Slabs handles GET /tax/slabs requests.
func (c *TaxController) Slabs(ctx *gin.Context) {
	var query dto.SlabBreakdownQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid query parameters: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTaxFields),
		})
		return
	}

	output, err := c.slabsUseCase.Execute(ctx.Request.Context(), taxusecase.SlabBreakdownInput{
		Income: decimal.NewFromFloat(*query.Income),
		Regime: domaintax.Regime(query.Regime),
	})
	if err != nil {
		c.handleTaxError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSlabBreakdownResponse(output.Regime, output.Slabs))
}

// handleTaxError maps tax and history errors to HTTP responses. Distinct
// error kinds are preserved up to here; only the response body is generic.
func (c *TaxController) handleTaxError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrNegativeIncome):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Income cannot be negative",
			Code:  string(domainerror.ErrCodeNegativeIncome),
		})
	case errors.Is(err, domainerror.ErrInvalidRegime):
		// Regime is validated at the binding layer, so reaching the engine
		// with a bad tag is a contract violation, not a caller mistake.
		slog.Error("Invalid regime reached the tax engine", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An error occurred during tax calculation",
		})
	case errors.Is(err, domainerror.ErrStoreUnavailable):
		slog.Error("Calculation history store unavailable", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Calculation history is temporarily unavailable",
			Code:  string(domainerror.ErrCodeStoreUnavailable),
		})
	default:
		slog.Error("Unexpected tax calculation error", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An error occurred during tax calculation",
		})
	}
}
