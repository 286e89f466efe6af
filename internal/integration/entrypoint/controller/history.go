package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	historyusecase "github.com/tax-planner/backend/internal/application/usecase/history"
	domainerror "github.com/tax-planner/backend/internal/domain/error"
	"github.com/tax-planner/backend/internal/integration/entrypoint/dto"
	"github.com/tax-planner/backend/internal/integration/entrypoint/middleware"
)

// HistoryController handles calculation history endpoints.
type HistoryController struct {
	listUseCase   *historyusecase.ListHistoryUseCase
	deleteUseCase *historyusecase.DeleteCalculationUseCase
}

// NewHistoryController creates a new history controller instance.
func NewHistoryController(
	listUseCase *historyusecase.ListHistoryUseCase,
	deleteUseCase *historyusecase.DeleteCalculationUseCase,
) *HistoryController {
	return &HistoryController{
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /tax/history requests.
func (c *HistoryController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	query := dto.HistoryListQuery{Page: 1, PageSize: 10}
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid pagination parameters: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidPage),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), historyusecase.ListHistoryInput{
		UserID:   userID,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		c.handleHistoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHistoryListResponse(output.Page))
}

// Delete handles DELETE /tax/history/:id requests.
func (c *HistoryController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid calculation ID",
			Code:  string(domainerror.ErrCodeCalculationNotFound),
		})
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), historyusecase.DeleteCalculationInput{
		RecordID: recordID,
		UserID:   userID,
	}); err != nil {
		c.handleHistoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Calculation deleted successfully"})
}

func (c *HistoryController) handleHistoryError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrInvalidPage):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Page and page size must be positive",
			Code:  string(domainerror.ErrCodeInvalidPage),
		})
	case errors.Is(err, domainerror.ErrCalculationNotFound):
		// Records owned by other users are reported as not found as well,
		// so the response never reveals that a foreign record exists.
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Calculation not found",
			Code:  string(domainerror.ErrCodeCalculationNotFound),
		})
	case errors.Is(err, domainerror.ErrStoreUnavailable):
		slog.Error("Calculation history store unavailable", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Calculation history is temporarily unavailable",
			Code:  string(domainerror.ErrCodeStoreUnavailable),
		})
	default:
		slog.Error("Unexpected calculation history error", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An error occurred while accessing calculation history",
		})
	}
}
