// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tax-planner/backend/internal/application/usecase/auth"
	domainerror "github.com/tax-planner/backend/internal/domain/error"
	"github.com/tax-planner/backend/internal/integration/entrypoint/dto"
	"github.com/tax-planner/backend/internal/integration/entrypoint/middleware"
)

// UserController handles user profile endpoints.
type UserController struct {
	getUserUseCase       *auth.GetUserUseCase
	deleteAccountUseCase *auth.DeleteAccountUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(
	getUserUseCase *auth.GetUserUseCase,
	deleteAccountUseCase *auth.DeleteAccountUseCase,
) *UserController {
	return &UserController{
		getUserUseCase:       getUserUseCase,
		deleteAccountUseCase: deleteAccountUseCase,
	}
}

// Me handles GET /users/me requests.
func (c *UserController) Me(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getUserUseCase.Execute(ctx.Request.Context(), auth.GetUserInput{
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "User not found",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve user",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// DeleteMe handles DELETE /users/me requests. The account and its entire
// calculation history are removed together.
func (c *UserController) DeleteMe(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.DeleteAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), auth.DeleteAccountInput{
		UserID:   userID,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrInvalidCredentials):
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid password",
				Code:  string(domainerror.ErrCodeInvalidCredentials),
			})
		case errors.Is(err, domainerror.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: "User not found",
				Code:  string(domainerror.ErrCodeUserNotFound),
			})
		default:
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "Failed to delete account",
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Account deleted successfully"})
}
