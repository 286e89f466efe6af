// Package auth contains authentication-related use cases.
package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/tax-planner/backend/internal/application/adapter"
	"github.com/tax-planner/backend/internal/domain/entity"
)

// GetUserInput represents the input for fetching the authenticated user.
type GetUserInput struct {
	UserID uuid.UUID
}

// GetUserOutput represents the output of fetching the authenticated user.
type GetUserOutput struct {
	User *entity.User
}

// GetUserUseCase resolves an authenticated identity to its user record.
type GetUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetUserUseCase creates a new GetUserUseCase instance.
func NewGetUserUseCase(userRepo adapter.UserRepository) *GetUserUseCase {
	return &GetUserUseCase{
		userRepo: userRepo,
	}
}

// Execute fetches the user by ID.
func (uc *GetUserUseCase) Execute(ctx context.Context, input GetUserInput) (*GetUserOutput, error) {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetUserOutput{
		User: user,
	}, nil
}
