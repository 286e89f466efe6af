package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tax-planner/backend/internal/application/adapter"
	domainerror "github.com/tax-planner/backend/internal/domain/error"
)

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	UserID   uuid.UUID
	Password string
}

// DeleteAccountUseCase handles account deletion. Deleting an account
// removes the user's entire calculation history with it.
type DeleteAccountUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute performs the account deletion. The caller must re-confirm the
// account password; a valid token alone is not enough to destroy data.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) error {
	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return err
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.userRepo.Delete(ctx, input.UserID); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	return nil
}
