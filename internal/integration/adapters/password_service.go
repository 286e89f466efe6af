// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/tax-planner/backend/internal/application/adapter"
	domainerror "github.com/tax-planner/backend/internal/domain/error"
)

const (
	// bcryptCost trades hashing latency for brute-force resistance.
	bcryptCost = 12
	// minPasswordLength is the shortest password accepted at registration.
	minPasswordLength = 8
)

// passwordService hashes and verifies account passwords with bcrypt.
type passwordService struct{}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{}
}

// HashPassword derives a bcrypt hash from the plain text password. The
// cost factor is fixed; hashes created at an older cost keep verifying.
func (s *passwordService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether the plain text password matches the
// stored hash, nil on a match.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePasswordStrength rejects passwords shorter than the minimum.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: must be at least %d characters", domainerror.ErrWeakPassword, minPasswordLength)
	}
	return nil
}
