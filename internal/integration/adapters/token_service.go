// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tax-planner/backend/internal/application/adapter"
	domainerror "github.com/tax-planner/backend/internal/domain/error"
)

// defaultAccessTokenDuration is the access token lifetime.
const defaultAccessTokenDuration = 1 * time.Hour

// CustomClaims represents the custom claims for JWT access tokens.
type CustomClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret        []byte
	tokenDuration time.Duration
}

// NewTokenService creates a new token service instance.
func NewTokenService(secret string) adapter.TokenService {
	return NewTokenServiceWithDuration(secret, defaultAccessTokenDuration)
}

// NewTokenServiceWithDuration creates a token service with a custom token lifetime.
func NewTokenServiceWithDuration(secret string, duration time.Duration) adapter.TokenService {
	return &tokenService{
		secret:        []byte(secret),
		tokenDuration: duration,
	}
}

// GenerateAccessToken issues a signed HS256 access token for the given identity.
func (s *tokenService) GenerateAccessToken(_ context.Context, userID uuid.UUID, username string) (string, error) {
	now := time.Now().UTC()

	claims := CustomClaims{
		UserID:   userID.String(),
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerror.ErrExpiredToken
		}
		return nil, domainerror.ErrInvalidToken
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, domainerror.ErrInvalidToken
	}

	return &adapter.TokenClaims{
		UserID:    userID,
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
