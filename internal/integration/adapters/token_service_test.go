package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/tax-planner/backend/internal/domain/error"
)

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	service := NewTokenService("test-secret")
	userID := uuid.New()

	t.Run("roundtrips identity claims", func(t *testing.T) {
		token, err := service.GenerateAccessToken(ctx, userID, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := service.ValidateAccessToken(ctx, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if claims.UserID != userID {
			t.Errorf("UserID = %s, want %s", claims.UserID, userID)
		}
		if claims.Username != "alice" {
			t.Errorf("Username = %q, want alice", claims.Username)
		}
	})

	t.Run("rejects tokens signed with another secret", func(t *testing.T) {
		other := NewTokenService("other-secret")
		token, err := other.GenerateAccessToken(ctx, userID, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = service.ValidateAccessToken(ctx, token)
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		expired := NewTokenServiceWithDuration("test-secret", -time.Minute)
		token, err := expired.GenerateAccessToken(ctx, userID, "alice")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err = service.ValidateAccessToken(ctx, token)
		if !errors.Is(err, domainerror.ErrExpiredToken) {
			t.Errorf("expected ErrExpiredToken, got %v", err)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := service.ValidateAccessToken(ctx, "not-a-token")
		if !errors.Is(err, domainerror.ErrInvalidToken) {
			t.Errorf("expected ErrInvalidToken, got %v", err)
		}
	})
}
