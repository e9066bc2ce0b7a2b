// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/go-donew/mentoring-api/internal/config"
	"github.com/go-donew/mentoring-api/internal/models"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestTokenManager(t *testing.T, bearerTTL, refreshTTL time.Duration) *TokenManager {
	t.Helper()

	manager, err := NewTokenManager(&config.AuthConfig{
		JWTSecret:       testSecret,
		Issuer:          "mentoring-api-test",
		BearerTokenTTL:  bearerTTL,
		RefreshTokenTTL: refreshTTL,
	})
	if err != nil {
		t.Fatalf("building token manager: %v", err)
	}
	return manager
}

func TestNewTokenManagerRequiresSecret(t *testing.T) {
	_, err := NewTokenManager(&config.AuthConfig{})
	if err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestBearerRoundTrip(t *testing.T) {
	manager := newTestTokenManager(t, time.Hour, 24*time.Hour)

	pair, err := manager.Issue("user-1")
	if err != nil {
		t.Fatalf("issuing tokens: %v", err)
	}
	if pair.Bearer == "" || pair.Refresh == "" {
		t.Fatal("issued pair has empty tokens")
	}

	userID, err := manager.VerifyBearer(pair.Bearer)
	if err != nil {
		t.Fatalf("verifying bearer: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("subject = %q, want user-1", userID)
	}
}

func TestRefreshRoundTrip(t *testing.T) {
	manager := newTestTokenManager(t, time.Hour, 24*time.Hour)

	pair, err := manager.Issue("user-1")
	if err != nil {
		t.Fatalf("issuing tokens: %v", err)
	}

	userID, err := manager.VerifyRefresh(pair.Refresh)
	if err != nil {
		t.Fatalf("verifying refresh: %v", err)
	}
	if userID != "user-1" {
		t.Errorf("subject = %q, want user-1", userID)
	}
}

// A refresh token must never pass bearer verification.
func TestRefreshTokenRejectedAsBearer(t *testing.T) {
	manager := newTestTokenManager(t, time.Hour, 24*time.Hour)

	pair, err := manager.Issue("user-1")
	if err != nil {
		t.Fatalf("issuing tokens: %v", err)
	}

	_, err = manager.VerifyBearer(pair.Refresh)
	if !errors.Is(err, models.NewServerError(models.ErrInvalidToken)) {
		t.Fatalf("expected invalid-token, got %v", err)
	}
}

// A bearer token presented for refresh is a malformed request, not a
// credentials problem.
func TestBearerTokenRejectedAsRefresh(t *testing.T) {
	manager := newTestTokenManager(t, time.Hour, 24*time.Hour)

	pair, err := manager.Issue("user-1")
	if err != nil {
		t.Fatalf("issuing tokens: %v", err)
	}

	_, err = manager.VerifyRefresh(pair.Bearer)
	if !errors.Is(err, models.NewServerError(models.ErrImproperPayload)) {
		t.Fatalf("expected improper-payload, got %v", err)
	}
}

func TestExpiredRefreshToken(t *testing.T) {
	manager := newTestTokenManager(t, time.Hour, -time.Minute)

	pair, err := manager.Issue("user-1")
	if err != nil {
		t.Fatalf("issuing tokens: %v", err)
	}

	_, err = manager.VerifyRefresh(pair.Refresh)
	if !errors.Is(err, models.NewServerError(models.ErrIncorrectCredentials)) {
		t.Fatalf("expected incorrect-credentials, got %v", err)
	}
}

func TestExpiredBearerToken(t *testing.T) {
	manager := newTestTokenManager(t, -time.Minute, 24*time.Hour)

	pair, err := manager.Issue("user-1")
	if err != nil {
		t.Fatalf("issuing tokens: %v", err)
	}

	_, err = manager.VerifyBearer(pair.Bearer)
	if !errors.Is(err, models.NewServerError(models.ErrInvalidToken)) {
		t.Fatalf("expected invalid-token, got %v", err)
	}
}

func TestGarbageTokens(t *testing.T) {
	manager := newTestTokenManager(t, time.Hour, 24*time.Hour)

	if _, err := manager.VerifyBearer("not-a-jwt"); !errors.Is(err, models.NewServerError(models.ErrInvalidToken)) {
		t.Errorf("bearer: expected invalid-token, got %v", err)
	}
	if _, err := manager.VerifyRefresh("not-a-jwt"); !errors.Is(err, models.NewServerError(models.ErrImproperPayload)) {
		t.Errorf("refresh: expected improper-payload, got %v", err)
	}
}

// Tokens signed with a different secret must not verify.
func TestForeignSignature(t *testing.T) {
	manager := newTestTokenManager(t, time.Hour, 24*time.Hour)
	other := newTestTokenManager(t, time.Hour, 24*time.Hour)
	other.secret = []byte("another-secret-another-secret-32")

	pair, err := other.Issue("user-1")
	if err != nil {
		t.Fatalf("issuing tokens: %v", err)
	}

	if _, err := manager.VerifyBearer(pair.Bearer); err == nil {
		t.Error("bearer signed with foreign secret verified")
	}
}
