// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/go-donew/mentoring-api/internal/config"
	"github.com/go-donew/mentoring-api/internal/models"
)

// Token type claim values. The typ claim prevents a refresh token from
// being replayed as a bearer token and vice versa.
const (
	tokenTypeBearer  = "bearer"
	tokenTypeRefresh = "refresh"
)

// Claims is the JWT claim set stamped on issued tokens.
type Claims struct {
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// TokenPair is the bearer and refresh token returned by sign-up,
// sign-in and refresh operations.
type TokenPair struct {
	Bearer  string `json:"bearer"`
	Refresh string `json:"refresh"`
}

// TokenManager issues and verifies HS256-signed token pairs.
type TokenManager struct {
	secret     []byte
	issuer     string
	bearerTTL  time.Duration
	refreshTTL time.Duration
}

// NewTokenManager creates a token manager from the auth configuration.
// The JWT secret must be set; production config validation enforces a
// minimum length.
func NewTokenManager(cfg *config.AuthConfig) (*TokenManager, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but was empty")
	}

	return &TokenManager{
		secret:     []byte(cfg.JWTSecret),
		issuer:     cfg.Issuer,
		bearerTTL:  cfg.BearerTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
	}, nil
}

// Issue creates a bearer and refresh token pair for the given user.
func (m *TokenManager) Issue(userID string) (*TokenPair, error) {
	bearer, err := m.sign(userID, tokenTypeBearer, m.bearerTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := m.sign(userID, tokenTypeRefresh, m.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{Bearer: bearer, Refresh: refresh}, nil
}

func (m *TokenManager) sign(userID, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// parse validates the signature and standard claims of a token and
// returns its claim set.
func (m *TokenManager) parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Reject any algorithm other than HMAC to prevent algorithm
		// confusion attacks.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// VerifyBearer checks a bearer token and returns the subject user id.
// Every failure, including a refresh token presented as a bearer
// token, surfaces as invalid-token.
func (m *TokenManager) VerifyBearer(tokenString string) (string, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		return "", models.NewServerError(models.ErrInvalidToken)
	}
	if claims.TokenType != tokenTypeBearer {
		return "", models.NewServerError(models.ErrInvalidToken)
	}
	return claims.Subject, nil
}

// VerifyRefresh checks a refresh token and returns the subject user
// id. A structurally broken token or a bearer token in its place fails
// with improper-payload; an expired refresh token fails with
// incorrect-credentials so clients know to sign in again.
func (m *TokenManager) VerifyRefresh(tokenString string) (string, error) {
	claims, err := m.parse(tokenString)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", models.NewServerError(models.ErrIncorrectCredentials).
				WithMessage("The refresh token has expired, please sign in again.")
		}
		return "", models.NewServerError(models.ErrImproperPayload).
			WithMessage("The refresh token passed was malformed.")
	}
	if claims.TokenType != tokenTypeRefresh {
		return "", models.NewServerError(models.ErrImproperPayload).
			WithMessage("A bearer token cannot be used to refresh tokens.")
	}
	return claims.Subject, nil
}
