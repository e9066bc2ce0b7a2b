// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package auth

import (
	"context"

	"github.com/go-donew/mentoring-api/internal/models"
)

type contextKey string

const (
	principalKey contextKey = "principal"
	clientKeyCtx contextKey = "client_key"
)

// Principal is the authenticated caller attached to a request.
type Principal struct {
	// User is the caller's mirrored user record.
	User *models.User

	// IsRoot marks the caller as a super-admin.
	IsRoot bool

	// Token is the raw bearer token, used as the rate-limit key.
	Token string
}

// ContextWithPrincipal attaches the principal to the context.
func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext retrieves the principal, or nil for anonymous
// requests.
func PrincipalFromContext(ctx context.Context) *Principal {
	if p, ok := ctx.Value(principalKey).(*Principal); ok {
		return p
	}
	return nil
}

// ContextWithClientKey attaches the caller's network address, used to
// key sign-in throttling.
func ContextWithClientKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, clientKeyCtx, key)
}

func clientKeyFromContext(ctx context.Context) string {
	if key, ok := ctx.Value(clientKeyCtx).(string); ok {
		return key
	}
	return "unknown"
}
