// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package api

import (
	"net/http"

	"github.com/go-chi/httprate"

	"github.com/go-donew/mentoring-api/internal/auth"
	"github.com/go-donew/mentoring-api/internal/config"
	"github.com/go-donew/mentoring-api/internal/models"
)

// tieredRateLimiter applies one of three request ceilings per window:
// anonymous callers are keyed by client IP, authenticated callers by
// their bearer token and super-admins get the widest tier. The
// principal must already be resolved, so this runs after the
// authentication middleware.
type tieredRateLimiter struct {
	disabled bool

	anonymous     func(http.Handler) http.Handler
	authenticated func(http.Handler) http.Handler
	root          func(http.Handler) http.Handler
}

func newTieredRateLimiter(cfg config.RateLimitConfig) *tieredRateLimiter {
	if cfg.Disabled {
		return &tieredRateLimiter{disabled: true}
	}

	onLimit := httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, models.NewServerError(models.ErrTooManyRequests))
	})

	byToken := httprate.WithKeyFuncs(principalKey)

	return &tieredRateLimiter{
		anonymous:     httprate.Limit(cfg.AnonymousRequests, cfg.Window, httprate.WithKeyFuncs(httprate.KeyByRealIP), onLimit),
		authenticated: httprate.Limit(cfg.AuthenticatedRequests, cfg.Window, byToken, onLimit),
		root:          httprate.Limit(cfg.RootRequests, cfg.Window, byToken, onLimit),
	}
}

// principalKey keys authenticated callers by their raw token, so a
// re-issued token starts a fresh window and shared IPs do not contend.
func principalKey(r *http.Request) (string, error) {
	if p := auth.PrincipalFromContext(r.Context()); p != nil {
		return p.Token, nil
	}
	return httprate.KeyByRealIP(r)
}

// Limit dispatches each request to its tier's limiter.
func (t *tieredRateLimiter) Limit(next http.Handler) http.Handler {
	if t.disabled {
		return next
	}

	anonymous := t.anonymous(next)
	authenticated := t.authenticated(next)
	root := t.root(next)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal := auth.PrincipalFromContext(r.Context())
		switch {
		case principal == nil:
			anonymous.ServeHTTP(w, r)
		case principal.IsRoot:
			root.ServeHTTP(w, r)
		default:
			authenticated.ServeHTTP(w, r)
		}
	})
}
