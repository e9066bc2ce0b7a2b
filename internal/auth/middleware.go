// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package auth

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/go-donew/mentoring-api/internal/logging"
	"github.com/go-donew/mentoring-api/internal/models"
)

// publicPathPrefixes lists routes reachable without a bearer token.
var publicPathPrefixes = []string{
	"/ping",
	"/auth/",
	"/metrics",
}

// Middleware authenticates requests against the identity service and
// attaches the resolved principal to the request context.
type Middleware struct {
	identity *Identity
}

// NewMiddleware creates the authentication middleware.
func NewMiddleware(identity *Identity) *Middleware {
	return &Middleware{identity: identity}
}

// Authenticate is the global authentication layer. Public paths pass
// through with only the client key attached; every other request must
// carry a valid bearer token in the Authorization header (the "Bearer"
// prefix is optional) or a token query parameter.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ContextWithClientKey(r.Context(), clientAddress(r))

		if isPublicPath(r.URL.Path) {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		token := extractToken(r)
		if token == "" {
			writeAuthError(w, r, models.NewServerError(models.ErrInvalidToken).
				WithMessage("No bearer token was passed with the request."))
			return
		}

		user, claims, err := m.identity.VerifyToken(ctx, token)
		if err != nil {
			var serr *models.ServerError
			if !errors.As(err, &serr) {
				serr = models.NewServerError(models.ErrInvalidToken)
			}
			writeAuthError(w, r, serr)
			return
		}

		principal := &Principal{
			User:   user,
			IsRoot: claims.Root,
			Token:  token,
		}

		next.ServeHTTP(w, r.WithContext(ContextWithPrincipal(ctx, principal)))
	})
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPathPrefixes {
		if path == strings.TrimSuffix(prefix, "/") || strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// extractToken pulls the bearer token from the Authorization header or
// the token query parameter. The "Bearer" prefix is accepted in any
// case but not required.
func extractToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header != "" {
		if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
			return strings.TrimSpace(header[7:])
		}
		return header
	}
	return strings.TrimSpace(r.URL.Query().Get("token"))
}

// clientAddress returns the caller's IP for throttling keys.
func clientAddress(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// writeAuthError writes the error envelope directly. The middleware
// runs before the api package's response helpers are in play.
func writeAuthError(w http.ResponseWriter, r *http.Request, serr *models.ServerError) {
	logging.Ctx(r.Context()).Warn().
		Str("path", r.URL.Path).
		Str("code", serr.Code).
		Msg("Request rejected during authentication")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(serr.Status)

	envelope := map[string]any{"error": serr}
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to write auth error response")
	}
}
