// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package authz

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/go-donew/mentoring-api/internal/auth"
	"github.com/go-donew/mentoring-api/internal/logging"
	"github.com/go-donew/mentoring-api/internal/models"
)

// Middleware runs the engine as a chi route middleware before handler
// bodies execute.
type Middleware struct {
	engine *Engine
}

// NewMiddleware creates the authorization middleware.
func NewMiddleware(engine *Engine) *Middleware {
	return &Middleware{engine: engine}
}

// Require returns a middleware enforcing the given requirement. Target
// ids are resolved from the route's URL parameters (userID, groupID,
// conversationID, reportID).
func (m *Middleware) Require(req Requirement) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := auth.PrincipalFromContext(r.Context())
			if principal == nil {
				writeAuthzError(w, r, models.NewServerError(models.ErrInvalidToken))
				return
			}

			target := Target{
				UserID:         chi.URLParam(r, "userID"),
				GroupID:        chi.URLParam(r, "groupID"),
				ConversationID: chi.URLParam(r, "conversationID"),
				ReportID:       chi.URLParam(r, "reportID"),
			}

			if err := m.engine.Check(r.Context(), principal, req, target); err != nil {
				var serr *models.ServerError
				if !errors.As(err, &serr) {
					serr = models.NewServerError(models.ErrNotAllowed)
				}
				writeAuthzError(w, r, serr)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeAuthzError writes the error envelope directly, mirroring the
// authentication middleware.
func writeAuthzError(w http.ResponseWriter, r *http.Request, serr *models.ServerError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(serr.Status)

	envelope := map[string]any{"error": serr}
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to write authorization error response")
	}
}
