// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package api

import (
	"net/http"

	"github.com/go-donew/mentoring-api/internal/auth"
	"github.com/go-donew/mentoring-api/internal/authz"
	"github.com/go-donew/mentoring-api/internal/database"
	"github.com/go-donew/mentoring-api/internal/models"
)

// Handler holds the dependencies shared by every route handler.
type Handler struct {
	store    *database.Store
	identity *auth.Identity
	engine   *authz.Engine
}

// NewHandler creates the route handler set.
func NewHandler(store *database.Store, identity *auth.Identity, engine *authz.Engine) *Handler {
	return &Handler{
		store:    store,
		identity: identity,
		engine:   engine,
	}
}

// principal returns the authenticated caller. Routes behind the
// authentication middleware always have one; a missing principal
// means the route was wired outside the middleware.
func principal(r *http.Request) (*auth.Principal, error) {
	p := auth.PrincipalFromContext(r.Context())
	if p == nil {
		return nil, models.NewServerError(models.ErrInvalidToken)
	}
	return p, nil
}

// Ping answers liveness probes without authentication.
func (h *Handler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

// Pong answers authenticated probes; reaching it proves the caller's
// token verifies.
func (h *Handler) Pong(w http.ResponseWriter, r *http.Request) {
	if _, err := principal(r); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ping"))
}
