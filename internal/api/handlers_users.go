// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/go-donew/mentoring-api/internal/database"
	"github.com/go-donew/mentoring-api/internal/models"
)

// ListUsers returns all users matching the query filters. The route
// is super-admin only; authorization runs as route middleware.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	filters := queryFilters(r, "name", "email", "phone")

	users, err := h.store.Users.Find(r.Context(), filters)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string][]*models.User{"users": users})
}

// GetUser returns one user by id.
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.Users.Get(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string]*models.User{"user": user})
}

// queryFilters builds equality filters from the named query
// parameters, skipping absent ones.
func queryFilters(r *http.Request, fields ...string) []database.Filter {
	query := r.URL.Query()

	var filters []database.Filter
	for _, field := range fields {
		if value := query.Get(field); value != "" {
			filters = append(filters, database.Equals(field, value))
		}
	}
	return filters
}
