// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package api

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/goccy/go-json"

	"github.com/go-donew/mentoring-api/internal/logging"
	"github.com/go-donew/mentoring-api/internal/models"
)

// errorEnvelope is the wire shape of every error response.
type errorEnvelope struct {
	Error *models.ServerError `json:"error"`
}

// writeJSON writes data as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.CtxErr(r.Context(), err).Msg("Failed to encode JSON response")
	}
}

// writeData writes a 200 response with the given payload.
func writeData(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, r, http.StatusOK, data)
}

// writeCreated writes a 201 response with the given payload.
func writeCreated(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, r, http.StatusCreated, data)
}

// writeNoContent writes an empty 204 response.
func writeNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// writeError is the centralized error formatter. Typed ServerErrors
// pass through with their code and status; anything else is an
// unexpected fault, logged in full and downgraded to backend-error so
// provider details never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var serr *models.ServerError
	if !errors.As(err, &serr) {
		logging.CtxErr(r.Context(), err).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg("Unexpected error in handler")
		serr = models.NewServerError(models.ErrBackendError)
	}

	if serr.Status >= http.StatusInternalServerError {
		logging.CtxErr(r.Context(), serr).
			Str("path", r.URL.Path).
			Str("code", serr.Code).
			Msg("Request failed")
	}

	writeJSON(w, r, serr.Status, errorEnvelope{Error: serr})
}

// notFoundHandler answers requests for unknown routes.
func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, models.NewServerError(models.ErrRouteNotFound))
}

// methodNotAllowedHandler answers known routes hit with the wrong
// method. The envelope matches unknown routes so method probing gains
// nothing.
func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, models.NewServerError(models.ErrRouteNotFound))
}

// recoverer converts handler panics into server-crash responses. The
// panic value and stack stay in the server logs.
func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logging.Ctx(r.Context()).Error().
					Interface("panic", rec).
					Str("path", r.URL.Path).
					Str("method", r.Method).
					Bytes("stack", debug.Stack()).
					Msg("Handler panicked")

				writeError(w, r, models.NewServerError(models.ErrServerCrash))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
