// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package models

import "net/http"

// Error codes returned by the API. Every failure surfaces as exactly
// one of these, wrapped in a ServerError envelope.
const (
	ErrImproperPayload      = "improper-payload"
	ErrInvalidToken         = "invalid-token"
	ErrIncorrectCredentials = "incorrect-credentials"
	ErrNotAllowed           = "not-allowed"
	ErrEntityNotFound       = "entity-not-found"
	ErrRouteNotFound        = "route-not-found"
	ErrEntityAlreadyExists  = "entity-already-exists"
	ErrTooManyRequests      = "too-many-requests"
	ErrBackendError         = "backend-error"
	ErrServerCrash          = "server-crash"
)

// serverErrorDefaults maps each error code to its HTTP status and
// default client-facing message.
var serverErrorDefaults = map[string]struct {
	status  int
	message string
}{
	ErrImproperPayload:      {http.StatusBadRequest, "The request body or parameters were invalid."},
	ErrInvalidToken:         {http.StatusUnauthorized, "The bearer token passed was invalid or expired."},
	ErrIncorrectCredentials: {http.StatusUnauthorized, "The credentials passed were incorrect."},
	ErrNotAllowed:           {http.StatusForbidden, "You are not allowed to perform this operation."},
	ErrEntityNotFound:       {http.StatusNotFound, "The requested entity was not found."},
	ErrRouteNotFound:        {http.StatusNotFound, "The requested route was not found."},
	ErrEntityAlreadyExists:  {http.StatusConflict, "An entity with the same identifier already exists."},
	ErrTooManyRequests:      {http.StatusTooManyRequests, "Too many requests, please try again later."},
	ErrBackendError:         {http.StatusInternalServerError, "An error occurred while interacting with the backend."},
	ErrServerCrash:          {http.StatusInternalServerError, "An unexpected error occurred."},
}

// ServerError is the typed error carried through handlers and written
// by the centralized response formatter. It always maps to a stable
// code, message and HTTP status triple.
type ServerError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// NewServerError returns the ServerError for a known code with its
// default message. Unknown codes fall back to server-crash so a bad
// code can never turn into a malformed envelope.
func NewServerError(code string) *ServerError {
	defaults, ok := serverErrorDefaults[code]
	if !ok {
		return NewServerError(ErrServerCrash)
	}
	return &ServerError{
		Code:    code,
		Message: defaults.message,
		Status:  defaults.status,
	}
}

// WithMessage returns a copy of the error carrying a more descriptive
// message. The code and status are preserved.
func (e *ServerError) WithMessage(message string) *ServerError {
	return &ServerError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
	}
}

// Error implements the error interface.
func (e *ServerError) Error() string {
	return e.Code + ": " + e.Message
}

// Is allows errors.Is comparison by code.
func (e *ServerError) Is(target error) bool {
	other, ok := target.(*ServerError)
	if !ok {
		return false
	}
	return e.Code == other.Code
}
