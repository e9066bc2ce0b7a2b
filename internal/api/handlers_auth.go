// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package api

import (
	"net/http"

	"github.com/go-donew/mentoring-api/internal/auth"
	"github.com/go-donew/mentoring-api/internal/models"
)

// userWithTokens is the response body of sign-up and sign-in.
type userWithTokens struct {
	User   *models.User    `json:"user"`
	Tokens *auth.TokenPair `json:"tokens"`
}

// SignUp creates an account and signs the caller in.
func (h *Handler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, tokens, err := h.identity.SignUp(r.Context(), auth.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeCreated(w, r, userWithTokens{User: user, Tokens: tokens})
}

// SignIn exchanges credentials for a token pair.
func (h *Handler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, tokens, err := h.identity.SignIn(r.Context(), auth.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, userWithTokens{User: user, Tokens: tokens})
}

// RefreshToken exchanges a refresh token for a new token pair.
func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req refreshTokenRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	tokens, err := h.identity.RefreshTokens(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string]*auth.TokenPair{"tokens": tokens})
}
