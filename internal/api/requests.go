// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/go-donew/mentoring-api/internal/models"
	"github.com/go-donew/mentoring-api/internal/validation"
)

// decodeRequest reads the JSON body into dst and validates it.
// Malformed JSON and failed field validation both surface as
// improper-payload.
func decodeRequest(r *http.Request, dst any) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return models.NewServerError(models.ErrImproperPayload).
			WithMessage("The request body is not valid JSON.")
	}

	if verr := validation.ValidateStruct(dst); verr != nil {
		return verr.ToServerError()
	}

	return nil
}

type signUpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,min=4"`
	Password string `json:"password" validate:"required,min=8"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type createGroupRequest struct {
	Name          string                   `json:"name" validate:"required"`
	Code          string                   `json:"code" validate:"required,min=4"`
	Tags          []string                 `json:"tags"`
	Participants  map[string]models.Role   `json:"participants" validate:"dive,role"`
	Conversations map[string][]models.Role `json:"conversations" validate:"dive,dive,role"`
	Reports       map[string][]models.Role `json:"reports" validate:"dive,dive,role"`
}

// updateGroupRequest carries a partial group. Nil maps and slices mean
// "leave unchanged"; present ones replace the stored value.
type updateGroupRequest struct {
	Name          *string                  `json:"name" validate:"omitempty,min=1"`
	Code          *string                  `json:"code" validate:"omitempty,min=4"`
	Tags          []string                 `json:"tags"`
	Participants  map[string]models.Role   `json:"participants" validate:"omitempty,dive,role"`
	Conversations map[string][]models.Role `json:"conversations" validate:"omitempty,dive,dive,role"`
	Reports       map[string][]models.Role `json:"reports" validate:"omitempty,dive,dive,role"`
}

type joinGroupRequest struct {
	Code string `json:"code" validate:"required"`
}

type createConversationRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Once        bool     `json:"once"`
	Tags        []string `json:"tags"`
}

type updateConversationRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Once        *bool    `json:"once"`
	Tags        []string `json:"tags"`
}

type optionPayload struct {
	Position       int     `json:"position" validate:"gte=0"`
	Type           string  `json:"type" validate:"required,oneof=select input"`
	Text           string  `json:"text" validate:"required"`
	AttributeID    string  `json:"attributeId"`
	Value          any     `json:"value"`
	NextQuestionID *string `json:"nextQuestionId"`
}

type createQuestionRequest struct {
	Text             string          `json:"text" validate:"required"`
	Options          []optionPayload `json:"options" validate:"required,min=1,dive"`
	First            bool            `json:"first"`
	Last             bool            `json:"last"`
	RandomizeOptions bool            `json:"randomizeOptions"`
	Tags             []string        `json:"tags"`
}

type updateQuestionRequest struct {
	Text             *string         `json:"text" validate:"omitempty,min=1"`
	Options          []optionPayload `json:"options" validate:"omitempty,min=1,dive"`
	First            *bool           `json:"first"`
	Last             *bool           `json:"last"`
	RandomizeOptions *bool           `json:"randomizeOptions"`
	Tags             []string        `json:"tags"`
}

type answerQuestionRequest struct {
	Position int `json:"position" validate:"gte=0"`

	// Input carries the user's free-text answer for input options.
	Input any `json:"input"`
}

type createAttributeRequest struct {
	ID    string `json:"id" validate:"required"`
	Value any    `json:"value" validate:"required"`

	// Message optionally blames the snapshot on a question.
	Message *blamedMessagePayload `json:"message"`
}

type updateAttributeRequest struct {
	Value   any                   `json:"value" validate:"required"`
	Message *blamedMessagePayload `json:"message"`
}

type blamedMessagePayload struct {
	In string `json:"in" validate:"required"`
	ID string `json:"id" validate:"required"`
}

type createReportRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Input       []string `json:"input"`
	Tags        []string `json:"tags"`
}

type updateReportRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Input       []string `json:"input"`
	Tags        []string `json:"tags"`
}
