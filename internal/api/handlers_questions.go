// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/go-donew/mentoring-api/internal/models"
)

// ListQuestions returns the questions of a conversation.
func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	conversationID := chi.URLParam(r, "conversationID")

	questions, err := h.store.Questions.Find(r.Context(), conversationID, nil)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string][]*models.Question{"questions": questions})
}

// CreateQuestion adds a question to a conversation. Super-admin only.
func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	question := &models.Question{
		ID:               uuid.NewString(),
		Text:             req.Text,
		Options:          optionsFromPayload(req.Options),
		First:            req.First,
		Last:             req.Last,
		RandomizeOptions: req.RandomizeOptions,
		Tags:             req.Tags,
	}

	if err := h.store.Questions.Create(r.Context(), chi.URLParam(r, "conversationID"), question); err != nil {
		writeError(w, r, err)
		return
	}

	writeCreated(w, r, map[string]*models.Question{"question": question})
}

// GetQuestion returns one question of a conversation.
func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.store.Questions.Get(r.Context(), chi.URLParam(r, "conversationID"), chi.URLParam(r, "questionID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string]*models.Question{"question": question})
}

// UpdateQuestion merges a partial question over the stored one.
func (h *Handler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	var req updateQuestionRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	question, err := h.store.Questions.Update(r.Context(), chi.URLParam(r, "conversationID"), chi.URLParam(r, "questionID"), func(question *models.Question) error {
		if req.Text != nil {
			question.Text = *req.Text
		}
		if req.Options != nil {
			question.Options = optionsFromPayload(req.Options)
		}
		if req.First != nil {
			question.First = *req.First
		}
		if req.Last != nil {
			question.Last = *req.Last
		}
		if req.RandomizeOptions != nil {
			question.RandomizeOptions = *req.RandomizeOptions
		}
		if req.Tags != nil {
			question.Tags = req.Tags
		}
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string]*models.Question{"question": question})
}

// DeleteQuestion removes a question from a conversation. Super-admin
// only.
func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Questions.Delete(r.Context(), chi.URLParam(r, "conversationID"), chi.URLParam(r, "questionID")); err != nil {
		writeError(w, r, err)
		return
	}

	writeNoContent(w)
}

// answerResponse is the body returned after answering a question.
// NextQuestion is null when the chosen option ends the traversal.
type answerResponse struct {
	Attribute    *models.Attribute `json:"attribute,omitempty"`
	NextQuestion *models.Question  `json:"nextQuestion"`
}

// AnswerQuestion records the caller's answer to a question. The
// chosen option's attribute instruction is applied to the caller as a
// new history snapshot blamed on this question, and the option's
// next-question edge is followed. Edges are id-based and may point
// back at earlier questions, so no cycle detection happens here.
func (h *Handler) AnswerQuestion(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req answerQuestionRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	conversationID := chi.URLParam(r, "conversationID")
	questionID := chi.URLParam(r, "questionID")

	question, err := h.store.Questions.Get(r.Context(), conversationID, questionID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	option, ok := question.OptionAt(req.Position)
	if !ok {
		writeError(w, r, models.NewServerError(models.ErrImproperPayload).
			WithMessage("The question has no option at that position."))
		return
	}

	value := option.Value
	if option.Type == models.OptionTypeInput {
		if req.Input == nil {
			writeError(w, r, models.NewServerError(models.ErrImproperPayload).
				WithMessage("The chosen option requires an input value."))
			return
		}
		value = req.Input
	}

	response := answerResponse{}

	if option.AttributeID != "" {
		snapshot := models.Snapshot{
			Value:      value,
			ObserverID: models.BotObserverID,
			Timestamp:  time.Now(),
			Message: &models.BlamedMessage{
				In: conversationID,
				ID: questionID,
			},
		}

		attribute, err := h.observeAttribute(r, p.User.ID, option.AttributeID, snapshot)
		if err != nil {
			writeError(w, r, err)
			return
		}
		response.Attribute = attribute
	}

	if option.NextQuestionID != nil {
		next, err := h.store.Questions.Get(r.Context(), conversationID, *option.NextQuestionID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		response.NextQuestion = next
	}

	writeData(w, r, response)
}

// observeAttribute appends a snapshot to the user's attribute,
// creating the attribute when this is its first observation.
func (h *Handler) observeAttribute(r *http.Request, userID, attributeID string, snapshot models.Snapshot) (*models.Attribute, error) {
	attribute, err := h.store.Attributes.Observe(r.Context(), userID, attributeID, snapshot)
	if err == nil {
		return attribute, nil
	}
	if !errors.Is(err, models.NewServerError(models.ErrEntityNotFound)) {
		return nil, err
	}

	attribute = &models.Attribute{ID: attributeID}
	attribute.Observe(snapshot)
	if err := h.store.Attributes.Create(r.Context(), userID, attribute); err != nil {
		return nil, err
	}
	return attribute, nil
}

func optionsFromPayload(payloads []optionPayload) []models.Option {
	options := make([]models.Option, len(payloads))
	for i, payload := range payloads {
		options[i] = models.Option{
			Position:       payload.Position,
			Type:           payload.Type,
			Text:           payload.Text,
			AttributeID:    payload.AttributeID,
			Value:          payload.Value,
			NextQuestionID: payload.NextQuestionID,
		}
	}
	return options
}
