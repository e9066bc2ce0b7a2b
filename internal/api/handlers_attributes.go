// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/go-donew/mentoring-api/internal/models"
)

// ListAttributes returns the attributes of a user.
func (h *Handler) ListAttributes(w http.ResponseWriter, r *http.Request) {
	attributes, err := h.store.Attributes.Find(r.Context(), chi.URLParam(r, "userID"), nil)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string][]*models.Attribute{"attributes": attributes})
}

// CreateAttribute records the first observation of an attribute on a
// user. The snapshot blames the caller as observer.
func (h *Handler) CreateAttribute(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req createAttributeRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	attribute := &models.Attribute{ID: req.ID}
	attribute.Observe(models.Snapshot{
		Value:      req.Value,
		ObserverID: p.User.ID,
		Timestamp:  time.Now(),
		Message:    blamedMessage(req.Message),
	})

	if err := h.store.Attributes.Create(r.Context(), chi.URLParam(r, "userID"), attribute); err != nil {
		writeError(w, r, err)
		return
	}

	writeCreated(w, r, map[string]*models.Attribute{"attribute": attribute})
}

// GetAttribute returns one attribute of a user, history included.
func (h *Handler) GetAttribute(w http.ResponseWriter, r *http.Request) {
	attribute, err := h.store.Attributes.Get(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "attributeID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string]*models.Attribute{"attribute": attribute})
}

// UpdateAttribute appends a new snapshot to the attribute's history.
// Prior snapshots are never touched.
func (h *Handler) UpdateAttribute(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req updateAttributeRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	snapshot := models.Snapshot{
		Value:      req.Value,
		ObserverID: p.User.ID,
		Timestamp:  time.Now(),
		Message:    blamedMessage(req.Message),
	}

	attribute, err := h.store.Attributes.Observe(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "attributeID"), snapshot)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string]*models.Attribute{"attribute": attribute})
}

// DeleteAttribute removes an attribute from a user.
func (h *Handler) DeleteAttribute(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Attributes.Delete(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "attributeID")); err != nil {
		writeError(w, r, err)
		return
	}

	writeNoContent(w)
}

func blamedMessage(payload *blamedMessagePayload) *models.BlamedMessage {
	if payload == nil {
		return nil
	}
	return &models.BlamedMessage{In: payload.In, ID: payload.ID}
}
