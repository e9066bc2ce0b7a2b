// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/go-donew/mentoring-api/internal/models"
)

// ListReports returns all report definitions. Super-admin only.
func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.store.Reports.Find(r.Context(), queryFilters(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string][]*models.Report{"reports": reports})
}

// CreateReport creates a report definition. Super-admin only.
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	report := &models.Report{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Input:       req.Input,
		Tags:        req.Tags,
	}

	if err := h.store.Reports.Create(r.Context(), report); err != nil {
		writeError(w, r, err)
		return
	}

	writeCreated(w, r, map[string]*models.Report{"report": report})
}

// GetReport returns one report definition. Super-admin only.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.store.Reports.Get(r.Context(), chi.URLParam(r, "reportID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string]*models.Report{"report": report})
}

// UpdateReport merges a partial report over the stored one.
// Super-admin only.
func (h *Handler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	var req updateReportRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	report, err := h.store.Reports.Update(r.Context(), chi.URLParam(r, "reportID"), func(report *models.Report) error {
		if req.Name != nil {
			report.Name = *req.Name
		}
		if req.Description != nil {
			report.Description = *req.Description
		}
		if req.Input != nil {
			report.Input = req.Input
		}
		if req.Tags != nil {
			report.Tags = req.Tags
		}
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string]*models.Report{"report": report})
}

// DeleteReport removes a report definition. Super-admin only.
func (h *Handler) DeleteReport(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Reports.Delete(r.Context(), chi.URLParam(r, "reportID")); err != nil {
		writeError(w, r, err)
		return
	}

	writeNoContent(w)
}

// renderedReport is a report definition together with the subject
// user's current values for the report's input attributes. Attributes
// the user never recorded are simply absent.
type renderedReport struct {
	Report     *models.Report `json:"report"`
	Attributes map[string]any `json:"attributes"`
}

// RenderReport returns a report about one user: the definition plus
// the user's current input-attribute values. Access is gated by the
// report-subject authorization middleware.
func (h *Handler) RenderReport(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	report, err := h.store.Reports.Get(r.Context(), chi.URLParam(r, "reportID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	values := make(map[string]any, len(report.Input))
	for _, attributeID := range report.Input {
		attribute, err := h.store.Attributes.Get(r.Context(), userID, attributeID)
		if err != nil {
			if errors.Is(err, models.NewServerError(models.ErrEntityNotFound)) {
				continue
			}
			writeError(w, r, err)
			return
		}
		values[attribute.ID] = attribute.Value
	}

	writeData(w, r, renderedReport{Report: report, Attributes: values})
}
