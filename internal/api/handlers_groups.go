// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/go-donew/mentoring-api/internal/database"
	"github.com/go-donew/mentoring-api/internal/models"
)

// ListGroups returns groups matching the query filters. Non-root
// callers only ever see groups they participate in: a membership
// filter on the caller is injected before the query runs.
func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	filters := queryFilters(r, "name", "code")
	if !p.IsRoot {
		filters = append(filters, database.Equals("__participants."+p.User.ID, true))
	}

	groups, err := h.store.Groups.Find(r.Context(), filters)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string][]*models.Group{"groups": groups})
}

// CreateGroup creates a group. Super-admin only.
func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req createGroupRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	group := &models.Group{
		ID:            uuid.NewString(),
		Name:          req.Name,
		Code:          req.Code,
		Tags:          req.Tags,
		Participants:  req.Participants,
		Conversations: req.Conversations,
		Reports:       req.Reports,
	}
	if group.Participants == nil {
		group.Participants = map[string]models.Role{}
	}

	if err := h.store.Groups.Create(r.Context(), group); err != nil {
		writeError(w, r, err)
		return
	}

	writeCreated(w, r, map[string]*models.Group{"group": group})
}

// GetGroup returns one group by id.
func (h *Handler) GetGroup(w http.ResponseWriter, r *http.Request) {
	group, err := h.store.Groups.Get(r.Context(), chi.URLParam(r, "groupID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string]*models.Group{"group": group})
}

// UpdateGroup merges a partial group over the stored one. Absent
// fields keep their value; present maps replace the stored maps
// wholesale.
func (h *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	var req updateGroupRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	group, err := h.store.Groups.Update(r.Context(), chi.URLParam(r, "groupID"), func(group *models.Group) error {
		if req.Name != nil {
			group.Name = *req.Name
		}
		if req.Code != nil {
			group.Code = *req.Code
		}
		if req.Tags != nil {
			group.Tags = req.Tags
		}
		if req.Participants != nil {
			group.Participants = req.Participants
		}
		if req.Conversations != nil {
			group.Conversations = req.Conversations
		}
		if req.Reports != nil {
			group.Reports = req.Reports
		}
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string]*models.Group{"group": group})
}

// DeleteGroup removes a group. Super-admin only.
func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Groups.Delete(r.Context(), chi.URLParam(r, "groupID")); err != nil {
		writeError(w, r, err)
		return
	}

	writeNoContent(w)
}

// JoinGroup enrolls the caller in the group carrying the submitted
// join code. The caller always ends up as a mentee, overwriting any
// role they previously held in that group.
func (h *Handler) JoinGroup(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req joinGroupRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	found, err := h.store.Groups.FindByCode(r.Context(), req.Code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	group, err := h.store.Groups.Update(r.Context(), found.ID, func(group *models.Group) error {
		if group.Participants == nil {
			group.Participants = map[string]models.Role{}
		}
		group.Participants[p.User.ID] = models.RoleMentee
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string]*models.Group{"group": group})
}
