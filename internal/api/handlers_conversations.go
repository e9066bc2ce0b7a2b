// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/go-donew/mentoring-api/internal/models"
)

// ListConversations returns conversations matching the query filters.
// Non-root callers only see conversations some group of theirs exposes
// to the role they hold there.
func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	p, err := principal(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	conversations, err := h.store.Conversations.Find(r.Context(), queryFilters(r, "name"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !p.IsRoot {
		visible, err := h.visibleConversations(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		filtered := make([]*models.Conversation, 0, len(conversations))
		for _, conversation := range conversations {
			if visible[conversation.ID] {
				filtered = append(filtered, conversation)
			}
		}
		conversations = filtered
	}

	writeData(w, r, map[string][]*models.Conversation{"conversations": conversations})
}

// visibleConversations collects the conversation ids the caller's
// groups expose to the caller's role in each group.
func (h *Handler) visibleConversations(r *http.Request) (map[string]bool, error) {
	p, err := principal(r)
	if err != nil {
		return nil, err
	}

	groups, err := h.store.Groups.FindByParticipant(r.Context(), p.User.ID)
	if err != nil {
		return nil, err
	}

	visible := make(map[string]bool)
	for _, group := range groups {
		held, _ := group.RoleOf(p.User.ID)
		for conversationID := range group.Conversations {
			if group.ConversationAllows(conversationID, held) {
				visible[conversationID] = true
			}
		}
	}
	return visible, nil
}

// CreateConversation creates a conversation. Super-admin only.
func (h *Handler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	var req createConversationRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	conversation := &models.Conversation{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Once:        req.Once,
		Tags:        req.Tags,
	}

	if err := h.store.Conversations.Create(r.Context(), conversation); err != nil {
		writeError(w, r, err)
		return
	}

	writeCreated(w, r, map[string]*models.Conversation{"conversation": conversation})
}

// GetConversation returns one conversation by id.
func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	conversation, err := h.store.Conversations.Get(r.Context(), chi.URLParam(r, "conversationID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string]*models.Conversation{"conversation": conversation})
}

// UpdateConversation merges a partial conversation over the stored one.
func (h *Handler) UpdateConversation(w http.ResponseWriter, r *http.Request) {
	var req updateConversationRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	conversation, err := h.store.Conversations.Update(r.Context(), chi.URLParam(r, "conversationID"), func(conversation *models.Conversation) error {
		if req.Name != nil {
			conversation.Name = *req.Name
		}
		if req.Description != nil {
			conversation.Description = *req.Description
		}
		if req.Once != nil {
			conversation.Once = *req.Once
		}
		if req.Tags != nil {
			conversation.Tags = req.Tags
		}
		return nil
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, r, map[string]*models.Conversation{"conversation": conversation})
}

// DeleteConversation removes a conversation. Super-admin only.
func (h *Handler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Conversations.Delete(r.Context(), chi.URLParam(r, "conversationID")); err != nil {
		writeError(w, r, err)
		return
	}

	writeNoContent(w)
}
