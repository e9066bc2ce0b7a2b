// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package database

import (
	"context"

	"github.com/go-donew/mentoring-api/internal/models"
)

// ConversationStore persists conversations.
type ConversationStore struct {
	conversations *collection[models.Conversation]
}

// Find returns all conversations matching the filters.
func (s *ConversationStore) Find(ctx context.Context, filters []Filter) ([]*models.Conversation, error) {
	return s.conversations.Find(ctx, filters)
}

// Get fetches a conversation by id.
func (s *ConversationStore) Get(ctx context.Context, id string) (*models.Conversation, error) {
	return s.conversations.Get(ctx, id)
}

// Create stores a new conversation.
func (s *ConversationStore) Create(ctx context.Context, conversation *models.Conversation) error {
	return s.conversations.Create(ctx, conversation.ID, conversation)
}

// Update applies mutate to the stored conversation inside one
// transaction.
func (s *ConversationStore) Update(ctx context.Context, id string, mutate func(*models.Conversation) error) (*models.Conversation, error) {
	return s.conversations.Update(ctx, id, mutate)
}

// Delete removes a conversation by id.
func (s *ConversationStore) Delete(ctx context.Context, id string) error {
	return s.conversations.Delete(ctx, id)
}
