// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package database

import (
	"context"

	"github.com/dgraph-io/badger/v4"

	"github.com/go-donew/mentoring-api/internal/models"
)

// QuestionStore persists questions scoped to their parent
// conversation. Every operation takes the owning conversation id, and
// questions of one conversation are invisible to another's scope.
type QuestionStore struct {
	db *badger.DB
}

func (s *QuestionStore) scope(conversationID string) *collection[models.Question] {
	return newCollection[models.Question](s.db, questionKeyPrefix+conversationID+":")
}

// Find returns all questions of a conversation matching the filters.
func (s *QuestionStore) Find(ctx context.Context, conversationID string, filters []Filter) ([]*models.Question, error) {
	return s.scope(conversationID).Find(ctx, filters)
}

// Get fetches a question by id within a conversation.
func (s *QuestionStore) Get(ctx context.Context, conversationID, id string) (*models.Question, error) {
	return s.scope(conversationID).Get(ctx, id)
}

// Create stores a new question under a conversation.
func (s *QuestionStore) Create(ctx context.Context, conversationID string, question *models.Question) error {
	return s.scope(conversationID).Create(ctx, question.ID, question)
}

// Update applies mutate to the stored question inside one transaction.
func (s *QuestionStore) Update(ctx context.Context, conversationID, id string, mutate func(*models.Question) error) (*models.Question, error) {
	return s.scope(conversationID).Update(ctx, id, mutate)
}

// Delete removes a question by id within a conversation.
func (s *QuestionStore) Delete(ctx context.Context, conversationID, id string) error {
	return s.scope(conversationID).Delete(ctx, id)
}
