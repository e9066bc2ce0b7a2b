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

// AttributeStore persists attributes scoped to their owning user.
// Every operation takes the owner's user id.
type AttributeStore struct {
	db *badger.DB
}

func (s *AttributeStore) scope(userID string) *collection[models.Attribute] {
	return newCollection[models.Attribute](s.db, attributeKeyPrefix+userID+":")
}

// Find returns all attributes of a user matching the filters.
func (s *AttributeStore) Find(ctx context.Context, userID string, filters []Filter) ([]*models.Attribute, error) {
	return s.scope(userID).Find(ctx, filters)
}

// Get fetches an attribute by id for a user.
func (s *AttributeStore) Get(ctx context.Context, userID, id string) (*models.Attribute, error) {
	return s.scope(userID).Get(ctx, id)
}

// Create stores a new attribute for a user.
func (s *AttributeStore) Create(ctx context.Context, userID string, attribute *models.Attribute) error {
	attribute.UserID = userID
	return s.scope(userID).Create(ctx, attribute.ID, attribute)
}

// Observe appends a snapshot to the attribute's history inside one
// transaction. History is append-only: prior entries are never
// replaced, and the current value tracks the newest snapshot.
func (s *AttributeStore) Observe(ctx context.Context, userID, id string, snapshot models.Snapshot) (*models.Attribute, error) {
	return s.scope(userID).Update(ctx, id, func(attribute *models.Attribute) error {
		attribute.Observe(snapshot)
		return nil
	})
}

// Delete removes an attribute by id for a user.
func (s *AttributeStore) Delete(ctx context.Context, userID, id string) error {
	return s.scope(userID).Delete(ctx, id)
}
