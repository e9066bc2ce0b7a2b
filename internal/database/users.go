// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package database

import (
	"context"

	"github.com/go-donew/mentoring-api/internal/models"
)

// UserStore persists the platform's mirror of identity-provider users.
type UserStore struct {
	users *collection[models.User]
}

// Find returns all users matching the filters.
func (s *UserStore) Find(ctx context.Context, filters []Filter) ([]*models.User, error) {
	return s.users.Find(ctx, filters)
}

// Get fetches a user by id.
func (s *UserStore) Get(ctx context.Context, id string) (*models.User, error) {
	return s.users.Get(ctx, id)
}

// Create stores a new user.
func (s *UserStore) Create(ctx context.Context, user *models.User) error {
	return s.users.Create(ctx, user.ID, user)
}

// Update applies mutate to the stored user inside one transaction.
// The sign-in path uses this to bump LastSignedIn without losing
// concurrent profile writes.
func (s *UserStore) Update(ctx context.Context, id string, mutate func(*models.User) error) (*models.User, error) {
	return s.users.Update(ctx, id, mutate)
}

// Delete removes a user by id.
func (s *UserStore) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}
