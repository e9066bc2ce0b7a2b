// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package database

import (
	"context"

	"github.com/go-donew/mentoring-api/internal/models"
)

// GroupStore persists groups and maintains their denormalized index
// maps. Every write path reindexes the group so membership filters
// stay answerable by equality, with no separate maintenance step to
// forget.
type GroupStore struct {
	groups *collection[models.Group]
}

// Find returns all groups matching the filters.
func (s *GroupStore) Find(ctx context.Context, filters []Filter) ([]*models.Group, error) {
	return s.groups.Find(ctx, filters)
}

// FindByParticipant returns all groups the given user participates in.
func (s *GroupStore) FindByParticipant(ctx context.Context, userID string) ([]*models.Group, error) {
	return s.groups.Find(ctx, []Filter{Equals("__participants."+userID, true)})
}

// FindByCode returns the group with the given join code, or
// entity-not-found if no group carries it.
func (s *GroupStore) FindByCode(ctx context.Context, code string) (*models.Group, error) {
	groups, err := s.groups.Find(ctx, []Filter{Equals("code", code)})
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, models.NewServerError(models.ErrEntityNotFound)
	}
	return groups[0], nil
}

// Get fetches a group by id.
func (s *GroupStore) Get(ctx context.Context, id string) (*models.Group, error) {
	return s.groups.Get(ctx, id)
}

// Create stores a new group.
func (s *GroupStore) Create(ctx context.Context, group *models.Group) error {
	group.Reindex()
	return s.groups.Create(ctx, group.ID, group)
}

// Update applies mutate to the stored group inside one transaction and
// rebuilds the index maps before persisting.
func (s *GroupStore) Update(ctx context.Context, id string, mutate func(*models.Group) error) (*models.Group, error) {
	return s.groups.Update(ctx, id, func(group *models.Group) error {
		if err := mutate(group); err != nil {
			return err
		}
		group.Reindex()
		return nil
	})
}

// Delete removes a group by id.
func (s *GroupStore) Delete(ctx context.Context, id string) error {
	return s.groups.Delete(ctx, id)
}
