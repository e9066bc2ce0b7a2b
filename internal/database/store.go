// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package database

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/go-donew/mentoring-api/internal/models"
)

// Config controls how the document store is opened.
type Config struct {
	// Path is the on-disk directory for BadgerDB. Ignored when
	// InMemory is set.
	Path string `koanf:"path"`

	// InMemory opens a non-persistent database. Used by tests.
	InMemory bool `koanf:"in_memory"`
}

// Store owns the Badger handle and exposes one typed store per entity.
type Store struct {
	db *badger.DB

	Users         *UserStore
	Groups        *GroupStore
	Conversations *ConversationStore
	Questions     *QuestionStore
	Attributes    *AttributeStore
	Reports       *ReportStore
}

// Open opens the document store described by cfg.
func Open(cfg Config) (*Store, error) {
	opts := badger.DefaultOptions(cfg.Path)
	opts.Logger = nil // Suppress BadgerDB logs
	if cfg.InMemory {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	return NewStore(db), nil
}

// NewStore wraps an already opened Badger handle.
func NewStore(db *badger.DB) *Store {
	return &Store{
		db:            db,
		Users:         &UserStore{users: newCollection[models.User](db, userKeyPrefix)},
		Groups:        &GroupStore{groups: newCollection[models.Group](db, groupKeyPrefix)},
		Conversations: &ConversationStore{conversations: newCollection[models.Conversation](db, conversationKeyPrefix)},
		Questions:     &QuestionStore{db: db},
		Attributes:    &AttributeStore{db: db},
		Reports:       &ReportStore{reports: newCollection[models.Report](db, reportKeyPrefix)},
	}
}

// DB returns the underlying Badger handle.
func (s *Store) DB() *badger.DB {
	return s.db
}

// RunGC runs BadgerDB value log garbage collection to reclaim space
// from deleted entries. Called periodically by the GC service.
func (s *Store) RunGC() error {
	return s.db.RunValueLogGC(0.5)
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
