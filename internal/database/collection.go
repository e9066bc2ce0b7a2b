// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package database

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/go-donew/mentoring-api/internal/models"
)

// Key prefixes for BadgerDB storage.
const (
	userKeyPrefix         = "user:"
	groupKeyPrefix        = "group:"
	conversationKeyPrefix = "conversation:"
	questionKeyPrefix     = "question:"
	attributeKeyPrefix    = "attribute:"
	reportKeyPrefix       = "report:"
)

// collection implements the generic CRUD contract shared by every
// typed store. Documents are stored as JSON under prefix+id.
type collection[T any] struct {
	db     *badger.DB
	prefix string
}

func newCollection[T any](db *badger.DB, prefix string) *collection[T] {
	return &collection[T]{db: db, prefix: prefix}
}

func (c *collection[T]) key(id string) []byte {
	return []byte(c.prefix + id)
}

// Get fetches a single document by id.
func (c *collection[T]) Get(ctx context.Context, id string) (*T, error) {
	var entity T

	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(c.key(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entity)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, models.NewServerError(models.ErrEntityNotFound)
	}
	if err != nil {
		return nil, storeError(err)
	}

	return &entity, nil
}

// Create stores a new document. It fails with entity-already-exists if
// the id is already taken.
func (c *collection[T]) Create(ctx context.Context, id string, entity *T) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return storeError(err)
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(c.key(id))
		if err == nil {
			return models.NewServerError(models.ErrEntityAlreadyExists)
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(c.key(id), data)
	})
	return storeError(err)
}

// Update applies mutate to the current document inside a single
// transaction and persists the result. It fails with entity-not-found
// if the id is absent.
func (c *collection[T]) Update(ctx context.Context, id string, mutate func(*T) error) (*T, error) {
	var entity T

	err := c.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(c.key(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return models.NewServerError(models.ErrEntityNotFound)
		}
		if err != nil {
			return err
		}

		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &entity)
		}); err != nil {
			return err
		}

		if err := mutate(&entity); err != nil {
			return err
		}

		data, err := json.Marshal(&entity)
		if err != nil {
			return err
		}
		return txn.Set(c.key(id), data)
	})
	if err != nil {
		return nil, storeError(err)
	}

	return &entity, nil
}

// Put stores a document unconditionally, creating or overwriting it.
func (c *collection[T]) Put(ctx context.Context, id string, entity *T) error {
	data, err := json.Marshal(entity)
	if err != nil {
		return storeError(err)
	}

	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(c.key(id), data)
	})
	return storeError(err)
}

// Delete removes a document by id. Deleting an absent id fails with
// entity-not-found, for every entity type alike.
func (c *collection[T]) Delete(ctx context.Context, id string) error {
	err := c.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(c.key(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return models.NewServerError(models.ErrEntityNotFound)
		}
		if err != nil {
			return err
		}
		return txn.Delete(c.key(id))
	})
	return storeError(err)
}

// Find returns every document in the collection satisfying all
// filters. An empty result is a non-nil empty slice, never an error.
func (c *collection[T]) Find(ctx context.Context, filters []Filter) ([]*T, error) {
	results := []*T{}

	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(c.prefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				if !matchesAll(val, filters) {
					return nil
				}
				var entity T
				if err := json.Unmarshal(val, &entity); err != nil {
					return err
				}
				results = append(results, &entity)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, storeError(err)
	}

	return results, nil
}

// storeError maps unexpected storage failures to backend-error while
// passing typed domain errors through untouched.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	var serverErr *models.ServerError
	if errors.As(err, &serverErr) {
		return serverErr
	}
	return models.NewServerError(models.ErrBackendError)
}
