// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
)

// Key prefixes for BadgerDB storage.
const (
	credentialKeyPrefix = "credential:"
	claimsKeyPrefix     = "claims:"
)

var (
	// ErrCredentialNotFound reports a missing credential record.
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrCredentialExists reports a sign-up for an already registered
	// email.
	ErrCredentialExists = errors.New("credential already exists")
)

// Credential is the stored sign-in record for one account, keyed by
// normalized email address.
type Credential struct {
	UserID       string `json:"userId"`
	Email        string `json:"email"`
	PasswordHash []byte `json:"passwordHash"`
}

// UserClaims are the token-independent claims attached to a user.
type UserClaims struct {
	// Root marks the user as a super-admin.
	Root bool `json:"root"`
}

// CredentialStore persists credentials and claims in BadgerDB.
type CredentialStore struct {
	db *badger.DB
}

// NewCredentialStore wraps a Badger handle.
func NewCredentialStore(db *badger.DB) *CredentialStore {
	return &CredentialStore{db: db}
}

// NormalizeEmail lowercases and trims an email address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create stores a credential and the user's claims in one transaction.
// Returns ErrCredentialExists if the email is already registered.
func (s *CredentialStore) Create(ctx context.Context, cred *Credential, claims *UserClaims) error {
	credData, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("marshal credential: %w", err)
	}
	claimsData, err := json.Marshal(claims)
	if err != nil {
		return fmt.Errorf("marshal claims: %w", err)
	}

	credKey := []byte(credentialKeyPrefix + NormalizeEmail(cred.Email))
	claimsKey := []byte(claimsKeyPrefix + cred.UserID)

	return s.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(credKey)
		if err == nil {
			return ErrCredentialExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}

		if err := txn.Set(credKey, credData); err != nil {
			return fmt.Errorf("set credential: %w", err)
		}
		if err := txn.Set(claimsKey, claimsData); err != nil {
			return fmt.Errorf("set claims: %w", err)
		}
		return nil
	})
}

// GetByEmail fetches the credential for an email address.
func (s *CredentialStore) GetByEmail(ctx context.Context, email string) (*Credential, error) {
	var cred Credential

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(credentialKeyPrefix + NormalizeEmail(email)))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrCredentialNotFound
		}
		if err != nil {
			return fmt.Errorf("get credential: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &cred)
		})
	})
	if err != nil {
		return nil, err
	}

	return &cred, nil
}

// GetClaims fetches the claims for a user id. Users with no stored
// claims record get the zero value, not an error.
func (s *CredentialStore) GetClaims(ctx context.Context, userID string) (*UserClaims, error) {
	claims := &UserClaims{}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(claimsKeyPrefix + userID))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get claims: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, claims)
		})
	})
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// Delete removes the credential and claims for an account.
func (s *CredentialStore) Delete(ctx context.Context, email, userID string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Delete([]byte(credentialKeyPrefix + NormalizeEmail(email))); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete credential: %w", err)
		}
		if err := txn.Delete([]byte(claimsKeyPrefix + userID)); err != nil && !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("delete claims: %w", err)
		}
		return nil
	})
}
