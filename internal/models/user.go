// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package models

import "time"

// User represents a person registered on the platform.
//
// Authentication secrets (password hashes, token claims) are stored
// separately by the auth package and never appear on this struct, so a
// User can be returned from the API as-is.
type User struct {
	// ID is the unique identifier for the user (UUID).
	ID string `json:"id"`

	// Name is the user's display name.
	Name string `json:"name"`

	// Email is the user's sign-in address, unique across the platform.
	Email string `json:"email"`

	// Phone is an optional contact number.
	Phone string `json:"phone,omitempty"`

	// LastSignedIn is when the user last obtained a token pair.
	LastSignedIn time.Time `json:"lastSignedIn"`
}
