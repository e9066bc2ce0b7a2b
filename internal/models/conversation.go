// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package models

// Conversation represents a scripted question flow a user can take.
//
// A conversation owns a collection of questions scoped strictly to it.
// Questions form a directed graph through option transitions, so the
// graph may contain cycles; traversal starts at a question flagged
// First and ends at one flagged Last.
type Conversation struct {
	// ID is the unique identifier for the conversation (UUID).
	ID string `json:"id"`

	// Name is the conversation's display name.
	Name string `json:"name"`

	// Description explains what the conversation is about.
	Description string `json:"description"`

	// Once indicates whether a user may complete the conversation only
	// one time.
	Once bool `json:"once"`

	// Tags are searchable labels attached to the conversation.
	Tags []string `json:"tags,omitempty"`
}
