// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

/*
Package database provides the embedded document store for the DoNew
mentoring platform.

Entities are stored as JSON documents in BadgerDB under typed key
prefixes:

	user:<id>
	group:<id>
	conversation:<id>
	question:<conversationID>:<id>
	attribute:<userID>:<id>
	report:<id>

Key Components:

  - Store: owns the Badger handle and exposes one typed store per
    entity (Users, Groups, Conversations, Questions, Attributes,
    Reports)
  - Filter: a small query algebra (==, !=, <, <=, >, >=, includes)
    evaluated against the JSON form of each document
  - collection: the generic CRUD contract shared by all typed stores

Error Semantics:

All failures are returned as models.ServerError values. Missing
documents map to entity-not-found (including deletes of absent ids),
duplicate creates map to entity-already-exists, and unexpected Badger
faults map to backend-error. Raw storage errors never leave this
package.

Questions and attributes are parent-scoped: every operation takes the
owning conversation or user id, and documents of one parent are
invisible to another parent's scope.
*/
package database
