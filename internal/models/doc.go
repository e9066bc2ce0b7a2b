// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

/*
Package models defines data structures for the DoNew mentoring platform.

This package contains all data models used throughout the application,
including persisted entities, role enumerations, and the standard error
type returned by every API operation. It serves as the single source of
truth for data structure definitions.

Key Components:

  - User: A person registered on the platform
  - Group: A named collection of users with per-user roles
  - Conversation: A question flow a user can take
  - Question: A single node in a conversation's question graph
  - Attribute: A per-user data point with append-only history
  - Report: A generated view over a user's attributes
  - ServerError: The error envelope returned by the API

Role Model:

Groups assign each participant exactly one role (mentee, mentor or
supermentor). Roles are not hierarchical: a supermentor is not
automatically granted what a mentor is granted. Conversations and
reports are exposed to a group's participants through per-group role
lists on the group itself.

Usage Example:

	import "github.com/go-donew/mentoring-api/internal/models"

	group := &models.Group{
	    ID:   uuid.NewString(),
	    Name: "quiz-masters",
	    Code: "quiz",
	    Participants: map[string]models.Role{
	        "user-1": models.RoleMentee,
	        "user-2": models.RoleSupermentor,
	    },
	}
	group.Reindex()
*/
package models
