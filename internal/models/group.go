// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package models

// Group represents a named collection of users with per-user roles.
//
// A group carries three permission maps. Participants assigns each
// member exactly one role. Conversations and Reports list, per
// conversation or report id, which roles in this group may access it.
//
// The index maps mirror the keys of the permission maps as boolean
// sets. They are maintained by Reindex on every write so that list
// queries can filter on membership with a plain equality test
// (for example `__participants.<userID> == true`) instead of scanning
// map values.
type Group struct {
	// ID is the unique identifier for the group (UUID).
	ID string `json:"id"`

	// Name is the group's display name.
	Name string `json:"name"`

	// Code is the join code used for self-service enrollment.
	Code string `json:"code"`

	// Tags are free-form labels attached to the group.
	Tags []string `json:"tags,omitempty"`

	// Participants maps a user id to the single role that user holds
	// in this group.
	Participants map[string]Role `json:"participants"`

	// Conversations maps a conversation id to the roles allowed to
	// take that conversation.
	Conversations map[string][]Role `json:"conversations"`

	// Reports maps a report id to the roles allowed to view that
	// report for other members.
	Reports map[string][]Role `json:"reports"`

	// ParticipantIndex marks each participant user id as present.
	ParticipantIndex map[string]bool `json:"__participants"`

	// ConversationIndex marks each permitted conversation id as present.
	ConversationIndex map[string]bool `json:"__conversations"`

	// ReportIndex marks each permitted report id as present.
	ReportIndex map[string]bool `json:"__reports"`
}

// Reindex rebuilds the boolean index maps from the permission maps.
// Callers must invoke it before persisting a group.
func (g *Group) Reindex() {
	g.ParticipantIndex = make(map[string]bool, len(g.Participants))
	for userID := range g.Participants {
		g.ParticipantIndex[userID] = true
	}

	g.ConversationIndex = make(map[string]bool, len(g.Conversations))
	for conversationID := range g.Conversations {
		g.ConversationIndex[conversationID] = true
	}

	g.ReportIndex = make(map[string]bool, len(g.Reports))
	for reportID := range g.Reports {
		g.ReportIndex[reportID] = true
	}
}

// RoleOf returns the role the given user holds in this group, and
// whether the user participates at all.
func (g *Group) RoleOf(userID string) (Role, bool) {
	role, ok := g.Participants[userID]
	return role, ok
}

// ConversationAllows reports whether the given role may take the given
// conversation through this group.
func (g *Group) ConversationAllows(conversationID string, role Role) bool {
	for _, allowed := range g.Conversations[conversationID] {
		if allowed == role {
			return true
		}
	}
	return false
}

// ReportAllows reports whether the given role may view the given
// report through this group.
func (g *Group) ReportAllows(reportID string, role Role) bool {
	for _, allowed := range g.Reports[reportID] {
		if allowed == role {
			return true
		}
	}
	return false
}
