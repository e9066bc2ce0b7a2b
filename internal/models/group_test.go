// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package models

import "testing"

func TestReindexRebuildsAllIndexes(t *testing.T) {
	group := &Group{
		ID: "group-1",
		Participants: map[string]Role{
			"alice": RoleMentee,
			"bob":   RoleMentor,
		},
		Conversations: map[string][]Role{
			"conv-1": {RoleMentee},
		},
		Reports: map[string][]Role{
			"report-1": {RoleMentor},
		},
		// Stale entries that must disappear on reindex.
		ParticipantIndex: map[string]bool{"gone": true},
	}

	group.Reindex()

	if !group.ParticipantIndex["alice"] || !group.ParticipantIndex["bob"] {
		t.Errorf("participant index = %v", group.ParticipantIndex)
	}
	if group.ParticipantIndex["gone"] {
		t.Error("stale participant survived reindex")
	}
	if !group.ConversationIndex["conv-1"] {
		t.Errorf("conversation index = %v", group.ConversationIndex)
	}
	if !group.ReportIndex["report-1"] {
		t.Errorf("report index = %v", group.ReportIndex)
	}
}

func TestConversationAllowsMatchesRolesExactly(t *testing.T) {
	group := &Group{
		Conversations: map[string][]Role{
			"conv-1": {RoleMentee, RoleSupermentor},
		},
	}

	if !group.ConversationAllows("conv-1", RoleMentee) {
		t.Error("mentee should be allowed")
	}
	if group.ConversationAllows("conv-1", RoleMentor) {
		t.Error("mentor is not in the exposure list")
	}
	if group.ConversationAllows("conv-2", RoleMentee) {
		t.Error("unknown conversation should not be allowed")
	}
}

func TestOptionAtMatchesByPositionNotIndex(t *testing.T) {
	question := &Question{
		Options: []Option{
			{Position: 3, Text: "Third"},
			{Position: 0, Text: "First"},
		},
	}

	option, ok := question.OptionAt(3)
	if !ok || option.Text != "Third" {
		t.Errorf("OptionAt(3) = %+v, %v", option, ok)
	}
	if _, ok := question.OptionAt(1); ok {
		t.Error("OptionAt(1) matched a hole in the positions")
	}
}

func TestObserveTracksLatestValue(t *testing.T) {
	attribute := &Attribute{ID: "score"}

	attribute.Observe(Snapshot{Value: 10, ObserverID: "alice"})
	attribute.Observe(Snapshot{Value: 20, ObserverID: BotObserverID})

	if attribute.Value != 20 {
		t.Errorf("value = %v, want 20", attribute.Value)
	}
	if len(attribute.History) != 2 {
		t.Fatalf("history length = %d, want 2", len(attribute.History))
	}
	if attribute.History[0].Value != 10 {
		t.Errorf("first snapshot = %v, want 10", attribute.History[0].Value)
	}
}

func TestIsValidRole(t *testing.T) {
	for _, role := range ValidRoles {
		if !IsValidRole(role) {
			t.Errorf("%q should be valid", role)
		}
	}
	if IsValidRole("admin") {
		t.Error("admin is not a role")
	}
	if IsValidRole("") {
		t.Error("empty role should be invalid")
	}
}
