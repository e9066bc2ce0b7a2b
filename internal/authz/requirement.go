// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package authz

// UserRole names an acceptable relationship between the caller and a
// target user.
type UserRole string

// User subject roles. Self matches when the caller is the target user;
// the group roles match when the caller holds that role in any group
// that also contains the target user.
const (
	UserSelf        UserRole = "self"
	UserMentor      UserRole = "mentor"
	UserSupermentor UserRole = "supermentor"
)

// GroupRole names an acceptable position of the caller within the
// target group.
type GroupRole string

// Group subject roles. Participant matches any entry in the group's
// participant map regardless of role; the named roles require the
// caller's entry to equal that role exactly.
const (
	GroupParticipant GroupRole = "participant"
	GroupMentor      GroupRole = "mentor"
	GroupSupermentor GroupRole = "supermentor"
)

// Requirement is what a route demands of the caller. Implementations
// are the only subject kinds the engine evaluates.
type Requirement interface {
	requirement()
}

// RootOnly admits super-admins and nobody else.
type RootOnly struct{}

func (RootOnly) requirement() {}

// UserSubject admits callers related to the target user through any of
// the listed roles.
type UserSubject struct {
	Roles []UserRole
}

func (UserSubject) requirement() {}

// GroupSubject admits callers holding any of the listed positions in
// the target group.
type GroupSubject struct {
	Roles []GroupRole
}

func (GroupSubject) requirement() {}

// ConversationSubject admits callers belonging to some group whose
// permission map exposes the target conversation to their role.
type ConversationSubject struct{}

func (ConversationSubject) requirement() {}

// ReportSubject admits callers sharing a group with the target user
// whose permission map exposes the target report to the caller's role.
type ReportSubject struct{}

func (ReportSubject) requirement() {}

// Target carries the resource ids a requirement is evaluated against.
// Routes fill in only the ids they know.
type Target struct {
	UserID         string
	GroupID        string
	ConversationID string
	ReportID       string
}
