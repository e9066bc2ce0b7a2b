// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

// Package models provides data structures for the DoNew mentoring platform.
// This file defines the group role enumeration.
package models

// Role is the part a user plays within a group.
type Role string

// Role constants define the standard roles in a group.
const (
	// RoleMentee is a learner in the group.
	RoleMentee Role = "mentee"

	// RoleMentor guides mentees in the group.
	RoleMentor Role = "mentor"

	// RoleSupermentor manages the group and its mentors.
	RoleSupermentor Role = "supermentor"
)

// ValidRoles contains all valid role names for validation.
var ValidRoles = []Role{RoleMentee, RoleMentor, RoleSupermentor}

// IsValidRole checks if a role name is valid.
//
// Roles are flat, not hierarchical: holding supermentor does not imply
// holding mentor. Authorization checks compare roles by equality.
func IsValidRole(role Role) bool {
	for _, r := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}
