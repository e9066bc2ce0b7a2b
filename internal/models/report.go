// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package models

// Report describes a generated view over a user's attributes.
//
// Reports themselves are managed by super-admins. Which participants
// of a group may view a report for other members is recorded on the
// group's report permission map.
type Report struct {
	// ID is the unique identifier for the report (UUID).
	ID string `json:"id"`

	// Name is the report's display name.
	Name string `json:"name"`

	// Description explains what the report shows.
	Description string `json:"description"`

	// Input lists the attribute ids the report reads.
	Input []string `json:"input"`

	// Tags are searchable labels attached to the report.
	Tags []string `json:"tags,omitempty"`
}
