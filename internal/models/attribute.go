// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package models

import "time"

// BotObserverID is the synthetic observer recorded when an attribute
// changes through an automated path, for example a question answer.
const BotObserverID = "bot"

// BlamedMessage references the question or message that triggered an
// attribute change.
type BlamedMessage struct {
	// In is the conversation containing the blamed question.
	In string `json:"in"`

	// ID is the blamed question id.
	ID string `json:"id"`
}

// Snapshot is one entry in an attribute's history.
type Snapshot struct {
	// Value is the attribute value at the time of observation. It is a
	// string, number or boolean.
	Value any `json:"value"`

	// ObserverID is the user who recorded the value, or BotObserverID
	// for automated changes.
	ObserverID string `json:"observer"`

	// Timestamp is when the value was recorded.
	Timestamp time.Time `json:"timestamp"`

	// Message optionally blames the question that caused the change.
	Message *BlamedMessage `json:"message,omitempty"`
}

// Attribute is a per-user data point with append-only history.
//
// Invariant: History only grows. Entries are never truncated or
// reordered, and Value always equals the value of the most recent
// history entry.
type Attribute struct {
	// ID is the unique identifier for the attribute (UUID).
	ID string `json:"id"`

	// Value is the current value, equal to the latest snapshot's value.
	Value any `json:"value"`

	// History records every observed value in append order.
	History []Snapshot `json:"history"`

	// UserID is the user who owns this attribute.
	UserID string `json:"_userId"`
}

// Observe appends a snapshot to the history and updates the current
// value to match it.
func (a *Attribute) Observe(snapshot Snapshot) {
	a.History = append(a.History, snapshot)
	a.Value = snapshot.Value
}
