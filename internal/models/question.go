// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package models

// Option types distinguish how a user answers a question.
const (
	// OptionTypeSelect is a fixed choice picked from a list.
	OptionTypeSelect = "select"

	// OptionTypeInput is a free-text answer supplied by the user.
	OptionTypeInput = "input"
)

// Option is one possible answer to a question.
//
// Answering with an option applies its attribute-mutation instruction
// to the answering user and moves the conversation to NextQuestionID.
// A nil NextQuestionID ends the traversal at this branch.
type Option struct {
	// Position orders the option within the question's option list.
	Position int `json:"position"`

	// Type is either "select" or "input".
	Type string `json:"type"`

	// Text is the option's display text.
	Text string `json:"text"`

	// AttributeID names the attribute set on the answering user.
	AttributeID string `json:"attributeId"`

	// Value is the value written to the attribute. It is a string,
	// number or boolean.
	Value any `json:"value"`

	// NextQuestionID points at the question shown after this option is
	// chosen. Edges are id-based, so the resulting graph may be cyclic.
	NextQuestionID *string `json:"nextQuestionId,omitempty"`
}

// Question is a single node in a conversation's question graph.
type Question struct {
	// ID is the unique identifier for the question (UUID).
	ID string `json:"id"`

	// Text is the question shown to the user.
	Text string `json:"text"`

	// Options are the possible answers, ordered by Position unless
	// RandomizeOptions is set.
	Options []Option `json:"options"`

	// First marks an entry point of the conversation.
	First bool `json:"first"`

	// Last marks an exit point of the conversation.
	Last bool `json:"last"`

	// RandomizeOptions indicates the options should be presented in
	// random order.
	RandomizeOptions bool `json:"randomizeOptions"`

	// Tags are searchable labels attached to the question.
	Tags []string `json:"tags,omitempty"`
}

// OptionAt returns the option at the given position, and whether one
// exists there.
func (q *Question) OptionAt(position int) (Option, bool) {
	for _, option := range q.Options {
		if option.Position == position {
			return option, true
		}
	}
	return Option{}, false
}
