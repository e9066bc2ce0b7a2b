// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package authz

import (
	"context"
	"fmt"
	"time"

	"github.com/go-donew/mentoring-api/internal/auth"
	"github.com/go-donew/mentoring-api/internal/logging"
	"github.com/go-donew/mentoring-api/internal/models"
)

// GroupReader is the slice of the group store the engine needs. The
// abstraction keeps engine tests independent of a real database.
type GroupReader interface {
	Get(ctx context.Context, id string) (*models.Group, error)
	FindByParticipant(ctx context.Context, userID string) ([]*models.Group, error)
}

// Engine evaluates requirements for principals against targets.
type Engine struct {
	groups GroupReader
}

// NewEngine creates the authorization engine.
func NewEngine(groups GroupReader) *Engine {
	return &Engine{groups: groups}
}

// Check decides whether the principal may proceed. A nil return means
// allowed; every denial is a not-allowed ServerError so callers can
// write it directly. Lookup failures deny rather than report
// not-found, keeping resource existence hidden from unauthorized
// callers.
func (e *Engine) Check(ctx context.Context, principal *auth.Principal, req Requirement, target Target) error {
	start := time.Now()

	allowed, reason := e.evaluate(ctx, principal, req, target)

	recordDecision(subjectName(req), allowed, time.Since(start))
	if allowed {
		return nil
	}

	logging.Ctx(ctx).Debug().
		Str("subject", subjectName(req)).
		Str("user_id", principal.User.ID).
		Str("reason", reason).
		Msg("Authorization denied")

	return models.NewServerError(models.ErrNotAllowed)
}

func (e *Engine) evaluate(ctx context.Context, principal *auth.Principal, req Requirement, target Target) (bool, string) {
	// Super-admins pass every check.
	if principal.IsRoot {
		return true, ""
	}

	switch r := req.(type) {
	case RootOnly:
		return false, "route is restricted to super-admins"
	case UserSubject:
		return e.evaluateUser(ctx, principal, r, target)
	case GroupSubject:
		return e.evaluateGroup(ctx, principal, r, target)
	case ConversationSubject:
		return e.evaluateConversation(ctx, principal, target)
	case ReportSubject:
		return e.evaluateReport(ctx, principal, target)
	default:
		return false, fmt.Sprintf("unknown requirement %T", req)
	}
}

// evaluateUser checks the caller's relationship to the target user.
// Roles are tried in order; the first match wins. A named role matches
// when the caller holds it in any group that also contains the target
// user. Only the caller's role is examined, so any shared group
// suffices regardless of the target's role there.
func (e *Engine) evaluateUser(ctx context.Context, principal *auth.Principal, req UserSubject, target Target) (bool, string) {
	var shared []*models.Group

	for _, role := range req.Roles {
		if role == UserSelf {
			if principal.User.ID == target.UserID {
				return true, ""
			}
			continue
		}

		if shared == nil {
			groups, err := e.groups.FindByParticipant(ctx, principal.User.ID)
			if err != nil {
				return false, "group lookup failed"
			}
			shared = groups
		}

		for _, group := range shared {
			if _, ok := group.RoleOf(target.UserID); !ok {
				continue
			}
			if held, _ := group.RoleOf(principal.User.ID); held == models.Role(role) {
				return true, ""
			}
		}
	}

	return false, "no qualifying relationship to target user"
}

// evaluateGroup checks the caller's position in the target group.
// Participant matches any entry; named roles must equal the caller's
// entry exactly, with no hierarchy.
func (e *Engine) evaluateGroup(ctx context.Context, principal *auth.Principal, req GroupSubject, target Target) (bool, string) {
	group, err := e.groups.Get(ctx, target.GroupID)
	if err != nil {
		// Missing groups deny like any other mismatch.
		return false, "group lookup failed"
	}

	held, participates := group.RoleOf(principal.User.ID)
	if !participates {
		return false, "caller does not participate in group"
	}

	for _, role := range req.Roles {
		if role == GroupParticipant {
			return true, ""
		}
		if held == models.Role(role) {
			return true, ""
		}
	}

	return false, "caller's role does not satisfy requirement"
}

// evaluateConversation grants access when any group the caller
// participates in exposes the conversation to the caller's role there.
func (e *Engine) evaluateConversation(ctx context.Context, principal *auth.Principal, target Target) (bool, string) {
	groups, err := e.groups.FindByParticipant(ctx, principal.User.ID)
	if err != nil {
		return false, "group lookup failed"
	}

	for _, group := range groups {
		held, _ := group.RoleOf(principal.User.ID)
		if group.ConversationAllows(target.ConversationID, held) {
			return true, ""
		}
	}

	return false, "no group exposes the conversation to the caller"
}

// evaluateReport grants access when a group containing both the caller
// and the target user exposes the report to the caller's role there.
func (e *Engine) evaluateReport(ctx context.Context, principal *auth.Principal, target Target) (bool, string) {
	groups, err := e.groups.FindByParticipant(ctx, principal.User.ID)
	if err != nil {
		return false, "group lookup failed"
	}

	for _, group := range groups {
		if _, ok := group.RoleOf(target.UserID); !ok {
			continue
		}
		held, _ := group.RoleOf(principal.User.ID)
		if group.ReportAllows(target.ReportID, held) {
			return true, ""
		}
	}

	return false, "no shared group exposes the report to the caller"
}

// subjectName labels a requirement for metrics and logs.
func subjectName(req Requirement) string {
	switch req.(type) {
	case RootOnly:
		return "root"
	case UserSubject:
		return "user"
	case GroupSubject:
		return "group"
	case ConversationSubject:
		return "conversation"
	case ReportSubject:
		return "report"
	default:
		return "unknown"
	}
}
