// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

/*
Package authz implements the relationship-derived authorization engine.

A caller's rights over a resource are never stored on the caller. They
are reconstructed at request time from group membership: which groups
the caller shares with the target user, what role the caller holds in
those groups, and which conversations and reports those groups expose
to that role. This avoids permission drift when membership changes, at
the cost of a store query per check.

Key Components:

  - Requirement: what a route demands (root-only, or a subject kind
    with acceptable roles)
  - Engine: evaluates a requirement for a principal against a target
  - Middleware: chi middleware running the engine before the handler,
    resolving target ids from URL parameters
  - Prometheus counters for allow/deny decisions

Decision Rules:

Super-admins pass every check. Role matching on groups is exact, never
hierarchical: a supermentor does not satisfy a requirement listing only
mentor. A lookup failure during a check (missing group, missing user)
denies with not-allowed rather than not-found, so unauthorized callers
cannot probe for resource existence.
*/
package authz
