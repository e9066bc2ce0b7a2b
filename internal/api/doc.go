// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

// Package api wires the HTTP surface: the chi router, request
// decoding and validation, rate limiting tiers and the route
// handlers. Every error leaves through one formatter that writes the
// {"error": {code, message, status}} envelope.
package api
