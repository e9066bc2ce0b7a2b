// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

// Package middleware provides the infrastructure middleware shared by
// every route: request ID tracing and Prometheus instrumentation.
package middleware

import (
	"net/http"

	"github.com/go-donew/mentoring-api/internal/logging"
)

// RequestID attaches a unique ID to each request for tracing. An ID
// supplied by an upstream proxy via X-Request-ID is kept; otherwise a
// fresh one is generated. The ID is echoed in the response header and
// carried in the logging context.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = logging.GenerateRequestID()
		}

		w.Header().Set("X-Request-ID", requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
