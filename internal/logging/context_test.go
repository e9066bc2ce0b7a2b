// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()

	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("empty context yielded request id %q", got)
	}

	ctx = ContextWithRequestID(ctx, "req-123")
	if got := RequestIDFromContext(ctx); got != "req-123" {
		t.Errorf("request id = %q, want req-123", got)
	}
}

func TestGenerateRequestIDIsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		id := GenerateRequestID()
		if id == "" {
			t.Fatal("generated an empty request id")
		}
		if seen[id] {
			t.Fatalf("generated duplicate request id %q", id)
		}
		seen[id] = true
	}
}

func TestCtxStampsRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)

	ctx := ContextWithLogger(context.Background(), logger)
	ctx = ContextWithRequestID(ctx, "req-456")

	Ctx(ctx).Info().Msg("hello")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-456"`) {
		t.Errorf("log line missing request id: %s", out)
	}
	if !strings.Contains(out, "hello") {
		t.Errorf("log line missing message: %s", out)
	}
}

func TestLoggerFromContextFallsBackToGlobal(t *testing.T) {
	// Must not panic and must produce a usable logger.
	logger := LoggerFromContext(context.Background())
	logger.Debug().Msg("fallback logger works")
}
