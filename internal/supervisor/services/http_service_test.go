// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"
)

// mockHTTPServer is a test double for the HTTPServer interface.
type mockHTTPServer struct {
	listenErr     error
	shutdownErr   error
	shutdownCount atomic.Int32
	stopCh        chan struct{}
}

func newMockHTTPServer() *mockHTTPServer {
	return &mockHTTPServer{stopCh: make(chan struct{})}
}

func (m *mockHTTPServer) ListenAndServe() error {
	if m.listenErr != nil {
		return m.listenErr
	}
	<-m.stopCh
	return http.ErrServerClosed
}

func (m *mockHTTPServer) Shutdown(ctx context.Context) error {
	m.shutdownCount.Add(1)
	close(m.stopCh)
	return m.shutdownErr
}

func TestHTTPServiceImplementsSutureService(t *testing.T) {
	var _ suture.Service = (*HTTPService)(nil)
	var _ suture.Service = (*GCService)(nil)
}

func TestNewHTTPServiceDefaultsTimeout(t *testing.T) {
	server := newMockHTTPServer()

	svc := NewHTTPService(server, 0)
	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("zero timeout became %v, want 10s", svc.shutdownTimeout)
	}

	svc = NewHTTPService(server, -time.Second)
	if svc.shutdownTimeout != 10*time.Second {
		t.Errorf("negative timeout became %v, want 10s", svc.shutdownTimeout)
	}

	svc = NewHTTPService(server, 3*time.Second)
	if svc.shutdownTimeout != 3*time.Second {
		t.Errorf("explicit timeout became %v, want 3s", svc.shutdownTimeout)
	}
}

func TestHTTPServiceShutsDownOnContextCancel(t *testing.T) {
	server := newMockHTTPServer()
	svc := NewHTTPService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancellation")
	}

	if got := server.shutdownCount.Load(); got != 1 {
		t.Errorf("Shutdown called %d times, want 1", got)
	}
}

func TestHTTPServiceReportsListenFailure(t *testing.T) {
	server := newMockHTTPServer()
	server.listenErr = errors.New("address already in use")
	svc := NewHTTPService(server, time.Second)

	err := svc.Serve(context.Background())
	if err == nil || !errors.Is(err, server.listenErr) {
		t.Errorf("Serve returned %v, want wrapped listen error", err)
	}
}

func TestHTTPServiceReportsShutdownFailure(t *testing.T) {
	server := newMockHTTPServer()
	server.shutdownErr = errors.New("drain timed out")
	svc := NewHTTPService(server, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := svc.Serve(ctx)
	if err == nil || !errors.Is(err, server.shutdownErr) {
		t.Errorf("Serve returned %v, want wrapped shutdown error", err)
	}
}

func TestServiceNames(t *testing.T) {
	if got := NewHTTPService(newMockHTTPServer(), 0).String(); got != "http-server" {
		t.Errorf("http service name = %q", got)
	}
	if got := NewGCService(nil, 0).String(); got != "store-gc" {
		t.Errorf("gc service name = %q", got)
	}
}
