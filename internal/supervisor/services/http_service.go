// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

// Package services holds the suture.Service wrappers run under the
// supervisor tree.
package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// HTTPServer matches *http.Server's lifecycle methods, so tests can
// substitute a mock.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPService runs an HTTP server as a supervised service,
// translating the blocking ListenAndServe pattern into suture's
// context-aware Serve.
type HTTPService struct {
	server          HTTPServer
	shutdownTimeout time.Duration
}

// NewHTTPService wraps the server. shutdownTimeout bounds how long
// active connections get to drain on shutdown.
func NewHTTPService(server HTTPServer, shutdownTimeout time.Duration) *HTTPService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &HTTPService{
		server:          server,
		shutdownTimeout: shutdownTimeout,
	}
}

// Serve implements suture.Service. It returns nil only on graceful
// shutdown; http.ErrServerClosed is expected then and swallowed.
func (h *HTTPService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil

	case <-ctx.Done():
		// The serve context is already canceled, so shutdown gets its
		// own deadline.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
		defer cancel()

		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown failed: %w", err)
		}

		<-errCh
		return ctx.Err()
	}
}

// String identifies the service in suture's logs.
func (h *HTTPService) String() string {
	return "http-server"
}
