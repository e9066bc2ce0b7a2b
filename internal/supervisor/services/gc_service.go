// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package services

import (
	"context"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/go-donew/mentoring-api/internal/logging"
	"github.com/go-donew/mentoring-api/internal/metrics"
)

// GCStore is the slice of the database store the collector needs.
type GCStore interface {
	RunGC() error
}

// GCService periodically runs Badger's value log garbage collection.
// Badger never reclaims value log space on its own; the documentation
// recommends a periodic caller-driven pass.
type GCService struct {
	store    GCStore
	interval time.Duration
}

// NewGCService creates the collector. A non-positive interval falls
// back to ten minutes.
func NewGCService(store GCStore, interval time.Duration) *GCService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &GCService{store: store, interval: interval}
}

// Serve implements suture.Service.
func (g *GCService) Serve(ctx context.Context) error {
	logger := logging.WithComponent("store-gc")

	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			err := g.store.RunGC()
			switch {
			case err == nil:
				metrics.RecordStoreGC("collected")
				logger.Debug().Msg("Value log garbage collection pass completed")
			case errors.Is(err, badger.ErrNoRewrite):
				// Nothing worth rewriting this pass.
				metrics.RecordStoreGC("noop")
			default:
				metrics.RecordStoreGC("error")
				logger.Warn().Err(err).Msg("Value log garbage collection failed")
			}
		}
	}
}

// String identifies the service in suture's logs.
func (g *GCService) String() string {
	return "store-gc"
}
