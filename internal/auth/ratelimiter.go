// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package auth

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter implements per-key throttling of credential checks with
// automatic cleanup of idle entries. The identity service keys it by
// client address so one caller cannot brute-force another's password.
type RateLimiter struct {
	limiters  map[string]*rateLimiterEntry
	mu        sync.Mutex
	rate      rate.Limit
	burst     int
	stopClean chan struct{}
}

// rateLimiterEntry wraps a rate limiter with last access time.
type rateLimiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter creates a rate limiter allowing perSecond events with
// the given burst per key.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	rl := &RateLimiter{
		limiters:  make(map[string]*rateLimiterEntry),
		rate:      rate.Limit(perSecond),
		burst:     burst,
		stopClean: make(chan struct{}),
	}
	go rl.startCleanup(10 * time.Minute)
	return rl
}

// Allow checks if an event for the given key is allowed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	entry, exists := rl.limiters[key]
	if !exists {
		entry = &rateLimiterEntry{
			limiter:    rate.NewLimiter(rl.rate, rl.burst),
			lastAccess: time.Now(),
		}
		rl.limiters[key] = entry
	} else {
		entry.lastAccess = time.Now()
	}
	limiter := entry.limiter
	rl.mu.Unlock()

	return limiter.Allow()
}

// startCleanup periodically removes stale limiters.
func (rl *RateLimiter) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopClean:
			return
		}
	}
}

// cleanup removes limiters not accessed in the last hour.
func (rl *RateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	threshold := time.Now().Add(-1 * time.Hour)
	for key, entry := range rl.limiters {
		if entry.lastAccess.Before(threshold) {
			delete(rl.limiters, key)
		}
	}
}

// Stop stops the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopClean)
}
