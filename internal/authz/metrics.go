// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

package authz

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// decisionsTotal counts authorization decisions by subject kind
	// and outcome.
	decisionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_decisions_total",
			Help: "Total number of authorization decisions",
		},
		[]string{"subject", "decision"},
	)

	// decisionDuration tracks the latency of authorization decisions.
	// Checks dominated by store lookups land in the upper buckets.
	decisionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "authz_decision_duration_seconds",
			Help:    "Duration of authorization decisions in seconds",
			Buckets: []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
		[]string{"subject"},
	)

	// deniedTotal tracks denials separately for alerting.
	deniedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authz_denied_total",
			Help: "Total number of authorization denials",
		},
		[]string{"subject"},
	)
)

// recordDecision updates the decision metrics for one check.
func recordDecision(subject string, allowed bool, elapsed time.Duration) {
	decision := "allow"
	if !allowed {
		decision = "deny"
		deniedTotal.WithLabelValues(subject).Inc()
	}
	decisionsTotal.WithLabelValues(subject, decision).Inc()
	decisionDuration.WithLabelValues(subject).Observe(elapsed.Seconds())
}
