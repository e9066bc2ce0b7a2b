// DoNew Mentoring API - REST backend for the DoNew mentoring platform
// Copyright 2026 DoNew
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/go-donew/mentoring-api

// Package metrics defines the Prometheus instruments for the HTTP
// surface. Authorization decision metrics live with the engine in
// internal/authz.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts requests by method, route pattern and
	// status code.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentoring_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks request latency by method and route
	// pattern.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mentoring_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	// HTTPActiveRequests gauges requests currently being handled.
	HTTPActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mentoring_http_active_requests",
			Help: "Number of HTTP requests currently in flight",
		},
	)

	// StoreGCRuns counts value-log garbage collection passes by
	// outcome.
	StoreGCRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mentoring_store_gc_runs_total",
			Help: "Total number of store garbage collection passes",
		},
		[]string{"outcome"},
	)
)

// RecordHTTPRequest records one completed request.
func RecordHTTPRequest(method, route, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(start bool) {
	if start {
		HTTPActiveRequests.Inc()
	} else {
		HTTPActiveRequests.Dec()
	}
}

// RecordStoreGC records one garbage collection pass.
func RecordStoreGC(outcome string) {
	StoreGCRuns.WithLabelValues(outcome).Inc()
}
