// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - JSON-RPC calls to the media center (latency, outcome classification)
// - Catalog resolution outcomes (found, ambiguous, not found)
// - Command invocations
// - API endpoint latency and throughput
// - Circuit breaker state

var (
	// RPC Metrics
	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kodi_rpc_duration_seconds",
			Help:    "Duration of JSON-RPC calls to the media center in seconds",
			Buckets: prometheus.DefBuckets, // 0.005s, 0.01s, 0.025s, 0.05s, 0.1s, 0.25s, 0.5s, 1s, 2.5s, 5s, 10s
		},
		[]string{"method", "route"},
	)

	RPCRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kodi_rpc_requests_total",
			Help: "Total number of JSON-RPC calls to the media center",
		},
		[]string{"method", "route", "status"}, // status: "ok", "remote_error", "protocol_error", "timeout", "unreachable"
	)

	// Resolution Metrics
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resolutions_total",
			Help: "Total number of catalog resolution attempts",
		},
		[]string{"kind", "outcome"}, // kind: "movie", "show", "episode"; outcome: "found", "ambiguous", "not_found"
	)

	// Command Metrics
	CommandInvocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "command_invocations_total",
			Help: "Total number of command invocations",
		},
		[]string{"command", "status"}, // status: "ok", "not_found", "ambiguous", "error"
	)

	CommandDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "command_duration_seconds",
			Help:    "End-to-end command execution duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}, // Commands may chain several RPC calls
		},
		[]string{"command"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordRPCRequest records a JSON-RPC call metric
func RecordRPCRequest(method, route, status string, duration time.Duration) {
	RPCDuration.WithLabelValues(method, route).Observe(duration.Seconds())
	RPCRequestsTotal.WithLabelValues(method, route, status).Inc()
}

// RecordResolution records a catalog resolution outcome
func RecordResolution(kind, outcome string) {
	ResolutionsTotal.WithLabelValues(kind, outcome).Inc()
}

// RecordInvocation records a command invocation metric
func RecordInvocation(command, status string, duration time.Duration) {
	CommandInvocationsTotal.WithLabelValues(command, status).Inc()
	CommandDuration.WithLabelValues(command).Observe(duration.Seconds())
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimitHit records a rate limit rejection
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackActiveRequest increments/decrements active request gauge
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetCircuitBreakerState updates the state gauge for a breaker
func SetCircuitBreakerState(name string, state float64) {
	CircuitBreakerState.WithLabelValues(name).Set(state)
}

// RecordCircuitBreakerRequest records a request outcome through a breaker
func RecordCircuitBreakerRequest(name, result string) {
	CircuitBreakerRequests.WithLabelValues(name, result).Inc()
}

// RecordCircuitBreakerTransition records a breaker state transition
func RecordCircuitBreakerTransition(name, fromState, toState string) {
	CircuitBreakerTransitions.WithLabelValues(name, fromState, toState).Inc()
}

// SetAppInfo records application version and build information
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// SetUptime updates the application uptime gauge
func SetUptime(startTime time.Time) {
	AppUptime.Set(time.Since(startTime).Seconds())
}
