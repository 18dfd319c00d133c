// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

/*
Package metrics provides Prometheus metrics collection and export for observability.

This package instruments every layer of the application with the Prometheus
client library: the JSON-RPC transport, catalog resolution, command dispatch,
the HTTP API, and the circuit breaker.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:2866/metrics

# Available Metrics

RPC Metrics:
  - kodi_rpc_duration_seconds: JSON-RPC call latency (histogram)
    Labels: method, route (direct, proxy)
  - kodi_rpc_requests_total: JSON-RPC calls (counter)
    Labels: method, route, status (ok, remote_error, protocol_error, timeout, unreachable)

Resolution Metrics:
  - resolutions_total: Catalog resolution attempts (counter)
    Labels: kind (movie, show, episode), outcome (found, ambiguous, not_found)

Command Metrics:
  - command_invocations_total: Command invocations (counter)
    Labels: command, status (ok, not_found, ambiguous, error)
  - command_duration_seconds: End-to-end command latency (histogram)
    Labels: command
    Buckets widened to 30s because a command may chain several RPC calls

API Metrics:
  - api_requests_total: HTTP requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: HTTP request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Circuit Breaker Metrics:
  - circuit_breaker_state: Current state (gauge)
    Labels: name
    Values: 0=closed, 1=half-open, 2=open
  - circuit_breaker_requests_total: Requests through the breaker (counter)
    Labels: name, result (success, failure, rejected)
  - circuit_breaker_state_transitions_total: State transitions (counter)
    Labels: name, from_state, to_state

System Metrics:
  - app_info: Version and build information (gauge, always 1)
    Labels: version, go_version
  - app_uptime_seconds: Process uptime (gauge)

# Usage Example

Metrics register themselves via promauto at package load. Recording goes
through the helper functions:

	metrics.RecordRPCRequest("VideoLibrary.GetMovies", "direct", "ok", duration)
	metrics.RecordResolution("movie", "found")
	metrics.RecordInvocation("play-movie", "ok", duration)

The HTTP layer exposes the scrape endpoint with promhttp:

	mux.Handle("/metrics", promhttp.Handler())
*/
package metrics
