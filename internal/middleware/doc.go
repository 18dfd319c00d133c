// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

/*
Package middleware provides the HTTP middleware for the API surface:
request ID tagging, Prometheus instrumentation, and gzip compression.

Routing-level concerns (RealIP, panic recovery, CORS, rate limiting)
come from the chi ecosystem and are wired in internal/api. This package
holds the pieces that integrate with the logging and metrics packages,
so handlers can log with a request ID and every response lands in the
duration histograms.
*/
package middleware
