// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

/*
Package api provides the HTTP surface over the command registry.

Routes:

	GET  /api/v1/tools          list operations with their argument schemas
	POST /api/v1/tools/{name}   invoke one operation
	GET  /api/v1/health/live    process liveness
	GET  /api/v1/health/ready   readiness, pings the media center
	GET  /metrics               Prometheus exposition

Invocation responses are always the standard envelope. A well-formed
invocation answers 200 whatever the operation's outcome was; the
outcome, including not-found, ambiguity, and remote failures, lives in
the Result payload. Non-200 answers mean the invocation itself was
rejected: unknown operation (404), bad arguments (400), or rate
limiting (429).
*/
package api
