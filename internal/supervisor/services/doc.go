// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

// Package services contains suture.Service wrappers for the components the
// supervisor tree runs: the HTTP server and the uptime reporter. Each wrapper
// adapts a blocking or ticker-driven lifecycle to suture's context-aware
// Serve contract.
package services
