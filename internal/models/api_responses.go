// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
// It provides consistent structure for both successful and error responses.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"found": true, "matches": [...]},
//	  "metadata": {
//	    "timestamp": "2026-08-25T12:00:00Z",
//	    "duration_ms": 45
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "MISSING_ARGUMENT",
//	    "message": "title is required",
//	    "details": {"argument": "title"}
//	  },
//	  "metadata": {"timestamp": "2026-08-25T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// Fields:
//   - Timestamp: Server time when response was generated (RFC3339 format)
//   - DurationMS: Command execution time in milliseconds (omitted when zero)
type Metadata struct {
	Timestamp  time.Time `json:"timestamp"`
	DurationMS int64     `json:"duration_ms,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Common error codes:
//   - VALIDATION_ERROR: Invalid argument values
//   - MISSING_ARGUMENT: A required argument was absent
//   - UNKNOWN_COMMAND: Command name not in the registry
//   - REMOTE_ERROR: The media center rejected the call
//   - UPSTREAM_UNAVAILABLE: The media center could not be reached
//   - TIMEOUT: The media center did not answer in time
//   - INTERNAL_ERROR: Unexpected failure inside this service
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
