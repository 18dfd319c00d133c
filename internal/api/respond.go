// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/baton/internal/logging"
	"github.com/tomtom215/baton/internal/models"
)

// Machine-readable error codes for the API surface.
const (
	ErrCodeBadRequest          = "BAD_REQUEST"
	ErrCodeValidationError     = "VALIDATION_ERROR"
	ErrCodeMissingArgument     = "MISSING_ARGUMENT"
	ErrCodeUnknownCommand      = "UNKNOWN_COMMAND"
	ErrCodeTooManyRequests     = "TOO_MANY_REQUESTS"
	ErrCodeRemoteError         = "REMOTE_ERROR"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeTimeout             = "TIMEOUT"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// sanitizeLogValue strips control characters from values that end up in
// log output, so crafted operation names cannot inject log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends an envelope with proper headers. Invocations have
// side effects, so responses are never cacheable.
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, data interface{}, duration time.Duration) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: "success",
		Data:   data,
		Metadata: models.Metadata{
			Timestamp:  time.Now(),
			DurationMS: duration.Milliseconds(),
		},
	})
}

// respondError sends an error envelope. err is logged, not sent to the
// client.
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().
			Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API error")
	}

	respondErrorDetails(w, status, code, message, nil)
}

// respondErrorDetails sends an error envelope with structured details.
func respondErrorDetails(w http.ResponseWriter, status int, code, message string, details map[string]interface{}) {
	respondJSON(w, status, &models.APIResponse{
		Status: "error",
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
