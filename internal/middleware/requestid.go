// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/tomtom215/baton/internal/logging"
)

// requestIDHeader is consulted on the way in and echoed on the way out.
const requestIDHeader = "X-Request-ID"

// RequestID tags each request with a unique ID. An ID supplied by an
// upstream proxy is kept; otherwise a fresh UUID v4 is generated. The ID
// goes on the response header for client visibility and into the request
// context, where logging.Ctx picks it up for every log line downstream.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, requestID)

		ctx := logging.ContextWithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID extracts the request ID from context. Returns an empty
// string when the request did not pass through RequestID.
func GetRequestID(ctx context.Context) string {
	return logging.RequestIDFromContext(ctx)
}
