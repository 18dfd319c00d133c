// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package api

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/baton/internal/kodi"
	"github.com/tomtom215/baton/internal/models"
	"github.com/tomtom215/baton/internal/tools"
)

const (
	// maxInvokeBodySize bounds invocation request bodies. Arguments are
	// a handful of short strings; anything near this size is abuse.
	maxInvokeBodySize = 1 << 20

	// readyPingTimeout bounds the media center ping in the readiness
	// probe. Readiness must answer fast even when the remote is gone.
	readyPingTimeout = 2 * time.Second
)

// invokeRequest is the body of POST /api/v1/tools/{name}.
type invokeRequest struct {
	Arguments json.RawMessage `json:"arguments"`
}

// listTools answers the operation table with argument schemas.
func (router *Router) listTools(w http.ResponseWriter, r *http.Request) {
	ops := router.registry.Operations()
	respondSuccess(w, map[string]interface{}{
		"tools": ops,
		"count": len(ops),
	}, 0)
}

// invokeTool dispatches one operation. The HTTP status reflects only
// whether the invocation was accepted; an accepted invocation always
// answers 200 with the Result, whatever the outcome.
func (router *Router) invokeTool(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, err := io.ReadAll(io.LimitReader(r.Body, maxInvokeBodySize))
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrCodeBadRequest, "Failed to read request body.", err)
		return
	}

	var req invokeRequest
	if len(body) > 0 {
		dec := json.NewDecoder(bytes.NewReader(body))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, ErrCodeBadRequest,
				"Request body must be a JSON object with an optional \"arguments\" member.", err)
			return
		}
	}

	start := time.Now()
	result, err := router.registry.Dispatch(r.Context(), name, req.Arguments)
	if err != nil {
		respondInvocationError(w, err)
		return
	}

	respondSuccess(w, result, time.Since(start))
}

// respondInvocationError maps the dispatcher's invocation-level errors
// onto HTTP statuses and machine-readable codes.
func respondInvocationError(w http.ResponseWriter, err error) {
	var unknown *tools.UnknownOperationError
	var missing *tools.MissingArgumentError
	var invalid *tools.ArgumentError

	switch {
	case errors.As(err, &unknown):
		respondError(w, http.StatusNotFound, ErrCodeUnknownCommand, err.Error(), nil)
	case errors.As(err, &missing):
		respondErrorDetails(w, http.StatusBadRequest, ErrCodeMissingArgument, err.Error(),
			map[string]interface{}{"argument": missing.Name})
	case errors.As(err, &invalid):
		respondError(w, http.StatusBadRequest, ErrCodeValidationError, err.Error(), nil)
	default:
		respondError(w, http.StatusInternalServerError, ErrCodeInternalError,
			"Unexpected failure dispatching the operation.", err)
	}
}

// healthLive reports process liveness. It touches nothing external.
func (router *Router) healthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, map[string]string{"status": "alive"}, 0)
}

// healthReady reports whether the service can do useful work, which
// means the media center answers. The ping always takes the direct
// route; proxy reachability is not a readiness concern. The route field
// reports where use_proxy calls will go: "proxy" when a SOCKS5 endpoint
// is configured, "direct" when they fall back.
func (router *Router) healthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
	defer cancel()

	err := router.catalog.Ping(ctx, kodi.RouteDirect)

	health := models.HealthStatus{
		Status:        "healthy",
		Version:       router.version,
		Route:         "direct",
		KodiConnected: err == nil,
		Uptime:        time.Since(router.startTime).Seconds(),
	}
	if router.cfg.Proxy.Enabled() {
		health.Route = "proxy"
	}

	if err == nil {
		respondSuccess(w, health, 0)
		return
	}

	health.Status = "degraded"
	code, message := classifyTransportError(err)
	respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
		Status: "error",
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
		Error: &models.APIError{
			Code:    code,
			Message: message,
		},
	})
}

// classifyTransportError maps the transport taxonomy onto API error
// codes for the readiness probe.
func classifyTransportError(err error) (code, message string) {
	var remote *kodi.RemoteError
	switch {
	case errors.Is(err, kodi.ErrTimeout):
		return ErrCodeTimeout, "The media center did not answer in time."
	case errors.Is(err, kodi.ErrUnreachable):
		return ErrCodeUpstreamUnavailable, "The media center could not be reached."
	case errors.As(err, &remote):
		return ErrCodeRemoteError, remote.Error()
	default:
		return ErrCodeInternalError, err.Error()
	}
}
