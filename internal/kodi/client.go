// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

/*
client.go - JSON-RPC Transport

This file provides the Client struct and the HTTP communication layer for
the media center's JSON-RPC v2 endpoint.

Client Features:
  - Single POST per call with configurable timeout
  - HTTP basic auth when both credentials are configured
  - Optional SOCKS5 proxy route, selected per call
  - Failure classification into a closed error taxonomy
  - Context support for cancellation

The proxied http.Client is built once at construction and reused for every
proxied call. A call that requests the proxy route while no proxy is
configured silently uses the direct path.

No retries happen at this layer: every failure propagates immediately so
callers stay in control of resilience policy.

Related Files:
  - catalog.go: typed library fetches and player commands
  - decode.go: raw record decoding with per-field defaults
  - errors.go: the transport error taxonomy
  - breaker.go: optional circuit breaker wrapper
*/

//nolint:staticcheck // File documentation, not package doc
package kodi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	xproxy "golang.org/x/net/proxy"

	"github.com/tomtom215/baton/internal/config"
	"github.com/tomtom215/baton/internal/logging"
	"github.com/tomtom215/baton/internal/metrics"
)

// maxErrorBodySize limits the maximum amount of response body read for error reporting
// This prevents unbounded memory allocation when reading large error responses
const maxErrorBodySize = 64 * 1024 // 64KB

// rpcID is the JSON-RPC request id. HTTP correlates request and response by
// connection, so a fixed id is sufficient.
const rpcID = 1

// readBodyForError reads the response body for error reporting (max 64KB)
// Returns the body content or a placeholder message if reading fails
func readBodyForError(r io.Reader) []byte {
	limitedReader := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// Route selects the network path for a single call.
type Route string

const (
	// RouteDirect connects straight to the media center.
	RouteDirect Route = "direct"

	// RouteProxy tunnels the call through the configured SOCKS5 proxy.
	RouteProxy Route = "proxy"
)

// Caller issues a single JSON-RPC call against the media center and returns
// the raw result member. Implemented by Client for production use and by
// mocks for testing.
//
// Thread Safety: implementations must be safe for concurrent use.
type Caller interface {
	Call(ctx context.Context, method string, params interface{}, route Route) (json.RawMessage, error)
}

// rpcRequest is the JSON-RPC 2.0 call envelope.
type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	Method  string      `json:"method"`
	ID      int         `json:"id"`
	Params  interface{} `json:"params,omitempty"`
}

// rpcError is the structured error member of a response envelope.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// rpcEnvelope is the JSON-RPC 2.0 response envelope.
type rpcEnvelope struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      int             `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
}

// Client is the production JSON-RPC transport for the media center.
//
// Example:
//
//	client, err := kodi.NewClient(cfg)
//	if err != nil {
//	    log.Fatal("invalid transport configuration:", err)
//	}
//	raw, err := client.Call(ctx, "JSONRPC.Ping", nil, kodi.RouteDirect)
type Client struct {
	endpoint string
	username string
	password string

	direct  *http.Client
	proxied *http.Client // nil when no proxy is configured
}

// Interface compliance check
var _ Caller = (*Client)(nil)

// NewClient creates a media center transport from configuration.
//
// The direct http.Client and, when a proxy host is configured, the proxied
// http.Client are both built here and reused for the process lifetime.
func NewClient(cfg *config.Config) (*Client, error) {
	c := &Client{
		endpoint: cfg.Kodi.BaseURL(),
		direct: &http.Client{
			Timeout: cfg.Kodi.Timeout,
		},
	}

	// Basic auth only when both halves are present.
	if cfg.Kodi.HasCredentials() {
		c.username = cfg.Kodi.Username
		c.password = cfg.Kodi.Password
	}

	if cfg.Proxy.Enabled() {
		proxied, err := newProxyClient(&cfg.Proxy, cfg.Kodi.Timeout)
		if err != nil {
			return nil, fmt.Errorf("failed to build SOCKS5 transport: %w", err)
		}
		c.proxied = proxied
	}

	return c, nil
}

// newProxyClient builds an http.Client that dials through the SOCKS5 proxy.
func newProxyClient(cfg *config.ProxyConfig, timeout time.Duration) (*http.Client, error) {
	var auth *xproxy.Auth
	if cfg.Username != "" {
		auth = &xproxy.Auth{User: cfg.Username, Password: cfg.Password}
	}

	dialer, err := xproxy.SOCKS5("tcp", cfg.Addr(), auth, xproxy.Direct)
	if err != nil {
		return nil, err
	}

	contextDialer, ok := dialer.(xproxy.ContextDialer)
	if !ok {
		return nil, fmt.Errorf("SOCKS5 dialer does not implement context dialing")
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: contextDialer.DialContext,
		},
	}, nil
}

// EffectiveRoute reports which path a call with the given route actually
// takes. A proxy route with no proxy configured degrades to direct.
func (c *Client) EffectiveRoute(route Route) Route {
	if route == RouteProxy && c.proxied != nil {
		return RouteProxy
	}
	return RouteDirect
}

// httpClient returns the transport for an already-resolved route.
func (c *Client) httpClient(route Route) *http.Client {
	if route == RouteProxy {
		return c.proxied
	}
	return c.direct
}

// Call issues one JSON-RPC call and returns the raw result member.
//
// Failures are classified:
//   - deadline exceeded: wraps ErrTimeout
//   - connection refused / DNS failure: wraps ErrUnreachable
//   - JSON-RPC error member in the response: *RemoteError
//   - non-2xx status or unparseable envelope: *ProtocolError
//
// A cancelled context propagates the context error unwrapped.
func (c *Client) Call(ctx context.Context, method string, params interface{}, route Route) (json.RawMessage, error) {
	effective := c.EffectiveRoute(route)

	start := time.Now()
	result, err := c.call(ctx, method, params, effective)
	duration := time.Since(start)

	metrics.RecordRPCRequest(method, string(effective), statusLabel(err), duration)

	if err != nil {
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("method", method).
			Str("route", string(effective)).
			Dur("duration", duration).
			Msg("Media center call failed")
		return nil, err
	}

	logging.Ctx(ctx).Debug().
		Str("method", method).
		Str("route", string(effective)).
		Dur("duration", duration).
		Msg("Media center call completed")

	return result, nil
}

// call performs the HTTP exchange for an already-resolved route.
func (c *Client) call(ctx context.Context, method string, params interface{}, route Route) (json.RawMessage, error) {
	payload := rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		ID:      rpcID,
		Params:  params,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.httpClient(route).Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := readBodyForError(resp.Body)
		return nil, &ProtocolError{Status: resp.StatusCode, Detail: string(detail)}
	}

	var envelope rpcEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, &ProtocolError{Status: resp.StatusCode, Detail: fmt.Sprintf("invalid JSON-RPC envelope: %v", err)}
	}

	if envelope.Error != nil {
		return nil, &RemoteError{Code: envelope.Error.Code, Message: envelope.Error.Message}
	}

	return envelope.Result, nil
}

// classifyTransportError maps low-level HTTP failures onto the sentinel
// taxonomy. Caller cancellation is propagated as-is.
func classifyTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}

	return fmt.Errorf("%w: %v", ErrUnreachable, err)
}

// statusLabel maps a call outcome to its metrics label.
func statusLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrTimeout):
		return "timeout"
	case errors.Is(err, ErrUnreachable):
		return "unreachable"
	}

	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return "remote_error"
	}
	var protoErr *ProtocolError
	if errors.As(err, &protoErr) {
		return "protocol_error"
	}
	return "error"
}
