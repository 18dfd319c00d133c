// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package kodi

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/baton/internal/config"
)

// testConfig builds a transport configuration pointed at a test server.
func testConfig(t *testing.T, serverURL string) *config.Config {
	t.Helper()

	u, err := url.Parse(serverURL)
	if err != nil {
		t.Fatalf("failed to parse test server URL: %v", err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatalf("failed to parse test server port: %v", err)
	}

	return &config.Config{
		Kodi: config.KodiConfig{
			Host:    u.Hostname(),
			Port:    port,
			Timeout: 5 * time.Second,
		},
		Proxy: config.ProxyConfig{Port: 1080},
	}
}

func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	client, err := NewClient(testConfig(t, serverURL))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

// TestReadBodyForError tests the utility function that reads response body for error reporting
func TestReadBodyForError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    io.Reader
		expected string
	}{
		{
			name:     "normal body content",
			input:    strings.NewReader("error message body"),
			expected: "error message body",
		},
		{
			name:     "empty body",
			input:    strings.NewReader(""),
			expected: "",
		},
		{
			name:     "failing reader",
			input:    &failingReader{},
			expected: "(failed to read response body)",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := readBodyForError(tt.input)
			if string(result) != tt.expected {
				t.Errorf("readBodyForError() = %q, want %q", string(result), tt.expected)
			}
		})
	}
}

// failingReader is a reader that always fails
type failingReader struct{}

func (f *failingReader) Read(_ []byte) (int, error) {
	return 0, errors.New("simulated read failure")
}

// TestClientCall_Success verifies the request shape and result extraction
func TestClientCall_Success(t *testing.T) {
	var gotRequest rpcRequest
	var gotPath, gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")

		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotRequest); err != nil {
			t.Errorf("request body is not a JSON-RPC call: %v", err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"pong"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	result, err := client.Call(context.Background(), "JSONRPC.Ping", nil, RouteDirect)
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	if string(result) != `"pong"` {
		t.Errorf("result = %s, want %q", result, `"pong"`)
	}
	if gotPath != "/jsonrpc" {
		t.Errorf("request path = %q, want /jsonrpc", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotRequest.JSONRPC != "2.0" {
		t.Errorf("jsonrpc = %q, want 2.0", gotRequest.JSONRPC)
	}
	if gotRequest.Method != "JSONRPC.Ping" {
		t.Errorf("method = %q, want JSONRPC.Ping", gotRequest.Method)
	}
	if gotRequest.ID != 1 {
		t.Errorf("id = %d, want 1", gotRequest.ID)
	}
}

// TestClientCall_OmitsEmptyParams verifies the params member is absent when nil
func TestClientCall_OmitsEmptyParams(t *testing.T) {
	var rawBody []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":{}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	if _, err := client.Call(context.Background(), "VideoLibrary.Clean", nil, RouteDirect); err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	if strings.Contains(string(rawBody), `"params"`) {
		t.Errorf("nil params should be omitted from the payload: %s", rawBody)
	}
}

// TestClientCall_RemoteError verifies JSON-RPC error members become RemoteError
func TestClientCall_RemoteError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"error":{"code":-32602,"message":"Invalid params"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Call(context.Background(), "Player.Open", nil, RouteDirect)
	if err == nil {
		t.Fatal("Call() should have returned an error")
	}

	var remoteErr *RemoteError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("error = %v, want *RemoteError", err)
	}
	if remoteErr.Code != -32602 {
		t.Errorf("Code = %d, want -32602", remoteErr.Code)
	}
	if remoteErr.Message != "Invalid params" {
		t.Errorf("Message = %q, want %q", remoteErr.Message, "Invalid params")
	}

	// Remote errors are not transport failures
	if errors.Is(err, ErrUnreachable) || errors.Is(err, ErrTimeout) {
		t.Errorf("RemoteError must not satisfy transport sentinels: %v", err)
	}
}

// TestClientCall_ProtocolError_Status verifies non-2xx responses
func TestClientCall_ProtocolError_Status(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream gone"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Call(context.Background(), "JSONRPC.Ping", nil, RouteDirect)
	if err == nil {
		t.Fatal("Call() should have returned an error")
	}

	var protoErr *ProtocolError
	if !errors.As(err, &protoErr) {
		t.Fatalf("error = %v, want *ProtocolError", err)
	}
	if protoErr.Status != http.StatusBadGateway {
		t.Errorf("Status = %d, want %d", protoErr.Status, http.StatusBadGateway)
	}
	if !strings.Contains(protoErr.Detail, "upstream gone") {
		t.Errorf("Detail = %q, want body content", protoErr.Detail)
	}
}

// TestClientCall_ProtocolError_BadEnvelope verifies unparseable bodies
func TestClientCall_ProtocolError_BadEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.Call(context.Background(), "JSONRPC.Ping", nil, RouteDirect)
	if err == nil {
		t.Fatal("Call() should have returned an error")
	}

	var protoErr *ProtocolError
	if !errors.As(err, &protoErr) {
		t.Fatalf("error = %v, want *ProtocolError", err)
	}
}

// TestClientCall_Timeout verifies the timeout sentinel
func TestClientCall_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"pong"}`))
	}))
	defer server.Close()

	cfg := testConfig(t, server.URL)
	cfg.Kodi.Timeout = 50 * time.Millisecond

	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}

	_, err = client.Call(context.Background(), "JSONRPC.Ping", nil, RouteDirect)
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("error = %v, want ErrTimeout", err)
	}
}

// TestClientCall_Unreachable verifies the unreachable sentinel
func TestClientCall_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close() // Nothing listens here anymore

	client := newTestClient(t, serverURL)

	_, err := client.Call(context.Background(), "JSONRPC.Ping", nil, RouteDirect)
	if !errors.Is(err, ErrUnreachable) {
		t.Errorf("error = %v, want ErrUnreachable", err)
	}
}

// TestClientCall_ContextCanceled verifies cancellation is not misclassified
func TestClientCall_ContextCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Call(ctx, "JSONRPC.Ping", nil, RouteDirect)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
	if errors.Is(err, ErrUnreachable) {
		t.Errorf("cancellation must not read as unreachable: %v", err)
	}
}

// TestClientCall_BasicAuth verifies credentials are sent only when both are configured
func TestClientCall_BasicAuth(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantAuth bool
	}{
		{"both credentials", "kodi", "secret", true},
		{"username only", "kodi", "", false},
		{"password only", "", "secret", false},
		{"no credentials", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser, gotPass string
			var gotOK bool

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, gotPass, gotOK = r.BasicAuth()
				w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"pong"}`))
			}))
			defer server.Close()

			cfg := testConfig(t, server.URL)
			cfg.Kodi.Username = tt.username
			cfg.Kodi.Password = tt.password

			client, err := NewClient(cfg)
			if err != nil {
				t.Fatalf("NewClient() error = %v", err)
			}

			if _, err := client.Call(context.Background(), "JSONRPC.Ping", nil, RouteDirect); err != nil {
				t.Fatalf("Call() error = %v", err)
			}

			if gotOK != tt.wantAuth {
				t.Errorf("auth header present = %v, want %v", gotOK, tt.wantAuth)
			}
			if tt.wantAuth && (gotUser != tt.username || gotPass != tt.password) {
				t.Errorf("credentials = %q/%q, want %q/%q", gotUser, gotPass, tt.username, tt.password)
			}
		})
	}
}

// TestClientCall_ProxyFallback verifies the proxy route degrades to direct
// when no proxy is configured
func TestClientCall_ProxyFallback(t *testing.T) {
	served := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served = true
		w.Write([]byte(`{"jsonrpc":"2.0","id":1,"result":"pong"}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	if _, err := client.Call(context.Background(), "JSONRPC.Ping", nil, RouteProxy); err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !served {
		t.Error("proxy route without a proxy should still reach the endpoint directly")
	}
}

// TestEffectiveRoute verifies route resolution against proxy configuration
func TestEffectiveRoute(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	t.Run("no proxy configured", func(t *testing.T) {
		client := newTestClient(t, server.URL)

		if got := client.EffectiveRoute(RouteDirect); got != RouteDirect {
			t.Errorf("EffectiveRoute(direct) = %q, want direct", got)
		}
		if got := client.EffectiveRoute(RouteProxy); got != RouteDirect {
			t.Errorf("EffectiveRoute(proxy) = %q, want direct fallback", got)
		}
	})

	t.Run("proxy configured", func(t *testing.T) {
		cfg := testConfig(t, server.URL)
		cfg.Proxy.Host = "127.0.0.1"
		cfg.Proxy.Port = 9050

		client, err := NewClient(cfg)
		if err != nil {
			t.Fatalf("NewClient() error = %v", err)
		}

		if got := client.EffectiveRoute(RouteDirect); got != RouteDirect {
			t.Errorf("EffectiveRoute(direct) = %q, want direct", got)
		}
		if got := client.EffectiveRoute(RouteProxy); got != RouteProxy {
			t.Errorf("EffectiveRoute(proxy) = %q, want proxy", got)
		}
	})
}

// TestNewClient_ProxyClientBuiltOnce verifies the proxied transport exists
// when configured
func TestNewClient_ProxyClientBuiltOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	cfg := testConfig(t, server.URL)
	cfg.Proxy.Host = "127.0.0.1"
	cfg.Proxy.Port = 9050
	cfg.Proxy.Username = "user"
	cfg.Proxy.Password = "pass"

	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	if client.proxied == nil {
		t.Error("proxied http.Client should be constructed at startup")
	}
	if client.proxied == client.direct {
		t.Error("proxied and direct transports must be distinct")
	}
}

// TestStatusLabel verifies outcome classification for metrics
func TestStatusLabel(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"success", nil, "ok"},
		{"timeout", ErrTimeout, "timeout"},
		{"unreachable", ErrUnreachable, "unreachable"},
		{"remote error", &RemoteError{Code: -32100, Message: "busy"}, "remote_error"},
		{"protocol error", &ProtocolError{Status: 500, Detail: "boom"}, "protocol_error"},
		{"other", errors.New("weird"), "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := statusLabel(tt.err); got != tt.expected {
				t.Errorf("statusLabel() = %q, want %q", got, tt.expected)
			}
		})
	}
}
