// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// histogramSampleCount extracts the observation count from a histogram child.
// testutil.ToFloat64 only handles counters and gauges.
func histogramSampleCount(t *testing.T, vec *prometheus.HistogramVec, labels ...string) uint64 {
	t.Helper()

	obs, err := vec.GetMetricWithLabelValues(labels...)
	if err != nil {
		t.Fatalf("failed to get histogram: %v", err)
	}
	var m io_prometheus_client.Metric
	if err := obs.(prometheus.Metric).Write(&m); err != nil {
		t.Fatalf("failed to write metric: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

// TestRecordRPCRequest tests RPC metric recording
func TestRecordRPCRequest(t *testing.T) {
	tests := []struct {
		name     string
		method   string
		route    string
		status   string
		duration time.Duration
	}{
		{
			name:     "successful movie fetch",
			method:   "VideoLibrary.GetMovies",
			route:    "direct",
			status:   "ok",
			duration: 50 * time.Millisecond,
		},
		{
			name:     "proxied show fetch",
			method:   "VideoLibrary.GetTVShows",
			route:    "proxy",
			status:   "ok",
			duration: 200 * time.Millisecond,
		},
		{
			name:     "remote error on play",
			method:   "Player.Open",
			route:    "direct",
			status:   "remote_error",
			duration: 10 * time.Millisecond,
		},
		{
			name:     "timeout",
			method:   "VideoLibrary.GetEpisodes",
			route:    "direct",
			status:   "timeout",
			duration: 30 * time.Second,
		},
		{
			name:     "unreachable host",
			method:   "JSONRPC.Ping",
			route:    "direct",
			status:   "unreachable",
			duration: time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := histogramSampleCount(t, RPCDuration, tt.method, tt.route)

			RecordRPCRequest(tt.method, tt.route, tt.status, tt.duration)

			if got := histogramSampleCount(t, RPCDuration, tt.method, tt.route); got != before+1 {
				t.Errorf("RPCDuration sample count = %d, want %d", got, before+1)
			}
			if got := testutil.ToFloat64(RPCRequestsTotal.WithLabelValues(tt.method, tt.route, tt.status)); got < 1 {
				t.Errorf("RPCRequestsTotal = %v, want >= 1", got)
			}
		})
	}
}

// TestRecordResolution tests resolution outcome recording
func TestRecordResolution(t *testing.T) {
	kinds := []string{"movie", "show", "episode"}
	outcomes := []string{"found", "ambiguous", "not_found"}

	for _, kind := range kinds {
		for _, outcome := range outcomes {
			RecordResolution(kind, outcome)
		}
	}

	// Each kind/outcome pair was recorded at least once
	if got := testutil.ToFloat64(ResolutionsTotal.WithLabelValues("movie", "ambiguous")); got < 1 {
		t.Errorf("ResolutionsTotal(movie, ambiguous) = %v, want >= 1", got)
	}
}

// TestRecordInvocation tests command invocation recording
func TestRecordInvocation(t *testing.T) {
	tests := []struct {
		name     string
		command  string
		status   string
		duration time.Duration
	}{
		{"play movie ok", "play-movie", "ok", 120 * time.Millisecond},
		{"play movie ambiguous", "play-movie", "ambiguous", 80 * time.Millisecond},
		{"episode not found", "play-episode", "not_found", 150 * time.Millisecond},
		{"stats ok", "library-stats", "ok", 400 * time.Millisecond},
		{"control error", "control-playback", "error", 5 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := histogramSampleCount(t, CommandDuration, tt.command)

			RecordInvocation(tt.command, tt.status, tt.duration)

			if got := histogramSampleCount(t, CommandDuration, tt.command); got != before+1 {
				t.Errorf("CommandDuration sample count = %d, want %d", got, before+1)
			}
		})
	}
}

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	RecordAPIRequest("GET", "/api/v1/commands", "200", 5*time.Millisecond)
	RecordAPIRequest("POST", "/api/v1/commands/play-movie", "200", 150*time.Millisecond)
	RecordAPIRequest("POST", "/api/v1/commands/unknown", "404", time.Millisecond)
}

// TestTrackActiveRequest verifies gauge increments and decrements
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("APIActiveRequests after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("APIActiveRequests after dec = %v, want %v", got, before)
	}
}

// TestTrackActiveRequest_Concurrent verifies the gauge balances under concurrency
func TestTrackActiveRequest_Concurrent(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			TrackActiveRequest(true)
			TrackActiveRequest(false)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("APIActiveRequests after balanced ops = %v, want %v", got, before)
	}
}

// TestCircuitBreakerMetrics tests breaker metric recording
func TestCircuitBreakerMetrics(t *testing.T) {
	SetCircuitBreakerState("kodi", 0)
	RecordCircuitBreakerRequest("kodi", "success")
	RecordCircuitBreakerRequest("kodi", "failure")
	RecordCircuitBreakerRequest("kodi", "rejected")
	RecordCircuitBreakerTransition("kodi", "closed", "open")
	RecordCircuitBreakerTransition("kodi", "open", "half-open")

	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues("kodi")); got != 0 {
		t.Errorf("CircuitBreakerState(kodi) = %v, want 0", got)
	}
}

// TestSetAppInfo tests app info gauge
func TestSetAppInfo(t *testing.T) {
	SetAppInfo("1.0.0-test", "go1.24")

	if got := testutil.ToFloat64(AppInfo.WithLabelValues("1.0.0-test", "go1.24")); got != 1 {
		t.Errorf("AppInfo = %v, want 1", got)
	}
}

// TestSetUptime tests uptime gauge updates
func TestSetUptime(t *testing.T) {
	SetUptime(time.Now().Add(-10 * time.Second))

	if got := testutil.ToFloat64(AppUptime); got < 10 {
		t.Errorf("AppUptime = %v, want >= 10", got)
	}
}

// TestMetricGathering tests that metrics can be gathered using testutil
func TestMetricGathering(t *testing.T) {
	RecordRPCRequest("JSONRPC.Ping", "direct", "ok", time.Millisecond)
	RecordAPIRequest("GET", "/test", "200", time.Millisecond)

	// Verify we can lint the metrics (checks for consistency issues)
	problems, err := testutil.GatherAndLint(prometheus.DefaultGatherer)
	if err != nil {
		t.Logf("Lint errors (may be expected): %v", err)
	}
	for _, p := range problems {
		t.Logf("Metric lint problem: %s", p.Text)
	}
}

func BenchmarkRecordRPCRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		RecordRPCRequest("VideoLibrary.GetMovies", "direct", "ok", 50*time.Millisecond)
	}
}

func BenchmarkTrackActiveRequest(b *testing.B) {
	for i := 0; i < b.N; i++ {
		TrackActiveRequest(true)
		TrackActiveRequest(false)
	}
}
