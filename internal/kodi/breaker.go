// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package kodi

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/baton/internal/logging"
	"github.com/tomtom215/baton/internal/metrics"
)

// BreakerCaller wraps a Caller with the circuit breaker pattern to stop
// hammering a media center that is down or drowning. The transport itself
// never retries; this wrapper only decides whether a call may be attempted.
//
// DETERMINISM NOTE: The circuit breaker uses real time (via sony/gobreaker)
// for its interval and timeout calculations. This is intentional for
// production resilience:
// - The timing determines when to recover from failures, not data integrity
// - Tests should exercise the wrapped Caller directly, or drive the breaker
//   through its counting behavior rather than waiting on wall-clock recovery
type BreakerCaller struct {
	caller Caller
	cb     *gobreaker.CircuitBreaker[json.RawMessage]
	name   string
}

// Interface compliance check
var _ Caller = (*BreakerCaller)(nil)

// NewBreakerCaller wraps the given transport with a circuit breaker.
// Circuit breaker configuration:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
//
// A RemoteError counts as success: the remote system answered, and its own
// complaint is no evidence the transport is unhealthy.
func NewBreakerCaller(caller Caller) *BreakerCaller {
	cbName := "kodi-rpc"

	// Initialize circuit breaker state metrics
	metrics.SetCircuitBreakerState(cbName, 0) // 0 = closed

	cb := gobreaker.NewCircuitBreaker[json.RawMessage](gobreaker.Settings{
		Name:        cbName,
		MaxRequests: 3,               // Allow 3 concurrent requests in half-open state
		Interval:    time.Minute,     // Reset counts after 1 minute in closed state
		Timeout:     2 * time.Minute, // Wait 2 minutes before transitioning from open to half-open

		// ReadyToTrip determines when to open the circuit
		// Opens when failure rate >= 60% with minimum 10 requests
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false // Need at least 10 requests for statistical significance
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6

			if shouldTrip {
				logging.Warn().Uint32("failures", counts.TotalFailures).Float64("failure_rate", failureRatio*100).Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		// OnStateChange is called whenever the circuit breaker changes state
		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.SetCircuitBreakerState(name, stateToFloat(to))
			metrics.RecordCircuitBreakerTransition(name, fromStr, toStr)
		},

		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var remoteErr *RemoteError
			return errors.As(err, &remoteErr)
		},
	})

	return &BreakerCaller{
		caller: caller,
		cb:     cb,
		name:   cbName,
	}
}

// Call issues the wrapped transport call under breaker protection. A
// rejected call (open circuit, half-open overflow) surfaces as
// ErrUnreachable so callers stay inside the transport error taxonomy.
func (b *BreakerCaller) Call(ctx context.Context, method string, params interface{}, route Route) (json.RawMessage, error) {
	result, err := b.cb.Execute(func() (json.RawMessage, error) {
		return b.caller.Call(ctx, method, params, route)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordCircuitBreakerRequest(b.name, "rejected")
			logging.Ctx(ctx).Warn().Err(err).Str("method", method).Msg("[CIRCUIT BREAKER] Request rejected")
			return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
		}

		metrics.RecordCircuitBreakerRequest(b.name, "failure")
		return nil, err
	}

	metrics.RecordCircuitBreakerRequest(b.name, "success")
	return result, nil
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
