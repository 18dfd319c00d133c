// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package kodi

import (
	"errors"
	"fmt"
)

// Transport failures fall into a closed taxonomy so callers can branch with
// errors.Is/errors.As instead of inspecting message text.
var (
	// ErrTimeout reports that the media center did not answer within the
	// configured deadline.
	ErrTimeout = errors.New("media center request timed out")

	// ErrUnreachable reports that the media center could not be contacted
	// at all (connection refused, DNS failure, no route).
	ErrUnreachable = errors.New("media center unreachable")
)

// RemoteError carries the media center's own structured complaint from the
// JSON-RPC error member. It is distinct from transport failures so the
// remote system's message can be reported verbatim.
type RemoteError struct {
	Code    int
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("media center error %d: %s", e.Code, e.Message)
}

// ProtocolError reports a response that was not a valid JSON-RPC exchange:
// a non-2xx HTTP status or a body that does not parse as an envelope.
type ProtocolError struct {
	Status int
	Detail string
}

func (e *ProtocolError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("protocol error (HTTP %d): %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("protocol error: %s", e.Detail)
}

// DecodeError reports a catalog record that is missing a required field.
// Optional fields are defaulted during decoding and never produce this.
type DecodeError struct {
	Entity string
	Field  string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("malformed %s record: missing %s", e.Entity, e.Field)
}
