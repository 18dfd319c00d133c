// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package tools

import (
	"bytes"

	"github.com/goccy/go-json"

	"github.com/tomtom215/baton/internal/kodi"
	"github.com/tomtom215/baton/internal/validation"
)

// normalizer lets an argument struct clean itself up between decoding
// and validation. Trimming happens here so a whitespace-only required
// string still fails the required check.
type normalizer interface {
	normalize()
}

// decodeArgs unmarshals raw invocation arguments into a typed argument
// struct and validates it. Unknown keys are rejected: the command table
// is closed and a misspelled optional argument should fail loudly, not
// be silently ignored.
func decodeArgs[T any](raw json.RawMessage) (*T, error) {
	args := new(T)

	if len(raw) > 0 && string(raw) != "null" {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(args); err != nil {
			return nil, &ArgumentError{Detail: err.Error()}
		}
	}

	if n, ok := any(args).(normalizer); ok {
		n.normalize()
	}

	if verr := validation.ValidateStruct(args); verr != nil {
		return nil, argumentFailure(verr)
	}
	return args, nil
}

// argumentFailure converts a validation failure into the invocation
// error taxonomy. A failed required check is a MissingArgumentError
// naming the argument; everything else is an ArgumentError.
func argumentFailure(verr *validation.RequestValidationError) error {
	first := verr.Errors()[0]
	if first.Tag() == "required" {
		return &MissingArgumentError{Name: first.Field()}
	}
	return &ArgumentError{Detail: verr.Error()}
}

// routeFor maps the per-invocation proxy flag to a transport route.
func routeFor(useProxy bool) kodi.Route {
	if useProxy {
		return kodi.RouteProxy
	}
	return kodi.RouteDirect
}
