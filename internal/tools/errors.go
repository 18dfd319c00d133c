// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package tools

import "fmt"

// UnknownOperationError reports an invocation name outside the command
// table.
type UnknownOperationError struct {
	Name string
}

func (e *UnknownOperationError) Error() string {
	return fmt.Sprintf("unknown operation %q", e.Name)
}

// MissingArgumentError reports a required argument that is absent or
// empty. It is raised before any network call, so a rejected invocation
// has no partial side effects.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument %q", e.Name)
}

// ArgumentError reports arguments that decode or validate badly: an
// unknown key, a wrong type, or a value outside its allowed set.
type ArgumentError struct {
	Detail string
}

func (e *ArgumentError) Error() string {
	return "invalid arguments: " + e.Detail
}
