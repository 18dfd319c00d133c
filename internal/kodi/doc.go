// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

/*
Package kodi talks JSON-RPC v2 to a Kodi media center over HTTP.

The package splits into two layers with one interface between each pair:

	Catalog  (catalog.go)   typed library reads and player commands
	   |
	Caller   (client.go)    one POST per JSON-RPC call, route selection
	   |
	Kodi JSON-RPC endpoint

Catalog is what the rest of the application programs against: it returns
decoded model structs and acknowledgments, never raw JSON. Caller is the
transport seam; Client implements it for production and tests substitute
their own. NewBreakerCaller (breaker.go) wraps any Caller with a circuit
breaker without either side knowing.

# Routes

Every call carries a Route selecting its network path. RouteDirect
connects straight to the media center; RouteProxy tunnels through the
configured SOCKS5 proxy. Both http.Clients are built once at
construction. Requesting the proxy route when no proxy is configured
degrades to direct rather than failing.

# Error Taxonomy

Transport failures classify into a closed set (errors.go):

  - ErrTimeout: the call exceeded its deadline
  - ErrUnreachable: connection refused, DNS failure, or similar
  - *RemoteError: the media center answered with a JSON-RPC error member
  - *ProtocolError: a non-2xx status or an unparseable envelope

Sentinels match with errors.Is, the structured kinds with errors.As. A
cancelled caller context propagates unwrapped so cancellation never
masquerades as a media center fault.

# Decoding

Kodi omits fields it has no value for and its numeric fields arrive as
JSON numbers of either flavor. decode.go absorbs both: every record
decodes through a permissive raw struct and lands in a model struct with
defaults applied, so downstream code never sees a partially-populated
entity.
*/
package kodi
