// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

/*
Package main is the entry point for the Baton server.

Baton exposes a Kodi media center as a small set of high-level commands.
Callers name what they want ("play Heat", "is Aliens in the library") and
Baton resolves titles against the remote catalog over JSON-RPC, handles
ambiguity, and sequences the dependent remote calls.

# Application Architecture

The server runs under Suture v4 process supervision:

	RootSupervisor ("baton")
	├── APISupervisor ("api-layer")
	│   └── HTTP Server (tool invocation, health, metrics)
	└── TelemetrySupervisor ("telemetry-layer")
	    └── Uptime reporter

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Kodi client: JSON-RPC transport, optional SOCKS5 route, optional circuit breaker
 4. Resolver and command registry
 5. Supervisor tree and HTTP server

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
  - Environment variables
  - Config file (config.yaml)
  - Built-in defaults

Key environment variables:

	KODI_HOST / KODI_PORT            media center JSON-RPC endpoint
	KODI_USERNAME / KODI_PASSWORD    basic auth credentials (optional)
	SOCKS5_HOST / SOCKS5_PORT        proxy for use_proxy invocations (optional)
	BREAKER_ENABLED                  circuit breaker around the transport
	HTTP_HOST / HTTP_PORT            listen address (default 0.0.0.0:2866)
	LOG_LEVEL / LOG_FORMAT           zerolog settings

# Signal Handling

The server handles graceful shutdown on SIGINT and SIGTERM:
  - Stops accepting new connections
  - Waits for in-flight requests to complete (10s timeout)
  - Reports any services that failed to stop in time

# Example Usage

Minimal setup against a local media center:

	export KODI_HOST=localhost
	export KODI_PORT=8080
	./baton

With credentials and a SOCKS5 proxy available to use_proxy calls:

	export KODI_HOST=htpc.lan
	export KODI_USERNAME=kodi
	export KODI_PASSWORD=secret
	export SOCKS5_HOST=127.0.0.1
	export SOCKS5_PORT=1080
	./baton
*/
package main
