// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

// Package supervisor provides Suture-based process supervision for Baton.
//
// The process runs under a small supervisor tree:
//
//	baton (root)
//	├── api-layer        HTTP server
//	└── telemetry-layer  uptime reporter
//
// Suture restarts a crashed service with exponential backoff and gives up
// only when the failure threshold is exceeded, in which case the layer backs
// off and tries again. Supervisor events are logged through sutureslog,
// which writes into the global zerolog logger via the logging package's
// slog adapter:
//
//	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to build supervisor tree")
//	}
//	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
//	tree.AddTelemetryService(services.NewUptimeService(start, 0))
//	err = tree.Serve(ctx)
//
// Serve blocks until the context is canceled, then shuts the layers down
// within the configured timeout.
package supervisor
