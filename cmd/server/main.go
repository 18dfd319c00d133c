// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/baton/internal/api"
	"github.com/tomtom215/baton/internal/config"
	"github.com/tomtom215/baton/internal/kodi"
	"github.com/tomtom215/baton/internal/logging"
	"github.com/tomtom215/baton/internal/metrics"
	"github.com/tomtom215/baton/internal/resolve"
	"github.com/tomtom215/baton/internal/supervisor"
	"github.com/tomtom215/baton/internal/supervisor/services"
	"github.com/tomtom215/baton/internal/tools"
)

const version = "1.0.0"

func main() {
	startTime := time.Now()

	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().Str("version", version).Msg("Starting Baton with supervisor tree")
	logging.Info().
		Str("kodi_endpoint", cfg.Kodi.BaseURL()).
		Bool("proxy_enabled", cfg.Proxy.Enabled()).
		Bool("breaker_enabled", cfg.Breaker.Enabled).
		Msg("Configuration loaded")

	// Build the JSON-RPC transport. The client carries both the direct
	// HTTP path and, when configured, the SOCKS5 path for use_proxy calls.
	client, err := kodi.NewClient(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build media center client")
	}

	var caller kodi.Caller = client
	if cfg.Breaker.Enabled {
		caller = kodi.NewBreakerCaller(client)
		logging.Info().Msg("Circuit breaker enabled around the media center transport")
	}

	library := kodi.NewLibrary(caller)

	// Probe connectivity once at startup. A miss is not fatal; the
	// readiness probe keeps reporting the live state.
	probeCtx, probeCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := library.Ping(probeCtx, kodi.RouteDirect); err != nil {
		logging.Warn().Err(err).Msg("Media center not reachable at startup (will keep serving)")
	} else {
		logging.Info().Msg("Connected to media center")
	}
	probeCancel()

	registry := tools.NewRegistry(resolve.New(library), library)
	router := api.NewRouter(registry, library, cfg, version)

	metrics.SetAppInfo(version, runtime.Version())

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bridge zerolog to slog for sutureslog compatibility
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Handler(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	tree.AddTelemetryService(services.NewUptimeService(startTime, 15*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// Wait for supervisor to finish (either from signal or error)
	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Wait for the error channel to close (supervisor finished)
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	// Report any services that failed to stop within timeout
	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
