// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/baton/internal/config"
	"github.com/tomtom215/baton/internal/kodi"
	"github.com/tomtom215/baton/internal/metrics"
	"github.com/tomtom215/baton/internal/middleware"
	"github.com/tomtom215/baton/internal/tools"
)

// Router wires the HTTP surface over the command registry. The catalog
// is held separately for the readiness probe, which pings the media
// center without going through an operation.
type Router struct {
	registry  *tools.Registry
	catalog   kodi.Catalog
	cfg       *config.Config
	version   string
	startTime time.Time
}

// NewRouter creates a router over the given registry and catalog.
func NewRouter(registry *tools.Registry, catalog kodi.Catalog, cfg *config.Config, version string) *Router {
	return &Router{
		registry:  registry,
		catalog:   catalog,
		cfg:       cfg,
		version:   version,
		startTime: time.Now(),
	}
}

// Handler builds the chi route tree with the full middleware stack.
// Health endpoints sit outside the rate limiter so monitoring cannot be
// starved by tool traffic.
func (router *Router) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: router.cfg.Security.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	}))
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/health", func(r chi.Router) {
			r.Get("/live", router.healthLive)
			r.Get("/ready", router.healthReady)
		})

		r.Route("/tools", func(r chi.Router) {
			r.Use(router.rateLimiter())
			r.Get("/", router.listTools)
			r.Post("/{name}", router.invokeTool)
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

// rateLimiter returns the per-IP limiter for the tool routes, or a
// pass-through when rate limiting is disabled.
func (router *Router) rateLimiter() func(http.Handler) http.Handler {
	sec := router.cfg.Security
	if sec.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return httprate.Limit(
		sec.RateLimitReqs,
		sec.RateLimitWindow,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordRateLimitHit("/api/v1/tools")
			respondError(w, http.StatusTooManyRequests, ErrCodeTooManyRequests,
				"Rate limit exceeded, slow down.", nil)
		}),
	)
}
