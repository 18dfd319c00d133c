// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

// Package config provides layered configuration for Baton.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in sensible defaults for all optional settings
//  2. Config File: optional YAML file (config.yaml) for persistent settings
//  3. Environment Variables: override any setting
//
// The media center connection uses the KODI_* variable family and the proxy
// route the SOCKS5_* family, matching the deployment conventions of the
// upstream media center ecosystem.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("failed to load config:", err)
//	}
//	client, err := kodi.NewClient(cfg)
//
// Config is immutable after Load() and safe for concurrent reads.
package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from environment
// variables and an optional config file.
type Config struct {
	Kodi     KodiConfig     `koanf:"kodi"`
	Proxy    ProxyConfig    `koanf:"proxy"`
	Breaker  BreakerConfig  `koanf:"breaker"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// KodiConfig holds the media center JSON-RPC connection settings.
//
// Environment Variables:
//   - KODI_HOST: media center host (default: localhost)
//   - KODI_PORT: media center HTTP port (default: 8080)
//   - KODI_USERNAME / KODI_PASSWORD: basic auth credentials (optional)
//   - KODI_USE_HTTPS: use https scheme (default: false)
//   - KODI_TIMEOUT: per-call timeout as a duration string (default: 30s)
type KodiConfig struct {
	Host     string        `koanf:"host"`
	Port     int           `koanf:"port"`
	Username string        `koanf:"username"`
	Password string        `koanf:"password"`
	UseHTTPS bool          `koanf:"use_https"`
	Timeout  time.Duration `koanf:"timeout"`
}

// BaseURL returns the JSON-RPC endpoint URL for the configured media center.
func (c KodiConfig) BaseURL() string {
	scheme := "http"
	if c.UseHTTPS {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s:%d/jsonrpc", scheme, c.Host, c.Port)
}

// HasCredentials reports whether basic auth credentials are configured.
func (c KodiConfig) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}

// ProxyConfig holds the SOCKS5 proxy settings for the alternate transport
// route. The proxy is optional; when no host is configured, requests for the
// proxied route fall back to the direct path.
//
// Environment Variables:
//   - SOCKS5_HOST: proxy host (empty disables the proxy route)
//   - SOCKS5_PORT: proxy port (default: 1080)
//   - SOCKS5_USERNAME / SOCKS5_PASSWORD: proxy credentials (optional)
type ProxyConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

// Enabled reports whether a proxy endpoint is configured.
func (c ProxyConfig) Enabled() bool {
	return c.Host != ""
}

// Addr returns the proxy endpoint in host:port form.
func (c ProxyConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BreakerConfig controls the optional circuit breaker wrapped around the
// transport at process start. The engine itself never retries or breaks;
// this is the external resilience layer.
//
// Environment Variables:
//   - BREAKER_ENABLED: enable the circuit breaker (default: false)
type BreakerConfig struct {
	Enabled bool `koanf:"enabled"`
}

// ServerConfig holds HTTP server settings for the tool invocation surface.
//
// Environment Variables:
//   - HTTP_HOST: listen host (default: 0.0.0.0)
//   - HTTP_PORT: listen port (default: 2866)
//   - HTTP_TIMEOUT: read/write timeout (default: 30s)
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// SecurityConfig holds rate limiting and CORS settings.
//
// Environment Variables:
//   - RATE_LIMIT_REQUESTS: requests per window (default: 100)
//   - RATE_LIMIT_WINDOW: window duration (default: 1m)
//   - DISABLE_RATE_LIMIT: disable rate limiting entirely (default: false)
//   - CORS_ORIGINS: comma-separated allowed origins (default: *)
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}
