// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package config

import (
	"fmt"
)

// Validate checks the configuration for errors. Error messages name the
// environment variable that controls the offending value.
func (c *Config) Validate() error {
	if err := c.validateKodi(); err != nil {
		return err
	}
	if err := c.validateProxy(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateKodi() error {
	if c.Kodi.Host == "" {
		return fmt.Errorf("KODI_HOST is required")
	}
	if c.Kodi.Port < 1 || c.Kodi.Port > 65535 {
		return fmt.Errorf("KODI_PORT must be between 1 and 65535, got %d", c.Kodi.Port)
	}
	if c.Kodi.Timeout <= 0 {
		return fmt.Errorf("KODI_TIMEOUT must be positive, got %v", c.Kodi.Timeout)
	}
	return nil
}

func (c *Config) validateProxy() error {
	if !c.Proxy.Enabled() {
		return nil
	}
	if c.Proxy.Port < 1 || c.Proxy.Port > 65535 {
		return fmt.Errorf("SOCKS5_PORT must be between 1 and 65535, got %d", c.Proxy.Port)
	}
	// Credentials are optional but must come as a pair.
	if (c.Proxy.Username == "") != (c.Proxy.Password == "") {
		return fmt.Errorf("SOCKS5_USERNAME and SOCKS5_PASSWORD must be set together")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, fatal, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
