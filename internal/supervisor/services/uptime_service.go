// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package services

import (
	"context"
	"time"

	"github.com/tomtom215/baton/internal/metrics"
)

// UptimeService keeps the app_uptime_seconds gauge current so scrapes see
// a live value instead of whatever was set at startup.
type UptimeService struct {
	startTime time.Time
	interval  time.Duration
	name      string
}

// NewUptimeService creates an uptime reporter ticking at the given interval.
// An interval of zero or less falls back to 15 seconds.
func NewUptimeService(startTime time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{
		startTime: startTime,
		interval:  interval,
		name:      "uptime-reporter",
	}
}

// Serve implements suture.Service. The gauge is set once up front and then
// on every tick until the context is canceled.
func (u *UptimeService) Serve(ctx context.Context) error {
	metrics.SetUptime(u.startTime)

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			metrics.SetUptime(u.startTime)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// String implements fmt.Stringer for logging.
func (u *UptimeService) String() string {
	return u.name
}
