// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

// Package models provides data structures shared across the application:
// media entities decoded from the media center, API response envelopes,
// and library statistics.
package models

// Movie represents a movie record from the media center library.
// JSON field names mirror the Kodi wire format so API responses stay
// recognizable to operators familiar with the upstream schema.
type Movie struct {
	MovieID   int      `json:"movieid"`
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	File      string   `json:"file"`
	Genres    []string `json:"genre"`
	Rating    float64  `json:"rating"`
	Runtime   int      `json:"runtime"`
	Plot      string   `json:"plot"`
	Directors []string `json:"director"`
}

// Show represents a TV show record. Episode and Season carry the
// library's per-show totals, not an episode position.
type Show struct {
	ShowID   int      `json:"tvshowid"`
	Title    string   `json:"title"`
	Year     int      `json:"year"`
	Genres   []string `json:"genre"`
	Rating   float64  `json:"rating"`
	Plot     string   `json:"plot"`
	Episodes int      `json:"episode"`
	Seasons  int      `json:"season"`
}

// Episode represents a single episode record within a show.
type Episode struct {
	EpisodeID int     `json:"episodeid"`
	ShowID    int     `json:"tvshowid"`
	Title     string  `json:"title"`
	Season    int     `json:"season"`
	Episode   int     `json:"episode"`
	File      string  `json:"file"`
	ShowTitle string  `json:"showtitle"`
	Plot      string  `json:"plot"`
	Rating    float64 `json:"rating"`
}

// RecentMovie represents a movie in the recently-added listing.
// Recent listings use a narrower projection than full library fetches.
type RecentMovie struct {
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	File      string   `json:"file"`
	Genres    []string `json:"genre"`
	DateAdded string   `json:"dateadded"`
}

// RecentEpisode represents an episode in the recently-added listing.
type RecentEpisode struct {
	Title     string `json:"title"`
	Season    int    `json:"season"`
	Episode   int    `json:"episode"`
	ShowTitle string `json:"showtitle"`
	File      string `json:"file"`
	DateAdded string `json:"dateadded"`
}

// Player represents an active playback session on the media center.
type Player struct {
	PlayerID int    `json:"playerid"`
	Type     string `json:"type"`
}
