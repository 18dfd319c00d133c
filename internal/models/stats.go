// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package models

// LibraryStats represents aggregate library statistics.
// TotalEpisodes is the sum of per-show episode counts, so it stays
// consistent with the show listing even when episodes are unscanned.
type LibraryStats struct {
	TotalMovies    int          `json:"total_movies"`
	TotalShows     int          `json:"total_tv_shows"`
	TotalEpisodes  int          `json:"total_episodes"`
	TopMovieGenres []GenreCount `json:"top_movie_genres"`
	TopShowGenres  []GenreCount `json:"top_tv_genres"`
}

// GenreCount represents one genre's frequency within a library section.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// RecentlyAdded represents the recently-added listing for one or both
// media types. A nil slice means that media type was not requested.
type RecentlyAdded struct {
	Movies   []RecentMovie   `json:"movies,omitempty"`
	Episodes []RecentEpisode `json:"episodes,omitempty"`
}

// HealthStatus represents the health check response
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Route         string  `json:"route"` // "direct" or "proxy"
	KodiConnected bool    `json:"kodi_connected"`
	Uptime        float64 `json:"uptime_seconds"`
}
