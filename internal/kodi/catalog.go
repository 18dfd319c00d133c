// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package kodi

import (
	"context"

	"github.com/tomtom215/baton/internal/models"
)

// Canonical field projections requested per entity kind. Callers may pass
// an explicit list instead; nil means the canonical set.
var (
	MovieProperties         = []string{"title", "year", "file", "genre", "rating", "runtime", "plot", "director"}
	ShowProperties          = []string{"title", "year", "genre", "rating", "plot", "episode", "season"}
	EpisodeProperties       = []string{"title", "season", "episode", "file", "tvshowid", "showtitle", "plot", "rating"}
	RecentMovieProperties   = []string{"title", "year", "file", "genre", "dateadded"}
	RecentEpisodeProperties = []string{"title", "season", "episode", "showtitle", "file", "dateadded"}
)

// Catalog provides typed access to the media center's library and players.
// Read operations return fully-decoded entities with defaults applied.
// Command operations return acknowledgment only.
//
// All operations delegate to the transport and surface its failures
// unchanged. The route parameter selects the network path per call, in the
// same position the transport expects it.
type Catalog interface {
	Movies(ctx context.Context, properties []string, route Route) ([]models.Movie, error)
	Shows(ctx context.Context, properties []string, route Route) ([]models.Show, error)
	Episodes(ctx context.Context, showID int, season *int, properties []string, route Route) ([]models.Episode, error)
	RecentMovies(ctx context.Context, limit int, route Route) ([]models.RecentMovie, error)
	RecentEpisodes(ctx context.Context, limit int, route Route) ([]models.RecentEpisode, error)
	ActivePlayers(ctx context.Context, route Route) ([]models.Player, error)
	OpenMovie(ctx context.Context, movieID int, route Route) error
	OpenEpisode(ctx context.Context, episodeID int, route Route) error
	PausePlayer(ctx context.Context, playerID int, route Route) error
	StopPlayer(ctx context.Context, playerID int, route Route) error
	Scan(ctx context.Context, directory string, route Route) error
	Clean(ctx context.Context, route Route) error
	Ping(ctx context.Context, route Route) error
}

// Parameter shapes are closed static structs, one per call family. The
// remote schema is stable; building maps per call would hide typos from
// the compiler.

type sortSpec struct {
	Method string `json:"method"`
	Order  string `json:"order"`
}

type limitsSpec struct {
	End int `json:"end"`
}

type libraryParams struct {
	Properties []string    `json:"properties"`
	Sort       sortSpec    `json:"sort"`
	Limits     *limitsSpec `json:"limits,omitempty"`
}

type episodesParams struct {
	ShowID     int      `json:"tvshowid"`
	Season     *int     `json:"season,omitempty"`
	Properties []string `json:"properties"`
	Sort       sortSpec `json:"sort"`
}

type playerItem struct {
	MovieID   *int `json:"movieid,omitempty"`
	EpisodeID *int `json:"episodeid,omitempty"`
}

type openParams struct {
	Item playerItem `json:"item"`
}

type playerParams struct {
	PlayerID int `json:"playerid"`
}

type scanParams struct {
	Directory string `json:"directory"`
}

var (
	sortByTitle     = sortSpec{Method: "title", Order: "ascending"}
	sortByEpisode   = sortSpec{Method: "episode", Order: "ascending"}
	sortByDateAdded = sortSpec{Method: "dateadded", Order: "descending"}
)

// Library implements Catalog on top of a transport Caller.
type Library struct {
	caller Caller
}

// Interface compliance check
var _ Catalog = (*Library)(nil)

// NewLibrary creates a catalog accessor bound to the given transport.
func NewLibrary(caller Caller) *Library {
	return &Library{caller: caller}
}

// Movies fetches every movie in the library, sorted by title ascending.
func (l *Library) Movies(ctx context.Context, properties []string, route Route) ([]models.Movie, error) {
	if properties == nil {
		properties = MovieProperties
	}
	raw, err := l.caller.Call(ctx, "VideoLibrary.GetMovies", libraryParams{
		Properties: properties,
		Sort:       sortByTitle,
	}, route)
	if err != nil {
		return nil, err
	}
	return decodeMovies(raw)
}

// Shows fetches every TV show in the library, sorted by title ascending.
func (l *Library) Shows(ctx context.Context, properties []string, route Route) ([]models.Show, error) {
	if properties == nil {
		properties = ShowProperties
	}
	raw, err := l.caller.Call(ctx, "VideoLibrary.GetTVShows", libraryParams{
		Properties: properties,
		Sort:       sortByTitle,
	}, route)
	if err != nil {
		return nil, err
	}
	return decodeShows(raw)
}

// Episodes fetches one show's episodes, sorted by episode number ascending.
// A non-nil season restricts the fetch to that season.
func (l *Library) Episodes(ctx context.Context, showID int, season *int, properties []string, route Route) ([]models.Episode, error) {
	if properties == nil {
		properties = EpisodeProperties
	}
	raw, err := l.caller.Call(ctx, "VideoLibrary.GetEpisodes", episodesParams{
		ShowID:     showID,
		Season:     season,
		Properties: properties,
		Sort:       sortByEpisode,
	}, route)
	if err != nil {
		return nil, err
	}
	return decodeEpisodes(raw)
}

// RecentMovies fetches up to limit recently-added movies, newest first.
func (l *Library) RecentMovies(ctx context.Context, limit int, route Route) ([]models.RecentMovie, error) {
	raw, err := l.caller.Call(ctx, "VideoLibrary.GetRecentlyAddedMovies", libraryParams{
		Properties: RecentMovieProperties,
		Sort:       sortByDateAdded,
		Limits:     &limitsSpec{End: limit},
	}, route)
	if err != nil {
		return nil, err
	}
	return decodeRecentMovies(raw)
}

// RecentEpisodes fetches up to limit recently-added episodes, newest first.
func (l *Library) RecentEpisodes(ctx context.Context, limit int, route Route) ([]models.RecentEpisode, error) {
	raw, err := l.caller.Call(ctx, "VideoLibrary.GetRecentlyAddedEpisodes", libraryParams{
		Properties: RecentEpisodeProperties,
		Sort:       sortByDateAdded,
		Limits:     &limitsSpec{End: limit},
	}, route)
	if err != nil {
		return nil, err
	}
	return decodeRecentEpisodes(raw)
}

// ActivePlayers lists the currently active playback sessions.
func (l *Library) ActivePlayers(ctx context.Context, route Route) ([]models.Player, error) {
	raw, err := l.caller.Call(ctx, "Player.GetActivePlayers", nil, route)
	if err != nil {
		return nil, err
	}
	return decodePlayers(raw)
}

// OpenMovie starts playback of a movie by catalog id.
func (l *Library) OpenMovie(ctx context.Context, movieID int, route Route) error {
	_, err := l.caller.Call(ctx, "Player.Open", openParams{
		Item: playerItem{MovieID: &movieID},
	}, route)
	return err
}

// OpenEpisode starts playback of an episode by catalog id.
func (l *Library) OpenEpisode(ctx context.Context, episodeID int, route Route) error {
	_, err := l.caller.Call(ctx, "Player.Open", openParams{
		Item: playerItem{EpisodeID: &episodeID},
	}, route)
	return err
}

// PausePlayer toggles pause on the given player.
func (l *Library) PausePlayer(ctx context.Context, playerID int, route Route) error {
	_, err := l.caller.Call(ctx, "Player.PlayPause", playerParams{PlayerID: playerID}, route)
	return err
}

// StopPlayer stops playback on the given player.
func (l *Library) StopPlayer(ctx context.Context, playerID int, route Route) error {
	_, err := l.caller.Call(ctx, "Player.Stop", playerParams{PlayerID: playerID}, route)
	return err
}

// Scan triggers a library scan. An empty directory scans everything.
func (l *Library) Scan(ctx context.Context, directory string, route Route) error {
	var params interface{}
	if directory != "" {
		params = scanParams{Directory: directory}
	}
	_, err := l.caller.Call(ctx, "VideoLibrary.Scan", params, route)
	return err
}

// Clean removes library entries whose files no longer exist.
func (l *Library) Clean(ctx context.Context, route Route) error {
	_, err := l.caller.Call(ctx, "VideoLibrary.Clean", nil, route)
	return err
}

// Ping verifies connectivity to the media center's RPC endpoint.
func (l *Library) Ping(ctx context.Context, route Route) error {
	_, err := l.caller.Call(ctx, "JSONRPC.Ping", nil, route)
	return err
}
