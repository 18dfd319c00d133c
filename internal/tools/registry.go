// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

/*
Package tools implements the command dispatcher: a closed table of
invocable operations over the resolver and the catalog.

Dispatch separates two failure planes. The error return covers the
invocation itself being malformed: an unknown operation name, a missing
required argument, or arguments that do not decode or validate. Those
are detected before any network call. Everything that happens after the
arguments are accepted, including resolution misses, ambiguity, and
remote failures, is expressed as a Result so callers can present it
without unwinding.

Handlers hold no state of their own. Every invocation fetches the catalog
fresh and its working set dies with the call, so concurrent invocations
need no locking.
*/
package tools

import (
	"context"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/baton/internal/kodi"
	"github.com/tomtom215/baton/internal/logging"
	"github.com/tomtom215/baton/internal/metrics"
	"github.com/tomtom215/baton/internal/resolve"
)

// Operation names form the closed command table.
const (
	OpSearchMovies      = "search-movies"
	OpSearchTVShows     = "search-tv-shows"
	OpCheckMovieExists  = "check-movie-exists"
	OpCheckTVShowExists = "check-tv-show-exists"
	OpPlayMovie         = "play-movie"
	OpPlayEpisode       = "play-episode"
	OpControlPlayback   = "control-playback"
	OpGetLibraryStats   = "get-library-stats"
	OpGetRecentlyAdded  = "get-recently-added"
	OpUpdateLibrary     = "update-library"
)

// operationOrder fixes the listing order for discovery endpoints.
var operationOrder = []string{
	OpSearchMovies,
	OpSearchTVShows,
	OpCheckMovieExists,
	OpCheckTVShowExists,
	OpPlayMovie,
	OpPlayEpisode,
	OpControlPlayback,
	OpGetLibraryStats,
	OpGetRecentlyAdded,
	OpUpdateLibrary,
}

type handlerFunc func(ctx context.Context, raw json.RawMessage) (Result, error)

type operation struct {
	name        string
	description string
	args        []ArgumentInfo
	handler     handlerFunc
}

// ArgumentInfo describes one argument of an operation for discovery.
// Type uses JSON names: "string", "integer", "boolean".
type ArgumentInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// OperationInfo describes one invocable operation for discovery.
type OperationInfo struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Arguments   []ArgumentInfo `json:"arguments"`
}

// withProxyArg appends the route flag every operation accepts.
func withProxyArg(args ...ArgumentInfo) []ArgumentInfo {
	return append(args, ArgumentInfo{
		Name:        "use_proxy",
		Type:        "boolean",
		Description: "Route this call through the SOCKS5 proxy.",
	})
}

// Registry is the closed dispatch table. It holds the resolver for
// reads that need matching and the catalog for direct reads and
// mutating commands.
type Registry struct {
	resolver *resolve.Resolver
	catalog  kodi.Catalog
	table    map[string]operation
}

// NewRegistry builds the dispatch table over the given collaborators.
func NewRegistry(resolver *resolve.Resolver, catalog kodi.Catalog) *Registry {
	r := &Registry{
		resolver: resolver,
		catalog:  catalog,
	}

	r.table = map[string]operation{
		OpSearchMovies: {
			name:        OpSearchMovies,
			description: "Search movies by title, release year, and genre.",
			args: withProxyArg(
				ArgumentInfo{Name: "title", Type: "string", Description: "Title to match, exact, substring, or fuzzy."},
				ArgumentInfo{Name: "year", Type: "integer", Description: "Exact release year."},
				ArgumentInfo{Name: "genre", Type: "string", Description: "Genre substring, for example \"sci\" matches Sci-Fi."},
			),
			handler: r.searchMovies,
		},
		OpSearchTVShows: {
			name:        OpSearchTVShows,
			description: "Search TV shows by title and genre.",
			args: withProxyArg(
				ArgumentInfo{Name: "title", Type: "string", Description: "Title to match, exact, substring, or fuzzy."},
				ArgumentInfo{Name: "genre", Type: "string", Description: "Genre substring."},
			),
			handler: r.searchTVShows,
		},
		OpCheckMovieExists: {
			name:        OpCheckMovieExists,
			description: "Check whether a movie exists in the library.",
			args: withProxyArg(
				ArgumentInfo{Name: "title", Type: "string", Required: true, Description: "Title to look up."},
				ArgumentInfo{Name: "year", Type: "integer", Description: "Exact release year."},
			),
			handler: r.checkMovieExists,
		},
		OpCheckTVShowExists: {
			name:        OpCheckTVShowExists,
			description: "Check whether a show, season, or episode exists in the library.",
			args: withProxyArg(
				ArgumentInfo{Name: "title", Type: "string", Required: true, Description: "Show title to look up."},
				ArgumentInfo{Name: "season", Type: "integer", Description: "Season number to drill into."},
				ArgumentInfo{Name: "episode", Type: "integer", Description: "Episode number, needs season."},
			),
			handler: r.checkTVShowExists,
		},
		OpPlayMovie: {
			name:        OpPlayMovie,
			description: "Resolve a movie title and start playback.",
			args: withProxyArg(
				ArgumentInfo{Name: "title", Type: "string", Required: true, Description: "Title to resolve and play."},
				ArgumentInfo{Name: "year", Type: "integer", Description: "Release year to disambiguate."},
			),
			handler: r.playMovie,
		},
		OpPlayEpisode: {
			name:        OpPlayEpisode,
			description: "Resolve a show, season, and episode and start playback.",
			args: withProxyArg(
				ArgumentInfo{Name: "show_title", Type: "string", Required: true, Description: "Show title to resolve."},
				ArgumentInfo{Name: "season", Type: "integer", Required: true, Description: "Season number, 0 for specials."},
				ArgumentInfo{Name: "episode", Type: "integer", Required: true, Description: "Episode number within the season."},
			),
			handler: r.playEpisode,
		},
		OpControlPlayback: {
			name:        OpControlPlayback,
			description: "Pause, stop, or report active playback sessions.",
			args: withProxyArg(
				ArgumentInfo{Name: "action", Type: "string", Required: true, Description: "One of pause, stop, status."},
			),
			handler: r.controlPlayback,
		},
		OpGetLibraryStats: {
			name:        OpGetLibraryStats,
			description: "Collect library counts and top genre histograms.",
			args:        withProxyArg(),
			handler:     r.getLibraryStats,
		},
		OpGetRecentlyAdded: {
			name:        OpGetRecentlyAdded,
			description: "List recently added movies and episodes.",
			args: withProxyArg(
				ArgumentInfo{Name: "media_type", Type: "string", Description: "One of movies, episodes, both. Default both."},
				ArgumentInfo{Name: "limit", Type: "integer", Description: "Total items, 1 to 100. Default 20."},
			),
			handler: r.getRecentlyAdded,
		},
		OpUpdateLibrary: {
			name:        OpUpdateLibrary,
			description: "Trigger a library scan or clean.",
			args: withProxyArg(
				ArgumentInfo{Name: "action", Type: "string", Description: "One of scan, clean. Default scan."},
				ArgumentInfo{Name: "directory", Type: "string", Description: "Restrict a scan to one directory."},
			),
			handler: r.updateLibrary,
		},
	}

	return r
}

// Operations lists the command table in its fixed order.
func (r *Registry) Operations() []OperationInfo {
	infos := make([]OperationInfo, 0, len(operationOrder))
	for _, name := range operationOrder {
		op := r.table[name]
		infos = append(infos, OperationInfo{
			Name:        op.name,
			Description: op.description,
			Arguments:   op.args,
		})
	}
	return infos
}

// Dispatch runs one invocation. The returned error is non-nil only for
// invocation-level failures: UnknownOperationError, MissingArgumentError,
// or ArgumentError. Every downstream outcome, including failures of the
// remote system, arrives as a Result.
func (r *Registry) Dispatch(ctx context.Context, name string, rawArgs json.RawMessage) (Result, error) {
	op, ok := r.table[name]
	if !ok {
		metrics.RecordInvocation(name, "error", 0)
		return Result{}, &UnknownOperationError{Name: name}
	}

	start := time.Now()
	result, err := op.handler(ctx, rawArgs)
	duration := time.Since(start)

	if err != nil {
		metrics.RecordInvocation(name, "error", duration)
		logging.Ctx(ctx).Warn().
			Err(err).
			Str("operation", name).
			Msg("Invocation rejected")
		return Result{}, err
	}

	metrics.RecordInvocation(name, string(result.Status), duration)
	logging.Ctx(ctx).Info().
		Str("operation", name).
		Str("status", string(result.Status)).
		Dur("duration", duration).
		Msg("Invocation completed")

	return result, nil
}
