// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/baton/internal/models"
)

const (
	defaultRecentLimit = 20
	topGenreCount      = 5
)

type libraryStatsArgs struct {
	UseProxy bool `json:"use_proxy"`
}

// getLibraryStats collects library counts and the top genre histograms.
// The fetches run sequentially; each invocation's working set is its
// own, so two concurrent stats calls cannot interfere.
func (r *Registry) getLibraryStats(ctx context.Context, raw json.RawMessage) (Result, error) {
	args, err := decodeArgs[libraryStatsArgs](raw)
	if err != nil {
		return Result{}, err
	}
	route := routeFor(args.UseProxy)

	movies, err := r.catalog.Movies(ctx, nil, route)
	if err != nil {
		return errorResult("Failed to fetch movies", err), nil
	}

	shows, err := r.catalog.Shows(ctx, nil, route)
	if err != nil {
		return errorResult("Failed to fetch TV shows", err), nil
	}

	totalEpisodes := 0
	showGenres := make(map[string]int)
	for _, show := range shows {
		totalEpisodes += show.Episodes
		for _, genre := range show.Genres {
			showGenres[genre]++
		}
	}

	movieGenres := make(map[string]int)
	for _, movie := range movies {
		for _, genre := range movie.Genres {
			movieGenres[genre]++
		}
	}

	stats := models.LibraryStats{
		TotalMovies:    len(movies),
		TotalShows:     len(shows),
		TotalEpisodes:  totalEpisodes,
		TopMovieGenres: topGenres(movieGenres, topGenreCount),
		TopShowGenres:  topGenres(showGenres, topGenreCount),
	}

	return okResult(
		fmt.Sprintf("Library contains %d movies, %d TV shows, %d episodes.",
			stats.TotalMovies, stats.TotalShows, stats.TotalEpisodes),
		stats,
	), nil
}

// topGenres ranks a genre histogram: count descending, then genre
// ascending so equal counts order deterministically.
func topGenres(counts map[string]int, n int) []models.GenreCount {
	ranked := make([]models.GenreCount, 0, len(counts))
	for genre, count := range counts {
		ranked = append(ranked, models.GenreCount{Genre: genre, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Genre < ranked[j].Genre
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

type recentlyAddedArgs struct {
	MediaType string `json:"media_type" validate:"omitempty,oneof=movies episodes both"`
	Limit     int    `json:"limit" validate:"omitempty,gte=1,lte=100"`
	UseProxy  bool   `json:"use_proxy"`
}

func (a *recentlyAddedArgs) normalize() {
	a.MediaType = strings.TrimSpace(a.MediaType)
}

// getRecentlyAdded lists recently added movies, episodes, or both.
// "both" splits the limit in half per category.
func (r *Registry) getRecentlyAdded(ctx context.Context, raw json.RawMessage) (Result, error) {
	args, err := decodeArgs[recentlyAddedArgs](raw)
	if err != nil {
		return Result{}, err
	}
	route := routeFor(args.UseProxy)

	mediaType := args.MediaType
	if mediaType == "" {
		mediaType = "both"
	}
	limit := args.Limit
	if limit == 0 {
		limit = defaultRecentLimit
	}

	var recent models.RecentlyAdded
	total := 0

	if mediaType == "movies" || mediaType == "both" {
		perCategory := limit
		if mediaType == "both" {
			perCategory = limit / 2
		}
		movies, err := r.catalog.RecentMovies(ctx, perCategory, route)
		if err != nil {
			return errorResult("Failed to fetch recently added movies", err), nil
		}
		recent.Movies = movies
		total += len(movies)
	}

	if mediaType == "episodes" || mediaType == "both" {
		perCategory := limit
		if mediaType == "both" {
			perCategory = limit / 2
		}
		episodes, err := r.catalog.RecentEpisodes(ctx, perCategory, route)
		if err != nil {
			return errorResult("Failed to fetch recently added episodes", err), nil
		}
		recent.Episodes = episodes
		total += len(episodes)
	}

	if total == 0 {
		return okResult("No recently added content found.", recent), nil
	}

	return okResult(
		fmt.Sprintf("Found %d recently added item(s).", total),
		recent,
	), nil
}

type updateLibraryArgs struct {
	Action    string `json:"action" validate:"omitempty,oneof=scan clean"`
	Directory string `json:"directory"`
	UseProxy  bool   `json:"use_proxy"`
}

func (a *updateLibraryArgs) normalize() {
	a.Action = strings.TrimSpace(a.Action)
	a.Directory = strings.TrimSpace(a.Directory)
}

// updateLibrary triggers a library scan or clean on the remote system.
// Both start the job and return; the remote works in the background.
func (r *Registry) updateLibrary(ctx context.Context, raw json.RawMessage) (Result, error) {
	args, err := decodeArgs[updateLibraryArgs](raw)
	if err != nil {
		return Result{}, err
	}

	action := args.Action
	if action == "" {
		action = "scan"
	}
	if action == "clean" && args.Directory != "" {
		return Result{}, &ArgumentError{Detail: "directory only applies to scan"}
	}
	route := routeFor(args.UseProxy)

	if action == "clean" {
		if err := r.catalog.Clean(ctx, route); err != nil {
			return errorResult("Failed to start library clean", err), nil
		}
		return okResult("Library clean started.", nil), nil
	}

	if err := r.catalog.Scan(ctx, args.Directory, route); err != nil {
		return errorResult("Failed to start library scan", err), nil
	}

	if args.Directory != "" {
		return okResult(fmt.Sprintf("Library scan started for directory %s.", args.Directory), nil), nil
	}
	return okResult("Full library scan started.", nil), nil
}
