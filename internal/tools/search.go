// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/baton/internal/match"
	"github.com/tomtom215/baton/internal/models"
)

type searchMoviesArgs struct {
	Title    string `json:"title"`
	Year     *int   `json:"year"`
	Genre    string `json:"genre"`
	UseProxy bool   `json:"use_proxy"`
}

func (a *searchMoviesArgs) normalize() {
	a.Title = strings.TrimSpace(a.Title)
	a.Genre = strings.TrimSpace(a.Genre)
}

// searchMovies filters the movie library by any combination of title,
// year, and genre. All filters are optional; with none given, the whole
// library comes back.
func (r *Registry) searchMovies(ctx context.Context, raw json.RawMessage) (Result, error) {
	args, err := decodeArgs[searchMoviesArgs](raw)
	if err != nil {
		return Result{}, err
	}
	route := routeFor(args.UseProxy)

	// An empty title matches every movie, so the year filter still
	// applies to the full library.
	candidates, err := r.resolver.Movies(ctx, args.Title, args.Year, route)
	if err != nil {
		return errorResult("Failed to fetch movies", err), nil
	}

	matched := candidates
	if args.Genre != "" {
		matched = make([]models.Movie, 0, len(candidates))
		for _, movie := range candidates {
			if match.ContainsGenre(movie.Genres, args.Genre) {
				matched = append(matched, movie)
			}
		}
	}

	if len(matched) == 0 {
		terms := searchTerms(args.Title, args.Year, args.Genre)
		if terms == "" {
			return notFoundResult("No movies found in library."), nil
		}
		return notFoundResult(fmt.Sprintf("No movies found matching %s.", terms)), nil
	}

	return okResult(
		fmt.Sprintf("Found %d movie(s).", len(matched)),
		MovieList{Count: len(matched), Movies: matched},
	), nil
}

type searchTVShowsArgs struct {
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	UseProxy bool   `json:"use_proxy"`
}

func (a *searchTVShowsArgs) normalize() {
	a.Title = strings.TrimSpace(a.Title)
	a.Genre = strings.TrimSpace(a.Genre)
}

// searchTVShows filters the show library by title and genre.
func (r *Registry) searchTVShows(ctx context.Context, raw json.RawMessage) (Result, error) {
	args, err := decodeArgs[searchTVShowsArgs](raw)
	if err != nil {
		return Result{}, err
	}
	route := routeFor(args.UseProxy)

	candidates, err := r.resolver.Shows(ctx, args.Title, route)
	if err != nil {
		return errorResult("Failed to fetch TV shows", err), nil
	}

	matched := candidates
	if args.Genre != "" {
		matched = make([]models.Show, 0, len(candidates))
		for _, show := range candidates {
			if match.ContainsGenre(show.Genres, args.Genre) {
				matched = append(matched, show)
			}
		}
	}

	if len(matched) == 0 {
		terms := searchTerms(args.Title, nil, args.Genre)
		if terms == "" {
			return notFoundResult("No TV shows found in library."), nil
		}
		return notFoundResult(fmt.Sprintf("No TV shows found matching %s.", terms)), nil
	}

	return okResult(
		fmt.Sprintf("Found %d TV show(s).", len(matched)),
		ShowList{Count: len(matched), Shows: matched},
	), nil
}

// searchTerms renders the filters an unmatched search used, so the
// not-found message echoes what was asked for.
func searchTerms(title string, year *int, genre string) string {
	terms := make([]string, 0, 3)
	if title != "" {
		terms = append(terms, fmt.Sprintf("title: %q", title))
	}
	if year != nil {
		terms = append(terms, fmt.Sprintf("year: %d", *year))
	}
	if genre != "" {
		terms = append(terms, fmt.Sprintf("genre: %q", genre))
	}
	return strings.Join(terms, ", ")
}
