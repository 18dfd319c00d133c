// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/baton/internal/kodi"
	"github.com/tomtom215/baton/internal/models"
	"github.com/tomtom215/baton/internal/resolve"
)

type checkMovieArgs struct {
	Title    string `json:"title" validate:"required"`
	Year     *int   `json:"year"`
	UseProxy bool   `json:"use_proxy"`
}

func (a *checkMovieArgs) normalize() {
	a.Title = strings.TrimSpace(a.Title)
}

// checkMovieExists reports whether a movie is in the library. Existence
// checks tolerate many answers: several matches is a positive result
// listing all of them, not an ambiguity.
func (r *Registry) checkMovieExists(ctx context.Context, raw json.RawMessage) (Result, error) {
	args, err := decodeArgs[checkMovieArgs](raw)
	if err != nil {
		return Result{}, err
	}
	route := routeFor(args.UseProxy)

	matched, err := r.resolver.Movies(ctx, args.Title, args.Year, route)
	if err != nil {
		return errorResult("Failed to fetch movies", err), nil
	}

	if len(matched) == 0 {
		search := fmt.Sprintf("%q", args.Title)
		if args.Year != nil {
			search += fmt.Sprintf(" (%d)", *args.Year)
		}
		return notFoundResult(fmt.Sprintf("Movie %s not found in library.", search)), nil
	}

	if len(matched) == 1 {
		movie := matched[0]
		return okResult(
			fmt.Sprintf("Movie %q (%d) found in library.", movie.Title, movie.Year),
			movie,
		), nil
	}

	return okResult(
		fmt.Sprintf("Found %d movies matching %q.", len(matched), args.Title),
		MovieList{Count: len(matched), Movies: matched},
	), nil
}

type checkShowArgs struct {
	Title    string `json:"title" validate:"required"`
	Season   *int   `json:"season" validate:"omitempty,gte=0"`
	Episode  *int   `json:"episode" validate:"omitempty,gte=0"`
	UseProxy bool   `json:"use_proxy"`
}

func (a *checkShowArgs) normalize() {
	a.Title = strings.TrimSpace(a.Title)
}

// checkTVShowExists reports whether a show, one of its seasons, or one
// specific episode is in the library.
//
// A title-only check collects every matching show. The season and
// episode drill-downs need one show to inspect, so they take the first
// match in title order, same as playback.
func (r *Registry) checkTVShowExists(ctx context.Context, raw json.RawMessage) (Result, error) {
	args, err := decodeArgs[checkShowArgs](raw)
	if err != nil {
		return Result{}, err
	}
	if args.Episode != nil && args.Season == nil {
		return Result{}, &ArgumentError{Detail: "episode requires season"}
	}
	route := routeFor(args.UseProxy)

	if args.Season == nil {
		return r.checkShowOnly(ctx, args, route)
	}
	return r.checkSeasonEpisode(ctx, args, route)
}

func (r *Registry) checkShowOnly(ctx context.Context, args *checkShowArgs, route kodi.Route) (Result, error) {
	matched, err := r.resolver.Shows(ctx, args.Title, route)
	if err != nil {
		return errorResult("Failed to fetch TV shows", err), nil
	}

	if len(matched) == 0 {
		return notFoundResult(fmt.Sprintf("TV show %q not found in library.", args.Title)), nil
	}

	if len(matched) == 1 {
		show := matched[0]
		return okResult(
			fmt.Sprintf("TV show %q (%d) found in library.", show.Title, show.Year),
			show,
		), nil
	}

	return okResult(
		fmt.Sprintf("Found %d TV shows matching %q.", len(matched), args.Title),
		ShowList{Count: len(matched), Shows: matched},
	), nil
}

func (r *Registry) checkSeasonEpisode(ctx context.Context, args *checkShowArgs, route kodi.Route) (Result, error) {
	show, err := r.resolver.FirstShow(ctx, args.Title, route)
	if err != nil {
		var notFound *resolve.NotFoundError
		if errors.As(err, &notFound) {
			return notFoundResult(fmt.Sprintf("TV show %q not found in library.", args.Title)), nil
		}
		return errorResult("Failed to fetch TV shows", err), nil
	}

	episodes, err := r.catalog.Episodes(ctx, show.ShowID, nil, nil, route)
	if err != nil {
		return errorResult("Failed to fetch episodes", err), nil
	}

	season := *args.Season
	inSeason := make([]models.Episode, 0, len(episodes))
	for _, e := range episodes {
		if e.Season == season {
			inSeason = append(inSeason, e)
		}
	}

	if len(inSeason) == 0 {
		return notFoundResult(
			fmt.Sprintf("Season %d of %q not found in library.", season, show.Title),
		), nil
	}

	if args.Episode == nil {
		return okResult(
			fmt.Sprintf("Season %d of %q found in library.", season, show.Title),
			seasonSummary(show.Title, season, inSeason),
		), nil
	}

	for _, e := range inSeason {
		if e.Episode == *args.Episode {
			return okResult(
				fmt.Sprintf("%q S%02dE%02d found in library.", show.Title, season, *args.Episode),
				e,
			), nil
		}
	}

	return notFoundResult(fmt.Sprintf(
		"Episode %d of season %d of %q not found in library.",
		*args.Episode, season, show.Title,
	)), nil
}

// seasonSummary condenses a season's episode list into its range stats.
func seasonSummary(showTitle string, season int, episodes []models.Episode) SeasonSummary {
	first := episodes[0].Episode
	last := episodes[0].Episode
	for _, e := range episodes[1:] {
		if e.Episode < first {
			first = e.Episode
		}
		if e.Episode > last {
			last = e.Episode
		}
	}

	return SeasonSummary{
		ShowTitle:    showTitle,
		Season:       season,
		EpisodeCount: len(episodes),
		FirstEpisode: first,
		LastEpisode:  last,
	}
}
