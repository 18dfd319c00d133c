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

	"github.com/tomtom215/baton/internal/resolve"
)

// defaultPlayerID targets the primary video player for pause and stop.
const defaultPlayerID = 1

type playMovieArgs struct {
	Title    string `json:"title" validate:"required"`
	Year     *int   `json:"year"`
	UseProxy bool   `json:"use_proxy"`
}

func (a *playMovieArgs) normalize() {
	a.Title = strings.TrimSpace(a.Title)
}

// playMovie resolves a movie title to exactly one catalog entry and
// starts playback. More than one match is an ambiguous outcome listing
// every candidate; the operation never picks one on its own.
func (r *Registry) playMovie(ctx context.Context, raw json.RawMessage) (Result, error) {
	args, err := decodeArgs[playMovieArgs](raw)
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

	if len(matched) > 1 {
		return ambiguousResult(
			fmt.Sprintf("Found %d movies matching %q. Specify the year or a more exact title.",
				len(matched), args.Title),
			MovieList{Count: len(matched), Movies: matched},
		), nil
	}

	movie := matched[0]
	if err := r.catalog.OpenMovie(ctx, movie.MovieID, route); err != nil {
		return errorResult("Failed to start playback", err), nil
	}

	return okResult(
		fmt.Sprintf("Started playing %q (%d).", movie.Title, movie.Year),
		movie,
	), nil
}

type playEpisodeArgs struct {
	ShowTitle string `json:"show_title" validate:"required"`
	Season    *int   `json:"season" validate:"required,gte=0"`
	Episode   *int   `json:"episode" validate:"required,gte=0"`
	UseProxy  bool   `json:"use_proxy"`
}

func (a *playEpisodeArgs) normalize() {
	a.ShowTitle = strings.TrimSpace(a.ShowTitle)
}

// playEpisode resolves show title plus season/episode numbers through
// the staged resolver and starts playback of the resolved episode.
func (r *Registry) playEpisode(ctx context.Context, raw json.RawMessage) (Result, error) {
	args, err := decodeArgs[playEpisodeArgs](raw)
	if err != nil {
		return Result{}, err
	}
	route := routeFor(args.UseProxy)

	episode, err := r.resolver.Episode(ctx, args.ShowTitle, *args.Season, *args.Episode, route)
	if err != nil {
		var notFound *resolve.NotFoundError
		if errors.As(err, &notFound) {
			if notFound.Stage == "show" {
				return notFoundResult(
					fmt.Sprintf("TV show %q not found in library.", args.ShowTitle),
				), nil
			}
			return notFoundResult(
				fmt.Sprintf("Episode S%02dE%02d of %q not found in library.",
					*args.Season, *args.Episode, args.ShowTitle),
			), nil
		}
		return errorResult("Failed to resolve episode", err), nil
	}

	if err := r.catalog.OpenEpisode(ctx, episode.EpisodeID, route); err != nil {
		return errorResult("Failed to start playback", err), nil
	}

	return okResult(
		fmt.Sprintf("Started playing %q S%02dE%02d: %q.",
			episode.ShowTitle, episode.Season, episode.Episode, episode.Title),
		episode,
	), nil
}

type controlPlaybackArgs struct {
	Action   string `json:"action" validate:"required,oneof=pause stop status"`
	UseProxy bool   `json:"use_proxy"`
}

func (a *controlPlaybackArgs) normalize() {
	a.Action = strings.TrimSpace(a.Action)
}

// controlPlayback pauses, stops, or reports the active playback
// sessions. Zero active sessions is a normal answer for status, not a
// failure.
func (r *Registry) controlPlayback(ctx context.Context, raw json.RawMessage) (Result, error) {
	args, err := decodeArgs[controlPlaybackArgs](raw)
	if err != nil {
		return Result{}, err
	}
	route := routeFor(args.UseProxy)

	switch args.Action {
	case "status":
		players, err := r.catalog.ActivePlayers(ctx, route)
		if err != nil {
			return errorResult("Failed to query active players", err), nil
		}
		if len(players) == 0 {
			return okResult("No active playback sessions.", PlayerList{Count: 0, Players: players}), nil
		}
		return okResult(
			fmt.Sprintf("%d active player(s).", len(players)),
			PlayerList{Count: len(players), Players: players},
		), nil

	case "pause":
		if err := r.catalog.PausePlayer(ctx, defaultPlayerID, route); err != nil {
			return errorResult("Failed to pause playback", err), nil
		}
		return okResult("Playback paused or resumed.", nil), nil

	case "stop":
		if err := r.catalog.StopPlayer(ctx, defaultPlayerID, route); err != nil {
			return errorResult("Failed to stop playback", err), nil
		}
		return okResult("Playback stopped.", nil), nil

	default:
		// The oneof validation makes this unreachable
		return Result{}, &ArgumentError{Detail: fmt.Sprintf("unknown action %q", args.Action)}
	}
}
