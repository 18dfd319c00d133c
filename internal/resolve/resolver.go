// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

// Package resolve turns free-text queries into exact catalog entities.
//
// Resolution policies differ on purpose and must not be unified:
//
//   - Movie resolution collects every match. The caller decides what a
//     cardinality above one means for its operation.
//   - Show resolution for playback takes the first match in title order
//     and stops. Playback needs exactly one target.
//   - Show resolution for existence checks collects every match, like
//     movies. A check tolerates many answers.
//   - Episode resolution is staged: first-match show, then exact
//     season/episode equality within that show's episode list. Each
//     stage reports its own miss.
//
// Every resolution fetches the catalog fresh. Nothing is cached between
// invocations, so two concurrent resolutions never share state.
package resolve

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/baton/internal/kodi"
	"github.com/tomtom215/baton/internal/logging"
	"github.com/tomtom215/baton/internal/match"
	"github.com/tomtom215/baton/internal/metrics"
	"github.com/tomtom215/baton/internal/models"
)

// NotFoundError reports which stage of a staged resolution missed and
// the query that missed. It is an expected outcome of correct operation,
// not a transport failure.
type NotFoundError struct {
	Stage string // "show" or "episode"
	Query string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s matching %q", e.Stage, e.Query)
}

// Resolver resolves queries against a remote catalog.
type Resolver struct {
	catalog kodi.Catalog
}

// New creates a resolver over the given catalog accessor.
func New(catalog kodi.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Movies returns every movie whose title matches the query, optionally
// restricted to an exact release year. An empty result is a valid
// outcome, not an error.
func (r *Resolver) Movies(ctx context.Context, title string, year *int, route kodi.Route) ([]models.Movie, error) {
	movies, err := r.catalog.Movies(ctx, nil, route)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Movie, 0, 4)
	for _, movie := range movies {
		if !match.Matches(title, movie.Title) {
			continue
		}
		if year != nil && movie.Year != *year {
			continue
		}
		matched = append(matched, movie)
	}

	metrics.RecordResolution("movie", cardinalityOutcome(len(matched)))
	logging.Ctx(ctx).Debug().
		Str("title", title).
		Int("matches", len(matched)).
		Msg("Resolved movie query")

	return matched, nil
}

// Shows returns every show whose title matches the query. Used by
// existence checks, which tolerate multiple answers.
func (r *Resolver) Shows(ctx context.Context, title string, route kodi.Route) ([]models.Show, error) {
	shows, err := r.catalog.Shows(ctx, nil, route)
	if err != nil {
		return nil, err
	}

	matched := make([]models.Show, 0, 4)
	for _, show := range shows {
		if match.Matches(title, show.Title) {
			matched = append(matched, show)
		}
	}

	metrics.RecordResolution("show", cardinalityOutcome(len(matched)))
	logging.Ctx(ctx).Debug().
		Str("title", title).
		Int("matches", len(matched)).
		Msg("Resolved show query")

	return matched, nil
}

// FirstShow returns the first show in title order whose title matches
// the query. Playback paths use this: they need one target and the
// fetch order makes the pick deterministic. A miss is a NotFoundError
// with stage "show".
func (r *Resolver) FirstShow(ctx context.Context, title string, route kodi.Route) (models.Show, error) {
	shows, err := r.catalog.Shows(ctx, nil, route)
	if err != nil {
		return models.Show{}, err
	}

	for _, show := range shows {
		if match.Matches(title, show.Title) {
			metrics.RecordResolution("show", "found")
			return show, nil
		}
	}

	metrics.RecordResolution("show", "not_found")
	return models.Show{}, &NotFoundError{Stage: "show", Query: title}
}

// Episode resolves a show title plus season/episode numbers to one
// episode. The show stage short-circuits on first match; the episode
// stage requires exact season and episode equality. A miss at either
// stage surfaces as a NotFoundError naming that stage.
func (r *Resolver) Episode(ctx context.Context, showTitle string, season, episode int, route kodi.Route) (models.Episode, error) {
	show, err := r.FirstShow(ctx, showTitle, route)
	if err != nil {
		var notFound *NotFoundError
		if errors.As(err, &notFound) {
			metrics.RecordResolution("episode", "not_found")
		}
		return models.Episode{}, err
	}

	episodes, err := r.catalog.Episodes(ctx, show.ShowID, nil, nil, route)
	if err != nil {
		return models.Episode{}, err
	}

	for _, e := range episodes {
		if e.Season == season && e.Episode == episode {
			metrics.RecordResolution("episode", "found")
			return e, nil
		}
	}

	metrics.RecordResolution("episode", "not_found")
	return models.Episode{}, &NotFoundError{
		Stage: "episode",
		Query: fmt.Sprintf("%s S%02dE%02d", show.Title, season, episode),
	}
}

// cardinalityOutcome maps a match count to its metric label.
func cardinalityOutcome(n int) string {
	switch {
	case n == 0:
		return "not_found"
	case n == 1:
		return "found"
	default:
		return "ambiguous"
	}
}
