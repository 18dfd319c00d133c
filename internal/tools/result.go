// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package tools

import (
	"github.com/tomtom215/baton/internal/models"
)

// Status classifies an invocation outcome. Not-found and ambiguous are
// expected outcomes of correct operation, never faults: an agent asking
// for a movie that is not there did nothing wrong.
type Status string

const (
	// StatusOK means the operation completed and Data carries its result.
	StatusOK Status = "ok"

	// StatusNotFound means resolution produced no candidate. The message
	// names the entity and echoes the search terms.
	StatusNotFound Status = "not_found"

	// StatusAmbiguous means a single-target operation resolved more than
	// one candidate. Data enumerates them; the operation never guesses.
	StatusAmbiguous Status = "ambiguous"

	// StatusError means a downstream call failed after arguments were
	// accepted. The message carries the classified cause.
	StatusError Status = "error"
)

// Result is the outcome of one dispatched invocation.
type Result struct {
	Status  Status      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// MovieList carries movie candidates or search results.
type MovieList struct {
	Count  int            `json:"count"`
	Movies []models.Movie `json:"movies"`
}

// ShowList carries show candidates or search results.
type ShowList struct {
	Count int           `json:"count"`
	Shows []models.Show `json:"shows"`
}

// PlayerList carries the active playback sessions.
type PlayerList struct {
	Count   int             `json:"count"`
	Players []models.Player `json:"players"`
}

// SeasonSummary describes one season found by a deep existence check.
type SeasonSummary struct {
	ShowTitle    string `json:"show_title"`
	Season       int    `json:"season"`
	EpisodeCount int    `json:"episode_count"`
	FirstEpisode int    `json:"first_episode"`
	LastEpisode  int    `json:"last_episode"`
}

func okResult(message string, data interface{}) Result {
	return Result{Status: StatusOK, Message: message, Data: data}
}

func notFoundResult(message string) Result {
	return Result{Status: StatusNotFound, Message: message}
}

func ambiguousResult(message string, data interface{}) Result {
	return Result{Status: StatusAmbiguous, Message: message, Data: data}
}

// errorResult reports a downstream failure. The cause's own message is
// surfaced so a remote complaint reads as the remote system's words.
func errorResult(context string, err error) Result {
	return Result{Status: StatusError, Message: context + ": " + err.Error()}
}
