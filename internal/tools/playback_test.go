// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package tools

import (
	"errors"
	"strings"
	"testing"

	"github.com/tomtom215/baton/internal/kodi"
	"github.com/tomtom215/baton/internal/models"
)

func TestPlayMovie_UniqueMatchStartsPlayback(t *testing.T) {
	catalog := libraryFixture()
	registry := newTestRegistry(catalog)

	result, err := dispatch(t, registry, OpPlayMovie, `{"title": "heat"}`)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if result.Status != StatusOK {
		t.Fatalf("Status = %q, want ok", result.Status)
	}
	if result.Message != `Started playing "Heat" (1995).` {
		t.Errorf("Message = %q", result.Message)
	}
	if catalog.openedMovieID != 3 {
		t.Errorf("openedMovieID = %d, want 3", catalog.openedMovieID)
	}
}

// Playback never picks between candidates on its own. Several matches
// come back as an ambiguous result listing all of them, and no playback
// command reaches the media center.
func TestPlayMovie_AmbiguousDoesNotPlay(t *testing.T) {
	catalog := libraryFixture()
	registry := newTestRegistry(catalog)

	result, err := dispatch(t, registry, OpPlayMovie, `{"title": "alien"}`)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if result.Status != StatusAmbiguous {
		t.Fatalf("Status = %q, want ambiguous", result.Status)
	}
	if !strings.Contains(result.Message, "Found 2 movies") {
		t.Errorf("Message = %q", result.Message)
	}
	list, ok := result.Data.(MovieList)
	if !ok {
		t.Fatalf("Data = %T, want MovieList", result.Data)
	}
	if list.Count != 2 {
		t.Errorf("Count = %d, want both candidates listed", list.Count)
	}
	if catalog.openedMovieID != 0 {
		t.Errorf("openedMovieID = %d, playback must not start on an ambiguous match", catalog.openedMovieID)
	}
}

func TestPlayMovie_YearDisambiguates(t *testing.T) {
	catalog := libraryFixture()
	registry := newTestRegistry(catalog)

	result, err := dispatch(t, registry, OpPlayMovie, `{"title": "alien", "year": 1986}`)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if result.Status != StatusOK {
		t.Fatalf("Status = %q, want ok", result.Status)
	}
	if catalog.openedMovieID != 2 {
		t.Errorf("openedMovieID = %d, want 2 (Aliens)", catalog.openedMovieID)
	}
}

func TestPlayMovie_NotFound(t *testing.T) {
	catalog := libraryFixture()
	registry := newTestRegistry(catalog)

	result, err := dispatch(t, registry, OpPlayMovie, `{"title": "jaws"}`)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if result.Status != StatusNotFound {
		t.Fatalf("Status = %q, want not_found", result.Status)
	}
	if catalog.openedMovieID != 0 {
		t.Errorf("openedMovieID = %d, want 0", catalog.openedMovieID)
	}
}

// A resolved movie whose playback command fails is a command failure,
// not a lookup miss. The two must stay distinguishable.
func TestPlayMovie_CommandFailure(t *testing.T) {
	catalog := libraryFixture()
	catalog.openErr = &kodi.RemoteError{Code: -32100, Message: "playlist full"}
	registry := newTestRegistry(catalog)

	result, err := dispatch(t, registry, OpPlayMovie, `{"title": "heat"}`)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if result.Status != StatusError {
		t.Fatalf("Status = %q, want error", result.Status)
	}
	if !strings.Contains(result.Message, "Failed to start playback") {
		t.Errorf("Message = %q", result.Message)
	}
	if !strings.Contains(result.Message, "playlist full") {
		t.Errorf("Message = %q, want the remote complaint included", result.Message)
	}
}

func TestPlayEpisode_ResolvesAndPlays(t *testing.T) {
	catalog := libraryFixture()
	registry := newTestRegistry(catalog)

	result, err := dispatch(t, registry, OpPlayEpisode,
		`{"show_title": "breaking bad", "season": 5, "episode": 14}`)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if result.Status != StatusOK {
		t.Fatalf("Status = %q, want ok", result.Status)
	}
	if result.Message != `Started playing "Breaking Bad" S05E14: "Ozymandias".` {
		t.Errorf("Message = %q", result.Message)
	}
	if catalog.openedEpisodeID != 102 {
		t.Errorf("openedEpisodeID = %d, want 102", catalog.openedEpisodeID)
	}
}

func TestPlayEpisode_MissReportsStage(t *testing.T) {
	tests := []struct {
		name        string
		args        string
		wantMessage string
	}{
		{
			"unknown show",
			`{"show_title": "the wire", "season": 1, "episode": 1}`,
			`TV show "the wire" not found in library.`,
		},
		{
			"known show unknown episode",
			`{"show_title": "breaking bad", "season": 4, "episode": 9}`,
			`Episode S04E09 of "breaking bad" not found in library.`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := libraryFixture()
			registry := newTestRegistry(catalog)

			result, err := dispatch(t, registry, OpPlayEpisode, tt.args)
			if err != nil {
				t.Fatalf("Dispatch() error = %v", err)
			}
			if result.Status != StatusNotFound {
				t.Fatalf("Status = %q, want not_found", result.Status)
			}
			if result.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", result.Message, tt.wantMessage)
			}
			if catalog.openedEpisodeID != 0 {
				t.Errorf("openedEpisodeID = %d, want 0", catalog.openedEpisodeID)
			}
		})
	}
}

func TestPlayEpisode_RequiredArguments(t *testing.T) {
	tests := []struct {
		name     string
		args     string
		wantName string
	}{
		{"all absent", `{}`, "show_title"},
		{"season absent", `{"show_title": "breaking bad", "episode": 1}`, "season"},
		{"episode absent", `{"show_title": "breaking bad", "season": 1}`, "episode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := libraryFixture()
			registry := newTestRegistry(catalog)

			_, err := dispatch(t, registry, OpPlayEpisode, tt.args)

			var missing *MissingArgumentError
			if !errors.As(err, &missing) {
				t.Fatalf("error = %v, want *MissingArgumentError", err)
			}
			if missing.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", missing.Name, tt.wantName)
			}
			if catalog.readCalls != 0 {
				t.Errorf("readCalls = %d, want 0", catalog.readCalls)
			}
		})
	}
}

// Season zero is how specials are numbered. An explicit zero must pass
// the presence check and reach resolution.
func TestPlayEpisode_SeasonZeroIsPresent(t *testing.T) {
	registry := newTestRegistry(libraryFixture())

	result, err := dispatch(t, registry, OpPlayEpisode,
		`{"show_title": "breaking bad", "season": 0, "episode": 1}`)
	if err != nil {
		t.Fatalf("Dispatch() error = %v, season 0 must not read as absent", err)
	}
	if result.Status != StatusNotFound {
		t.Errorf("Status = %q, want not_found (fixture has no specials)", result.Status)
	}
}

func TestPlayEpisode_NegativeSeasonRejected(t *testing.T) {
	registry := newTestRegistry(libraryFixture())

	_, err := dispatch(t, registry, OpPlayEpisode,
		`{"show_title": "breaking bad", "season": -1, "episode": 1}`)

	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("error = %v, want *ArgumentError", err)
	}
}

func TestControlPlayback_StatusNoSessions(t *testing.T) {
	registry := newTestRegistry(libraryFixture())

	result, err := dispatch(t, registry, OpControlPlayback, `{"action": "status"}`)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if result.Status != StatusOK {
		t.Fatalf("Status = %q, idle playback is a normal answer, not a failure", result.Status)
	}
	if result.Message != "No active playback sessions." {
		t.Errorf("Message = %q", result.Message)
	}
	list, ok := result.Data.(PlayerList)
	if !ok {
		t.Fatalf("Data = %T, want PlayerList", result.Data)
	}
	if list.Count != 0 {
		t.Errorf("Count = %d, want 0", list.Count)
	}
}

func TestControlPlayback_StatusActiveSessions(t *testing.T) {
	catalog := libraryFixture()
	catalog.players = []models.Player{{PlayerID: 1, Type: "video"}}
	registry := newTestRegistry(catalog)

	result, err := dispatch(t, registry, OpControlPlayback, `{"action": "status"}`)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if result.Message != "1 active player(s)." {
		t.Errorf("Message = %q", result.Message)
	}
	list, ok := result.Data.(PlayerList)
	if !ok {
		t.Fatalf("Data = %T, want PlayerList", result.Data)
	}
	if list.Count != 1 || list.Players[0].Type != "video" {
		t.Errorf("Players = %+v", list.Players)
	}
}

func TestControlPlayback_PauseAndStopTargetPrimaryPlayer(t *testing.T) {
	catalog := libraryFixture()
	registry := newTestRegistry(catalog)

	if _, err := dispatch(t, registry, OpControlPlayback, `{"action": "pause"}`); err != nil {
		t.Fatalf("pause error = %v", err)
	}
	if catalog.pausedPlayerID != 1 {
		t.Errorf("pausedPlayerID = %d, want 1", catalog.pausedPlayerID)
	}

	if _, err := dispatch(t, registry, OpControlPlayback, `{"action": "stop"}`); err != nil {
		t.Fatalf("stop error = %v", err)
	}
	if catalog.stoppedPlayerID != 1 {
		t.Errorf("stoppedPlayerID = %d, want 1", catalog.stoppedPlayerID)
	}
}

func TestControlPlayback_UnknownAction(t *testing.T) {
	registry := newTestRegistry(libraryFixture())

	_, err := dispatch(t, registry, OpControlPlayback, `{"action": "eject"}`)

	var argErr *ArgumentError
	if !errors.As(err, &argErr) {
		t.Fatalf("error = %v, want *ArgumentError", err)
	}
}

func TestControlPlayback_MissingAction(t *testing.T) {
	registry := newTestRegistry(libraryFixture())

	_, err := dispatch(t, registry, OpControlPlayback, `{}`)

	var missing *MissingArgumentError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want *MissingArgumentError", err)
	}
	if missing.Name != "action" {
		t.Errorf("Name = %q, want action", missing.Name)
	}
}

func TestControlPlayback_CommandFailure(t *testing.T) {
	catalog := libraryFixture()
	catalog.controlErr = kodi.ErrTimeout
	registry := newTestRegistry(catalog)

	result, err := dispatch(t, registry, OpControlPlayback, `{"action": "pause"}`)
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}

	if result.Status != StatusError {
		t.Fatalf("Status = %q, want error", result.Status)
	}
	if !strings.Contains(result.Message, "Failed to pause playback") {
		t.Errorf("Message = %q", result.Message)
	}
}
