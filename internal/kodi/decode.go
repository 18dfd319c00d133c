// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package kodi

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/tomtom215/baton/internal/models"
)

// Raw wire records use pointers for required fields so an absent member can
// be told apart from a zero value. Optional fields decode straight into
// their documented defaults. A payload that does not match the expected
// shape at all is a ProtocolError; a well-formed record missing a required
// field is a DecodeError.

type movieRecord struct {
	MovieID  *int     `json:"movieid"`
	Title    *string  `json:"title"`
	Year     int      `json:"year"`
	File     string   `json:"file"`
	Genre    []string `json:"genre"`
	Rating   float64  `json:"rating"`
	Runtime  int      `json:"runtime"`
	Plot     string   `json:"plot"`
	Director []string `json:"director"`
}

func (r *movieRecord) toModel() (models.Movie, error) {
	if r.MovieID == nil {
		return models.Movie{}, &DecodeError{Entity: "movie", Field: "movieid"}
	}
	if r.Title == nil {
		return models.Movie{}, &DecodeError{Entity: "movie", Field: "title"}
	}
	return models.Movie{
		MovieID:   *r.MovieID,
		Title:     *r.Title,
		Year:      r.Year,
		File:      r.File,
		Genres:    defaultSlice(r.Genre),
		Rating:    r.Rating,
		Runtime:   r.Runtime,
		Plot:      r.Plot,
		Directors: defaultSlice(r.Director),
	}, nil
}

type showRecord struct {
	ShowID  *int     `json:"tvshowid"`
	Title   *string  `json:"title"`
	Year    int      `json:"year"`
	Genre   []string `json:"genre"`
	Rating  float64  `json:"rating"`
	Plot    string   `json:"plot"`
	Episode int      `json:"episode"`
	Season  int      `json:"season"`
}

func (r *showRecord) toModel() (models.Show, error) {
	if r.ShowID == nil {
		return models.Show{}, &DecodeError{Entity: "show", Field: "tvshowid"}
	}
	if r.Title == nil {
		return models.Show{}, &DecodeError{Entity: "show", Field: "title"}
	}
	return models.Show{
		ShowID:   *r.ShowID,
		Title:    *r.Title,
		Year:     r.Year,
		Genres:   defaultSlice(r.Genre),
		Rating:   r.Rating,
		Plot:     r.Plot,
		Episodes: r.Episode,
		Seasons:  r.Season,
	}, nil
}

type episodeRecord struct {
	EpisodeID *int    `json:"episodeid"`
	Title     *string `json:"title"`
	Season    *int    `json:"season"`
	Episode   *int    `json:"episode"`
	File      string  `json:"file"`
	ShowID    int     `json:"tvshowid"`
	ShowTitle string  `json:"showtitle"`
	Plot      string  `json:"plot"`
	Rating    float64 `json:"rating"`
}

func (r *episodeRecord) toModel() (models.Episode, error) {
	if r.EpisodeID == nil {
		return models.Episode{}, &DecodeError{Entity: "episode", Field: "episodeid"}
	}
	if r.Title == nil {
		return models.Episode{}, &DecodeError{Entity: "episode", Field: "title"}
	}
	if r.Season == nil {
		return models.Episode{}, &DecodeError{Entity: "episode", Field: "season"}
	}
	if r.Episode == nil {
		return models.Episode{}, &DecodeError{Entity: "episode", Field: "episode"}
	}
	return models.Episode{
		EpisodeID: *r.EpisodeID,
		ShowID:    r.ShowID,
		Title:     *r.Title,
		Season:    *r.Season,
		Episode:   *r.Episode,
		File:      r.File,
		ShowTitle: r.ShowTitle,
		Plot:      r.Plot,
		Rating:    r.Rating,
	}, nil
}

type recentMovieRecord struct {
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	File      string   `json:"file"`
	Genre     []string `json:"genre"`
	DateAdded string   `json:"dateadded"`
}

type recentEpisodeRecord struct {
	Title     string `json:"title"`
	Season    int    `json:"season"`
	Episode   int    `json:"episode"`
	ShowTitle string `json:"showtitle"`
	File      string `json:"file"`
	DateAdded string `json:"dateadded"`
}

type playerRecord struct {
	PlayerID *int   `json:"playerid"`
	Type     string `json:"type"`
}

func (r *playerRecord) toModel() (models.Player, error) {
	if r.PlayerID == nil {
		return models.Player{}, &DecodeError{Entity: "player", Field: "playerid"}
	}
	return models.Player{
		PlayerID: *r.PlayerID,
		Type:     r.Type,
	}, nil
}

// defaultSlice normalizes an absent list to an empty one.
func defaultSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func decodeMovies(raw json.RawMessage) ([]models.Movie, error) {
	var page struct {
		Movies []movieRecord `json:"movies"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, &ProtocolError{Detail: fmt.Sprintf("invalid movies payload: %v", err)}
	}

	movies := make([]models.Movie, 0, len(page.Movies))
	for i := range page.Movies {
		m, err := page.Movies[i].toModel()
		if err != nil {
			return nil, err
		}
		movies = append(movies, m)
	}
	return movies, nil
}

func decodeShows(raw json.RawMessage) ([]models.Show, error) {
	var page struct {
		Shows []showRecord `json:"tvshows"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, &ProtocolError{Detail: fmt.Sprintf("invalid shows payload: %v", err)}
	}

	shows := make([]models.Show, 0, len(page.Shows))
	for i := range page.Shows {
		s, err := page.Shows[i].toModel()
		if err != nil {
			return nil, err
		}
		shows = append(shows, s)
	}
	return shows, nil
}

func decodeEpisodes(raw json.RawMessage) ([]models.Episode, error) {
	var page struct {
		Episodes []episodeRecord `json:"episodes"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, &ProtocolError{Detail: fmt.Sprintf("invalid episodes payload: %v", err)}
	}

	episodes := make([]models.Episode, 0, len(page.Episodes))
	for i := range page.Episodes {
		e, err := page.Episodes[i].toModel()
		if err != nil {
			return nil, err
		}
		episodes = append(episodes, e)
	}
	return episodes, nil
}

func decodeRecentMovies(raw json.RawMessage) ([]models.RecentMovie, error) {
	var page struct {
		Movies []recentMovieRecord `json:"movies"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, &ProtocolError{Detail: fmt.Sprintf("invalid recent movies payload: %v", err)}
	}

	movies := make([]models.RecentMovie, 0, len(page.Movies))
	for _, rec := range page.Movies {
		movies = append(movies, models.RecentMovie{
			Title:     rec.Title,
			Year:      rec.Year,
			File:      rec.File,
			Genres:    defaultSlice(rec.Genre),
			DateAdded: rec.DateAdded,
		})
	}
	return movies, nil
}

func decodeRecentEpisodes(raw json.RawMessage) ([]models.RecentEpisode, error) {
	var page struct {
		Episodes []recentEpisodeRecord `json:"episodes"`
	}
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, &ProtocolError{Detail: fmt.Sprintf("invalid recent episodes payload: %v", err)}
	}

	episodes := make([]models.RecentEpisode, 0, len(page.Episodes))
	for _, rec := range page.Episodes {
		episodes = append(episodes, models.RecentEpisode{
			Title:     rec.Title,
			Season:    rec.Season,
			Episode:   rec.Episode,
			ShowTitle: rec.ShowTitle,
			File:      rec.File,
			DateAdded: rec.DateAdded,
		})
	}
	return episodes, nil
}

func decodePlayers(raw json.RawMessage) ([]models.Player, error) {
	var records []playerRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &ProtocolError{Detail: fmt.Sprintf("invalid players payload: %v", err)}
	}

	players := make([]models.Player, 0, len(records))
	for i := range records {
		p, err := records[i].toModel()
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}
