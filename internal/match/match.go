// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

// Package match implements the fuzzy title matching used to resolve
// free-text queries against catalog entities.
//
// Matching is deterministic and case-insensitive. Three checks run in
// order and the first positive wins: exact equality, substring
// containment of the query in the candidate, then Jaccard similarity
// over whitespace-separated token sets. The order matters: a query that
// is a strict substring of a candidate must match regardless of how the
// token overlap scores.
package match

import "strings"

// DefaultThreshold is the minimum Jaccard similarity for a token-overlap
// match.
const DefaultThreshold = 0.6

// Matches reports whether query matches candidate at the default
// threshold.
func Matches(query, candidate string) bool {
	return MatchesThreshold(query, candidate, DefaultThreshold)
}

// MatchesThreshold reports whether query matches candidate.
//
// An empty query matches every candidate through the substring check.
// The token-overlap check never matches when either side has no tokens.
func MatchesThreshold(query, candidate string, threshold float64) bool {
	q := strings.ToLower(query)
	c := strings.ToLower(candidate)

	if q == c {
		return true
	}
	if strings.Contains(c, q) {
		return true
	}

	qTokens := tokenSet(q)
	cTokens := tokenSet(c)
	if len(qTokens) == 0 || len(cTokens) == 0 {
		return false
	}
	return jaccard(qTokens, cTokens) >= threshold
}

// ContainsGenre reports whether any genre in the list contains the query,
// case-insensitively. Used by the search filters.
func ContainsGenre(genres []string, query string) bool {
	q := strings.ToLower(query)
	for _, genre := range genres {
		if strings.Contains(strings.ToLower(genre), q) {
			return true
		}
	}
	return false
}

// tokenSet splits a lowercased string on whitespace into a word set.
func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// jaccard computes intersection size over union size for two token sets.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	intersection := 0
	for token := range a {
		if _, ok := b[token]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
