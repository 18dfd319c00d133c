// Baton - Media Center Remote Control and Resolution Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/baton

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}

	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// controlArgs mirrors the shape of a playback control command's arguments.
type controlArgs struct {
	Action string `validate:"required,oneof=pause stop status"`
}

// episodeArgs mirrors the shape of an episode playback command's arguments.
type episodeArgs struct {
	ShowTitle string `validate:"required"`
	Season    int    `validate:"gte=0"`
	Episode   int    `validate:"gte=1"`
}

// recentArgs mirrors the shape of a recently-added listing command's arguments.
type recentArgs struct {
	MediaType string `validate:"omitempty,oneof=movies episodes both"`
	Limit     int    `validate:"omitempty,min=1,max=100"`
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
	}{
		{
			name:  "control action pause",
			input: &controlArgs{Action: "pause"},
		},
		{
			name:  "control action status",
			input: &controlArgs{Action: "status"},
		},
		{
			name:  "episode with season zero",
			input: &episodeArgs{ShowTitle: "Alien Chronicles", Season: 0, Episode: 1},
		},
		{
			name:  "recent with defaults zeroed",
			input: &recentArgs{},
		},
		{
			name:  "recent fully specified",
			input: &recentArgs{MediaType: "both", Limit: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(tt.input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantTag   string
	}{
		{
			name:      "missing control action",
			input:     &controlArgs{},
			wantField: "Action",
			wantTag:   "required",
		},
		{
			name:      "unknown control action",
			input:     &controlArgs{Action: "rewind"},
			wantField: "Action",
			wantTag:   "oneof",
		},
		{
			name:      "missing show title",
			input:     &episodeArgs{Season: 1, Episode: 1},
			wantField: "ShowTitle",
			wantTag:   "required",
		},
		{
			name:      "negative season",
			input:     &episodeArgs{ShowTitle: "Alien Chronicles", Season: -1, Episode: 1},
			wantField: "Season",
			wantTag:   "gte",
		},
		{
			name:      "episode below one",
			input:     &episodeArgs{ShowTitle: "Alien Chronicles", Season: 1, Episode: -2},
			wantField: "Episode",
			wantTag:   "gte",
		},
		{
			name:      "unknown media type",
			input:     &recentArgs{MediaType: "albums"},
			wantField: "MediaType",
			wantTag:   "oneof",
		},
		{
			name:      "limit too high",
			input:     &recentArgs{Limit: 500},
			wantField: "Limit",
			wantTag:   "max",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}

			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 validation error, got %d: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
		})
	}
}

func TestValidateStruct_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&episodeArgs{Season: -1, Episode: 0})
	if err == nil {
		t.Fatal("ValidateStruct() should have returned an error")
	}

	if len(err.Errors()) != 3 {
		t.Errorf("expected 3 validation errors, got %d: %v", len(err.Errors()), err)
	}

	// Combined message joins individual errors
	if !strings.Contains(err.Error(), ";") {
		t.Errorf("Error() = %q, want combined message with separator", err.Error())
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	err := ValidateStruct(&controlArgs{})
	if err == nil {
		t.Fatal("ValidateStruct() should have returned an error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Message != "Action is required" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Action is required")
	}
	if apiErr.Details["field"] != "Action" {
		t.Errorf("Details[field] = %v, want Action", apiErr.Details["field"])
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	err := ValidateStruct(&episodeArgs{Season: -1, Episode: 0})
	if err == nil {
		t.Fatal("ValidateStruct() should have returned an error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}

	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] has unexpected type %T", apiErr.Details["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("expected 3 field entries, got %d", len(fields))
	}
}

func TestTranslateError_Messages(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		wantMsg string
	}{
		{
			name:    "oneof lists allowed values",
			input:   &controlArgs{Action: "eject"},
			wantMsg: "Action must be one of: pause stop status",
		},
		{
			name:    "gte names the bound",
			input:   &episodeArgs{ShowTitle: "x", Season: -5, Episode: 1},
			wantMsg: "Season must be greater than or equal to 0",
		},
		{
			name:    "max names the bound",
			input:   &recentArgs{Limit: 101},
			wantMsg: "Limit must be at most 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}
			if got := err.Errors()[0].Error(); got != tt.wantMsg {
				t.Errorf("message = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

// taggedArgs carries json tags, the shape real command arguments have.
type taggedArgs struct {
	ShowTitle string `json:"show_title" validate:"required"`
	Skipped   string `json:"-"         validate:"omitempty"`
}

func TestValidateStruct_JSONTagNames(t *testing.T) {
	err := ValidateStruct(&taggedArgs{})
	if err == nil {
		t.Fatal("ValidateStruct() should have returned an error")
	}

	first := err.Errors()[0]
	if first.Field() != "show_title" {
		t.Errorf("Field() = %q, want json tag name show_title", first.Field())
	}
	if first.Error() != "show_title is required" {
		t.Errorf("message = %q, want %q", first.Error(), "show_title is required")
	}
}
