package models

import (
	"errors"
	"testing"
)

// ============================================================================
// Status Tests
// ============================================================================

func TestStatus_String(t *testing.T) {
	tests := []struct {
		status ProjectStatus
		want   string
	}{
		{StatusActive, "active"},
		{StatusFinished, "finished"},
		{ProjectStatus(7), "status(7)"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("ProjectStatus(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    ProjectStatus
		wantErr bool
	}{
		{"active", StatusActive, false},
		{"Finished", StatusFinished, false},
		{"  ACTIVE ", StatusActive, false},
		{"done", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownStatus) {
					t.Errorf("ParseStatus(%q) error = %v, want ErrUnknownStatus", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseStatus(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseStatus(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStatus_TextRoundTrip(t *testing.T) {
	for _, s := range Statuses() {
		text, err := s.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) failed: %v", s, err)
		}
		var back ProjectStatus
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
		}
		if back != s {
			t.Errorf("round trip of %v gave %v", s, back)
		}
	}

	if _, err := ProjectStatus(9).MarshalText(); !errors.Is(err, ErrUnknownStatus) {
		t.Errorf("MarshalText(9) error = %v, want ErrUnknownStatus", err)
	}
}

// ============================================================================
// Project Tests
// ============================================================================

func TestProject_PeopleLabel(t *testing.T) {
	if got := (Project{People: 1}).PeopleLabel(); got != "1 person assigned" {
		t.Errorf("PeopleLabel() for 1 = %q", got)
	}
	if got := (Project{People: 4}).PeopleLabel(); got != "4 persons assigned" {
		t.Errorf("PeopleLabel() for 4 = %q", got)
	}
}
