package models

import (
	"errors"
	"fmt"
	"strings"
)

// ProjectStatus is the lifecycle state of a project
type ProjectStatus int

const (
	StatusActive   ProjectStatus = iota // Being worked on
	StatusFinished                      // Done
)

// ErrUnknownStatus is returned when a status name cannot be parsed
var ErrUnknownStatus = errors.New("unknown project status")

// Statuses lists every status in display order
func Statuses() []ProjectStatus {
	return []ProjectStatus{StatusActive, StatusFinished}
}

// String returns the lowercase name of the status
func (s ProjectStatus) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusFinished:
		return "finished"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseStatus converts a status name (case-insensitive) into a ProjectStatus
func ParseStatus(name string) (ProjectStatus, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "active":
		return StatusActive, nil
	case "finished":
		return StatusFinished, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStatus, name)
	}
}

// MarshalText implements encoding.TextMarshaler
func (s ProjectStatus) MarshalText() ([]byte, error) {
	if s != StatusActive && s != StatusFinished {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStatus, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *ProjectStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
