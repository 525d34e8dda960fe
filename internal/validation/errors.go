package validation

import (
	"errors"
	"fmt"
)

// Constraint violations
var (
	ErrRequired = errors.New("value is required")
	ErrTooShort = errors.New("value is too short")
	ErrTooLong  = errors.New("value is too long")
	ErrTooSmall = errors.New("value is too small")
	ErrTooLarge = errors.New("value is too large")
)

// Error reports which constraint a value violated
type Error struct {
	Constraint error // One of the Err* sentinels
	Limit      int   // The configured limit, unused for ErrRequired
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Constraint {
	case ErrTooShort:
		return fmt.Sprintf("must be at least %d characters", e.Limit)
	case ErrTooLong:
		return fmt.Sprintf("must be at most %d characters", e.Limit)
	case ErrTooSmall:
		return fmt.Sprintf("must be at least %d", e.Limit)
	case ErrTooLarge:
		return fmt.Sprintf("must be at most %d", e.Limit)
	default:
		return e.Constraint.Error()
	}
}

// Unwrap exposes the sentinel so callers can use errors.Is
func (e *Error) Unwrap() error {
	return e.Constraint
}
