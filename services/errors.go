package services

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the requested record does not exist (or belongs to
	// another user).
	ErrNotFound = errors.New("record not found")

	// ErrSourceNotFound means a referenced meal/food/ingredient id did not
	// resolve while building a composition or snapshot.
	ErrSourceNotFound = errors.New("referenced source not found")

	// ErrEmptyComposition means a food, meal or ad hoc log had zero
	// component entries. Rejected outright, never defaulted to zero
	// nutrition.
	ErrEmptyComposition = errors.New("composition list is empty")

	// ErrInvalidReference means a reference serving amount of zero or less
	// reached the unit converter. Upstream validation should have caught
	// it, so this is a data-integrity defect rather than a user error.
	ErrInvalidReference = errors.New("reference serving amount must be positive")

	// ErrForbidden means a history snapshot edit was attempted outside the
	// editable window.
	ErrForbidden = errors.New("snapshot is outside the editable window")
)

// ValidationError reports malformed or out-of-range user input. It is
// surfaced directly to the caller and never retried.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
