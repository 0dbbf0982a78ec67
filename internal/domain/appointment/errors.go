package appointment

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindInvalidInput Kind = "invalid_input"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindPersistence  Kind = "persistence_failure"
)

// Error is the typed outcome of every failed scheduling operation.
type Error struct {
	Kind Kind
	Code string

	// set only for KindConflict
	ConflictID uint

	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindConflict:
		return fmt.Sprintf("%s: overlaps appointment %d", e.Code, e.ConflictID)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	default:
		return e.Code
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind and Code so sentinel values work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

var ErrInvalidDuration = InvalidInput("invalid_duration")

func InvalidInput(code string) error {
	return &Error{Kind: KindInvalidInput, Code: code}
}

func NotFound(code string) error {
	return &Error{Kind: KindNotFound, Code: code}
}

func Conflict(appointmentID uint) error {
	return &Error{Kind: KindConflict, Code: "time_conflict", ConflictID: appointmentID}
}

func Persistence(code string, err error) error {
	return &Error{Kind: KindPersistence, Code: code, Err: err}
}

// KindOf classifies err. Errors that did not come from this package are
// treated as persistence failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

// ConflictingID returns the id of the appointment a conflict error refers to.
func ConflictingID(err error) (uint, bool) {
	var e *Error
	if errors.As(err, &e) && e.Kind == KindConflict {
		return e.ConflictID, true
	}
	return 0, false
}

func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return "internal_error"
}
