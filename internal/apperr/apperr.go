// Package apperr defines the error type used across deepwork and the kinds
// callers can match against with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the referenced record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidTransition means the operation is not permitted from the
	// current session status.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrInvalidState means a stored record violates an invariant.
	ErrInvalidState = errors.New("invalid state")
	// ErrInvalidInput means the caller supplied a value that fails validation.
	ErrInvalidInput = errors.New("invalid input")
)

// Error is a message template with an optional kind and cause.
type Error struct {
	Kind    error
	Cause   error
	Message string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

// Fmt returns a copy of the error with its message formatted using args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: fmt.Sprintf(e.Message, args...),
		Kind:    e.Kind,
		Cause:   e.Cause,
	}
}

// Wrap returns a copy of the error that wraps err.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message: e.Message,
		Kind:    e.Kind,
		Cause:   err,
	}
}

func (e *Error) Unwrap() []error {
	var errs []error

	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}

	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}

	return errs
}

// KindOf reports which of the known kinds err matches, or nil.
func KindOf(err error) error {
	for _, kind := range []error{
		ErrNotFound,
		ErrInvalidTransition,
		ErrInvalidState,
		ErrInvalidInput,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}
