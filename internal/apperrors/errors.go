// Package apperrors defines the error taxonomy shared by services and handlers.
// Services return these typed errors; handlers map Kind to an HTTP status.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP boundary.
type Kind int

const (
	KindStore      Kind = iota // persistence failure -> 500
	KindValidation             // missing/malformed input -> 400
	KindNotFound               // unknown id -> 404
	KindPermission             // operation by the wrong user -> 403
	KindConflict               // state transition not allowed -> 400
)

// Error is an error with a Kind and an optional wrapped cause.
type Error struct {
	ErrKind Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports missing or malformed input.
func Validation(message string) *Error {
	return &Error{ErrKind: KindValidation, Message: message}
}

// NotFound reports an unknown entity id.
func NotFound(message string) *Error {
	return &Error{ErrKind: KindNotFound, Message: message}
}

// Permission reports an operation attempted by a user who is not allowed to perform it.
func Permission(message string) *Error {
	return &Error{ErrKind: KindPermission, Message: message}
}

// Conflict reports a state transition that is not allowed in the current state.
func Conflict(message string) *Error {
	return &Error{ErrKind: KindConflict, Message: message}
}

// Store wraps an underlying persistence failure.
func Store(message string, err error) *Error {
	return &Error{ErrKind: KindStore, Message: message, Err: err}
}

// KindOf extracts the Kind from err. Untyped errors are treated as store errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.ErrKind
	}
	return KindStore
}

// Cause returns the message of the innermost wrapped error, or the error's own
// message when nothing is wrapped. Handlers surface this in 500 bodies.
func Cause(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Err != nil {
		return e.Err.Error()
	}
	return err.Error()
}
