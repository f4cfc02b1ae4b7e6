// Package apperr defines structured application errors.
package apperr

import (
	"errors"
	"fmt"
)

// Error is a structured application error. Kind identifies the failure
// condition while Message carries the user-facing text, so a formatted
// copy still matches its sentinel through errors.Is.
type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// Fmt returns a copy of e with its message used as a printf-style format
// for the provided arguments.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Kind:    e.Kind,
		Message: fmt.Sprintf(e.Message, args...),
	}
}

// Wrap returns a copy of e annotated with the underlying cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Kind:    e.Kind,
		Message: fmt.Sprintf("%s: %v", e.Message, err),
	}
}

// Is reports whether target represents the same error condition.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	if e.Kind != "" || t.Kind != "" {
		return e.Kind == t.Kind
	}

	return e.Message == t.Message
}
