package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind distinguishes request failures so handlers can map them to a status
// code without string matching.
type Kind string

const (
	NotFound   Kind = "not_found"
	Validation Kind = "validation"
	Upstream   Kind = "upstream"
	Parse      Kind = "parse"
)

type Error struct {
	Kind    Kind
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

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the kind of err, or "" when err carries none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Status maps an error to the HTTP status a handler should respond with.
// Failures are reported to the caller and never retried; unknown errors are
// internal.
func Status(err error) int {
	switch KindOf(err) {
	case NotFound:
		return http.StatusNotFound
	case Validation:
		return http.StatusBadRequest
	case Upstream, Parse:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
