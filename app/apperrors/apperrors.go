// Package apperrors defines the classified outcomes returned by the service
// layer. Controllers match on the kind to pick a response code; services and
// repositories never see HTTP status codes.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind tags an error with its place in the outcome taxonomy.
type Kind int

const (
	// Validation means the input violated a field constraint.
	Validation Kind = iota
	// MalformedRef means an identifier did not parse as a valid reference.
	// It is surfaced like NotFound so identifier structure does not leak.
	MalformedRef
	// NotFound means the entity is absent.
	NotFound
	// Forbidden means an ownership check failed before any mutation.
	Forbidden
	// Unauthorized means no acting identity could be resolved.
	Unauthorized
	// Conflict means the write collided with existing state, e.g. a
	// duplicate user ID at registration.
	Conflict
	// Storage means the persistence layer could not complete the request.
	// This is the only kind eligible for caller-side retry.
	Storage
)

// Error is a classified outcome with a user-visible message and an optional
// wrapped cause.
type Error struct {
	kind Kind
	msg  string
	err  error
}

// New returns a classified error with the given kind and message.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Wrap classifies an underlying error, keeping it available via Unwrap.
func Wrap(kind Kind, err error, msg string) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.err
}

// Kind returns the error's classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// KindOf classifies any error. Errors that did not come through this package
// are treated as storage failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return Storage
}

// Message returns the user-visible message for an error. The wrapped cause
// is deliberately excluded for unclassified errors.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.msg
	}
	return "internal server error"
}

// HTTPStatus maps a classified outcome to a response code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case Validation:
		return http.StatusBadRequest
	case MalformedRef, NotFound:
		return http.StatusNotFound
	case Forbidden:
		return http.StatusForbidden
	case Unauthorized:
		return http.StatusUnauthorized
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
