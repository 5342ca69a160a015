package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind sentinels. Every *Error wraps exactly one of them so callers can use errors.Is.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnexpected   = errors.New("unexpected failure")
)

// Error is an application error carrying its kind, a stable code and a client-safe message.
type Error struct {
	Kind    error
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether target is the kind sentinel of e.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: ErrValidation, Code: "VALIDATION_ERROR", Message: message}
}

// NotFound creates a not-found error. reason is wrapped so different
// not-found causes stay distinguishable with errors.Is.
func NotFound(message string, reason error) *Error {
	return &Error{Kind: ErrNotFound, Code: "NOT_FOUND", Message: message, Err: reason}
}

func Conflict(message string) *Error {
	return &Error{Kind: ErrConflict, Code: "CONFLICT", Message: message}
}

func Unauthorized(message string) *Error {
	return &Error{Kind: ErrUnauthorized, Code: "UNAUTHORIZED", Message: message}
}

// Unexpected wraps a store or collaborator failure. The cause is never shown to clients.
func Unexpected(err error) *Error {
	return &Error{Kind: ErrUnexpected, Code: "INTERNAL_ERROR", Message: "Internal server error", Err: err}
}

// HTTPStatus maps an error to the status code of its kind.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
