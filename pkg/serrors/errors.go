package serrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind partitions service errors into the four classes the API layer knows
// how to map to transport responses. Anything else is treated as internal.
type Kind string

const (
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindForbidden  Kind = "forbidden"
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]any
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// Status maps the error kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// WithDetails attaches structured, machine-readable context to the error.
// Keys are merged; later calls win on collision.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any, len(details))
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

func newError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func NewValidation(code, message string) *Error {
	return newError(KindValidation, code, message)
}

func NewNotFound(code, message string) *Error {
	return newError(KindNotFound, code, message)
}

func NewConflict(code, message string) *Error {
	return newError(KindConflict, code, message)
}

func NewForbidden(code, message string) *Error {
	return newError(KindForbidden, code, message)
}

func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

func isKind(err error, kind Kind) bool {
	e, ok := As(err)
	return ok && e.Kind == kind
}

func IsValidation(err error) bool { return isKind(err, KindValidation) }
func IsNotFound(err error) bool   { return isKind(err, KindNotFound) }
func IsConflict(err error) bool   { return isKind(err, KindConflict) }
func IsForbidden(err error) bool  { return isKind(err, KindForbidden) }
