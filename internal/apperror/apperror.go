package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies a domain error so the HTTP layer can pick a status code
// without string matching.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindConflict
	KindUnavailable
)

type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// Message is the stable, client-safe text for this error.
func (e *Error) Message() string { return e.msg }

func (e *Error) Kind() Kind { return e.kind }

func Validation(msg string) *Error  { return &Error{kind: KindValidation, msg: msg} }
func NotFound(msg string) *Error    { return &Error{kind: KindNotFound, msg: msg} }
func Forbidden(msg string) *Error   { return &Error{kind: KindForbidden, msg: msg} }
func Conflict(msg string) *Error    { return &Error{kind: KindConflict, msg: msg} }
func Unavailable(msg string) *Error { return &Error{kind: KindUnavailable, msg: msg} }

// Internal wraps an unexpected fault. The cause is logged server-side; only
// msg is ever shown to a client.
func Internal(msg string, err error) *Error {
	return &Error{kind: KindInternal, msg: msg, err: err}
}

// KindOf returns the kind of err, or KindInternal for errors that did not
// originate in this package.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind()
	}
	return KindInternal
}

// ClientMessage returns the text safe to serialize to a client. Unexpected
// faults collapse to a generic message so internal detail never leaks.
func ClientMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) && ae.Kind() != KindInternal {
		return ae.Message()
	}
	return "internal server error"
}

// HTTPStatus maps an error to the response status the controllers use.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	case KindConflict:
		return http.StatusConflict
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
