// Package apperror classifies request failures so the HTTP layer can answer
// with the right status without knowing the domain packages.
package apperror

import (
	"errors"
	"net/http"
)

// Kind is a stable error category.
type Kind string

const (
	KindNotFound    Kind = "not_found"
	KindValidation  Kind = "validation"
	KindRateLimit   Kind = "rate_limited"
	KindUnavailable Kind = "unavailable"
)

// Status is the HTTP status for k. Unknown kinds are internal errors.
func (k Kind) Status() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindRateLimit:
		return http.StatusTooManyRequests
	case KindUnavailable:
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// Error is a classified failure. Msg is safe to show to clients; Param names
// the query or path parameter at fault, if any.
type Error struct {
	Kind  Kind
	Param string
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func New(kind Kind, msg string, err error) error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// BadParam reports an invalid request parameter.
func BadParam(param, msg string, err error) error {
	return &Error{Kind: KindValidation, Param: param, Msg: msg, Err: err}
}

func NotFound(msg string, err error) error    { return New(KindNotFound, msg, err) }
func RateLimited(msg string) error            { return New(KindRateLimit, msg, nil) }
func Unavailable(msg string, err error) error { return New(KindUnavailable, msg, err) }

// Is reports whether err (or anything it wraps) is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Kind
}

// ParamOf returns the parameter named by the first *Error in err's chain.
func ParamOf(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.Param
}
