// Package serrors carries semantic error kinds across package boundaries so
// callers can branch on what went wrong (bad input, upstream outage, quota)
// without inspecting provider-specific error strings.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Kinds are comparable sentinels created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrBadRequest marks input the user can fix, such as a malformed number.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrUnauthorized marks a missing or invalid admin token.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden marks a caller that is known but not allowed.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrNotFound marks a missing entity.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrInternal marks a bug or an unexpected state.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout marks an upstream call that ran out of time.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable marks a transport failure talking to an upstream service.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited marks an exhausted quota, either ours or an upstream's.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error pairs a Kind with an optional cause and message.
//
// errors.Is and errors.As match either the kind or anything in the cause chain.
// Error() renders "<msg>: <cause>", falling back to whichever part is set and
// finally to the kind name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds an error of kind k with a formatted message and no cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds an error of kind k around err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds an error that carries nothing but its kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is this error's kind or part of its cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) ||
		(e.err != nil && errors.Is(e.err, target))
}

// As extracts either the kind or a typed cause.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) ||
		(e.err != nil && errors.As(e.err, target))
}

// Kind returns the kind of e, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to e.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, which may be nil.
func (e *Error) Cause() error { return e.err }

// KindOf returns the kind of the first *Error found in err's chain, or nil if
// there is none.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.kind
	}

	return nil
}

// IsTransient reports whether err describes an upstream failure that may
// succeed on a different attempt: a timeout, an outage or a rate limit.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrUnavailable) || errors.Is(err, ErrRateLimited)
}
