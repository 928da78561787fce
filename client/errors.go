package client

import (
	"errors"
	"fmt"
	"time"
)

// ErrorKind is the closed classification every failure is mapped onto.
// Callers branch on the kind alone; message text and details are
// diagnostic and carry no stable contract.
type ErrorKind string

const (
	// KindNetwork indicates the transport could not reach the remote host.
	KindNetwork ErrorKind = "network"
	// KindServer indicates the remote host answered with a 5xx status.
	KindServer ErrorKind = "server"
	// KindClient indicates a non-404 4xx status or an unclassified local failure.
	KindClient ErrorKind = "client"
	// KindFormat indicates the response violated the expected payload contract.
	KindFormat ErrorKind = "format"
	// KindTimeout indicates the per-attempt deadline elapsed before completion.
	KindTimeout ErrorKind = "timeout"
	// KindCors indicates a cross-origin policy rejection.
	KindCors ErrorKind = "cors"
	// KindNotFound indicates the remote host answered 404.
	KindNotFound ErrorKind = "not_found"
)

// kindRetryable is the single source of truth for retry eligibility.
// The orchestrator consults this table through Error.Retryable; nothing
// sets eligibility ad hoc.
var kindRetryable = map[ErrorKind]bool{
	KindNetwork:  true,
	KindServer:   true,
	KindTimeout:  true,
	KindClient:   false,
	KindFormat:   false,
	KindCors:     false,
	KindNotFound: false,
}

// Retryable reports whether the kind is eligible for automatic retry.
func (k ErrorKind) Retryable() bool {
	return kindRetryable[k]
}

// Error is the classified failure attached to a Result. Exactly one
// Error is present on every failed Result.
type Error struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	URL        string
	Timestamp  time.Time
	Details    map[string]any

	cause error
}

// newError creates a classified error stamped with the current time.
func newError(kind ErrorKind, statusCode int, message, url string, cause error) *Error {
	return &Error{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
		URL:        url,
		Timestamp:  time.Now(),
		cause:      cause,
	}
}

// withDetail attaches a diagnostic key/value pair and returns the error.
func (e *Error) withDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Retryable reports whether the orchestrator may consume another
// attempt for this failure. Derived from Kind only.
func (e *Error) Retryable() bool {
	return kindRetryable[e.Kind]
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s error: %s", e.Kind, e.Message)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status: %d)", msg, e.StatusCode)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is compares error kinds for errors.Is.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Kind == targetErr.Kind
	}
	return false
}

// IsKind checks if an error is a classified error of a specific kind.
func IsKind(err error, kind ErrorKind) bool {
	if err == nil {
		return false
	}
	var clientErr *Error
	if errors.As(err, &clientErr) {
		return clientErr.Kind == kind
	}
	return false
}
