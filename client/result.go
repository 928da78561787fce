package client

import (
	"encoding/json"
	"net/http"
	"time"
)

// Result is the uniform envelope every call resolves to. Success and
// Err are mutually exclusive and exhaustive: a successful Result never
// carries an Err, and a failed Result always carries exactly one.
type Result struct {
	// Success reports whether the call produced a validated payload.
	Success bool

	// StatusCode is the numeric response status, 0 when no response
	// was ever received.
	StatusCode int

	// Data is the decoded JSON payload on success; nil for an empty
	// body or when the caller asked for opaque text.
	Data any

	// Raw holds the response body bytes as received.
	Raw []byte

	// Err is the classified failure; nil on success.
	Err *Error

	// Headers are the response headers, empty on transport failure.
	Headers http.Header

	// IsHTML marks a response whose declared content kind was an HTML
	// document rather than structured data.
	IsHTML bool

	// Stats describes how the call was executed.
	Stats Stats
}

// Stats describes one resolved call: wall time, attempts consumed, and
// the terminal retry state.
type Stats struct {
	ElapsedTime time.Duration
	Attempts    int
	State       RetryState
}

// successResult builds a success envelope.
func successResult(statusCode int, data any, raw []byte, headers http.Header) *Result {
	if headers == nil {
		headers = http.Header{}
	}
	return &Result{
		Success:    true,
		StatusCode: statusCode,
		Data:       data,
		Raw:        raw,
		Headers:    headers,
	}
}

// failureResult builds a failure envelope around one classified error.
func failureResult(err *Error, headers http.Header) *Result {
	if headers == nil {
		headers = http.Header{}
	}
	return &Result{
		Success:    false,
		StatusCode: err.StatusCode,
		Err:        err,
		Headers:    headers,
	}
}

// Decode unmarshals a successful Result's raw payload into T. It is
// the typed accessor for callers that know the expected shape.
func Decode[T any](res *Result) (T, error) {
	var out T
	if res == nil {
		return out, newError(KindClient, 0, "nil result", "", nil)
	}
	if !res.Success {
		return out, res.Err
	}
	if len(res.Raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(res.Raw, &out); err != nil {
		return out, newError(KindFormat, res.StatusCode, "failed to decode payload", "", err).
			withDetail("excerpt", bodyExcerpt(res.Raw))
	}
	return out, nil
}
