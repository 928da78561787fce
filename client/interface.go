package client

import (
	"context"
	"time"
)

const (
	// DefaultTimeout is the default per-attempt deadline
	DefaultTimeout = 10 * time.Second

	// DefaultMaxAttempts is the default attempt budget for one logical call
	DefaultMaxAttempts = 1

	// DefaultRetryDelay is the base unit for linear backoff between attempts
	DefaultRetryDelay = 1 * time.Second
)

// Client is the access layer's boundary: every operation resolves to
// exactly one Result, never a raw error or panic.
type Client interface {
	Get(ctx context.Context, path string, opts *RequestOptions) *Result
	Post(ctx context.Context, path string, body any, opts *RequestOptions) *Result
	Put(ctx context.Context, path string, body any, opts *RequestOptions) *Result
	Patch(ctx context.Context, path string, body any, opts *RequestOptions) *Result
	Delete(ctx context.Context, path string, opts *RequestOptions) *Result
	Do(ctx context.Context, path string, opts *RequestOptions) *Result

	// Ping is a boolean reachability probe with no retry or
	// classification semantics.
	Ping(ctx context.Context) bool
}

// RequestOptions is the caller-supplied descriptor for one logical
// call. It is constructed fresh per call and must not be mutated after
// being handed to the client; the verb shorthands copy it before
// filling in the verb and body.
type RequestOptions struct {
	// Method selects the transport verb; defaults to GET.
	Method string

	// Headers are merged over the client's default headers; the
	// descriptor wins on conflict.
	Headers map[string]string

	// Body is serialized per verb and ignored for read-only verbs.
	// []byte and string pass through verbatim; anything else is
	// JSON-encoded.
	Body any

	// Timeout overrides the client's default per-attempt deadline.
	Timeout time.Duration

	// MaxAttempts overrides the client's default attempt budget.
	MaxAttempts int

	// RetryDelay is the base delay unit for linear backoff.
	RetryDelay time.Duration

	// ValidateJSON enables rejection of HTML documents served where
	// structured data was expected.
	ValidateJSON bool

	// ExpectJSON declares whether the caller wants structured data or
	// will accept opaque text.
	ExpectJSON bool
}

// NewRequestOptions returns a descriptor with JSON semantics enabled,
// which is what API call sites want. Zero-value RequestOptions give
// raw-text semantics instead.
func NewRequestOptions() *RequestOptions {
	return &RequestOptions{
		ValidateJSON: true,
		ExpectJSON:   true,
	}
}

// clone returns a shallow copy with its own headers map, so shorthand
// verbs can fill fields without mutating the caller's descriptor.
func (o *RequestOptions) clone() *RequestOptions {
	if o == nil {
		return NewRequestOptions()
	}
	c := *o
	if o.Headers != nil {
		c.Headers = make(map[string]string, len(o.Headers))
		for k, v := range o.Headers {
			c.Headers[k] = v
		}
	}
	return &c
}

// Config holds the shared, immutable configuration for one client
// instance. Multiple clients with different configurations coexist
// without interference.
type Config struct {
	// BaseURL is the address relative paths resolve against.
	BaseURL string

	// Timeout is the default per-attempt deadline.
	Timeout time.Duration

	// MaxAttempts is the default attempt budget per logical call.
	MaxAttempts int

	// RetryDelay is the default base delay for linear backoff.
	RetryDelay time.Duration

	// DefaultHeaders are attached to every outbound request, such as a
	// client version or environment tag.
	DefaultHeaders map[string]string
}
