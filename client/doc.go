// Package client provides the outbound access layer for remote HTTP
// APIs: every call resolves to a single Result envelope holding either
// a validated payload or one classified error, never a raw failure.
//
// Pipeline
//   - Relative paths resolve against the configured base address;
//     absolute addresses pass through unchanged.
//   - Each attempt runs under its own deadline; deadline expiry is the
//     authoritative timeout signal.
//   - Responses are validated in a fixed order: 404, 5xx, remaining
//     4xx, HTML-instead-of-JSON rejection, then body decoding.
//   - Transport failures are classified onto a closed taxonomy
//     (network, server, client, format, timeout, cors, not_found) and
//     retry eligibility derives from the kind alone.
//
// Retries
//   - Controlled per call via RequestOptions.MaxAttempts and
//     RequestOptions.RetryDelay, falling back to the client defaults.
//   - The wait before attempt n+1 is exactly RetryDelay * n (linear
//     backoff).
//   - Non-retryable failures abort immediately; the terminal retry
//     state (succeeded, exhausted, aborted) is stamped on the Result.
//
// Notes
//   - Request bodies are rebuilt for every attempt.
//   - The client holds no mutable per-call state and is safe for
//     concurrent use.
package client
