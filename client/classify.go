package client

import (
	"context"
	"errors"
	"net"
	"regexp"
	"strings"
	"syscall"
)

// classifyTransportError maps a raised transport error onto the closed
// taxonomy. The deadline mechanism is the authoritative timeout signal;
// substring matching is confined to this one function and only covers
// signals the transport does not expose as typed errors. Every input
// yields a tagged error, never a raw one.
func classifyTransportError(err error, method, url string) *Error {
	switch {
	case isTimeoutError(err):
		return newError(KindTimeout, 0, "request deadline elapsed", url, err).
			withDetail("method", method)

	case isNetworkError(err):
		return newError(KindNetwork, 0, "failed to reach remote host", url, err).
			withDetail("method", method)

	case isCorsError(err):
		// Retrying cannot fix a policy mismatch.
		return newError(KindCors, 0, "cross-origin request rejected", url, err).
			withDetail("method", method)

	default:
		return newError(KindClient, 0, "request failed", url, err).
			withDetail("method", method)
	}
}

func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isNetworkError(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EHOSTUNREACH) || errors.Is(err, syscall.ENETUNREACH) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}

// corsPattern matches "cors" only as a whole word, so unrelated text
// like "scores" or "corsica" is not misread as a policy rejection.
var corsPattern = regexp.MustCompile(`\bcors\b|cross-origin`)

func isCorsError(err error) bool {
	return corsPattern.MatchString(strings.ToLower(err.Error()))
}
