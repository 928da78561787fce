package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testURL = "https://api.example.com/quote"

func TestClassifyDeadlineExceeded(t *testing.T) {
	err := fmt.Errorf("attempt deadline of 50ms elapsed: %w", context.DeadlineExceeded)

	classified := classifyTransportError(err, "GET", testURL)
	assert.Equal(t, KindTimeout, classified.Kind)
	assert.True(t, classified.Retryable())
}

type timeoutNetError struct{}

func (timeoutNetError) Error() string   { return "i/o timeout" }
func (timeoutNetError) Timeout() bool   { return true }
func (timeoutNetError) Temporary() bool { return true }

func TestClassifyNetErrorTimeout(t *testing.T) {
	classified := classifyTransportError(timeoutNetError{}, "GET", testURL)
	assert.Equal(t, KindTimeout, classified.Kind)
}

func TestClassifyDNSFailure(t *testing.T) {
	err := &net.DNSError{Err: "no such host", Name: "api.example.com", IsNotFound: true}

	classified := classifyTransportError(err, "GET", testURL)
	assert.Equal(t, KindNetwork, classified.Kind)
	assert.True(t, classified.Retryable())
}

func TestClassifyConnectionRefused(t *testing.T) {
	err := &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}

	classified := classifyTransportError(err, "POST", testURL)
	assert.Equal(t, KindNetwork, classified.Kind)
}

func TestClassifyCorsRejection(t *testing.T) {
	err := errors.New("blocked by CORS policy: no access-control-allow-origin header")

	classified := classifyTransportError(err, "GET", testURL)
	assert.Equal(t, KindCors, classified.Kind)
	assert.False(t, classified.Retryable())
}

// "cors" only counts as a whole word; embedded occurrences stay in the
// generic client bucket.
func TestClassifyCorsRequiresWordMatch(t *testing.T) {
	for _, msg := range []string{
		"failed to fetch scores from upstream",
		"route to corsica.example.com rejected",
	} {
		classified := classifyTransportError(errors.New(msg), "GET", testURL)
		assert.Equal(t, KindClient, classified.Kind, msg)
	}

	classified := classifyTransportError(errors.New("request blocked: CORS preflight failed"), "GET", testURL)
	assert.Equal(t, KindCors, classified.Kind)
}

func TestClassifyUnknownError(t *testing.T) {
	classified := classifyTransportError(errors.New("something odd happened"), "GET", testURL)
	assert.Equal(t, KindClient, classified.Kind)
	assert.False(t, classified.Retryable())
}

// An arbitrary error mentioning "timeout" in its text must not be
// classified as a timeout; the deadline mechanism is authoritative.
func TestClassifyTimeoutTextNotAuthoritative(t *testing.T) {
	err := errors.New("session timeout page returned by proxy")

	classified := classifyTransportError(err, "GET", testURL)
	assert.Equal(t, KindClient, classified.Kind)
}

func TestClassifyAlwaysTagged(t *testing.T) {
	inputs := []error{
		context.DeadlineExceeded,
		context.Canceled,
		errors.New(""),
		&net.DNSError{Err: "x"},
	}
	for _, err := range inputs {
		classified := classifyTransportError(err, "GET", testURL)
		require.NotNil(t, classified)
		assert.NotEmpty(t, classified.Kind)
	}
}

func TestClassifyAttachesContext(t *testing.T) {
	classified := classifyTransportError(context.DeadlineExceeded, "PUT", testURL)
	assert.Equal(t, testURL, classified.URL)
	assert.Equal(t, "PUT", classified.Details["method"])
}
