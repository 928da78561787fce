package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"time"

	"github.com/tidewave/restclient/trace"
)

// rawResponse is the in-memory response handle handed to the validator
// once an attempt completes. The body is fully read inside the
// attempt's deadline; readErr records a body read failure and leaves
// its interpretation to the validator.
type rawResponse struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
	readErr    error
}

// doAttempt performs exactly one network attempt under its own
// deadline. The deadline timer is scoped to this attempt and always
// released before returning; a fired deadline is surfaced as
// context.DeadlineExceeded so classification never depends on error
// text. This is the only function that touches the underlying
// transport.
func (c *client) doAttempt(ctx context.Context, method, url string, body []byte, headers map[string]string, timeout time.Duration) (*rawResponse, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := nethttp.NewRequestWithContext(attemptCtx, method, url, reader)
	if err != nil {
		return nil, err
	}

	c.applyHeaders(httpReq, headers, body != nil)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if attemptCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
			return nil, fmt.Errorf("attempt deadline of %v elapsed: %w", timeout, context.DeadlineExceeded)
		}
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, readErr := io.ReadAll(httpResp.Body)
	if readErr != nil {
		respBody = nil
	}

	return &rawResponse{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
		readErr:    readErr,
	}, nil
}

// applyHeaders layers the client's default headers, the descriptor's
// headers (which win on conflict), a JSON content type when a body is
// present, and the propagated request ID.
func (c *client) applyHeaders(httpReq *nethttp.Request, headers map[string]string, hasBody bool) {
	for key, value := range c.config.DefaultHeaders {
		httpReq.Header.Set(key, value)
	}

	for key, value := range headers {
		httpReq.Header.Set(key, value)
	}

	if hasBody && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", contentTypeJSON)
	}

	if httpReq.Header.Get(trace.HeaderXRequestID) == "" {
		httpReq.Header.Set(trace.HeaderXRequestID, trace.EnsureRequestID(httpReq.Context()))
	}
}

// serializeBody turns the descriptor body into wire bytes. Byte slices
// and strings pass through verbatim; everything else is JSON-encoded.
func serializeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	case string:
		return []byte(b), nil
	default:
		return json.Marshal(body)
	}
}
