package client

import (
	"context"
	nethttp "net/http"
	"time"
)

// probeTimeout bounds the liveness check independently of the client's
// call deadline.
const probeTimeout = 3 * time.Second

// Ping reports whether the configured base address is reachable. Any
// HTTP response counts as reachable; only a transport failure does
// not. There is no retry, classification, or envelope here.
func (c *client) Ping(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := nethttp.NewRequestWithContext(probeCtx, nethttp.MethodHead, c.config.BaseURL, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return true
}
