package client

import (
	"context"
	"time"
)

// RetryState is the terminal state of the retry machine for one
// logical call. Together with the classified error it answers why a
// call stopped retrying, independent of control flow.
type RetryState int

const (
	// StateAttempting is the non-terminal state while an attempt is in flight.
	StateAttempting RetryState = iota
	// StateSucceeded terminates the call with a success envelope.
	StateSucceeded
	// StateExhausted terminates the call when the attempt budget is spent.
	StateExhausted
	// StateAborted terminates the call on a non-retryable failure with
	// budget remaining.
	StateAborted
)

// String returns a readable representation of the state.
func (s RetryState) String() string {
	switch s {
	case StateAttempting:
		return "attempting"
	case StateSucceeded:
		return "succeeded"
	case StateExhausted:
		return "exhausted"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// execute drives the retry machine over one logical call. Attempts are
// strictly sequential and 1-based; the Result returned always belongs
// to the last attempt made.
func (c *client) execute(ctx context.Context, method, url string, opts *RequestOptions) *Result {
	start := time.Now()

	body, err := serializeBody(requestBody(method, opts))
	if err != nil {
		serr := newError(KindClient, 0, "failed to serialize request body", url, err)
		res := failureResult(serr, nil)
		// No network attempt was made.
		c.finish(res, method, url, start, 0, StateAborted)
		return res
	}

	for attempt := 1; ; attempt++ {
		c.logRequest(method, url, attempt)
		c.recordAttempt(method)

		var res *Result
		raw, err := c.doAttempt(ctx, method, url, body, opts.Headers, opts.Timeout)
		if err != nil {
			res = failureResult(classifyTransportError(err, method, url), nil)
		} else {
			res = validateResponse(raw, opts, url)
		}

		switch {
		case res.Success:
			c.finish(res, method, url, start, attempt, StateSucceeded)
			return res

		case attempt >= opts.MaxAttempts:
			c.finish(res, method, url, start, attempt, StateExhausted)
			return res

		case !res.Err.Retryable():
			// Non-retryable failures skip the remaining budget: no
			// retry can fix a malformed body, a policy rejection, or a
			// client error.
			c.finish(res, method, url, start, attempt, StateAborted)
			return res
		}

		delay := c.backoff.Delay(attempt, opts.RetryDelay)
		if err := c.sleep(ctx, delay); err != nil {
			res = failureResult(classifyTransportError(err, method, url), res.Headers)
			c.finish(res, method, url, start, attempt, StateAborted)
			return res
		}
	}
}

// finish stamps execution stats on the envelope, logs the outcome, and
// records metrics.
func (c *client) finish(res *Result, method, url string, start time.Time, attempts int, state RetryState) {
	res.Stats = Stats{
		ElapsedTime: time.Since(start),
		Attempts:    attempts,
		State:       state,
	}
	c.logResult(method, url, res)
	c.recordOutcome(method, res)
}

// requestBody returns the descriptor body, or nil for read-only verbs.
func requestBody(method string, opts *RequestOptions) any {
	switch method {
	case "GET", "HEAD", "DELETE":
		return nil
	default:
		return opts.Body
	}
}

// sleepContext waits for the backoff delay or until the caller's
// context ends, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
