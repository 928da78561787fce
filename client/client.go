package client

import (
	"context"
	nethttp "net/http"
	"time"

	"github.com/tidewave/restclient/config"
	"github.com/tidewave/restclient/internal/backoff"
	"github.com/tidewave/restclient/logger"
)

// client implements the Client interface. It holds only immutable
// shared configuration, so one instance is safe for concurrent use.
type client struct {
	httpClient *nethttp.Client
	logger     logger.Logger
	config     *Config
	metrics    *Metrics
	backoff    backoff.Strategy
	sleep      func(ctx context.Context, d time.Duration) error
}

// NewClient creates a client with the given configuration. Zero-value
// config fields fall back to the package defaults.
func NewClient(log logger.Logger, cfg *Config) Client {
	b := NewBuilder(log)
	if cfg != nil {
		b.config = normalizeConfig(cfg)
	}
	return b.Build()
}

// NewClientFromConfig builds a client from the api section of a loaded
// configuration, so file and environment settings flow straight into
// the client defaults.
func NewClientFromConfig(log logger.Logger, api *config.APIConfig) Client {
	return NewClient(log, &Config{
		BaseURL:        api.BaseURL,
		Timeout:        api.Timeout,
		MaxAttempts:    api.MaxAttempts,
		RetryDelay:     api.RetryDelay,
		DefaultHeaders: api.Headers,
	})
}

// Builder provides a fluent interface for configuring the client.
type Builder struct {
	config  *Config
	logger  logger.Logger
	metrics *Metrics
}

// NewBuilder creates a new client builder with default configuration.
func NewBuilder(log logger.Logger) *Builder {
	return &Builder{
		config: &Config{
			Timeout:        DefaultTimeout,
			MaxAttempts:    DefaultMaxAttempts,
			RetryDelay:     DefaultRetryDelay,
			DefaultHeaders: make(map[string]string),
		},
		logger: log,
	}
}

// WithBaseURL sets the base address relative paths resolve against.
func (b *Builder) WithBaseURL(baseURL string) *Builder {
	b.config.BaseURL = baseURL
	return b
}

// WithTimeout sets the default per-attempt deadline.
func (b *Builder) WithTimeout(timeout time.Duration) *Builder {
	b.config.Timeout = timeout
	return b
}

// WithRetries sets the default attempt budget and backoff base delay.
func (b *Builder) WithRetries(maxAttempts int, retryDelay time.Duration) *Builder {
	b.config.MaxAttempts = maxAttempts
	b.config.RetryDelay = retryDelay
	return b
}

// WithDefaultHeader adds a header sent with every request.
func (b *Builder) WithDefaultHeader(key, value string) *Builder {
	b.config.DefaultHeaders[key] = value
	return b
}

// WithMetrics attaches a metrics collector to the client.
func (b *Builder) WithMetrics(m *Metrics) *Builder {
	b.metrics = m
	return b
}

// Build creates the client with the configured options. The resulting
// client never mutates its configuration.
func (b *Builder) Build() Client {
	cfg := normalizeConfig(b.config)
	return &client{
		httpClient: &nethttp.Client{},
		logger:     b.logger,
		config:     cfg,
		metrics:    b.metrics,
		backoff:    backoff.LinearStrategy{},
		sleep:      sleepContext,
	}
}

// normalizeConfig fills unset fields with package defaults and copies
// the headers map so later caller mutations cannot leak in.
func normalizeConfig(cfg *Config) *Config {
	out := *cfg
	if out.Timeout <= 0 {
		out.Timeout = DefaultTimeout
	}
	if out.MaxAttempts < 1 {
		out.MaxAttempts = DefaultMaxAttempts
	}
	if out.RetryDelay <= 0 {
		out.RetryDelay = DefaultRetryDelay
	}
	out.DefaultHeaders = make(map[string]string, len(cfg.DefaultHeaders))
	for k, v := range cfg.DefaultHeaders {
		out.DefaultHeaders[k] = v
	}
	return &out
}

// Get performs a GET request.
func (c *client) Get(ctx context.Context, path string, opts *RequestOptions) *Result {
	o := opts.clone()
	o.Method = nethttp.MethodGet
	return c.Do(ctx, path, o)
}

// Post performs a POST request with the given body.
func (c *client) Post(ctx context.Context, path string, body any, opts *RequestOptions) *Result {
	o := opts.clone()
	o.Method = nethttp.MethodPost
	o.Body = body
	return c.Do(ctx, path, o)
}

// Put performs a PUT request with the given body.
func (c *client) Put(ctx context.Context, path string, body any, opts *RequestOptions) *Result {
	o := opts.clone()
	o.Method = nethttp.MethodPut
	o.Body = body
	return c.Do(ctx, path, o)
}

// Patch performs a PATCH request with the given body.
func (c *client) Patch(ctx context.Context, path string, body any, opts *RequestOptions) *Result {
	o := opts.clone()
	o.Method = nethttp.MethodPatch
	o.Body = body
	return c.Do(ctx, path, o)
}

// Delete performs a DELETE request.
func (c *client) Delete(ctx context.Context, path string, opts *RequestOptions) *Result {
	o := opts.clone()
	o.Method = nethttp.MethodDelete
	return c.Do(ctx, path, o)
}

// Do performs one logical call described by opts and resolves it to
// exactly one Result. All verb shorthands delegate here; no verb
// logic exists elsewhere.
func (c *client) Do(ctx context.Context, path string, opts *RequestOptions) *Result {
	o := c.normalizeOptions(opts)
	url := resolveURL(c.config.BaseURL, path)
	return c.execute(ctx, o.Method, url, o)
}

// normalizeOptions copies the descriptor and fills unset fields from
// the client configuration. The copy the orchestrator sees is never
// mutated afterwards.
func (c *client) normalizeOptions(opts *RequestOptions) *RequestOptions {
	o := opts.clone()
	if o.Method == "" {
		o.Method = nethttp.MethodGet
	}
	if o.Timeout <= 0 {
		o.Timeout = c.config.Timeout
	}
	if o.MaxAttempts < 1 {
		o.MaxAttempts = c.config.MaxAttempts
	}
	if o.RetryDelay <= 0 {
		o.RetryDelay = c.config.RetryDelay
	}
	return o
}

// logRequest logs one outgoing attempt.
func (c *client) logRequest(method, url string, attempt int) {
	c.logger.Debug().
		Str("direction", "outbound").
		Str("method", method).
		Str("url", url).
		Int("attempt", attempt).
		Msg("client request")
}

// logResult logs the resolved envelope for one logical call.
func (c *client) logResult(method, url string, res *Result) {
	if res.Success {
		c.logger.Info().
			Str("direction", "inbound").
			Str("method", method).
			Str("url", url).
			Int("status", res.StatusCode).
			Int("attempts", res.Stats.Attempts).
			Str("state", res.Stats.State.String()).
			Dur("elapsed", res.Stats.ElapsedTime).
			Msg("client response")
		return
	}

	c.logger.Warn().
		Str("direction", "inbound").
		Str("method", method).
		Str("url", url).
		Int("status", res.StatusCode).
		Str("kind", string(res.Err.Kind)).
		Bool("retryable", res.Err.Retryable()).
		Int("attempts", res.Stats.Attempts).
		Str("state", res.Stats.State.String()).
		Dur("elapsed", res.Stats.ElapsedTime).
		Msg("client request failed")
}
