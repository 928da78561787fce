package client

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsRecordSuccess(t *testing.T) {
	srv := quoteServer(t)

	registry := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(registry)
	c := NewBuilder(createTestLogger()).
		WithBaseURL(srv.URL).
		WithMetrics(m).
		Build()

	res := c.Get(context.Background(), "/quote", NewRequestOptions())
	require.True(t, res.Success)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.attemptsTotal.WithLabelValues("GET")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.callsTotal.WithLabelValues("GET", "200", "succeeded")))
}

func TestMetricsRecordRetriesAndFailure(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.WriteHeader(nethttp.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	registry := prometheus.NewRegistry()
	m := NewMetricsWithRegistry(registry)
	c := NewBuilder(createTestLogger()).
		WithBaseURL(srv.URL).
		WithRetries(3, time.Millisecond).
		WithMetrics(m).
		Build().(*client)
	c.sleep = func(context.Context, time.Duration) error { return nil }

	res := c.Get(context.Background(), "/quote", NewRequestOptions())
	require.False(t, res.Success)

	assert.Equal(t, float64(3), testutil.ToFloat64(m.attemptsTotal.WithLabelValues("GET")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.callsTotal.WithLabelValues("GET", "500", "exhausted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.failuresTotal.WithLabelValues("GET", "server")))
}

func TestMetricsDisabledByDefault(t *testing.T) {
	srv := quoteServer(t)
	c := NewBuilder(createTestLogger()).WithBaseURL(srv.URL).Build()

	// No metrics attached; the call must still resolve normally.
	res := c.Get(context.Background(), "/quote", NewRequestOptions())
	assert.True(t, res.Success)
}
