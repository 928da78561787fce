package client

import (
	"context"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPingReachable(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.WriteHeader(nethttp.StatusOK)
	}))
	t.Cleanup(srv.Close)

	c := NewBuilder(createTestLogger()).WithBaseURL(srv.URL).Build()
	assert.True(t, c.Ping(context.Background()))
}

// Any HTTP response means the host is reachable, even a failing one.
func TestPingReachableOnServerError(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		w.WriteHeader(nethttp.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	c := NewBuilder(createTestLogger()).WithBaseURL(srv.URL).Build()
	assert.True(t, c.Ping(context.Background()))
}

func TestPingUnreachable(t *testing.T) {
	srv := httptest.NewServer(nethttp.HandlerFunc(func(nethttp.ResponseWriter, *nethttp.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewBuilder(createTestLogger()).WithBaseURL(url).Build()
	assert.False(t, c.Ping(context.Background()))
}
