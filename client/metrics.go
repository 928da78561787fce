package client

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes Prometheus metrics for the call pipeline. It is safe
// for concurrent use; a nil Metrics disables collection.
type Metrics struct {
	attemptsTotal   *prometheus.CounterVec
	callsTotal      *prometheus.CounterVec
	failuresTotal   *prometheus.CounterVec
	callDuration    *prometheus.HistogramVec
	attemptsPerCall *prometheus.HistogramVec
}

// NewMetrics creates a collector on the default registerer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegistry creates a collector using the supplied registerer.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	return &Metrics{
		attemptsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "restclient_attempts_total",
				Help: "Total number of network attempts made",
			},
			[]string{"method"},
		),
		callsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "restclient_calls_total",
				Help: "Total number of logical calls resolved",
			},
			[]string{"method", "status_code", "state"},
		),
		failuresTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "restclient_failures_total",
				Help: "Total number of failed calls by error kind",
			},
			[]string{"method", "kind"},
		),
		callDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "restclient_call_duration_seconds",
				Help:    "Duration of logical calls in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		attemptsPerCall: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "restclient_attempts_per_call",
				Help:    "Attempts consumed per logical call",
				Buckets: []float64{1, 2, 3, 4, 5, 8, 10},
			},
			[]string{"method"},
		),
	}
}

// recordAttempt counts one network attempt.
func (c *client) recordAttempt(method string) {
	if c.metrics == nil {
		return
	}
	c.metrics.attemptsTotal.WithLabelValues(method).Inc()
}

// recordOutcome records the resolved envelope for one logical call.
func (c *client) recordOutcome(method string, res *Result) {
	if c.metrics == nil {
		return
	}
	c.metrics.callsTotal.WithLabelValues(method, strconv.Itoa(res.StatusCode), res.Stats.State.String()).Inc()
	c.metrics.callDuration.WithLabelValues(method).Observe(res.Stats.ElapsedTime.Seconds())
	c.metrics.attemptsPerCall.WithLabelValues(method).Observe(float64(res.Stats.Attempts))
	if res.Err != nil {
		c.metrics.failuresTotal.WithLabelValues(method, string(res.Err.Kind)).Inc()
	}
}
