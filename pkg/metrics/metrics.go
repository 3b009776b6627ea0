package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the launch pipeline and
// the Graph API client.
type Metrics struct {
	GraphCallsTotal    *prometheus.CounterVec
	GraphCallDuration  *prometheus.HistogramVec
	GraphCallFailures  *prometheus.CounterVec
	LaunchesTotal      *prometheus.CounterVec
	LaunchDuration     prometheus.Histogram
	LaunchesInProgress prometheus.Gauge
	AdsCreatedTotal    prometheus.Counter
	HTTPRequestsTotal  *prometheus.CounterVec
	HTTPDuration       *prometheus.HistogramVec
}

// New registers the collectors on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the collectors on the given registerer; tests pass
// a fresh registry to avoid duplicate-registration panics.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		GraphCallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graph_api_calls_total",
				Help: "Total number of Graph API calls by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
		GraphCallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "graph_api_call_duration_seconds",
				Help:    "Graph API call duration in seconds by endpoint",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		GraphCallFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graph_api_call_failures_total",
				Help: "Total number of failed Graph API calls by endpoint",
			},
			[]string{"endpoint"},
		),
		LaunchesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "launches_total",
				Help: "Total number of campaign launches by outcome",
			},
			[]string{"outcome"},
		),
		LaunchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "launch_duration_seconds",
				Help:    "End-to-end launch duration in seconds",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
			},
		),
		LaunchesInProgress: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "launches_in_progress",
				Help: "Number of launches currently running",
			},
		),
		AdsCreatedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ads_created_total",
				Help: "Total number of ads created across all launches",
			},
		),
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path and status",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds by method and path",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// RecordGraphCall records one Graph API round trip.
func (m *Metrics) RecordGraphCall(endpoint, status string, duration time.Duration) {
	m.GraphCallsTotal.WithLabelValues(endpoint, status).Inc()
	m.GraphCallDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordGraphFailure records a failed Graph API call.
func (m *Metrics) RecordGraphFailure(endpoint string) {
	m.GraphCallFailures.WithLabelValues(endpoint).Inc()
}

// RecordLaunch records a finished launch and its duration.
func (m *Metrics) RecordLaunch(outcome string, duration time.Duration, adsCreated int) {
	m.LaunchesTotal.WithLabelValues(outcome).Inc()
	m.LaunchDuration.Observe(duration.Seconds())
	m.AdsCreatedTotal.Add(float64(adsCreated))
}

// RecordHTTPRequest records one served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
