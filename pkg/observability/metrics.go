// Package observability provides Prometheus metrics and OpenTelemetry tracing
// for the lumio service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the lumio service.
type Metrics struct {
	// HTTP metrics
	RequestsTotal    *prometheus.CounterVec
	RequestSeconds   *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge

	// Domain metrics
	SummariesTotal  *prometheus.CounterVec
	SharesTotal     *prometheus.CounterVec
	ShareRecipients prometheus.Histogram
}

// DefaultMetrics creates metrics registered on the default registerer.
func DefaultMetrics() *Metrics {
	return NewMetrics(prometheus.DefaultRegisterer)
}

// NewMetrics creates a new set of lumio metrics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lumio_http_requests_total",
				Help: "Total HTTP requests by route and status code",
			},
			[]string{"route", "status"},
		),
		RequestSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lumio_http_request_seconds",
				Help:    "HTTP request latency by route",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
			},
			[]string{"route"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "lumio_http_requests_in_flight",
				Help: "HTTP requests currently being served",
			},
		),
		SummariesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lumio_summaries_total",
				Help: "Total summaries generated by template and model",
			},
			[]string{"template", "model", "status"},
		),
		SharesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lumio_shares_total",
				Help: "Total share attempts by format and status",
			},
			[]string{"format", "status"},
		),
		ShareRecipients: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "lumio_share_recipients",
				Help:    "Recipient count per share",
				Buckets: []float64{1, 2, 3, 5, 10, 20, 50},
			},
		),
	}
}
