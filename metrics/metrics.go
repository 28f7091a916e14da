package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/networkteam/coursefront/catalog"
	"github.com/networkteam/coursefront/collector"
)

// CatalogMetrics counts and times outgoing catalog requests.
type CatalogMetrics struct {
	// RequestsTotal tracks catalog requests by operation and status ("error" for transport errors)
	RequestsTotal *prometheus.CounterVec
	// RequestDuration tracks catalog request latency in seconds
	RequestDuration *prometheus.HistogramVec
}

// NewCatalogMetrics registers the catalog metrics with reg. A nil reg creates unregistered metrics.
func NewCatalogMetrics(reg prometheus.Registerer) *CatalogMetrics {
	factory := promauto.With(reg)
	return &CatalogMetrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "coursefront_catalog_requests_total",
				Help: "Total catalog API requests by operation and status",
			},
			[]string{"operation", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coursefront_catalog_request_duration_seconds",
				Help:    "Catalog API request duration in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"operation"},
		),
	}
}

// Transport returns an http.RoundTripper observing requests sent through next.
// A nil next uses http.DefaultTransport.
func (m *CatalogMetrics) Transport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &metricsTransport{next: next, metrics: m}
}

type metricsTransport struct {
	next    http.RoundTripper
	metrics *CatalogMetrics
}

func (t *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	operation := "unknown"
	if tags, ok := collector.TagsFromContext(req.Context()); ok && tags[catalog.OperationTag] != "" {
		operation = tags[catalog.OperationTag]
	}

	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	t.metrics.RequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	t.metrics.RequestsTotal.WithLabelValues(operation, status).Inc()

	return resp, err
}
