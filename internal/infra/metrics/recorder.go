// Package metrics records Prometheus metrics for the pass lifecycle, gym search and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"travelfit/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "travelfit"

// Recorder owns a dedicated registry so tests and multiple apps never collide on the default one.
type Recorder struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	passPurchasesTotal  prometheus.Counter
	passVerifications   *prometheus.CounterVec
	nearbySearchLatency prometheus.Histogram
	nearbySearchResults prometheus.Histogram
}

var _ service.MetricsRecorder = (*Recorder)(nil)

// NewRecorder registers every collector on a fresh registry, plus the Go runtime and process collectors.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		passPurchasesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pass_purchases_total",
				Help:      "Total number of committed guest pass purchases",
			},
		),
		passVerifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "pass_verifications_total",
				Help:      "Total number of guest pass scans by outcome",
			},
			[]string{"outcome", "activated"},
		),
		nearbySearchLatency: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "nearby_search_duration_seconds",
				Help:      "Nearby gym search duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1},
			},
		),
		nearbySearchResults: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "nearby_search_results",
				Help:      "Number of gyms returned by a nearby search",
				Buckets:   []float64{0, 1, 5, 10, 25, 50, 100},
			},
		),
	}
}

// PassPurchased counts a committed purchase.
func (r *Recorder) PassPurchased() {
	r.passPurchasesTotal.Inc()
}

// PassVerified counts a scan outcome and whether it activated the pass.
func (r *Recorder) PassVerified(outcome service.VerificationOutcome, activated bool) {
	r.passVerifications.WithLabelValues(string(outcome), strconv.FormatBool(activated)).Inc()
}

// NearbySearchCompleted observes a nearby search's latency and result count.
func (r *Recorder) NearbySearchCompleted(elapsed time.Duration, results int) {
	r.nearbySearchLatency.Observe(elapsed.Seconds())
	r.nearbySearchResults.Observe(float64(results))
}

// RecordHTTPRequest counts a served request. path is the route template, not the raw URL.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, elapsed time.Duration) {
	r.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	r.httpRequestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
