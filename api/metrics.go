package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics instruments requests with Prometheus counters, a latency
// histogram, and an in-flight gauge. Labels stay low-cardinality on purpose:
// paths carry free-form tenant data (product handles, collection handles)
// and make poor label values.
type Metrics struct {
	gatherer prometheus.Gatherer

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inflight        prometheus.Gauge
}

// NewMetrics creates request metrics registered on the given registry.
// A nil registry uses a fresh one.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		gatherer: reg,
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests processed.",
		}, []string{"method", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "Requests currently being served.",
		}),
	}

	reg.MustRegister(m.requestsTotal, m.requestDuration, m.inflight)
	return m
}

// Middleware returns the instrumenting middleware.
func (m *Metrics) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.inflight.Inc()
			start := time.Now()

			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			m.inflight.Dec()
			m.requestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
			m.requestsTotal.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()
		})
	}
}

// Handler returns the scrape handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
