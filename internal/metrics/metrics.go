package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	// Ingestion
	RecordsUpserted    *prometheus.CounterVec
	IngestRejected     *prometheus.CounterVec
	DuplicateDelivered *prometheus.CounterVec
	ImportRows         *prometheus.CounterVec
	EventPublishErrors prometheus.Counter

	// HTTP
	RequestDuration *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg.
func New(namespace string, reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RecordsUpserted: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "records_upserted_total",
				Help:      "Daily metric records written, by ingestion source",
			},
			[]string{"source"},
		),
		IngestRejected: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ingest_rejected_total",
				Help:      "Ingestion requests rejected at the boundary",
			},
			[]string{"source", "reason"},
		),
		DuplicateDelivered: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "duplicate_deliveries_total",
				Help:      "Webhook deliveries dropped as duplicates",
			},
			[]string{"source"},
		),
		ImportRows: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "import_rows_total",
				Help:      "CSV rows processed, by outcome",
			},
			[]string{"outcome"},
		),
		EventPublishErrors: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "event_publish_errors_total",
				Help:      "Metric events that failed to publish",
			},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by route pattern",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
		gatherer: reg,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// Middleware observes request latency labelled by the chi route pattern.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.RequestDuration.
			WithLabelValues(r.Method, route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
	})
}
