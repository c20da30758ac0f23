package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	cacheLoads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_cache_loads_total",
			Help: "Lead cache loads, by outcome",
		},
		[]string{"outcome"},
	)

	bulkMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "console_bulk_mutations_total",
			Help: "Individual lead mutations issued by bulk actions, by outcome",
		},
		[]string{"outcome"},
	)

	csvExports = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "console_csv_exports_total",
			Help: "Total number of CSV exports produced",
		},
	)

	integrationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "integration_errors_total",
			Help: "Total number of integration errors",
		},
		[]string{"service"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordCacheLoad(ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	cacheLoads.WithLabelValues(outcome).Inc()
}

func RecordBulkMutation(applied, failed int) {
	bulkMutations.WithLabelValues("applied").Add(float64(applied))
	bulkMutations.WithLabelValues("failed").Add(float64(failed))
}

func RecordExport() {
	csvExports.Inc()
}

func RecordIntegrationError(service string) {
	integrationErrors.WithLabelValues(service).Inc()
}
