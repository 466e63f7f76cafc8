// Package metrics provides Prometheus metrics collection for the pizzeria stock service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// DeliveriesRecordedTotal tracks delivery recording attempts by outcome.
	DeliveriesRecordedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "deliveries_recorded_total",
			Help: "Total number of delivery recording attempts",
		},
		[]string{"status"},
	)

	// DeliveryOverflowTotal counts overflow flags attached to recorded deliveries.
	DeliveryOverflowTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_overflow_flags_total",
			Help: "Total number of overflow flags attached at recording time",
		},
	)

	// LedgerPersistDuration tracks how long the flat-file persist takes.
	LedgerPersistDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ledger_persist_duration_seconds",
			Help:    "Ledger mutation duration including the flat-file persist",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		},
	)

	// BackupOperationsTotal tracks backup exports and imports by outcome.
	BackupOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backup_operations_total",
			Help: "Total number of backup operations",
		},
		[]string{"operation", "status"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordDelivery records metrics for a delivery recording attempt.
func RecordDelivery(duration time.Duration, status string, overflowFlags int) {
	DeliveriesRecordedTotal.WithLabelValues(status).Inc()
	LedgerPersistDuration.Observe(duration.Seconds())
	if overflowFlags > 0 {
		DeliveryOverflowTotal.Add(float64(overflowFlags))
	}
}

// RecordBackup records metrics for a backup export or import.
func RecordBackup(operation, status string) {
	BackupOperationsTotal.WithLabelValues(operation, status).Inc()
}
