package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request counter
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration histogram
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Active requests gauge
	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)

	// =========================================================================
	// Business Metrics
	// =========================================================================

	statusUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_updates_total",
			Help: "Total number of explicit presence status updates",
		},
		[]string{"status"},
	)

	statusMessagesSetTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_messages_set_total",
			Help: "Total number of status messages set",
		},
		[]string{"kind"},
	)

	statusMessagesClearedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "status_messages_cleared_total",
			Help: "Total number of status messages cleared",
		},
	)

	statusWatchersTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "status_watchers_total",
			Help: "Number of connected status stream watchers",
		},
	)
)

// Metrics returns a Gin middleware that collects Prometheus metrics
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip metrics endpoint itself
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		httpRequestsInFlight.Inc()

		c.Next()

		httpRequestsInFlight.Dec()
		duration := time.Since(start).Seconds()

		// Normalize path to avoid high cardinality (replace IDs with :id)
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		status := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		httpRequestsTotal.WithLabelValues(method, path, status).Inc()
		httpRequestDuration.WithLabelValues(method, path).Observe(duration)
	}
}

// =============================================================================
// Business Metrics Helper Functions
// =============================================================================

// RecordStatusUpdate counts an explicit presence change
func RecordStatusUpdate(status string) {
	statusUpdatesTotal.WithLabelValues(status).Inc()
}

// RecordMessageSet counts a status message write ("predefined" or "custom")
func RecordMessageSet(kind string) {
	statusMessagesSetTotal.WithLabelValues(kind).Inc()
}

// RecordMessageCleared counts a cleared status message
func RecordMessageCleared() {
	statusMessagesClearedTotal.Inc()
}

// SetStatusWatchers sets the number of connected status stream watchers
func SetStatusWatchers(count float64) {
	statusWatchersTotal.Set(count)
}
