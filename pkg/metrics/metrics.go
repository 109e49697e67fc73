package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Provider call latency in seconds
	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "provider_call_duration_seconds",
			Help:    "Transcription and summarization provider call duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 12), // 50ms to ~100s
		},
		[]string{"provider", "operation", "status"},
	)

	// HTTP request latency in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	// Meeting artifacts created
	ArtifactsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meeting_artifacts_created_total",
			Help: "Total number of meetings, transcripts, summaries and action items created",
		},
		[]string{"kind"}, // kind: meeting, transcript, summary, action_item
	)

	// Stats cache lookups
	StatsCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_cache_lookups_total",
			Help: "Total number of stats cache lookups",
		},
		[]string{"result"}, // result: hit, miss
	)
)

// RecordProviderCall records a provider call outcome
func RecordProviderCall(provider, operation string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "failed"
	}
	ProviderCallDuration.WithLabelValues(provider, operation, status).Observe(duration.Seconds())
}

// RecordHTTPRequestDuration records HTTP request latency
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// IncrementArtifactsCreated adds n created artifacts of kind
func IncrementArtifactsCreated(kind string, n int) {
	ArtifactsCreated.WithLabelValues(kind).Add(float64(n))
}

// RecordStatsCache records a stats cache hit or miss
func RecordStatsCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	StatsCacheLookups.WithLabelValues(result).Inc()
}

// Middleware records request latency by route template. Handler errors are
// rendered first so the recorded status is final, then returned to outer middleware.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			path := c.Path()
			if path == "" {
				path = "unmatched"
			}
			RecordHTTPRequestDuration(c.Request().Method, path, strconv.Itoa(c.Response().Status), time.Since(start))
			return err
		}
	}
}
