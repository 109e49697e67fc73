package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrementArtifactsCreated(t *testing.T) {
	before := testutil.ToFloat64(ArtifactsCreated.WithLabelValues("action_item"))
	IncrementArtifactsCreated("action_item", 4)
	assert.Equal(t, before+4, testutil.ToFloat64(ArtifactsCreated.WithLabelValues("action_item")))
}

func TestRecordStatsCache(t *testing.T) {
	hits := testutil.ToFloat64(StatsCacheLookups.WithLabelValues("hit"))
	misses := testutil.ToFloat64(StatsCacheLookups.WithLabelValues("miss"))

	RecordStatsCache(true)
	RecordStatsCache(false)
	RecordStatsCache(false)

	assert.Equal(t, hits+1, testutil.ToFloat64(StatsCacheLookups.WithLabelValues("hit")))
	assert.Equal(t, misses+2, testutil.ToFloat64(StatsCacheLookups.WithLabelValues("miss")))
}

func TestRecordProviderCall(t *testing.T) {
	RecordProviderCall("unit-test", "summarize", nil, 10*time.Millisecond)
	RecordProviderCall("unit-test", "summarize", errors.New("boom"), 10*time.Millisecond)

	count := testutil.CollectAndCount(ProviderCallDuration, "provider_call_duration_seconds")
	assert.GreaterOrEqual(t, count, 2)
}

func TestMiddleware_RecordsRouteTemplate(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/v1/meetings/:id", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/meetings/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	n := testutil.CollectAndCount(HTTPRequestDuration, "http_request_duration_seconds")
	assert.GreaterOrEqual(t, n, 1)
}

func TestMiddleware_ReturnsHandlerError(t *testing.T) {
	e := echo.New()
	var seen error
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			seen = next(c)
			return seen
		}
	})
	e.Use(Middleware())
	e.GET("/v1/fail", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "nope")
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/fail", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code)
	require.Error(t, seen)
	assert.Contains(t, seen.Error(), "nope")
}
