package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return string(body)
}

func TestMetrics_LocationObserver(t *testing.T) {
	m := New()

	m.StoreResolutionFailed("lookup_failed")
	m.StoreResolutionFailed("lookup_failed")
	m.StoreFilterApplied(3, 2, 1)
	m.MalformedStoreLocation()
	m.ReverseGeocodeCompleted("success", 120*time.Millisecond)
	m.LocationRequestCompleted("permission_denied")

	out := scrape(t, m)
	assert.Contains(t, out, `store_resolution_failures_total{reason="lookup_failed"} 2`)
	assert.Contains(t, out, "store_filter_runs_total 1")
	assert.Contains(t, out, "store_filter_stores_requested_total 3")
	assert.Contains(t, out, "store_filter_stores_located_total 2")
	assert.Contains(t, out, "store_filter_stores_within_radius_total 1")
	assert.Contains(t, out, "store_location_malformed_total 1")
	assert.Contains(t, out, `reverse_geocode_requests_total{outcome="success"} 1`)
	assert.Contains(t, out, "reverse_geocode_duration_seconds_count 1")
	assert.Contains(t, out, `current_location_requests_total{outcome="permission_denied"} 1`)
}

func TestMetrics_Middleware(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware)
	e.GET("/location/distance", func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})
	e.GET("/location/reverse", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusBadRequest, "bad")
	})

	for _, path := range []string{"/location/distance", "/location/reverse"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	out := scrape(t, m)
	assert.Contains(t, out, `http_requests_total{method="GET",path="/location/distance",status="204"} 1`)
	assert.Contains(t, out, `http_requests_total{method="GET",path="/location/reverse",status="400"} 1`)
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New()
		New()
	})
}
