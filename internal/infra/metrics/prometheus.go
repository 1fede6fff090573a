// Package metrics exposes the location pipeline and HTTP traffic as Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects HTTP and location pipeline metrics in its own registry.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	resolutionFailures *prometheus.CounterVec
	filterRuns         prometheus.Counter
	storesRequested    prometheus.Counter
	storesLocated      prometheus.Counter
	storesWithinRadius prometheus.Counter
	malformedLocations prometheus.Counter
	geocodeRequests    *prometheus.CounterVec
	geocodeDuration    prometheus.Histogram
	locationRequests   *prometheus.CounterVec
}

var _ service.LocationObserver = (*Metrics)(nil)

// New creates the metric set and registers the Go runtime collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		// HTTP metrics
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		// Location pipeline metrics
		resolutionFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "store_resolution_failures_total",
				Help: "Total number of batch store location lookups that failed",
			},
			[]string{"reason"},
		),
		filterRuns: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "store_filter_runs_total",
				Help: "Total number of proximity filter runs that were applied",
			},
		),
		storesRequested: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "store_filter_stores_requested_total",
				Help: "Total number of distinct stores submitted to the proximity filter",
			},
		),
		storesLocated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "store_filter_stores_located_total",
				Help: "Total number of stores with a usable warehouse coordinate",
			},
		),
		storesWithinRadius: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "store_filter_stores_within_radius_total",
				Help: "Total number of stores that passed the proximity filter",
			},
		),
		malformedLocations: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "store_location_malformed_total",
				Help: "Total number of warehouse rows skipped for a missing or malformed coordinate",
			},
		),
		geocodeRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reverse_geocode_requests_total",
				Help: "Total number of reverse geocoding requests",
			},
			[]string{"outcome"},
		),
		geocodeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reverse_geocode_duration_seconds",
				Help:    "Reverse geocoding duration in seconds",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
			},
		),
		locationRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "current_location_requests_total",
				Help: "Total number of current location requests",
			},
			[]string{"outcome"},
		),
	}
}

// Handler returns the Prometheus metrics HTTP handler
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records request count and latency per route template.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = statusOf(err)
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}

		m.httpRequestsTotal.WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request().Method, path).Observe(time.Since(start).Seconds())

		return err
	}
}

// statusOf predicts the status the error handler will render for err.
func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// StoreResolutionFailed records a failed batch lookup
func (m *Metrics) StoreResolutionFailed(reason string) {
	m.resolutionFailures.WithLabelValues(reason).Inc()
}

// StoreFilterApplied records the funnel of a successful filter run
func (m *Metrics) StoreFilterApplied(requested, located, withinRadius int) {
	m.filterRuns.Inc()
	m.storesRequested.Add(float64(requested))
	m.storesLocated.Add(float64(located))
	m.storesWithinRadius.Add(float64(withinRadius))
}

// MalformedStoreLocation records a skipped warehouse row
func (m *Metrics) MalformedStoreLocation() {
	m.malformedLocations.Inc()
}

// ReverseGeocodeCompleted records a reverse geocoding attempt
func (m *Metrics) ReverseGeocodeCompleted(outcome string, elapsed time.Duration) {
	m.geocodeRequests.WithLabelValues(outcome).Inc()
	m.geocodeDuration.Observe(elapsed.Seconds())
}

// LocationRequestCompleted records a current location request
func (m *Metrics) LocationRequestCompleted(outcome string) {
	m.locationRequests.WithLabelValues(outcome).Inc()
}
