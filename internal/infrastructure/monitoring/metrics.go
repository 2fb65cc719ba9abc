// Package monitoring handles Prometheus metrics collection
package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// MetricsCollector handles Prometheus metrics collection
type MetricsCollector struct {
	logger *zap.Logger

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Planning metrics
	plansGeneratedTotal   *prometheus.CounterVec
	planDuration          prometheus.Histogram
	slotsUnfulfilledTotal *prometheus.CounterVec

	// Description model metrics
	descriptionRequestsTotal *prometheus.CounterVec
	descriptionDuration      *prometheus.HistogramVec

	// Catalog metrics
	catalogDishes prometheus.Gauge
}

// NewMetricsCollector creates a new metrics collector
func NewMetricsCollector(logger *zap.Logger) *MetricsCollector {
	return &MetricsCollector{
		logger: logger,

		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status_code"},
		),

		plansGeneratedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meal_plans_generated_total",
				Help: "Total number of meal plans generated",
			},
			[]string{"goal", "cadence"},
		),
		planDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "meal_plan_generation_duration_seconds",
				Help:    "Meal plan generation duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
		),
		slotsUnfulfilledTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meal_slots_unfulfilled_total",
				Help: "Total number of meal slots left without a dish",
			},
			[]string{"slot"},
		),

		descriptionRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "description_requests_total",
				Help: "Total number of meal description model requests",
			},
			[]string{"model", "status"},
		),
		descriptionDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "description_request_duration_seconds",
				Help:    "Meal description request duration in seconds",
				Buckets: []float64{0.1, 0.5, 1.0, 2.0, 5.0, 10.0, 30.0},
			},
			[]string{"model"},
		),

		catalogDishes: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "catalog_dishes",
				Help: "Number of dishes in the loaded catalog",
			},
		),
	}
}

// RecordHTTPRequest records metrics for one finished HTTP request
func (m *MetricsCollector) RecordHTTPRequest(method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// RecordPlanGenerated records a completed plan generation
func (m *MetricsCollector) RecordPlanGenerated(goal, cadence string, duration time.Duration) {
	m.plansGeneratedTotal.WithLabelValues(goal, cadence).Inc()
	m.planDuration.Observe(duration.Seconds())
}

// RecordSlotUnfulfilled records a slot that got a placeholder
func (m *MetricsCollector) RecordSlotUnfulfilled(slot string) {
	m.slotsUnfulfilledTotal.WithLabelValues(slot).Inc()
}

// RecordDescriptionRequest records one model call
func (m *MetricsCollector) RecordDescriptionRequest(model, status string, duration time.Duration) {
	m.descriptionRequestsTotal.WithLabelValues(model, status).Inc()
	m.descriptionDuration.WithLabelValues(model).Observe(duration.Seconds())
}

// SetCatalogSize updates the catalog size gauge
func (m *MetricsCollector) SetCatalogSize(dishes int) {
	m.catalogDishes.Set(float64(dishes))
}

// Handler returns the Prometheus scrape handler
func (m *MetricsCollector) Handler() http.Handler {
	return promhttp.Handler()
}
