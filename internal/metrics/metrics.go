// Package metrics exposes Prometheus collectors for the HTTP surface and consent recording.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "trustkey"

// Metrics holds all application collectors
type Metrics struct {
	RequestsTotal       *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	TenantsRegistered   prometheus.Counter
	ConsentLogsRecorded *prometheus.CounterVec
	AuthFailures        *prometheus.CounterVec
	StorageErrors       *prometheus.CounterVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
			},
			[]string{"method", "route"},
		),
		TenantsRegistered: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tenants_registered_total",
			Help:      "Total number of tenants registered",
		}),
		ConsentLogsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "consent_logs_recorded_total",
				Help:      "Total number of consent decisions persisted",
			},
			[]string{"action"},
		),
		AuthFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "auth_failures_total",
				Help:      "Total number of rejected API key authentications",
			},
			[]string{"reason"},
		),
		StorageErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "storage_errors_total",
				Help:      "Total number of failed store operations",
			},
			[]string{"operation"},
		),
	}
}

// NewRegistry returns a registry preloaded with Go runtime and process collectors
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// Handler serves the exposition format for gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveRequest records one completed HTTP request
func (m *Metrics) ObserveRequest(method, route, status string, start time.Time) {
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
}

// IncrementTenantRegistered records a successful registration
func (m *Metrics) IncrementTenantRegistered() {
	m.TenantsRegistered.Inc()
}

// IncrementConsentRecorded records a persisted consent decision
func (m *Metrics) IncrementConsentRecorded(action string) {
	m.ConsentLogsRecorded.WithLabelValues(action).Inc()
}

// IncrementAuthFailure records a rejected authentication, reason is "missing" or "invalid"
func (m *Metrics) IncrementAuthFailure(reason string) {
	m.AuthFailures.WithLabelValues(reason).Inc()
}

// IncrementStorageError records a failed store operation
func (m *Metrics) IncrementStorageError(operation string) {
	m.StorageErrors.WithLabelValues(operation).Inc()
}
