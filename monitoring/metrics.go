package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"cmu-health/models"
)

const (
	namespace = "cmu_health"

	// otherLabel stands in for any client-supplied value outside the known set.
	otherLabel = "other"
)

// Metrics owns its registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingsTotal       *prometheus.CounterVec
	validationFailures  *prometheus.CounterVec
	adminLoginsTotal    *prometheus.CounterVec
	historyLinesDropped prometheus.Counter
	availabilityUpdates *prometheus.CounterVec

	departments map[string]struct{}
	statuses    map[string]struct{}
}

// NewMetrics labels bookings and availability updates only with the given
// departments and statuses; anything else is counted under "other".
func NewMetrics(departments []models.Department, statuses []string) *Metrics {
	m := &Metrics{
		registry:    prometheus.NewRegistry(),
		departments: make(map[string]struct{}, len(departments)),
		statuses:    make(map[string]struct{}, len(statuses)),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		bookingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_total",
				Help:      "Appointments confirmed, by department",
			},
			[]string{"department"},
		),
		validationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validation_failures_total",
				Help:      "Rejected form submissions, by field",
			},
			[]string{"field"},
		),
		adminLoginsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "admin_logins_total",
				Help:      "Admin login attempts, by result",
			},
			[]string{"result"},
		),
		historyLinesDropped: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "patient_history_lines_dropped_total",
				Help:      "Patient history lines discarded for lacking a \"name: history\" separator",
			},
		),
		availabilityUpdates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "availability_updates_total",
				Help:      "Doctor availability updates, by status",
			},
			[]string{"availability"},
		),
	}

	for _, d := range departments {
		m.departments[string(d)] = struct{}{}
	}
	for _, st := range statuses {
		m.statuses[st] = struct{}{}
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.bookingsTotal,
		m.validationFailures,
		m.adminLoginsTotal,
		m.historyLinesDropped,
		m.availabilityUpdates,
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) RecordBooking(department string) {
	m.bookingsTotal.WithLabelValues(knownOrOther(m.departments, department)).Inc()
}

func (m *Metrics) RecordValidationFailure(field string) {
	m.validationFailures.WithLabelValues(field).Inc()
}

func (m *Metrics) RecordAdminLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	m.adminLoginsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordDroppedHistoryLines(n int) {
	if n > 0 {
		m.historyLinesDropped.Add(float64(n))
	}
}

func (m *Metrics) RecordAvailabilityUpdate(availability string) {
	m.availabilityUpdates.WithLabelValues(knownOrOther(m.statuses, availability)).Inc()
}

func knownOrOther(known map[string]struct{}, value string) string {
	if _, ok := known[value]; ok {
		return value
	}
	return otherLabel
}
