// Package metrics exposes Prometheus counters for the session API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status labels for registration and login outcomes.
const (
	StatusSuccess  = "success"
	StatusInvalid  = "invalid"
	StatusConflict = "conflict"
	StatusRejected = "rejected"
	StatusError    = "error"
)

// Result labels for session checks on /me.
const (
	ResultValid   = "valid"
	ResultMissing = "missing"
	ResultExpired = "expired"
	ResultInvalid = "invalid"
)

// Metrics groups the collectors recorded by the HTTP layer. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	registry prometheus.Gatherer

	registrations   *prometheus.CounterVec
	logins          *prometheus.CounterVec
	sessionChecks   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// Panics if registration fails (following prometheus convention).
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		registrations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gophauth_registrations_total",
				Help: "Total number of registration attempts",
			},
			[]string{"status"},
		),
		logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gophauth_logins_total",
				Help: "Total number of login attempts",
			},
			[]string{"status"},
		),
		sessionChecks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gophauth_session_checks_total",
				Help: "Total number of session cookie checks",
			},
			[]string{"result"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gophauth_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	reg.MustRegister(m.registrations, m.logins, m.sessionChecks, m.requestDuration)
	return m
}

// RecordRegistration increments the registration counter.
func (m *Metrics) RecordRegistration(status string) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(status).Inc()
}

// RecordLogin increments the login counter.
func (m *Metrics) RecordLogin(status string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(status).Inc()
}

// RecordSessionCheck increments the session check counter.
func (m *Metrics) RecordSessionCheck(result string) {
	if m == nil {
		return
	}
	m.sessionChecks.WithLabelValues(result).Inc()
}

// RecordRequest observes the duration of one HTTP request.
// Parameters:
//   - method: HTTP method
//   - route: matched route pattern, not the raw path
//   - status: response status code as text
//   - d: time spent handling the request
func (m *Metrics) RecordRequest(method, route, status string, d time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, status).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
