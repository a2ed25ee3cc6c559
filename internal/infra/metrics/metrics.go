// Package metrics exposes Prometheus instrumentation for the auth boundary.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Refresh outcome labels. The split between unrecognized and inactive exists
// only here and in logs; clients always see one uniform denial.
const (
	RefreshResultSuccess      = "success"
	RefreshResultUnrecognized = "unrecognized"
	RefreshResultInactive     = "inactive"
	RefreshResultError        = "error"
)

// AuthMetrics counts authentication boundary events.
type AuthMetrics struct {
	registry        *prometheus.Registry
	loginAttempts   *prometheus.CounterVec
	refreshAttempts *prometheus.CounterVec
}

// NewAuthMetrics creates the metrics registry and collectors.
func NewAuthMetrics() *AuthMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	loginAttempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gather",
		Subsystem: "auth",
		Name:      "login_attempts_total",
		Help:      "Login attempts by outcome.",
	}, []string{"result"})

	refreshAttempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gather",
		Subsystem: "auth",
		Name:      "refresh_attempts_total",
		Help:      "Refresh token rotation attempts by outcome.",
	}, []string{"result"})

	registry.MustRegister(loginAttempts, refreshAttempts)

	return &AuthMetrics{
		registry:        registry,
		loginAttempts:   loginAttempts,
		refreshAttempts: refreshAttempts,
	}
}

// Registry returns the underlying registry for the /metrics handler.
func (m *AuthMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveLogin records a login attempt outcome.
func (m *AuthMetrics) ObserveLogin(success bool) {
	result := "failure"
	if success {
		result = "success"
	}
	m.loginAttempts.WithLabelValues(result).Inc()
}

// ObserveRefresh records a refresh attempt outcome.
func (m *AuthMetrics) ObserveRefresh(result string) {
	m.refreshAttempts.WithLabelValues(result).Inc()
}
