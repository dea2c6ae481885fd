package services

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Navigation outcomes
const (
	OutcomeAdmitted   = "admitted"
	OutcomeRedirected = "redirected"
	OutcomeNotFound   = "not_found"
)

// Metrics counts navigation events and session transitions
type Metrics struct {
	navigations *prometheus.CounterVec
	sessions    *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		navigations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "spa",
				Name:      "navigation_total",
				Help:      "Navigation events by resolved target and guard outcome",
			},
			[]string{"target", "outcome"},
		),
		sessions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "spa",
				Name:      "session_transitions_total",
				Help:      "Login and logout transitions",
			},
			[]string{"action"},
		),
	}
	reg.MustRegister(m.navigations, m.sessions)
	return m
}

// Navigation records one navigation event
func (m *Metrics) Navigation(target, outcome string) {
	if m == nil {
		return
	}
	m.navigations.WithLabelValues(target, outcome).Inc()
}

// SessionTransition records a login or logout
func (m *Metrics) SessionTransition(action string) {
	if m == nil {
		return
	}
	m.sessions.WithLabelValues(action).Inc()
}
