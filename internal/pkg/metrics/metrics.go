// Package metrics exposes Prometheus counters for the domain events
// worth alerting on. Transport-level metrics come from the HTTP
// middleware stack and are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	identifiersIssued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dayflow_identifiers_issued_total",
		Help: "Number of login identifiers issued.",
	})

	loginAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dayflow_login_attempts_total",
		Help: "Number of login attempts by result.",
	}, []string{"result"})

	leaveDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dayflow_leave_decisions_total",
		Help: "Number of leave request decisions by outcome.",
	}, []string{"status"})
)

func ObserveIdentifierIssued() {
	identifiersIssued.Inc()
}

func ObserveLoginAttempt(result string) {
	loginAttempts.WithLabelValues(result).Inc()
}

func ObserveLeaveDecision(status string) {
	leaveDecisions.WithLabelValues(status).Inc()
}
