// Prometheus metrics for the HTTP action adapter.
// No per-session or per-bag labels: cardinality stays bounded by the
// fixed action-kind and outcome sets.

package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ActionsTotal counts dispatched actions by kind and outcome
	// (ok, empty_container, key_not_found, unknown_action).
	ActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "baggagesim_actions_total",
		Help: "Total number of dispatched session actions, by kind and outcome.",
	}, []string{"kind", "outcome"})

	// SessionsCreatedTotal counts sessions created over the process lifetime.
	SessionsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "baggagesim_sessions_created_total",
		Help: "Total number of simulation sessions created.",
	})

	// ActiveSessions tracks sessions currently held in the registry.
	ActiveSessions = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "baggagesim_active_sessions",
		Help: "Current number of live simulation sessions.",
	})
)

// outcomeLabel derives the metrics outcome label from a dispatch result.
func outcomeLabel(ok bool, errorKind string) string {
	if ok {
		return "ok"
	}
	return errorKind
}
