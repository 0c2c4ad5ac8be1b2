package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lifecycle phases recorded per dispatched operation.
const (
	PhasePending   = "pending"
	PhaseFulfilled = "fulfilled"
	PhaseRejected  = "rejected"
	PhaseEmpty     = "empty"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "peopledesk_operations_total",
			Help: "Dispatched store operations by lifecycle phase.",
		},
		[]string{"operation", "phase"},
	)

	operationsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "peopledesk_operations_in_flight",
			Help: "Operations currently between pending and settlement.",
		},
	)
)

func ObserveOperation(operation, phase string) {
	operationsTotal.WithLabelValues(operation, phase).Inc()
	switch phase {
	case PhasePending:
		operationsInFlight.Inc()
	case PhaseFulfilled, PhaseRejected, PhaseEmpty:
		operationsInFlight.Dec()
	}
}
