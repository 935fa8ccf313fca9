package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcomes recorded by OrdersPlaced.
const (
	OutcomeOK       = "ok"
	OutcomeDegraded = "degraded"
	OutcomeFailed   = "failed"
)

type Metrics struct {
	// OrdersPlaced counts placement attempts by outcome.
	OrdersPlaced *prometheus.CounterVec
	// OrderTransitions counts applied order status changes by target status.
	OrderTransitions *prometheus.CounterVec
	// ReservationTransitions counts applied reservation status changes by target status.
	ReservationTransitions *prometheus.CounterVec
}

// NewMetrics registers the service counters with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		OrdersPlaced: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "restaurant",
				Name:      "orders_placed_total",
				Help:      "Total number of order placement attempts",
			},
			[]string{"outcome"},
		),
		OrderTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "restaurant",
				Name:      "order_status_transitions_total",
				Help:      "Total number of order status changes",
			},
			[]string{"status"},
		),
		ReservationTransitions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "restaurant",
				Name:      "reservation_status_transitions_total",
				Help:      "Total number of reservation status changes",
			},
			[]string{"status"},
		),
	}
}
