// SPDX-License-Identifier: MIT
// Package: cauldron/strategy

package strategy

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Sift outcome label values.
const (
	outcomeAccepted  = "accepted"
	outcomeExhausted = "out_of_cycles"
	outcomeFailed    = "producer_error"
)

// Metrics groups the Prometheus collectors fed by combinators.
// All methods are nil-safe so call sites need no guards.
type Metrics struct {
	siftAttempts prometheus.Histogram
	siftOutcomes *prometheus.CounterVec
	unionPicks   prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
// Registration panics on duplicates (promauto semantics); use a dedicated
// registry per Metrics instance in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		siftAttempts: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cauldron_sift_attempts",
				Help:    "Producer calls spent by a Sieve per Generate call",
				Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 1000},
			},
		),
		siftOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cauldron_sift_total",
				Help: "Total number of Sieve sift calls by outcome",
			},
			[]string{"outcome"},
		),
		unionPicks: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "cauldron_union_picks_total",
				Help: "Total number of alternatives drawn by Union strategies",
			},
		),
	}
}

func (m *Metrics) observeSift(attempts int, outcome string) {
	if m == nil {
		return
	}
	m.siftAttempts.Observe(float64(attempts))
	m.siftOutcomes.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observePick() {
	if m == nil {
		return
	}
	m.unionPicks.Inc()
}
