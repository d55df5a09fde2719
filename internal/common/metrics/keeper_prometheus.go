package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// KeeperPrometheusMetrics tracks the position keeper drain loop: business
// outcomes per message plus pass-level durations.
type KeeperPrometheusMetrics struct {
	processedTotal    *prometheus.CounterVec
	poisonTotal       prometheus.Counter
	lockConflictTotal prometheus.Counter
	reconciledTotal   prometheus.Counter
	drainDurationHist prometheus.Histogram
}

func newKeeperPrometheusMetrics(reg prometheus.Registerer) *KeeperPrometheusMetrics {
	processedTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "position_keeper_messages_total",
		Help: "queue messages handled by the position keeper, by outcome",
	}, []string{"outcome"})

	poisonTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "position_keeper_poison_messages_total",
		Help: "unparseable messages deleted without processing",
	})

	lockConflictTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "position_keeper_lock_conflicts_total",
		Help: "invocations that lost the lease acquire",
	})

	reconciledTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "position_keeper_reconciled_transactions_total",
		Help: "queued transactions swept to unknown by the reconciler",
	})

	drainDurationHist := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "position_keeper_drain_duration_seconds",
		Help:    "wall time of one full drain pass",
		Buckets: []float64{0.010, 0.100, 0.500, 1, 2, 5, 10, 30, 60, 120, 300},
	})

	reg.MustRegister(processedTotal, poisonTotal, lockConflictTotal, reconciledTotal, drainDurationHist)

	return &KeeperPrometheusMetrics{
		processedTotal:    processedTotal,
		poisonTotal:       poisonTotal,
		lockConflictTotal: lockConflictTotal,
		reconciledTotal:   reconciledTotal,
		drainDurationHist: drainDurationHist,
	}
}

func (m *KeeperPrometheusMetrics) ObserveMessage(outcome string) {
	if m == nil {
		return
	}
	m.processedTotal.WithLabelValues(outcome).Inc()
}

func (m *KeeperPrometheusMetrics) ObservePoison() {
	if m == nil {
		return
	}
	m.poisonTotal.Inc()
}

func (m *KeeperPrometheusMetrics) ObserveLockConflict() {
	if m == nil {
		return
	}
	m.lockConflictTotal.Inc()
}

func (m *KeeperPrometheusMetrics) ObserveReconciled(count int64) {
	if m == nil {
		return
	}
	m.reconciledTotal.Add(float64(count))
}

func (m *KeeperPrometheusMetrics) ObserveDrainDuration(start time.Time) {
	if m == nil {
		return
	}
	m.drainDurationHist.Observe(time.Since(start).Seconds())
}
