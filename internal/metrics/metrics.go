package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "scrim"

var (
	signupOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "signup_outcomes_total",
			Help:      "Count of per-slot signup outcomes by status.",
		},
		[]string{"status"},
	)
	txRetries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tx_retries_total",
			Help:      "Count of transaction attempts retried after a transient storage error.",
		},
	)
	txUnavailable = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tx_unavailable_total",
			Help:      "Count of transactions that gave up after exhausting retries.",
		},
	)
	interactions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "interactions_total",
			Help:      "Count of two-phase interactions by kind and result.",
		},
		[]string{"kind", "result"},
	)
)

var registerMetrics sync.Once

// Register all metrics with the given registerer. Only the first call has an effect.
func Register(reg prometheus.Registerer) {
	registerMetrics.Do(func() {
		reg.MustRegister(signupOutcomes)
		reg.MustRegister(txRetries)
		reg.MustRegister(txUnavailable)
		reg.MustRegister(interactions)
	})
}

// RecordSignupOutcome records one per-slot signup result.
func RecordSignupOutcome(status string) {
	signupOutcomes.WithLabelValues(status).Inc()
}

// RecordTxRetry records a retried transaction attempt.
func RecordTxRetry() {
	txRetries.Inc()
}

// RecordTxUnavailable records a transaction that exhausted its retries.
func RecordTxUnavailable() {
	txUnavailable.Inc()
}

// RecordInteraction records the result of a submitted, cancelled or expired interaction.
func RecordInteraction(kind, result string) {
	interactions.WithLabelValues(kind, result).Inc()
}
