// Package metrics exposes Prometheus instrumentation for the miner.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mineRoundsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "powsim7000",
		Subsystem: "miner",
		Name:      "mine_rounds_total",
		Help:      "Count of mining rounds by outcome.",
	}, []string{"status"})

	mineRoundDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "powsim7000",
		Subsystem: "miner",
		Name:      "mine_round_duration_seconds",
		Help:      "Wall-clock duration of a mining round.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 14),
	}, []string{"status"})

	mineRoundAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "powsim7000",
		Subsystem: "miner",
		Name:      "mine_round_attempts",
		Help:      "Nonces tried before a block was committed.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 16),
	})

	chainHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "powsim7000",
		Subsystem: "chain",
		Name:      "height",
		Help:      "Number of committed blocks, genesis included.",
	})

	requiredDifficulty = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "powsim7000",
		Subsystem: "chain",
		Name:      "required_difficulty",
		Help:      "Leading zeros required of the next block.",
	})
)

// Miner tracks metrics for the mining loop.
type Miner struct{}

// NewMiner constructs a Miner metrics recorder.
func NewMiner() *Miner {
	return &Miner{}
}

// ObserveRound records a round's outcome and duration; attempts are only
// meaningful for committed rounds.
func (m Miner) ObserveRound(err error, attempts uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	mineRoundsTotal.WithLabelValues(status).Inc()
	mineRoundDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		mineRoundAttempts.Observe(float64(attempts))
	}
}

// SetChainState publishes the chain height and the next required
// difficulty.
func (m Miner) SetChainState(height uint64, difficulty int) {
	chainHeight.Set(float64(height))
	requiredDifficulty.Set(float64(difficulty))
}
