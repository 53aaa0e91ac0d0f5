package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verifierChunkTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "verifier",
		Name:      "chunk_total",
		Help:      "Count of verified height chunks.",
	}, []string{"status"})

	verifierChunkDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "verifier",
		Name:      "chunk_duration_seconds",
		Help:      "Duration of verifying a chunk of heights.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	verifierCheckedHeights = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "verifier",
		Name:      "checked_heights_total",
		Help:      "Count of heights checked for completeness.",
	})

	verifierViolationHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "verifier",
		Name:      "violation_height",
		Help:      "Height of the last completeness violation.",
	})

	verifierViolationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "verifier",
		Name:      "violations_total",
		Help:      "Count of completeness violations found.",
	})
)

// Verifier tracks metrics for the integrity verifier.
type Verifier struct{}

// NewVerifier constructs a Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// ObserveChunk records the outcome of verifying a chunk of heights.
func (m Verifier) ObserveChunk(err error, heights int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	verifierChunkTotal.WithLabelValues(status).Inc()
	verifierChunkDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	verifierCheckedHeights.Add(float64(heights))
}

// ObserveViolation records a height whose stored transactions do not match its header.
func (m Verifier) ObserveViolation(height uint64) {
	verifierViolationsTotal.Inc()
	verifierViolationHeight.Set(float64(height))
}
