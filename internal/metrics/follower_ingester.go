package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	followerCycleTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower_ingester",
		Name:      "cycle_total",
		Help:      "Count of tail polling cycles.",
	}, []string{"status"})

	followerCycleDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower_ingester",
		Name:      "cycle_duration_seconds",
		Help:      "Duration of a tail polling cycle.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	followerInsertedBlocks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower_ingester",
		Name:      "inserted_blocks_total",
		Help:      "Count of new blocks inserted by the tail daemon.",
	})

	followerCycleSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "follower_ingester",
		Name:      "cycle_blocks",
		Help:      "Number of blocks inserted per cycle.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1..512
	})
)

// FollowerIngester tracks metrics for the tail daemon.
type FollowerIngester struct{}

// NewFollowerIngester constructs a FollowerIngester.
func NewFollowerIngester() *FollowerIngester {
	return &FollowerIngester{}
}

// ObserveCycle records one polling cycle and how many blocks it inserted.
func (m FollowerIngester) ObserveCycle(err error, inserted int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	followerCycleTotal.WithLabelValues(status).Inc()
	followerCycleDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if inserted > 0 {
		followerInsertedBlocks.Add(float64(inserted))
		followerCycleSize.Observe(float64(inserted))
	}
}
