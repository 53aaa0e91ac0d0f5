// Package metrics exposes application metrics collectors.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	backfillProcessHeightTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "backfill_ingester",
		Name:      "process_height_total",
		Help:      "Count of walked heights by chosen action.",
	}, []string{"action", "status"})

	backfillProcessHeightDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "backfill_ingester",
		Name:      "process_height_duration_seconds",
		Help:      "Duration of classifying and applying a single height.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action", "status"})

	backfillCurrentHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "backfill_ingester",
		Name:      "current_height",
		Help:      "Height the walker is currently processing.",
	})

	backfillTipHeight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "backfill_ingester",
		Name:      "tip_height",
		Help:      "Remote tip height the walk started from.",
	})
)

// BackfillIngester tracks metrics for the chain walker.
type BackfillIngester struct{}

// NewBackfillIngester constructs a BackfillIngester.
func NewBackfillIngester() *BackfillIngester {
	return &BackfillIngester{}
}

// ObserveProcessHeight records one walked height and the action taken for it.
func (m BackfillIngester) ObserveProcessHeight(err error, action string, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	if action == "" {
		action = "unknown"
	}
	backfillProcessHeightTotal.WithLabelValues(action, status).Inc()
	backfillProcessHeightDuration.WithLabelValues(action, status).Observe(time.Since(started).Seconds())
}

// ObserveProgress records the current and tip heights of the walk.
func (m BackfillIngester) ObserveProgress(height, tip uint64) {
	backfillCurrentHeight.Set(float64(height))
	backfillTipHeight.Set(float64(tip))
}
