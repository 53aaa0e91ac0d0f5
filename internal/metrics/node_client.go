package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "node_client",
		Name:      "operations_total",
		Help:      "Count of node API operations.",
	}, []string{"operation", "status"})
	nodeRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "node_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node API operations including retries.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
	nodeRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "node_client",
		Name:      "retries_total",
		Help:      "Count of retried node API attempts.",
	}, []string{"operation"})
)

// NodeClient tracks metrics for calls to the DeSo node API.
type NodeClient struct{}

// NewNodeClient constructs a metrics collector for node API calls.
func NewNodeClient() *NodeClient {
	return &NodeClient{}
}

// Observe records a single API operation outcome and duration.
func (m NodeClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	nodeRequestsTotal.WithLabelValues(operation, status).Inc()
	nodeRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

// ObserveRetry counts a failed attempt that will be retried.
func (m NodeClient) ObserveRetry(operation string) {
	nodeRetriesTotal.WithLabelValues(operation).Inc()
}
