package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	resolverOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_resolver",
		Name:      "operations_total",
		Help:      "Count of fetch and dump operations.",
	}, []string{"operation", "status"})

	resolverOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_resolver",
		Name:      "operation_duration_seconds",
		Help:      "Duration of fetch and dump operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})

	resolverRecords = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_resolver",
		Name:      "records",
		Help:      "Number of records returned per operation.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"operation"})

	resolverSkippedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_resolver",
		Name:      "skipped_total",
		Help:      "Count of response items skipped for an unsupported chain.",
	}, []string{"operation"})
)

// Resolver tracks metrics for point and range lookups.
type Resolver struct{}

// NewResolver constructs a Resolver metrics collector.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Observe records one fetch or dump call.
func (m Resolver) Observe(operation string, err error, records, skipped int, started time.Time) {
	status := statusOf(err)

	resolverOperationsTotal.WithLabelValues(operation, status).Inc()
	resolverOperationDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
	if err != nil {
		return
	}
	resolverRecords.WithLabelValues(operation).Observe(float64(records))
	if skipped > 0 {
		resolverSkippedTotal.WithLabelValues(operation).Add(float64(skipped))
	}
}
