package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sinkOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_sink",
		Name:      "operations_total",
		Help:      "Count of record sink operations.",
	}, []string{"operation", "backend", "status"})
	sinkOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_sink",
		Name:      "operation_duration_seconds",
		Help:      "Duration of record sink operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "backend", "status"})
)

// Sink tracks metrics for a record sink backend.
type Sink struct {
	backend string
}

// NewSink creates a Sink metrics collector for backend.
func NewSink(backend string) *Sink {
	if backend == "" {
		backend = "unknown"
	}
	return &Sink{backend: backend}
}

// Observe records duration and status of a sink operation.
func (m Sink) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)

	sinkOperationsTotal.WithLabelValues(operation, m.backend, status).Inc()
	sinkOperationDuration.WithLabelValues(operation, m.backend, status).Observe(time.Since(started).Seconds())
}
