package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	syncRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_rpc_client",
		Name:      "operations_total",
		Help:      "Count of sync service RPC operations.",
	}, []string{"operation", "transport", "status"})
	syncRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_rpc_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of sync service RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "transport", "status"})
)

// RPCClient tracks metrics for calls to the sync service.
type RPCClient struct {
	transport string
}

// NewRPCClient constructs a metrics collector for sync service calls.
func NewRPCClient(transport string) *RPCClient {
	if transport == "" {
		transport = "unknown"
	}
	return &RPCClient{transport: transport}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)

	syncRPCRequestsTotal.WithLabelValues(operation, m.transport, status).Inc()
	syncRPCRequestDuration.WithLabelValues(operation, m.transport, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
