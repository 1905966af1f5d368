package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	historyPagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_history",
		Name:      "pages_total",
		Help:      "Count of history pages requested.",
	}, []string{"status"})

	historyPageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_history",
		Name:      "page_duration_seconds",
		Help:      "Duration of fetching and storing a history page.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	historyPageSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_history",
		Name:      "page_size",
		Help:      "Number of records per history page.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
)

// History tracks metrics for paged history dumps.
type History struct{}

// NewHistory constructs a History metrics collector.
func NewHistory() *History {
	return &History{}
}

// ObservePage records one history page.
func (m History) ObservePage(err error, records int, started time.Time) {
	status := statusOf(err)
	historyPagesTotal.WithLabelValues(status).Inc()
	historyPageDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		historyPageSize.Observe(float64(records))
	}
}
