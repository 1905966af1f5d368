package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	followerEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_follower",
		Name:      "events_total",
		Help:      "Count of follow events forwarded to the handler.",
	}, []string{"kind"})

	followerDecodeErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_follower",
		Name:      "decode_errors_total",
		Help:      "Count of follow actions that could not be decoded.",
	})

	followerDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_follower",
		Name:      "dropped_total",
		Help:      "Count of follow actions dropped for an unsupported chain.",
	})

	followerTipPosition = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_follower",
		Name:      "tip_position",
		Help:      "Position of the current follow tip.",
	})

	followerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_follower",
		Name:      "state",
		Help:      "Current follower state, 1 for the active state.",
	}, []string{"state"})

	followerReconnectsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "chainsync_follower",
		Name:      "reconnects_total",
		Help:      "Count of follow session restarts.",
	}, []string{"reason"})
)

var followerStates = []string{"connecting", "streaming", "closed", "failed"}

// Follower tracks metrics for the tip follower.
type Follower struct{}

// NewFollower constructs a Follower metrics collector.
func NewFollower() *Follower {
	return &Follower{}
}

// ObserveEvent counts a forwarded event.
func (m Follower) ObserveEvent(kind string) {
	followerEventsTotal.WithLabelValues(kind).Inc()
}

// ObserveDecodeError counts an undecodable action.
func (m Follower) ObserveDecodeError() {
	followerDecodeErrorsTotal.Inc()
}

// ObserveDropped counts an action of an unsupported chain.
func (m Follower) ObserveDropped() {
	followerDroppedTotal.Inc()
}

// SetTip publishes the current tip position.
func (m Follower) SetTip(position uint64) {
	followerTipPosition.Set(float64(position))
}

// SetState marks state as the active one.
func (m Follower) SetState(state string) {
	for _, s := range followerStates {
		value := 0.0
		if s == state {
			value = 1
		}
		followerState.WithLabelValues(s).Set(value)
	}
}

// ObserveReconnect counts a session restart.
func (m Follower) ObserveReconnect(err error) {
	reason := "stream_end"
	if err != nil {
		reason = "error"
	}
	followerReconnectsTotal.WithLabelValues(reason).Inc()
}
