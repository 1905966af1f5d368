package follower

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/clock"
	"go.uber.org/zap"
)

// Reconnector restarts follow sessions after transport failures or a server
// side stream end, resuming from the last known tip.
type Reconnector struct {
	client      SyncClient
	handler     Handler
	metrics     Metrics
	reconnects  ReconnectMetrics
	logger      *zap.Logger
	opts        []Option
	maxFailures int

	backoff *clock.Backoff
	sleep   func(ctx context.Context, d time.Duration) error

	mu      sync.RWMutex
	current *Follower
	lastTip *model.BlockRef
}

// NewReconnector constructs a Reconnector. maxFailures bounds consecutive
// sessions that end without receiving anything; zero retries forever.
func NewReconnector(
	client SyncClient,
	handler Handler,
	metrics Metrics,
	reconnects ReconnectMetrics,
	logger *zap.Logger,
	maxFailures int,
	opts ...Option,
) (*Reconnector, error) {
	if client == nil {
		return nil, fmt.Errorf("sync client is nil")
	}
	if handler == nil {
		return nil, fmt.Errorf("handler is nil")
	}
	if metrics == nil || reconnects == nil {
		return nil, fmt.Errorf("metrics is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconnector{
		client:      client,
		handler:     handler,
		metrics:     metrics,
		reconnects:  reconnects,
		logger:      logger,
		opts:        opts,
		maxFailures: maxFailures,
		backoff:     clock.NewBackoff(reconnectInitialDelay, reconnectMaxDelay),
		sleep:       clock.SleepWithContext,
	}, nil
}

// State returns the state of the active session.
func (r *Reconnector) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.current == nil {
		return StateIdle
	}
	return r.current.State()
}

// Tip returns the tip of the active session, or the last one seen.
func (r *Reconnector) Tip() (model.BlockRef, bool) {
	r.mu.RLock()
	current, last := r.current, r.lastTip
	r.mu.RUnlock()

	if current != nil {
		if tip, ok := current.Tip(); ok {
			return tip, true
		}
	}
	if last != nil {
		return *last, true
	}
	return model.BlockRef{}, false
}

// Run follows the tip until ctx is cancelled, a handler fails, or
// maxFailures sessions in a row fail to receive anything.
func (r *Reconnector) Run(ctx context.Context, intersect []model.BlockRef) error {
	failures := 0
	for {
		points := intersect
		opts := r.opts
		if tip, ok := r.Tip(); ok {
			points = []model.BlockRef{tip}
			opts = append(append([]Option(nil), r.opts...), WithInitialTip(tip))
		}

		session, err := New(r.client, r.handler, r.metrics, r.logger, opts...)
		if err != nil {
			return fmt.Errorf("create follower: %w", err)
		}
		r.mu.Lock()
		r.current = session
		r.mu.Unlock()

		runErr := session.Run(ctx, points)

		if tip, ok := session.Tip(); ok {
			r.mu.Lock()
			r.lastTip = &tip
			r.mu.Unlock()
		}
		if ctx.Err() != nil {
			return nil
		}
		if runErr != nil && !model.IsTransport(runErr) {
			return runErr
		}

		if session.Processed() > 0 {
			failures = 0
			r.backoff.Reset()
		} else {
			failures++
		}
		if r.maxFailures > 0 && failures >= r.maxFailures {
			if runErr == nil {
				runErr = fmt.Errorf("%w: stream closed without data", model.ErrStream)
			}
			return fmt.Errorf("give up after %d failed sessions: %w", failures, runErr)
		}

		r.reconnects.ObserveReconnect(runErr)
		delay := r.backoff.Next()
		r.logger.Warn("follow session ended, reconnecting",
			zap.Error(runErr),
			zap.Duration("delay", delay),
			zap.Int("failures", failures),
		)
		if err := r.sleep(ctx, delay); err != nil {
			return nil
		}
	}
}
