// Package follower tracks the chain tip through a FollowTip stream.
package follower

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/cardano"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/chain"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	syncpb "github.com/utxorpc/go-codegen/utxorpc/v1alpha/sync"
	"go.uber.org/zap"
)

var (
	errAlreadyStarted = errors.New("follower already started")
	errMissingAction  = errors.New("follow response has no action")
	errMissingResetTo = errors.New("reset action has no block reference")
)

const (
	opApply = "follow apply"
	opUndo  = "follow undo"
	opReset = "follow reset"
	opNone  = "follow"
)

// Option configures a Follower.
type Option func(*Follower)

// WithUndoPolicy selects how Undo actions move the tip.
func WithUndoPolicy(policy UndoPolicy) Option {
	return func(f *Follower) {
		f.undoPolicy = policy
	}
}

// WithHistoryLimit bounds the number of past tips kept for UndoRevertToPrevious.
func WithHistoryLimit(limit int) Option {
	return func(f *Follower) {
		if limit > 0 {
			f.historyLimit = limit
		}
	}
}

// WithInitialTip seeds the follow state, used when a session resumes.
func WithInitialTip(tip model.BlockRef) Option {
	return func(f *Follower) {
		f.tip = &tip
		f.history = []model.BlockRef{tip}
	}
}

// Follower consumes one FollowTip stream and forwards each action to a Handler.
// A Follower runs at most once.
type Follower struct {
	client       SyncClient
	handler      Handler
	metrics      Metrics
	logger       *zap.Logger
	undoPolicy   UndoPolicy
	historyLimit int

	started   atomic.Bool
	processed atomic.Uint64

	mu      sync.RWMutex
	state   State
	tip     *model.BlockRef
	history []model.BlockRef
}

// New constructs a Follower.
func New(client SyncClient, handler Handler, metrics Metrics, logger *zap.Logger, opts ...Option) (*Follower, error) {
	if client == nil {
		return nil, fmt.Errorf("sync client is nil")
	}
	if handler == nil {
		return nil, fmt.Errorf("handler is nil")
	}
	if metrics == nil {
		return nil, fmt.Errorf("metrics is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	f := &Follower{
		client:       client,
		handler:      handler,
		metrics:      metrics,
		logger:       logger,
		undoPolicy:   UndoAdoptCarried,
		historyLimit: defaultHistoryLimit,
		state:        StateIdle,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// State returns the current lifecycle state.
func (f *Follower) State() State {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.state
}

// Tip returns the current tip; ok is false while it is unknown.
func (f *Follower) Tip() (model.BlockRef, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.tip == nil {
		return model.BlockRef{}, false
	}
	return *f.tip, true
}

// Processed returns the number of stream items received so far.
func (f *Follower) Processed() uint64 {
	return f.processed.Load()
}

// Run opens the stream from the intersect points and blocks until it ends.
// It returns nil when the server closes the stream or ctx is cancelled,
// including a cancellation that interrupts the handler.
// Transport failures wrap model.ErrStream; handler errors are returned as is
// with context.
func (f *Follower) Run(ctx context.Context, intersect []model.BlockRef) error {
	if !f.started.CompareAndSwap(false, true) {
		return errAlreadyStarted
	}

	f.setState(StateConnecting)
	stream, err := f.client.FollowTip(ctx, intersect)
	if err != nil {
		if ctx.Err() != nil {
			f.setState(StateClosed)
			return nil
		}
		f.setState(StateFailed)
		return fmt.Errorf("follow tip from %d intersect points: %w", len(intersect), err)
	}
	defer func() {
		if err := stream.Close(); err != nil {
			f.logger.Debug("close follow stream", zap.Error(err))
		}
	}()

	f.setState(StateStreaming)
	f.logger.Info("follow stream opened", zap.Int("intersect_points", len(intersect)))

	for index := uint64(0); ; index++ {
		resp, err := stream.Recv()
		if ctx.Err() != nil {
			f.setState(StateClosed)
			return nil
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				f.setState(StateClosed)
				f.logger.Info("follow stream ended by server", zap.Uint64("received", index))
				return nil
			}
			f.setState(StateFailed)
			if !errors.Is(err, model.ErrStream) {
				err = fmt.Errorf("%w: %w", model.ErrStream, err)
			}
			return fmt.Errorf("await follow item #%d: %w", index, err)
		}

		f.processed.Add(1)
		if err := f.process(ctx, index, resp); err != nil {
			if ctx.Err() != nil {
				f.setState(StateClosed)
				return nil
			}
			f.setState(StateFailed)
			return err
		}
	}
}

func (f *Follower) process(ctx context.Context, index uint64, resp *syncpb.FollowTipResponse) error {
	switch action := resp.GetAction().(type) {
	case *syncpb.FollowTipResponse_Apply:
		record, ok, err := cardano.Decode(action.Apply)
		if err != nil {
			f.reportDecode(ctx, opApply, index, err)
			return nil
		}
		if !ok {
			f.drop(opApply, index)
			return nil
		}
		tip := f.apply(record.Ref())
		return f.emit(ctx, model.Event{Kind: model.EventApplied, Index: index, Record: &record, Tip: tip})

	case *syncpb.FollowTipResponse_Undo:
		record, ok, err := cardano.Decode(action.Undo)
		if err != nil {
			f.reportDecode(ctx, opUndo, index, err)
			return nil
		}
		if !ok {
			f.drop(opUndo, index)
			return nil
		}
		tip := f.undo(record.Ref())
		return f.emit(ctx, model.Event{Kind: model.EventUndone, Index: index, Record: &record, Tip: tip})

	case *syncpb.FollowTipResponse_Reset_:
		ref := chain.FromProtoRef(action.Reset_)
		if ref == nil {
			f.reportDecode(ctx, opReset, index, errMissingResetTo)
			return nil
		}
		tip := f.reset(*ref)
		return f.emit(ctx, model.Event{Kind: model.EventReset, Index: index, Ref: ref, Tip: tip})

	default:
		f.reportDecode(ctx, opNone, index, errMissingAction)
		return nil
	}
}

func (f *Follower) emit(ctx context.Context, event model.Event) error {
	if event.Tip != nil {
		f.metrics.SetTip(event.Tip.Position())
	}
	f.metrics.ObserveEvent(string(event.Kind))
	if err := f.handler.HandleEvent(ctx, event); err != nil {
		return fmt.Errorf("handle %s event #%d: %w", event.Kind, event.Index, err)
	}
	return nil
}

func (f *Follower) reportDecode(ctx context.Context, op string, index uint64, err error) {
	decodeErr := &model.DecodeError{Op: op, Index: int(index), Err: err}
	f.metrics.ObserveDecodeError()
	f.logger.Warn("skip undecodable follow item", zap.Error(decodeErr))
	f.handler.HandleDecodeError(ctx, decodeErr)
}

func (f *Follower) drop(op string, index uint64) {
	f.metrics.ObserveDropped()
	f.logger.Debug("drop follow item of unsupported chain", zap.String("op", op), zap.Uint64("index", index))
}

func (f *Follower) setState(state State) {
	f.mu.Lock()
	f.state = state
	f.mu.Unlock()
	f.metrics.SetState(string(state))
}

// apply makes ref the tip. The returned pointer is a private copy.
func (f *Follower) apply(ref model.BlockRef) *model.BlockRef {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.push(ref)
	return f.setTip(&ref)
}

func (f *Follower) undo(carried model.BlockRef) *model.BlockRef {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.undoPolicy == UndoRevertToPrevious {
		f.truncate(func(ref model.BlockRef) bool { return ref.Position() >= carried.Position() })
		if len(f.history) == 0 {
			return f.setTip(nil)
		}
		prev := f.history[len(f.history)-1]
		return f.setTip(&prev)
	}

	f.truncate(func(ref model.BlockRef) bool { return ref.Position() > carried.Position() })
	f.push(carried)
	return f.setTip(&carried)
}

func (f *Follower) reset(ref model.BlockRef) *model.BlockRef {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.truncate(func(r model.BlockRef) bool { return r.Position() > ref.Position() })
	f.push(ref)
	return f.setTip(&ref)
}

// setTip stores tip and returns a copy for the event. Callers hold mu.
func (f *Follower) setTip(tip *model.BlockRef) *model.BlockRef {
	if tip == nil {
		f.tip = nil
		return nil
	}
	stored := *tip
	f.tip = &stored
	out := stored
	return &out
}

// push appends ref unless it already is the newest entry. Callers hold mu.
func (f *Follower) push(ref model.BlockRef) {
	if n := len(f.history); n > 0 && f.history[n-1].Equal(ref) {
		return
	}
	f.history = append(f.history, ref)
	if over := len(f.history) - f.historyLimit; over > 0 {
		f.history = append(f.history[:0], f.history[over:]...)
	}
}

// truncate pops newest entries while drop reports true. Callers hold mu.
func (f *Follower) truncate(drop func(model.BlockRef) bool) {
	for len(f.history) > 0 && drop(f.history[len(f.history)-1]) {
		f.history = f.history[:len(f.history)-1]
	}
}
