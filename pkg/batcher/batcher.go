// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned when the batcher no longer accepts work.
var ErrStopped = errors.New("batcher stopped")

// Batcher buffers items and flushes them either by size, by interval or on request.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	itemsCh       chan T
	flushCh       chan chan error
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	errMu    sync.Mutex
	asyncErr error

	wg       sync.WaitGroup
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher. A non-positive rps disables rate limiting.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, flushSize int, flushInterval time.Duration, rps int) *Batcher[T] {
	if flushSize <= 0 {
		flushSize = 1
	}
	if flushInterval <= 0 {
		flushInterval = time.Second
	}
	rl := ratelimit.NewUnlimited()
	if rps > 0 {
		rl = ratelimit.New(rps)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		itemsCh:       make(chan T, flushSize*2),
		flushCh:       make(chan chan error),
		flushSize:     flushSize,
		flushInterval: flushInterval,
		rl:            rl,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes what is buffered and stops the loop. It is safe to call twice.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	case <-b.done:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

// Flush writes every item added before the call and returns the first error
// seen since the previous Flush, including failures of background flushes.
func (b *Batcher[T]) Flush(ctx context.Context) error {
	reply := make(chan error, 1)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.done:
		return b.takeErr()
	case b.flushCh <- reply:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-reply:
		if async := b.takeErr(); async != nil && err == nil {
			err = async
		}
		return err
	}
}

// Err returns and clears the first background flush error.
func (b *Batcher[T]) Err() error {
	return b.takeErr()
}

func (b *Batcher[T]) takeErr() error {
	b.errMu.Lock()
	defer b.errMu.Unlock()
	err := b.asyncErr
	b.asyncErr = nil
	return err
}

func (b *Batcher[T]) keepErr(err error) {
	b.errMu.Lock()
	defer b.errMu.Unlock()
	if b.asyncErr == nil {
		b.asyncErr = err
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()
	defer close(b.done)

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}

		b.rl.Take()
		err := b.flushCallback(ctx, buf)
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		buf = buf[:0]
		return err
	}
	background := func() {
		if err := flush(); err != nil {
			b.keepErr(err)
		}
	}
	drain := func() {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
			default:
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain()
			background()
			return

		case <-b.stop:
			drain()
			background()
			return

		case reply := <-b.flushCh:
			drain()
			reply <- flush()

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				background()
			}

		case <-ticker.C:
			background()
		}
	}
}
