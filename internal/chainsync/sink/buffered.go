package sink

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/pkg/batcher"
	"go.uber.org/zap"
)

// Buffered batches Put calls in front of a slower sink. Rollback and Close
// flush pending records first so deletes never overtake inserts.
type Buffered struct {
	next    RecordSink
	batcher *batcher.Batcher[model.BlockRecord]
}

// NewBuffered starts the batching loop. It keeps running after ctx is
// cancelled until Close.
func NewBuffered(ctx context.Context, next RecordSink, logger *zap.Logger, flushSize int, flushInterval time.Duration, rps int) *Buffered {
	b := &Buffered{next: next}
	b.batcher = batcher.New[model.BlockRecord](
		logger,
		func(ctx context.Context, records []model.BlockRecord) error {
			return next.Put(ctx, records...)
		},
		flushSize,
		flushInterval,
		rps,
	)
	b.batcher.Start(context.WithoutCancel(ctx))
	return b
}

// Put queues records. It reports the first failed background flush.
func (b *Buffered) Put(ctx context.Context, records ...model.BlockRecord) error {
	if err := b.batcher.Err(); err != nil {
		return fmt.Errorf("flush buffered blocks: %w", err)
	}
	for _, record := range records {
		if err := b.batcher.Add(ctx, record); err != nil {
			return fmt.Errorf("buffer block %d: %w", record.Position, err)
		}
	}
	return nil
}

func (b *Buffered) Rollback(ctx context.Context, from uint64) error {
	if err := b.batcher.Flush(ctx); err != nil {
		return fmt.Errorf("flush before rollback: %w", err)
	}
	return b.next.Rollback(ctx, from)
}

// Close flushes what is pending and closes the wrapped sink.
func (b *Buffered) Close() error {
	b.batcher.Stop()
	var flushErr error
	if err := b.batcher.Err(); err != nil {
		flushErr = fmt.Errorf("flush buffered blocks: %w", err)
	}
	return errors.Join(flushErr, b.next.Close())
}
