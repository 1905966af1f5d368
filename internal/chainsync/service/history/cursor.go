// Package history pages through DumpHistory using the server's continuation token.
package history

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/service/resolver"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/pkg/safe"
	"go.uber.org/zap"
)

const opHistory = "history"

// Result summarizes a cursor run.
type Result struct {
	Records uint64
	Pages   int
	// Next is where a later run can resume, nil once history is exhausted.
	Next *model.BlockRef
}

// Cursor streams up to a limit of blocks into a sink, one page per round trip.
type Cursor struct {
	client   SyncClient
	sink     RecordSink
	metrics  Metrics
	logger   *zap.Logger
	pageSize uint32
}

// NewCursor builds a Cursor.
func NewCursor(client SyncClient, sink RecordSink, metrics Metrics, logger *zap.Logger, pageSize uint32) (*Cursor, error) {
	if client == nil {
		return nil, errors.New("sync client is required")
	}
	if sink == nil {
		return nil, errors.New("record sink is required")
	}
	if metrics == nil {
		return nil, errors.New("history metrics is required")
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	return &Cursor{
		client:   client,
		sink:     sink,
		metrics:  metrics,
		logger:   logger,
		pageSize: pageSize,
	}, nil
}

// Run pages forward from start until limit records were stored or the
// server stops handing out continuation tokens.
func (c *Cursor) Run(ctx context.Context, start model.BlockRef, limit uint64) (Result, error) {
	var res Result
	cursor := start
	remaining := limit

	for remaining > 0 {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		want, err := safe.Uint32(min(remaining, uint64(c.pageSize)))
		if err != nil {
			return res, fmt.Errorf("page size: %w", err)
		}

		stored, next, err := c.page(ctx, cursor, want, remaining)
		if err != nil {
			return res, err
		}
		res.Pages++
		res.Records += stored
		remaining -= stored
		res.Next = next

		if next == nil || next.Equal(cursor) {
			res.Next = nil
			c.logger.Info("history exhausted", zap.Uint64("records", res.Records), zap.Int("pages", res.Pages))
			return res, nil
		}
		cursor = *next
	}

	return res, nil
}

func (c *Cursor) page(ctx context.Context, cursor model.BlockRef, want uint32, remaining uint64) (stored uint64, next *model.BlockRef, err error) {
	started := time.Now()
	records := 0
	defer func() {
		c.metrics.ObservePage(err, records, started)
	}()

	page, err := c.client.DumpHistory(ctx, &cursor, want)
	if err != nil {
		return 0, nil, fmt.Errorf("%s page from %s: %w", opHistory, cursor, err)
	}

	decoded, skipped, err := resolver.DecodeBlocks(opHistory, page.Blocks)
	if err != nil {
		return 0, nil, fmt.Errorf("%s page from %s: %w", opHistory, cursor, err)
	}
	if uint64(len(decoded)) > remaining {
		decoded = decoded[:remaining]
	}
	records = len(decoded)

	if len(page.Blocks) == 0 {
		return 0, nil, nil
	}
	if len(decoded) > 0 {
		if err = c.sink.Put(ctx, decoded...); err != nil {
			return 0, nil, fmt.Errorf("store %s page from %s: %w", opHistory, cursor, err)
		}
	}

	c.logger.Debug("history page stored",
		zap.Stringer("from", cursor),
		zap.Int("records", len(decoded)),
		zap.Int("skipped", skipped),
	)
	return uint64(len(decoded)), page.NextToken, nil
}
