// Package resolver implements point and range block lookups against a sync service.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/cardano"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	syncpb "github.com/utxorpc/go-codegen/utxorpc/v1alpha/sync"
	"go.uber.org/zap"
)

const (
	opFetch = "fetch"
	opDump  = "dump"
)

// Resolver runs Fetch and Dump. It keeps no state between calls.
type Resolver struct {
	client  SyncClient
	metrics Metrics
	logger  *zap.Logger
}

// New builds a Resolver.
func New(client SyncClient, metrics Metrics, logger *zap.Logger) (*Resolver, error) {
	if client == nil {
		return nil, errors.New("sync client is required")
	}
	if metrics == nil {
		return nil, errors.New("resolver metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		client:  client,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Fetch resolves every reference in a single request and returns the
// supported records in the order the server yielded them.
func (r *Resolver) Fetch(ctx context.Context, refs []model.BlockRef) (records []model.BlockRecord, err error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("%s: %w", opFetch, model.ErrEmptyReferences)
	}

	started := time.Now()
	skipped := 0
	defer func() {
		r.metrics.Observe(opFetch, err, len(records), skipped, started)
	}()

	blocks, err := r.client.FetchBlock(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("%s %d references starting at %s: %w", opFetch, len(refs), refs[0], err)
	}

	records, skipped, err = decodeAll(opFetch, blocks)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("fetched blocks",
		zap.Int("requested", len(refs)),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped),
	)
	return records, nil
}

// Dump requests up to maxItems blocks starting at start in one round trip.
// Records beyond maxItems are discarded.
func (r *Resolver) Dump(ctx context.Context, start model.BlockRef, maxItems uint32) (records []model.BlockRecord, err error) {
	started := time.Now()
	skipped := 0
	defer func() {
		r.metrics.Observe(opDump, err, len(records), skipped, started)
	}()

	page, err := r.client.DumpHistory(ctx, &start, maxItems)
	if err != nil {
		return nil, fmt.Errorf("%s from %s: %w", opDump, start, err)
	}

	if page == nil {
		return []model.BlockRecord{}, nil
	}

	records, skipped, err = decodeAll(opDump, page.Blocks)
	if err != nil {
		return nil, err
	}
	if uint64(len(records)) > uint64(maxItems) {
		r.logger.Warn("server returned more blocks than requested",
			zap.Uint32("max_items", maxItems),
			zap.Int("records", len(records)),
		)
		records = records[:maxItems]
	}
	r.logger.Debug("dumped blocks",
		zap.Stringer("start", start),
		zap.Uint32("max_items", maxItems),
		zap.Int("records", len(records)),
		zap.Int("skipped", skipped),
	)
	return records, nil
}

// DecodeBlocks applies the Fetch/Dump decode rules to a response.
func DecodeBlocks(op string, blocks []*syncpb.AnyChainBlock) ([]model.BlockRecord, int, error) {
	return decodeAll(op, blocks)
}

func decodeAll(op string, blocks []*syncpb.AnyChainBlock) ([]model.BlockRecord, int, error) {
	records := make([]model.BlockRecord, 0, len(blocks))
	skipped := 0
	for i, block := range blocks {
		record, ok, err := cardano.Decode(block)
		if err != nil {
			return nil, skipped, &model.DecodeError{Op: op, Index: i, Err: err}
		}
		if !ok {
			skipped++
			continue
		}
		records = append(records, record)
	}
	return records, skipped, nil
}
