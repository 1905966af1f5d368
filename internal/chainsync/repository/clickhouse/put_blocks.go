package clickhouse

import (
	"context"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	"google.golang.org/protobuf/encoding/protojson"
)

const insertBlocksQuery = `
INSERT INTO chainsync_blocks (
	position,
	hash,
	height,
	chain,
	payload
) VALUES`

// Put stores block rows. Newer rows replace older ones with the same
// position when parts merge; readers use FINAL.
func (r *Repository) Put(ctx context.Context, records ...model.BlockRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("put", err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	batch, err := r.conn.PrepareBatch(ctx, insertBlocksQuery)
	if err != nil {
		return fmt.Errorf("prepare blocks batch: %w", err)
	}

	for _, record := range records {
		var payload []byte
		if record.Payload != nil {
			if payload, err = protojson.Marshal(record.Payload); err != nil {
				_ = batch.Abort()
				return fmt.Errorf("marshal block %d: %w", record.Position, err)
			}
		}
		if err = batch.Append(
			record.Position,
			hex.EncodeToString(record.Hash),
			record.Height,
			string(record.Chain),
			string(payload),
		); err != nil {
			_ = batch.Abort()
			return fmt.Errorf("append block %d: %w", record.Position, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert blocks: %w", err)
	}
	return nil
}
