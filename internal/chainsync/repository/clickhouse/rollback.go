package clickhouse

import (
	"context"
	"fmt"
	"time"
)

const rollbackQuery = `DELETE FROM chainsync_blocks WHERE position >= ?`

// Rollback removes every block at or above from with a lightweight delete.
func (r *Repository) Rollback(ctx context.Context, from uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("rollback", err, start)
	}()

	if err = r.conn.Exec(ctx, rollbackQuery, from); err != nil {
		return fmt.Errorf("delete blocks from %d: %w", from, err)
	}
	return nil
}
