// Package postgres stores block records in a PostgreSQL table.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/pkg/safe"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/protobuf/encoding/protojson"
)

const createTableQuery = `
CREATE TABLE IF NOT EXISTS chainsync_blocks (
	position   BIGINT PRIMARY KEY,
	hash       BYTEA NOT NULL,
	height     BIGINT NOT NULL,
	chain      TEXT NOT NULL,
	payload    JSONB,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

const (
	upsertPrefix = `INSERT INTO chainsync_blocks (position, hash, height, chain, payload) VALUES `
	upsertSuffix = `
ON CONFLICT (position) DO UPDATE SET
	hash = EXCLUDED.hash,
	height = EXCLUDED.height,
	chain = EXCLUDED.chain,
	payload = EXCLUDED.payload,
	updated_at = NOW()`
	rollbackQuery = `DELETE FROM chainsync_blocks WHERE position >= $1`

	columnsPerRow = 5
	// maxRowsPerStatement keeps one upsert within the 65535 bind parameters
	// PostgreSQL accepts.
	maxRowsPerStatement = 65535 / columnsPerRow
)

type Repository struct {
	pool    Pool
	metrics Metrics
}

// NewRepository connects, pings and ensures the table exists.
func NewRepository(ctx context.Context, dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("metrics is nil")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open postgres pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	if _, err := pool.Exec(ctx, createTableQuery); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &Repository{pool: pool, metrics: metrics}, nil
}

// Put upserts records, at most maxRowsPerStatement rows per statement. Of
// several records sharing a position the last one wins. A failed statement
// leaves earlier ones applied; replaying the same records is idempotent.
func (r *Repository) Put(ctx context.Context, records ...model.BlockRecord) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("put", err, start)
	}()

	if len(records) == 0 {
		return nil
	}

	rows := latestByPosition(records)
	for begin := 0; begin < len(rows); begin += maxRowsPerStatement {
		chunk := rows[begin:min(begin+maxRowsPerStatement, len(rows))]

		var query string
		var args []any
		if query, args, err = buildUpsert(chunk); err != nil {
			return err
		}
		if _, err = r.pool.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert blocks %d..%d of %d: %w", begin, begin+len(chunk)-1, len(rows), err)
		}
	}
	return nil
}

// Rollback deletes every block at or above from.
func (r *Repository) Rollback(ctx context.Context, from uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("rollback", err, start)
	}()

	bound, convErr := safe.Int64(from)
	if convErr != nil {
		// Positions above MaxInt64 are never stored.
		return nil
	}
	if _, err = r.pool.Exec(ctx, rollbackQuery, bound); err != nil {
		return fmt.Errorf("delete blocks from %d: %w", from, err)
	}
	return nil
}

// Close releases the pool.
func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

// latestByPosition keeps one record per position, the last one given, in
// order of first appearance. A statement must not touch a row twice.
func latestByPosition(records []model.BlockRecord) []model.BlockRecord {
	latest := make(map[uint64]int, len(records))
	order := make([]uint64, 0, len(records))
	for i, record := range records {
		if _, seen := latest[record.Position]; !seen {
			order = append(order, record.Position)
		}
		latest[record.Position] = i
	}

	out := make([]model.BlockRecord, 0, len(order))
	for _, position := range order {
		out = append(out, records[latest[position]])
	}
	return out
}

// buildUpsert renders one statement for records with distinct positions.
func buildUpsert(records []model.BlockRecord) (string, []any, error) {
	var sb strings.Builder
	sb.WriteString(upsertPrefix)
	args := make([]any, 0, len(records)*columnsPerRow)
	for n, record := range records {
		pos, err := safe.Int64(record.Position)
		if err != nil {
			return "", nil, fmt.Errorf("block position: %w", err)
		}
		height, err := safe.Int64(record.Height)
		if err != nil {
			return "", nil, fmt.Errorf("block %d height: %w", record.Position, err)
		}
		var payload []byte
		if record.Payload != nil {
			if payload, err = protojson.Marshal(record.Payload); err != nil {
				return "", nil, fmt.Errorf("marshal block %d: %w", record.Position, err)
			}
		}

		if n > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for c := 1; c <= columnsPerRow; c++ {
			if c > 1 {
				sb.WriteString(", ")
			}
			sb.WriteString("$" + strconv.Itoa(n*columnsPerRow+c))
		}
		sb.WriteString(")")

		hash := record.Hash
		if hash == nil {
			hash = []byte{}
		}
		args = append(args, pos, hash, height, string(record.Chain), jsonOrNil(payload))
	}
	sb.WriteString(upsertSuffix)
	return sb.String(), args, nil
}

// jsonOrNil keeps a missing payload as SQL NULL.
func jsonOrNil(payload []byte) any {
	if payload == nil {
		return nil
	}
	return string(payload)
}
