package sink

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/pkg/workerpool"
	"go.uber.org/zap"
)

const fileSuffix = ".json"

// Files writes each record to <dir>/<position>.json, replacing older content.
type Files struct {
	dir     string
	workers int
	metrics Metrics
	logger  *zap.Logger
}

// NewFiles constructs a Files sink. The directory is created on first write.
func NewFiles(dir string, workers int, metrics Metrics, logger *zap.Logger) (*Files, error) {
	if dir == "" {
		return nil, fmt.Errorf("save dir is empty")
	}
	if metrics == nil {
		return nil, fmt.Errorf("metrics is nil")
	}
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Files{dir: dir, workers: workers, metrics: metrics, logger: logger}, nil
}

// Path returns the file a record at position is written to.
func (f *Files) Path(position uint64) string {
	return filepath.Join(f.dir, strconv.FormatUint(position, 10)+fileSuffix)
}

// Put writes records concurrently. Of several records sharing a position the
// last one wins.
func (f *Files) Put(ctx context.Context, records ...model.BlockRecord) (err error) {
	started := time.Now()
	defer func() {
		f.metrics.Observe("put", err, started)
	}()

	if len(records) == 0 {
		return nil
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return fmt.Errorf("create save dir %s: %w", f.dir, err)
	}

	if err := workerpool.Process(ctx, f.workers, lastByPosition(records), f.write); err != nil {
		return fmt.Errorf("save %d blocks: %w", len(records), err)
	}
	return nil
}

func (f *Files) write(_ context.Context, record model.BlockRecord) error {
	data, err := marshalPayload(prettyJSON, record.Payload)
	if err != nil {
		return fmt.Errorf("save block %d: %w", record.Position, err)
	}

	tmp, err := os.CreateTemp(f.dir, "."+strconv.FormatUint(record.Position, 10)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("save block %d: %w", record.Position, err)
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("save block %d: %w", record.Position, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save block %d: %w", record.Position, err)
	}
	if err := os.Rename(tmp.Name(), f.Path(record.Position)); err != nil {
		return fmt.Errorf("save block %d: %w", record.Position, err)
	}
	f.logger.Debug("block saved", zap.Uint64("position", record.Position))
	return nil
}

// Rollback deletes every saved block at or above from.
func (f *Files) Rollback(_ context.Context, from uint64) (err error) {
	started := time.Now()
	defer func() {
		f.metrics.Observe("rollback", err, started)
	}()

	entries, err := os.ReadDir(f.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("list save dir %s: %w", f.dir, err)
	}

	removed := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		position, parseErr := strconv.ParseUint(strings.TrimSuffix(name, fileSuffix), 10, 64)
		if parseErr != nil || position < from {
			continue
		}
		if err := os.Remove(filepath.Join(f.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("remove block %d: %w", position, err)
		}
		removed++
	}
	f.logger.Info("blocks rolled back", zap.Uint64("from", from), zap.Int("removed", removed))
	return nil
}

func (f *Files) Close() error {
	return nil
}

// lastByPosition drops records overwritten later in the same call, keeping
// first-seen order of positions.
func lastByPosition(records []model.BlockRecord) []model.BlockRecord {
	index := make(map[uint64]int, len(records))
	out := make([]model.BlockRecord, 0, len(records))
	for _, record := range records {
		if i, ok := index[record.Position]; ok {
			out[i] = record
			continue
		}
		index[record.Position] = len(out)
		out = append(out, record)
	}
	return out
}
