// Package sink delivers block records and follow events to their destination.
package sink

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// RecordSink stores records keyed by position. Put overwrites existing
	// positions; Rollback removes every position >= from.
	RecordSink interface {
		Put(ctx context.Context, records ...model.BlockRecord) error
		Rollback(ctx context.Context, from uint64) error
		Close() error
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
