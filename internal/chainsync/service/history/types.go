package history

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/chain"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SyncClient interface {
		DumpHistory(ctx context.Context, start *model.BlockRef, maxItems uint32) (*chain.HistoryPage, error)
	}
	RecordSink interface {
		Put(ctx context.Context, records ...model.BlockRecord) error
	}
	Metrics interface {
		ObservePage(err error, records int, started time.Time)
	}
)
