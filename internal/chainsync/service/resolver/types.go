package resolver

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/chain"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	syncpb "github.com/utxorpc/go-codegen/utxorpc/v1alpha/sync"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SyncClient interface {
		FetchBlock(ctx context.Context, refs []model.BlockRef) ([]*syncpb.AnyChainBlock, error)
		DumpHistory(ctx context.Context, start *model.BlockRef, maxItems uint32) (*chain.HistoryPage, error)
	}
	Metrics interface {
		Observe(operation string, err error, records, skipped int, started time.Time)
	}
)
