package utxorpc

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/chain"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	syncpb "github.com/utxorpc/go-codegen/utxorpc/v1alpha/sync"
)

// TimeoutClient bounds each unary call. FollowTip is not bounded.
type TimeoutClient struct {
	chain.SyncClient
	timeout time.Duration
}

// WithTimeout returns client unchanged when timeout is not positive.
func WithTimeout(client chain.SyncClient, timeout time.Duration) chain.SyncClient {
	if timeout <= 0 {
		return client
	}
	return &TimeoutClient{SyncClient: client, timeout: timeout}
}

func (c *TimeoutClient) FetchBlock(ctx context.Context, refs []model.BlockRef) ([]*syncpb.AnyChainBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.SyncClient.FetchBlock(ctx, refs)
}

func (c *TimeoutClient) DumpHistory(ctx context.Context, start *model.BlockRef, maxItems uint32) (*chain.HistoryPage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.SyncClient.DumpHistory(ctx, start, maxItems)
}
