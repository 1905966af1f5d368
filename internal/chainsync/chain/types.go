// Package chain defines the sync transport contract used by the chain sync services.
package chain

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	syncpb "github.com/utxorpc/go-codegen/utxorpc/v1alpha/sync"
)

// SyncClient is a connection to a UTxO RPC sync service.
type SyncClient interface {
	FetchBlock(ctx context.Context, refs []model.BlockRef) ([]*syncpb.AnyChainBlock, error)
	DumpHistory(ctx context.Context, start *model.BlockRef, maxItems uint32) (*HistoryPage, error)
	FollowTip(ctx context.Context, intersect []model.BlockRef) (TipStream, error)
	Close() error
}

// TipStream yields follow actions in arrival order.
// Recv returns io.EOF once the server ends the stream.
type TipStream interface {
	Recv() (*syncpb.FollowTipResponse, error)
	Close() error
}

// HistoryPage is one DumpHistory response.
type HistoryPage struct {
	Blocks    []*syncpb.AnyChainBlock
	NextToken *model.BlockRef
}

// ToProtoRef converts a reference into its wire form.
func ToProtoRef(ref model.BlockRef) *syncpb.BlockRef {
	return &syncpb.BlockRef{
		Slot: ref.Position(),
		Hash: ref.Hash(),
	}
}

// ToProtoRefs converts references keeping their order.
func ToProtoRefs(refs []model.BlockRef) []*syncpb.BlockRef {
	out := make([]*syncpb.BlockRef, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ToProtoRef(ref))
	}
	return out
}

// FromProtoRef converts a wire reference; nil stays nil.
func FromProtoRef(ref *syncpb.BlockRef) *model.BlockRef {
	if ref == nil {
		return nil
	}
	out := model.NewBlockRef(ref.GetSlot(), ref.GetHash())
	return &out
}
