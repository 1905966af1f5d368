package follower

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/chain"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	SyncClient interface {
		FollowTip(ctx context.Context, intersect []model.BlockRef) (chain.TipStream, error)
	}
	// Handler receives events in stream order. An error from HandleEvent
	// terminates the session.
	Handler interface {
		HandleEvent(ctx context.Context, event model.Event) error
		HandleDecodeError(ctx context.Context, err *model.DecodeError)
	}
	Metrics interface {
		ObserveEvent(kind string)
		ObserveDecodeError()
		ObserveDropped()
		SetTip(position uint64)
		SetState(state string)
	}
	ReconnectMetrics interface {
		ObserveReconnect(err error)
	}
)
