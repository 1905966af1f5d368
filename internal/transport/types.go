package transport

import (
	"context"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/service/follower"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	FollowStatus interface {
		State() follower.State
		Tip() (model.BlockRef, bool)
	}
	BlockFetcher interface {
		Fetch(ctx context.Context, refs []model.BlockRef) ([]model.BlockRecord, error)
	}
)
