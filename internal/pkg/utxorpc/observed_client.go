// Package utxorpc holds helpers shared by the UTxO RPC sync transports.
package utxorpc

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/chain"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	syncpb "github.com/utxorpc/go-codegen/utxorpc/v1alpha/sync"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	RPCMetrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// ObservedClient records call metrics around a sync client.
type ObservedClient struct {
	client     chain.SyncClient
	rpcMetrics RPCMetrics
}

func NewObservedClient(client chain.SyncClient, rpcMetrics RPCMetrics) *ObservedClient {
	return &ObservedClient{
		client:     client,
		rpcMetrics: rpcMetrics,
	}
}

func (r *ObservedClient) FetchBlock(ctx context.Context, refs []model.BlockRef) (blocks []*syncpb.AnyChainBlock, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("fetch_block", err, started)
	}()
	return r.client.FetchBlock(ctx, refs)
}

func (r *ObservedClient) DumpHistory(ctx context.Context, start *model.BlockRef, maxItems uint32) (page *chain.HistoryPage, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("dump_history", err, started)
	}()
	return r.client.DumpHistory(ctx, start, maxItems)
}

func (r *ObservedClient) FollowTip(ctx context.Context, intersect []model.BlockRef) (stream chain.TipStream, err error) {
	started := time.Now()
	defer func() {
		r.rpcMetrics.Observe("follow_tip", err, started)
	}()
	stream, err = r.client.FollowTip(ctx, intersect)
	if err != nil {
		return nil, err
	}
	return &observedStream{stream: stream, rpcMetrics: r.rpcMetrics}, nil
}

func (r *ObservedClient) Close() error {
	return r.client.Close()
}

type observedStream struct {
	stream     chain.TipStream
	rpcMetrics RPCMetrics
}

func (s *observedStream) Recv() (resp *syncpb.FollowTipResponse, err error) {
	started := time.Now()
	defer func() {
		if errors.Is(err, io.EOF) {
			s.rpcMetrics.Observe("follow_tip_recv", nil, started)
			return
		}
		s.rpcMetrics.Observe("follow_tip_recv", err, started)
	}()
	return s.stream.Recv()
}

func (s *observedStream) Close() error {
	return s.stream.Close()
}
