// Package grpcclient talks to a UTxO RPC sync service over plain gRPC.
package grpcclient

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/chain"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	grpcMiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpcPrometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	syncpb "github.com/utxorpc/go-codegen/utxorpc/v1alpha/sync"
	"github.com/utxorpc/go-codegen/utxorpc/v1alpha/sync/syncconnect"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

var followTipDesc = &grpc.StreamDesc{
	StreamName:    "FollowTip",
	ServerStreams: true,
}

// Invoker is the subset of *grpc.ClientConn used by Client.
type Invoker interface {
	Invoke(ctx context.Context, method string, args, reply any, opts ...grpc.CallOption) error
	NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error)
}

// Client implements chain.SyncClient with raw gRPC calls.
type Client struct {
	conn   Invoker
	closer io.Closer
}

// New dials target ("host:port") without transport security.
func New(target string, logger *zap.Logger) (*Client, error) {
	if target == "" {
		return nil, errors.New("grpc target is required")
	}
	grpcPrometheus.EnableClientHandlingTimeHistogram()

	conn, err := grpc.NewClient(target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(grpcMiddleware.ChainUnaryClient(
			grpcPrometheus.UnaryClientInterceptor,
			grpcZap.UnaryClientInterceptor(logger),
		)),
		grpc.WithStreamInterceptor(grpcMiddleware.ChainStreamClient(
			grpcPrometheus.StreamClientInterceptor,
			grpcZap.StreamClientInterceptor(logger),
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: create grpc client for %s: %w", model.ErrConnect, target, err)
	}

	return &Client{conn: conn, closer: conn}, nil
}

// NewWithConn wraps an existing connection; the caller keeps ownership.
func NewWithConn(conn Invoker) *Client {
	return &Client{conn: conn}
}

func (c *Client) FetchBlock(ctx context.Context, refs []model.BlockRef) ([]*syncpb.AnyChainBlock, error) {
	req := &syncpb.FetchBlockRequest{Ref: chain.ToProtoRefs(refs)}
	resp := new(syncpb.FetchBlockResponse)
	if err := c.conn.Invoke(ctx, syncconnect.SyncServiceFetchBlockProcedure, req, resp); err != nil {
		return nil, classify("fetch block", err)
	}
	return resp.GetBlock(), nil
}

func (c *Client) DumpHistory(ctx context.Context, start *model.BlockRef, maxItems uint32) (*chain.HistoryPage, error) {
	req := &syncpb.DumpHistoryRequest{MaxItems: maxItems}
	if start != nil {
		req.StartToken = chain.ToProtoRef(*start)
	}
	resp := new(syncpb.DumpHistoryResponse)
	if err := c.conn.Invoke(ctx, syncconnect.SyncServiceDumpHistoryProcedure, req, resp); err != nil {
		return nil, classify("dump history", err)
	}
	return &chain.HistoryPage{
		Blocks:    resp.GetBlock(),
		NextToken: chain.FromProtoRef(resp.GetNextToken()),
	}, nil
}

func (c *Client) FollowTip(ctx context.Context, intersect []model.BlockRef) (chain.TipStream, error) {
	ctx, cancel := context.WithCancel(ctx)

	stream, err := c.conn.NewStream(ctx, followTipDesc, syncconnect.SyncServiceFollowTipProcedure)
	if err != nil {
		cancel()
		return nil, classify("open follow tip", err)
	}

	req := &syncpb.FollowTipRequest{Intersect: chain.ToProtoRefs(intersect)}
	// io.EOF from SendMsg means the server already answered; Recv reports the status.
	if err := stream.SendMsg(req); err != nil && !errors.Is(err, io.EOF) {
		cancel()
		return nil, classify("send follow tip request", err)
	}
	if err := stream.CloseSend(); err != nil {
		cancel()
		return nil, classify("close follow tip send", err)
	}

	return &tipStream{stream: stream, cancel: cancel}, nil
}

func (c *Client) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

type tipStream struct {
	stream grpc.ClientStream
	cancel context.CancelFunc
}

func (s *tipStream) Recv() (*syncpb.FollowTipResponse, error) {
	resp := new(syncpb.FollowTipResponse)
	if err := s.stream.RecvMsg(resp); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("%w: receive follow tip: %w", model.ErrStream, err)
	}
	return resp, nil
}

func (s *tipStream) Close() error {
	s.cancel()
	return nil
}

func classify(op string, err error) error {
	if status.Code(err) == codes.Unavailable {
		return fmt.Errorf("%w: %s: %w", model.ErrConnect, op, err)
	}
	return fmt.Errorf("%w: %s: %w", model.ErrRPC, op, err)
}
