// Package connectclient talks to a UTxO RPC sync service through connect-go.
package connectclient

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"connectrpc.com/connect"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/chain"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	syncpb "github.com/utxorpc/go-codegen/utxorpc/v1alpha/sync"
	"github.com/utxorpc/go-codegen/utxorpc/v1alpha/sync/syncconnect"
	"golang.org/x/net/http2"
)

// Protocol selects the wire protocol spoken by connect-go.
type Protocol string

const (
	ProtocolGRPC    Protocol = "grpc"
	ProtocolGRPCWeb Protocol = "grpcweb"
	ProtocolConnect Protocol = "connect"
)

// Client implements chain.SyncClient on top of the generated connect client.
type Client struct {
	client syncconnect.SyncServiceClient
	http   *http.Client
}

// New builds a client for baseURL ("http://host:port" or "https://host:port").
func New(baseURL string, protocol Protocol) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("connect base url is required")
	}

	var opts []connect.ClientOption
	switch protocol {
	case ProtocolGRPC, "":
		opts = append(opts, connect.WithGRPC())
	case ProtocolGRPCWeb:
		opts = append(opts, connect.WithGRPCWeb())
	case ProtocolConnect:
	default:
		return nil, fmt.Errorf("unsupported connect protocol %q", protocol)
	}

	httpClient := newHTTPClient(baseURL)
	return &Client{
		client: syncconnect.NewSyncServiceClient(httpClient, baseURL, opts...),
		http:   httpClient,
	}, nil
}

// NewWithClient wraps an existing generated client.
func NewWithClient(client syncconnect.SyncServiceClient) *Client {
	return &Client{client: client}
}

func newHTTPClient(baseURL string) *http.Client {
	if strings.HasPrefix(baseURL, "https://") {
		return &http.Client{Transport: &http2.Transport{}}
	}
	// h2c: HTTP/2 without TLS, required by gRPC over plain text.
	return &http.Client{
		Transport: &http2.Transport{
			AllowHTTP: true,
			DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
				var d net.Dialer
				return d.DialContext(ctx, network, addr)
			},
		},
	}
}

func (c *Client) FetchBlock(ctx context.Context, refs []model.BlockRef) ([]*syncpb.AnyChainBlock, error) {
	resp, err := c.client.FetchBlock(ctx, connect.NewRequest(&syncpb.FetchBlockRequest{
		Ref: chain.ToProtoRefs(refs),
	}))
	if err != nil {
		return nil, classify("fetch block", err)
	}
	return resp.Msg.GetBlock(), nil
}

func (c *Client) DumpHistory(ctx context.Context, start *model.BlockRef, maxItems uint32) (*chain.HistoryPage, error) {
	req := &syncpb.DumpHistoryRequest{MaxItems: maxItems}
	if start != nil {
		req.StartToken = chain.ToProtoRef(*start)
	}
	resp, err := c.client.DumpHistory(ctx, connect.NewRequest(req))
	if err != nil {
		return nil, classify("dump history", err)
	}
	return &chain.HistoryPage{
		Blocks:    resp.Msg.GetBlock(),
		NextToken: chain.FromProtoRef(resp.Msg.GetNextToken()),
	}, nil
}

func (c *Client) FollowTip(ctx context.Context, intersect []model.BlockRef) (chain.TipStream, error) {
	stream, err := c.client.FollowTip(ctx, connect.NewRequest(&syncpb.FollowTipRequest{
		Intersect: chain.ToProtoRefs(intersect),
	}))
	if err != nil {
		return nil, classify("open follow tip", err)
	}
	return &tipStream{stream: stream}, nil
}

func (c *Client) Close() error {
	if c.http != nil {
		c.http.CloseIdleConnections()
	}
	return nil
}

type tipStream struct {
	stream *connect.ServerStreamForClient[syncpb.FollowTipResponse]
}

func (s *tipStream) Recv() (*syncpb.FollowTipResponse, error) {
	if s.stream.Receive() {
		return s.stream.Msg(), nil
	}
	if err := s.stream.Err(); err != nil {
		return nil, fmt.Errorf("%w: receive follow tip: %w", model.ErrStream, err)
	}
	return nil, io.EOF
}

func (s *tipStream) Close() error {
	return s.stream.Close()
}

func classify(op string, err error) error {
	if connect.CodeOf(err) == connect.CodeUnavailable {
		return fmt.Errorf("%w: %s: %w", model.ErrConnect, op, err)
	}
	return fmt.Errorf("%w: %s: %w", model.ErrRPC, op, err)
}
