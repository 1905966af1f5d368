package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/chain"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/model"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/repository/clickhouse"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/repository/postgres"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/service/follower"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/service/history"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/service/resolver"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/chainsync/sink"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/logging"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/metrics"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/pkg/utxorpc"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/pkg/utxorpc/connectclient"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/pkg/utxorpc/grpcclient"
	"github.com/goodnatureofminers/blockinsight7000-chainsync/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// app carries what every command needs once flags are parsed.
type app struct {
	ctx    context.Context
	out    io.Writer
	opts   options
	logger *zap.Logger
}

func execute(ctx context.Context, args []string, out io.Writer) error {
	a := &app{ctx: ctx, out: out, logger: zap.NewNop()}

	parser := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "chainsync"
	parser.CommandHandler = a.handle

	commands := []struct {
		name, short, long string
		data              any
	}{
		{"fetch", "Fetch blocks by reference", "Fetch one or more blocks in a single request.", &fetchCommand{app: a}},
		{"dump", "Dump blocks from a reference", "Dump up to --num-blocks blocks starting at --ref in a single request.", &dumpCommand{app: a}},
		{"history", "Page through history", "Dump up to --num-blocks blocks starting at --ref, one page per request.", &historyCommand{app: a}},
		{"follow", "Follow the chain tip", "Follow the chain tip from the given intersect points.", &followCommand{app: a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return fmt.Errorf("register %s command: %w", c.name, err)
		}
	}

	_, err := parser.ParseArgs(args)
	return err
}

// handle resolves the configuration and runs cmd with a ready logger and
// an optional metrics server around it.
func (a *app) handle(cmd flags.Commander, args []string) error {
	if cmd == nil {
		return nil
	}
	if err := a.opts.resolve(); err != nil {
		return err
	}

	logger, closeLog, err := logging.New(logging.Config{
		Level:      a.opts.LogLevel,
		File:       a.opts.LogFile,
		MaxSizeMB:  a.opts.LogMaxSize,
		MaxBackups: a.opts.LogMaxBackups,
		MaxAgeDays: a.opts.LogMaxAge,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
	}()
	a.logger = logger
	logger.Info("Using configuration", a.opts.fields()...)

	ctx, cancel := context.WithCancel(a.ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()
	if a.opts.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			startMetricsServer(ctx, a.opts.MetricsAddr, logger)
		}()
	}

	return cmd.Execute(args)
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := transport.Serve(ctx, addr, mux, logger.Named("metrics")); err != nil {
		logger.Error("metrics server stopped", zap.Error(err))
	}
}

// syncClient dials the configured peer with the configured transport.
func (a *app) syncClient() (chain.SyncClient, error) {
	peer, err := utxorpc.ParsePeer(a.opts.Peer)
	if err != nil {
		return nil, err
	}

	var client chain.SyncClient
	switch a.opts.Transport {
	case "connect":
		client, err = connectclient.New(peer.BaseURL, connectclient.Protocol(a.opts.ConnectProtocol))
	default:
		client, err = grpcclient.New(peer.Host, a.logger.Named("grpc"))
	}
	if err != nil {
		return nil, err
	}

	observed := utxorpc.NewObservedClient(client, metrics.NewRPCClient(a.opts.Transport))
	return utxorpc.WithTimeout(observed, a.opts.RPCTimeout), nil
}

// recordSink returns the console printer unless save is set. Database sinks
// are buffered while following.
func (a *app) recordSink(save, follow bool) (sink.RecordSink, error) {
	if !save {
		return sink.NewPrinter(a.out), nil
	}

	var (
		rs  sink.RecordSink
		err error
	)
	switch a.opts.Sink {
	case "clickhouse":
		rs, err = clickhouse.NewRepository(a.opts.ClickhouseDSN, metrics.NewSink("clickhouse"))
	case "postgres":
		rs, err = postgres.NewRepository(a.ctx, a.opts.PostgresDSN, metrics.NewSink("postgres"))
	default:
		return sink.NewFiles(a.opts.SaveDir, a.opts.FileWorkers, metrics.NewSink("file"), a.logger.Named("files"))
	}
	if err != nil {
		return nil, fmt.Errorf("open %s sink: %w", a.opts.Sink, err)
	}
	if follow {
		rs = sink.NewBuffered(a.ctx, rs, a.logger.Named("buffered"), a.opts.FlushSize, a.opts.FlushInterval, a.opts.FlushRPS)
	}
	return rs, nil
}

func closeWith(err *error, c io.Closer, what string) {
	if cerr := c.Close(); cerr != nil {
		*err = errors.Join(*err, fmt.Errorf("close %s: %w", what, cerr))
	}
}

type fetchCommand struct {
	app  *app
	Refs []string `long:"ref" required:"true" description:"block reference <position>-<hex hash>, repeatable"`
	Save bool     `long:"save" description:"store blocks in the configured sink instead of printing them"`
}

func (c *fetchCommand) Execute(_ []string) (err error) {
	refs, err := model.ParseBlockRefs(c.Refs)
	if err != nil {
		return err
	}

	client, err := c.app.syncClient()
	if err != nil {
		return err
	}
	defer closeWith(&err, client, "sync client")

	res, err := resolver.New(client, metrics.NewResolver(), c.app.logger.Named("resolver"))
	if err != nil {
		return err
	}
	records, err := res.Fetch(c.app.ctx, refs)
	if err != nil {
		return err
	}

	return c.app.store(c.Save, records)
}

type dumpCommand struct {
	app       *app
	Ref       string `long:"ref" required:"true" description:"start reference <position>-<hex hash>"`
	NumBlocks uint32 `long:"num-blocks" default:"1" description:"maximum number of blocks"`
	Save      bool   `long:"save" description:"store blocks in the configured sink instead of printing them"`
}

func (c *dumpCommand) Execute(_ []string) (err error) {
	start, err := model.ParseBlockRef(c.Ref)
	if err != nil {
		return err
	}

	client, err := c.app.syncClient()
	if err != nil {
		return err
	}
	defer closeWith(&err, client, "sync client")

	res, err := resolver.New(client, metrics.NewResolver(), c.app.logger.Named("resolver"))
	if err != nil {
		return err
	}
	records, err := res.Dump(c.app.ctx, start, c.NumBlocks)
	if err != nil {
		return err
	}

	return c.app.store(c.Save, records)
}

func (a *app) store(save bool, records []model.BlockRecord) (err error) {
	rs, err := a.recordSink(save, false)
	if err != nil {
		return err
	}
	defer closeWith(&err, rs, "record sink")

	if err := rs.Put(a.ctx, records...); err != nil {
		return fmt.Errorf("store %d records: %w", len(records), err)
	}
	a.logger.Info("records stored", zap.Int("records", len(records)), zap.Bool("saved", save))
	return nil
}

type historyCommand struct {
	app       *app
	Ref       string `long:"ref" required:"true" description:"start reference <position>-<hex hash>"`
	NumBlocks uint64 `long:"num-blocks" default:"100" description:"maximum number of blocks"`
	PageSize  uint32 `long:"page-size" default:"100" description:"blocks per request"`
	Save      bool   `long:"save" description:"store blocks in the configured sink instead of printing them"`
}

func (c *historyCommand) Execute(_ []string) (err error) {
	start, err := model.ParseBlockRef(c.Ref)
	if err != nil {
		return err
	}

	client, err := c.app.syncClient()
	if err != nil {
		return err
	}
	defer closeWith(&err, client, "sync client")

	rs, err := c.app.recordSink(c.Save, false)
	if err != nil {
		return err
	}
	defer closeWith(&err, rs, "record sink")

	cursor, err := history.NewCursor(client, rs, metrics.NewHistory(), c.app.logger.Named("history"), c.PageSize)
	if err != nil {
		return err
	}
	result, err := cursor.Run(c.app.ctx, start, c.NumBlocks)
	if err != nil {
		return err
	}

	fields := []zap.Field{zap.Uint64("records", result.Records), zap.Int("pages", result.Pages)}
	if result.Next != nil {
		fields = append(fields, zap.Stringer("next", result.Next))
	}
	c.app.logger.Info("history done", fields...)
	return nil
}

type followCommand struct {
	app          *app
	Refs         []string `long:"ref" description:"intersect reference <position>-<hex hash>, repeatable; empty follows from the server tip"`
	Reconnect    bool     `long:"reconnect" description:"reconnect with backoff after transport failures"`
	MaxFailures  int      `long:"max-failures" default:"0" description:"give up after this many empty sessions in a row, 0 retries forever"`
	UndoPolicy   string   `long:"undo-policy" default:"adopt" choice:"adopt" choice:"revert" description:"tip after an undo: the undone block (adopt) or the block before it (revert)"`
	HistoryLimit int      `long:"history-limit" default:"2160" description:"applied references kept for the revert undo policy"`
	StatusAddr   string   `long:"status-addr" env:"CHAINSYNC_STATUS_ADDR" description:"address for the status and block lookup server, empty disables"`
	Save         bool     `long:"save" description:"store blocks in the configured sink instead of printing them"`
}

type followRunner interface {
	transport.FollowStatus
	Run(ctx context.Context, intersect []model.BlockRef) error
}

func (c *followCommand) Execute(_ []string) (err error) {
	policy, ok := follower.ParseUndoPolicy(c.UndoPolicy)
	if !ok {
		return fmt.Errorf("unsupported undo policy %q", c.UndoPolicy)
	}
	intersect, err := model.ParseBlockRefs(c.Refs)
	if err != nil {
		return err
	}

	logger := c.app.logger
	client, err := c.app.syncClient()
	if err != nil {
		return err
	}
	defer closeWith(&err, client, "sync client")

	var handler follower.Handler = sink.NewEventPrinter(c.app.out)
	if c.Save {
		rs, sinkErr := c.app.recordSink(true, true)
		if sinkErr != nil {
			return sinkErr
		}
		defer closeWith(&err, rs, "record sink")
		writer, writerErr := sink.NewEventWriter(rs, logger.Named("events"))
		if writerErr != nil {
			return writerErr
		}
		handler = writer
	}

	runner, err := c.runner(client, handler, policy)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(c.app.ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()
	if c.StatusAddr != "" {
		res, err := resolver.New(client, metrics.NewResolver(), logger.Named("resolver"))
		if err != nil {
			return err
		}
		status, err := transport.NewStatusHandler(runner, res, logger.Named("status"))
		if err != nil {
			return err
		}
		mux, err := transport.NewMux(status)
		if err != nil {
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := transport.Serve(ctx, c.StatusAddr, mux, logger.Named("status")); err != nil {
				logger.Error("status server stopped", zap.Error(err))
			}
		}()
	}

	logger.Info("following tip",
		zap.Int("intersect", len(intersect)),
		zap.Stringer("undo_policy", policy),
		zap.Bool("reconnect", c.Reconnect),
	)
	if err := runner.Run(ctx, intersect); err != nil {
		return err
	}
	if tip, ok := runner.Tip(); ok {
		logger.Info("follow stopped", zap.Stringer("tip", tip), zap.String("state", string(runner.State())))
	}
	return nil
}

func (c *followCommand) runner(client chain.SyncClient, handler follower.Handler, policy follower.UndoPolicy) (followRunner, error) {
	m := metrics.NewFollower()
	opts := []follower.Option{
		follower.WithUndoPolicy(policy),
		follower.WithHistoryLimit(c.HistoryLimit),
	}
	if c.Reconnect {
		return follower.NewReconnector(client, handler, m, m, c.app.logger.Named("reconnector"), c.MaxFailures, opts...)
	}
	return follower.New(client, handler, m, c.app.logger.Named("follower"), opts...)
}
