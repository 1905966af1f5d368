package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"go.uber.org/zap"
)

const (
	defaultPeer      = "localhost:50051"
	defaultTransport = "grpc"
	defaultSaveDir   = "blocks"
	defaultSink      = "file"
)

// options are shared by every command. Fields that may also come from the
// config file carry no go-flags default so an unset flag can be detected.
type options struct {
	Config          string        `long:"config" env:"CHAINSYNC_CONFIG" description:"path to a TOML config file"`
	Peer            string        `long:"peer" env:"CHAINSYNC_PEER" description:"sync service address, host:port or URL (default: localhost:50051)"`
	Transport       string        `long:"transport" env:"CHAINSYNC_TRANSPORT" description:"client transport: grpc or connect (default: grpc)"`
	ConnectProtocol string        `long:"connect-protocol" env:"CHAINSYNC_CONNECT_PROTOCOL" description:"wire protocol of the connect transport" choice:"grpc" choice:"grpcweb" choice:"connect" default:"grpc"`
	RPCTimeout      time.Duration `long:"rpc-timeout" env:"CHAINSYNC_RPC_TIMEOUT" description:"timeout of a single unary call, 0 disables"`
	SaveDir         string        `long:"save-dir" env:"CHAINSYNC_SAVE_DIR" description:"directory of saved blocks (default: blocks)"`
	Sink            string        `long:"sink" env:"CHAINSYNC_SINK" description:"destination of saved blocks: file, clickhouse or postgres (default: file)"`
	ClickhouseDSN   string        `long:"clickhouse-dsn" env:"CHAINSYNC_CLICKHOUSE_DSN" description:"ClickHouse DSN"`
	PostgresDSN     string        `long:"postgres-dsn" env:"CHAINSYNC_POSTGRES_DSN" description:"PostgreSQL DSN"`
	FileWorkers     int           `long:"file-workers" env:"CHAINSYNC_FILE_WORKERS" description:"concurrent file writes" default:"4"`
	FlushSize       int           `long:"flush-size" env:"CHAINSYNC_FLUSH_SIZE" description:"blocks per database batch while following" default:"100"`
	FlushInterval   time.Duration `long:"flush-interval" env:"CHAINSYNC_FLUSH_INTERVAL" description:"maximum delay of a database batch while following" default:"2s"`
	FlushRPS        int           `long:"flush-rps" env:"CHAINSYNC_FLUSH_RPS" description:"database batches per second, 0 is unlimited" default:"10"`
	LogLevel        string        `long:"log-level" env:"CHAINSYNC_LOG_LEVEL" description:"log level" default:"info"`
	LogFile         string        `long:"log-file" env:"CHAINSYNC_LOG_FILE" description:"also write JSON logs to this rotating file"`
	LogMaxSize      int           `long:"log-max-size" env:"CHAINSYNC_LOG_MAX_SIZE" description:"log file size in megabytes before rotation" default:"100"`
	LogMaxBackups   int           `long:"log-max-backups" env:"CHAINSYNC_LOG_MAX_BACKUPS" description:"rotated log files to keep" default:"3"`
	LogMaxAge       int           `long:"log-max-age" env:"CHAINSYNC_LOG_MAX_AGE" description:"days to keep rotated log files" default:"28"`
	MetricsAddr     string        `long:"metrics-addr" env:"CHAINSYNC_METRICS_ADDR" description:"address for metrics server, empty disables"`
}

// fileConfig is the TOML config file layout.
type fileConfig struct {
	Peer          string `toml:"peer"`
	SaveDir       string `toml:"save_dir"`
	Transport     string `toml:"transport"`
	Sink          string `toml:"sink"`
	ClickhouseDSN string `toml:"clickhouse_dsn"`
	PostgresDSN   string `toml:"postgres_dsn"`
}

func loadFileConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fileConfig{}, fmt.Errorf("read config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// resolve fills unset options from the config file, then from defaults,
// and validates the result.
func (o *options) resolve() error {
	if o.Config != "" {
		file, err := loadFileConfig(o.Config)
		if err != nil {
			return err
		}
		fillString(&o.Peer, file.Peer)
		fillString(&o.SaveDir, file.SaveDir)
		fillString(&o.Transport, file.Transport)
		fillString(&o.Sink, file.Sink)
		fillString(&o.ClickhouseDSN, file.ClickhouseDSN)
		fillString(&o.PostgresDSN, file.PostgresDSN)
	}

	fillString(&o.Peer, defaultPeer)
	fillString(&o.SaveDir, defaultSaveDir)
	fillString(&o.Transport, defaultTransport)
	fillString(&o.Sink, defaultSink)

	switch o.Transport {
	case "grpc", "connect":
	default:
		return fmt.Errorf("unsupported transport %q, use grpc or connect", o.Transport)
	}
	switch o.Sink {
	case "file":
	case "clickhouse":
		if o.ClickhouseDSN == "" {
			return errors.New("clickhouse sink needs --clickhouse-dsn")
		}
	case "postgres":
		if o.PostgresDSN == "" {
			return errors.New("postgres sink needs --postgres-dsn")
		}
	default:
		return fmt.Errorf("unsupported sink %q, use file, clickhouse or postgres", o.Sink)
	}
	if o.RPCTimeout < 0 {
		return errors.New("rpc timeout must not be negative")
	}
	return nil
}

// fields describes the effective configuration without credentials.
func (o *options) fields() []zap.Field {
	return []zap.Field{
		zap.String("peer", o.Peer),
		zap.String("transport", o.Transport),
		zap.String("connect_protocol", o.ConnectProtocol),
		zap.Duration("rpc_timeout", o.RPCTimeout),
		zap.String("save_dir", o.SaveDir),
		zap.String("sink", o.Sink),
		zap.Bool("clickhouse_dsn_set", o.ClickhouseDSN != ""),
		zap.Bool("postgres_dsn_set", o.PostgresDSN != ""),
		zap.String("metrics_addr", o.MetricsAddr),
	}
}

func fillString(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
