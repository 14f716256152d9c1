// Package main audits the block files for double spends across forks.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/publish"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/repository/clickhouse"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/scanner"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/script"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/service"
	"github.com/goodnatureofminers/blockfile-indexer/internal/metrics"
	"github.com/goodnatureofminers/blockfile-indexer/internal/pkg/blockfile"
	"github.com/goodnatureofminers/blockfile-indexer/internal/transport"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type config struct {
	BlocksDir     string        `long:"blocks-dir" env:"REORG_AUDIT_BLOCKS_DIR" description:"directory holding blk*.dat files" required:"true"`
	Network       model.Network `long:"network" env:"REORG_AUDIT_NETWORK" description:"network name (mainnet, testnet, regtest, signet)" default:"mainnet"`
	Output        string        `long:"output" env:"REORG_AUDIT_OUTPUT" description:"file the events are written to, - for stdout" default:"-"`
	Format        string        `long:"format" env:"REORG_AUDIT_FORMAT" description:"output format" choice:"json" choice:"table" default:"json"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"REORG_AUDIT_CLICKHOUSE_DSN" description:"persist events to ClickHouse when set"`
	RedisURL      string        `long:"redis-url" env:"REORG_AUDIT_REDIS_URL" description:"publish events to Redis when set"`
	RedisChannel  string        `long:"redis-channel" env:"REORG_AUDIT_REDIS_CHANNEL" description:"Redis channel events are published on" default:"reorg-events"`
	ServeAddr     string        `long:"serve-addr" env:"REORG_AUDIT_SERVE_ADDR" description:"serve the events and metrics over HTTP after the audit when set"`
	LogJSON       bool          `long:"log-json" env:"REORG_AUDIT_LOG_JSON" description:"log in JSON"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic("can't load .env: " + err.Error())
	}
	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var (
		logger *zap.Logger
		err    error
	)
	if cfg.LogJSON {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("reorg audit failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(zap.String("network", string(cfg.Network)))

	files, err := scanner.New(cfg.BlocksDir, cfg.Network, logger.Named("scanner"))
	if err != nil {
		return fmt.Errorf("init scanner: %w", err)
	}
	source := blockfile.NewObservedSource(files, metrics.NewBlockSource(cfg.Network))

	classifier, err := script.NewClassifier(cfg.Network, logger.Named("classifier"))
	if err != nil {
		return fmt.Errorf("init classifier: %w", err)
	}

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	var sinks []service.EventSink
	if cfg.Format == "table" {
		sinks = append(sinks, service.NewTableSink(out))
	} else {
		sinks = append(sinks, service.NewJSONSink(out))
	}

	if cfg.ClickhouseDSN != "" {
		repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init repository: %w", err)
		}
		defer func() {
			_ = repo.Close()
		}()
		sinks = append(sinks, service.NewRepositorySink(repo, logger.Named("repositorySink")))
	}

	if cfg.RedisURL != "" {
		publisher, err := publish.NewRedisPublisher(cfg.RedisURL, cfg.RedisChannel, logger.Named("publisher"))
		if err != nil {
			return fmt.Errorf("init publisher: %w", err)
		}
		defer func() {
			_ = publisher.Close()
		}()
		sinks = append(sinks, service.NewPublisherSink(publisher))
	}

	memory := service.NewMemorySink()
	sinks = append(sinks, memory)

	audit, err := service.NewAuditRun(source, classifier, metrics.NewReorgAudit(cfg.Network), cfg.Network, logger.Named("audit"), sinks...)
	if err != nil {
		return err
	}
	result, err := audit.Run(ctx)
	if err != nil {
		return err
	}
	logger.Info("audit written",
		zap.Int("events", len(result.Events)),
		zap.Int("fork_heights", result.Report.ForkHeights),
		zap.String("output", cfg.Output))

	if cfg.ServeAddr == "" {
		return nil
	}
	return serve(ctx, cfg.ServeAddr, memory, logger)
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}

func serve(ctx context.Context, addr string, events transport.EventsSource, logger *zap.Logger) error {
	gw, err := transport.NewGatewayMux(nil, events)
	if err != nil {
		return err
	}
	srv := transport.NewHTTPServer(addr, transport.NewHTTPHandler(gw))
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("serving events", zap.String("addr", addr), zap.String("path", transport.EventsPath))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
