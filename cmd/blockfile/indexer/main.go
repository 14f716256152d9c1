// Package main runs the block file indexer daemon.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/chain"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/repository/clickhouse"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/scanner"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/script"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/service"
	"github.com/goodnatureofminers/blockfile-indexer/internal/metrics"
	"github.com/goodnatureofminers/blockfile-indexer/internal/pkg/blockfile"
	"github.com/goodnatureofminers/blockfile-indexer/internal/transport"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/grpc/health"
)

type config struct {
	BlocksDir     string        `long:"blocks-dir" env:"BLOCKFILE_INDEXER_BLOCKS_DIR" description:"directory holding blk*.dat files" required:"true"`
	Network       model.Network `long:"network" env:"BLOCKFILE_INDEXER_NETWORK" description:"network name (mainnet, testnet, regtest, signet)" default:"mainnet"`
	ClickhouseDSN string        `long:"clickhouse-dsn" env:"BLOCKFILE_INDEXER_CLICKHOUSE_DSN" description:"ClickHouse DSN" required:"true"`
	PollInterval  time.Duration `long:"poll-interval" env:"BLOCKFILE_INDEXER_POLL_INTERVAL" description:"how often block files are checked for changes" default:"1s"`
	GRPCAddr      string        `long:"grpc-addr" env:"BLOCKFILE_INDEXER_GRPC_ADDR" description:"gRPC health server address" default:":8000"`
	RestAddr      string        `long:"rest-addr" env:"BLOCKFILE_INDEXER_REST_ADDR" description:"REST gateway and metrics address" default:":8001"`
	LogJSON       bool          `long:"log-json" env:"BLOCKFILE_INDEXER_LOG_JSON" description:"log in JSON"`
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

	logger, err := newLogger(cfg.LogJSON)
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger)

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("block file indexer failed", zap.Error(err))
	}
}

func newLogger(json bool) (*zap.Logger, error) {
	if json {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	logger = logger.With(zap.String("network", string(cfg.Network)))

	healthServer, err := startTransport(ctx, cfg, logger)
	if err != nil {
		return err
	}

	repo, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("close repository", zap.Error(err))
		}
	}()

	files, err := scanner.New(cfg.BlocksDir, cfg.Network, logger.Named("scanner"))
	if err != nil {
		return fmt.Errorf("init scanner: %w", err)
	}
	source := blockfile.NewObservedSource(files, metrics.NewBlockSource(cfg.Network))

	classifier, err := script.NewClassifier(cfg.Network, logger.Named("classifier"))
	if err != nil {
		return fmt.Errorf("init classifier: %w", err)
	}

	indexRun, err := service.NewIndexRun(source, repo, classifier, metrics.NewIndexRun(cfg.Network), cfg.Network, logger.Named("indexRun"))
	if err != nil {
		return err
	}

	watcher := service.NewWatcher(source, indexRun, cfg.PollInterval, func(result chain.WalkResult) {
		transport.MarkServing(healthServer)
		logger.Info("index run finished",
			zap.Uint64("heights", result.Heights),
			zap.Uint64("indexed", result.Indexed))
	}, logger.Named("watcher"))

	logger.Info("watching block files", zap.String("dir", cfg.BlocksDir), zap.Duration("interval", cfg.PollInterval))
	return watcher.Run(ctx)
}

func startTransport(ctx context.Context, cfg config, logger *zap.Logger) (*health.Server, error) {
	grpcServer, healthServer := transport.NewGRPCServer(logger.Named("grpc"))
	socket, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
	}
	go func() {
		logger.Info("starting gRPC server", zap.String("addr", cfg.GRPCAddr))
		if serveErr := grpcServer.Serve(socket); serveErr != nil {
			logger.Error("gRPC server failed", zap.Error(serveErr))
		}
	}()

	healthClient, conn, err := transport.DialHealth(cfg.GRPCAddr)
	if err != nil {
		return nil, err
	}
	gw, err := transport.NewGatewayMux(healthClient, nil)
	if err != nil {
		return nil, err
	}
	srv := transport.NewHTTPServer(cfg.RestAddr, transport.NewHTTPHandler(gw))
	go func() {
		logger.Info("starting HTTP server", zap.String("addr", cfg.RestAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		logger.Info("shutting down servers")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown http server", zap.Error(err))
		}
		_ = conn.Close()
		grpcServer.GracefulStop()
	}()
	return healthServer, nil
}
