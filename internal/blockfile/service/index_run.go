package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/chain"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"go.uber.org/zap"
)

// IndexRun scans all block files into a fresh graph and walks it, storing every
// block of the selected chain the repository does not hold yet.
type IndexRun struct {
	source  BlockSource
	repo    IndexRepository
	store   chain.IndexStore
	metrics IndexRunMetrics
	network model.Network
	logger  *zap.Logger
}

// NewIndexRun builds an IndexRun with dependencies.
func NewIndexRun(
	source BlockSource,
	repo IndexRepository,
	classifier ScriptClassifier,
	metrics IndexRunMetrics,
	network model.Network,
	logger *zap.Logger,
) (*IndexRun, error) {
	if metrics == nil {
		return nil, errors.New("index run metrics is required")
	}
	return &IndexRun{
		source:  source,
		repo:    repo,
		metrics: metrics,
		network: network,
		logger:  logger.With(zap.String("network", string(network))),
		store: &blockIndexer{
			repo:       repo,
			classifier: classifier,
			network:    network,
		},
	}, nil
}

// Run performs one scan and walk. The graph is discarded afterwards.
func (r *IndexRun) Run(ctx context.Context) (result chain.WalkResult, err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveRun(err, started)
	}()

	graph, err := scanGraph(ctx, r.source, r.logger)
	if err != nil {
		r.logger.Error("scan block files failed", zap.Error(err))
		return result, err
	}
	r.metrics.SetScannedBlocks(graph.Len())
	r.logger.Info("found blocks", zap.Int("blocks", graph.Len()))

	if err = r.reportStoredTip(ctx); err != nil {
		return result, err
	}

	walker := chain.NewWalker(graph, r.source, r.store, r.metrics, r.logger.Named("walker"))
	result, err = walker.Run(ctx)
	if err != nil {
		return result, err
	}

	r.logger.Info("done",
		zap.Uint64("processed", result.Heights),
		zap.Uint64("indexed", result.Indexed),
		zap.String("tip", result.TipHash),
		zap.Duration("elapsed", time.Since(started)))
	return result, nil
}

func (r *IndexRun) reportStoredTip(ctx context.Context) error {
	height, found, err := r.repo.MaxBlockHeight(ctx, r.network)
	if err != nil {
		r.logger.Error("load stored tip failed", zap.Error(err))
		return fmt.Errorf("load stored tip: %w", err)
	}
	if !found {
		r.logger.Info("index is empty")
		return nil
	}
	r.metrics.SetStoredHeight(height)
	r.logger.Info("stored tip", zap.Uint64("height", height))
	return nil
}
