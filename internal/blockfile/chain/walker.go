package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"github.com/goodnatureofminers/blockfile-indexer/internal/clock"
	"go.uber.org/zap"
)

const progressInterval = 10 * time.Second

// Walker selects one block per height starting at the genesis sentinel and
// hands every block the store has not seen yet to the store.
type Walker struct {
	graph    *Graph
	reader   BlockReader
	store    IndexStore
	metrics  WalkerMetrics
	logger   *zap.Logger
	progress *clock.Throttle
}

// NewWalker builds a Walker over a fully scanned graph.
func NewWalker(graph *Graph, reader BlockReader, store IndexStore, metrics WalkerMetrics, logger *zap.Logger) *Walker {
	return &Walker{
		graph:    graph,
		reader:   reader,
		store:    store,
		metrics:  metrics,
		logger:   logger,
		progress: clock.NewThrottle(progressInterval),
	}
}

// Run walks the graph to its tip. Any read or store failure aborts the walk;
// the height being processed is not committed.
func (w *Walker) Run(ctx context.Context) (WalkResult, error) {
	var result WalkResult
	hash := model.GenesisPreviousHash
	for height := uint64(0); ; height++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		children := w.graph.ChildrenOf(hash)
		if len(children) == 0 {
			return result, nil
		}
		selected := children[0]
		if len(children) > 1 {
			best, err := w.graph.ResolveLongestBranch(children)
			if err != nil {
				return result, fmt.Errorf("resolve fork at height %d: %w", height, err)
			}
			selected = best
			w.logger.Debug("fork resolved",
				zap.Uint64("height", height),
				zap.Int("candidates", len(children)),
				zap.String("hash", selected.BlockHash))
		}
		selected.MainChain = true

		indexed, err := w.indexIfMissing(ctx, selected, height)
		if err != nil {
			return result, err
		}
		if indexed {
			result.Indexed++
		}

		hash = selected.BlockHash
		result.Heights = height + 1
		result.TipHash = hash
		w.metrics.SetHeight(height)
		if w.progress.Due() {
			w.logger.Info("construction is at height", zap.Uint64("height", height))
		}
	}
}

func (w *Walker) indexIfMissing(ctx context.Context, selected model.ScannedBlockSummary, height uint64) (indexed bool, err error) {
	known, err := w.store.HasIndexedBlock(ctx, selected.BlockHash, height)
	if err != nil {
		return false, fmt.Errorf("check block %s at height %d: %w", selected.BlockHash, height, err)
	}
	if known {
		return false, nil
	}

	started := time.Now()
	defer func() {
		w.metrics.ObserveIndexBlock(err, height, started)
	}()

	block, err := w.reader.ReadBlock(ctx, selected.FileName, selected.FilePosition, height)
	if err != nil {
		w.logger.Error("read block failed",
			zap.Uint64("height", height),
			zap.String("file", selected.FileName),
			zap.Int64("position", selected.FilePosition),
			zap.Error(err))
		return false, fmt.Errorf("read block height %d: %w", height, err)
	}
	block.MainChain = true

	if err = w.store.IndexBlock(ctx, block); err != nil {
		w.logger.Error("index block failed", zap.Uint64("height", height), zap.Error(err))
		return false, fmt.Errorf("index block height %d: %w", height, err)
	}
	return true, nil
}
