package service

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/chain"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"github.com/goodnatureofminers/blockfile-indexer/pkg/workerpool"
	"go.uber.org/zap"
)

// scanGraph builds a fresh graph from every block file of source. Files are
// read concurrently but inserted in scan order, so the first occurrence of a
// block wins and siblings keep their discovery order.
func scanGraph(ctx context.Context, source BlockSource, logger *zap.Logger) (*chain.Graph, error) {
	files, err := source.Files()
	if err != nil {
		return nil, err
	}

	scanned, err := workerpool.Map(ctx, scanWorkers, files, func(ctx context.Context, file string) ([]model.ScannedBlockSummary, error) {
		summaries, err := source.ScanFile(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", file, err)
		}
		return summaries, nil
	})
	if err != nil {
		return nil, err
	}

	graph := chain.NewGraph()
	for i, summaries := range scanned {
		duplicates := 0
		for _, summary := range summaries {
			if !graph.Insert(summary) {
				duplicates++
			}
		}
		logger.Debug("block file scanned",
			zap.String("file", files[i]),
			zap.Int("blocks", len(summaries)),
			zap.Int("duplicates", duplicates))
	}
	return graph, nil
}
