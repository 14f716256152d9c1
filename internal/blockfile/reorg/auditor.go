package reorg

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/chain"
	"go.uber.org/zap"
)

// Report is the outcome of one audit.
type Report struct {
	ForkHeights int
	Groups      int
	Findings    Findings
	Orphans     int
}

// Auditor materializes the contending branches of a height forest and analyzes them.
type Auditor struct {
	reader BlockReader
	logger *zap.Logger
}

// NewAuditor returns an Auditor reading blocks through reader.
func NewAuditor(reader BlockReader, logger *zap.Logger) *Auditor {
	return &Auditor{reader: reader, logger: logger}
}

// Audit walks every run of consecutive fork heights in forest. Coinbases of
// abandoned blocks found in earlier runs count for later ones.
func (a *Auditor) Audit(ctx context.Context, forest *chain.HeightForest) (Report, error) {
	heights := forest.ForkHeights()
	runs := ForkRuns(heights)
	analyzer := NewAnalyzer(a.logger)
	report := Report{ForkHeights: len(heights), Groups: len(runs)}

	for _, run := range runs {
		group, err := a.group(ctx, forest, run)
		if err != nil {
			return report, err
		}
		report.Findings.Merge(analyzer.Analyze(group))
	}
	report.Orphans = len(analyzer.orphans)

	a.logger.Info("audit finished",
		zap.Int("fork_heights", report.ForkHeights),
		zap.Int("groups", report.Groups),
		zap.Int("double_spends", len(report.Findings.DoubleSpends)),
		zap.Int("coinbase_spends", len(report.Findings.CoinbaseSpends)),
		zap.Int("orphans", report.Orphans))
	return report, nil
}

func (a *Auditor) group(ctx context.Context, forest *chain.HeightForest, run []uint64) (ForkGroup, error) {
	builder := newLaneBuilder(run[0])
	for _, height := range run {
		for _, summary := range forest.At(height) {
			if err := ctx.Err(); err != nil {
				return ForkGroup{}, err
			}
			block, err := a.reader.ReadBlock(ctx, summary.FileName, summary.FilePosition, height)
			if err != nil {
				return ForkGroup{}, fmt.Errorf("read block %s at height %d: %w", summary.BlockHash, height, err)
			}
			block.Hash = summary.BlockHash
			block.PreviousBlockHash = summary.PreviousBlockHash
			block.Height = height
			block.MainChain = summary.MainChain
			builder.add(block)
		}
	}
	return builder.build(), nil
}
