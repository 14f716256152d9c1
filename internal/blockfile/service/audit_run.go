package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/chain"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/reorg"
	"go.uber.org/zap"
)

// AuditRun scans the block files, audits every fork for conflicting spends and
// hands the rendered events to its sinks in order.
type AuditRun struct {
	source   BlockSource
	renderer *reorg.Renderer
	metrics  AuditMetrics
	sinks    []EventSink
	network  model.Network
	logger   *zap.Logger
	now      func() time.Time
}

// NewAuditRun builds an AuditRun with dependencies.
func NewAuditRun(
	source BlockSource,
	classifier ScriptClassifier,
	metrics AuditMetrics,
	network model.Network,
	logger *zap.Logger,
	sinks ...EventSink,
) (*AuditRun, error) {
	if metrics == nil {
		return nil, errors.New("audit metrics is required")
	}
	return &AuditRun{
		source:   source,
		renderer: reorg.NewRenderer(classifier),
		metrics:  metrics,
		sinks:    sinks,
		network:  network,
		logger:   logger.With(zap.String("network", string(network))),
		now:      time.Now,
	}, nil
}

// Run performs one audit. A sink failure stops the remaining sinks.
func (a *AuditRun) Run(ctx context.Context) (result AuditResult, err error) {
	started := time.Now()
	defer func() {
		a.metrics.ObserveAudit(err, started)
	}()

	graph, err := scanGraph(ctx, a.source, a.logger)
	if err != nil {
		return result, err
	}
	a.logger.Info("found blocks", zap.Int("blocks", graph.Len()))

	forest, err := chain.BuildHeightForest(graph)
	if err != nil {
		return result, fmt.Errorf("build height forest: %w", err)
	}

	report, err := reorg.NewAuditor(a.source, a.logger.Named("auditor")).Audit(ctx, forest)
	if err != nil {
		return result, err
	}
	a.metrics.SetForkHeights(report.ForkHeights)

	result = AuditResult{
		Network:    a.network,
		Report:     report,
		Events:     a.renderer.Events(report.Findings),
		FinishedAt: a.now(),
	}
	a.metrics.AddEvents(reorg.EventDoubleSpend, len(report.Findings.DoubleSpends))
	a.metrics.AddEvents(reorg.EventSpendingReorgedCoinbase, len(report.Findings.CoinbaseSpends))

	for _, sink := range a.sinks {
		if err = sink.Write(ctx, result); err != nil {
			return result, fmt.Errorf("write events to %s: %w", sink.Name(), err)
		}
		a.logger.Debug("events written", zap.String("sink", sink.Name()), zap.Int("events", len(result.Events)))
	}
	return result, nil
}
