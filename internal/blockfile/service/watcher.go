package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/chain"
	"github.com/goodnatureofminers/blockfile-indexer/internal/clock"
	"go.uber.org/zap"
)

// Watcher polls the block files and starts an index run whenever they change.
type Watcher struct {
	source   ChangeSource
	runner   Runner
	interval time.Duration
	backoff  time.Duration
	sleep    func(context.Context, time.Duration) error
	onRun    func(chain.WalkResult)
	logger   *zap.Logger

	lastSeen time.Time
	ran      bool
}

// NewWatcher builds a Watcher. onRun, when set, is called after every successful run.
func NewWatcher(source ChangeSource, runner Runner, interval time.Duration, onRun func(chain.WalkResult), logger *zap.Logger) *Watcher {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	return &Watcher{
		source:   source,
		runner:   runner,
		interval: interval,
		backoff:  defaultBackoff,
		sleep:    clock.SleepWithContext,
		onRun:    onRun,
		logger:   logger,
	}
}

// Run polls until the context is canceled. The first poll always triggers a run.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := w.poll(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			w.logger.Warn("index run failed, backing off", zap.Error(err), zap.Duration("sleep", w.backoff))
			if sleepErr := w.sleep(ctx, w.backoff); sleepErr != nil {
				return sleepErr
			}
			continue
		}
		if err := w.sleep(ctx, w.interval); err != nil {
			return err
		}
	}
}

func (w *Watcher) poll(ctx context.Context) error {
	modified, err := w.source.LastModified()
	if err != nil {
		return err
	}
	if w.ran && !modified.After(w.lastSeen) {
		return nil
	}

	w.logger.Info("block files changed, starting index run", zap.Time("modified", modified))
	result, err := w.runner.Run(ctx)
	if err != nil {
		return err
	}
	w.lastSeen = modified
	w.ran = true
	if w.onRun != nil {
		w.onRun(result)
	}
	return nil
}
