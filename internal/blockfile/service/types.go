package service

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/chain"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/reorg"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/script"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	BlockSource interface {
		Files() ([]string, error)
		LastModified() (time.Time, error)
		ScanFile(ctx context.Context, fileName string) ([]model.ScannedBlockSummary, error)
		ReadBlock(ctx context.Context, fileName string, position int64, height uint64) (model.Block, error)
	}
	IndexRepository interface {
		HasIndexedBlock(ctx context.Context, network model.Network, hash string, height uint64) (bool, error)
		MaxBlockHeight(ctx context.Context, network model.Network) (uint64, bool, error)
		InsertBlocks(ctx context.Context, blocks []model.IndexedBlock) error
		InsertTransactions(ctx context.Context, txs []model.IndexedTransaction) error
		InsertTransactionOutputs(ctx context.Context, outputs []model.IndexedOutput) error
		InsertTransactionInputs(ctx context.Context, inputs []model.IndexedInput) error
	}
	EventRepository interface {
		InsertReorgEvents(ctx context.Context, events []model.ReorgEventRow) error
	}
	EventPublisher interface {
		Publish(ctx context.Context, events []reorg.Event) error
	}
	ScriptClassifier interface {
		Classify(pkScript []byte) (script.ScriptType, []string)
	}
	IndexRunMetrics interface {
		ObserveRun(err error, started time.Time)
		SetScannedBlocks(blocks int)
		ObserveIndexBlock(err error, height uint64, started time.Time)
		SetHeight(height uint64)
		SetStoredHeight(height uint64)
	}
	AuditMetrics interface {
		ObserveAudit(err error, started time.Time)
		AddEvents(kind string, events int)
		SetForkHeights(heights int)
	}
	// Runner performs one full index run.
	Runner interface {
		Run(ctx context.Context) (chain.WalkResult, error)
	}
	// ChangeSource reports when the block files were last written.
	ChangeSource interface {
		LastModified() (time.Time, error)
	}
	// EventSink receives the result of an audit run.
	EventSink interface {
		Name() string
		Write(ctx context.Context, result AuditResult) error
	}
)

// AuditResult is one audit run with its rendered events.
type AuditResult struct {
	Network    model.Network
	Report     reorg.Report
	Events     []reorg.Event
	FinishedAt time.Time
}
