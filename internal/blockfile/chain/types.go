package chain

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockReader materializes a full block from its file position without validating it.
	BlockReader interface {
		ReadBlock(ctx context.Context, fileName string, position int64, height uint64) (model.Block, error)
	}
	// IndexStore persists selected blocks.
	IndexStore interface {
		HasIndexedBlock(ctx context.Context, hash string, height uint64) (bool, error)
		IndexBlock(ctx context.Context, block model.Block) error
	}
	WalkerMetrics interface {
		ObserveIndexBlock(err error, height uint64, started time.Time)
		SetHeight(height uint64)
	}
)

// WalkResult summarizes a completed walk.
type WalkResult struct {
	// Heights is the number of heights selected, the tip height plus one.
	Heights uint64
	Indexed uint64
	TipHash string
}
