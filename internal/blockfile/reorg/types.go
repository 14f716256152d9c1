package reorg

import (
	"context"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/script"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// BlockReader materializes the full blocks of contending branches.
	BlockReader interface {
		ReadBlock(ctx context.Context, fileName string, position int64, height uint64) (model.Block, error)
	}
	// ScriptClassifier resolves output scripts for rendered events.
	ScriptClassifier interface {
		Classify(pkScript []byte) (script.ScriptType, []string)
	}
)

// BlockRef identifies a block by hash and height.
type BlockRef struct {
	Hash   string
	Height uint64
}

func refOf(block *model.Block) BlockRef {
	return BlockRef{Hash: block.Hash, Height: block.Height}
}

// DoubleSpend groups the spends competing with one canonical transaction.
type DoubleSpend struct {
	MainChainBlock BlockRef
	MainChainTx    model.Transaction
	Outpoints      []DoubleSpentOutpoint
}

// DoubleSpentOutpoint is an outpoint also spent by a transaction on an abandoned branch.
type DoubleSpentOutpoint struct {
	Outpoint string
	Tx       model.Transaction
	Block    BlockRef
}

// ReorgedCoinbaseSpend is an abandoned transaction spending coinbase outputs
// that no longer exist on the canonical chain.
type ReorgedCoinbaseSpend struct {
	OrphanedTx     model.Transaction
	OrphanedBlock  BlockRef
	CoinbasesSpent []string
}

// Findings is the outcome of analyzing one or more fork groups.
type Findings struct {
	DoubleSpends   []DoubleSpend
	CoinbaseSpends []ReorgedCoinbaseSpend
}

// Merge appends other to f.
func (f *Findings) Merge(other Findings) {
	f.DoubleSpends = append(f.DoubleSpends, other.DoubleSpends...)
	f.CoinbaseSpends = append(f.CoinbaseSpends, other.CoinbaseSpends...)
}

// Empty reports whether nothing was found.
func (f Findings) Empty() bool {
	return len(f.DoubleSpends) == 0 && len(f.CoinbaseSpends) == 0
}
