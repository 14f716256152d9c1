package chain

import (
	"fmt"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
)

func summary(hash, prev string) model.ScannedBlockSummary {
	return model.ScannedBlockSummary{
		BlockHash:         hash,
		PreviousBlockHash: prev,
		FileName:          "blk00000.dat",
		FilePosition:      int64(len(hash)) * 100,
	}
}

// extend appends n linear descendants named prefix1..prefixN below parent and returns the last hash.
func extend(g *Graph, parent, prefix string, n int) string {
	for i := 1; i <= n; i++ {
		hash := fmt.Sprintf("%s%d", prefix, i)
		g.Insert(summary(hash, parent))
		parent = hash
	}
	return parent
}
