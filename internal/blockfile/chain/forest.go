package chain

import (
	"fmt"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
)

// HeightForest keeps every observed block by height, with the canonical one tagged MainChain.
type HeightForest struct {
	levels [][]model.ScannedBlockSummary
}

// BuildHeightForest follows all branches from the genesis sentinel. Candidates
// of a height are the children of every block recorded one height below, so
// abandoned branches are followed to their tips.
func BuildHeightForest(g *Graph) (*HeightForest, error) {
	forest := &HeightForest{}
	candidates := g.ChildrenOf(model.GenesisPreviousHash)
	for height := 0; len(candidates) > 0; height++ {
		canonical, err := g.ResolveLongestBranch(candidates)
		if err != nil {
			return nil, fmt.Errorf("resolve canonical block at height %d: %w", height, err)
		}

		level := make([]model.ScannedBlockSummary, 0, len(candidates))
		seen := make(map[string]struct{}, len(candidates))
		var next []model.ScannedBlockSummary
		for _, candidate := range candidates {
			if _, dup := seen[candidate.BlockHash]; dup {
				continue
			}
			seen[candidate.BlockHash] = struct{}{}
			candidate.MainChain = candidate.BlockHash == canonical.BlockHash
			level = append(level, candidate)
			next = append(next, g.ChildrenOf(candidate.BlockHash)...)
		}
		forest.levels = append(forest.levels, level)
		candidates = next
	}
	return forest, nil
}

// Len returns the number of heights, genesis being height 0.
func (f *HeightForest) Len() uint64 {
	return uint64(len(f.levels))
}

// At returns every block recorded at height.
func (f *HeightForest) At(height uint64) []model.ScannedBlockSummary {
	if height >= uint64(len(f.levels)) {
		return nil
	}
	return f.levels[height]
}

// Canonical returns the main-chain block at height.
func (f *HeightForest) Canonical(height uint64) (model.ScannedBlockSummary, bool) {
	for _, block := range f.At(height) {
		if block.MainChain {
			return block, true
		}
	}
	return model.ScannedBlockSummary{}, false
}

// ForkHeights lists the heights holding more than one block.
func (f *HeightForest) ForkHeights() []uint64 {
	var heights []uint64
	for height, level := range f.levels {
		if len(level) > 1 {
			heights = append(heights, uint64(height))
		}
	}
	return heights
}
