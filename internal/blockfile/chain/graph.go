// Package chain reconstructs the canonical chain from scanned block summaries.
package chain

import "github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"

// Graph indexes scanned blocks by their previous-block hash. It is owned by a
// single run and must not be mutated once fork resolution starts.
type Graph struct {
	children map[string][]model.ScannedBlockSummary
	size     int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{children: make(map[string][]model.ScannedBlockSummary)}
}

// Insert adds a summary unless the same block hash is already registered under
// its parent. It reports whether the summary was added.
func (g *Graph) Insert(summary model.ScannedBlockSummary) bool {
	siblings := g.children[summary.PreviousBlockHash]
	for _, existing := range siblings {
		if existing.BlockHash == summary.BlockHash {
			return false
		}
	}
	summary.MainChain = false
	g.children[summary.PreviousBlockHash] = append(siblings, summary)
	g.size++
	return true
}

// ChildrenOf returns the known direct children of hash in scan order.
func (g *Graph) ChildrenOf(hash string) []model.ScannedBlockSummary {
	children := g.children[hash]
	if len(children) == 0 {
		return nil
	}
	return append([]model.ScannedBlockSummary(nil), children...)
}

// Len returns the number of distinct (parent, block) pairs.
func (g *Graph) Len() int {
	return g.size
}

