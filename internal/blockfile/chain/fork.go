package chain

import (
	"errors"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
)

// ErrNoSiblings is returned when a fork is resolved over an empty candidate set.
var ErrNoSiblings = errors.New("no candidate blocks at fork")

// ResolveLongestBranch picks the candidate whose branch keeps producing
// descendants the longest. Each candidate races forward one block per round;
// racers without children drop out, racers at a nested fork follow that fork's
// own winner. When every remaining racer drops out in the same round the first
// of them in scan order wins. Survivors are counted only after the whole round
// has advanced, so an exact tie never goes to the racer advanced last. This is
// not a cumulative-work rule.
func (g *Graph) ResolveLongestBranch(siblings []model.ScannedBlockSummary) (model.ScannedBlockSummary, error) {
	switch len(siblings) {
	case 0:
		return model.ScannedBlockSummary{}, ErrNoSiblings
	case 1:
		return siblings[0], nil
	}

	heads := make([]string, len(siblings))
	alive := make([]bool, len(siblings))
	for i, sibling := range siblings {
		heads[i] = sibling.BlockHash
		alive[i] = true
	}

	for {
		survivors := 0
		first := -1
		for i := range heads {
			if !alive[i] {
				continue
			}
			if first < 0 {
				first = i
			}
			next, ok, err := g.advance(heads[i])
			if err != nil {
				return model.ScannedBlockSummary{}, err
			}
			if !ok {
				alive[i] = false
				continue
			}
			heads[i] = next
			survivors++
		}

		switch survivors {
		case 0:
			return siblings[first], nil
		case 1:
			for i := range alive {
				if alive[i] {
					return siblings[i], nil
				}
			}
		}
	}
}

// advance moves a racer from head to its best child.
func (g *Graph) advance(head string) (string, bool, error) {
	children := g.children[head]
	switch len(children) {
	case 0:
		return "", false, nil
	case 1:
		return children[0].BlockHash, true, nil
	}
	best, err := g.ResolveLongestBranch(children)
	if err != nil {
		return "", false, err
	}
	return best.BlockHash, true, nil
}
