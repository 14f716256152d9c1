package reorg

import "github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"

// ForkGroup holds the contending branches over a maximal run of consecutive
// heights that each recorded more than one block.
type ForkGroup struct {
	StartHeight uint64
	EndHeight   uint64
	Lanes       map[int][]model.Block
}

// ForkRuns splits ascending fork heights into runs of consecutive heights.
func ForkRuns(heights []uint64) [][]uint64 {
	var runs [][]uint64
	for i, height := range heights {
		if i == 0 || height != heights[i-1]+1 {
			runs = append(runs, nil)
		}
		runs[len(runs)-1] = append(runs[len(runs)-1], height)
	}
	return runs
}

// laneBuilder assigns blocks of a fork group to lanes. Lane j starts with the
// j-th block of the first height; later blocks extend every lane ending in
// their parent. A second child of the same lane tip opens a new lane sharing
// the prefix.
type laneBuilder struct {
	group ForkGroup
	order []int
}

func newLaneBuilder(start uint64) *laneBuilder {
	return &laneBuilder{group: ForkGroup{
		StartHeight: start,
		EndHeight:   start,
		Lanes:       make(map[int][]model.Block),
	}}
}

func (b *laneBuilder) add(block model.Block) {
	if block.Height > b.group.EndHeight {
		b.group.EndHeight = block.Height
	}
	if block.Height == b.group.StartHeight {
		b.open([]model.Block{block})
		return
	}

	extended := false
	for _, id := range b.order {
		lane := b.group.Lanes[id]
		last := lane[len(lane)-1]
		switch {
		case last.Hash == block.PreviousBlockHash:
			b.group.Lanes[id] = append(lane, block)
			extended = true
		case last.Height == block.Height && len(lane) > 1 && lane[len(lane)-2].Hash == block.PreviousBlockHash:
			if hasBlock(b.group.Lanes, b.order, block.Hash) {
				continue
			}
			fork := append(append([]model.Block(nil), lane[:len(lane)-1]...), block)
			b.open(fork)
			extended = true
		}
	}
	if !extended {
		b.open([]model.Block{block})
	}
}

func (b *laneBuilder) open(lane []model.Block) {
	id := len(b.order)
	b.group.Lanes[id] = lane
	b.order = append(b.order, id)
}

func (b *laneBuilder) build() ForkGroup {
	return b.group
}

func hasBlock(lanes map[int][]model.Block, order []int, hash string) bool {
	for _, id := range order {
		lane := lanes[id]
		if lane[len(lane)-1].Hash == hash {
			return true
		}
	}
	return false
}
