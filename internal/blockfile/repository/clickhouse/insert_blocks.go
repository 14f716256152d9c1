package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
)

const insertBlocksQuery = `
INSERT INTO blockfile_blocks (
	network,
	height,
	hash,
	previous_hash,
	timestamp,
	version,
	merkle_root,
	bits,
	nonce,
	tx_count,
	file_name,
	file_position
) VALUES`

// InsertBlocks stores block rows. The block row marks a block as indexed, so
// callers write it after the rows of its transactions.
func (r *Repository) InsertBlocks(ctx context.Context, blocks []model.IndexedBlock) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_blocks", firstNetwork(blocks), err, start)
	}()

	return insert(ctx, r.conn, insertBlocksQuery, "blocks", blocks, func(b model.IndexedBlock) []any {
		return []any{
			string(b.Network),
			b.Height,
			b.Hash,
			b.PreviousHash,
			b.Timestamp,
			b.Version,
			b.MerkleRoot,
			b.Bits,
			b.Nonce,
			b.TXCount,
			b.FileName,
			b.FilePosition,
		}
	})
}

func firstNetwork[T any](items []T) model.Network {
	if len(items) == 0 {
		return ""
	}

	switch v := any(items[0]).(type) {
	case model.IndexedBlock:
		return v.Network
	case model.IndexedTransaction:
		return v.Network
	case model.IndexedOutput:
		return v.Network
	case model.IndexedInput:
		return v.Network
	case model.ReorgEventRow:
		return v.Network
	default:
		return ""
	}
}
