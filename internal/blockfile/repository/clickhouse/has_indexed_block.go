package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
)

const hasIndexedBlockQuery = `
SELECT count() AS blocks
FROM blockfile_blocks
WHERE network = ? AND hash = ? AND height = ?`

// HasIndexedBlock reports whether the block row of hash at height was written.
func (r *Repository) HasIndexedBlock(ctx context.Context, network model.Network, hash string, height uint64) (found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("has_indexed_block", network, err, start)
	}()

	rows, err := r.conn.Query(ctx, hasIndexedBlockQuery, string(network), hash, height)
	if err != nil {
		return false, fmt.Errorf("query indexed block: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return false, fmt.Errorf("indexed block count not returned")
	}
	var count uint64
	if err = rows.Scan(&count); err != nil {
		return false, fmt.Errorf("scan indexed block count: %w", err)
	}
	if err = rows.Err(); err != nil {
		return false, fmt.Errorf("iterate indexed block count: %w", err)
	}
	return count > 0, nil
}
