package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
)

const maxBlockHeightQuery = `
SELECT coalesce(max(height), toUInt64(0)) AS max_height, count() AS blocks
FROM blockfile_blocks
WHERE network = ?`

// MaxBlockHeight returns the highest indexed height and whether any block is indexed.
func (r *Repository) MaxBlockHeight(ctx context.Context, network model.Network) (height uint64, found bool, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_block_height", network, err, start)
	}()

	rows, err := r.conn.Query(ctx, maxBlockHeightQuery, string(network))
	if err != nil {
		return 0, false, fmt.Errorf("query max block height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return 0, false, fmt.Errorf("max block height not found")
	}
	var blocks uint64
	if err = rows.Scan(&height, &blocks); err != nil {
		return 0, false, fmt.Errorf("scan max block height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, false, fmt.Errorf("iterate max block height: %w", err)
	}
	return height, blocks > 0, nil
}
