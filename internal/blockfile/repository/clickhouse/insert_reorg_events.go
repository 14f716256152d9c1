package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
)

const insertReorgEventsQuery = `
INSERT INTO blockfile_reorg_events (
	network,
	kind,
	block_hash,
	block_height,
	txid,
	payload,
	detected_at
) VALUES`

// InsertReorgEvents stores audit findings.
func (r *Repository) InsertReorgEvents(ctx context.Context, events []model.ReorgEventRow) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_reorg_events", firstNetwork(events), err, start)
	}()

	return insert(ctx, r.conn, insertReorgEventsQuery, "reorg events", events, func(e model.ReorgEventRow) []any {
		return []any{
			string(e.Network),
			e.Kind,
			e.BlockHash,
			e.BlockHeight,
			e.TxID,
			e.Payload,
			e.DetectedAt,
		}
	})
}
