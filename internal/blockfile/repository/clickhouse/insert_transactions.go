package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
)

const insertTransactionsQuery = `
INSERT INTO blockfile_transactions (
	network,
	txid,
	block_hash,
	block_height,
	position,
	input_count,
	output_count
) VALUES`

// InsertTransactions stores transaction rows.
func (r *Repository) InsertTransactions(ctx context.Context, txs []model.IndexedTransaction) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_transactions", firstNetwork(txs), err, start)
	}()

	return insert(ctx, r.conn, insertTransactionsQuery, "transactions", txs, func(tx model.IndexedTransaction) []any {
		return []any{
			string(tx.Network),
			tx.TxID,
			tx.BlockHash,
			tx.BlockHeight,
			tx.Position,
			tx.InputCount,
			tx.OutputCount,
		}
	})
}
