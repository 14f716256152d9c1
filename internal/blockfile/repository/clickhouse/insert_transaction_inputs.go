package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
)

const insertTransactionInputsQuery = `
INSERT INTO blockfile_transaction_inputs (
	network,
	txid,
	input_index,
	block_height,
	prev_txid,
	prev_vout,
	is_coinbase
) VALUES`

// InsertTransactionInputs stores spent outpoint references.
func (r *Repository) InsertTransactionInputs(ctx context.Context, inputs []model.IndexedInput) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_transaction_inputs", firstNetwork(inputs), err, start)
	}()

	return insert(ctx, r.conn, insertTransactionInputsQuery, "transaction inputs", inputs, func(in model.IndexedInput) []any {
		return []any{
			string(in.Network),
			in.TxID,
			in.Index,
			in.BlockHeight,
			in.PrevTxID,
			in.PrevVout,
			in.IsCoinbase,
		}
	})
}
