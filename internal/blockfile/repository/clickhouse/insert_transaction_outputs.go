package clickhouse

import (
	"context"
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
)

const insertTransactionOutputsQuery = `
INSERT INTO blockfile_transaction_outputs (
	network,
	txid,
	output_index,
	block_height,
	value,
	script_type,
	script_hex,
	addresses
) VALUES`

// InsertTransactionOutputs stores outputs with their classified scripts.
func (r *Repository) InsertTransactionOutputs(ctx context.Context, outputs []model.IndexedOutput) (err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("insert_transaction_outputs", firstNetwork(outputs), err, start)
	}()

	return insert(ctx, r.conn, insertTransactionOutputsQuery, "transaction outputs", outputs, func(o model.IndexedOutput) []any {
		addresses := o.Addresses
		if addresses == nil {
			addresses = []string{}
		}
		return []any{
			string(o.Network),
			o.TxID,
			o.Index,
			o.BlockHeight,
			o.Value,
			o.ScriptType,
			o.ScriptHex,
			addresses,
		}
	})
}
