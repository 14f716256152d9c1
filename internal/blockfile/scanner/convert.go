package scanner

import (
	"fmt"

	"github.com/btcsuite/btcd/wire"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"github.com/goodnatureofminers/blockfile-indexer/pkg/safe"
)

func convertBlock(msg *wire.MsgBlock, height uint64) (model.Block, error) {
	block := model.Block{
		Hash:              msg.BlockHash().String(),
		PreviousBlockHash: hashOrSentinel(msg.Header.PrevBlock),
		Height:            height,
		Version:           msg.Header.Version,
		MerkleRoot:        msg.Header.MerkleRoot.String(),
		Timestamp:         msg.Header.Timestamp.UTC(),
		Bits:              msg.Header.Bits,
		Nonce:             msg.Header.Nonce,
		Transactions:      make([]model.Transaction, 0, len(msg.Transactions)),
	}
	for _, tx := range msg.Transactions {
		converted, err := convertTransaction(tx)
		if err != nil {
			return model.Block{}, err
		}
		block.Transactions = append(block.Transactions, converted)
	}
	return block, nil
}

func convertTransaction(tx *wire.MsgTx) (model.Transaction, error) {
	txHash := tx.TxHash().String()
	converted := model.Transaction{
		TxHash:  txHash,
		Inputs:  make([]model.TransactionInput, 0, len(tx.TxIn)),
		Outputs: make([]model.TransactionOutput, 0, len(tx.TxOut)),
	}
	for _, in := range tx.TxIn {
		converted.Inputs = append(converted.Inputs, model.TransactionInput{
			TxHash:   hashOrSentinel(in.PreviousOutPoint.Hash),
			TxoIndex: in.PreviousOutPoint.Index,
		})
	}
	for i, out := range tx.TxOut {
		value, err := safe.Uint64(out.Value)
		if err != nil {
			return model.Transaction{}, fmt.Errorf("tx %s output %d value: %w", txHash, i, err)
		}
		converted.Outputs = append(converted.Outputs, model.TransactionOutput{
			Value:  value,
			Script: out.PkScript,
		})
	}
	return converted, nil
}
