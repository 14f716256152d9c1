package service

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"github.com/goodnatureofminers/blockfile-indexer/pkg/safe"
)

// blockIndexer stores walked blocks of one network. The block row is written
// last so that HasIndexedBlock only reports blocks whose rows are complete.
type blockIndexer struct {
	repo       IndexRepository
	classifier ScriptClassifier
	network    model.Network
}

func (i *blockIndexer) HasIndexedBlock(ctx context.Context, hash string, height uint64) (bool, error) {
	return i.repo.HasIndexedBlock(ctx, i.network, hash, height)
}

func (i *blockIndexer) IndexBlock(ctx context.Context, block model.Block) error {
	rows, err := i.rows(block)
	if err != nil {
		return err
	}

	if err := i.repo.InsertTransactions(ctx, rows.Txs); err != nil {
		return err
	}
	if err := i.repo.InsertTransactionOutputs(ctx, rows.Outputs); err != nil {
		return err
	}
	if err := i.repo.InsertTransactionInputs(ctx, rows.Inputs); err != nil {
		return err
	}
	return i.repo.InsertBlocks(ctx, []model.IndexedBlock{rows.Block})
}

func (i *blockIndexer) rows(block model.Block) (model.IndexBlock, error) {
	txCount, err := safe.Uint32(len(block.Transactions))
	if err != nil {
		return model.IndexBlock{}, fmt.Errorf("block %s transaction count: %w", block.Hash, err)
	}

	rows := model.IndexBlock{
		Block: model.IndexedBlock{
			Network:      i.network,
			Height:       block.Height,
			Hash:         block.Hash,
			PreviousHash: block.PreviousBlockHash,
			Timestamp:    block.Timestamp,
			Version:      block.Version,
			MerkleRoot:   block.MerkleRoot,
			Bits:         block.Bits,
			Nonce:        block.Nonce,
			TXCount:      txCount,
			FileName:     block.FileName,
			FilePosition: block.FilePosition,
		},
		Txs: make([]model.IndexedTransaction, 0, len(block.Transactions)),
	}

	for position, tx := range block.Transactions {
		txPosition, err := safe.Uint32(position)
		if err != nil {
			return model.IndexBlock{}, fmt.Errorf("tx %s position: %w", tx.TxHash, err)
		}
		inputCount, err := safe.Uint32(len(tx.Inputs))
		if err != nil {
			return model.IndexBlock{}, fmt.Errorf("tx %s input count: %w", tx.TxHash, err)
		}
		outputCount, err := safe.Uint32(len(tx.Outputs))
		if err != nil {
			return model.IndexBlock{}, fmt.Errorf("tx %s output count: %w", tx.TxHash, err)
		}

		rows.Txs = append(rows.Txs, model.IndexedTransaction{
			Network:     i.network,
			TxID:        tx.TxHash,
			BlockHash:   block.Hash,
			BlockHeight: block.Height,
			Position:    txPosition,
			InputCount:  inputCount,
			OutputCount: outputCount,
		})

		for index, output := range tx.Outputs {
			outputIndex, err := safe.Uint32(index)
			if err != nil {
				return model.IndexBlock{}, fmt.Errorf("tx %s output index: %w", tx.TxHash, err)
			}
			scriptType, addresses := i.classifier.Classify(output.Script)
			rows.Outputs = append(rows.Outputs, model.IndexedOutput{
				Network:     i.network,
				TxID:        tx.TxHash,
				Index:       outputIndex,
				BlockHeight: block.Height,
				Value:       output.Value,
				ScriptType:  scriptType.String(),
				ScriptHex:   hex.EncodeToString(output.Script),
				Addresses:   addresses,
			})
		}

		for index, input := range tx.Inputs {
			inputIndex, err := safe.Uint32(index)
			if err != nil {
				return model.IndexBlock{}, fmt.Errorf("tx %s input index: %w", tx.TxHash, err)
			}
			rows.Inputs = append(rows.Inputs, model.IndexedInput{
				Network:     i.network,
				TxID:        tx.TxHash,
				Index:       inputIndex,
				BlockHeight: block.Height,
				PrevTxID:    input.TxHash,
				PrevVout:    input.TxoIndex,
				IsCoinbase:  input.IsCoinbase(),
			})
		}
	}
	return rows, nil
}
