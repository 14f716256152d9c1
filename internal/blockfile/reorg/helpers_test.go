package reorg

import (
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
)

func coinbaseTx(hash string) model.Transaction {
	return model.Transaction{
		TxHash:  hash,
		Inputs:  []model.TransactionInput{{TxHash: model.CoinbaseTxHash, TxoIndex: 0xffffffff}},
		Outputs: []model.TransactionOutput{{Value: 50_0000_0000}},
	}
}

func spendTx(hash string, inputs ...model.TransactionInput) model.Transaction {
	return model.Transaction{
		TxHash:  hash,
		Inputs:  inputs,
		Outputs: []model.TransactionOutput{{Value: 1000}},
	}
}

func in(txHash string, index uint32) model.TransactionInput {
	return model.TransactionInput{TxHash: txHash, TxoIndex: index}
}

func block(hash, prev string, height uint64, main bool, txs ...model.Transaction) model.Block {
	return model.Block{
		Hash:              hash,
		PreviousBlockHash: prev,
		Height:            height,
		MainChain:         main,
		Transactions:      txs,
	}
}
