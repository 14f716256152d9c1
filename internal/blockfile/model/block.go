// Package model defines domain models for block-file indexing and reorg analysis.
package model

import (
	"fmt"
	"strings"
	"time"
)

// ZeroHash is the all-zero literal used as the genesis previous-block hash and
// as the spent-tx hash of coinbase inputs. Its width is fixed at 68 characters
// because the index store uses the same literal as a sentinel.
var ZeroHash = strings.Repeat("0", 68)

// GenesisPreviousHash seeds chain reconstruction.
var GenesisPreviousHash = ZeroHash

// CoinbaseTxHash marks an input that spends no prior output.
var CoinbaseTxHash = ZeroHash

// ScannedBlockSummary is one physical block occurrence found during a file scan.
type ScannedBlockSummary struct {
	BlockHash         string
	PreviousBlockHash string
	FileName          string
	FilePosition      int64
	MainChain         bool
}

// Block is a fully decoded block, materialized only when needed.
type Block struct {
	Hash              string
	PreviousBlockHash string
	Height            uint64
	MainChain         bool
	Version           int32
	MerkleRoot        string
	Timestamp         time.Time
	Bits              uint32
	Nonce             uint32
	FileName          string
	FilePosition      int64
	Transactions      []Transaction
}

// Transaction holds the inputs and outputs of a decoded transaction.
type Transaction struct {
	TxHash  string
	Inputs  []TransactionInput
	Outputs []TransactionOutput
}

// IsCoinbase reports whether the first input spends nothing.
func (t Transaction) IsCoinbase() bool {
	return len(t.Inputs) > 0 && t.Inputs[0].IsCoinbase()
}

// TransactionInput references a previously created output.
type TransactionInput struct {
	TxHash   string
	TxoIndex uint32
}

// IsCoinbase reports whether the input carries the coinbase sentinel.
func (i TransactionInput) IsCoinbase() bool {
	return i.TxHash == CoinbaseTxHash
}

// Outpoint returns the outpoint key of the spent output.
func (i TransactionInput) Outpoint() string {
	return OutpointKey(i.TxHash, i.TxoIndex)
}

// TransactionOutput is a value locked by a script.
type TransactionOutput struct {
	Value  uint64
	Script []byte
}

// OutpointKey renders txHash followed by index as an 8 digit zero-padded decimal.
func OutpointKey(txHash string, index uint32) string {
	return fmt.Sprintf("%s%08d", txHash, index)
}
