package model

import "time"

// IndexedBlock is the block row persisted by the index store.
type IndexedBlock struct {
	Network      Network
	Height       uint64
	Hash         string
	PreviousHash string
	Timestamp    time.Time
	Version      int32
	MerkleRoot   string
	Bits         uint32
	Nonce        uint32
	TXCount      uint32
	FileName     string
	FilePosition int64
}

// IndexedTransaction is a transaction row keyed by the block that carried it.
type IndexedTransaction struct {
	Network     Network
	TxID        string
	BlockHash   string
	BlockHeight uint64
	Position    uint32
	InputCount  uint32
	OutputCount uint32
}

// IndexedOutput is a transaction output with its classified script.
type IndexedOutput struct {
	Network     Network
	TxID        string
	Index       uint32
	BlockHeight uint64
	Value       uint64
	ScriptType  string
	ScriptHex   string
	Addresses   []string
}

// IndexedInput is a spent outpoint reference.
type IndexedInput struct {
	Network     Network
	TxID        string
	Index       uint32
	BlockHeight uint64
	PrevTxID    string
	PrevVout    uint32
	IsCoinbase  bool
}

// ReorgEventRow is an audit event persisted for later review.
type ReorgEventRow struct {
	Network     Network
	Kind        string
	BlockHash   string
	BlockHeight uint64
	TxID        string
	Payload     string
	DetectedAt  time.Time
}

// IndexBlock groups the rows written for one block.
type IndexBlock struct {
	Block   IndexedBlock
	Txs     []IndexedTransaction
	Outputs []IndexedOutput
	Inputs  []IndexedInput
}
