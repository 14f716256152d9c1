package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
)

func (s *RepositorySuite) TestInsertBlocksAndLookup() {
	now := time.Now().UTC().Truncate(time.Second)
	blocks := []model.IndexedBlock{
		newIndexedBlock(0, "a", now),
		newIndexedBlock(1, "b", now.Add(time.Second)),
	}

	s.metrics.EXPECT().Observe("insert_blocks", model.Regtest, gomock.Nil(), gomock.Any())
	s.metrics.EXPECT().Observe("has_indexed_block", model.Regtest, gomock.Nil(), gomock.Any()).Times(3)
	s.metrics.EXPECT().Observe("max_block_height", model.Regtest, gomock.Nil(), gomock.Any())

	s.Require().NoError(s.repo.InsertBlocks(s.testCtx, blocks))
	s.Equal(uint64(len(blocks)), s.countRows("blockfile_blocks"))

	found, err := s.repo.HasIndexedBlock(s.testCtx, model.Regtest, blocks[1].Hash, 1)
	s.Require().NoError(err)
	s.True(found)

	found, err = s.repo.HasIndexedBlock(s.testCtx, model.Regtest, blocks[1].Hash, 2)
	s.Require().NoError(err)
	s.False(found)

	found, err = s.repo.HasIndexedBlock(s.testCtx, model.Regtest, "missing", 0)
	s.Require().NoError(err)
	s.False(found)

	height, ok, err := s.repo.MaxBlockHeight(s.testCtx, model.Regtest)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(uint64(1), height)
}

func (s *RepositorySuite) TestMaxBlockHeightEmpty() {
	s.metrics.EXPECT().Observe("max_block_height", model.Mainnet, gomock.Nil(), gomock.Any())

	height, ok, err := s.repo.MaxBlockHeight(s.testCtx, model.Mainnet)
	s.Require().NoError(err)
	s.False(ok)
	s.Zero(height)
}

func (s *RepositorySuite) TestInsertTransactionRows() {
	s.metrics.EXPECT().Observe("insert_transactions", model.Regtest, gomock.Nil(), gomock.Any())
	s.metrics.EXPECT().Observe("insert_transaction_outputs", model.Regtest, gomock.Nil(), gomock.Any())
	s.metrics.EXPECT().Observe("insert_transaction_inputs", model.Regtest, gomock.Nil(), gomock.Any())

	s.Require().NoError(s.repo.InsertTransactions(s.testCtx, []model.IndexedTransaction{
		{Network: model.Regtest, TxID: "tx1", BlockHash: "b", BlockHeight: 1, Position: 0, InputCount: 1, OutputCount: 2},
	}))
	s.Require().NoError(s.repo.InsertTransactionOutputs(s.testCtx, []model.IndexedOutput{
		{Network: model.Regtest, TxID: "tx1", Index: 0, BlockHeight: 1, Value: 50, ScriptType: "pay-to-pubkeyhash", ScriptHex: "76a9", Addresses: []string{"mxyz"}},
		{Network: model.Regtest, TxID: "tx1", Index: 1, BlockHeight: 1, Value: 0, ScriptType: "nulldata", ScriptHex: "6a"},
	}))
	s.Require().NoError(s.repo.InsertTransactionInputs(s.testCtx, []model.IndexedInput{
		{Network: model.Regtest, TxID: "tx1", Index: 0, BlockHeight: 1, PrevTxID: model.CoinbaseTxHash, PrevVout: 0xffffffff, IsCoinbase: true},
	}))

	s.Equal(uint64(1), s.countRows("blockfile_transactions"))
	s.Equal(uint64(2), s.countRows("blockfile_transaction_outputs"))
	s.Equal(uint64(1), s.countRows("blockfile_transaction_inputs"))
}

func (s *RepositorySuite) TestInsertReorgEvents() {
	s.metrics.EXPECT().Observe("insert_reorg_events", model.Regtest, gomock.Nil(), gomock.Any())

	now := time.Now().UTC().Truncate(time.Millisecond)
	s.Require().NoError(s.repo.InsertReorgEvents(s.testCtx, []model.ReorgEventRow{
		{Network: model.Regtest, Kind: "doubleSpend", BlockHash: "b", BlockHeight: 3, TxID: "t", Payload: `{"event":"doubleSpend"}`, DetectedAt: now},
		{Network: model.Regtest, Kind: "spendingReorgedCoinbase", BlockHash: "x", BlockHeight: 4, TxID: "u", Payload: `{}`, DetectedAt: now},
	}))
	s.Equal(uint64(2), s.countRows("blockfile_reorg_events"))
}
