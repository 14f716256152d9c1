package reorg

import (
	"sort"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"go.uber.org/zap"
)

// Analyzer finds double spends and spends of reorged coinbases across fork
// groups. Coinbases of abandoned blocks accumulate over the lifetime of an
// Analyzer, so one instance must serve exactly one audit run.
type Analyzer struct {
	logger           *zap.Logger
	reorgedCoinbases map[string]struct{}
	orphans          map[string]model.Transaction
}

// NewAnalyzer returns an analyzer with empty run state.
func NewAnalyzer(logger *zap.Logger) *Analyzer {
	return &Analyzer{
		logger:           logger,
		reorgedCoinbases: make(map[string]struct{}),
		orphans:          make(map[string]model.Transaction),
	}
}

type spend struct {
	outpoint string
	block    *model.Block
	tx       *model.Transaction
}

type doubleSpendKey struct {
	blockHash string
	txHash    string
}

type competingKey struct {
	outpoint  string
	txHash    string
	blockHash string
}

// Analyze inspects every lane of group.
func (a *Analyzer) Analyze(group ForkGroup) Findings {
	blocks := uniqueBlocks(group)

	for _, block := range blocks {
		if block.MainChain {
			continue
		}
		for i := range block.Transactions {
			if block.Transactions[i].IsCoinbase() {
				a.reorgedCoinbases[block.Transactions[i].TxHash] = struct{}{}
			}
		}
	}

	var outpoints []string
	spends := make(map[string][]spend)
	for _, block := range blocks {
		for i := range block.Transactions {
			tx := &block.Transactions[i]
			for _, input := range tx.Inputs {
				if input.IsCoinbase() {
					continue
				}
				key := input.Outpoint()
				if _, ok := spends[key]; !ok {
					outpoints = append(outpoints, key)
				}
				spends[key] = append(spends[key], spend{outpoint: key, block: block, tx: tx})
			}
		}
	}

	var (
		findings      Findings
		doubleIndex   = make(map[doubleSpendKey]int)
		competingSeen = make(map[competingKey]struct{})
		coinbaseIndex = make(map[doubleSpendKey]int)
		coinbaseSeen  = make(map[doubleSpendKey]map[string]struct{})
	)
	for _, outpoint := range outpoints {
		candidates := spends[outpoint]
		reference, ok := canonicalSpend(candidates)
		if !ok {
			for _, candidate := range candidates {
				a.classifyAbandoned(candidate, &findings, coinbaseIndex, coinbaseSeen)
			}
			continue
		}
		if len(candidates) < 2 {
			continue
		}

		for _, candidate := range candidates {
			if candidate.block.Hash == reference.block.Hash || candidate.tx.TxHash == reference.tx.TxHash {
				continue
			}
			seenKey := competingKey{outpoint: outpoint, txHash: candidate.tx.TxHash, blockHash: candidate.block.Hash}
			if _, dup := competingSeen[seenKey]; dup {
				continue
			}
			competingSeen[seenKey] = struct{}{}

			groupKey := doubleSpendKey{blockHash: reference.block.Hash, txHash: reference.tx.TxHash}
			idx, exists := doubleIndex[groupKey]
			if !exists {
				idx = len(findings.DoubleSpends)
				doubleIndex[groupKey] = idx
				findings.DoubleSpends = append(findings.DoubleSpends, DoubleSpend{
					MainChainBlock: refOf(reference.block),
					MainChainTx:    *reference.tx,
				})
			}
			findings.DoubleSpends[idx].Outpoints = append(findings.DoubleSpends[idx].Outpoints, DoubleSpentOutpoint{
				Outpoint: outpoint,
				Tx:       *candidate.tx,
				Block:    refOf(candidate.block),
			})
		}
	}

	a.logger.Debug("fork group analyzed",
		zap.Uint64("start_height", group.StartHeight),
		zap.Uint64("end_height", group.EndHeight),
		zap.Int("lanes", len(group.Lanes)),
		zap.Int("double_spends", len(findings.DoubleSpends)),
		zap.Int("coinbase_spends", len(findings.CoinbaseSpends)),
		zap.Int("orphans", len(a.orphans)))
	return findings
}

// Orphans returns abandoned transactions that spend no reorged coinbase and
// have no canonical counterpart for the outpoints they spend.
func (a *Analyzer) Orphans() []model.Transaction {
	out := make([]model.Transaction, 0, len(a.orphans))
	for _, tx := range a.orphans {
		out = append(out, tx)
	}
	return out
}

// ReorgedCoinbase reports whether txHash is the coinbase of an abandoned block seen so far.
func (a *Analyzer) ReorgedCoinbase(txHash string) bool {
	_, ok := a.reorgedCoinbases[txHash]
	return ok
}

func (a *Analyzer) classifyAbandoned(
	candidate spend,
	findings *Findings,
	index map[doubleSpendKey]int,
	seen map[doubleSpendKey]map[string]struct{},
) {
	var spent []string
	for _, input := range candidate.tx.Inputs {
		if input.IsCoinbase() {
			continue
		}
		if _, ok := a.reorgedCoinbases[input.TxHash]; ok {
			spent = append(spent, input.Outpoint())
		}
	}
	if len(spent) == 0 {
		a.orphans[candidate.tx.TxHash] = *candidate.tx
		return
	}

	key := doubleSpendKey{blockHash: candidate.block.Hash, txHash: candidate.tx.TxHash}
	idx, exists := index[key]
	if !exists {
		idx = len(findings.CoinbaseSpends)
		index[key] = idx
		seen[key] = make(map[string]struct{})
		findings.CoinbaseSpends = append(findings.CoinbaseSpends, ReorgedCoinbaseSpend{
			OrphanedTx:    *candidate.tx,
			OrphanedBlock: refOf(candidate.block),
		})
	}
	for _, outpoint := range spent {
		if _, dup := seen[key][outpoint]; dup {
			continue
		}
		seen[key][outpoint] = struct{}{}
		findings.CoinbaseSpends[idx].CoinbasesSpent = append(findings.CoinbaseSpends[idx].CoinbasesSpent, outpoint)
	}
}

func canonicalSpend(candidates []spend) (spend, bool) {
	for _, candidate := range candidates {
		if candidate.block.MainChain {
			return candidate, true
		}
	}
	return spend{}, false
}

// uniqueBlocks flattens the lanes in lane order, keeping each block hash once.
func uniqueBlocks(group ForkGroup) []*model.Block {
	ids := make([]int, 0, len(group.Lanes))
	for id := range group.Lanes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	seen := make(map[string]struct{})
	var blocks []*model.Block
	for _, id := range ids {
		lane := group.Lanes[id]
		for i := range lane {
			if _, dup := seen[lane[i].Hash]; dup {
				continue
			}
			seen[lane[i].Hash] = struct{}{}
			blocks = append(blocks, &lane[i])
		}
	}
	return blocks
}
