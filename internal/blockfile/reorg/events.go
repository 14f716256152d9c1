package reorg

import "github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"

// Event kinds.
const (
	EventDoubleSpend             = "doubleSpend"
	EventSpendingReorgedCoinbase = "spendingReorgedCoinbase"
)

// Event is one audit finding in its published JSON shape.
type Event struct {
	Kind    string `json:"event"`
	Details any    `json:"details"`
}

// BlockJSON identifies a block inside an event.
type BlockJSON struct {
	Hash   string `json:"hash"`
	Height uint64 `json:"height"`
}

// TxJSON is the rendered form of a transaction.
type TxJSON struct {
	TxID string       `json:"txid"`
	Vin  []InputJSON  `json:"vin"`
	Vout []OutputJSON `json:"vout"`
}

type InputJSON struct {
	TxID string `json:"txid"`
	Vout uint32 `json:"vout"`
}

type OutputJSON struct {
	To       []string `json:"to"`
	Type     string   `json:"type"`
	ValueSat uint64   `json:"valueSat"`
}

// DoubleSpendDetails is the payload of a doubleSpend event.
type DoubleSpendDetails struct {
	MainChainBlock       BlockJSON            `json:"mainChainBlock"`
	MainChainTx          TxJSON               `json:"mainChainTx"`
	DoubleSpentOutpoints []DoubleSpentOutJSON `json:"doubleSpentOutpoints"`
}

type DoubleSpentOutJSON struct {
	Outpoint    string      `json:"outpoint"`
	AlsoSpentIn AlsoSpentIn `json:"alsoSpentIn"`
}

type AlsoSpentIn struct {
	Tx    TxJSON    `json:"tx"`
	Block BlockJSON `json:"block"`
}

// ReorgedCoinbaseDetails is the payload of a spendingReorgedCoinbase event.
type ReorgedCoinbaseDetails struct {
	OrphanedTx     TxJSON    `json:"orphanedTx"`
	OrphanedBlock  BlockJSON `json:"orphanedBlock"`
	CoinbasesSpent []string  `json:"coinbasesSpent"`
}

// Renderer turns findings into events, classifying output scripts on the way.
type Renderer struct {
	classifier ScriptClassifier
}

// NewRenderer returns a renderer using classifier for output types and addresses.
func NewRenderer(classifier ScriptClassifier) *Renderer {
	return &Renderer{classifier: classifier}
}

// Events renders double spends first, then reorged coinbase spends, each in discovery order.
func (r *Renderer) Events(findings Findings) []Event {
	events := make([]Event, 0, len(findings.DoubleSpends)+len(findings.CoinbaseSpends))
	for _, ds := range findings.DoubleSpends {
		details := DoubleSpendDetails{
			MainChainBlock:       blockJSON(ds.MainChainBlock),
			MainChainTx:          r.Tx(ds.MainChainTx),
			DoubleSpentOutpoints: make([]DoubleSpentOutJSON, 0, len(ds.Outpoints)),
		}
		for _, competing := range ds.Outpoints {
			details.DoubleSpentOutpoints = append(details.DoubleSpentOutpoints, DoubleSpentOutJSON{
				Outpoint: competing.Outpoint,
				AlsoSpentIn: AlsoSpentIn{
					Tx:    r.Tx(competing.Tx),
					Block: blockJSON(competing.Block),
				},
			})
		}
		events = append(events, Event{Kind: EventDoubleSpend, Details: details})
	}
	for _, cs := range findings.CoinbaseSpends {
		spent := append([]string{}, cs.CoinbasesSpent...)
		events = append(events, Event{Kind: EventSpendingReorgedCoinbase, Details: ReorgedCoinbaseDetails{
			OrphanedTx:     r.Tx(cs.OrphanedTx),
			OrphanedBlock:  blockJSON(cs.OrphanedBlock),
			CoinbasesSpent: spent,
		}})
	}
	return events
}

// Tx renders a transaction with classified outputs.
func (r *Renderer) Tx(tx model.Transaction) TxJSON {
	out := TxJSON{
		TxID: tx.TxHash,
		Vin:  make([]InputJSON, 0, len(tx.Inputs)),
		Vout: make([]OutputJSON, 0, len(tx.Outputs)),
	}
	for _, input := range tx.Inputs {
		out.Vin = append(out.Vin, InputJSON{TxID: input.TxHash, Vout: input.TxoIndex})
	}
	for _, output := range tx.Outputs {
		scriptType, addresses := r.classifier.Classify(output.Script)
		if addresses == nil {
			addresses = []string{}
		}
		out.Vout = append(out.Vout, OutputJSON{To: addresses, Type: scriptType.String(), ValueSat: output.Value})
	}
	return out
}

func blockJSON(ref BlockRef) BlockJSON {
	return BlockJSON{Hash: ref.Hash, Height: ref.Height}
}

// Subject returns the block and transaction an event is reported against.
func (e Event) Subject() (BlockJSON, string) {
	switch details := e.Details.(type) {
	case DoubleSpendDetails:
		return details.MainChainBlock, details.MainChainTx.TxID
	case ReorgedCoinbaseDetails:
		return details.OrphanedBlock, details.OrphanedTx.TxID
	default:
		return BlockJSON{}, ""
	}
}
