package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/reorg"
	"github.com/goodnatureofminers/blockfile-indexer/pkg/batcher"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"go.uber.org/zap"
)

// JSONSink writes the events as one indented JSON array.
type JSONSink struct {
	w io.Writer
}

func NewJSONSink(w io.Writer) *JSONSink {
	return &JSONSink{w: w}
}

func (s *JSONSink) Name() string { return "json" }

func (s *JSONSink) Write(_ context.Context, result AuditResult) error {
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	return enc.Encode(eventsOrEmpty(result.Events))
}

// TableSink writes a human-readable summary of the events.
type TableSink struct {
	w io.Writer
}

func NewTableSink(w io.Writer) *TableSink {
	return &TableSink{w: w}
}

func (s *TableSink) Name() string { return "table" }

func (s *TableSink) Write(_ context.Context, result AuditResult) error {
	t := table.NewWriter()
	t.SetOutputMirror(s.w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(table.Row{"Event", "Height", "Block", "Tx", "Competing", "Value (sat)"})

	var total uint64
	for _, event := range result.Events {
		block, txID := event.Subject()
		competing, value := competingSummary(event)
		total += value
		t.AppendRow(table.Row{event.Kind, block.Height, block.Hash, txID, competing, value})
	}
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d events", len(result.Events)), "", total})
	t.Render()
	return nil
}

// competingSummary counts the distinct conflicting transactions of an event and
// sums their output values.
func competingSummary(event reorg.Event) (int, uint64) {
	switch details := event.Details.(type) {
	case reorg.DoubleSpendDetails:
		seen := make(map[string]struct{}, len(details.DoubleSpentOutpoints))
		var value uint64
		for _, outpoint := range details.DoubleSpentOutpoints {
			tx := outpoint.AlsoSpentIn.Tx
			if _, ok := seen[tx.TxID]; ok {
				continue
			}
			seen[tx.TxID] = struct{}{}
			value += outputValue(tx)
		}
		return len(seen), value
	case reorg.ReorgedCoinbaseDetails:
		return len(details.CoinbasesSpent), outputValue(details.OrphanedTx)
	default:
		return 0, 0
	}
}

func outputValue(tx reorg.TxJSON) uint64 {
	var value uint64
	for _, out := range tx.Vout {
		value += out.ValueSat
	}
	return value
}

// RepositorySink persists events as rows through a batcher.
type RepositorySink struct {
	repo   EventRepository
	logger *zap.Logger
}

func NewRepositorySink(repo EventRepository, logger *zap.Logger) *RepositorySink {
	return &RepositorySink{repo: repo, logger: logger}
}

func (s *RepositorySink) Name() string { return "clickhouse" }

func (s *RepositorySink) Write(ctx context.Context, result AuditResult) error {
	b := batcher.New[model.ReorgEventRow](
		s.logger.Named("eventBatcher"),
		s.repo.InsertReorgEvents,
		eventBatchSize,
		eventFlushInterval,
		eventFlushRPS,
	)
	b.Start(ctx)

	for _, event := range result.Events {
		row, err := eventRow(result, event)
		if err != nil {
			b.Stop()
			return err
		}
		if err := b.Add(ctx, row); err != nil {
			b.Stop()
			return err
		}
	}
	b.Stop()

	if err := b.Err(); err != nil {
		return err
	}
	s.logger.Info("events persisted", zap.Int("rows", b.Flushed()))
	return nil
}

func eventRow(result AuditResult, event reorg.Event) (model.ReorgEventRow, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return model.ReorgEventRow{}, fmt.Errorf("encode %s event: %w", event.Kind, err)
	}
	block, txID := event.Subject()
	return model.ReorgEventRow{
		Network:     result.Network,
		Kind:        event.Kind,
		BlockHash:   block.Hash,
		BlockHeight: block.Height,
		TxID:        txID,
		Payload:     string(payload),
		DetectedAt:  result.FinishedAt,
	}, nil
}

// PublisherSink forwards events to a publisher.
type PublisherSink struct {
	publisher EventPublisher
}

func NewPublisherSink(publisher EventPublisher) *PublisherSink {
	return &PublisherSink{publisher: publisher}
}

func (s *PublisherSink) Name() string { return "redis" }

func (s *PublisherSink) Write(ctx context.Context, result AuditResult) error {
	return s.publisher.Publish(ctx, result.Events)
}

// MemorySink keeps the JSON of the latest result for serving over HTTP.
type MemorySink struct {
	mu     sync.RWMutex
	latest []byte
}

func NewMemorySink() *MemorySink {
	return &MemorySink{latest: []byte("[]")}
}

func (s *MemorySink) Name() string { return "memory" }

func (s *MemorySink) Write(_ context.Context, result AuditResult) error {
	raw, err := json.Marshal(eventsOrEmpty(result.Events))
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.latest = raw
	s.mu.Unlock()
	return nil
}

// Latest returns the JSON array written last.
func (s *MemorySink) Latest() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

func eventsOrEmpty(events []reorg.Event) []reorg.Event {
	if events == nil {
		return []reorg.Event{}
	}
	return events
}
