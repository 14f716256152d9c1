package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	indexRunTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "index_run",
		Name:      "runs_total",
		Help:      "Count of index runs.",
	}, []string{"network", "status"})

	indexRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "index_run",
		Name:      "run_duration_seconds",
		Help:      "Duration of a full scan and walk of the block files.",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 14),
	}, []string{"network", "status"})

	indexRunScannedBlocks = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "index_run",
		Name:      "scanned_blocks",
		Help:      "Block occurrences found by the last scan.",
	}, []string{"network"})

	indexRunHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "index_run",
		Name:      "height",
		Help:      "Height reached by the chain walk.",
	}, []string{"network"})

	indexRunStoredHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "index_run",
		Name:      "stored_height",
		Help:      "Highest height held by the index before the walk.",
	}, []string{"network"})

	indexRunBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "index_run",
		Name:      "blocks_indexed_total",
		Help:      "Count of blocks handed to the index store.",
	}, []string{"network", "status"})

	indexRunBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "index_run",
		Name:      "block_duration_seconds",
		Help:      "Duration of reading and indexing a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// IndexRun tracks metrics for index runs and the chain walk inside them.
type IndexRun struct {
	network model.Network
}

// NewIndexRun constructs an IndexRun collector.
func NewIndexRun(network model.Network) *IndexRun {
	if network == "" {
		network = unknown
	}
	return &IndexRun{network: network}
}

// ObserveRun records the outcome and duration of a run.
func (m IndexRun) ObserveRun(err error, started time.Time) {
	status := statusOf(err)
	indexRunTotal.WithLabelValues(string(m.network), status).Inc()
	indexRunDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// SetScannedBlocks records the size of the last scan.
func (m IndexRun) SetScannedBlocks(blocks int) {
	indexRunScannedBlocks.WithLabelValues(string(m.network)).Set(float64(blocks))
}

// SetHeight records the height reached by the walk.
func (m IndexRun) SetHeight(height uint64) {
	indexRunHeight.WithLabelValues(string(m.network)).Set(float64(height))
}

// SetStoredHeight records the highest indexed height found before a walk.
func (m IndexRun) SetStoredHeight(height uint64) {
	indexRunStoredHeight.WithLabelValues(string(m.network)).Set(float64(height))
}

// ObserveIndexBlock records reading and indexing one block.
func (m IndexRun) ObserveIndexBlock(err error, _ uint64, started time.Time) {
	status := statusOf(err)
	indexRunBlocksTotal.WithLabelValues(string(m.network), status).Inc()
	indexRunBlockDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}
