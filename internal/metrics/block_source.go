package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	blockSourceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "block_source",
		Name:      "operations_total",
		Help:      "Count of block file operations.",
	}, []string{"operation", "network", "status"})
	blockSourceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "block_source",
		Name:      "operation_duration_seconds",
		Help:      "Duration of block file operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// BlockSource tracks metrics for reads of the block file set.
type BlockSource struct {
	network model.Network
}

// NewBlockSource constructs a metrics collector for block file reads.
func NewBlockSource(network model.Network) *BlockSource {
	if network == "" {
		network = unknown
	}
	return &BlockSource{network: network}
}

// Observe records a single block file operation outcome and duration.
func (m BlockSource) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	blockSourceRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	blockSourceRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}
