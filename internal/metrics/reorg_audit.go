package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockfile-indexer/internal/blockfile/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reorgAuditTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reorg_audit",
		Name:      "audits_total",
		Help:      "Count of reorg audits.",
	}, []string{"network", "status"})

	reorgAuditDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "reorg_audit",
		Name:      "audit_duration_seconds",
		Help:      "Duration of a reorg audit.",
		Buckets:   prometheus.ExponentialBuckets(0.5, 2, 14),
	}, []string{"network", "status"})

	reorgAuditEventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "reorg_audit",
		Name:      "events_total",
		Help:      "Count of emitted reorg events by kind.",
	}, []string{"network", "kind"})

	reorgAuditForkHeights = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "reorg_audit",
		Name:      "fork_heights",
		Help:      "Heights holding more than one block in the last audit.",
	}, []string{"network"})
)

// ReorgAudit tracks metrics for reorg audits.
type ReorgAudit struct {
	network model.Network
}

// NewReorgAudit constructs a ReorgAudit collector.
func NewReorgAudit(network model.Network) *ReorgAudit {
	if network == "" {
		network = unknown
	}
	return &ReorgAudit{network: network}
}

// ObserveAudit records the outcome and duration of an audit.
func (m ReorgAudit) ObserveAudit(err error, started time.Time) {
	status := statusOf(err)
	reorgAuditTotal.WithLabelValues(string(m.network), status).Inc()
	reorgAuditDuration.WithLabelValues(string(m.network), status).Observe(time.Since(started).Seconds())
}

// AddEvents counts emitted events of kind.
func (m ReorgAudit) AddEvents(kind string, events int) {
	reorgAuditEventsTotal.WithLabelValues(string(m.network), kind).Add(float64(events))
}

// SetForkHeights records the number of fork heights found.
func (m ReorgAudit) SetForkHeights(heights int) {
	reorgAuditForkHeights.WithLabelValues(string(m.network)).Set(float64(heights))
}
