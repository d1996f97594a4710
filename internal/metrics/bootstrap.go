// Package metrics exposes Prometheus instrumentation for the node.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bootstrapRunTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blocksync7000",
		Subsystem: "bootstrap",
		Name:      "run_total",
		Help:      "Count of bootstrap runs.",
	}, []string{"network", "status"})

	bootstrapRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blocksync7000",
		Subsystem: "bootstrap",
		Name:      "run_duration_seconds",
		Help:      "Duration of a bootstrap run.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 14), // 0.1s..~13m
	}, []string{"network", "status"})

	bootstrapRunBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blocksync7000",
		Subsystem: "bootstrap",
		Name:      "run_blocks",
		Help:      "Number of blocks received per bootstrap run.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
	}, []string{"network"})

	bootstrapBlockApplyTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blocksync7000",
		Subsystem: "bootstrap",
		Name:      "block_apply_total",
		Help:      "Count of block validate+apply attempts.",
	}, []string{"network", "status"})

	bootstrapBlockApplyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blocksync7000",
		Subsystem: "bootstrap",
		Name:      "block_apply_duration_seconds",
		Help:      "Duration of validating and applying a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})

	bootstrapBytesReceived = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blocksync7000",
		Subsystem: "bootstrap",
		Name:      "bytes_received_total",
		Help:      "Serialized bytes of blocks handed to validation.",
	}, []string{"network"})

	bootstrapPeersRequestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blocksync7000",
		Subsystem: "bootstrap",
		Name:      "peers_request_total",
		Help:      "Count of peer-list requests to trusted peers.",
	}, []string{"network", "status"})

	bootstrapPeersRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blocksync7000",
		Subsystem: "bootstrap",
		Name:      "peers_request_duration_seconds",
		Help:      "Duration of peer-list requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "status"})
)

// Bootstrap records bootstrap observations for one network.
type Bootstrap struct {
	network string
}

// NewBootstrap creates the bootstrap metrics recorder.
func NewBootstrap(network string) *Bootstrap {
	if network == "" {
		network = "unknown"
	}
	return &Bootstrap{network: network}
}

// ObserveRun records the outcome of one whole bootstrap pass.
func (m Bootstrap) ObserveRun(err error, blocks uint64, started time.Time) {
	status := statusOf(err)
	bootstrapRunTotal.WithLabelValues(m.network, status).Inc()
	bootstrapRunDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	bootstrapRunBlocks.WithLabelValues(m.network).Observe(float64(blocks))
}

// ObserveBlockApplied records one validate+apply attempt.
func (m Bootstrap) ObserveBlockApplied(err error, sizeBytes int, started time.Time) {
	status := statusOf(err)
	bootstrapBlockApplyTotal.WithLabelValues(m.network, status).Inc()
	bootstrapBlockApplyDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
	if sizeBytes > 0 {
		bootstrapBytesReceived.WithLabelValues(m.network).Add(float64(sizeBytes))
	}
}

// ObservePeersRequest records one peer-list request.
func (m Bootstrap) ObservePeersRequest(err error, started time.Time) {
	status := statusOf(err)
	bootstrapPeersRequestTotal.WithLabelValues(m.network, status).Inc()
	bootstrapPeersRequestDuration.WithLabelValues(m.network, status).Observe(time.Since(started).Seconds())
}

func statusOf(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
