package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DexMetrics holds all Prometheus metrics for the dex module
type DexMetrics struct {
	SwapsTotal        *prometheus.CounterVec
	SwapVolume        *prometheus.CounterVec
	SwapFeesCollected *prometheus.CounterVec

	LiquidityAdded   *prometheus.CounterVec
	LiquidityRemoved *prometheus.CounterVec

	PoolsCreated    prometheus.Counter
	PoolsFrozen     prometheus.Counter
	FeesDistributed *prometheus.CounterVec

	MultiHopSwaps prometheus.Histogram
}

var (
	dexMetricsOnce sync.Once
	dexMetrics     *DexMetrics
)

// NewDexMetrics registers the dex collectors once per process.
func NewDexMetrics() *DexMetrics {
	dexMetricsOnce.Do(func() {
		dexMetrics = &DexMetrics{
			SwapsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "dex",
					Name:      "swaps_total",
					Help:      "Total number of swaps executed",
				},
				[]string{"pool_id", "offer_denom", "ask_denom"},
			),
			SwapVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "dex",
					Name:      "swap_volume_total",
					Help:      "Total offered swap volume in base units",
				},
				[]string{"pool_id", "offer_denom"},
			),
			SwapFeesCollected: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "dex",
					Name:      "swap_fees_collected_total",
					Help:      "Protocol fees collected from swaps in base units",
				},
				[]string{"denom"},
			),
			LiquidityAdded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "dex",
					Name:      "liquidity_added_total",
					Help:      "LP shares minted by deposits",
				},
				[]string{"pool_id"},
			),
			LiquidityRemoved: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "dex",
					Name:      "liquidity_removed_total",
					Help:      "LP shares burned by withdrawals",
				},
				[]string{"pool_id"},
			),
			PoolsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "dex",
					Name:      "pools_created_total",
					Help:      "Total number of pools created",
				},
			),
			PoolsFrozen: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "dex",
					Name:      "pools_frozen_total",
					Help:      "Total number of circuit breaker activations",
				},
			),
			FeesDistributed: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "dex",
					Name:      "fees_distributed_total",
					Help:      "Protocol fees paid out through the fee splitter in base units",
				},
				[]string{"denom"},
			),
			MultiHopSwaps: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "coral",
					Subsystem: "dex",
					Name:      "multi_hop_route_length",
					Help:      "Number of hops per routed swap",
					Buckets:   prometheus.LinearBuckets(1, 1, 8),
				},
			),
		}
	})
	return dexMetrics
}
