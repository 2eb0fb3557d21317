package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// StakeMetrics holds all Prometheus metrics for the stake module
type StakeMetrics struct {
	BondedTotal    *prometheus.CounterVec
	UnbondedTotal  *prometheus.CounterVec
	RebondsTotal   prometheus.Counter
	ClaimsReleased prometheus.Counter

	FlowsCreated     prometheus.Counter
	FlowsFunded      *prometheus.CounterVec
	RewardsWithdrawn *prometheus.CounterVec
}

var (
	stakeMetricsOnce sync.Once
	stakeMetrics     *StakeMetrics
)

// NewStakeMetrics registers the stake collectors once per process.
func NewStakeMetrics() *StakeMetrics {
	stakeMetricsOnce.Do(func() {
		stakeMetrics = &StakeMetrics{
			BondedTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "stake",
					Name:      "bonded_total",
					Help:      "Tokens bonded in base units, by period",
				},
				[]string{"period"},
			),
			UnbondedTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "stake",
					Name:      "unbonded_total",
					Help:      "Tokens unbonded into the claim queue in base units, by period",
				},
				[]string{"period"},
			),
			RebondsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "stake",
					Name:      "rebonds_total",
					Help:      "Total number of rebond operations",
				},
			),
			ClaimsReleased: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "stake",
					Name:      "claims_released_total",
					Help:      "Total number of matured claims paid out",
				},
			),
			FlowsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "stake",
					Name:      "distribution_flows_created_total",
					Help:      "Total number of reward distribution flows created",
				},
			),
			FlowsFunded: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "stake",
					Name:      "distribution_funded_total",
					Help:      "Reward funds added to distribution flows in base units",
				},
				[]string{"denom"},
			),
			RewardsWithdrawn: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "coral",
					Subsystem: "stake",
					Name:      "rewards_withdrawn_total",
					Help:      "Rewards paid out to users in base units",
				},
				[]string{"denom"},
			),
		}
	})
	return stakeMetrics
}
