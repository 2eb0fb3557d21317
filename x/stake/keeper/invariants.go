package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coral-dex/coral/x/stake/types"
)

// RegisterInvariants registers all stake invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "period-totals", PeriodTotalsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "flow-accounting", FlowAccountingInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-balance", ModuleBalanceInvariant(k))
}

// AllInvariants runs all invariants of the stake module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PeriodTotalsInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = FlowAccountingInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ModuleBalanceInvariant(k)(ctx)
	}
}

// PeriodTotalsInvariant checks that the stored per-period point totals match
// the sum of the individual bond entries.
func PeriodTotalsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		sums := make(map[int64]math.Int)
		_ = k.IterateBondEntries(ctx, func(entry types.BondEntry) bool {
			total, ok := sums[entry.Period]
			if !ok {
				total = math.ZeroInt()
			}
			sums[entry.Period] = total.Add(entry.Points)
			return false
		})

		var (
			msg   string
			count int
		)
		seen := make(map[int64]struct{})
		k.IteratePeriodTotals(ctx, func(period int64, points math.Int) bool {
			seen[period] = struct{}{}
			expected, ok := sums[period]
			if !ok {
				expected = math.ZeroInt()
			}
			if !points.Equal(expected) {
				count++
				msg += fmt.Sprintf("period %d: stored total %s, entries sum %s\n", period, points, expected)
			}
			return false
		})
		for period, expected := range sums {
			if _, ok := seen[period]; !ok && !expected.IsZero() {
				count++
				msg += fmt.Sprintf("period %d: no stored total for entries sum %s\n", period, expected)
			}
		}
		return sdk.FormatInvariant(
			types.ModuleName, "period-totals",
			fmt.Sprintf("found %d mismatched period totals\n%s", count, msg),
		), count != 0
	}
}

// FlowAccountingInvariant checks that no flow has distributed more than it
// was funded with.
func FlowAccountingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		_ = k.IterateFlows(ctx, func(flow types.DistributionFlow) bool {
			if flow.TotalDistributed.GT(flow.TotalFunded) {
				count++
				msg += fmt.Sprintf("flow %d: distributed %s exceeds funded %s\n",
					flow.Id, flow.TotalDistributed, flow.TotalFunded)
			}
			return false
		})
		return sdk.FormatInvariant(
			types.ModuleName, "flow-accounting",
			fmt.Sprintf("found %d overdrawn flows\n%s", count, msg),
		), count != 0
	}
}

// ModuleBalanceInvariant checks that the module account covers all bonded
// tokens, queued claims and undistributed reward funds per denom.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "module-balance", err.Error()), true
		}

		required := map[string]math.Int{
			params.StakedDenom: k.TotalStaked(ctx).Add(k.TotalUnbonding(ctx)),
		}
		_ = k.IterateFlows(ctx, func(flow types.DistributionFlow) bool {
			needed, ok := required[flow.RewardDenom]
			if !ok {
				needed = math.ZeroInt()
			}
			required[flow.RewardDenom] = needed.Add(flow.TotalFunded.Sub(flow.TotalDistributed))
			return false
		})

		var (
			msg     string
			count   int
			modAddr = k.GetModuleAddress()
		)
		for denom, needed := range required {
			balance := k.bankKeeper.GetBalance(ctx, modAddr, denom).Amount
			if balance.LT(needed) {
				count++
				msg += fmt.Sprintf("denom %s: module holds %s, needs %s\n", denom, balance, needed)
			}
		}
		return sdk.FormatInvariant(
			types.ModuleName, "module-balance",
			fmt.Sprintf("found %d underfunded denoms\n%s", count, msg),
		), count != 0
	}
}
