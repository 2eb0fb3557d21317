package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coral-dex/coral/x/dex/types"
)

// RegisterInvariants registers all dex invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-state", PoolStateInvariant(k))
	ir.RegisterRoute(types.ModuleName, "lp-supply", LpSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-balance", ModuleBalanceInvariant(k))
}

// AllInvariants runs all invariants of the dex module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PoolStateInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = LpSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ModuleBalanceInvariant(k)(ctx)
	}
}

// PoolStateInvariant checks that every stored pool passes its own validation:
// sorted distinct denoms, non-negative reserves, shares zero exactly when the
// reserves are.
func PoolStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		_ = k.IteratePools(ctx, func(pool types.Pool) bool {
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pool %d: %v\n", pool.Id, err)
			}
			return false
		})
		return sdk.FormatInvariant(
			types.ModuleName, "pool-state",
			fmt.Sprintf("found %d invalid pools\n%s", count, msg),
		), count != 0
	}
}

// LpSupplyInvariant checks that each pool's recorded share total matches the
// bank supply of its LP denom.
func LpSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)
		_ = k.IteratePools(ctx, func(pool types.Pool) bool {
			supply := k.bankKeeper.GetSupply(ctx, pool.LpDenom)
			if !supply.Amount.Equal(pool.TotalShares) {
				count++
				msg += fmt.Sprintf("pool %d: LP supply %s != recorded shares %s\n",
					pool.Id, supply.Amount, pool.TotalShares)
			}
			return false
		})
		return sdk.FormatInvariant(
			types.ModuleName, "lp-supply",
			fmt.Sprintf("found %d pools with mismatched LP supply\n%s", count, msg),
		), count != 0
	}
}

// ModuleBalanceInvariant checks that the module account covers every pool's
// reserves plus the accrued protocol fees, per denom.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		needed := make(map[string]math.Int)
		accumulate := func(denom string, amount math.Int) {
			if existing, ok := needed[denom]; ok {
				needed[denom] = existing.Add(amount)
			} else {
				needed[denom] = amount
			}
		}

		_ = k.IteratePools(ctx, func(pool types.Pool) bool {
			accumulate(pool.DenomA, pool.ReserveA)
			accumulate(pool.DenomB, pool.ReserveB)
			return false
		})
		k.IterateCollectedFees(ctx, func(denom string, amount math.Int) bool {
			accumulate(denom, amount)
			return false
		})

		var (
			msg   string
			count int
		)
		moduleAddr := k.GetModuleAddress()
		for denom, amount := range needed {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(amount) {
				count++
				msg += fmt.Sprintf("module balance %s for %s below required %s\n",
					balance.Amount, denom, amount)
			}
		}
		return sdk.FormatInvariant(
			types.ModuleName, "module-balance",
			fmt.Sprintf("found %d underfunded denoms\n%s", count, msg),
		), count != 0
	}
}
