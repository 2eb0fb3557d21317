package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coral-dex/coral/x/dex/types"
)

// GetCollectedFee returns the accrued protocol fee balance for a denom
func (k Keeper) GetCollectedFee(ctx context.Context, denom string) math.Int {
	bz := k.getStore(ctx).Get(types.CollectedFeeKey(denom))
	if bz == nil {
		return math.ZeroInt()
	}
	amount, ok := math.NewIntFromString(string(bz))
	if !ok {
		return math.ZeroInt()
	}
	return amount
}

// SetCollectedFee stores the accrued protocol fee balance for a denom,
// clearing the entry when it reaches zero.
func (k Keeper) SetCollectedFee(ctx context.Context, denom string, amount math.Int) {
	store := k.getStore(ctx)
	if !amount.IsPositive() {
		store.Delete(types.CollectedFeeKey(denom))
		return
	}
	store.Set(types.CollectedFeeKey(denom), []byte(amount.String()))
}

// addCollectedFee accrues a protocol fee cut for the fee splitter
func (k Keeper) addCollectedFee(ctx context.Context, denom string, amount math.Int) error {
	if !amount.IsPositive() {
		return nil
	}
	k.SetCollectedFee(ctx, denom, k.GetCollectedFee(ctx, denom).Add(amount))
	return nil
}

// IterateCollectedFees walks the accrued fee balances in denom order
func (k Keeper) IterateCollectedFees(ctx context.Context, cb func(denom string, amount math.Int) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.CollectedFeeKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		denom := string(iterator.Key()[len(types.CollectedFeeKeyPrefix):])
		amount, ok := math.NewIntFromString(string(iterator.Value()))
		if !ok {
			continue
		}
		if cb(denom, amount) {
			break
		}
	}
}

// GetAllCollectedFees returns all accrued fee balances in denom order
func (k Keeper) GetAllCollectedFees(ctx context.Context) []types.CollectedFee {
	var fees []types.CollectedFee
	k.IterateCollectedFees(ctx, func(denom string, amount math.Int) bool {
		fees = append(fees, types.CollectedFee{Denom: denom, Amount: amount})
		return false
	})
	return fees
}

// DistributeFees flushes the accrued protocol fees through the weighted
// fee split. Each receiver gets its weight of every denom, floor-rounded;
// whatever the weights leave over stays accrued for the next round. With no
// receivers configured the call is a no-op.
func (k Keeper) DistributeFees(ctx context.Context) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return err
	}
	if len(params.FeeSplit) == 0 {
		return nil
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	fees := k.GetAllCollectedFees(ctx)

	for _, fee := range fees {
		remaining := fee.Amount
		for _, split := range params.FeeSplit {
			cut := split.Weight.MulInt(fee.Amount).TruncateInt()
			if !cut.IsPositive() {
				continue
			}

			receiver, err := sdk.AccAddressFromBech32(split.Address)
			if err != nil {
				return types.ErrInvalidFee.Wrapf("fee split address %q: %v", split.Address, err)
			}
			if err := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, receiver,
				sdk.NewCoins(sdk.NewCoin(fee.Denom, cut))); err != nil {
				return fmt.Errorf("DistributeFees: pay %s to %s: %w", cut, split.Address, err)
			}
			remaining = remaining.Sub(cut)
			k.metrics.FeesDistributed.WithLabelValues(fee.Denom).Add(floatFromInt(cut))
		}
		k.SetCollectedFee(ctx, fee.Denom, remaining)

		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeDistributeFees,
				sdk.NewAttribute(types.AttributeKeyDenom, fee.Denom),
				sdk.NewAttribute(types.AttributeKeyAmount, fee.Amount.Sub(remaining).String()),
			),
		)
	}
	return nil
}
