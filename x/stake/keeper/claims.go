package keeper

import (
	"context"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coral-dex/coral/x/stake/types"
)

// GetClaims returns a user's claim queue in creation order
func (k Keeper) GetClaims(ctx context.Context, addr sdk.AccAddress) []types.Claim {
	bz := k.getStore(ctx).Get(types.ClaimsKey(addr))
	if bz == nil {
		return nil
	}
	var claims []types.Claim
	if err := json.Unmarshal(bz, &claims); err != nil {
		panic(fmt.Errorf("GetClaims: unmarshal: %w", err))
	}
	return claims
}

// setClaims stores a user's claim queue, removing the key when empty
func (k Keeper) setClaims(ctx context.Context, addr sdk.AccAddress, claims []types.Claim) error {
	store := k.getStore(ctx)
	if len(claims) == 0 {
		store.Delete(types.ClaimsKey(addr))
		return nil
	}
	bz, err := json.Marshal(claims)
	if err != nil {
		return fmt.Errorf("setClaims: marshal: %w", err)
	}
	store.Set(types.ClaimsKey(addr), bz)
	return nil
}

// appendClaim adds a claim to the end of a user's queue
func (k Keeper) appendClaim(ctx context.Context, addr sdk.AccAddress, claim types.Claim) error {
	return k.setClaims(ctx, addr, append(k.GetClaims(ctx, addr), claim))
}

// IterateClaims walks every user's claim queue until the callback stops it
func (k Keeper) IterateClaims(ctx context.Context, cb func(addr sdk.AccAddress, claims []types.Claim) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.ClaimsKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		addr := sdk.AccAddress(iterator.Key()[len(types.ClaimsKeyPrefix):])
		var claims []types.Claim
		if err := json.Unmarshal(iterator.Value(), &claims); err != nil {
			return fmt.Errorf("IterateClaims: unmarshal: %w", err)
		}
		if cb(addr, claims) {
			break
		}
	}
	return nil
}

// Claim releases every matured claim of the sender in one transfer. Unmatured
// claims stay queued untouched; when nothing has matured the call is a no-op
// returning zero.
func (k Keeper) Claim(ctx context.Context, sender sdk.AccAddress) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()

	released := math.ZeroInt()
	var remaining []types.Claim
	for _, claim := range k.GetClaims(ctx, sender) {
		if claim.ReleaseAt <= now {
			released = released.Add(claim.Amount)
			continue
		}
		remaining = append(remaining, claim)
	}
	if released.IsZero() {
		return math.ZeroInt(), nil
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}
	coins := sdk.NewCoins(sdk.NewCoin(params.StakedDenom, released))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, sender, coins); err != nil {
		return math.Int{}, err
	}
	if err := k.setClaims(ctx, sender, remaining); err != nil {
		return math.Int{}, err
	}

	k.metrics.ClaimsReleased.Inc()

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeClaim,
		sdk.NewAttribute(types.AttributeKeySender, sender.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, released.String()),
	))
	return released, nil
}

// TotalUnbonding returns the sum of all queued claim amounts
func (k Keeper) TotalUnbonding(ctx context.Context) math.Int {
	total := math.ZeroInt()
	_ = k.IterateClaims(ctx, func(_ sdk.AccAddress, claims []types.Claim) bool {
		for _, claim := range claims {
			total = total.Add(claim.Amount)
		}
		return false
	})
	return total
}
