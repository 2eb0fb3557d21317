package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// EndBlocker flushes accrued protocol fees through the fee splitter on the
// configured block interval. Distribution failures are logged, never allowed
// to halt block production.
func (k Keeper) EndBlocker(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	params, err := k.GetParams(ctx)
	if err != nil {
		k.Logger(ctx).Error("failed to load dex params", "error", err)
		return nil
	}
	if params.FeeDistributionInterval == 0 {
		return nil
	}
	if sdkCtx.BlockHeight()%params.FeeDistributionInterval != 0 {
		return nil
	}

	if err := k.DistributeFees(ctx); err != nil {
		k.Logger(ctx).Error("failed to distribute protocol fees", "error", err)
	}
	return nil
}
