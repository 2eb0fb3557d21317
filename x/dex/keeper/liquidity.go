package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coral-dex/coral/x/dex/types"
)

// ProvideLiquidity deposits both pool assets and mints LP shares to the
// receiver. The deposit ratio must stay within the slippage tolerance of the
// current reserve ratio; any excess on one side is kept by the pool.
func (k Keeper) ProvideLiquidity(ctx context.Context, msg *types.MsgProvideLiquidity) (math.Int, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return math.Int{}, types.ErrInvalidInput.Wrapf("invalid sender address: %v", err)
	}

	pool, err := k.GetPool(ctx, msg.PoolId)
	if err != nil {
		return math.Int{}, err
	}
	if pool.Frozen {
		return math.Int{}, types.ErrFrozen.Wrapf("pool %d accepts only withdrawals", pool.Id)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}
	tolerance := params.DefaultSlippageTolerance
	if msg.SlippageTolerance != nil {
		tolerance = *msg.SlippageTolerance
		if tolerance.GT(params.MaxSlippageTolerance) {
			return math.Int{}, types.ErrInvalidInput.Wrapf(
				"slippage tolerance %s exceeds maximum %s", tolerance, params.MaxSlippageTolerance)
		}
	}

	shares, err := types.SharesForDeposit(pool.Curve, pool.Amp,
		pool.ReserveA, pool.ReserveB, pool.TotalShares, msg.AmountA, msg.AmountB, tolerance)
	if err != nil {
		return math.Int{}, err
	}
	if !shares.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("deposit too small to mint a share")
	}

	receiver := sender
	if msg.Receiver != "" {
		receiver, err = sdk.AccAddressFromBech32(msg.Receiver)
		if err != nil {
			return math.Int{}, types.ErrInvalidInput.Wrapf("invalid receiver address: %v", err)
		}
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	deposit := sdk.NewCoins(
		sdk.NewCoin(pool.DenomA, msg.AmountA),
		sdk.NewCoin(pool.DenomB, msg.AmountB),
	)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(sdkCtx, sender, types.ModuleName, deposit); err != nil {
		return math.Int{}, types.ErrInsufficientFunds.Wrapf("depositing liquidity: %v", err)
	}

	lpCoin := sdk.NewCoin(pool.LpDenom, shares)
	if err := k.bankKeeper.MintCoins(sdkCtx, types.ModuleName, sdk.NewCoins(lpCoin)); err != nil {
		return math.Int{}, fmt.Errorf("ProvideLiquidity: mint shares: %w", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, receiver, sdk.NewCoins(lpCoin)); err != nil {
		return math.Int{}, fmt.Errorf("ProvideLiquidity: send shares: %w", err)
	}

	pool.ReserveA = pool.ReserveA.Add(msg.AmountA)
	pool.ReserveB = pool.ReserveB.Add(msg.AmountB)
	pool.TotalShares = pool.TotalShares.Add(shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, err
	}

	k.metrics.LiquidityAdded.WithLabelValues(fmt.Sprintf("%d", pool.Id)).Add(floatFromInt(shares))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProvideLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	return shares, nil
}

// WithdrawLiquidity burns LP shares for a proportional slice of the reserves.
// Withdrawals stay available on frozen pools.
func (k Keeper) WithdrawLiquidity(ctx context.Context, msg *types.MsgWithdrawLiquidity) (amountA, amountB math.Int, err error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return math.Int{}, math.Int{}, types.ErrInvalidInput.Wrapf("invalid sender address: %v", err)
	}

	pool, err := k.GetPool(ctx, msg.PoolId)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	amountA, amountB, err = types.AmountsForShares(pool.ReserveA, pool.ReserveB, pool.TotalShares, msg.Shares)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if amountA.IsZero() && amountB.IsZero() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("shares too few to withdraw anything")
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	lpCoin := sdk.NewCoin(pool.LpDenom, msg.Shares)
	if err := k.bankKeeper.SendCoinsFromAccountToModule(sdkCtx, sender, types.ModuleName, sdk.NewCoins(lpCoin)); err != nil {
		return math.Int{}, math.Int{}, types.ErrInsufficientShares.Wrapf("collecting shares: %v", err)
	}
	if err := k.bankKeeper.BurnCoins(sdkCtx, types.ModuleName, sdk.NewCoins(lpCoin)); err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("WithdrawLiquidity: burn shares: %w", err)
	}

	var payout sdk.Coins
	if amountA.IsPositive() {
		payout = payout.Add(sdk.NewCoin(pool.DenomA, amountA))
	}
	if amountB.IsPositive() {
		payout = payout.Add(sdk.NewCoin(pool.DenomB, amountB))
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, sender, payout); err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("WithdrawLiquidity: pay out reserves: %w", err)
	}

	pool.ReserveA = pool.ReserveA.Sub(amountA)
	pool.ReserveB = pool.ReserveB.Sub(amountB)
	pool.TotalShares = pool.TotalShares.Sub(msg.Shares)
	if err := k.SetPool(ctx, pool); err != nil {
		return math.Int{}, math.Int{}, err
	}

	k.metrics.LiquidityRemoved.WithLabelValues(fmt.Sprintf("%d", pool.Id)).Add(floatFromInt(msg.Shares))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeWithdrawLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyShares, msg.Shares.String()),
			sdk.NewAttribute(types.AttributeKeyRefundAssets,
				fmt.Sprintf("%s%s,%s%s", amountA, pool.DenomA, amountB, pool.DenomB)),
		),
	)

	return amountA, amountB, nil
}

// floatFromInt converts a chain integer for metric counters; precision loss
// is acceptable for observability.
func floatFromInt(v math.Int) float64 {
	f, err := v.ToLegacyDec().Float64()
	if err != nil {
		return 0
	}
	return f
}
