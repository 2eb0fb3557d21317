package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coral-dex/coral/x/dex/types"
)

// SwapResult is one settled trade against a single pool.
type SwapResult struct {
	AskDenom     string
	ReturnAmount math.Int
	SpreadAmount math.Int
	ProtocolFee  math.Int
	LpFee        math.Int
}

// Swap trades the offer asset against a pool and sends the net return to the
// recipient.
func (k Keeper) Swap(ctx context.Context, msg *types.MsgSwap) (*SwapResult, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid sender address: %v", err)
	}
	recipient := sender
	if msg.To != "" {
		recipient, err = sdk.AccAddressFromBech32(msg.To)
		if err != nil {
			return nil, types.ErrInvalidInput.Wrapf("invalid recipient address: %v", err)
		}
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	maxSpread := params.DefaultMaxSpread
	if msg.MaxSpread != nil {
		maxSpread = *msg.MaxSpread
	}

	pool, err := k.GetPool(ctx, msg.PoolId)
	if err != nil {
		return nil, err
	}

	result, err := k.executeSwap(ctx, &pool, sender, recipient, msg.OfferDenom, msg.OfferAmount, msg.BeliefPrice, maxSpread)
	if err != nil {
		return nil, err
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return nil, err
	}
	return result, nil
}

// executeSwap settles one trade against the pool in memory and moves the
// funds. The caller persists the updated pool; multi-hop routes batch several
// executions before writing.
func (k Keeper) executeSwap(
	ctx context.Context,
	pool *types.Pool,
	sender, recipient sdk.AccAddress,
	offerDenom string,
	offerAmount math.Int,
	beliefPrice *math.LegacyDec,
	maxSpread math.LegacyDec,
) (*SwapResult, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	if pool.Frozen {
		return nil, types.ErrFrozen.Wrapf("pool %d accepts only withdrawals", pool.Id)
	}
	if now := sdkCtx.BlockTime().Unix(); now < pool.TradingStarts {
		return nil, types.ErrTradingNotStarted.Wrapf(
			"pool %d opens at %d, current time %d", pool.Id, pool.TradingStarts, now)
	}

	reserveIn, reserveOut, askDenom, err := pool.ReservesFor(offerDenom)
	if err != nil {
		return nil, err
	}

	grossReturn, spread, err := types.SwapOutput(pool.Curve, pool.Amp, reserveIn, reserveOut, offerAmount)
	if err != nil {
		return nil, err
	}
	if !grossReturn.IsPositive() {
		return nil, types.ErrZeroAmount.Wrap("offer too small for any return")
	}
	if err := types.AssertMaxSpread(beliefPrice, maxSpread, offerAmount, grossReturn, spread); err != nil {
		return nil, err
	}

	// Fees come out of the gross return: the LP cut stays in the reserves,
	// the protocol cut leaves the pool.
	protocolFee := pool.FeeConfig.ProtocolRate().MulInt(grossReturn).TruncateInt()
	lpFee := pool.FeeConfig.LpRate().MulInt(grossReturn).TruncateInt()
	netReturn := grossReturn.Sub(protocolFee).Sub(lpFee)
	if !netReturn.IsPositive() {
		return nil, types.ErrZeroAmount.Wrap("return fully consumed by fees")
	}

	if err := k.bankKeeper.SendCoinsFromAccountToModule(sdkCtx, sender, types.ModuleName,
		sdk.NewCoins(sdk.NewCoin(offerDenom, offerAmount))); err != nil {
		return nil, types.ErrInsufficientFunds.Wrapf("collecting offer: %v", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, recipient,
		sdk.NewCoins(sdk.NewCoin(askDenom, netReturn))); err != nil {
		return nil, fmt.Errorf("swap: pay return: %w", err)
	}

	if protocolFee.IsPositive() {
		if err := k.routeProtocolFee(ctx, pool.FeeConfig.FeeReceiver, askDenom, protocolFee); err != nil {
			return nil, err
		}
	}

	reserveIn = reserveIn.Add(offerAmount)
	reserveOut = reserveOut.Sub(netReturn).Sub(protocolFee)
	pool.SetReserves(offerDenom, reserveIn, reserveOut)

	poolLabel := fmt.Sprintf("%d", pool.Id)
	k.metrics.SwapsTotal.WithLabelValues(poolLabel, offerDenom, askDenom).Inc()
	k.metrics.SwapVolume.WithLabelValues(poolLabel, offerDenom).Add(floatFromInt(offerAmount))
	if protocolFee.IsPositive() {
		k.metrics.SwapFeesCollected.WithLabelValues(askDenom).Add(floatFromInt(protocolFee))
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, poolLabel),
			sdk.NewAttribute(sdk.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyReceiver, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyOfferAsset, fmt.Sprintf("%s%s", offerAmount, offerDenom)),
			sdk.NewAttribute(types.AttributeKeyAskAsset, askDenom),
			sdk.NewAttribute(types.AttributeKeyReturnAmount, netReturn.String()),
			sdk.NewAttribute(types.AttributeKeySpreadAmount, spread.String()),
			sdk.NewAttribute(types.AttributeKeyProtocolFee, protocolFee.String()),
			sdk.NewAttribute(types.AttributeKeyLpFee, lpFee.String()),
		),
	)

	return &SwapResult{
		AskDenom:     askDenom,
		ReturnAmount: netReturn,
		SpreadAmount: spread,
		ProtocolFee:  protocolFee,
		LpFee:        lpFee,
	}, nil
}

// routeProtocolFee sends the protocol cut to the pool's fee receiver when one
// is configured, otherwise accrues it for the module fee splitter.
func (k Keeper) routeProtocolFee(ctx context.Context, feeReceiver, denom string, amount math.Int) error {
	if feeReceiver == "" {
		return k.addCollectedFee(ctx, denom, amount)
	}

	receiver, err := sdk.AccAddressFromBech32(feeReceiver)
	if err != nil {
		return types.ErrInvalidFee.Wrapf("invalid fee receiver: %v", err)
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, receiver,
		sdk.NewCoins(sdk.NewCoin(denom, amount))); err != nil {
		return fmt.Errorf("routing protocol fee: %w", err)
	}
	return nil
}
