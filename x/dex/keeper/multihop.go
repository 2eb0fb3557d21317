package keeper

import (
	"context"
	"fmt"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coral-dex/coral/x/dex/types"
)

// MultiHopSwap routes the offer through a sequence of pools. Each hop feeds
// its full return into the next, and the whole route settles atomically: any
// failed hop, or a final return below the requested minimum, discards every
// intermediate state change.
func (k Keeper) MultiHopSwap(ctx context.Context, msg *types.MsgMultiHopSwap) (math.Int, error) {
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return math.Int{}, types.ErrInvalidInput.Wrapf("invalid sender address: %v", err)
	}
	receiver := sender
	if msg.Receiver != "" {
		receiver, err = sdk.AccAddressFromBech32(msg.Receiver)
		if err != nil {
			return math.Int{}, types.ErrInvalidInput.Wrapf("invalid receiver address: %v", err)
		}
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}
	maxSpread := params.DefaultMaxSpread
	if msg.MaxSpread != nil {
		maxSpread = *msg.MaxSpread
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	cacheCtx, writeCache := sdkCtx.CacheContext()

	amount := msg.OfferAmount
	for i, op := range msg.Operations {
		pool, err := k.GetPoolByDenoms(cacheCtx, op.OfferDenom, op.AskDenom)
		if err != nil {
			return math.Int{}, types.ErrInvalidSwapRoute.Wrapf("hop %d: %v", i, err)
		}
		if !pool.HasDenom(op.OfferDenom) || !pool.HasDenom(op.AskDenom) {
			return math.Int{}, types.ErrInvalidSwapRoute.Wrapf(
				"hop %d: pool %d does not trade %s/%s", i, pool.Id, op.OfferDenom, op.AskDenom)
		}

		// Intermediate proceeds stay with the sender so each hop draws from
		// a real balance.
		result, err := k.executeSwap(cacheCtx, &pool, sender, sender, op.OfferDenom, amount, nil, maxSpread)
		if err != nil {
			return math.Int{}, fmt.Errorf("hop %d (%s -> %s): %w", i, op.OfferDenom, op.AskDenom, err)
		}
		if err := k.SetPool(cacheCtx, pool); err != nil {
			return math.Int{}, err
		}
		amount = result.ReturnAmount
	}

	if msg.MinimumReceive != nil && amount.LT(*msg.MinimumReceive) {
		return math.Int{}, types.ErrMinimumReceive.Wrapf(
			"final return %s below minimum %s", amount, msg.MinimumReceive)
	}

	finalDenom := msg.Operations[len(msg.Operations)-1].AskDenom
	if !receiver.Equals(sender) {
		if err := k.bankKeeper.SendCoins(cacheCtx, sender, receiver,
			sdk.NewCoins(sdk.NewCoin(finalDenom, amount))); err != nil {
			return math.Int{}, fmt.Errorf("MultiHopSwap: forward return: %w", err)
		}
	}

	writeCache()

	k.metrics.MultiHopSwaps.Observe(float64(len(msg.Operations)))

	route := make([]string, 0, len(msg.Operations)+1)
	route = append(route, msg.Operations[0].OfferDenom)
	for _, op := range msg.Operations {
		route = append(route, op.AskDenom)
	}
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeMultiHopSwap,
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender),
			sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
			sdk.NewAttribute(types.AttributeKeyOperations, strings.Join(route, " -> ")),
			sdk.NewAttribute(types.AttributeKeyReturnAmount, amount.String()),
		),
	)

	return amount, nil
}
