package ante

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	dexkeeper "github.com/coral-dex/coral/x/dex/keeper"
	dextypes "github.com/coral-dex/coral/x/dex/types"
)

// DexDecorator rejects dex transactions that are certain to fail before they
// reach the message server. Pool existence, frozen state and denom membership
// are cheap stateful checks worth doing at CheckTx time so doomed swaps never
// enter the mempool.
type DexDecorator struct {
	keeper dexkeeper.Keeper
}

// NewDexDecorator creates a new DexDecorator
func NewDexDecorator(keeper dexkeeper.Keeper) DexDecorator {
	return DexDecorator{
		keeper: keeper,
	}
}

// AnteHandle implements the AnteDecorator interface
func (dd DexDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip validation during simulation
	if simulate {
		return next(ctx, tx, simulate)
	}

	for _, msg := range tx.GetMsgs() {
		switch msg := msg.(type) {
		case *dextypes.MsgSwap:
			if err := dd.validateSwap(ctx, msg); err != nil {
				return ctx, err
			}
		case *dextypes.MsgProvideLiquidity:
			if err := dd.validateProvideLiquidity(ctx, msg); err != nil {
				return ctx, err
			}
		case *dextypes.MsgWithdrawLiquidity:
			if _, err := dd.keeper.GetPool(ctx, msg.PoolId); err != nil {
				return ctx, err
			}
		}
	}

	return next(ctx, tx, simulate)
}

func (dd DexDecorator) validateSwap(ctx sdk.Context, msg *dextypes.MsgSwap) error {
	pool, err := dd.keeper.GetPool(ctx, msg.PoolId)
	if err != nil {
		return err
	}

	if pool.Frozen {
		return dextypes.ErrFrozen.Wrapf("pool %d accepts only withdrawals", pool.Id)
	}

	if !pool.HasDenom(msg.OfferDenom) {
		return dextypes.ErrInvalidAsset.Wrapf("pool %d does not hold %s", pool.Id, msg.OfferDenom)
	}

	return nil
}

func (dd DexDecorator) validateProvideLiquidity(ctx sdk.Context, msg *dextypes.MsgProvideLiquidity) error {
	pool, err := dd.keeper.GetPool(ctx, msg.PoolId)
	if err != nil {
		return err
	}

	if pool.Frozen {
		return dextypes.ErrFrozen.Wrapf("pool %d accepts only withdrawals", pool.Id)
	}

	return nil
}
