package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/coral-dex/coral/testutil/keeper"
	"github.com/coral-dex/coral/x/dex/keeper"
	"github.com/coral-dex/coral/x/dex/types"
)

// TestInvariants_HoldAfterOperations runs a realistic operation sequence and
// checks that every invariant still holds afterwards.
func TestInvariants_HoldAfterOperations(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	msg := defaultCreateMsg()
	msg.FeeConfig = types.FeeConfig{ProtocolFeeBps: 30, LpFeeBps: 20}
	pool := seedPool(t, k, bank, ctx, addr(1), msg)

	provider := addr(2)
	bank.FundAccount(ctx, provider, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(100_000)),
		sdk.NewCoin("uusdc", math.NewInt(100_000)),
	))
	shares, err := k.ProvideLiquidity(ctx, &types.MsgProvideLiquidity{
		Sender:  provider.String(),
		PoolId:  pool.Id,
		AmountA: math.NewInt(100_000),
		AmountB: math.NewInt(100_000),
	})
	require.NoError(t, err)

	trader := addr(3)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(50_000))))
	_, err = k.Swap(ctx, &types.MsgSwap{
		Sender:      trader.String(),
		PoolId:      pool.Id,
		OfferDenom:  "uatom",
		OfferAmount: math.NewInt(50_000),
	})
	require.NoError(t, err)

	_, _, err = k.WithdrawLiquidity(ctx, &types.MsgWithdrawLiquidity{
		Sender: provider.String(),
		PoolId: pool.Id,
		Shares: shares.QuoRaw(2),
	})
	require.NoError(t, err)

	msg2, err2 := keeper.AllInvariants(*k)(ctx)
	require.False(t, err2, msg2)
}

func TestLpSupplyInvariant_DetectsMismatch(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	pool := seedPool(t, k, bank, ctx, addr(1), defaultCreateMsg())

	// Mint LP tokens behind the keeper's back so the recorded share total no
	// longer matches the bank supply.
	require.NoError(t, bank.MintCoins(ctx, types.ModuleName,
		sdk.NewCoins(sdk.NewCoin(pool.LpDenom, math.NewInt(1)))))

	msg, broken := keeper.LpSupplyInvariant(*k)(ctx)
	require.True(t, broken, msg)
}

func TestModuleBalanceInvariant_DetectsShortfall(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	seedPool(t, k, bank, ctx, addr(1), defaultCreateMsg())

	// Drain part of the reserves straight out of the module account.
	require.NoError(t, bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr(9),
		sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(1)))))

	msg, broken := keeper.ModuleBalanceInvariant(*k)(ctx)
	require.True(t, broken, msg)
}
