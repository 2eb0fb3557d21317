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

// twoPools seeds uatom/uusdc and ujuno/uusdc pools with 1M reserves each.
func twoPools(t *testing.T, k *keeper.Keeper, bank *testkeeper.MockBankKeeper, ctx sdk.Context) {
	t.Helper()
	seedPool(t, k, bank, ctx, addr(1), defaultCreateMsg())

	second := defaultCreateMsg()
	second.DenomA, second.DenomB = "ujuno", "uusdc"
	seedPool(t, k, bank, ctx, addr(1), second)
}

func TestMultiHopSwap(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	twoPools(t, k, bank, ctx)

	trader := addr(2)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	returnAmount, err := k.MultiHopSwap(ctx, &types.MsgMultiHopSwap{
		Sender: trader.String(),
		Operations: []types.SwapOperation{
			{OfferDenom: "uatom", AskDenom: "uusdc"},
			{OfferDenom: "uusdc", AskDenom: "ujuno"},
		},
		OfferAmount: math.NewInt(10_000),
	})
	require.NoError(t, err)

	// First hop nets 9900, feeding the second hop for 9802.
	require.Equal(t, math.NewInt(9802), returnAmount)
	require.Equal(t, math.NewInt(9802), bank.GetBalance(ctx, trader, "ujuno").Amount)
	require.True(t, bank.GetBalance(ctx, trader, "uatom").Amount.IsZero())
	require.True(t, bank.GetBalance(ctx, trader, "uusdc").Amount.IsZero())

	// Both pools moved.
	first, err := k.GetPoolByDenoms(ctx, "uatom", "uusdc")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_010_000), first.ReserveA)
	second, err := k.GetPoolByDenoms(ctx, "ujuno", "uusdc")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(990_198), second.ReserveA)
}

func TestMultiHopSwap_Receiver(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	twoPools(t, k, bank, ctx)

	trader, receiver := addr(2), addr(3)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	returnAmount, err := k.MultiHopSwap(ctx, &types.MsgMultiHopSwap{
		Sender: trader.String(),
		Operations: []types.SwapOperation{
			{OfferDenom: "uatom", AskDenom: "uusdc"},
			{OfferDenom: "uusdc", AskDenom: "ujuno"},
		},
		OfferAmount: math.NewInt(10_000),
		Receiver:    receiver.String(),
	})
	require.NoError(t, err)
	require.Equal(t, returnAmount, bank.GetBalance(ctx, receiver, "ujuno").Amount)
	require.True(t, bank.GetBalance(ctx, trader, "ujuno").Amount.IsZero())
}

func TestMultiHopSwap_MinimumReceiveRollsBack(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	twoPools(t, k, bank, ctx)

	trader := addr(2)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	minReceive := math.NewInt(10_000) // more than the route can return
	_, err := k.MultiHopSwap(ctx, &types.MsgMultiHopSwap{
		Sender: trader.String(),
		Operations: []types.SwapOperation{
			{OfferDenom: "uatom", AskDenom: "uusdc"},
			{OfferDenom: "uusdc", AskDenom: "ujuno"},
		},
		OfferAmount:    math.NewInt(10_000),
		MinimumReceive: &minReceive,
	})
	require.ErrorIs(t, err, types.ErrMinimumReceive)

	// The whole route rolled back: funds and both pools are untouched.
	require.Equal(t, math.NewInt(10_000), bank.GetBalance(ctx, trader, "uatom").Amount)
	require.True(t, bank.GetBalance(ctx, trader, "uusdc").Amount.IsZero())

	first, err := k.GetPoolByDenoms(ctx, "uatom", "uusdc")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), first.ReserveA)
	require.Equal(t, math.NewInt(1_000_000), first.ReserveB)
	second, err := k.GetPoolByDenoms(ctx, "ujuno", "uusdc")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), second.ReserveA)
}

func TestMultiHopSwap_MissingPool(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	twoPools(t, k, bank, ctx)

	trader := addr(2)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	_, err := k.MultiHopSwap(ctx, &types.MsgMultiHopSwap{
		Sender: trader.String(),
		Operations: []types.SwapOperation{
			{OfferDenom: "uatom", AskDenom: "uosmo"},
		},
		OfferAmount: math.NewInt(10_000),
	})
	require.ErrorIs(t, err, types.ErrInvalidSwapRoute)
}

func TestMultiHopSwap_FailedHopRollsBack(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	twoPools(t, k, bank, ctx)

	// Freeze the second pool so the route fails mid-way.
	breaker := addr(7)
	second, err := k.GetPoolByDenoms(ctx, "ujuno", "uusdc")
	require.NoError(t, err)
	second.CircuitBreaker = breaker.String()
	require.NoError(t, k.SetPool(ctx, second))
	require.NoError(t, k.Freeze(ctx, &types.MsgFreeze{Sender: breaker.String(), PoolId: second.Id}))

	trader := addr(2)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	_, err = k.MultiHopSwap(ctx, &types.MsgMultiHopSwap{
		Sender: trader.String(),
		Operations: []types.SwapOperation{
			{OfferDenom: "uatom", AskDenom: "uusdc"},
			{OfferDenom: "uusdc", AskDenom: "ujuno"},
		},
		OfferAmount: math.NewInt(10_000),
	})
	require.ErrorIs(t, err, types.ErrFrozen)

	// The first hop's state change was discarded with the route.
	first, err := k.GetPoolByDenoms(ctx, "uatom", "uusdc")
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), first.ReserveA)
	require.Equal(t, math.NewInt(10_000), bank.GetBalance(ctx, trader, "uatom").Amount)
}
