package keeper_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/coral-dex/coral/testutil/keeper"
	"github.com/coral-dex/coral/x/dex/keeper"
	"github.com/coral-dex/coral/x/dex/types"
)

func addr(b byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{b}, 20))
}

// seedPool funds the creator and creates a pool, returning the stored pool.
func seedPool(t *testing.T, k *keeper.Keeper, bank *testkeeper.MockBankKeeper, ctx sdk.Context,
	creator sdk.AccAddress, msg types.MsgCreatePool,
) types.Pool {
	t.Helper()
	bank.FundAccount(ctx, creator, sdk.NewCoins(
		sdk.NewCoin(msg.DenomA, msg.AmountA),
		sdk.NewCoin(msg.DenomB, msg.AmountB),
	))
	msg.Creator = creator.String()
	pool, _, err := k.CreatePool(ctx, &msg)
	require.NoError(t, err)
	return pool
}

func defaultCreateMsg() types.MsgCreatePool {
	return types.MsgCreatePool{
		DenomA:  "uatom",
		DenomB:  "uusdc",
		AmountA: math.NewInt(1_000_000),
		AmountB: math.NewInt(1_000_000),
		Curve:   types.CurveXYK,
	}
}

func TestCreatePool(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	creator := addr(1)

	pool := seedPool(t, k, bank, ctx, creator, defaultCreateMsg())

	require.Equal(t, uint64(1), pool.Id)
	require.Equal(t, "uatom", pool.DenomA)
	require.Equal(t, "uusdc", pool.DenomB)
	require.Equal(t, types.LPDenom(1), pool.LpDenom)
	require.Equal(t, math.NewInt(1_000_000), pool.TotalShares)
	require.Equal(t, creator.String(), pool.Owner)

	// The creator holds everything but the locked minimum.
	lpBalance := bank.GetBalance(ctx, creator, pool.LpDenom)
	require.Equal(t, math.NewInt(999_000), lpBalance.Amount)
	locked := bank.GetBalance(ctx, k.GetModuleAddress(), pool.LpDenom)
	require.Equal(t, types.MinimumLiquidityAmount, locked.Amount)

	// The deposit moved into the module account.
	require.Equal(t, math.NewInt(1_000_000), bank.GetBalance(ctx, k.GetModuleAddress(), "uatom").Amount)

	// Lookup works by id and by pair, in either denom order.
	stored, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, pool, stored)
	byPair, err := k.GetPoolByDenoms(ctx, "uusdc", "uatom")
	require.NoError(t, err)
	require.Equal(t, pool.Id, byPair.Id)
}

func TestCreatePool_SortsDenoms(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	msg := defaultCreateMsg()
	msg.DenomA, msg.DenomB = "uusdc", "uatom"
	msg.AmountA, msg.AmountB = math.NewInt(2_000_000), math.NewInt(1_000_000)

	pool := seedPool(t, k, bank, ctx, addr(1), msg)
	require.Equal(t, "uatom", pool.DenomA)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveA)
	require.Equal(t, math.NewInt(2_000_000), pool.ReserveB)
}

func TestCreatePool_DuplicatePair(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	seedPool(t, k, bank, ctx, addr(1), defaultCreateMsg())

	msg := defaultCreateMsg()
	msg.DenomA, msg.DenomB = "uusdc", "uatom" // reversed order hits the same pair
	creator := addr(2)
	bank.FundAccount(ctx, creator, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1_000_000)),
		sdk.NewCoin("uusdc", math.NewInt(1_000_000))))
	msg.Creator = creator.String()
	_, _, err := k.CreatePool(ctx, &msg)
	require.ErrorIs(t, err, types.ErrPoolAlreadyExists)
}

func TestCreatePool_BelowMinimumLiquidity(t *testing.T) {
	k, _, ctx := testkeeper.DexKeeper(t)

	msg := defaultCreateMsg()
	msg.Creator = addr(1).String()
	msg.AmountA = math.NewInt(500)
	_, _, err := k.CreatePool(ctx, &msg)
	require.ErrorIs(t, err, types.ErrMinimumLiquidity)

	// Seeds above the per-side minimum but whose geometric mean does not
	// clear the locked share amount are also rejected.
	msg = defaultCreateMsg()
	msg.Creator = addr(1).String()
	msg.AmountA = math.NewInt(1000)
	msg.AmountB = math.NewInt(1000)
	_, _, err = k.CreatePool(ctx, &msg)
	require.ErrorIs(t, err, types.ErrMinimumLiquidity)
}

func TestCreatePool_Stable(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	msg := defaultCreateMsg()
	msg.DenomA, msg.DenomB = "uusdc", "uusdt"
	msg.Curve = types.CurveStable
	msg.Amp = 100

	pool := seedPool(t, k, bank, ctx, addr(1), msg)
	require.Equal(t, types.CurveStable, pool.Curve)
	require.Equal(t, uint64(100), pool.Amp)
	// A balanced stable seed mints the sum of the deposits.
	require.Equal(t, math.NewInt(2_000_000), pool.TotalShares)
}

func TestCreatePool_InsufficientFunds(t *testing.T) {
	k, _, ctx := testkeeper.DexKeeper(t)

	msg := defaultCreateMsg()
	msg.Creator = addr(9).String() // never funded
	_, _, err := k.CreatePool(ctx, &msg)
	require.ErrorIs(t, err, types.ErrInsufficientFunds)
}

func TestPoolIDCounter(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	require.Equal(t, uint64(1), k.PeekNextPoolID(ctx))
	seedPool(t, k, bank, ctx, addr(1), defaultCreateMsg())

	msg := defaultCreateMsg()
	msg.DenomB = "ujuno"
	second := seedPool(t, k, bank, ctx, addr(1), msg)
	require.Equal(t, uint64(2), second.Id)
	require.Equal(t, uint64(3), k.PeekNextPoolID(ctx))

	pools, err := k.GetAllPools(ctx)
	require.NoError(t, err)
	require.Len(t, pools, 2)
	require.Equal(t, uint64(1), pools[0].Id)
	require.Equal(t, uint64(2), pools[1].Id)
}
