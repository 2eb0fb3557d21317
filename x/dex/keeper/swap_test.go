package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/coral-dex/coral/testutil/keeper"
	"github.com/coral-dex/coral/x/dex/types"
)

func TestSwap_NoFees(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	pool := seedPool(t, k, bank, ctx, addr(1), defaultCreateMsg())

	trader := addr(2)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	result, err := k.Swap(ctx, &types.MsgSwap{
		Sender:      trader.String(),
		PoolId:      pool.Id,
		OfferDenom:  "uatom",
		OfferAmount: math.NewInt(10_000),
	})
	require.NoError(t, err)
	require.Equal(t, "uusdc", result.AskDenom)
	require.Equal(t, math.NewInt(9900), result.ReturnAmount)
	require.Equal(t, math.NewInt(100), result.SpreadAmount)
	require.True(t, result.ProtocolFee.IsZero())
	require.True(t, result.LpFee.IsZero())

	require.True(t, bank.GetBalance(ctx, trader, "uatom").Amount.IsZero())
	require.Equal(t, math.NewInt(9900), bank.GetBalance(ctx, trader, "uusdc").Amount)

	updated, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_010_000), updated.ReserveA)
	require.Equal(t, math.NewInt(990_100), updated.ReserveB)
}

func TestSwap_FeesSplitBetweenLpAndProtocol(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	msg := defaultCreateMsg()
	msg.FeeConfig = types.FeeConfig{ProtocolFeeBps: 10, LpFeeBps: 20}
	pool := seedPool(t, k, bank, ctx, addr(1), msg)

	trader := addr(2)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	result, err := k.Swap(ctx, &types.MsgSwap{
		Sender:      trader.String(),
		PoolId:      pool.Id,
		OfferDenom:  "uatom",
		OfferAmount: math.NewInt(10_000),
	})
	require.NoError(t, err)

	// Gross return 9900; 0.1% protocol and 0.2% LP cuts, floor-rounded.
	require.Equal(t, math.NewInt(9), result.ProtocolFee)
	require.Equal(t, math.NewInt(19), result.LpFee)
	require.Equal(t, math.NewInt(9872), result.ReturnAmount)

	// Protocol cut accrues for the splitter; LP cut stays in the reserves.
	require.Equal(t, math.NewInt(9), k.GetCollectedFee(ctx, "uusdc"))
	updated, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(990_119), updated.ReserveB)
}

func TestSwap_DirectFeeReceiver(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	feeReceiver := addr(8)
	msg := defaultCreateMsg()
	msg.FeeConfig = types.FeeConfig{ProtocolFeeBps: 100, FeeReceiver: feeReceiver.String()}
	pool := seedPool(t, k, bank, ctx, addr(1), msg)

	trader := addr(2)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	result, err := k.Swap(ctx, &types.MsgSwap{
		Sender:      trader.String(),
		PoolId:      pool.Id,
		OfferDenom:  "uatom",
		OfferAmount: math.NewInt(10_000),
	})
	require.NoError(t, err)

	// 1% of the gross 9900 goes straight to the receiver, nothing accrues.
	require.Equal(t, math.NewInt(99), result.ProtocolFee)
	require.Equal(t, math.NewInt(99), bank.GetBalance(ctx, feeReceiver, "uusdc").Amount)
	require.True(t, k.GetCollectedFee(ctx, "uusdc").IsZero())
}

func TestSwap_ReverseDirection(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	pool := seedPool(t, k, bank, ctx, addr(1), defaultCreateMsg())

	trader := addr(2)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(10_000))))

	result, err := k.Swap(ctx, &types.MsgSwap{
		Sender:      trader.String(),
		PoolId:      pool.Id,
		OfferDenom:  "uusdc",
		OfferAmount: math.NewInt(10_000),
	})
	require.NoError(t, err)
	require.Equal(t, "uatom", result.AskDenom)
	require.Equal(t, math.NewInt(9900), result.ReturnAmount)
}

func TestSwap_MaxSpread(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	pool := seedPool(t, k, bank, ctx, addr(1), defaultCreateMsg())

	trader := addr(2)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(500_000))))

	// A 500k offer against 1M reserves moves the price by a third; a 1%
	// bound must reject it.
	tight := math.LegacyMustNewDecFromStr("0.01")
	_, err := k.Swap(ctx, &types.MsgSwap{
		Sender:      trader.String(),
		PoolId:      pool.Id,
		OfferDenom:  "uatom",
		OfferAmount: math.NewInt(500_000),
		MaxSpread:   &tight,
	})
	require.ErrorIs(t, err, types.ErrMaxSpread)

	// Failed swaps leave the pool untouched.
	unchanged, err := k.GetPool(ctx, pool.Id)
	require.NoError(t, err)
	require.Equal(t, pool, unchanged)
}

func TestSwap_BeliefPrice(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	pool := seedPool(t, k, bank, ctx, addr(1), defaultCreateMsg())

	trader := addr(2)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	// Expecting twice the pool price fails even though the curve spread is
	// tiny.
	belief := math.LegacyMustNewDecFromStr("0.5")
	spread := math.LegacyMustNewDecFromStr("0.1")
	_, err := k.Swap(ctx, &types.MsgSwap{
		Sender:      trader.String(),
		PoolId:      pool.Id,
		OfferDenom:  "uatom",
		OfferAmount: math.NewInt(10_000),
		BeliefPrice: &belief,
		MaxSpread:   &spread,
	})
	require.ErrorIs(t, err, types.ErrMaxSpread)

	// At the honest price the same swap clears.
	belief = math.LegacyOneDec()
	_, err = k.Swap(ctx, &types.MsgSwap{
		Sender:      trader.String(),
		PoolId:      pool.Id,
		OfferDenom:  "uatom",
		OfferAmount: math.NewInt(10_000),
		BeliefPrice: &belief,
		MaxSpread:   &spread,
	})
	require.NoError(t, err)
}

func TestSwap_TradingNotStarted(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	msg := defaultCreateMsg()
	msg.TradingStarts = testkeeper.GenesisTime.Add(time.Hour).Unix()
	pool := seedPool(t, k, bank, ctx, addr(1), msg)

	trader := addr(2)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))

	swap := &types.MsgSwap{
		Sender:      trader.String(),
		PoolId:      pool.Id,
		OfferDenom:  "uatom",
		OfferAmount: math.NewInt(10_000),
	}
	_, err := k.Swap(ctx, swap)
	require.ErrorIs(t, err, types.ErrTradingNotStarted)

	// Once the launch time passes the pool trades normally.
	later := ctx.WithBlockTime(testkeeper.GenesisTime.Add(2 * time.Hour))
	_, err = k.Swap(later, swap)
	require.NoError(t, err)
}

func TestSwap_Frozen(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)

	breaker := addr(7)
	msg := defaultCreateMsg()
	msg.CircuitBreaker = breaker.String()
	pool := seedPool(t, k, bank, ctx, addr(1), msg)

	require.NoError(t, k.Freeze(ctx, &types.MsgFreeze{Sender: breaker.String(), PoolId: pool.Id}))

	trader := addr(2)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(10_000))))
	_, err := k.Swap(ctx, &types.MsgSwap{
		Sender:      trader.String(),
		PoolId:      pool.Id,
		OfferDenom:  "uatom",
		OfferAmount: math.NewInt(10_000),
	})
	require.ErrorIs(t, err, types.ErrFrozen)
}

func TestSwap_UnknownPoolAndDenom(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	pool := seedPool(t, k, bank, ctx, addr(1), defaultCreateMsg())

	trader := addr(2)
	bank.FundAccount(ctx, trader, sdk.NewCoins(sdk.NewCoin("ujuno", math.NewInt(10_000))))

	_, err := k.Swap(ctx, &types.MsgSwap{
		Sender:      trader.String(),
		PoolId:      99,
		OfferDenom:  "uatom",
		OfferAmount: math.NewInt(10_000),
	})
	require.ErrorIs(t, err, types.ErrPoolNotFound)

	_, err = k.Swap(ctx, &types.MsgSwap{
		Sender:      trader.String(),
		PoolId:      pool.Id,
		OfferDenom:  "ujuno",
		OfferAmount: math.NewInt(10_000),
	})
	require.ErrorIs(t, err, types.ErrInvalidAsset)
}
