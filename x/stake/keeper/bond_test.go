package keeper_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/coral-dex/coral/testutil/keeper"
	"github.com/coral-dex/coral/x/stake/keeper"
	"github.com/coral-dex/coral/x/stake/types"
)

const (
	day  = int64(24 * 3600)
	week = 7 * day
)

func addr(b byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{b}, 20))
}

// mustBond funds the user with staked tokens and bonds them into the period.
func mustBond(t *testing.T, k *keeper.Keeper, bank *testkeeper.MockBankKeeper, ctx sdk.Context,
	user sdk.AccAddress, period int64, amount int64,
) math.Int {
	t.Helper()
	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	bank.FundAccount(ctx, user, sdk.NewCoins(sdk.NewCoin(params.StakedDenom, math.NewInt(amount))))
	points, err := k.Bond(ctx, user, period, math.NewInt(amount))
	require.NoError(t, err)
	return points
}

func TestBond(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)

	// 14 day period carries a 2x multiplier under default params.
	points := mustBond(t, k, bank, ctx, user, 2*week, 100)
	require.Equal(t, math.NewInt(200), points)

	entry, found := k.GetBondEntry(ctx, user, 2*week)
	require.True(t, found)
	require.Equal(t, math.NewInt(100), entry.Amount)
	require.Equal(t, math.NewInt(200), entry.Points)

	require.Equal(t, math.NewInt(200), k.GetPeriodTotal(ctx, 2*week))
	require.Equal(t, math.NewInt(200), k.UserPoints(ctx, user))
	require.Equal(t, math.NewInt(100), k.TotalStaked(ctx))

	// Tokens moved from the user into the module account.
	require.True(t, bank.GetBalance(ctx, user, "ucoral").Amount.IsZero())
	require.Equal(t, math.NewInt(100), bank.GetBalance(ctx, k.GetModuleAddress(), "ucoral").Amount)
}

func TestBond_Accumulates(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)

	mustBond(t, k, bank, ctx, user, week, 100)
	points := mustBond(t, k, bank, ctx, user, week, 50)
	require.Equal(t, math.NewInt(150), points)

	entry, found := k.GetBondEntry(ctx, user, week)
	require.True(t, found)
	require.Equal(t, math.NewInt(150), entry.Amount)
	require.Equal(t, math.NewInt(150), k.GetPeriodTotal(ctx, week))
}

func TestBond_UnknownPeriod(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)
	bank.FundAccount(ctx, user, sdk.NewCoins(sdk.NewCoin("ucoral", math.NewInt(100))))

	_, err := k.Bond(ctx, user, 3*day, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrUnknownPeriod)
}

func TestBond_ZeroAmount(t *testing.T) {
	k, _, ctx := testkeeper.StakeKeeper(t)

	_, err := k.Bond(ctx, addr(1), week, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

func TestBond_BelowMinBond(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)

	params := types.DefaultParams()
	params.MinBond = math.NewInt(1_000)
	require.NoError(t, k.SetParams(ctx, params))

	bank.FundAccount(ctx, user, sdk.NewCoins(sdk.NewCoin("ucoral", math.NewInt(500))))
	_, err := k.Bond(ctx, user, week, math.NewInt(500))
	require.ErrorIs(t, err, types.ErrBelowMinBond)
}

func TestRebond(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)

	// 100 tokens at 2x gives 200 points. Moving half down to 1x leaves
	// 100 points behind and adds 50, for 150 in total.
	points := mustBond(t, k, bank, ctx, user, 2*week, 100)
	require.Equal(t, math.NewInt(200), points)

	fromPoints, toPoints, err := k.Rebond(ctx, user, 2*week, week, math.NewInt(50))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100), fromPoints)
	require.Equal(t, math.NewInt(50), toPoints)
	require.Equal(t, math.NewInt(150), k.UserPoints(ctx, user))

	require.Equal(t, math.NewInt(100), k.GetPeriodTotal(ctx, 2*week))
	require.Equal(t, math.NewInt(50), k.GetPeriodTotal(ctx, week))

	// No tokens moved, only their weighting changed.
	require.Equal(t, math.NewInt(100), k.TotalStaked(ctx))
}

func TestRebond_FullDrainRemovesEntry(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)

	mustBond(t, k, bank, ctx, user, week, 100)
	fromPoints, toPoints, err := k.Rebond(ctx, user, week, 4*week, math.NewInt(100))
	require.NoError(t, err)
	require.True(t, fromPoints.IsZero())
	require.Equal(t, math.NewInt(300), toPoints)

	_, found := k.GetBondEntry(ctx, user, week)
	require.False(t, found)
	require.True(t, k.GetPeriodTotal(ctx, week).IsZero())
}

func TestRebond_InsufficientBond(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)

	mustBond(t, k, bank, ctx, user, week, 100)
	_, _, err := k.Rebond(ctx, user, week, 2*week, math.NewInt(101))
	require.ErrorIs(t, err, types.ErrInsufficientBond)

	// No bond at all in the source period.
	_, _, err = k.Rebond(ctx, user, 4*week, week, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrInsufficientBond)
}

func TestRebond_SamePeriod(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)

	mustBond(t, k, bank, ctx, user, week, 100)
	_, _, err := k.Rebond(ctx, user, week, week, math.NewInt(50))
	require.ErrorIs(t, err, types.ErrInvalidInput)
}

func TestUnbond(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)

	mustBond(t, k, bank, ctx, user, week, 100)
	releaseAt, err := k.Unbond(ctx, user, week, math.NewInt(50))
	require.NoError(t, err)
	require.Equal(t, ctx.BlockTime().Unix()+week, releaseAt)

	// Points drop immediately, the tokens wait in the claim queue.
	entry, found := k.GetBondEntry(ctx, user, week)
	require.True(t, found)
	require.Equal(t, math.NewInt(50), entry.Amount)
	require.Equal(t, math.NewInt(50), entry.Points)
	require.Equal(t, math.NewInt(50), k.GetPeriodTotal(ctx, week))

	claims := k.GetClaims(ctx, user)
	require.Len(t, claims, 1)
	require.Equal(t, math.NewInt(50), claims[0].Amount)
	require.Equal(t, releaseAt, claims[0].ReleaseAt)

	require.Equal(t, math.NewInt(50), k.TotalStaked(ctx))
	require.Equal(t, math.NewInt(50), k.TotalUnbonding(ctx))

	// Module account still holds everything until the claim matures.
	require.Equal(t, math.NewInt(100), bank.GetBalance(ctx, k.GetModuleAddress(), "ucoral").Amount)
}

func TestUnbond_FullDrainRemovesEntry(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)

	mustBond(t, k, bank, ctx, user, week, 100)
	_, err := k.Unbond(ctx, user, week, math.NewInt(100))
	require.NoError(t, err)

	_, found := k.GetBondEntry(ctx, user, week)
	require.False(t, found)
	require.True(t, k.GetPeriodTotal(ctx, week).IsZero())
	require.True(t, k.UserPoints(ctx, user).IsZero())
}

func TestUnbond_InsufficientBond(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)

	mustBond(t, k, bank, ctx, user, week, 100)
	_, err := k.Unbond(ctx, user, week, math.NewInt(101))
	require.ErrorIs(t, err, types.ErrInsufficientBond)

	_, err = k.Unbond(ctx, user, 2*week, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrInsufficientBond)
}

func TestPointsTruncation(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)

	params := types.DefaultParams()
	params.UnbondingPeriods = []types.UnbondingPeriod{
		{Duration: week, Multiplier: math.LegacyMustNewDecFromStr("1.5")},
	}
	require.NoError(t, k.SetParams(ctx, params))

	// 3 tokens at 1.5x truncate to 4 points, not 4.5.
	points := mustBond(t, k, bank, ctx, user, week, 3)
	require.Equal(t, math.NewInt(4), points)

	// Unbonding 1 recomputes from the remaining 2, leaving exactly 3.
	_, err := k.Unbond(ctx, user, week, math.NewInt(1))
	require.NoError(t, err)
	entry, _ := k.GetBondEntry(ctx, user, week)
	require.Equal(t, math.NewInt(3), entry.Points)
	require.Equal(t, math.NewInt(3), k.GetPeriodTotal(ctx, week))
}
