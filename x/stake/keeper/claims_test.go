package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/coral-dex/coral/testutil/keeper"
	"github.com/coral-dex/coral/x/stake/types"
)

func TestClaim_MaturityFlow(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)

	params := types.DefaultParams()
	params.UnbondingPeriods = []types.UnbondingPeriod{
		{Duration: 10 * day, Multiplier: math.LegacyOneDec()},
	}
	require.NoError(t, k.SetParams(ctx, params))

	mustBond(t, k, bank, ctx, user, 10*day, 100)
	releaseAt, err := k.Unbond(ctx, user, 10*day, math.NewInt(50))
	require.NoError(t, err)
	require.Equal(t, ctx.BlockTime().Unix()+10*day, releaseAt)

	// Before maturity the claim stays queued and nothing moves.
	released, err := k.Claim(ctx, user)
	require.NoError(t, err)
	require.True(t, released.IsZero())
	require.Len(t, k.GetClaims(ctx, user), 1)
	require.True(t, bank.GetBalance(ctx, user, "ucoral").Amount.IsZero())

	// Ten days later the claim releases and disappears.
	matured := ctx.WithBlockTime(testkeeper.GenesisTime.Add(10 * 24 * time.Hour))
	released, err = k.Claim(matured, user)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50), released)
	require.Empty(t, k.GetClaims(matured, user))
	require.Equal(t, math.NewInt(50), bank.GetBalance(matured, user, "ucoral").Amount)
	require.Equal(t, math.NewInt(50), bank.GetBalance(matured, k.GetModuleAddress(), "ucoral").Amount)

	// A second claim finds nothing left.
	released, err = k.Claim(matured, user)
	require.NoError(t, err)
	require.True(t, released.IsZero())
}

func TestClaim_PartialMaturity(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)

	mustBond(t, k, bank, ctx, user, week, 60)
	mustBond(t, k, bank, ctx, user, 2*week, 80)

	_, err := k.Unbond(ctx, user, week, math.NewInt(60))
	require.NoError(t, err)
	_, err = k.Unbond(ctx, user, 2*week, math.NewInt(80))
	require.NoError(t, err)
	require.Len(t, k.GetClaims(ctx, user), 2)

	// After one week only the shorter claim has matured.
	midway := ctx.WithBlockTime(testkeeper.GenesisTime.Add(7 * 24 * time.Hour))
	released, err := k.Claim(midway, user)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(60), released)

	remaining := k.GetClaims(midway, user)
	require.Len(t, remaining, 1)
	require.Equal(t, math.NewInt(80), remaining[0].Amount)
	require.Equal(t, math.NewInt(80), k.TotalUnbonding(midway))
}

func TestClaim_MultipleMaturedInOneCall(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user := addr(1)

	mustBond(t, k, bank, ctx, user, week, 100)
	_, err := k.Unbond(ctx, user, week, math.NewInt(30))
	require.NoError(t, err)
	_, err = k.Unbond(ctx, user, week, math.NewInt(20))
	require.NoError(t, err)

	later := ctx.WithBlockTime(testkeeper.GenesisTime.Add(8 * 24 * time.Hour))
	released, err := k.Claim(later, user)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50), released)
	require.Empty(t, k.GetClaims(later, user))
}

func TestClaim_NoClaims(t *testing.T) {
	k, _, ctx := testkeeper.StakeKeeper(t)

	released, err := k.Claim(ctx, addr(1))
	require.NoError(t, err)
	require.True(t, released.IsZero())
}
