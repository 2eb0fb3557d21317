package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/coral-dex/coral/testutil/keeper"
	"github.com/coral-dex/coral/x/stake/keeper"
	"github.com/coral-dex/coral/x/stake/types"
)

// seedFlow creates a flow for the denom and funds it with amount emitted
// evenly over the duration, managed by mgr.
func seedFlow(t *testing.T, k *keeper.Keeper, bank *testkeeper.MockBankKeeper, ctx sdk.Context,
	mgr sdk.AccAddress, denom string, amount, duration int64,
) uint64 {
	t.Helper()
	flowID, err := k.CreateDistributionFlow(ctx, mgr, denom, mgr)
	require.NoError(t, err)
	bank.FundAccount(ctx, mgr, sdk.NewCoins(sdk.NewCoin(denom, math.NewInt(amount))))
	_, err = k.FundDistribution(ctx, mgr, flowID, math.NewInt(amount), duration)
	require.NoError(t, err)
	return flowID
}

func TestCreateDistributionFlow(t *testing.T) {
	k, _, ctx := testkeeper.StakeKeeper(t)
	mgr := addr(9)

	flowID, err := k.CreateDistributionFlow(ctx, mgr, "uusdc", mgr)
	require.NoError(t, err)
	require.Equal(t, uint64(1), flowID)

	flow, err := k.GetFlow(ctx, flowID)
	require.NoError(t, err)
	require.Equal(t, "uusdc", flow.RewardDenom)
	require.Equal(t, mgr.String(), flow.Manager)
	require.True(t, flow.RewardPerPoint.IsZero())
	require.True(t, flow.TotalFunded.IsZero())

	byDenom, err := k.GetFlowByDenom(ctx, "uusdc")
	require.NoError(t, err)
	require.Equal(t, flowID, byDenom.Id)

	// One flow per reward denom.
	_, err = k.CreateDistributionFlow(ctx, mgr, "uusdc", mgr)
	require.ErrorIs(t, err, types.ErrFlowExists)
}

func TestCreateDistributionFlow_Limit(t *testing.T) {
	k, _, ctx := testkeeper.StakeKeeper(t)
	mgr := addr(9)

	params := types.DefaultParams()
	params.MaxDistributionFlows = 1
	require.NoError(t, k.SetParams(ctx, params))

	_, err := k.CreateDistributionFlow(ctx, mgr, "uusdc", mgr)
	require.NoError(t, err)
	_, err = k.CreateDistributionFlow(ctx, mgr, "uatom", mgr)
	require.ErrorIs(t, err, types.ErrTooManyFlows)
}

func TestFundDistribution(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	mgr := addr(9)

	flowID := seedFlow(t, k, bank, ctx, mgr, "uusdc", 1_000, 100)

	flow, err := k.GetFlow(ctx, flowID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000), flow.TotalFunded)
	require.Equal(t, ctx.BlockTime().Unix(), flow.Schedule.StartTime)
	require.Equal(t, ctx.BlockTime().Unix()+100, flow.Schedule.EndTime)
	require.Equal(t, math.LegacyNewDec(10), flow.Schedule.Rate)

	// Funds moved into the module account.
	require.Equal(t, math.NewInt(1_000), bank.GetBalance(ctx, k.GetModuleAddress(), "uusdc").Amount)
}

func TestFundDistribution_Unauthorized(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	mgr, other := addr(9), addr(8)

	flowID, err := k.CreateDistributionFlow(ctx, mgr, "uusdc", mgr)
	require.NoError(t, err)

	bank.FundAccount(ctx, other, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(100))))
	_, err = k.FundDistribution(ctx, other, flowID, math.NewInt(100), 100)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = k.FundDistribution(ctx, mgr, uint64(42), math.NewInt(100), 100)
	require.ErrorIs(t, err, types.ErrFlowNotFound)

	bank.FundAccount(ctx, mgr, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(100))))
	_, err = k.FundDistribution(ctx, mgr, flowID, math.NewInt(100), 0)
	require.ErrorIs(t, err, types.ErrInvalidSchedule)
}

func TestRewardAccrualAndWithdrawal(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user, mgr := addr(1), addr(9)

	mustBond(t, k, bank, ctx, user, week, 100)
	seedFlow(t, k, bank, ctx, mgr, "uusdc", 1_000, 100)

	// Halfway through the window half the funds have dripped out, all of
	// them to the only staker.
	half := ctx.WithBlockTime(testkeeper.GenesisTime.Add(50 * time.Second))
	withdrawable, err := k.WithdrawableRewards(half, user)
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(500))), withdrawable)

	rewards, err := k.WithdrawRewards(half, user, user, user, 0)
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(500))), rewards)
	require.Equal(t, math.NewInt(500), bank.GetBalance(half, user, "uusdc").Amount)

	// Past the end of the window the rest is withdrawable, and a repeat
	// withdrawal pays nothing.
	after := ctx.WithBlockTime(testkeeper.GenesisTime.Add(200 * time.Second))
	rewards, err = k.WithdrawRewards(after, user, user, user, 0)
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(500))), rewards)

	rewards, err = k.WithdrawRewards(after, user, user, user, 0)
	require.NoError(t, err)
	require.True(t, rewards.IsZero())
}

func TestRewardSplitTracksPointChanges(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	alice, bob, mgr := addr(1), addr(2), addr(9)

	mustBond(t, k, bank, ctx, alice, week, 100)
	seedFlow(t, k, bank, ctx, mgr, "uusdc", 1_000, 100)

	// Bob joins halfway with equal points. The first half belongs to
	// alice alone, the second half splits evenly.
	half := ctx.WithBlockTime(testkeeper.GenesisTime.Add(50 * time.Second))
	mustBond(t, k, bank, half, bob, week, 100)

	after := ctx.WithBlockTime(testkeeper.GenesisTime.Add(100 * time.Second))
	aliceRewards, err := k.WithdrawableRewards(after, alice)
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(750))), aliceRewards)

	bobRewards, err := k.WithdrawableRewards(after, bob)
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(250))), bobRewards)
}

func TestRewardAccrual_PausesWithoutStakers(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user, mgr := addr(1), addr(9)

	// The whole window elapses with nobody bonded; nothing is emitted and
	// the funds stay undistributed.
	flowID := seedFlow(t, k, bank, ctx, mgr, "uusdc", 1_000, 100)

	after := ctx.WithBlockTime(testkeeper.GenesisTime.Add(200 * time.Second))
	mustBond(t, k, bank, after, user, week, 100)

	withdrawable, err := k.WithdrawableRewards(after, user)
	require.NoError(t, err)
	require.True(t, withdrawable.IsZero())

	flow, err := k.GetFlow(after, flowID)
	require.NoError(t, err)
	require.True(t, flow.TotalDistributed.IsZero())

	// Refunding folds the stranded 1000 in with the new 1000 over a
	// fresh window, now with a staker to receive it.
	bank.FundAccount(after, mgr, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(1_000))))
	_, err = k.FundDistribution(after, mgr, flowID, math.NewInt(1_000), 100)
	require.NoError(t, err)

	flow, err = k.GetFlow(after, flowID)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDec(20), flow.Schedule.Rate)

	end := ctx.WithBlockTime(testkeeper.GenesisTime.Add(300 * time.Second))
	withdrawable, err = k.WithdrawableRewards(end, user)
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(2_000))), withdrawable)
}

func TestRewardAccrual_CappedByFunding(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user, mgr := addr(1), addr(9)

	mustBond(t, k, bank, ctx, user, week, 100)
	flowID := seedFlow(t, k, bank, ctx, mgr, "uusdc", 1_000, 100)

	// Far past the schedule end, exactly the funded amount has been
	// distributed and not a token more.
	after := ctx.WithBlockTime(testkeeper.GenesisTime.Add(time.Hour))
	rewards, err := k.WithdrawRewards(after, user, user, user, 0)
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(1_000))), rewards)

	flow, err := k.GetFlow(after, flowID)
	require.NoError(t, err)
	require.Equal(t, flow.TotalFunded, flow.TotalDistributed)
}

func TestWithdrawRewards_SingleFlow(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	user, mgr := addr(1), addr(9)

	mustBond(t, k, bank, ctx, user, week, 100)
	usdcFlow := seedFlow(t, k, bank, ctx, mgr, "uusdc", 1_000, 100)
	seedFlow(t, k, bank, ctx, mgr, "uatom", 500, 100)

	after := ctx.WithBlockTime(testkeeper.GenesisTime.Add(100 * time.Second))
	rewards, err := k.WithdrawRewards(after, user, user, user, usdcFlow)
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(1_000))), rewards)

	// The other flow stays untouched until withdrawn from.
	require.True(t, bank.GetBalance(after, user, "uatom").Amount.IsZero())

	rewards, err = k.WithdrawRewards(after, user, user, user, 0)
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(500))), rewards)
}

func TestWithdrawRewards_Delegate(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	owner, delegate, receiver, mgr := addr(1), addr(2), addr(3), addr(9)

	mustBond(t, k, bank, ctx, owner, week, 100)
	seedFlow(t, k, bank, ctx, mgr, "uusdc", 1_000, 100)

	after := ctx.WithBlockTime(testkeeper.GenesisTime.Add(100 * time.Second))

	// Without a registered delegate the withdrawal is refused.
	_, err := k.WithdrawRewards(after, delegate, owner, receiver, 0)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, k.DelegateWithdrawal(after, owner, delegate))
	rewards, err := k.WithdrawRewards(after, delegate, owner, receiver, 0)
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(1_000))), rewards)
	require.Equal(t, math.NewInt(1_000), bank.GetBalance(after, receiver, "uusdc").Amount)
	require.True(t, bank.GetBalance(after, owner, "uusdc").Amount.IsZero())
}

func TestDelegateWithdrawal_ReplacesAndRejectsSelf(t *testing.T) {
	k, _, ctx := testkeeper.StakeKeeper(t)
	owner, first, second := addr(1), addr(2), addr(3)

	require.ErrorIs(t, k.DelegateWithdrawal(ctx, owner, owner), types.ErrInvalidInput)

	require.NoError(t, k.DelegateWithdrawal(ctx, owner, first))
	require.NoError(t, k.DelegateWithdrawal(ctx, owner, second))

	delegate, found := k.GetDelegate(ctx, owner)
	require.True(t, found)
	require.Equal(t, second, delegate)
}

func TestFractionalRewardsStayPending(t *testing.T) {
	k, bank, ctx := testkeeper.StakeKeeper(t)
	alice, bob, carol, mgr := addr(1), addr(2), addr(3), addr(9)

	// Three equal stakers share 100 tokens; each is owed 33.33..., so a
	// withdrawal pays 33 and keeps the fraction pending.
	mustBond(t, k, bank, ctx, alice, week, 100)
	mustBond(t, k, bank, ctx, bob, week, 100)
	mustBond(t, k, bank, ctx, carol, week, 100)
	seedFlow(t, k, bank, ctx, mgr, "uusdc", 100, 100)

	after := ctx.WithBlockTime(testkeeper.GenesisTime.Add(100 * time.Second))
	rewards, err := k.WithdrawRewards(after, alice, alice, alice, 0)
	require.NoError(t, err)
	require.Equal(t, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(33))), rewards)

	rewards, err = k.WithdrawRewards(after, alice, alice, alice, 0)
	require.NoError(t, err)
	require.True(t, rewards.IsZero())
}
