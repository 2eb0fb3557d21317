package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coral-dex/coral/x/stake/types"
)

// nextFlowID returns the next flow ID and increments the counter
func (k Keeper) nextFlowID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.FlowCountKey)

	flowID := uint64(1)
	if bz != nil {
		flowID = binary.BigEndian.Uint64(bz)
	}

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, flowID+1)
	store.Set(types.FlowCountKey, next)
	return flowID
}

// SetNextFlowID sets the flow ID counter; used by genesis import.
func (k Keeper) SetNextFlowID(ctx context.Context, flowID uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, flowID)
	k.getStore(ctx).Set(types.FlowCountKey, bz)
}

// PeekNextFlowID returns the counter without incrementing it
func (k Keeper) PeekNextFlowID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.FlowCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// GetFlow retrieves a distribution flow by id.
// Returns ErrFlowNotFound if the flow does not exist.
func (k Keeper) GetFlow(ctx context.Context, flowID uint64) (types.DistributionFlow, error) {
	bz := k.getStore(ctx).Get(types.FlowKey(flowID))
	if bz == nil {
		return types.DistributionFlow{}, types.ErrFlowNotFound.Wrapf("flow %d not found", flowID)
	}
	var flow types.DistributionFlow
	if err := json.Unmarshal(bz, &flow); err != nil {
		return types.DistributionFlow{}, fmt.Errorf("GetFlow: unmarshal flow %d: %w", flowID, err)
	}
	return flow, nil
}

// SetFlow saves a distribution flow to the store
func (k Keeper) SetFlow(ctx context.Context, flow types.DistributionFlow) error {
	bz, err := json.Marshal(flow)
	if err != nil {
		return fmt.Errorf("SetFlow: marshal flow %d: %w", flow.Id, err)
	}
	k.getStore(ctx).Set(types.FlowKey(flow.Id), bz)
	return nil
}

// GetFlowByDenom retrieves the flow distributing the given reward denom
func (k Keeper) GetFlowByDenom(ctx context.Context, denom string) (types.DistributionFlow, error) {
	bz := k.getStore(ctx).Get(types.FlowByDenomKey(denom))
	if bz == nil {
		return types.DistributionFlow{}, types.ErrFlowNotFound.Wrapf("no flow for denom %s", denom)
	}
	return k.GetFlow(ctx, binary.BigEndian.Uint64(bz))
}

// setFlowByDenomIndex indexes a flow id under its reward denom
func (k Keeper) setFlowByDenomIndex(ctx context.Context, denom string, flowID uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, flowID)
	k.getStore(ctx).Set(types.FlowByDenomKey(denom), bz)
}

// IterateFlows walks all flows in id order until the callback stops it
func (k Keeper) IterateFlows(ctx context.Context, cb func(flow types.DistributionFlow) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.FlowKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var flow types.DistributionFlow
		if err := json.Unmarshal(iterator.Value(), &flow); err != nil {
			return fmt.Errorf("IterateFlows: unmarshal: %w", err)
		}
		if cb(flow) {
			break
		}
	}
	return nil
}

// GetAllFlows returns all distribution flows in id order
func (k Keeper) GetAllFlows(ctx context.Context) ([]types.DistributionFlow, error) {
	var flows []types.DistributionFlow
	err := k.IterateFlows(ctx, func(flow types.DistributionFlow) bool {
		flows = append(flows, flow)
		return false
	})
	return flows, err
}

// GetRewardSnapshot retrieves a user's settlement snapshot against one flow
func (k Keeper) GetRewardSnapshot(ctx context.Context, addr sdk.AccAddress, flowID uint64) (types.RewardSnapshot, bool) {
	bz := k.getStore(ctx).Get(types.RewardSnapshotKey(addr, flowID))
	if bz == nil {
		return types.RewardSnapshot{}, false
	}
	var snap types.RewardSnapshot
	if err := json.Unmarshal(bz, &snap); err != nil {
		panic(fmt.Errorf("GetRewardSnapshot: unmarshal: %w", err))
	}
	return snap, true
}

// SetRewardSnapshot saves a user's settlement snapshot against one flow
func (k Keeper) SetRewardSnapshot(ctx context.Context, addr sdk.AccAddress, flowID uint64, snap types.RewardSnapshot) error {
	bz, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("SetRewardSnapshot: marshal: %w", err)
	}
	k.getStore(ctx).Set(types.RewardSnapshotKey(addr, flowID), bz)
	return nil
}

// IterateRewardSnapshots walks every stored snapshot until the callback stops it
func (k Keeper) IterateRewardSnapshots(ctx context.Context, cb func(addr sdk.AccAddress, flowID uint64, snap types.RewardSnapshot) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.RewardSnapshotKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		key := iterator.Key()[len(types.RewardSnapshotKeyPrefix):]
		addrLen := int(key[0])
		addr := sdk.AccAddress(key[1 : 1+addrLen])
		flowID := binary.BigEndian.Uint64(key[1+addrLen:])

		var snap types.RewardSnapshot
		if err := json.Unmarshal(iterator.Value(), &snap); err != nil {
			return fmt.Errorf("IterateRewardSnapshots: unmarshal: %w", err)
		}
		if cb(addr, flowID, snap) {
			break
		}
	}
	return nil
}

// syncFlow advances one flow's accumulator to now. Emission only happens
// inside the schedule window and never beyond the funded balance. With zero
// points bonded the window elapses without emitting, leaving the funds for a
// later refunding.
func syncFlow(flow *types.DistributionFlow, now int64, totalPoints math.Int) {
	from := flow.LastUpdate
	if flow.Schedule.StartTime > from {
		from = flow.Schedule.StartTime
	}
	to := now
	if flow.Schedule.EndTime < to {
		to = flow.Schedule.EndTime
	}

	if to > from && flow.Schedule.Rate.IsPositive() && totalPoints.IsPositive() {
		emitted := flow.Schedule.Rate.MulInt64(to - from)
		remaining := math.LegacyNewDecFromInt(flow.TotalFunded.Sub(flow.TotalDistributed))
		if emitted.GT(remaining) {
			emitted = remaining
		}
		if emitted.IsPositive() {
			perPoint := emitted.QuoInt(totalPoints)
			flow.RewardPerPoint = flow.RewardPerPoint.Add(perPoint)
			flow.TotalDistributed = flow.TotalDistributed.Add(perPoint.MulInt(totalPoints).TruncateInt())
		}
	}
	if now > flow.LastUpdate {
		flow.LastUpdate = now
	}
}

// syncFlows advances every flow's accumulator to the current block time
func (k Keeper) syncFlows(ctx context.Context) error {
	flows, err := k.GetAllFlows(ctx)
	if err != nil {
		return err
	}
	if len(flows) == 0 {
		return nil
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	totalPoints := k.TotalPoints(ctx)
	for i := range flows {
		syncFlow(&flows[i], now, totalPoints)
		if err := k.SetFlow(ctx, flows[i]); err != nil {
			return err
		}
	}
	return nil
}

// settleUser syncs all flows and banks the user's accrued rewards into their
// snapshots. Must run before any change to the user's points.
func (k Keeper) settleUser(ctx context.Context, addr sdk.AccAddress) error {
	if err := k.syncFlows(ctx); err != nil {
		return err
	}
	flows, err := k.GetAllFlows(ctx)
	if err != nil {
		return err
	}
	if len(flows) == 0 {
		return nil
	}

	points := k.UserPoints(ctx, addr)
	for _, flow := range flows {
		// A missing snapshot means the user was bonded before the flow
		// existed; they accrue from the accumulator's zero start.
		snap, found := k.GetRewardSnapshot(ctx, addr, flow.Id)
		if !found {
			snap = types.NewRewardSnapshot(math.LegacyZeroDec())
		}
		diff := flow.RewardPerPoint.Sub(snap.Seen)
		if diff.IsPositive() && points.IsPositive() {
			snap.Pending = snap.Pending.Add(diff.MulInt(points))
		}
		snap.Seen = flow.RewardPerPoint
		if err := k.SetRewardSnapshot(ctx, addr, flow.Id, snap); err != nil {
			return err
		}
	}
	return nil
}

// CreateDistributionFlow registers a new reward stream for a denom that has
// none yet. The flow starts dormant; FundDistribution sets its schedule.
func (k Keeper) CreateDistributionFlow(ctx context.Context, sender sdk.AccAddress, rewardDenom string, manager sdk.AccAddress) (uint64, error) {
	if err := sdk.ValidateDenom(rewardDenom); err != nil {
		return 0, types.ErrInvalidInput.Wrapf("invalid reward denom: %s", err)
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	if _, err := k.GetFlowByDenom(ctx, rewardDenom); err == nil {
		return 0, types.ErrFlowExists.Wrapf("denom %s already has a distribution flow", rewardDenom)
	}
	flows, err := k.GetAllFlows(ctx)
	if err != nil {
		return 0, err
	}
	if uint32(len(flows)) >= params.MaxDistributionFlows {
		return 0, types.ErrTooManyFlows.Wrapf("flow limit of %d reached", params.MaxDistributionFlows)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	flow := types.DistributionFlow{
		Id:          k.nextFlowID(ctx),
		RewardDenom: rewardDenom,
		Manager:     manager.String(),
		Schedule: types.EmissionSchedule{
			Rate: math.LegacyZeroDec(),
		},
		RewardPerPoint:   math.LegacyZeroDec(),
		LastUpdate:       sdkCtx.BlockTime().Unix(),
		TotalFunded:      math.ZeroInt(),
		TotalDistributed: math.ZeroInt(),
	}
	if err := k.SetFlow(ctx, flow); err != nil {
		return 0, err
	}
	k.setFlowByDenomIndex(ctx, rewardDenom, flow.Id)

	k.metrics.FlowsCreated.Inc()

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeCreateFlow,
		sdk.NewAttribute(types.AttributeKeySender, sender.String()),
		sdk.NewAttribute(types.AttributeKeyFlowID, strconv.FormatUint(flow.Id, 10)),
		sdk.NewAttribute(types.AttributeKeyDenom, rewardDenom),
		sdk.NewAttribute(types.AttributeKeyManager, flow.Manager),
	))
	return flow.Id, nil
}

// FundDistribution adds reward funds to a flow and restarts its schedule:
// whatever was left undistributed is folded together with the new amount and
// spread evenly over a fresh window starting now.
func (k Keeper) FundDistribution(ctx context.Context, sender sdk.AccAddress, flowID uint64, amount math.Int, duration int64) (int64, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return 0, types.ErrZeroAmount.Wrap("funding amount must be positive")
	}
	if duration <= 0 {
		return 0, types.ErrInvalidSchedule.Wrap("funding duration must be positive")
	}
	flow, err := k.GetFlow(ctx, flowID)
	if err != nil {
		return 0, err
	}
	if flow.Manager != sender.String() {
		return 0, types.ErrUnauthorized.Wrapf("only the flow manager may fund flow %d", flowID)
	}

	if err := k.syncFlows(ctx); err != nil {
		return 0, err
	}
	flow, err = k.GetFlow(ctx, flowID)
	if err != nil {
		return 0, err
	}

	coins := sdk.NewCoins(sdk.NewCoin(flow.RewardDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, coins); err != nil {
		return 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	now := sdkCtx.BlockTime().Unix()
	flow.TotalFunded = flow.TotalFunded.Add(amount)
	remaining := flow.TotalFunded.Sub(flow.TotalDistributed)
	flow.Schedule = types.EmissionSchedule{
		StartTime: now,
		EndTime:   now + duration,
		Rate:      math.LegacyNewDecFromInt(remaining).QuoInt64(duration),
	}
	flow.LastUpdate = now
	if err := k.SetFlow(ctx, flow); err != nil {
		return 0, err
	}

	k.metrics.FlowsFunded.WithLabelValues(flow.RewardDenom).Add(float64(amount.Int64()))

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeFundFlow,
		sdk.NewAttribute(types.AttributeKeySender, sender.String()),
		sdk.NewAttribute(types.AttributeKeyFlowID, strconv.FormatUint(flowID, 10)),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(types.AttributeKeyEndTime, strconv.FormatInt(flow.Schedule.EndTime, 10)),
	))
	return flow.Schedule.EndTime, nil
}

// GetDelegate returns the account authorized to withdraw the owner's rewards
func (k Keeper) GetDelegate(ctx context.Context, owner sdk.AccAddress) (sdk.AccAddress, bool) {
	bz := k.getStore(ctx).Get(types.DelegateKey(owner))
	if bz == nil {
		return nil, false
	}
	return sdk.AccAddress(bz), true
}

// SetDelegate stores the owner's single withdrawal delegate
func (k Keeper) SetDelegate(ctx context.Context, owner, delegate sdk.AccAddress) {
	k.getStore(ctx).Set(types.DelegateKey(owner), delegate.Bytes())
}

// IterateDelegates walks every stored delegation until the callback stops it
func (k Keeper) IterateDelegates(ctx context.Context, cb func(owner, delegate sdk.AccAddress) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.DelegateKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		owner := sdk.AccAddress(iterator.Key()[len(types.DelegateKeyPrefix):])
		if cb(owner, sdk.AccAddress(iterator.Value())) {
			break
		}
	}
}

// DelegateWithdrawal authorizes one account to withdraw the sender's rewards
// on their behalf. A later call replaces the previous delegate.
func (k Keeper) DelegateWithdrawal(ctx context.Context, sender, delegate sdk.AccAddress) error {
	if sender.Equals(delegate) {
		return types.ErrInvalidInput.Wrap("cannot delegate withdrawal to self")
	}
	k.SetDelegate(ctx, sender, delegate)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDelegateWithdrawal,
		sdk.NewAttribute(types.AttributeKeySender, sender.String()),
		sdk.NewAttribute(types.AttributeKeyDelegate, delegate.String()),
	))
	return nil
}

// WithdrawRewards settles and pays out the owner's accrued rewards, from one
// flow or from all of them, to the receiver. The sender must be the owner or
// the owner's registered delegate. Fractional remainders below one base unit
// stay pending.
func (k Keeper) WithdrawRewards(ctx context.Context, sender, owner, receiver sdk.AccAddress, flowID uint64) (sdk.Coins, error) {
	if !sender.Equals(owner) {
		delegate, found := k.GetDelegate(ctx, owner)
		if !found || !delegate.Equals(sender) {
			return nil, types.ErrUnauthorized.Wrapf("%s is not the withdrawal delegate of %s", sender, owner)
		}
	}

	if err := k.settleUser(ctx, owner); err != nil {
		return nil, err
	}

	var flows []types.DistributionFlow
	if flowID != 0 {
		flow, err := k.GetFlow(ctx, flowID)
		if err != nil {
			return nil, err
		}
		flows = []types.DistributionFlow{flow}
	} else {
		var err error
		flows, err = k.GetAllFlows(ctx)
		if err != nil {
			return nil, err
		}
	}

	rewards := sdk.NewCoins()
	for _, flow := range flows {
		snap, found := k.GetRewardSnapshot(ctx, owner, flow.Id)
		if !found {
			continue
		}
		payout := snap.Pending.TruncateInt()
		if !payout.IsPositive() {
			continue
		}
		snap.Pending = snap.Pending.Sub(math.LegacyNewDecFromInt(payout))
		if err := k.SetRewardSnapshot(ctx, owner, flow.Id, snap); err != nil {
			return nil, err
		}
		rewards = rewards.Add(sdk.NewCoin(flow.RewardDenom, payout))
		k.metrics.RewardsWithdrawn.WithLabelValues(flow.RewardDenom).Add(float64(payout.Int64()))
	}
	if rewards.IsZero() {
		return sdk.NewCoins(), nil
	}

	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, receiver, rewards); err != nil {
		return nil, err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeWithdrawRewards,
		sdk.NewAttribute(types.AttributeKeySender, sender.String()),
		sdk.NewAttribute(types.AttributeKeyReceiver, receiver.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, rewards.String()),
	))
	return rewards, nil
}

// WithdrawableRewards returns what the owner could withdraw right now,
// without mutating state. Flow accumulators are simulated forward in memory.
func (k Keeper) WithdrawableRewards(ctx context.Context, owner sdk.AccAddress) (sdk.Coins, error) {
	flows, err := k.GetAllFlows(ctx)
	if err != nil {
		return nil, err
	}
	if len(flows) == 0 {
		return sdk.NewCoins(), nil
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	totalPoints := k.TotalPoints(ctx)
	points := k.UserPoints(ctx, owner)

	rewards := sdk.NewCoins()
	for i := range flows {
		syncFlow(&flows[i], now, totalPoints)
		snap, found := k.GetRewardSnapshot(ctx, owner, flows[i].Id)
		if !found {
			snap = types.NewRewardSnapshot(math.LegacyZeroDec())
		}
		pending := snap.Pending
		diff := flows[i].RewardPerPoint.Sub(snap.Seen)
		if diff.IsPositive() && points.IsPositive() {
			pending = pending.Add(diff.MulInt(points))
		}
		if payout := pending.TruncateInt(); payout.IsPositive() {
			rewards = rewards.Add(sdk.NewCoin(flows[i].RewardDenom, payout))
		}
	}
	return rewards, nil
}
