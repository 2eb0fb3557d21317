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

// GetBondEntry retrieves one user's bond in one period
func (k Keeper) GetBondEntry(ctx context.Context, addr sdk.AccAddress, period int64) (types.BondEntry, bool) {
	bz := k.getStore(ctx).Get(types.BondEntryKey(addr, period))
	if bz == nil {
		return types.BondEntry{}, false
	}
	var entry types.BondEntry
	if err := json.Unmarshal(bz, &entry); err != nil {
		panic(fmt.Errorf("GetBondEntry: unmarshal: %w", err))
	}
	return entry, true
}

// setBondEntry stores a bond entry, removing it when drained
func (k Keeper) setBondEntry(ctx context.Context, addr sdk.AccAddress, entry types.BondEntry) error {
	store := k.getStore(ctx)
	if entry.Amount.IsZero() {
		store.Delete(types.BondEntryKey(addr, entry.Period))
		return nil
	}
	bz, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("setBondEntry: marshal: %w", err)
	}
	store.Set(types.BondEntryKey(addr, entry.Period), bz)
	return nil
}

// GetUserBonds returns all of a user's bond entries in period order
func (k Keeper) GetUserBonds(ctx context.Context, addr sdk.AccAddress) []types.BondEntry {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.BondEntryUserPrefix(addr))
	defer iterator.Close()

	var entries []types.BondEntry
	for ; iterator.Valid(); iterator.Next() {
		var entry types.BondEntry
		if err := json.Unmarshal(iterator.Value(), &entry); err != nil {
			panic(fmt.Errorf("GetUserBonds: unmarshal: %w", err))
		}
		entries = append(entries, entry)
	}
	return entries
}

// IterateBondEntries walks every bond entry until the callback stops it
func (k Keeper) IterateBondEntries(ctx context.Context, cb func(entry types.BondEntry) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.BondEntryKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var entry types.BondEntry
		if err := json.Unmarshal(iterator.Value(), &entry); err != nil {
			return fmt.Errorf("IterateBondEntries: unmarshal: %w", err)
		}
		if cb(entry) {
			break
		}
	}
	return nil
}

// UserPoints returns the sum of a user's points across all periods
func (k Keeper) UserPoints(ctx context.Context, addr sdk.AccAddress) math.Int {
	total := math.ZeroInt()
	for _, entry := range k.GetUserBonds(ctx, addr) {
		total = total.Add(entry.Points)
	}
	return total
}

// GetPeriodTotal returns the total points bonded in one period
func (k Keeper) GetPeriodTotal(ctx context.Context, period int64) math.Int {
	bz := k.getStore(ctx).Get(types.PeriodTotalKey(period))
	if bz == nil {
		return math.ZeroInt()
	}
	var total math.Int
	if err := json.Unmarshal(bz, &total); err != nil {
		panic(fmt.Errorf("GetPeriodTotal: unmarshal: %w", err))
	}
	return total
}

// setPeriodTotal stores a period's total points, removing it when zero
func (k Keeper) setPeriodTotal(ctx context.Context, period int64, total math.Int) error {
	store := k.getStore(ctx)
	if total.IsZero() {
		store.Delete(types.PeriodTotalKey(period))
		return nil
	}
	bz, err := json.Marshal(total)
	if err != nil {
		return fmt.Errorf("setPeriodTotal: marshal: %w", err)
	}
	store.Set(types.PeriodTotalKey(period), bz)
	return nil
}

// adjustPeriodTotal moves a period's total points by the given delta
func (k Keeper) adjustPeriodTotal(ctx context.Context, period int64, delta math.Int) error {
	total := k.GetPeriodTotal(ctx, period).Add(delta)
	if total.IsNegative() {
		return types.ErrInvariantViolation.Wrapf("period %d total points went negative", period)
	}
	return k.setPeriodTotal(ctx, period, total)
}

// TotalPoints returns the sum of points across all periods
func (k Keeper) TotalPoints(ctx context.Context) math.Int {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PeriodTotalKeyPrefix)
	defer iterator.Close()

	total := math.ZeroInt()
	for ; iterator.Valid(); iterator.Next() {
		var points math.Int
		if err := json.Unmarshal(iterator.Value(), &points); err != nil {
			panic(fmt.Errorf("TotalPoints: unmarshal: %w", err))
		}
		total = total.Add(points)
	}
	return total
}

// IteratePeriodTotals walks the stored per-period point totals in period order
func (k Keeper) IteratePeriodTotals(ctx context.Context, cb func(period int64, points math.Int) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PeriodTotalKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		period := int64(binary.BigEndian.Uint64(iterator.Key()[len(types.PeriodTotalKeyPrefix):]))
		var points math.Int
		if err := json.Unmarshal(iterator.Value(), &points); err != nil {
			panic(fmt.Errorf("IteratePeriodTotals: unmarshal: %w", err))
		}
		if cb(period, points) {
			break
		}
	}
}

// Bond locks the sender's tokens into the chosen unbonding period and credits
// the multiplied points. Reward flows are settled for the sender before the
// point change so past rewards keep their old weight.
func (k Keeper) Bond(ctx context.Context, sender sdk.AccAddress, period int64, amount math.Int) (math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("bond amount must be positive")
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, err
	}
	tier, ok := params.Period(period)
	if !ok {
		return math.Int{}, types.ErrUnknownPeriod.Wrapf("no unbonding period of %d seconds", period)
	}
	if amount.LT(params.MinBond) {
		return math.Int{}, types.ErrBelowMinBond.Wrapf("bond of %s below minimum %s", amount, params.MinBond)
	}

	if err := k.settleUser(ctx, sender); err != nil {
		return math.Int{}, err
	}

	coins := sdk.NewCoins(sdk.NewCoin(params.StakedDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, coins); err != nil {
		return math.Int{}, err
	}

	entry, found := k.GetBondEntry(ctx, sender, period)
	if !found {
		entry = types.BondEntry{
			Address: sender.String(),
			Period:  period,
			Amount:  math.ZeroInt(),
			Points:  math.ZeroInt(),
		}
	}
	oldPoints := entry.Points
	entry.Amount = entry.Amount.Add(amount)
	entry.Points = types.PointsFor(entry.Amount, tier.Multiplier)

	if err := k.setBondEntry(ctx, sender, entry); err != nil {
		return math.Int{}, err
	}
	if err := k.adjustPeriodTotal(ctx, period, entry.Points.Sub(oldPoints)); err != nil {
		return math.Int{}, err
	}

	k.metrics.BondedTotal.WithLabelValues(strconv.FormatInt(period, 10)).Add(float64(amount.Int64()))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeBond,
		sdk.NewAttribute(types.AttributeKeySender, sender.String()),
		sdk.NewAttribute(types.AttributeKeyPeriod, strconv.FormatInt(period, 10)),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(types.AttributeKeyPoints, entry.Points.String()),
	))
	return entry.Points, nil
}

// Rebond moves part of a bond between periods without an unbonding delay.
// Points on both sides are recomputed from the full remaining amounts.
func (k Keeper) Rebond(ctx context.Context, sender sdk.AccAddress, fromPeriod, toPeriod int64, amount math.Int) (math.Int, math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("rebond amount must be positive")
	}
	if fromPeriod == toPeriod {
		return math.Int{}, math.Int{}, types.ErrInvalidInput.Wrap("rebond source and target periods are the same")
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	fromTier, ok := params.Period(fromPeriod)
	if !ok {
		return math.Int{}, math.Int{}, types.ErrUnknownPeriod.Wrapf("no unbonding period of %d seconds", fromPeriod)
	}
	toTier, ok := params.Period(toPeriod)
	if !ok {
		return math.Int{}, math.Int{}, types.ErrUnknownPeriod.Wrapf("no unbonding period of %d seconds", toPeriod)
	}

	fromEntry, found := k.GetBondEntry(ctx, sender, fromPeriod)
	if !found || fromEntry.Amount.LT(amount) {
		return math.Int{}, math.Int{}, types.ErrInsufficientBond.Wrapf("rebond of %s exceeds bonded amount", amount)
	}

	if err := k.settleUser(ctx, sender); err != nil {
		return math.Int{}, math.Int{}, err
	}

	oldFromPoints := fromEntry.Points
	fromEntry.Amount = fromEntry.Amount.Sub(amount)
	fromEntry.Points = types.PointsFor(fromEntry.Amount, fromTier.Multiplier)

	toEntry, found := k.GetBondEntry(ctx, sender, toPeriod)
	if !found {
		toEntry = types.BondEntry{
			Address: sender.String(),
			Period:  toPeriod,
			Amount:  math.ZeroInt(),
			Points:  math.ZeroInt(),
		}
	}
	oldToPoints := toEntry.Points
	toEntry.Amount = toEntry.Amount.Add(amount)
	toEntry.Points = types.PointsFor(toEntry.Amount, toTier.Multiplier)

	if err := k.setBondEntry(ctx, sender, fromEntry); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.setBondEntry(ctx, sender, toEntry); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.adjustPeriodTotal(ctx, fromPeriod, fromEntry.Points.Sub(oldFromPoints)); err != nil {
		return math.Int{}, math.Int{}, err
	}
	if err := k.adjustPeriodTotal(ctx, toPeriod, toEntry.Points.Sub(oldToPoints)); err != nil {
		return math.Int{}, math.Int{}, err
	}

	k.metrics.RebondsTotal.Inc()

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRebond,
		sdk.NewAttribute(types.AttributeKeySender, sender.String()),
		sdk.NewAttribute(types.AttributeKeyFromPeriod, strconv.FormatInt(fromPeriod, 10)),
		sdk.NewAttribute(types.AttributeKeyToPeriod, strconv.FormatInt(toPeriod, 10)),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
	))
	return fromEntry.Points, toEntry.Points, nil
}

// Unbond removes part of a bond, drops its points immediately and queues the
// amount as a claim releasing after the period's delay.
func (k Keeper) Unbond(ctx context.Context, sender sdk.AccAddress, period int64, amount math.Int) (int64, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return 0, types.ErrZeroAmount.Wrap("unbond amount must be positive")
	}
	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, err
	}
	tier, ok := params.Period(period)
	if !ok {
		return 0, types.ErrUnknownPeriod.Wrapf("no unbonding period of %d seconds", period)
	}

	entry, found := k.GetBondEntry(ctx, sender, period)
	if !found || entry.Amount.LT(amount) {
		return 0, types.ErrInsufficientBond.Wrapf("unbond of %s exceeds bonded amount", amount)
	}

	if err := k.settleUser(ctx, sender); err != nil {
		return 0, err
	}

	oldPoints := entry.Points
	entry.Amount = entry.Amount.Sub(amount)
	entry.Points = types.PointsFor(entry.Amount, tier.Multiplier)

	if err := k.setBondEntry(ctx, sender, entry); err != nil {
		return 0, err
	}
	if err := k.adjustPeriodTotal(ctx, period, entry.Points.Sub(oldPoints)); err != nil {
		return 0, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	releaseAt := sdkCtx.BlockTime().Unix() + period
	if err := k.appendClaim(ctx, sender, types.Claim{Amount: amount, ReleaseAt: releaseAt}); err != nil {
		return 0, err
	}

	k.metrics.UnbondedTotal.WithLabelValues(strconv.FormatInt(period, 10)).Add(float64(amount.Int64()))

	sdkCtx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUnbond,
		sdk.NewAttribute(types.AttributeKeySender, sender.String()),
		sdk.NewAttribute(types.AttributeKeyPeriod, strconv.FormatInt(period, 10)),
		sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		sdk.NewAttribute(types.AttributeKeyReleaseAt, strconv.FormatInt(releaseAt, 10)),
	))
	return releaseAt, nil
}

// TotalStaked returns the sum of bonded amounts across all users and periods
func (k Keeper) TotalStaked(ctx context.Context) math.Int {
	total := math.ZeroInt()
	_ = k.IterateBondEntries(ctx, func(entry types.BondEntry) bool {
		total = total.Add(entry.Amount)
		return false
	})
	return total
}
