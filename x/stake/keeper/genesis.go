package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coral-dex/coral/x/stake/types"
)

// InitGenesis restores the stake module state from genesis. Per-period point
// totals are rebuilt from the bond entries rather than imported.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid stake genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	k.SetNextFlowID(ctx, genState.NextFlowId)

	periodTotals := make(map[int64]math.Int)
	for _, entry := range genState.BondEntries {
		addr, err := sdk.AccAddressFromBech32(entry.Address)
		if err != nil {
			return err
		}
		if err := k.setBondEntry(ctx, addr, entry); err != nil {
			return err
		}
		total, ok := periodTotals[entry.Period]
		if !ok {
			total = math.ZeroInt()
		}
		periodTotals[entry.Period] = total.Add(entry.Points)
	}
	for period, total := range periodTotals {
		if err := k.setPeriodTotal(ctx, period, total); err != nil {
			return err
		}
	}

	for _, uc := range genState.Claims {
		addr, err := sdk.AccAddressFromBech32(uc.Address)
		if err != nil {
			return err
		}
		if err := k.setClaims(ctx, addr, uc.Claims); err != nil {
			return err
		}
	}

	for _, flow := range genState.Flows {
		if err := k.SetFlow(ctx, flow); err != nil {
			return err
		}
		k.setFlowByDenomIndex(ctx, flow.RewardDenom, flow.Id)
	}

	for _, snap := range genState.Snapshots {
		addr, err := sdk.AccAddressFromBech32(snap.Address)
		if err != nil {
			return err
		}
		if err := k.SetRewardSnapshot(ctx, addr, snap.FlowId, snap.Snapshot); err != nil {
			return err
		}
	}

	for _, del := range genState.Delegations {
		owner, err := sdk.AccAddressFromBech32(del.Owner)
		if err != nil {
			return err
		}
		delegate, err := sdk.AccAddressFromBech32(del.Delegate)
		if err != nil {
			return err
		}
		k.SetDelegate(ctx, owner, delegate)
	}
	return nil
}

// ExportGenesis dumps the stake module state for genesis export
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	bonds := []types.BondEntry{}
	if err := k.IterateBondEntries(ctx, func(entry types.BondEntry) bool {
		bonds = append(bonds, entry)
		return false
	}); err != nil {
		return nil, err
	}

	claims := []types.UserClaims{}
	if err := k.IterateClaims(ctx, func(addr sdk.AccAddress, queue []types.Claim) bool {
		claims = append(claims, types.UserClaims{Address: addr.String(), Claims: queue})
		return false
	}); err != nil {
		return nil, err
	}

	flows, err := k.GetAllFlows(ctx)
	if err != nil {
		return nil, err
	}
	if flows == nil {
		flows = []types.DistributionFlow{}
	}

	snapshots := []types.UserSnapshot{}
	if err := k.IterateRewardSnapshots(ctx, func(addr sdk.AccAddress, flowID uint64, snap types.RewardSnapshot) bool {
		snapshots = append(snapshots, types.UserSnapshot{
			Address:  addr.String(),
			FlowId:   flowID,
			Snapshot: snap,
		})
		return false
	}); err != nil {
		return nil, err
	}

	delegations := []types.Delegation{}
	k.IterateDelegates(ctx, func(owner, delegate sdk.AccAddress) bool {
		delegations = append(delegations, types.Delegation{
			Owner:    owner.String(),
			Delegate: delegate.String(),
		})
		return false
	})

	return &types.GenesisState{
		Params:      params,
		BondEntries: bonds,
		Claims:      claims,
		Flows:       flows,
		NextFlowId:  k.PeekNextFlowID(ctx),
		Snapshots:   snapshots,
		Delegations: delegations,
	}, nil
}
