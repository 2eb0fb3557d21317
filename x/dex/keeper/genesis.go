package keeper

import (
	"context"
	"fmt"

	"github.com/coral-dex/coral/x/dex/types"
)

// InitGenesis restores the dex module state from genesis
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid dex genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return err
	}
	k.SetNextPoolID(ctx, genState.NextPoolId)

	for _, pool := range genState.Pools {
		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}
		k.setPoolByDenomsIndex(ctx, pool.DenomA, pool.DenomB, pool.Id)
	}
	for _, fee := range genState.CollectedFees {
		k.SetCollectedFee(ctx, fee.Denom, fee.Amount)
	}
	return nil
}

// ExportGenesis dumps the dex module state for genesis export
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	pools, err := k.GetAllPools(ctx)
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Params:        params,
		Pools:         pools,
		NextPoolId:    k.PeekNextPoolID(ctx),
		CollectedFees: k.GetAllCollectedFees(ctx),
	}, nil
}
