package keeper

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cosmos/cosmos-sdk/telemetry"
	"github.com/hashicorp/go-metrics"

	"github.com/coral-dex/coral/x/dex/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the dex MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreatePool handles the creation of a new liquidity pool
func (ms msgServer) CreatePool(goCtx context.Context, msg *types.MsgCreatePool) (*types.MsgCreatePoolResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreatePool: validate: %w", err)
	}

	pool, shares, err := ms.Keeper.CreatePool(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("CreatePool: %w", err)
	}

	return &types.MsgCreatePoolResponse{
		PoolId:  pool.Id,
		LpDenom: pool.LpDenom,
		Shares:  shares,
	}, nil
}

// ProvideLiquidity handles a two-sided deposit into a pool
func (ms msgServer) ProvideLiquidity(goCtx context.Context, msg *types.MsgProvideLiquidity) (*types.MsgProvideLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ProvideLiquidity: validate: %w", err)
	}

	shares, err := ms.Keeper.ProvideLiquidity(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("ProvideLiquidity: %w", err)
	}

	return &types.MsgProvideLiquidityResponse{Shares: shares}, nil
}

// WithdrawLiquidity handles burning LP shares for reserves
func (ms msgServer) WithdrawLiquidity(goCtx context.Context, msg *types.MsgWithdrawLiquidity) (*types.MsgWithdrawLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawLiquidity: validate: %w", err)
	}

	amountA, amountB, err := ms.Keeper.WithdrawLiquidity(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("WithdrawLiquidity: %w", err)
	}

	return &types.MsgWithdrawLiquidityResponse{AmountA: amountA, AmountB: amountB}, nil
}

// Swap handles a single-pool trade
func (ms msgServer) Swap(goCtx context.Context, msg *types.MsgSwap) (*types.MsgSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Swap: validate: %w", err)
	}

	result, err := ms.Keeper.Swap(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("Swap: %w", err)
	}

	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "swap"},
		1,
		[]metrics.Label{
			telemetry.NewLabel("offer_denom", msg.OfferDenom),
			telemetry.NewLabel("ask_denom", result.AskDenom),
		},
	)

	return &types.MsgSwapResponse{
		ReturnAmount: result.ReturnAmount,
		SpreadAmount: result.SpreadAmount,
	}, nil
}

// MultiHopSwap handles a routed trade across several pools
func (ms msgServer) MultiHopSwap(goCtx context.Context, msg *types.MsgMultiHopSwap) (*types.MsgMultiHopSwapResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("MultiHopSwap: validate: %w", err)
	}

	returnAmount, err := ms.Keeper.MultiHopSwap(goCtx, msg)
	if err != nil {
		return nil, fmt.Errorf("MultiHopSwap: %w", err)
	}

	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "multi_hop_swap"},
		1,
		[]metrics.Label{
			telemetry.NewLabel("hops", strconv.Itoa(len(msg.Operations))),
		},
	)

	return &types.MsgMultiHopSwapResponse{ReturnAmount: returnAmount}, nil
}

// UpdateFees handles a fee config change by the pool owner
func (ms msgServer) UpdateFees(goCtx context.Context, msg *types.MsgUpdateFees) (*types.MsgUpdateFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("UpdateFees: validate: %w", err)
	}
	if err := ms.Keeper.UpdateFees(goCtx, msg); err != nil {
		return nil, fmt.Errorf("UpdateFees: %w", err)
	}
	return &types.MsgUpdateFeesResponse{}, nil
}

// Freeze handles tripping a pool's circuit breaker
func (ms msgServer) Freeze(goCtx context.Context, msg *types.MsgFreeze) (*types.MsgFreezeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Freeze: validate: %w", err)
	}
	if err := ms.Keeper.Freeze(goCtx, msg); err != nil {
		return nil, fmt.Errorf("Freeze: %w", err)
	}
	return &types.MsgFreezeResponse{}, nil
}

// ProposeOwner handles starting a two-step ownership handover
func (ms msgServer) ProposeOwner(goCtx context.Context, msg *types.MsgProposeOwner) (*types.MsgProposeOwnerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ProposeOwner: validate: %w", err)
	}
	if err := ms.Keeper.ProposeOwner(goCtx, msg); err != nil {
		return nil, fmt.Errorf("ProposeOwner: %w", err)
	}
	return &types.MsgProposeOwnerResponse{}, nil
}

// ClaimOwnership handles completing a pending ownership handover
func (ms msgServer) ClaimOwnership(goCtx context.Context, msg *types.MsgClaimOwnership) (*types.MsgClaimOwnershipResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ClaimOwnership: validate: %w", err)
	}
	if err := ms.Keeper.ClaimOwnership(goCtx, msg); err != nil {
		return nil, fmt.Errorf("ClaimOwnership: %w", err)
	}
	return &types.MsgClaimOwnershipResponse{}, nil
}

// DropOwnerProposal handles withdrawing a pending ownership handover
func (ms msgServer) DropOwnerProposal(goCtx context.Context, msg *types.MsgDropOwnerProposal) (*types.MsgDropOwnerProposalResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("DropOwnerProposal: validate: %w", err)
	}
	if err := ms.Keeper.DropOwnerProposal(goCtx, msg); err != nil {
		return nil, fmt.Errorf("DropOwnerProposal: %w", err)
	}
	return &types.MsgDropOwnerProposalResponse{}, nil
}

// DistributeFees handles a permissionless flush of the fee splitter
func (ms msgServer) DistributeFees(goCtx context.Context, msg *types.MsgDistributeFees) (*types.MsgDistributeFeesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("DistributeFees: validate: %w", err)
	}
	if err := ms.Keeper.DistributeFees(goCtx); err != nil {
		return nil, fmt.Errorf("DistributeFees: %w", err)
	}
	return &types.MsgDistributeFeesResponse{}, nil
}
