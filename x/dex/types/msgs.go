package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the dex message server interface
type MsgServer interface {
	CreatePool(context.Context, *MsgCreatePool) (*MsgCreatePoolResponse, error)
	ProvideLiquidity(context.Context, *MsgProvideLiquidity) (*MsgProvideLiquidityResponse, error)
	WithdrawLiquidity(context.Context, *MsgWithdrawLiquidity) (*MsgWithdrawLiquidityResponse, error)
	Swap(context.Context, *MsgSwap) (*MsgSwapResponse, error)
	MultiHopSwap(context.Context, *MsgMultiHopSwap) (*MsgMultiHopSwapResponse, error)
	UpdateFees(context.Context, *MsgUpdateFees) (*MsgUpdateFeesResponse, error)
	Freeze(context.Context, *MsgFreeze) (*MsgFreezeResponse, error)
	ProposeOwner(context.Context, *MsgProposeOwner) (*MsgProposeOwnerResponse, error)
	ClaimOwnership(context.Context, *MsgClaimOwnership) (*MsgClaimOwnershipResponse, error)
	DropOwnerProposal(context.Context, *MsgDropOwnerProposal) (*MsgDropOwnerProposalResponse, error)
	DistributeFees(context.Context, *MsgDistributeFees) (*MsgDistributeFeesResponse, error)
}

// SwapOperation is one hop of a multi-hop swap route.
type SwapOperation struct {
	OfferDenom string `json:"offer_denom"`
	AskDenom   string `json:"ask_denom"`
}

// Response types

// MsgCreatePoolResponse is the response for CreatePool
type MsgCreatePoolResponse struct {
	PoolId  uint64   `json:"pool_id"`
	LpDenom string   `json:"lp_denom"`
	Shares  math.Int `json:"shares"`
}

// MsgProvideLiquidityResponse is the response for ProvideLiquidity
type MsgProvideLiquidityResponse struct {
	Shares math.Int `json:"shares"`
}

// MsgWithdrawLiquidityResponse is the response for WithdrawLiquidity
type MsgWithdrawLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgSwapResponse is the response for Swap
type MsgSwapResponse struct {
	ReturnAmount math.Int `json:"return_amount"`
	SpreadAmount math.Int `json:"spread_amount"`
}

// MsgMultiHopSwapResponse is the response for MultiHopSwap
type MsgMultiHopSwapResponse struct {
	ReturnAmount math.Int `json:"return_amount"`
}

// MsgUpdateFeesResponse is the response for UpdateFees
type MsgUpdateFeesResponse struct{}

// MsgFreezeResponse is the response for Freeze
type MsgFreezeResponse struct{}

// MsgProposeOwnerResponse is the response for ProposeOwner
type MsgProposeOwnerResponse struct{}

// MsgClaimOwnershipResponse is the response for ClaimOwnership
type MsgClaimOwnershipResponse struct{}

// MsgDropOwnerProposalResponse is the response for DropOwnerProposal
type MsgDropOwnerProposalResponse struct{}

// MsgDistributeFeesResponse is the response for DistributeFees
type MsgDistributeFeesResponse struct{}
