package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer defines the stake message server interface
type MsgServer interface {
	Bond(context.Context, *MsgBond) (*MsgBondResponse, error)
	Rebond(context.Context, *MsgRebond) (*MsgRebondResponse, error)
	Unbond(context.Context, *MsgUnbond) (*MsgUnbondResponse, error)
	Claim(context.Context, *MsgClaim) (*MsgClaimResponse, error)
	CreateDistributionFlow(context.Context, *MsgCreateDistributionFlow) (*MsgCreateDistributionFlowResponse, error)
	FundDistribution(context.Context, *MsgFundDistribution) (*MsgFundDistributionResponse, error)
	WithdrawRewards(context.Context, *MsgWithdrawRewards) (*MsgWithdrawRewardsResponse, error)
	DelegateWithdrawal(context.Context, *MsgDelegateWithdrawal) (*MsgDelegateWithdrawalResponse, error)
}

// Response types

// MsgBondResponse is the response for Bond
type MsgBondResponse struct {
	Points math.Int `json:"points"`
}

// MsgRebondResponse is the response for Rebond
type MsgRebondResponse struct {
	FromPoints math.Int `json:"from_points"`
	ToPoints   math.Int `json:"to_points"`
}

// MsgUnbondResponse is the response for Unbond
type MsgUnbondResponse struct {
	ReleaseAt int64 `json:"release_at"`
}

// MsgClaimResponse is the response for Claim
type MsgClaimResponse struct {
	Released math.Int `json:"released"`
}

// MsgCreateDistributionFlowResponse is the response for CreateDistributionFlow
type MsgCreateDistributionFlowResponse struct {
	FlowId uint64 `json:"flow_id"`
}

// MsgFundDistributionResponse is the response for FundDistribution
type MsgFundDistributionResponse struct {
	EndTime int64 `json:"end_time"`
}

// MsgWithdrawRewardsResponse is the response for WithdrawRewards
type MsgWithdrawRewardsResponse struct {
	Rewards sdk.Coins `json:"rewards"`
}

// MsgDelegateWithdrawalResponse is the response for DelegateWithdrawal
type MsgDelegateWithdrawalResponse struct{}
