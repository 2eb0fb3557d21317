package keeper

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/hashicorp/go-metrics"

	"github.com/coral-dex/coral/x/stake/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the stake MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Bond handles locking tokens into an unbonding period
func (ms msgServer) Bond(goCtx context.Context, msg *types.MsgBond) (*types.MsgBondResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Bond: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("Bond: sender: %w", err)
	}

	points, err := ms.Keeper.Bond(goCtx, sender, msg.Period, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("Bond: %w", err)
	}

	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "bond"},
		1,
		[]metrics.Label{
			telemetry.NewLabel("period", strconv.FormatInt(msg.Period, 10)),
		},
	)

	return &types.MsgBondResponse{Points: points}, nil
}

// Rebond handles moving a bond between unbonding periods
func (ms msgServer) Rebond(goCtx context.Context, msg *types.MsgRebond) (*types.MsgRebondResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Rebond: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("Rebond: sender: %w", err)
	}

	fromPoints, toPoints, err := ms.Keeper.Rebond(goCtx, sender, msg.FromPeriod, msg.ToPeriod, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("Rebond: %w", err)
	}
	return &types.MsgRebondResponse{FromPoints: fromPoints, ToPoints: toPoints}, nil
}

// Unbond handles removing a bond into the claim queue
func (ms msgServer) Unbond(goCtx context.Context, msg *types.MsgUnbond) (*types.MsgUnbondResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Unbond: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("Unbond: sender: %w", err)
	}

	releaseAt, err := ms.Keeper.Unbond(goCtx, sender, msg.Period, msg.Amount)
	if err != nil {
		return nil, fmt.Errorf("Unbond: %w", err)
	}
	return &types.MsgUnbondResponse{ReleaseAt: releaseAt}, nil
}

// Claim handles releasing matured unbonding claims
func (ms msgServer) Claim(goCtx context.Context, msg *types.MsgClaim) (*types.MsgClaimResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Claim: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("Claim: sender: %w", err)
	}

	released, err := ms.Keeper.Claim(goCtx, sender)
	if err != nil {
		return nil, fmt.Errorf("Claim: %w", err)
	}
	return &types.MsgClaimResponse{Released: released}, nil
}

// CreateDistributionFlow handles registering a new reward stream
func (ms msgServer) CreateDistributionFlow(goCtx context.Context, msg *types.MsgCreateDistributionFlow) (*types.MsgCreateDistributionFlowResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreateDistributionFlow: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("CreateDistributionFlow: sender: %w", err)
	}
	manager := sender
	if msg.Manager != "" {
		manager, err = sdk.AccAddressFromBech32(msg.Manager)
		if err != nil {
			return nil, fmt.Errorf("CreateDistributionFlow: manager: %w", err)
		}
	}

	flowID, err := ms.Keeper.CreateDistributionFlow(goCtx, sender, msg.RewardDenom, manager)
	if err != nil {
		return nil, fmt.Errorf("CreateDistributionFlow: %w", err)
	}
	return &types.MsgCreateDistributionFlowResponse{FlowId: flowID}, nil
}

// FundDistribution handles adding funds to a reward stream
func (ms msgServer) FundDistribution(goCtx context.Context, msg *types.MsgFundDistribution) (*types.MsgFundDistributionResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("FundDistribution: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("FundDistribution: sender: %w", err)
	}

	endTime, err := ms.Keeper.FundDistribution(goCtx, sender, msg.FlowId, msg.Amount, msg.Duration)
	if err != nil {
		return nil, fmt.Errorf("FundDistribution: %w", err)
	}
	return &types.MsgFundDistributionResponse{EndTime: endTime}, nil
}

// WithdrawRewards handles paying out accrued rewards
func (ms msgServer) WithdrawRewards(goCtx context.Context, msg *types.MsgWithdrawRewards) (*types.MsgWithdrawRewardsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("WithdrawRewards: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("WithdrawRewards: sender: %w", err)
	}
	owner := sender
	if msg.Owner != "" {
		owner, err = sdk.AccAddressFromBech32(msg.Owner)
		if err != nil {
			return nil, fmt.Errorf("WithdrawRewards: owner: %w", err)
		}
	}
	receiver := owner
	if msg.Receiver != "" {
		receiver, err = sdk.AccAddressFromBech32(msg.Receiver)
		if err != nil {
			return nil, fmt.Errorf("WithdrawRewards: receiver: %w", err)
		}
	}

	rewards, err := ms.Keeper.WithdrawRewards(goCtx, sender, owner, receiver, msg.FlowId)
	if err != nil {
		return nil, fmt.Errorf("WithdrawRewards: %w", err)
	}

	for _, coin := range rewards {
		if !coin.Amount.IsInt64() {
			continue
		}
		telemetry.IncrCounterWithLabels(
			[]string{types.ModuleName, "rewards_withdrawn"},
			float32(coin.Amount.Int64()),
			[]metrics.Label{
				telemetry.NewLabel("denom", coin.Denom),
			},
		)
	}

	return &types.MsgWithdrawRewardsResponse{Rewards: rewards}, nil
}

// DelegateWithdrawal handles registering a withdrawal delegate
func (ms msgServer) DelegateWithdrawal(goCtx context.Context, msg *types.MsgDelegateWithdrawal) (*types.MsgDelegateWithdrawalResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("DelegateWithdrawal: validate: %w", err)
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, fmt.Errorf("DelegateWithdrawal: sender: %w", err)
	}
	delegate, err := sdk.AccAddressFromBech32(msg.Delegate)
	if err != nil {
		return nil, fmt.Errorf("DelegateWithdrawal: delegate: %w", err)
	}

	if err := ms.Keeper.DelegateWithdrawal(goCtx, sender, delegate); err != nil {
		return nil, fmt.Errorf("DelegateWithdrawal: %w", err)
	}
	return &types.MsgDelegateWithdrawalResponse{}, nil
}
