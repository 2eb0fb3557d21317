package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coral-dex/coral/x/stake/types"
)

// secondsPerYear is the projection horizon for annualized reward queries
const secondsPerYear = 365 * 24 * 3600

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the stake QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the stake module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	params, err := qs.GetParams(goCtx)
	if err != nil {
		return nil, err
	}
	return &types.QueryParamsResponse{Params: params}, nil
}

// Claims returns a user's claim queue in creation order
func (qs queryServer) Claims(goCtx context.Context, req *types.QueryClaimsRequest) (*types.QueryClaimsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid address: %s", err)
	}
	claims := qs.GetClaims(goCtx, addr)
	if claims == nil {
		claims = []types.Claim{}
	}
	return &types.QueryClaimsResponse{Claims: claims}, nil
}

// Staked returns a user's bond in one period, zero when none exists
func (qs queryServer) Staked(goCtx context.Context, req *types.QueryStakedRequest) (*types.QueryStakedResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid address: %s", err)
	}
	params, err := qs.GetParams(goCtx)
	if err != nil {
		return nil, err
	}
	if _, ok := params.Period(req.Period); !ok {
		return nil, types.ErrUnknownPeriod.Wrapf("no unbonding period of %d seconds", req.Period)
	}

	entry, found := qs.GetBondEntry(goCtx, addr, req.Period)
	if !found {
		return &types.QueryStakedResponse{Amount: math.ZeroInt(), Points: math.ZeroInt()}, nil
	}
	return &types.QueryStakedResponse{Amount: entry.Amount, Points: entry.Points}, nil
}

// AllStaked returns all of a user's bonds across periods
func (qs queryServer) AllStaked(goCtx context.Context, req *types.QueryAllStakedRequest) (*types.QueryAllStakedResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid address: %s", err)
	}
	entries := qs.GetUserBonds(goCtx, addr)
	if entries == nil {
		entries = []types.BondEntry{}
	}
	return &types.QueryAllStakedResponse{Entries: entries}, nil
}

// TotalStaked returns the total bonded amount across all users
func (qs queryServer) TotalStaked(goCtx context.Context, req *types.QueryTotalStakedRequest) (*types.QueryTotalStakedResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	return &types.QueryTotalStakedResponse{Amount: qs.Keeper.TotalStaked(goCtx)}, nil
}

// TotalUnbonding returns the total amount queued in unmatured claims
func (qs queryServer) TotalUnbonding(goCtx context.Context, req *types.QueryTotalUnbondingRequest) (*types.QueryTotalUnbondingResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	return &types.QueryTotalUnbondingResponse{Amount: qs.Keeper.TotalUnbonding(goCtx)}, nil
}

// BondingInfo returns every configured period with its aggregate point total
func (qs queryServer) BondingInfo(goCtx context.Context, req *types.QueryBondingInfoRequest) (*types.QueryBondingInfoResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	params, err := qs.GetParams(goCtx)
	if err != nil {
		return nil, err
	}

	periods := make([]types.PeriodInfo, 0, len(params.UnbondingPeriods))
	for _, tier := range params.UnbondingPeriods {
		periods = append(periods, types.PeriodInfo{
			Period:      tier,
			TotalPoints: qs.GetPeriodTotal(goCtx, tier.Duration),
		})
	}
	return &types.QueryBondingInfoResponse{Periods: periods}, nil
}

// RewardsPower returns a user's points normalized by tokens-per-power
func (qs queryServer) RewardsPower(goCtx context.Context, req *types.QueryRewardsPowerRequest) (*types.QueryRewardsPowerResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid address: %s", err)
	}
	params, err := qs.GetParams(goCtx)
	if err != nil {
		return nil, err
	}
	return &types.QueryRewardsPowerResponse{
		Power: qs.UserPoints(goCtx, addr).Quo(params.TokensPerPower),
	}, nil
}

// TotalRewardsPower returns the total normalized rewards power
func (qs queryServer) TotalRewardsPower(goCtx context.Context, req *types.QueryTotalRewardsPowerRequest) (*types.QueryTotalRewardsPowerResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	params, err := qs.GetParams(goCtx)
	if err != nil {
		return nil, err
	}
	return &types.QueryTotalRewardsPowerResponse{
		Power: qs.TotalPoints(goCtx).Quo(params.TokensPerPower),
	}, nil
}

// AnnualizedRewards projects each active flow's emission over a year at the
// current rate. Dormant or elapsed schedules report zero.
func (qs queryServer) AnnualizedRewards(goCtx context.Context, req *types.QueryAnnualizedRewardsRequest) (*types.QueryAnnualizedRewardsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	flows, err := qs.GetAllFlows(goCtx)
	if err != nil {
		return nil, err
	}

	now := sdk.UnwrapSDKContext(goCtx).BlockTime().Unix()
	totalPoints := qs.TotalPoints(goCtx)

	annualized := make([]types.AnnualizedFlow, 0, len(flows))
	for _, flow := range flows {
		af := types.AnnualizedFlow{
			FlowId:         flow.Id,
			RewardDenom:    flow.RewardDenom,
			AmountPerYear:  math.ZeroInt(),
			RewardPerPoint: math.LegacyZeroDec(),
		}
		if flow.Schedule.Active(now) {
			perYear := flow.Schedule.Rate.MulInt64(secondsPerYear)
			af.AmountPerYear = perYear.TruncateInt()
			if totalPoints.IsPositive() {
				af.RewardPerPoint = perYear.QuoInt(totalPoints)
			}
		}
		annualized = append(annualized, af)
	}
	return &types.QueryAnnualizedRewardsResponse{Flows: annualized}, nil
}

// WithdrawableRewards returns what the user could withdraw right now
func (qs queryServer) WithdrawableRewards(goCtx context.Context, req *types.QueryWithdrawableRewardsRequest) (*types.QueryWithdrawableRewardsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	addr, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, types.ErrInvalidInput.Wrapf("invalid address: %s", err)
	}
	rewards, err := qs.Keeper.WithdrawableRewards(goCtx, addr)
	if err != nil {
		return nil, err
	}
	return &types.QueryWithdrawableRewardsResponse{Rewards: rewards}, nil
}

// DistributedRewards returns what a flow has emitted up to the current block
func (qs queryServer) DistributedRewards(goCtx context.Context, req *types.QueryDistributedRewardsRequest) (*types.QueryDistributedRewardsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	flow, err := qs.GetFlow(goCtx, req.FlowId)
	if err != nil {
		return nil, err
	}
	now := sdk.UnwrapSDKContext(goCtx).BlockTime().Unix()
	syncFlow(&flow, now, qs.TotalPoints(goCtx))
	return &types.QueryDistributedRewardsResponse{Amount: flow.TotalDistributed}, nil
}

// UndistributedRewards returns a flow's funded-but-unemitted balance
func (qs queryServer) UndistributedRewards(goCtx context.Context, req *types.QueryUndistributedRewardsRequest) (*types.QueryUndistributedRewardsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	flow, err := qs.GetFlow(goCtx, req.FlowId)
	if err != nil {
		return nil, err
	}
	now := sdk.UnwrapSDKContext(goCtx).BlockTime().Unix()
	syncFlow(&flow, now, qs.TotalPoints(goCtx))
	return &types.QueryUndistributedRewardsResponse{Amount: flow.TotalFunded.Sub(flow.TotalDistributed)}, nil
}
