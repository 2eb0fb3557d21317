package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	proto "github.com/cosmos/gogoproto/proto"
)

// QueryServer defines the stake query interface. All queries are pure reads;
// reward figures are computed against a simulated accumulator sync, never a
// stored one.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Claims(context.Context, *QueryClaimsRequest) (*QueryClaimsResponse, error)
	Staked(context.Context, *QueryStakedRequest) (*QueryStakedResponse, error)
	AllStaked(context.Context, *QueryAllStakedRequest) (*QueryAllStakedResponse, error)
	TotalStaked(context.Context, *QueryTotalStakedRequest) (*QueryTotalStakedResponse, error)
	TotalUnbonding(context.Context, *QueryTotalUnbondingRequest) (*QueryTotalUnbondingResponse, error)
	BondingInfo(context.Context, *QueryBondingInfoRequest) (*QueryBondingInfoResponse, error)
	RewardsPower(context.Context, *QueryRewardsPowerRequest) (*QueryRewardsPowerResponse, error)
	TotalRewardsPower(context.Context, *QueryTotalRewardsPowerRequest) (*QueryTotalRewardsPowerResponse, error)
	AnnualizedRewards(context.Context, *QueryAnnualizedRewardsRequest) (*QueryAnnualizedRewardsResponse, error)
	WithdrawableRewards(context.Context, *QueryWithdrawableRewardsRequest) (*QueryWithdrawableRewardsResponse, error)
	DistributedRewards(context.Context, *QueryDistributedRewardsRequest) (*QueryDistributedRewardsResponse, error)
	UndistributedRewards(context.Context, *QueryUndistributedRewardsRequest) (*QueryUndistributedRewardsResponse, error)
}

// QueryParamsRequest requests the module params
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module params
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryClaimsRequest requests a user's claim queue
type QueryClaimsRequest struct {
	Address string `json:"address"`
}

// QueryClaimsResponse returns a user's claim queue in creation order
type QueryClaimsResponse struct {
	Claims []Claim `json:"claims"`
}

// QueryStakedRequest requests a user's bond in one period
type QueryStakedRequest struct {
	Address string `json:"address"`
	Period  int64  `json:"period"`
}

// QueryStakedResponse returns one bond entry's amount and points
type QueryStakedResponse struct {
	Amount math.Int `json:"amount"`
	Points math.Int `json:"points"`
}

// QueryAllStakedRequest requests all of a user's bonds
type QueryAllStakedRequest struct {
	Address string `json:"address"`
}

// QueryAllStakedResponse returns a user's bond entries across periods
type QueryAllStakedResponse struct {
	Entries []BondEntry `json:"entries"`
}

// QueryTotalStakedRequest requests the total bonded amount across all users
type QueryTotalStakedRequest struct{}

// QueryTotalStakedResponse returns the total bonded amount
type QueryTotalStakedResponse struct {
	Amount math.Int `json:"amount"`
}

// QueryTotalUnbondingRequest requests the total amount in unmatured claims
type QueryTotalUnbondingRequest struct{}

// QueryTotalUnbondingResponse returns the total unbonding amount
type QueryTotalUnbondingResponse struct {
	Amount math.Int `json:"amount"`
}

// QueryBondingInfoRequest requests the configured periods and their totals
type QueryBondingInfoRequest struct{}

// PeriodInfo is one configured unbonding period with its aggregate totals.
type PeriodInfo struct {
	Period      UnbondingPeriod `json:"period"`
	TotalPoints math.Int        `json:"total_points"`
}

// QueryBondingInfoResponse returns per-period bonding information
type QueryBondingInfoResponse struct {
	Periods []PeriodInfo `json:"periods"`
}

// QueryRewardsPowerRequest requests a user's normalized rewards power
type QueryRewardsPowerRequest struct {
	Address string `json:"address"`
}

// QueryRewardsPowerResponse returns points normalized by tokens-per-power
type QueryRewardsPowerResponse struct {
	Power math.Int `json:"power"`
}

// QueryTotalRewardsPowerRequest requests the total normalized rewards power
type QueryTotalRewardsPowerRequest struct{}

// QueryTotalRewardsPowerResponse returns the total rewards power
type QueryTotalRewardsPowerResponse struct {
	Power math.Int `json:"power"`
}

// QueryAnnualizedRewardsRequest requests the projected yearly emission per flow
type QueryAnnualizedRewardsRequest struct{}

// AnnualizedFlow is one flow's emission projected over a year at the current
// rate, per point.
type AnnualizedFlow struct {
	FlowId         uint64         `json:"flow_id"`
	RewardDenom    string         `json:"reward_denom"`
	AmountPerYear  math.Int       `json:"amount_per_year"`
	RewardPerPoint math.LegacyDec `json:"reward_per_point"`
}

// QueryAnnualizedRewardsResponse returns the per-flow yearly projections
type QueryAnnualizedRewardsResponse struct {
	Flows []AnnualizedFlow `json:"flows"`
}

// QueryWithdrawableRewardsRequest requests a user's withdrawable rewards
type QueryWithdrawableRewardsRequest struct {
	Address string `json:"address"`
}

// QueryWithdrawableRewardsResponse returns the settled-plus-pending rewards
type QueryWithdrawableRewardsResponse struct {
	Rewards sdk.Coins `json:"rewards"`
}

// QueryDistributedRewardsRequest requests a flow's distributed total
type QueryDistributedRewardsRequest struct {
	FlowId uint64 `json:"flow_id"`
}

// QueryDistributedRewardsResponse returns the amount a flow has emitted
type QueryDistributedRewardsResponse struct {
	Amount math.Int `json:"amount"`
}

// QueryUndistributedRewardsRequest requests a flow's remaining funds
type QueryUndistributedRewardsRequest struct {
	FlowId uint64 `json:"flow_id"`
}

// QueryUndistributedRewardsResponse returns the funded-but-unemitted amount
type QueryUndistributedRewardsResponse struct {
	Amount math.Int `json:"amount"`
}

func (m *QueryParamsRequest) Reset()         { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryParamsRequest) ProtoMessage()    {}

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryParamsResponse) ProtoMessage()    {}

func (m *QueryClaimsRequest) Reset()         { *m = QueryClaimsRequest{} }
func (m *QueryClaimsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryClaimsRequest) ProtoMessage()    {}

func (m *QueryClaimsResponse) Reset()         { *m = QueryClaimsResponse{} }
func (m *QueryClaimsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryClaimsResponse) ProtoMessage()    {}

func (m *QueryStakedRequest) Reset()         { *m = QueryStakedRequest{} }
func (m *QueryStakedRequest) String() string { return proto.CompactTextString(m) }
func (*QueryStakedRequest) ProtoMessage()    {}

func (m *QueryStakedResponse) Reset()         { *m = QueryStakedResponse{} }
func (m *QueryStakedResponse) String() string { return proto.CompactTextString(m) }
func (*QueryStakedResponse) ProtoMessage()    {}

func (m *QueryAllStakedRequest) Reset()         { *m = QueryAllStakedRequest{} }
func (m *QueryAllStakedRequest) String() string { return proto.CompactTextString(m) }
func (*QueryAllStakedRequest) ProtoMessage()    {}

func (m *QueryAllStakedResponse) Reset()         { *m = QueryAllStakedResponse{} }
func (m *QueryAllStakedResponse) String() string { return proto.CompactTextString(m) }
func (*QueryAllStakedResponse) ProtoMessage()    {}

func (m *QueryTotalStakedRequest) Reset()         { *m = QueryTotalStakedRequest{} }
func (m *QueryTotalStakedRequest) String() string { return proto.CompactTextString(m) }
func (*QueryTotalStakedRequest) ProtoMessage()    {}

func (m *QueryTotalStakedResponse) Reset()         { *m = QueryTotalStakedResponse{} }
func (m *QueryTotalStakedResponse) String() string { return proto.CompactTextString(m) }
func (*QueryTotalStakedResponse) ProtoMessage()    {}

func (m *QueryTotalUnbondingRequest) Reset()         { *m = QueryTotalUnbondingRequest{} }
func (m *QueryTotalUnbondingRequest) String() string { return proto.CompactTextString(m) }
func (*QueryTotalUnbondingRequest) ProtoMessage()    {}

func (m *QueryTotalUnbondingResponse) Reset()         { *m = QueryTotalUnbondingResponse{} }
func (m *QueryTotalUnbondingResponse) String() string { return proto.CompactTextString(m) }
func (*QueryTotalUnbondingResponse) ProtoMessage()    {}

func (m *QueryBondingInfoRequest) Reset()         { *m = QueryBondingInfoRequest{} }
func (m *QueryBondingInfoRequest) String() string { return proto.CompactTextString(m) }
func (*QueryBondingInfoRequest) ProtoMessage()    {}

func (m *QueryBondingInfoResponse) Reset()         { *m = QueryBondingInfoResponse{} }
func (m *QueryBondingInfoResponse) String() string { return proto.CompactTextString(m) }
func (*QueryBondingInfoResponse) ProtoMessage()    {}

func (m *QueryRewardsPowerRequest) Reset()         { *m = QueryRewardsPowerRequest{} }
func (m *QueryRewardsPowerRequest) String() string { return proto.CompactTextString(m) }
func (*QueryRewardsPowerRequest) ProtoMessage()    {}

func (m *QueryRewardsPowerResponse) Reset()         { *m = QueryRewardsPowerResponse{} }
func (m *QueryRewardsPowerResponse) String() string { return proto.CompactTextString(m) }
func (*QueryRewardsPowerResponse) ProtoMessage()    {}

func (m *QueryTotalRewardsPowerRequest) Reset()         { *m = QueryTotalRewardsPowerRequest{} }
func (m *QueryTotalRewardsPowerRequest) String() string { return proto.CompactTextString(m) }
func (*QueryTotalRewardsPowerRequest) ProtoMessage()    {}

func (m *QueryTotalRewardsPowerResponse) Reset()         { *m = QueryTotalRewardsPowerResponse{} }
func (m *QueryTotalRewardsPowerResponse) String() string { return proto.CompactTextString(m) }
func (*QueryTotalRewardsPowerResponse) ProtoMessage()    {}

func (m *QueryAnnualizedRewardsRequest) Reset()         { *m = QueryAnnualizedRewardsRequest{} }
func (m *QueryAnnualizedRewardsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryAnnualizedRewardsRequest) ProtoMessage()    {}

func (m *QueryAnnualizedRewardsResponse) Reset()         { *m = QueryAnnualizedRewardsResponse{} }
func (m *QueryAnnualizedRewardsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryAnnualizedRewardsResponse) ProtoMessage()    {}

func (m *QueryWithdrawableRewardsRequest) Reset()         { *m = QueryWithdrawableRewardsRequest{} }
func (m *QueryWithdrawableRewardsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryWithdrawableRewardsRequest) ProtoMessage()    {}

func (m *QueryWithdrawableRewardsResponse) Reset()         { *m = QueryWithdrawableRewardsResponse{} }
func (m *QueryWithdrawableRewardsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryWithdrawableRewardsResponse) ProtoMessage()    {}

func (m *QueryDistributedRewardsRequest) Reset()         { *m = QueryDistributedRewardsRequest{} }
func (m *QueryDistributedRewardsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryDistributedRewardsRequest) ProtoMessage()    {}

func (m *QueryDistributedRewardsResponse) Reset()         { *m = QueryDistributedRewardsResponse{} }
func (m *QueryDistributedRewardsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryDistributedRewardsResponse) ProtoMessage()    {}

func (m *QueryUndistributedRewardsRequest) Reset()         { *m = QueryUndistributedRewardsRequest{} }
func (m *QueryUndistributedRewardsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryUndistributedRewardsRequest) ProtoMessage()    {}

func (m *QueryUndistributedRewardsResponse) Reset()         { *m = QueryUndistributedRewardsResponse{} }
func (m *QueryUndistributedRewardsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryUndistributedRewardsResponse) ProtoMessage()    {}
