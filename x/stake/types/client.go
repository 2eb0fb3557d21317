package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for the stake Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Claims(ctx context.Context, in *QueryClaimsRequest, opts ...grpc.CallOption) (*QueryClaimsResponse, error)
	Staked(ctx context.Context, in *QueryStakedRequest, opts ...grpc.CallOption) (*QueryStakedResponse, error)
	AllStaked(ctx context.Context, in *QueryAllStakedRequest, opts ...grpc.CallOption) (*QueryAllStakedResponse, error)
	TotalStaked(ctx context.Context, in *QueryTotalStakedRequest, opts ...grpc.CallOption) (*QueryTotalStakedResponse, error)
	TotalUnbonding(ctx context.Context, in *QueryTotalUnbondingRequest, opts ...grpc.CallOption) (*QueryTotalUnbondingResponse, error)
	BondingInfo(ctx context.Context, in *QueryBondingInfoRequest, opts ...grpc.CallOption) (*QueryBondingInfoResponse, error)
	RewardsPower(ctx context.Context, in *QueryRewardsPowerRequest, opts ...grpc.CallOption) (*QueryRewardsPowerResponse, error)
	TotalRewardsPower(ctx context.Context, in *QueryTotalRewardsPowerRequest, opts ...grpc.CallOption) (*QueryTotalRewardsPowerResponse, error)
	AnnualizedRewards(ctx context.Context, in *QueryAnnualizedRewardsRequest, opts ...grpc.CallOption) (*QueryAnnualizedRewardsResponse, error)
	WithdrawableRewards(ctx context.Context, in *QueryWithdrawableRewardsRequest, opts ...grpc.CallOption) (*QueryWithdrawableRewardsResponse, error)
	DistributedRewards(ctx context.Context, in *QueryDistributedRewardsRequest, opts ...grpc.CallOption) (*QueryDistributedRewardsResponse, error)
	UndistributedRewards(ctx context.Context, in *QueryUndistributedRewardsRequest, opts ...grpc.CallOption) (*QueryUndistributedRewardsResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/coral.stake.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Claims(ctx context.Context, in *QueryClaimsRequest, opts ...grpc.CallOption) (*QueryClaimsResponse, error) {
	out := new(QueryClaimsResponse)
	err := c.cc.Invoke(ctx, "/coral.stake.v1.Query/Claims", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Staked(ctx context.Context, in *QueryStakedRequest, opts ...grpc.CallOption) (*QueryStakedResponse, error) {
	out := new(QueryStakedResponse)
	err := c.cc.Invoke(ctx, "/coral.stake.v1.Query/Staked", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) AllStaked(ctx context.Context, in *QueryAllStakedRequest, opts ...grpc.CallOption) (*QueryAllStakedResponse, error) {
	out := new(QueryAllStakedResponse)
	err := c.cc.Invoke(ctx, "/coral.stake.v1.Query/AllStaked", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) TotalStaked(ctx context.Context, in *QueryTotalStakedRequest, opts ...grpc.CallOption) (*QueryTotalStakedResponse, error) {
	out := new(QueryTotalStakedResponse)
	err := c.cc.Invoke(ctx, "/coral.stake.v1.Query/TotalStaked", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) TotalUnbonding(ctx context.Context, in *QueryTotalUnbondingRequest, opts ...grpc.CallOption) (*QueryTotalUnbondingResponse, error) {
	out := new(QueryTotalUnbondingResponse)
	err := c.cc.Invoke(ctx, "/coral.stake.v1.Query/TotalUnbonding", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) BondingInfo(ctx context.Context, in *QueryBondingInfoRequest, opts ...grpc.CallOption) (*QueryBondingInfoResponse, error) {
	out := new(QueryBondingInfoResponse)
	err := c.cc.Invoke(ctx, "/coral.stake.v1.Query/BondingInfo", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) RewardsPower(ctx context.Context, in *QueryRewardsPowerRequest, opts ...grpc.CallOption) (*QueryRewardsPowerResponse, error) {
	out := new(QueryRewardsPowerResponse)
	err := c.cc.Invoke(ctx, "/coral.stake.v1.Query/RewardsPower", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) TotalRewardsPower(ctx context.Context, in *QueryTotalRewardsPowerRequest, opts ...grpc.CallOption) (*QueryTotalRewardsPowerResponse, error) {
	out := new(QueryTotalRewardsPowerResponse)
	err := c.cc.Invoke(ctx, "/coral.stake.v1.Query/TotalRewardsPower", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) AnnualizedRewards(ctx context.Context, in *QueryAnnualizedRewardsRequest, opts ...grpc.CallOption) (*QueryAnnualizedRewardsResponse, error) {
	out := new(QueryAnnualizedRewardsResponse)
	err := c.cc.Invoke(ctx, "/coral.stake.v1.Query/AnnualizedRewards", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) WithdrawableRewards(ctx context.Context, in *QueryWithdrawableRewardsRequest, opts ...grpc.CallOption) (*QueryWithdrawableRewardsResponse, error) {
	out := new(QueryWithdrawableRewardsResponse)
	err := c.cc.Invoke(ctx, "/coral.stake.v1.Query/WithdrawableRewards", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) DistributedRewards(ctx context.Context, in *QueryDistributedRewardsRequest, opts ...grpc.CallOption) (*QueryDistributedRewardsResponse, error) {
	out := new(QueryDistributedRewardsResponse)
	err := c.cc.Invoke(ctx, "/coral.stake.v1.Query/DistributedRewards", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) UndistributedRewards(ctx context.Context, in *QueryUndistributedRewardsRequest, opts ...grpc.CallOption) (*QueryUndistributedRewardsResponse, error) {
	out := new(QueryUndistributedRewardsResponse)
	err := c.cc.Invoke(ctx, "/coral.stake.v1.Query/UndistributedRewards", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
