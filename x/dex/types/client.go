package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for the dex Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error)
	PoolByDenoms(ctx context.Context, in *QueryPoolByDenomsRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error)
	Pools(ctx context.Context, in *QueryPoolsRequest, opts ...grpc.CallOption) (*QueryPoolsResponse, error)
	Simulation(ctx context.Context, in *QuerySimulationRequest, opts ...grpc.CallOption) (*QuerySimulationResponse, error)
	CollectedFees(ctx context.Context, in *QueryCollectedFeesRequest, opts ...grpc.CallOption) (*QueryCollectedFeesResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/coral.dex.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error) {
	out := new(QueryPoolResponse)
	err := c.cc.Invoke(ctx, "/coral.dex.v1.Query/Pool", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) PoolByDenoms(ctx context.Context, in *QueryPoolByDenomsRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error) {
	out := new(QueryPoolResponse)
	err := c.cc.Invoke(ctx, "/coral.dex.v1.Query/PoolByDenoms", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pools(ctx context.Context, in *QueryPoolsRequest, opts ...grpc.CallOption) (*QueryPoolsResponse, error) {
	out := new(QueryPoolsResponse)
	err := c.cc.Invoke(ctx, "/coral.dex.v1.Query/Pools", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Simulation(ctx context.Context, in *QuerySimulationRequest, opts ...grpc.CallOption) (*QuerySimulationResponse, error) {
	out := new(QuerySimulationResponse)
	err := c.cc.Invoke(ctx, "/coral.dex.v1.Query/Simulation", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) CollectedFees(ctx context.Context, in *QueryCollectedFeesRequest, opts ...grpc.CallOption) (*QueryCollectedFeesResponse, error) {
	out := new(QueryCollectedFeesResponse)
	err := c.cc.Invoke(ctx, "/coral.dex.v1.Query/CollectedFees", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
