package types

import (
	"context"

	"cosmossdk.io/math"
	proto "github.com/cosmos/gogoproto/proto"
)

// QueryServer defines the dex query interface. All queries are pure reads.
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	PoolByDenoms(context.Context, *QueryPoolByDenomsRequest) (*QueryPoolResponse, error)
	Pools(context.Context, *QueryPoolsRequest) (*QueryPoolsResponse, error)
	Simulation(context.Context, *QuerySimulationRequest) (*QuerySimulationResponse, error)
	CollectedFees(context.Context, *QueryCollectedFeesRequest) (*QueryCollectedFeesResponse, error)
}

// QueryParamsRequest requests the module params
type QueryParamsRequest struct{}

// QueryParamsResponse returns the module params
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPoolRequest requests a pool by id
type QueryPoolRequest struct {
	PoolId uint64 `json:"pool_id"`
}

// QueryPoolByDenomsRequest requests a pool by its denom pair, order
// independent. This is the factory lookup consumed by routers.
type QueryPoolByDenomsRequest struct {
	DenomA string `json:"denom_a"`
	DenomB string `json:"denom_b"`
}

// QueryPoolResponse returns one pool
type QueryPoolResponse struct {
	Pool Pool `json:"pool"`
}

// QueryPoolsRequest requests all pools (bounded)
type QueryPoolsRequest struct{}

// QueryPoolsResponse returns all pools
type QueryPoolsResponse struct {
	Pools []Pool `json:"pools"`
}

// QuerySimulationRequest simulates a swap without mutating state
type QuerySimulationRequest struct {
	PoolId      uint64   `json:"pool_id"`
	OfferDenom  string   `json:"offer_denom"`
	OfferAmount math.Int `json:"offer_amount"`
}

// QuerySimulationResponse returns the simulated settlement amounts
type QuerySimulationResponse struct {
	ReturnAmount math.Int `json:"return_amount"`
	SpreadAmount math.Int `json:"spread_amount"`
	ProtocolFee  math.Int `json:"protocol_fee"`
	LpFee        math.Int `json:"lp_fee"`
}

// QueryCollectedFeesRequest requests the accrued protocol fee balances
type QueryCollectedFeesRequest struct{}

// QueryCollectedFeesResponse returns the accrued protocol fee balances
type QueryCollectedFeesResponse struct {
	CollectedFees []CollectedFee `json:"collected_fees"`
}

func (m *QueryParamsRequest) Reset()         { *m = QueryParamsRequest{} }
func (m *QueryParamsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryParamsRequest) ProtoMessage()    {}

func (m *QueryParamsResponse) Reset()         { *m = QueryParamsResponse{} }
func (m *QueryParamsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryParamsResponse) ProtoMessage()    {}

func (m *QueryPoolRequest) Reset()         { *m = QueryPoolRequest{} }
func (m *QueryPoolRequest) String() string { return proto.CompactTextString(m) }
func (*QueryPoolRequest) ProtoMessage()    {}

func (m *QueryPoolByDenomsRequest) Reset()         { *m = QueryPoolByDenomsRequest{} }
func (m *QueryPoolByDenomsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryPoolByDenomsRequest) ProtoMessage()    {}

func (m *QueryPoolResponse) Reset()         { *m = QueryPoolResponse{} }
func (m *QueryPoolResponse) String() string { return proto.CompactTextString(m) }
func (*QueryPoolResponse) ProtoMessage()    {}

func (m *QueryPoolsRequest) Reset()         { *m = QueryPoolsRequest{} }
func (m *QueryPoolsRequest) String() string { return proto.CompactTextString(m) }
func (*QueryPoolsRequest) ProtoMessage()    {}

func (m *QueryPoolsResponse) Reset()         { *m = QueryPoolsResponse{} }
func (m *QueryPoolsResponse) String() string { return proto.CompactTextString(m) }
func (*QueryPoolsResponse) ProtoMessage()    {}

func (m *QuerySimulationRequest) Reset()         { *m = QuerySimulationRequest{} }
func (m *QuerySimulationRequest) String() string { return proto.CompactTextString(m) }
func (*QuerySimulationRequest) ProtoMessage()    {}

func (m *QuerySimulationResponse) Reset()         { *m = QuerySimulationResponse{} }
func (m *QuerySimulationResponse) String() string { return proto.CompactTextString(m) }
func (*QuerySimulationResponse) ProtoMessage()    {}

func (m *QueryCollectedFeesRequest) Reset()         { *m = QueryCollectedFeesRequest{} }
func (m *QueryCollectedFeesRequest) String() string { return proto.CompactTextString(m) }
func (*QueryCollectedFeesRequest) ProtoMessage()    {}

func (m *QueryCollectedFeesResponse) Reset()         { *m = QueryCollectedFeesResponse{} }
func (m *QueryCollectedFeesResponse) String() string { return proto.CompactTextString(m) }
func (*QueryCollectedFeesResponse) ProtoMessage()    {}
