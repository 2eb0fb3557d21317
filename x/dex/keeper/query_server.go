package keeper

import (
	"context"

	"github.com/coral-dex/coral/x/dex/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the dex QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the dex module parameters
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

// Pool returns a pool by id
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	pool, err := qs.GetPool(goCtx, req.PoolId)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolResponse{Pool: pool}, nil
}

// PoolByDenoms returns the pool trading the given pair, order-independent
func (qs queryServer) PoolByDenoms(goCtx context.Context, req *types.QueryPoolByDenomsRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	pool, err := qs.GetPoolByDenoms(goCtx, req.DenomA, req.DenomB)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolResponse{Pool: pool}, nil
}

// Pools returns all pools in id order
func (qs queryServer) Pools(goCtx context.Context, req *types.QueryPoolsRequest) (*types.QueryPoolsResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	pools, err := qs.GetAllPools(goCtx)
	if err != nil {
		return nil, err
	}
	return &types.QueryPoolsResponse{Pools: pools}, nil
}

// Simulation prices a swap against the current reserves without mutating
// state. The returned amounts match what an immediate Swap would settle.
func (qs queryServer) Simulation(goCtx context.Context, req *types.QuerySimulationRequest) (*types.QuerySimulationResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	pool, err := qs.GetPool(goCtx, req.PoolId)
	if err != nil {
		return nil, err
	}
	reserveIn, reserveOut, _, err := pool.ReservesFor(req.OfferDenom)
	if err != nil {
		return nil, err
	}

	grossReturn, spread, err := types.SwapOutput(pool.Curve, pool.Amp, reserveIn, reserveOut, req.OfferAmount)
	if err != nil {
		return nil, err
	}
	protocolFee := pool.FeeConfig.ProtocolRate().MulInt(grossReturn).TruncateInt()
	lpFee := pool.FeeConfig.LpRate().MulInt(grossReturn).TruncateInt()

	return &types.QuerySimulationResponse{
		ReturnAmount: grossReturn.Sub(protocolFee).Sub(lpFee),
		SpreadAmount: spread,
		ProtocolFee:  protocolFee,
		LpFee:        lpFee,
	}, nil
}

// CollectedFees returns the accrued protocol fee balances
func (qs queryServer) CollectedFees(goCtx context.Context, req *types.QueryCollectedFeesRequest) (*types.QueryCollectedFeesResponse, error) {
	if req == nil {
		return nil, types.ErrInvalidInput.Wrap("empty request")
	}
	return &types.QueryCollectedFeesResponse{
		CollectedFees: qs.GetAllCollectedFees(goCtx),
	}, nil
}
