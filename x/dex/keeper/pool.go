package keeper

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coral-dex/coral/x/dex/types"
)

// NextPoolID returns the next pool ID and increments the counter
func (k Keeper) NextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolCountKey)

	poolID := uint64(1)
	if bz != nil {
		poolID = binary.BigEndian.Uint64(bz)
	}

	next := make([]byte, 8)
	binary.BigEndian.PutUint64(next, poolID+1)
	store.Set(types.PoolCountKey, next)
	return poolID
}

// SetNextPoolID sets the pool ID counter; used by genesis import.
func (k Keeper) SetNextPoolID(ctx context.Context, poolID uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	k.getStore(ctx).Set(types.PoolCountKey, bz)
}

// PeekNextPoolID returns the counter without incrementing it
func (k Keeper) PeekNextPoolID(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(types.PoolCountKey)
	if bz == nil {
		return 1
	}
	return binary.BigEndian.Uint64(bz)
}

// GetPool retrieves a pool by its numeric id.
// Returns ErrPoolNotFound if the pool does not exist.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolKey(poolID))
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := json.Unmarshal(bz, &pool); err != nil {
		return types.Pool{}, fmt.Errorf("GetPool: unmarshal pool %d: %w", poolID, err)
	}
	return pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	bz, err := json.Marshal(pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %d: %w", pool.Id, err)
	}
	k.getStore(ctx).Set(types.PoolKey(pool.Id), bz)
	return nil
}

// GetPoolByDenoms retrieves a pool by its denom pair, order-independent.
func (k Keeper) GetPoolByDenoms(ctx context.Context, denomA, denomB string) (types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(types.PoolByDenomsKey(denomA, denomB))
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("no pool for pair %s/%s", denomA, denomB)
	}
	return k.GetPool(ctx, binary.BigEndian.Uint64(bz))
}

// setPoolByDenomsIndex indexes a pool id under its sorted denom pair
func (k Keeper) setPoolByDenomsIndex(ctx context.Context, denomA, denomB string, poolID uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	k.getStore(ctx).Set(types.PoolByDenomsKey(denomA, denomB), bz)
}

// IteratePools walks all pools in id order until the callback stops it
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := json.Unmarshal(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns all pools in id order
func (k Keeper) GetAllPools(ctx context.Context) ([]types.Pool, error) {
	var pools []types.Pool
	err := k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools, err
}

// CreatePool registers a new pool for a unique denom pair and seeds it with
// the creator's deposit. The first minted shares price the pool; a fixed
// minimum stays locked in the module account so the share price cannot be
// manipulated by emptying the pool.
func (k Keeper) CreatePool(ctx context.Context, msg *types.MsgCreatePool) (types.Pool, math.Int, error) {
	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return types.Pool{}, math.Int{}, types.ErrInvalidInput.Wrapf("invalid creator address: %v", err)
	}

	denomA, denomB := msg.DenomA, msg.DenomB
	amountA, amountB := msg.AmountA, msg.AmountB
	if denomA > denomB {
		denomA, denomB = denomB, denomA
		amountA, amountB = amountB, amountA
	}

	if _, err := k.GetPoolByDenoms(ctx, denomA, denomB); err == nil {
		return types.Pool{}, math.Int{}, types.ErrPoolAlreadyExists.Wrapf("pair %s/%s", denomA, denomB)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Pool{}, math.Int{}, err
	}
	if amountA.LT(params.MinInitialLiquidity) || amountB.LT(params.MinInitialLiquidity) {
		return types.Pool{}, math.Int{}, types.ErrMinimumLiquidity.Wrapf(
			"seed amounts %s/%s below minimum %s", amountA, amountB, params.MinInitialLiquidity)
	}

	initialShares, err := types.SharesForDeposit(msg.Curve, msg.Amp,
		math.ZeroInt(), math.ZeroInt(), math.ZeroInt(), amountA, amountB, math.LegacyDec{})
	if err != nil {
		return types.Pool{}, math.Int{}, err
	}
	if initialShares.LTE(types.MinimumLiquidityAmount) {
		return types.Pool{}, math.Int{}, types.ErrMinimumLiquidity.Wrapf(
			"initial shares %s not above the locked minimum %s", initialShares, types.MinimumLiquidityAmount)
	}

	poolID := k.NextPoolID(ctx)
	pool := types.Pool{
		Id:             poolID,
		DenomA:         denomA,
		DenomB:         denomB,
		ReserveA:       amountA,
		ReserveB:       amountB,
		Curve:          msg.Curve,
		Amp:            msg.Amp,
		LpDenom:        types.LPDenom(poolID),
		TotalShares:    initialShares,
		FeeConfig:      msg.FeeConfig,
		TradingStarts:  msg.TradingStarts,
		CircuitBreaker: msg.CircuitBreaker,
		Owner:          msg.Creator,
	}
	if err := pool.Validate(); err != nil {
		return types.Pool{}, math.Int{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)

	deposit := sdk.NewCoins(sdk.NewCoin(denomA, amountA), sdk.NewCoin(denomB, amountB))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(sdkCtx, creator, types.ModuleName, deposit); err != nil {
		return types.Pool{}, math.Int{}, types.ErrInsufficientFunds.Wrapf("seeding pool: %v", err)
	}

	// Mint the full share supply, keep the locked minimum in the module
	// account and hand the rest to the creator.
	creatorShares := initialShares.Sub(types.MinimumLiquidityAmount)
	if err := k.bankKeeper.MintCoins(sdkCtx, types.ModuleName, sdk.NewCoins(sdk.NewCoin(pool.LpDenom, initialShares))); err != nil {
		return types.Pool{}, math.Int{}, fmt.Errorf("CreatePool: mint shares: %w", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(sdkCtx, types.ModuleName, creator, sdk.NewCoins(sdk.NewCoin(pool.LpDenom, creatorShares))); err != nil {
		return types.Pool{}, math.Int{}, fmt.Errorf("CreatePool: send shares: %w", err)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return types.Pool{}, math.Int{}, err
	}
	k.setPoolByDenomsIndex(ctx, denomA, denomB, poolID)

	k.metrics.PoolsCreated.Inc()

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypePoolCreated,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyCreator, msg.Creator),
			sdk.NewAttribute(types.AttributeKeyDenomA, denomA),
			sdk.NewAttribute(types.AttributeKeyDenomB, denomB),
			sdk.NewAttribute(types.AttributeKeyCurve, string(pool.Curve)),
			sdk.NewAttribute(types.AttributeKeyShares, creatorShares.String()),
		),
	)

	return pool, creatorShares, nil
}
