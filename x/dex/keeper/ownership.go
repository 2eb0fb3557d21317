package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/coral-dex/coral/x/dex/types"
)

// UpdateFees replaces the fee config of a pool. Only the pool owner may call
// it, and not once the pool is frozen.
func (k Keeper) UpdateFees(ctx context.Context, msg *types.MsgUpdateFees) error {
	pool, err := k.GetPool(ctx, msg.PoolId)
	if err != nil {
		return err
	}
	if pool.Frozen {
		return types.ErrFrozen.Wrapf("pool %d accepts only withdrawals", pool.Id)
	}
	if msg.Sender != pool.Owner {
		return types.ErrUnauthorized.Wrapf("only the owner of pool %d may update fees", pool.Id)
	}
	if err := msg.FeeConfig.Validate(); err != nil {
		return err
	}

	pool.FeeConfig = msg.FeeConfig
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateFees,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(sdk.AttributeKeySender, msg.Sender),
		),
	)
	return nil
}

// Freeze trips the circuit breaker of a pool. Only the configured circuit
// breaker address may call it, and the transition is one-way: a frozen pool
// serves withdrawals and nothing else, forever.
func (k Keeper) Freeze(ctx context.Context, msg *types.MsgFreeze) error {
	pool, err := k.GetPool(ctx, msg.PoolId)
	if err != nil {
		return err
	}
	if pool.CircuitBreaker == "" {
		return types.ErrUnauthorized.Wrapf("pool %d has no circuit breaker", pool.Id)
	}
	if msg.Sender != pool.CircuitBreaker {
		return types.ErrUnauthorized.Wrapf("only the circuit breaker of pool %d may freeze it", pool.Id)
	}
	if pool.Frozen {
		return types.ErrFrozen.Wrapf("pool %d is already frozen", pool.Id)
	}

	pool.Frozen = true
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	k.metrics.PoolsFrozen.Inc()
	k.Logger(ctx).Info("pool frozen", "pool_id", pool.Id, "by", msg.Sender)

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFreeze,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(types.AttributeKeyFrozenBy, msg.Sender),
		),
	)
	return nil
}

// ProposeOwner starts a two-step ownership handover. The proposal replaces
// any earlier pending one and carries an expiry after which the nominee can
// no longer claim.
func (k Keeper) ProposeOwner(ctx context.Context, msg *types.MsgProposeOwner) error {
	pool, err := k.GetPool(ctx, msg.PoolId)
	if err != nil {
		return err
	}
	if msg.Sender != pool.Owner {
		return types.ErrUnauthorized.Wrapf("only the owner of pool %d may propose a new owner", pool.Id)
	}

	expires := sdk.UnwrapSDKContext(ctx).BlockTime().Unix() + msg.ExpiresIn
	pool.PendingOwner = &types.OwnerProposal{
		Address: msg.NewOwner,
		Expires: expires,
	}
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeProposeOwner,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(types.AttributeKeyOwner, pool.Owner),
			sdk.NewAttribute(types.AttributeKeyPendingOwner, msg.NewOwner),
			sdk.NewAttribute(types.AttributeKeyExpires, fmt.Sprintf("%d", expires)),
		),
	)
	return nil
}

// ClaimOwnership completes a pending handover. Only the nominee may claim,
// and only before the proposal expires.
func (k Keeper) ClaimOwnership(ctx context.Context, msg *types.MsgClaimOwnership) error {
	pool, err := k.GetPool(ctx, msg.PoolId)
	if err != nil {
		return err
	}
	if pool.PendingOwner == nil {
		return types.ErrNoProposal.Wrapf("pool %d has no pending owner", pool.Id)
	}
	if msg.Sender != pool.PendingOwner.Address {
		return types.ErrUnauthorized.Wrapf("only the proposed owner of pool %d may claim", pool.Id)
	}
	if now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix(); now > pool.PendingOwner.Expires {
		return types.ErrProposalExpired.Wrapf(
			"proposal for pool %d expired at %d, current time %d", pool.Id, pool.PendingOwner.Expires, now)
	}

	previous := pool.Owner
	pool.Owner = pool.PendingOwner.Address
	pool.PendingOwner = nil
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeClaimOwnership,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(types.AttributeKeyOwner, pool.Owner),
			sdk.NewAttribute("previous_owner", previous),
		),
	)
	return nil
}

// DropOwnerProposal withdraws a pending handover. The current owner may drop
// it at any time; the nominee may also renounce their own pending claim.
func (k Keeper) DropOwnerProposal(ctx context.Context, msg *types.MsgDropOwnerProposal) error {
	pool, err := k.GetPool(ctx, msg.PoolId)
	if err != nil {
		return err
	}
	if pool.PendingOwner == nil {
		return types.ErrNoProposal.Wrapf("pool %d has no pending owner", pool.Id)
	}
	if msg.Sender != pool.Owner && msg.Sender != pool.PendingOwner.Address {
		return types.ErrUnauthorized.Wrapf(
			"only the owner or the proposed owner of pool %d may drop the proposal", pool.Id)
	}

	dropped := pool.PendingOwner.Address
	pool.PendingOwner = nil
	if err := k.SetPool(ctx, pool); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeDropOwnerProposal,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", pool.Id)),
			sdk.NewAttribute(types.AttributeKeyPendingOwner, dropped),
		),
	)
	return nil
}
