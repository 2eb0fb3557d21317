package types

// Event types for the dex module
const (
	EventTypePoolCreated       = "pool_created"
	EventTypeProvideLiquidity  = "provide_liquidity"
	EventTypeWithdrawLiquidity = "withdraw_liquidity"
	EventTypeSwap              = "swap"
	EventTypeMultiHopSwap      = "multi_hop_swap"
	EventTypeUpdateFees        = "update_fees"
	EventTypeFreeze            = "pool_frozen"
	EventTypeProposeOwner      = "propose_owner"
	EventTypeClaimOwnership    = "claim_ownership"
	EventTypeDropOwnerProposal = "drop_owner_proposal"
	EventTypeDistributeFees    = "distribute_fees"
)

// Event attribute keys
const (
	AttributeKeyPoolID       = "pool_id"
	AttributeKeyCreator      = "creator"
	AttributeKeyCurve        = "curve"
	AttributeKeyDenomA       = "denom_a"
	AttributeKeyDenomB       = "denom_b"
	AttributeKeyReceiver     = "receiver"
	AttributeKeyShares       = "shares"
	AttributeKeyOfferAsset   = "offer_asset"
	AttributeKeyAskAsset     = "ask_asset"
	AttributeKeyReturnAmount = "return_amount"
	AttributeKeySpreadAmount = "spread_amount"
	AttributeKeyProtocolFee  = "protocol_fee"
	AttributeKeyLpFee        = "lp_fee"
	AttributeKeyRefundAssets = "refund_assets"
	AttributeKeyOperations   = "operations"
	AttributeKeyOwner        = "owner"
	AttributeKeyPendingOwner = "pending_owner"
	AttributeKeyExpires      = "expires"
	AttributeKeyFrozenBy     = "frozen_by"
	AttributeKeyAmount       = "amount"
	AttributeKeyDenom        = "denom"
)
