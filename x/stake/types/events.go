package types

// Event types for the stake module
const (
	EventTypeBond               = "bond"
	EventTypeRebond             = "rebond"
	EventTypeUnbond             = "unbond"
	EventTypeClaim              = "claim"
	EventTypeCreateFlow         = "create_distribution_flow"
	EventTypeFundFlow           = "fund_distribution_flow"
	EventTypeWithdrawRewards    = "withdraw_rewards"
	EventTypeDelegateWithdrawal = "delegate_withdrawal"
)

// Event attribute keys
const (
	AttributeKeySender     = "sender"
	AttributeKeyAmount     = "amount"
	AttributeKeyPeriod     = "period"
	AttributeKeyFromPeriod = "from_period"
	AttributeKeyToPeriod   = "to_period"
	AttributeKeyPoints     = "points"
	AttributeKeyReleaseAt  = "release_at"
	AttributeKeyFlowID     = "flow_id"
	AttributeKeyDenom      = "denom"
	AttributeKeyManager    = "manager"
	AttributeKeyEndTime    = "end_time"
	AttributeKeyReceiver   = "receiver"
	AttributeKeyDelegate   = "delegate"
)
