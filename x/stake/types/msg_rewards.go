package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgCreateDistributionFlow{}
	_ sdk.Msg = &MsgFundDistribution{}
	_ sdk.Msg = &MsgWithdrawRewards{}
	_ sdk.Msg = &MsgDelegateWithdrawal{}
)

// MsgCreateDistributionFlow opens a new reward stream. At most one flow may
// exist per reward denom.
type MsgCreateDistributionFlow struct {
	Sender      string `json:"sender"`
	RewardDenom string `json:"reward_denom"`
	// Manager may fund the flow; defaults to the sender.
	Manager string `json:"manager,omitempty"`
}

func (m *MsgCreateDistributionFlow) Reset()         { *m = MsgCreateDistributionFlow{} }
func (m *MsgCreateDistributionFlow) String() string { return proto.CompactTextString(m) }
func (*MsgCreateDistributionFlow) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgCreateDistributionFlow) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgCreateDistributionFlow) Type() string { return "create_distribution_flow" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgCreateDistributionFlow) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgCreateDistributionFlow) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if err := sdk.ValidateDenom(m.RewardDenom); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid reward denom: %s", err)
	}
	if m.Manager != "" {
		if _, err := sdk.AccAddressFromBech32(m.Manager); err != nil {
			return sdkerrors.Wrapf(ErrInvalidInput, "invalid manager address: %s", err)
		}
	}
	return nil
}

// MsgFundDistribution pays rewards into a flow and spreads them, together
// with whatever the old schedule had not yet emitted, over a fresh duration.
type MsgFundDistribution struct {
	Sender string   `json:"sender"`
	FlowId uint64   `json:"flow_id"`
	Amount math.Int `json:"amount"`
	// Duration of the new emission window in seconds, starting now.
	Duration int64 `json:"duration"`
}

func (m *MsgFundDistribution) Reset()         { *m = MsgFundDistribution{} }
func (m *MsgFundDistribution) String() string { return proto.CompactTextString(m) }
func (*MsgFundDistribution) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgFundDistribution) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgFundDistribution) Type() string { return "fund_distribution" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgFundDistribution) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgFundDistribution) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if m.FlowId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "flow id must be positive")
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "funding amount must be positive")
	}
	if m.Duration <= 0 {
		return sdkerrors.Wrap(ErrInvalidSchedule, "duration must be positive")
	}
	return nil
}

// MsgWithdrawRewards settles and pays out withdrawable rewards. The sender
// must be the owner or the owner's delegated withdrawer.
type MsgWithdrawRewards struct {
	Sender string `json:"sender"`
	// Owner of the rewards; defaults to the sender.
	Owner string `json:"owner,omitempty"`
	// FlowId selects one flow; zero withdraws from all flows.
	FlowId uint64 `json:"flow_id,omitempty"`
	// Receiver of the payout; defaults to the owner.
	Receiver string `json:"receiver,omitempty"`
}

func (m *MsgWithdrawRewards) Reset()         { *m = MsgWithdrawRewards{} }
func (m *MsgWithdrawRewards) String() string { return proto.CompactTextString(m) }
func (*MsgWithdrawRewards) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgWithdrawRewards) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgWithdrawRewards) Type() string { return "withdraw_rewards" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgWithdrawRewards) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgWithdrawRewards) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if m.Owner != "" {
		if _, err := sdk.AccAddressFromBech32(m.Owner); err != nil {
			return sdkerrors.Wrapf(ErrInvalidInput, "invalid owner address: %s", err)
		}
	}
	if m.Receiver != "" {
		if _, err := sdk.AccAddressFromBech32(m.Receiver); err != nil {
			return sdkerrors.Wrapf(ErrInvalidInput, "invalid receiver address: %s", err)
		}
	}
	return nil
}

// MsgDelegateWithdrawal authorizes one address to withdraw the sender's
// rewards, replacing any prior delegate. The bond itself stays put.
type MsgDelegateWithdrawal struct {
	Sender   string `json:"sender"`
	Delegate string `json:"delegate"`
}

func (m *MsgDelegateWithdrawal) Reset()         { *m = MsgDelegateWithdrawal{} }
func (m *MsgDelegateWithdrawal) String() string { return proto.CompactTextString(m) }
func (*MsgDelegateWithdrawal) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgDelegateWithdrawal) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgDelegateWithdrawal) Type() string { return "delegate_withdrawal" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgDelegateWithdrawal) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgDelegateWithdrawal) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(m.Delegate); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid delegate address: %s", err)
	}
	if m.Delegate == m.Sender {
		return sdkerrors.Wrap(ErrInvalidInput, "delegate must differ from sender")
	}
	return nil
}
