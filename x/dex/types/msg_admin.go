package types

import (
	sdkerrors "cosmossdk.io/errors"
	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgUpdateFees{}
	_ sdk.Msg = &MsgFreeze{}
	_ sdk.Msg = &MsgProposeOwner{}
	_ sdk.Msg = &MsgClaimOwnership{}
	_ sdk.Msg = &MsgDropOwnerProposal{}
	_ sdk.Msg = &MsgDistributeFees{}
)

// MsgUpdateFees replaces a pool's fee configuration. Owner only.
type MsgUpdateFees struct {
	Sender    string    `json:"sender"`
	PoolId    uint64    `json:"pool_id"`
	FeeConfig FeeConfig `json:"fee_config"`
}

func (m *MsgUpdateFees) Reset()         { *m = MsgUpdateFees{} }
func (m *MsgUpdateFees) String() string { return proto.CompactTextString(m) }
func (*MsgUpdateFees) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgUpdateFees) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgUpdateFees) Type() string { return "update_fees" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgUpdateFees) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgUpdateFees) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if m.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id cannot be zero")
	}
	return m.FeeConfig.Validate()
}

// MsgFreeze trips a pool's circuit breaker. One-way; only the circuit-breaker
// address set at pool creation may send it.
type MsgFreeze struct {
	Sender string `json:"sender"`
	PoolId uint64 `json:"pool_id"`
}

func (m *MsgFreeze) Reset()         { *m = MsgFreeze{} }
func (m *MsgFreeze) String() string { return proto.CompactTextString(m) }
func (*MsgFreeze) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgFreeze) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgFreeze) Type() string { return "freeze" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgFreeze) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgFreeze) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if m.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id cannot be zero")
	}
	return nil
}

// MsgProposeOwner opens a two-step ownership handover with an expiry.
type MsgProposeOwner struct {
	Sender   string `json:"sender"`
	PoolId   uint64 `json:"pool_id"`
	NewOwner string `json:"new_owner"`
	// ExpiresIn is the proposal lifetime in seconds.
	ExpiresIn int64 `json:"expires_in"`
}

func (m *MsgProposeOwner) Reset()         { *m = MsgProposeOwner{} }
func (m *MsgProposeOwner) String() string { return proto.CompactTextString(m) }
func (*MsgProposeOwner) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgProposeOwner) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgProposeOwner) Type() string { return "propose_owner" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgProposeOwner) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgProposeOwner) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if m.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id cannot be zero")
	}
	if _, err := sdk.AccAddressFromBech32(m.NewOwner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid new owner address: %s", err)
	}
	if m.NewOwner == m.Sender {
		return sdkerrors.Wrap(ErrInvalidInput, "new owner equals current owner")
	}
	if m.ExpiresIn <= 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "expiry must be positive")
	}
	return nil
}

// MsgClaimOwnership completes a pending handover; only the proposed owner
// may send it, and only before the proposal expires.
type MsgClaimOwnership struct {
	Sender string `json:"sender"`
	PoolId uint64 `json:"pool_id"`
}

func (m *MsgClaimOwnership) Reset()         { *m = MsgClaimOwnership{} }
func (m *MsgClaimOwnership) String() string { return proto.CompactTextString(m) }
func (*MsgClaimOwnership) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgClaimOwnership) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgClaimOwnership) Type() string { return "claim_ownership" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgClaimOwnership) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgClaimOwnership) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if m.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id cannot be zero")
	}
	return nil
}

// MsgDropOwnerProposal cancels a pending handover. Current owner only.
type MsgDropOwnerProposal struct {
	Sender string `json:"sender"`
	PoolId uint64 `json:"pool_id"`
}

func (m *MsgDropOwnerProposal) Reset()         { *m = MsgDropOwnerProposal{} }
func (m *MsgDropOwnerProposal) String() string { return proto.CompactTextString(m) }
func (*MsgDropOwnerProposal) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgDropOwnerProposal) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgDropOwnerProposal) Type() string { return "drop_owner_proposal" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgDropOwnerProposal) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgDropOwnerProposal) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if m.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id cannot be zero")
	}
	return nil
}

// MsgDistributeFees flushes accrued protocol fees through the splitter.
// Permissionless; the split itself is fixed by module params.
type MsgDistributeFees struct {
	Sender string `json:"sender"`
}

func (m *MsgDistributeFees) Reset()         { *m = MsgDistributeFees{} }
func (m *MsgDistributeFees) String() string { return proto.CompactTextString(m) }
func (*MsgDistributeFees) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgDistributeFees) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgDistributeFees) Type() string { return "distribute_fees" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgDistributeFees) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgDistributeFees) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	return nil
}
