package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgBond{}
	_ sdk.Msg = &MsgRebond{}
	_ sdk.Msg = &MsgUnbond{}
	_ sdk.Msg = &MsgClaim{}
)

// MsgBond commits tokens into an unbonding period to earn points.
type MsgBond struct {
	Sender string `json:"sender"`
	// Period is the duration in seconds of a configured unbonding period.
	Period int64    `json:"period"`
	Amount math.Int `json:"amount"`
}

func (m *MsgBond) Reset()         { *m = MsgBond{} }
func (m *MsgBond) String() string { return proto.CompactTextString(m) }
func (*MsgBond) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgBond) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgBond) Type() string { return "bond" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgBond) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgBond) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if m.Period <= 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "period must be positive")
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "bond amount must be positive")
	}
	return nil
}

// MsgRebond moves bonded tokens between two unbonding periods without
// passing through an unbonding delay.
type MsgRebond struct {
	Sender     string   `json:"sender"`
	FromPeriod int64    `json:"from_period"`
	ToPeriod   int64    `json:"to_period"`
	Amount     math.Int `json:"amount"`
}

func (m *MsgRebond) Reset()         { *m = MsgRebond{} }
func (m *MsgRebond) String() string { return proto.CompactTextString(m) }
func (*MsgRebond) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgRebond) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgRebond) Type() string { return "rebond" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgRebond) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgRebond) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if m.FromPeriod <= 0 || m.ToPeriod <= 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "periods must be positive")
	}
	if m.FromPeriod == m.ToPeriod {
		return sdkerrors.Wrap(ErrInvalidInput, "periods must differ")
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "rebond amount must be positive")
	}
	return nil
}

// MsgUnbond starts the release of bonded tokens. Points are removed at once;
// the tokens mature into a claim after the period's duration.
type MsgUnbond struct {
	Sender string   `json:"sender"`
	Period int64    `json:"period"`
	Amount math.Int `json:"amount"`
}

func (m *MsgUnbond) Reset()         { *m = MsgUnbond{} }
func (m *MsgUnbond) String() string { return proto.CompactTextString(m) }
func (*MsgUnbond) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgUnbond) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgUnbond) Type() string { return "unbond" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgUnbond) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgUnbond) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if m.Period <= 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "period must be positive")
	}
	if m.Amount.IsNil() || !m.Amount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "unbond amount must be positive")
	}
	return nil
}

// MsgClaim releases every matured claim of the sender. A call with nothing
// matured succeeds without effect.
type MsgClaim struct {
	Sender string `json:"sender"`
}

func (m *MsgClaim) Reset()         { *m = MsgClaim{} }
func (m *MsgClaim) String() string { return proto.CompactTextString(m) }
func (*MsgClaim) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgClaim) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgClaim) Type() string { return "claim" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgClaim) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgClaim) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	return nil
}
