package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgSwap{}
	_ sdk.Msg = &MsgMultiHopSwap{}
)

// MsgSwap trades the offer asset against a pool.
type MsgSwap struct {
	Sender      string   `json:"sender"`
	PoolId      uint64   `json:"pool_id"`
	OfferDenom  string   `json:"offer_denom"`
	OfferAmount math.Int `json:"offer_amount"`
	// BeliefPrice, in offer units per ask unit, bounds the execution price
	// together with MaxSpread.
	BeliefPrice *math.LegacyDec `json:"belief_price,omitempty"`
	// MaxSpread bounds the spread ratio; nil selects the module default.
	MaxSpread *math.LegacyDec `json:"max_spread,omitempty"`
	// To receives the swap proceeds; defaults to the sender.
	To string `json:"to,omitempty"`
}

func (m *MsgSwap) Reset()         { *m = MsgSwap{} }
func (m *MsgSwap) String() string { return proto.CompactTextString(m) }
func (*MsgSwap) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgSwap) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgSwap) Type() string { return "swap" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgSwap) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if m.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id cannot be zero")
	}
	if m.OfferDenom == "" {
		return sdkerrors.Wrap(ErrInvalidInput, "offer denom cannot be empty")
	}
	if m.OfferAmount.IsNil() || !m.OfferAmount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "offer amount must be positive")
	}
	if m.BeliefPrice != nil && !m.BeliefPrice.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "belief price must be positive")
	}
	if m.MaxSpread != nil && (m.MaxSpread.IsNegative() || m.MaxSpread.GT(math.LegacyOneDec())) {
		return sdkerrors.Wrap(ErrInvalidInput, "max spread must be in [0, 1]")
	}
	if m.To != "" {
		if _, err := sdk.AccAddressFromBech32(m.To); err != nil {
			return sdkerrors.Wrapf(ErrInvalidInput, "invalid recipient address: %s", err)
		}
	}
	return nil
}

// MsgMultiHopSwap routes the offer through a sequence of pools, asserting a
// minimum final return at the end of the route.
type MsgMultiHopSwap struct {
	Sender      string          `json:"sender"`
	Operations  []SwapOperation `json:"operations"`
	OfferAmount math.Int        `json:"offer_amount"`
	// MinimumReceive aborts the whole route if the final return falls short.
	MinimumReceive *math.Int `json:"minimum_receive,omitempty"`
	// MaxSpread applies per hop; nil selects the module default.
	MaxSpread *math.LegacyDec `json:"max_spread,omitempty"`
	// Receiver of the final return; defaults to the sender.
	Receiver string `json:"receiver,omitempty"`
}

func (m *MsgMultiHopSwap) Reset()         { *m = MsgMultiHopSwap{} }
func (m *MsgMultiHopSwap) String() string { return proto.CompactTextString(m) }
func (*MsgMultiHopSwap) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgMultiHopSwap) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgMultiHopSwap) Type() string { return "multi_hop_swap" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgMultiHopSwap) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgMultiHopSwap) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if len(m.Operations) == 0 {
		return sdkerrors.Wrap(ErrInvalidSwapRoute, "route cannot be empty")
	}
	for i, op := range m.Operations {
		if op.OfferDenom == "" || op.AskDenom == "" {
			return sdkerrors.Wrapf(ErrInvalidSwapRoute, "operation %d has empty denoms", i)
		}
		if op.OfferDenom == op.AskDenom {
			return sdkerrors.Wrapf(ErrInvalidSwapRoute, "operation %d swaps %s into itself", i, op.OfferDenom)
		}
		if i > 0 && m.Operations[i-1].AskDenom != op.OfferDenom {
			return sdkerrors.Wrapf(ErrInvalidSwapRoute, "operation %d offer denom %s does not continue the route", i, op.OfferDenom)
		}
	}
	if m.OfferAmount.IsNil() || !m.OfferAmount.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "offer amount must be positive")
	}
	if m.MinimumReceive != nil && !m.MinimumReceive.IsPositive() {
		return sdkerrors.Wrap(ErrInvalidInput, "minimum receive must be positive")
	}
	if m.MaxSpread != nil && (m.MaxSpread.IsNegative() || m.MaxSpread.GT(math.LegacyOneDec())) {
		return sdkerrors.Wrap(ErrInvalidInput, "max spread must be in [0, 1]")
	}
	if m.Receiver != "" {
		if _, err := sdk.AccAddressFromBech32(m.Receiver); err != nil {
			return sdkerrors.Wrapf(ErrInvalidInput, "invalid receiver address: %s", err)
		}
	}
	return nil
}
