package types

import (
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/cosmos/gogoproto/proto"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgCreatePool{}
	_ sdk.Msg = &MsgProvideLiquidity{}
	_ sdk.Msg = &MsgWithdrawLiquidity{}
)

// MsgCreatePool creates and registers a new liquidity pool.
type MsgCreatePool struct {
	Creator string   `json:"creator"`
	DenomA  string   `json:"denom_a"`
	DenomB  string   `json:"denom_b"`
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`

	Curve CurveKind `json:"curve"`
	// Amp is required for stable pools, forbidden for xyk.
	Amp uint64 `json:"amp,omitempty"`

	FeeConfig FeeConfig `json:"fee_config"`
	// TradingStarts is the unix time when swapping opens; zero opens at once.
	TradingStarts int64 `json:"trading_starts,omitempty"`
	// CircuitBreaker may later freeze the pool; empty disables freezing.
	CircuitBreaker string `json:"circuit_breaker,omitempty"`
}

func (m *MsgCreatePool) Reset()         { *m = MsgCreatePool{} }
func (m *MsgCreatePool) String() string { return proto.CompactTextString(m) }
func (*MsgCreatePool) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgCreatePool) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgCreatePool) Type() string { return "create_pool" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgCreatePool) GetSigners() []sdk.AccAddress {
	creator, err := sdk.AccAddressFromBech32(m.Creator)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{creator}
}

// ValidateBasic performs stateless validation
func (m MsgCreatePool) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Creator); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid creator address: %s", err)
	}
	if m.DenomA == "" || m.DenomB == "" {
		return sdkerrors.Wrap(ErrInvalidInput, "denoms cannot be empty")
	}
	if m.DenomA == m.DenomB {
		return sdkerrors.Wrap(ErrInvalidInput, "denoms must be distinct")
	}
	if m.AmountA.IsNil() || !m.AmountA.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "amount A must be positive")
	}
	if m.AmountB.IsNil() || !m.AmountB.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "amount B must be positive")
	}
	if err := m.Curve.Validate(m.Amp); err != nil {
		return err
	}
	if err := m.FeeConfig.Validate(); err != nil {
		return err
	}
	if m.TradingStarts < 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "trading starts cannot be negative")
	}
	if m.CircuitBreaker != "" {
		if _, err := sdk.AccAddressFromBech32(m.CircuitBreaker); err != nil {
			return sdkerrors.Wrapf(ErrInvalidInput, "invalid circuit breaker address: %s", err)
		}
	}
	return nil
}

// MsgProvideLiquidity deposits both pool assets in exchange for LP shares.
type MsgProvideLiquidity struct {
	Sender  string   `json:"sender"`
	PoolId  uint64   `json:"pool_id"`
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
	// SlippageTolerance bounds the accepted deposit-to-pool ratio deviation;
	// nil selects the module default.
	SlippageTolerance *math.LegacyDec `json:"slippage_tolerance,omitempty"`
	// Receiver of the minted shares; defaults to the sender.
	Receiver string `json:"receiver,omitempty"`
}

func (m *MsgProvideLiquidity) Reset()         { *m = MsgProvideLiquidity{} }
func (m *MsgProvideLiquidity) String() string { return proto.CompactTextString(m) }
func (*MsgProvideLiquidity) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgProvideLiquidity) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgProvideLiquidity) Type() string { return "provide_liquidity" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgProvideLiquidity) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgProvideLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if m.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id cannot be zero")
	}
	if m.AmountA.IsNil() || !m.AmountA.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "amount A must be positive")
	}
	if m.AmountB.IsNil() || !m.AmountB.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "amount B must be positive")
	}
	if m.SlippageTolerance != nil && (m.SlippageTolerance.IsNegative() || m.SlippageTolerance.GTE(math.LegacyOneDec())) {
		return sdkerrors.Wrap(ErrInvalidInput, "slippage tolerance must be in [0, 1)")
	}
	if m.Receiver != "" {
		if _, err := sdk.AccAddressFromBech32(m.Receiver); err != nil {
			return sdkerrors.Wrapf(ErrInvalidInput, "invalid receiver address: %s", err)
		}
	}
	return nil
}

// MsgWithdrawLiquidity burns LP shares for the proportional reserves.
type MsgWithdrawLiquidity struct {
	Sender string   `json:"sender"`
	PoolId uint64   `json:"pool_id"`
	Shares math.Int `json:"shares"`
}

func (m *MsgWithdrawLiquidity) Reset()         { *m = MsgWithdrawLiquidity{} }
func (m *MsgWithdrawLiquidity) String() string { return proto.CompactTextString(m) }
func (*MsgWithdrawLiquidity) ProtoMessage()    {}

// Route implements the legacy sdk.Msg interface
func (m MsgWithdrawLiquidity) Route() string { return RouterKey }

// Type implements the legacy sdk.Msg interface
func (m MsgWithdrawLiquidity) Type() string { return "withdraw_liquidity" }

// GetSigners implements the legacy sdk.Msg interface
func (m MsgWithdrawLiquidity) GetSigners() []sdk.AccAddress {
	sender, err := sdk.AccAddressFromBech32(m.Sender)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{sender}
}

// ValidateBasic performs stateless validation
func (m MsgWithdrawLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(m.Sender); err != nil {
		return sdkerrors.Wrapf(ErrInvalidInput, "invalid sender address: %s", err)
	}
	if m.PoolId == 0 {
		return sdkerrors.Wrap(ErrInvalidInput, "pool id cannot be zero")
	}
	if m.Shares.IsNil() || !m.Shares.IsPositive() {
		return sdkerrors.Wrap(ErrZeroAmount, "shares must be positive")
	}
	return nil
}
