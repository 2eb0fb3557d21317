package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// CurveKind selects the pricing curve of a pool.
type CurveKind string

const (
	// CurveXYK is the constant-product curve.
	CurveXYK CurveKind = "xyk"
	// CurveStable is the StableSwap curve with an amplification parameter.
	CurveStable CurveKind = "stable"
)

// Validate checks the curve kind and its amplification parameter.
func (c CurveKind) Validate(amp uint64) error {
	switch c {
	case CurveXYK:
		if amp != 0 {
			return ErrInvalidCurve.Wrap("xyk curve takes no amplification parameter")
		}
	case CurveStable:
		if amp == 0 || amp > MaxAmp {
			return ErrInvalidCurve.Wrapf("amplification must be in [1, %d]", MaxAmp)
		}
	default:
		return ErrInvalidCurve.Wrapf("unknown curve kind %q", c)
	}
	return nil
}

// MaxFeeBps is the denominator of basis-point fee rates.
const MaxFeeBps = 10_000

// FeeConfig holds the fee rates applied to every swap against a pool.
type FeeConfig struct {
	// ProtocolFeeBps is routed to the fee receiver (or the module fee pot).
	ProtocolFeeBps uint32 `json:"protocol_fee_bps"`
	// LpFeeBps stays in the pool reserves, accruing to share holders.
	LpFeeBps uint32 `json:"lp_fee_bps"`
	// FeeReceiver, when set, receives the protocol fee of every swap directly.
	// When empty the protocol fee accrues to the module's fee splitter.
	FeeReceiver string `json:"fee_receiver,omitempty"`
}

// Validate checks fee bounds.
func (fc FeeConfig) Validate() error {
	if fc.ProtocolFeeBps > MaxFeeBps || fc.LpFeeBps > MaxFeeBps {
		return ErrInvalidFee.Wrapf("fee bps must be in [0, %d]", MaxFeeBps)
	}
	if fc.ProtocolFeeBps+fc.LpFeeBps > MaxFeeBps {
		return ErrInvalidFee.Wrap("total fee cannot exceed 100%")
	}
	if fc.FeeReceiver != "" {
		if _, err := sdk.AccAddressFromBech32(fc.FeeReceiver); err != nil {
			return ErrInvalidFee.Wrapf("invalid fee receiver: %v", err)
		}
	}
	return nil
}

// ProtocolRate returns the protocol fee rate as a decimal.
func (fc FeeConfig) ProtocolRate() math.LegacyDec {
	return math.LegacyNewDec(int64(fc.ProtocolFeeBps)).QuoInt64(MaxFeeBps)
}

// LpRate returns the LP fee rate as a decimal.
func (fc FeeConfig) LpRate() math.LegacyDec {
	return math.LegacyNewDec(int64(fc.LpFeeBps)).QuoInt64(MaxFeeBps)
}

// OwnerProposal is a pending two-step ownership handover.
type OwnerProposal struct {
	Address string `json:"address"`
	// Expires is the unix time after which the proposal can no longer be claimed.
	Expires int64 `json:"expires"`
}

// Pool is the persistent state of a liquidity pool.
type Pool struct {
	Id     uint64 `json:"id"`
	DenomA string `json:"denom_a"`
	DenomB string `json:"denom_b"`

	ReserveA math.Int `json:"reserve_a"`
	ReserveB math.Int `json:"reserve_b"`

	Curve CurveKind `json:"curve"`
	// Amp is the StableSwap amplification parameter; zero for xyk pools.
	Amp uint64 `json:"amp,omitempty"`

	LpDenom     string   `json:"lp_denom"`
	TotalShares math.Int `json:"total_shares"`

	FeeConfig FeeConfig `json:"fee_config"`

	// TradingStarts is the unix time before which swaps are rejected.
	// The seeding deposit is exempt so liquidity can be placed ahead of launch.
	TradingStarts int64 `json:"trading_starts"`

	// Frozen is the one-way circuit breaker flag. Once set, only
	// WithdrawLiquidity is permitted.
	Frozen bool `json:"frozen"`
	// CircuitBreaker is the only address allowed to freeze the pool.
	CircuitBreaker string `json:"circuit_breaker,omitempty"`

	Owner        string         `json:"owner"`
	PendingOwner *OwnerProposal `json:"pending_owner,omitempty"`
}

// Validate checks internal consistency of a pool record.
func (p Pool) Validate() error {
	if p.DenomA == "" || p.DenomB == "" {
		return ErrInvalidPoolState.Wrap("denoms cannot be empty")
	}
	if p.DenomA == p.DenomB {
		return ErrInvalidPoolState.Wrap("pool denoms must be distinct")
	}
	if p.DenomA > p.DenomB {
		return ErrInvalidPoolState.Wrap("pool denoms must be sorted")
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.ReserveA.IsNegative() || p.ReserveB.IsNegative() {
		return ErrInvalidPoolState.Wrap("reserves cannot be negative")
	}
	if p.TotalShares.IsNil() || p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrap("total shares cannot be negative")
	}
	reservesEmpty := p.ReserveA.IsZero() && p.ReserveB.IsZero()
	if p.TotalShares.IsZero() != reservesEmpty {
		return ErrInvalidPoolState.Wrap("total shares must be zero exactly when reserves are zero")
	}
	if err := p.Curve.Validate(p.Amp); err != nil {
		return err
	}
	if err := p.FeeConfig.Validate(); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(p.Owner); err != nil {
		return ErrInvalidPoolState.Wrapf("invalid owner: %v", err)
	}
	return nil
}

// HasDenom reports whether the denom is one of the pool's pair.
func (p Pool) HasDenom(denom string) bool {
	return denom == p.DenomA || denom == p.DenomB
}

// ReservesFor returns the (offer-side, ask-side) reserves and the ask denom
// for a swap offering the given denom.
func (p Pool) ReservesFor(offerDenom string) (reserveIn, reserveOut math.Int, askDenom string, err error) {
	switch offerDenom {
	case p.DenomA:
		return p.ReserveA, p.ReserveB, p.DenomB, nil
	case p.DenomB:
		return p.ReserveB, p.ReserveA, p.DenomA, nil
	default:
		return math.Int{}, math.Int{}, "", ErrInvalidAsset.Wrapf("denom %s not in pool %d (%s/%s)", offerDenom, p.Id, p.DenomA, p.DenomB)
	}
}

// SetReserves writes back reserves for the given offer denom orientation.
func (p *Pool) SetReserves(offerDenom string, reserveIn, reserveOut math.Int) {
	if offerDenom == p.DenomA {
		p.ReserveA, p.ReserveB = reserveIn, reserveOut
	} else {
		p.ReserveB, p.ReserveA = reserveIn, reserveOut
	}
}

// SpotPrice returns reserveB/reserveA, the instantaneous price of denom A in
// units of denom B. Returns zero for an unseeded pool.
func (p Pool) SpotPrice() math.LegacyDec {
	if p.ReserveA.IsZero() {
		return math.LegacyZeroDec()
	}
	return math.LegacyNewDecFromInt(p.ReserveB).Quo(math.LegacyNewDecFromInt(p.ReserveA))
}
