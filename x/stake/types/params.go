package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// UnbondingPeriod pairs a commitment duration with its point-weight
// multiplier. Longer commitments earn more points per bonded token.
type UnbondingPeriod struct {
	// Duration of the unbonding delay in seconds.
	Duration int64 `json:"duration"`
	// Multiplier applied to bonded amounts when computing points.
	Multiplier math.LegacyDec `json:"multiplier"`
}

// Params holds the stake module parameters. The unbonding period set is
// fixed at genesis; there is no runtime add or remove.
type Params struct {
	// StakedDenom is the denom accepted for bonding, typically an LP share.
	StakedDenom string `json:"staked_denom"`
	// MinBond is the smallest amount accepted by a single Bond call.
	MinBond math.Int `json:"min_bond"`
	// TokensPerPower normalizes points into rewards power.
	TokensPerPower math.Int `json:"tokens_per_power"`
	// UnbondingPeriods lists the configured commitment tiers, ascending.
	UnbondingPeriods []UnbondingPeriod `json:"unbonding_periods"`
	// MaxDistributionFlows caps the number of concurrent reward flows.
	MaxDistributionFlows uint32 `json:"max_distribution_flows"`
}

// DefaultParams returns default parameters for the stake module.
func DefaultParams() Params {
	return Params{
		StakedDenom:    "ucoral",
		MinBond:        math.NewInt(1),
		TokensPerPower: math.NewInt(1_000),
		UnbondingPeriods: []UnbondingPeriod{
			{Duration: 7 * 24 * 3600, Multiplier: math.LegacyOneDec()},
			{Duration: 14 * 24 * 3600, Multiplier: math.LegacyMustNewDecFromStr("2.0")},
			{Duration: 28 * 24 * 3600, Multiplier: math.LegacyMustNewDecFromStr("3.0")},
		},
		MaxDistributionFlows: 10,
	}
}

// Period returns the configured period with the given duration.
func (p Params) Period(duration int64) (UnbondingPeriod, bool) {
	for _, period := range p.UnbondingPeriods {
		if period.Duration == duration {
			return period, true
		}
	}
	return UnbondingPeriod{}, false
}

// Validate ensures parameter bounds.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.StakedDenom); err != nil {
		return fmt.Errorf("invalid staked denom: %w", err)
	}
	if p.MinBond.IsNil() || p.MinBond.IsNegative() {
		return fmt.Errorf("min bond must be non-negative")
	}
	if p.TokensPerPower.IsNil() || !p.TokensPerPower.IsPositive() {
		return fmt.Errorf("tokens per power must be positive")
	}
	if len(p.UnbondingPeriods) == 0 {
		return fmt.Errorf("at least one unbonding period is required")
	}
	var prev int64
	for i, period := range p.UnbondingPeriods {
		if period.Duration <= prev {
			return fmt.Errorf("unbonding period %d: durations must be positive and strictly ascending", i)
		}
		prev = period.Duration
		if period.Multiplier.IsNil() || period.Multiplier.LT(math.LegacyOneDec()) {
			return fmt.Errorf("unbonding period %d: multiplier must be at least 1", i)
		}
	}
	if p.MaxDistributionFlows == 0 {
		return fmt.Errorf("max distribution flows must be positive")
	}
	return nil
}
