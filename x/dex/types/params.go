package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FeeSplit is one weighted receiver of accrued protocol fees.
type FeeSplit struct {
	Address string         `json:"address"`
	Weight  math.LegacyDec `json:"weight"`
}

// Params holds the dex module parameters.
type Params struct {
	// DefaultSlippageTolerance applies to ProvideLiquidity when the caller
	// supplies none.
	DefaultSlippageTolerance math.LegacyDec `json:"default_slippage_tolerance"`
	// MaxSlippageTolerance caps the caller-supplied tolerance.
	MaxSlippageTolerance math.LegacyDec `json:"max_slippage_tolerance"`
	// DefaultMaxSpread applies to Swap when the caller supplies none.
	DefaultMaxSpread math.LegacyDec `json:"default_max_spread"`
	// MinInitialLiquidity is the minimum seeding amount per pool side.
	MinInitialLiquidity math.Int `json:"min_initial_liquidity"`
	// FeeSplit lists the weighted receivers of accrued protocol fees.
	// Weights must sum to at most 1; any remainder stays accrued.
	FeeSplit []FeeSplit `json:"fee_split,omitempty"`
	// FeeDistributionInterval is the block interval at which accrued protocol
	// fees are flushed through the splitter. Zero disables the automatic flush.
	FeeDistributionInterval int64 `json:"fee_distribution_interval"`
}

// DefaultParams returns default parameters for the dex module.
func DefaultParams() Params {
	return Params{
		DefaultSlippageTolerance: math.LegacyMustNewDecFromStr("0.005"), // 0.5%
		MaxSlippageTolerance:     math.LegacyMustNewDecFromStr("0.50"),  // 50%
		DefaultMaxSpread:         math.LegacyMustNewDecFromStr("0.10"),  // 10%
		MinInitialLiquidity:      math.NewInt(1_000),
		FeeSplit:                 []FeeSplit{},
		FeeDistributionInterval:  100,
	}
}

// Validate ensures parameter bounds.
func (p Params) Validate() error {
	if p.DefaultSlippageTolerance.IsNil() || p.DefaultSlippageTolerance.IsNegative() || p.DefaultSlippageTolerance.GTE(math.LegacyOneDec()) {
		return fmt.Errorf("default slippage tolerance must be in [0, 1)")
	}
	if p.MaxSlippageTolerance.IsNil() || p.MaxSlippageTolerance.IsNegative() || p.MaxSlippageTolerance.GTE(math.LegacyOneDec()) {
		return fmt.Errorf("max slippage tolerance must be in [0, 1)")
	}
	if p.DefaultSlippageTolerance.GT(p.MaxSlippageTolerance) {
		return fmt.Errorf("default slippage tolerance exceeds the maximum")
	}
	if p.DefaultMaxSpread.IsNil() || p.DefaultMaxSpread.IsNegative() || p.DefaultMaxSpread.GT(math.LegacyOneDec()) {
		return fmt.Errorf("default max spread must be in [0, 1]")
	}
	if p.MinInitialLiquidity.IsNil() || p.MinInitialLiquidity.IsNegative() {
		return fmt.Errorf("min initial liquidity cannot be negative")
	}
	if p.FeeDistributionInterval < 0 {
		return fmt.Errorf("fee distribution interval cannot be negative")
	}

	total := math.LegacyZeroDec()
	for _, split := range p.FeeSplit {
		if _, err := sdk.AccAddressFromBech32(split.Address); err != nil {
			return fmt.Errorf("invalid fee split address %q: %w", split.Address, err)
		}
		if split.Weight.IsNil() || !split.Weight.IsPositive() {
			return fmt.Errorf("fee split weight must be positive")
		}
		total = total.Add(split.Weight)
	}
	if total.GT(math.LegacyOneDec()) {
		return fmt.Errorf("fee split weights sum to %s, must not exceed 1", total)
	}
	return nil
}
