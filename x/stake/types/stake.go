package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// PointsFor converts a bonded amount into points under a period multiplier,
// rounding down so points never exceed what the amount backs.
func PointsFor(amount math.Int, multiplier math.LegacyDec) math.Int {
	return multiplier.MulInt(amount).TruncateInt()
}

// BondEntry is one user's bond in one unbonding period. Points are always
// recomputed from the full remaining amount so partial unbonds cannot leave
// rounding residue behind.
type BondEntry struct {
	Address string   `json:"address"`
	Period  int64    `json:"period"`
	Amount  math.Int `json:"amount"`
	Points  math.Int `json:"points"`
}

// Validate checks internal consistency of a bond entry.
func (b BondEntry) Validate() error {
	if _, err := sdk.AccAddressFromBech32(b.Address); err != nil {
		return fmt.Errorf("invalid bond address: %w", err)
	}
	if b.Period <= 0 {
		return fmt.Errorf("bond period must be positive")
	}
	if b.Amount.IsNil() || !b.Amount.IsPositive() {
		return fmt.Errorf("bond amount must be positive")
	}
	if b.Points.IsNil() || b.Points.IsNegative() {
		return fmt.Errorf("bond points must be non-negative")
	}
	return nil
}

// Claim is a matured-or-pending unbonding release. Claims queue per user and
// each matures on its own schedule.
type Claim struct {
	Amount math.Int `json:"amount"`
	// ReleaseAt is the unix time from which the claim may be released.
	ReleaseAt int64 `json:"release_at"`
}

// Validate checks a claim's fields.
func (c Claim) Validate() error {
	if c.Amount.IsNil() || !c.Amount.IsPositive() {
		return fmt.Errorf("claim amount must be positive")
	}
	if c.ReleaseAt <= 0 {
		return fmt.Errorf("claim release time must be positive")
	}
	return nil
}

// EmissionSchedule drives a flow's reward drip: Rate tokens per second
// between StartTime and EndTime.
type EmissionSchedule struct {
	StartTime int64          `json:"start_time"`
	EndTime   int64          `json:"end_time"`
	Rate      math.LegacyDec `json:"rate"`
}

// Active reports whether the schedule emits at the given time.
func (s EmissionSchedule) Active(now int64) bool {
	return now > s.StartTime && now <= s.EndTime && s.Rate.IsPositive()
}

// DistributionFlow is one independent reward stream. RewardPerPoint is the
// lazily advanced accumulator; it never decreases.
type DistributionFlow struct {
	Id          uint64 `json:"id"`
	RewardDenom string `json:"reward_denom"`
	// Manager may fund the flow and extend its schedule.
	Manager  string           `json:"manager"`
	Schedule EmissionSchedule `json:"schedule"`
	// RewardPerPoint accumulates emitted rewards per bonded point.
	RewardPerPoint math.LegacyDec `json:"reward_per_point"`
	// LastUpdate is the unix time the accumulator was last advanced to.
	LastUpdate       int64    `json:"last_update"`
	TotalFunded      math.Int `json:"total_funded"`
	TotalDistributed math.Int `json:"total_distributed"`
}

// Validate checks internal consistency of a flow.
func (f DistributionFlow) Validate() error {
	if f.Id == 0 {
		return fmt.Errorf("flow id must be positive")
	}
	if err := sdk.ValidateDenom(f.RewardDenom); err != nil {
		return fmt.Errorf("invalid reward denom: %w", err)
	}
	if _, err := sdk.AccAddressFromBech32(f.Manager); err != nil {
		return fmt.Errorf("invalid flow manager: %w", err)
	}
	if f.RewardPerPoint.IsNil() || f.RewardPerPoint.IsNegative() {
		return fmt.Errorf("reward per point must be non-negative")
	}
	if f.Schedule.Rate.IsNil() || f.Schedule.Rate.IsNegative() {
		return fmt.Errorf("emission rate must be non-negative")
	}
	if f.TotalFunded.IsNil() || f.TotalFunded.IsNegative() {
		return fmt.Errorf("total funded must be non-negative")
	}
	if f.TotalDistributed.IsNil() || f.TotalDistributed.IsNegative() {
		return fmt.Errorf("total distributed must be non-negative")
	}
	if f.TotalDistributed.GT(f.TotalFunded) {
		return fmt.Errorf("total distributed exceeds total funded")
	}
	return nil
}

// RewardSnapshot records where a user last settled against a flow. Pending
// keeps fractional rewards so repeated settlements lose nothing to rounding
// until withdrawal truncates.
type RewardSnapshot struct {
	// Seen is the flow accumulator value at last settlement.
	Seen math.LegacyDec `json:"seen"`
	// Pending is the settled, withdrawable reward balance.
	Pending math.LegacyDec `json:"pending"`
}

// NewRewardSnapshot starts a snapshot at the given accumulator value.
func NewRewardSnapshot(seen math.LegacyDec) RewardSnapshot {
	return RewardSnapshot{Seen: seen, Pending: math.LegacyZeroDec()}
}
