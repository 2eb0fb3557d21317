package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cosmos/gogoproto/proto"
)

// UserClaims is one user's claim queue, ordered by creation.
type UserClaims struct {
	Address string  `json:"address"`
	Claims  []Claim `json:"claims"`
}

// UserSnapshot is one user's reward snapshot against one flow.
type UserSnapshot struct {
	Address  string         `json:"address"`
	FlowId   uint64         `json:"flow_id"`
	Snapshot RewardSnapshot `json:"snapshot"`
}

// Delegation records a user's single authorized reward withdrawer.
type Delegation struct {
	Owner    string `json:"owner"`
	Delegate string `json:"delegate"`
}

// GenesisState is the stake module's genesis state. Per-period point totals
// are not exported; InitGenesis rebuilds them from the bond entries.
type GenesisState struct {
	Params      Params             `json:"params"`
	BondEntries []BondEntry        `json:"bond_entries"`
	Claims      []UserClaims       `json:"claims"`
	Flows       []DistributionFlow `json:"flows"`
	NextFlowId  uint64             `json:"next_flow_id"`
	Snapshots   []UserSnapshot     `json:"snapshots"`
	Delegations []Delegation       `json:"delegations"`
}

// DefaultGenesis returns the default genesis state for the stake module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:      DefaultParams(),
		BondEntries: []BondEntry{},
		Claims:      []UserClaims{},
		Flows:       []DistributionFlow{},
		NextFlowId:  1,
		Snapshots:   []UserSnapshot{},
		Delegations: []Delegation{},
	}
}

func (m *GenesisState) Reset()         { *m = GenesisState{} }
func (m *GenesisState) String() string { return proto.CompactTextString(m) }
func (*GenesisState) ProtoMessage()    {}

// Validate ensures the genesis state is well-formed.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	if gs.NextFlowId == 0 {
		return fmt.Errorf("next flow id cannot be zero")
	}

	seenBonds := make(map[string]struct{}, len(gs.BondEntries))
	for _, entry := range gs.BondEntries {
		if err := entry.Validate(); err != nil {
			return fmt.Errorf("invalid bond entry: %w", err)
		}
		if _, ok := gs.Params.Period(entry.Period); !ok {
			return fmt.Errorf("bond entry for %s uses unknown period %d", entry.Address, entry.Period)
		}
		key := fmt.Sprintf("%s/%d", entry.Address, entry.Period)
		if _, ok := seenBonds[key]; ok {
			return fmt.Errorf("duplicate bond entry %s", key)
		}
		seenBonds[key] = struct{}{}
	}

	seenClaims := make(map[string]struct{}, len(gs.Claims))
	for _, uc := range gs.Claims {
		if _, err := sdk.AccAddressFromBech32(uc.Address); err != nil {
			return fmt.Errorf("invalid claim address: %w", err)
		}
		if _, ok := seenClaims[uc.Address]; ok {
			return fmt.Errorf("duplicate claim queue for %s", uc.Address)
		}
		seenClaims[uc.Address] = struct{}{}
		for _, claim := range uc.Claims {
			if err := claim.Validate(); err != nil {
				return fmt.Errorf("invalid claim for %s: %w", uc.Address, err)
			}
		}
	}

	seenFlows := make(map[uint64]struct{}, len(gs.Flows))
	seenFlowDenoms := make(map[string]struct{}, len(gs.Flows))
	for _, flow := range gs.Flows {
		if err := flow.Validate(); err != nil {
			return fmt.Errorf("invalid flow %d: %w", flow.Id, err)
		}
		if flow.Id >= gs.NextFlowId {
			return fmt.Errorf("flow id %d not below next flow id %d", flow.Id, gs.NextFlowId)
		}
		if _, ok := seenFlows[flow.Id]; ok {
			return fmt.Errorf("duplicate flow id %d", flow.Id)
		}
		seenFlows[flow.Id] = struct{}{}
		if _, ok := seenFlowDenoms[flow.RewardDenom]; ok {
			return fmt.Errorf("duplicate flow for denom %s", flow.RewardDenom)
		}
		seenFlowDenoms[flow.RewardDenom] = struct{}{}
	}

	for _, snap := range gs.Snapshots {
		if _, err := sdk.AccAddressFromBech32(snap.Address); err != nil {
			return fmt.Errorf("invalid snapshot address: %w", err)
		}
		if _, ok := seenFlows[snap.FlowId]; !ok {
			return fmt.Errorf("snapshot for %s references unknown flow %d", snap.Address, snap.FlowId)
		}
		if snap.Snapshot.Seen.IsNil() || snap.Snapshot.Seen.IsNegative() {
			return fmt.Errorf("snapshot for %s has negative seen accumulator", snap.Address)
		}
		if snap.Snapshot.Pending.IsNil() || snap.Snapshot.Pending.IsNegative() {
			return fmt.Errorf("snapshot for %s has negative pending rewards", snap.Address)
		}
	}

	for _, del := range gs.Delegations {
		if _, err := sdk.AccAddressFromBech32(del.Owner); err != nil {
			return fmt.Errorf("invalid delegation owner: %w", err)
		}
		if _, err := sdk.AccAddressFromBech32(del.Delegate); err != nil {
			return fmt.Errorf("invalid delegation delegate: %w", err)
		}
	}
	return nil
}
