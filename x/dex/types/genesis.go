package types

import (
	"fmt"

	"cosmossdk.io/math"

	"github.com/cosmos/gogoproto/proto"
)

// CollectedFee is a protocol-fee balance accrued in one denom, awaiting the
// fee splitter.
type CollectedFee struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// GenesisState is the dex module's genesis state.
type GenesisState struct {
	Params        Params         `json:"params"`
	Pools         []Pool         `json:"pools"`
	NextPoolId    uint64         `json:"next_pool_id"`
	CollectedFees []CollectedFee `json:"collected_fees"`
}

// DefaultGenesis returns the default genesis state for the dex module.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:        DefaultParams(),
		Pools:         []Pool{},
		NextPoolId:    1,
		CollectedFees: []CollectedFee{},
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
	if gs.NextPoolId == 0 {
		return fmt.Errorf("next pool id cannot be zero")
	}

	seenIDs := make(map[uint64]struct{}, len(gs.Pools))
	seenPairs := make(map[string]struct{}, len(gs.Pools))
	for _, pool := range gs.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool %d: %w", pool.Id, err)
		}
		if pool.Id >= gs.NextPoolId {
			return fmt.Errorf("pool id %d not below next pool id %d", pool.Id, gs.NextPoolId)
		}
		if _, ok := seenIDs[pool.Id]; ok {
			return fmt.Errorf("duplicate pool id %d", pool.Id)
		}
		seenIDs[pool.Id] = struct{}{}

		pair := string(PoolByDenomsKey(pool.DenomA, pool.DenomB))
		if _, ok := seenPairs[pair]; ok {
			return fmt.Errorf("duplicate pool for pair %s/%s", pool.DenomA, pool.DenomB)
		}
		seenPairs[pair] = struct{}{}
	}

	seenDenoms := make(map[string]struct{}, len(gs.CollectedFees))
	for _, fee := range gs.CollectedFees {
		if fee.Denom == "" {
			return fmt.Errorf("collected fee denom cannot be empty")
		}
		if fee.Amount.IsNil() || fee.Amount.IsNegative() {
			return fmt.Errorf("collected fee for %s cannot be negative", fee.Denom)
		}
		if _, ok := seenDenoms[fee.Denom]; ok {
			return fmt.Errorf("duplicate collected fee denom %s", fee.Denom)
		}
		seenDenoms[fee.Denom] = struct{}{}
	}
	return nil
}
