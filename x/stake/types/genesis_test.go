package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/coral-dex/coral/x/stake/types"
)

func validGenesis() *types.GenesisState {
	gs := types.DefaultGenesis()
	gs.BondEntries = []types.BondEntry{
		{Address: testAddr(1), Period: 7 * 24 * 3600, Amount: math.NewInt(100), Points: math.NewInt(100)},
		{Address: testAddr(1), Period: 14 * 24 * 3600, Amount: math.NewInt(50), Points: math.NewInt(100)},
	}
	gs.Claims = []types.UserClaims{
		{Address: testAddr(2), Claims: []types.Claim{{Amount: math.NewInt(30), ReleaseAt: 1_700_000_000}}},
	}
	gs.Flows = []types.DistributionFlow{{
		Id:          1,
		RewardDenom: "uusdc",
		Manager:     testAddr(3),
		Schedule: types.EmissionSchedule{
			StartTime: 1_700_000_000,
			EndTime:   1_700_100_000,
			Rate:      math.LegacyNewDec(5),
		},
		RewardPerPoint:   math.LegacyZeroDec(),
		LastUpdate:       1_700_000_000,
		TotalFunded:      math.NewInt(500_000),
		TotalDistributed: math.ZeroInt(),
	}}
	gs.NextFlowId = 2
	gs.Snapshots = []types.UserSnapshot{
		{Address: testAddr(1), FlowId: 1, Snapshot: types.RewardSnapshot{
			Seen:    math.LegacyZeroDec(),
			Pending: math.LegacyNewDec(10),
		}},
	}
	gs.Delegations = []types.Delegation{{Owner: testAddr(1), Delegate: testAddr(2)}}
	return gs
}

func TestGenesisState_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.GenesisState)
		wantErr bool
	}{
		{"default", func(gs *types.GenesisState) { *gs = *types.DefaultGenesis() }, false},
		{"valid populated", func(gs *types.GenesisState) {}, false},
		{"zero next flow id", func(gs *types.GenesisState) { gs.NextFlowId = 0 }, true},
		{"duplicate bond entry", func(gs *types.GenesisState) {
			gs.BondEntries = append(gs.BondEntries, gs.BondEntries[0])
		}, true},
		{"unknown bond period", func(gs *types.GenesisState) {
			gs.BondEntries[0].Period = 3 * 24 * 3600
		}, true},
		{"duplicate claim queue", func(gs *types.GenesisState) {
			gs.Claims = append(gs.Claims, gs.Claims[0])
		}, true},
		{"invalid claim", func(gs *types.GenesisState) {
			gs.Claims[0].Claims[0].Amount = math.ZeroInt()
		}, true},
		{"flow id above next", func(gs *types.GenesisState) {
			gs.Flows[0].Id = 2
		}, true},
		{"duplicate flow denom", func(gs *types.GenesisState) {
			dup := gs.Flows[0]
			dup.Id = 2
			gs.Flows = append(gs.Flows, dup)
			gs.NextFlowId = 3
		}, true},
		{"snapshot for unknown flow", func(gs *types.GenesisState) {
			gs.Snapshots[0].FlowId = 9
		}, true},
		{"negative pending snapshot", func(gs *types.GenesisState) {
			gs.Snapshots[0].Snapshot.Pending = math.LegacyNewDec(-1)
		}, true},
		{"bad delegation", func(gs *types.GenesisState) {
			gs.Delegations[0].Delegate = "bogus"
		}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := validGenesis()
			tc.mutate(gs)
			err := gs.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
