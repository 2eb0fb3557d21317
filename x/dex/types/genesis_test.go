package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/coral-dex/coral/x/dex/types"
)

func TestDefaultGenesis(t *testing.T) {
	gs := types.DefaultGenesis()
	require.NoError(t, gs.Validate())
	require.Equal(t, uint64(1), gs.NextPoolId)
	require.Empty(t, gs.Pools)
}

func TestGenesisValidate(t *testing.T) {
	pool := validPool()

	tests := []struct {
		name    string
		mutate  func(*types.GenesisState)
		wantErr bool
	}{
		{
			name: "valid with pool",
			mutate: func(gs *types.GenesisState) {
				gs.Pools = []types.Pool{pool}
				gs.NextPoolId = 2
			},
		},
		{
			name:    "zero next pool id",
			mutate:  func(gs *types.GenesisState) { gs.NextPoolId = 0 },
			wantErr: true,
		},
		{
			name: "pool id not below counter",
			mutate: func(gs *types.GenesisState) {
				gs.Pools = []types.Pool{pool}
				gs.NextPoolId = 1
			},
			wantErr: true,
		},
		{
			name: "duplicate pool id",
			mutate: func(gs *types.GenesisState) {
				other := pool
				other.DenomA, other.DenomB = "ujuno", "uosmo"
				gs.Pools = []types.Pool{pool, other}
				gs.NextPoolId = 2
			},
			wantErr: true,
		},
		{
			name: "duplicate pair",
			mutate: func(gs *types.GenesisState) {
				other := pool
				other.Id = 2
				gs.Pools = []types.Pool{pool, other}
				gs.NextPoolId = 3
			},
			wantErr: true,
		},
		{
			name: "invalid pool",
			mutate: func(gs *types.GenesisState) {
				bad := pool
				bad.Owner = "bogus"
				gs.Pools = []types.Pool{bad}
				gs.NextPoolId = 2
			},
			wantErr: true,
		},
		{
			name: "valid collected fees",
			mutate: func(gs *types.GenesisState) {
				gs.CollectedFees = []types.CollectedFee{{Denom: "uatom", Amount: math.NewInt(5)}}
			},
		},
		{
			name: "negative collected fee",
			mutate: func(gs *types.GenesisState) {
				gs.CollectedFees = []types.CollectedFee{{Denom: "uatom", Amount: math.NewInt(-5)}}
			},
			wantErr: true,
		},
		{
			name: "duplicate collected fee denom",
			mutate: func(gs *types.GenesisState) {
				gs.CollectedFees = []types.CollectedFee{
					{Denom: "uatom", Amount: math.NewInt(5)},
					{Denom: "uatom", Amount: math.NewInt(7)},
				}
			},
			wantErr: true,
		},
		{
			name: "invalid params",
			mutate: func(gs *types.GenesisState) {
				gs.Params.DefaultMaxSpread = math.LegacyNewDec(2)
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gs := types.DefaultGenesis()
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

func TestParamsValidate(t *testing.T) {
	params := types.DefaultParams()
	require.NoError(t, params.Validate())

	params.FeeSplit = []types.FeeSplit{
		{Address: testAddr(1), Weight: math.LegacyMustNewDecFromStr("0.6")},
		{Address: testAddr(2), Weight: math.LegacyMustNewDecFromStr("0.4")},
	}
	require.NoError(t, params.Validate())

	params.FeeSplit = append(params.FeeSplit, types.FeeSplit{
		Address: testAddr(3), Weight: math.LegacyMustNewDecFromStr("0.1"),
	})
	require.Error(t, params.Validate(), "weights above 1 must fail")

	params = types.DefaultParams()
	params.FeeSplit = []types.FeeSplit{{Address: "bogus", Weight: math.LegacyMustNewDecFromStr("0.5")}}
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.DefaultSlippageTolerance = params.MaxSlippageTolerance.Add(math.LegacyMustNewDecFromStr("0.01"))
	require.Error(t, params.Validate())

	params = types.DefaultParams()
	params.FeeDistributionInterval = -1
	require.Error(t, params.Validate())
}
