package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/coral-dex/coral/x/stake/types"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.Params)
		wantErr bool
	}{
		{"default", func(p *types.Params) {}, false},
		{"bad denom", func(p *types.Params) { p.StakedDenom = "x" }, true},
		{"negative min bond", func(p *types.Params) { p.MinBond = math.NewInt(-1) }, true},
		{"zero tokens per power", func(p *types.Params) { p.TokensPerPower = math.ZeroInt() }, true},
		{"no periods", func(p *types.Params) { p.UnbondingPeriods = nil }, true},
		{"unsorted periods", func(p *types.Params) {
			p.UnbondingPeriods = []types.UnbondingPeriod{
				{Duration: 14 * 24 * 3600, Multiplier: math.LegacyOneDec()},
				{Duration: 7 * 24 * 3600, Multiplier: math.LegacyOneDec()},
			}
		}, true},
		{"duplicate periods", func(p *types.Params) {
			p.UnbondingPeriods = []types.UnbondingPeriod{
				{Duration: 7 * 24 * 3600, Multiplier: math.LegacyOneDec()},
				{Duration: 7 * 24 * 3600, Multiplier: math.LegacyOneDec()},
			}
		}, true},
		{"multiplier below one", func(p *types.Params) {
			p.UnbondingPeriods[0].Multiplier = math.LegacyMustNewDecFromStr("0.5")
		}, true},
		{"zero flow cap", func(p *types.Params) { p.MaxDistributionFlows = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			params := types.DefaultParams()
			tc.mutate(&params)
			err := params.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParams_Period(t *testing.T) {
	params := types.DefaultParams()

	tier, ok := params.Period(14 * 24 * 3600)
	require.True(t, ok)
	require.Equal(t, math.LegacyMustNewDecFromStr("2.0"), tier.Multiplier)

	_, ok = params.Period(3 * 24 * 3600)
	require.False(t, ok)
}
