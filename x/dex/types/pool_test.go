package types_test

import (
	"bytes"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/coral-dex/coral/x/dex/types"
)

func testAddr(b byte) string {
	return sdk.AccAddress(bytes.Repeat([]byte{b}, 20)).String()
}

func validPool() types.Pool {
	return types.Pool{
		Id:          1,
		DenomA:      "uatom",
		DenomB:      "ucoral",
		ReserveA:    math.NewInt(1_000_000),
		ReserveB:    math.NewInt(2_000_000),
		Curve:       types.CurveXYK,
		LpDenom:     types.LPDenom(1),
		TotalShares: math.NewInt(1_414_213),
		FeeConfig: types.FeeConfig{
			ProtocolFeeBps: 10,
			LpFeeBps:       20,
		},
		Owner: testAddr(1),
	}
}

func TestPoolValidate(t *testing.T) {
	require.NoError(t, validPool().Validate())

	tests := []struct {
		name   string
		mutate func(*types.Pool)
	}{
		{"empty denom", func(p *types.Pool) { p.DenomA = "" }},
		{"equal denoms", func(p *types.Pool) { p.DenomB = p.DenomA }},
		{"unsorted denoms", func(p *types.Pool) { p.DenomA, p.DenomB = p.DenomB, p.DenomA }},
		{"negative reserve", func(p *types.Pool) { p.ReserveA = math.NewInt(-1) }},
		{"nil reserve", func(p *types.Pool) { p.ReserveB = math.Int{} }},
		{"shares without reserves", func(p *types.Pool) {
			p.ReserveA, p.ReserveB = math.ZeroInt(), math.ZeroInt()
		}},
		{"reserves without shares", func(p *types.Pool) { p.TotalShares = math.ZeroInt() }},
		{"stable without amp", func(p *types.Pool) { p.Curve = types.CurveStable }},
		{"xyk with amp", func(p *types.Pool) { p.Amp = 10 }},
		{"fee over 100%", func(p *types.Pool) { p.FeeConfig.ProtocolFeeBps = 10_001 }},
		{"bad owner", func(p *types.Pool) { p.Owner = "not-an-address" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pool := validPool()
			tc.mutate(&pool)
			require.Error(t, pool.Validate())
		})
	}
}

func TestPoolValidate_Uninitialized(t *testing.T) {
	pool := validPool()
	pool.ReserveA = math.ZeroInt()
	pool.ReserveB = math.ZeroInt()
	pool.TotalShares = math.ZeroInt()
	require.NoError(t, pool.Validate())
}

func TestPoolReservesFor(t *testing.T) {
	pool := validPool()

	in, out, ask, err := pool.ReservesFor("uatom")
	require.NoError(t, err)
	require.Equal(t, pool.ReserveA, in)
	require.Equal(t, pool.ReserveB, out)
	require.Equal(t, "ucoral", ask)

	in, out, ask, err = pool.ReservesFor("ucoral")
	require.NoError(t, err)
	require.Equal(t, pool.ReserveB, in)
	require.Equal(t, pool.ReserveA, out)
	require.Equal(t, "uatom", ask)

	_, _, _, err = pool.ReservesFor("uosmo")
	require.ErrorIs(t, err, types.ErrInvalidAsset)
}

func TestPoolSetReserves(t *testing.T) {
	pool := validPool()
	pool.SetReserves("ucoral", math.NewInt(5), math.NewInt(7))
	require.Equal(t, int64(7), pool.ReserveA.Int64())
	require.Equal(t, int64(5), pool.ReserveB.Int64())
}

func TestPoolHasDenom(t *testing.T) {
	pool := validPool()
	require.True(t, pool.HasDenom("uatom"))
	require.True(t, pool.HasDenom("ucoral"))
	require.False(t, pool.HasDenom("uosmo"))
}

func TestPoolSpotPrice(t *testing.T) {
	pool := validPool()
	require.Equal(t, math.LegacyNewDec(2), pool.SpotPrice())

	pool.ReserveA = math.ZeroInt()
	require.True(t, pool.SpotPrice().IsZero())
}

func TestCurveKindValidate(t *testing.T) {
	require.NoError(t, types.CurveXYK.Validate(0))
	require.NoError(t, types.CurveStable.Validate(100))

	require.ErrorIs(t, types.CurveXYK.Validate(1), types.ErrInvalidCurve)
	require.ErrorIs(t, types.CurveStable.Validate(0), types.ErrInvalidCurve)
	require.ErrorIs(t, types.CurveStable.Validate(types.MaxAmp+1), types.ErrInvalidCurve)
	require.ErrorIs(t, types.CurveKind("weighted").Validate(0), types.ErrInvalidCurve)
}

func TestFeeConfigValidate(t *testing.T) {
	require.NoError(t, types.FeeConfig{ProtocolFeeBps: 10, LpFeeBps: 20}.Validate())
	require.NoError(t, types.FeeConfig{FeeReceiver: testAddr(2)}.Validate())

	require.ErrorIs(t, types.FeeConfig{ProtocolFeeBps: 6000, LpFeeBps: 6000}.Validate(), types.ErrInvalidFee)
	require.ErrorIs(t, types.FeeConfig{FeeReceiver: "bogus"}.Validate(), types.ErrInvalidFee)
}

func TestFeeConfigRates(t *testing.T) {
	fc := types.FeeConfig{ProtocolFeeBps: 10, LpFeeBps: 25}
	require.Equal(t, math.LegacyMustNewDecFromStr("0.001"), fc.ProtocolRate())
	require.Equal(t, math.LegacyMustNewDecFromStr("0.0025"), fc.LpRate())
}
