package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/coral-dex/coral/x/dex/types"
)

func validCreatePool() types.MsgCreatePool {
	return types.MsgCreatePool{
		Creator: testAddr(1),
		DenomA:  "uatom",
		DenomB:  "ucoral",
		AmountA: math.NewInt(1_000_000),
		AmountB: math.NewInt(1_000_000),
		Curve:   types.CurveXYK,
		FeeConfig: types.FeeConfig{
			ProtocolFeeBps: 10,
			LpFeeBps:       20,
		},
	}
}

func TestMsgCreatePool_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.MsgCreatePool)
		errType error
	}{
		{"valid", func(m *types.MsgCreatePool) {}, nil},
		{"valid stable", func(m *types.MsgCreatePool) {
			m.Curve = types.CurveStable
			m.Amp = 100
		}, nil},
		{"bad creator", func(m *types.MsgCreatePool) { m.Creator = "bogus" }, types.ErrInvalidInput},
		{"empty denom", func(m *types.MsgCreatePool) { m.DenomB = "" }, types.ErrInvalidInput},
		{"equal denoms", func(m *types.MsgCreatePool) { m.DenomB = m.DenomA }, types.ErrInvalidInput},
		{"zero amount", func(m *types.MsgCreatePool) { m.AmountA = math.ZeroInt() }, types.ErrZeroAmount},
		{"nil amount", func(m *types.MsgCreatePool) { m.AmountB = math.Int{} }, types.ErrZeroAmount},
		{"stable without amp", func(m *types.MsgCreatePool) { m.Curve = types.CurveStable }, types.ErrInvalidCurve},
		{"excessive fees", func(m *types.MsgCreatePool) { m.FeeConfig.LpFeeBps = 20_000 }, types.ErrInvalidFee},
		{"negative trading start", func(m *types.MsgCreatePool) { m.TradingStarts = -1 }, types.ErrInvalidInput},
		{"bad circuit breaker", func(m *types.MsgCreatePool) { m.CircuitBreaker = "bogus" }, types.ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := validCreatePool()
			tc.mutate(&msg)
			err := msg.ValidateBasic()
			if tc.errType == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.errType)
			}
		})
	}
}

func TestMsgProvideLiquidity_ValidateBasic(t *testing.T) {
	valid := types.MsgProvideLiquidity{
		Sender:  testAddr(1),
		PoolId:  1,
		AmountA: math.NewInt(100),
		AmountB: math.NewInt(100),
	}
	require.NoError(t, valid.ValidateBasic())

	msg := valid
	msg.PoolId = 0
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidInput)

	msg = valid
	msg.AmountA = math.NewInt(-5)
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrZeroAmount)

	msg = valid
	tolerance := math.LegacyOneDec()
	msg.SlippageTolerance = &tolerance
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidInput)

	msg = valid
	msg.Receiver = testAddr(2)
	require.NoError(t, msg.ValidateBasic())
}

func TestMsgWithdrawLiquidity_ValidateBasic(t *testing.T) {
	valid := types.MsgWithdrawLiquidity{
		Sender: testAddr(1),
		PoolId: 1,
		Shares: math.NewInt(100),
	}
	require.NoError(t, valid.ValidateBasic())

	msg := valid
	msg.Shares = math.ZeroInt()
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrZeroAmount)

	msg = valid
	msg.Sender = "bogus"
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidInput)
}

func TestMsgSwap_ValidateBasic(t *testing.T) {
	valid := types.MsgSwap{
		Sender:      testAddr(1),
		PoolId:      1,
		OfferDenom:  "uatom",
		OfferAmount: math.NewInt(100),
	}
	require.NoError(t, valid.ValidateBasic())

	msg := valid
	msg.OfferDenom = ""
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidInput)

	msg = valid
	msg.OfferAmount = math.Int{}
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrZeroAmount)

	msg = valid
	belief := math.LegacyZeroDec()
	msg.BeliefPrice = &belief
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidInput)

	msg = valid
	spread := math.LegacyMustNewDecFromStr("1.5")
	msg.MaxSpread = &spread
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidInput)

	msg = valid
	msg.To = testAddr(3)
	require.NoError(t, msg.ValidateBasic())
}

func TestMsgMultiHopSwap_ValidateBasic(t *testing.T) {
	valid := types.MsgMultiHopSwap{
		Sender: testAddr(1),
		Operations: []types.SwapOperation{
			{OfferDenom: "uatom", AskDenom: "ucoral"},
			{OfferDenom: "ucoral", AskDenom: "uosmo"},
		},
		OfferAmount: math.NewInt(100),
	}
	require.NoError(t, valid.ValidateBasic())

	msg := valid
	msg.Operations = nil
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidSwapRoute)

	msg = valid
	msg.Operations = []types.SwapOperation{
		{OfferDenom: "uatom", AskDenom: "ucoral"},
		{OfferDenom: "uosmo", AskDenom: "ujuno"},
	}
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidSwapRoute)

	msg = valid
	msg.Operations = []types.SwapOperation{{OfferDenom: "uatom", AskDenom: "uatom"}}
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidSwapRoute)

	msg = valid
	minReceive := math.ZeroInt()
	msg.MinimumReceive = &minReceive
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidInput)
}

func TestMsgUpdateFees_ValidateBasic(t *testing.T) {
	valid := types.MsgUpdateFees{
		Sender:    testAddr(1),
		PoolId:    1,
		FeeConfig: types.FeeConfig{ProtocolFeeBps: 30, LpFeeBps: 30},
	}
	require.NoError(t, valid.ValidateBasic())

	msg := valid
	msg.FeeConfig.ProtocolFeeBps = 20_000
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidFee)
}

func TestMsgProposeOwner_ValidateBasic(t *testing.T) {
	valid := types.MsgProposeOwner{
		Sender:    testAddr(1),
		PoolId:    1,
		NewOwner:  testAddr(2),
		ExpiresIn: 3600,
	}
	require.NoError(t, valid.ValidateBasic())

	msg := valid
	msg.NewOwner = "bogus"
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidInput)

	msg = valid
	msg.ExpiresIn = 0
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidInput)
}

func TestAdminMsgs_ValidateBasic(t *testing.T) {
	require.NoError(t, types.MsgFreeze{Sender: testAddr(1), PoolId: 1}.ValidateBasic())
	require.Error(t, types.MsgFreeze{Sender: testAddr(1)}.ValidateBasic())

	require.NoError(t, types.MsgClaimOwnership{Sender: testAddr(1), PoolId: 1}.ValidateBasic())
	require.Error(t, types.MsgClaimOwnership{Sender: "bogus", PoolId: 1}.ValidateBasic())

	require.NoError(t, types.MsgDropOwnerProposal{Sender: testAddr(1), PoolId: 1}.ValidateBasic())
	require.NoError(t, types.MsgDistributeFees{Sender: testAddr(1)}.ValidateBasic())
	require.Error(t, types.MsgDistributeFees{Sender: "bogus"}.ValidateBasic())
}

func TestMsgGetSigners(t *testing.T) {
	addr := testAddr(9)
	signers := types.MsgSwap{Sender: addr, PoolId: 1, OfferDenom: "uatom", OfferAmount: math.NewInt(1)}.GetSigners()
	require.Len(t, signers, 1)
	require.Equal(t, addr, signers[0].String())
}
