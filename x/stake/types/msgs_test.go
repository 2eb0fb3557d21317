package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/coral-dex/coral/x/stake/types"
)

func TestMsgBond_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.MsgBond)
		errType error
	}{
		{"valid", func(m *types.MsgBond) {}, nil},
		{"bad sender", func(m *types.MsgBond) { m.Sender = "bogus" }, types.ErrInvalidInput},
		{"zero period", func(m *types.MsgBond) { m.Period = 0 }, types.ErrInvalidInput},
		{"zero amount", func(m *types.MsgBond) { m.Amount = math.ZeroInt() }, types.ErrZeroAmount},
		{"nil amount", func(m *types.MsgBond) { m.Amount = math.Int{} }, types.ErrZeroAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := types.MsgBond{
				Sender: testAddr(1),
				Period: 7 * 24 * 3600,
				Amount: math.NewInt(100),
			}
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

func TestMsgRebond_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.MsgRebond)
		errType error
	}{
		{"valid", func(m *types.MsgRebond) {}, nil},
		{"bad sender", func(m *types.MsgRebond) { m.Sender = "bogus" }, types.ErrInvalidInput},
		{"equal periods", func(m *types.MsgRebond) { m.ToPeriod = m.FromPeriod }, types.ErrInvalidInput},
		{"negative period", func(m *types.MsgRebond) { m.FromPeriod = -1 }, types.ErrInvalidInput},
		{"zero amount", func(m *types.MsgRebond) { m.Amount = math.ZeroInt() }, types.ErrZeroAmount},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := types.MsgRebond{
				Sender:     testAddr(1),
				FromPeriod: 14 * 24 * 3600,
				ToPeriod:   7 * 24 * 3600,
				Amount:     math.NewInt(100),
			}
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

func TestMsgCreateDistributionFlow_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.MsgCreateDistributionFlow)
		errType error
	}{
		{"valid", func(m *types.MsgCreateDistributionFlow) {}, nil},
		{"no manager", func(m *types.MsgCreateDistributionFlow) { m.Manager = "" }, nil},
		{"bad sender", func(m *types.MsgCreateDistributionFlow) { m.Sender = "bogus" }, types.ErrInvalidInput},
		{"bad denom", func(m *types.MsgCreateDistributionFlow) { m.RewardDenom = "x" }, types.ErrInvalidInput},
		{"bad manager", func(m *types.MsgCreateDistributionFlow) { m.Manager = "bogus" }, types.ErrInvalidInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := types.MsgCreateDistributionFlow{
				Sender:      testAddr(1),
				RewardDenom: "uusdc",
				Manager:     testAddr(2),
			}
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

func TestMsgFundDistribution_ValidateBasic(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*types.MsgFundDistribution)
		errType error
	}{
		{"valid", func(m *types.MsgFundDistribution) {}, nil},
		{"zero flow id", func(m *types.MsgFundDistribution) { m.FlowId = 0 }, types.ErrInvalidInput},
		{"zero amount", func(m *types.MsgFundDistribution) { m.Amount = math.ZeroInt() }, types.ErrZeroAmount},
		{"zero duration", func(m *types.MsgFundDistribution) { m.Duration = 0 }, types.ErrInvalidSchedule},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			msg := types.MsgFundDistribution{
				Sender:   testAddr(1),
				FlowId:   1,
				Amount:   math.NewInt(1_000),
				Duration: 3600,
			}
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

func TestMsgWithdrawRewards_ValidateBasic(t *testing.T) {
	msg := types.MsgWithdrawRewards{Sender: testAddr(1)}
	require.NoError(t, msg.ValidateBasic())

	msg.Owner = testAddr(2)
	msg.Receiver = testAddr(3)
	require.NoError(t, msg.ValidateBasic())

	msg.Owner = "bogus"
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidInput)
}

func TestMsgDelegateWithdrawal_ValidateBasic(t *testing.T) {
	msg := types.MsgDelegateWithdrawal{Sender: testAddr(1), Delegate: testAddr(2)}
	require.NoError(t, msg.ValidateBasic())

	msg.Delegate = msg.Sender
	require.ErrorIs(t, msg.ValidateBasic(), types.ErrInvalidInput)
}
