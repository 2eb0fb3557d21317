package ante_test

import (
	"bytes"
	"strings"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	protov2 "google.golang.org/protobuf/proto"

	"github.com/coral-dex/coral/app/ante"
	testkeeper "github.com/coral-dex/coral/testutil/keeper"
	dextypes "github.com/coral-dex/coral/x/dex/types"
	staketypes "github.com/coral-dex/coral/x/stake/types"
)

// stubTx carries messages straight into a decorator without the overhead of
// a full tx builder.
type stubTx struct {
	msgs []sdk.Msg
	memo string
}

func (t stubTx) GetMsgs() []sdk.Msg                    { return t.msgs }
func (t stubTx) GetMsgsV2() ([]protov2.Message, error) { return nil, nil }
func (t stubTx) GetMemo() string                       { return t.memo }

var _ sdk.Tx = stubTx{}
var _ sdk.TxWithMemo = stubTx{}

func passThrough(ctx sdk.Context, tx sdk.Tx, simulate bool) (sdk.Context, error) {
	return ctx, nil
}

func testAddr(b byte) sdk.AccAddress {
	return sdk.AccAddress(bytes.Repeat([]byte{b}, 20))
}

func TestMemoLimitDecorator(t *testing.T) {
	d := ante.NewMemoLimitDecorator(8)
	ctx := sdk.Context{}

	_, err := d.AnteHandle(ctx, stubTx{memo: "short"}, false, passThrough)
	require.NoError(t, err)

	_, err = d.AnteHandle(ctx, stubTx{memo: strings.Repeat("x", 9)}, false, passThrough)
	require.Error(t, err)
	require.Contains(t, err.Error(), "memo too large")
}

func TestDexDecorator_RejectsUnknownPool(t *testing.T) {
	k, _, ctx := testkeeper.DexKeeper(t)
	d := ante.NewDexDecorator(*k)

	tx := stubTx{msgs: []sdk.Msg{&dextypes.MsgSwap{
		Sender:      testAddr(1).String(),
		PoolId:      42,
		OfferDenom:  "uatom",
		OfferAmount: math.NewInt(100),
	}}}

	_, err := d.AnteHandle(ctx, tx, false, passThrough)
	require.ErrorIs(t, err, dextypes.ErrPoolNotFound)

	// Simulation skips the stateful checks.
	_, err = d.AnteHandle(ctx, tx, true, passThrough)
	require.NoError(t, err)
}

func TestDexDecorator_RejectsFrozenAndForeignDenom(t *testing.T) {
	k, bank, ctx := testkeeper.DexKeeper(t)
	d := ante.NewDexDecorator(*k)

	creator := testAddr(1)
	bank.FundAccount(ctx, creator, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1_000_000)),
		sdk.NewCoin("uusdc", math.NewInt(1_000_000)),
	))
	pool, _, err := k.CreatePool(ctx, &dextypes.MsgCreatePool{
		Creator: creator.String(),
		DenomA:  "uatom",
		DenomB:  "uusdc",
		AmountA: math.NewInt(1_000_000),
		AmountB: math.NewInt(1_000_000),
		Curve:   dextypes.CurveXYK,
	})
	require.NoError(t, err)

	swap := &dextypes.MsgSwap{
		Sender:      testAddr(2).String(),
		PoolId:      pool.Id,
		OfferDenom:  "ujuno",
		OfferAmount: math.NewInt(100),
	}
	_, err = d.AnteHandle(ctx, stubTx{msgs: []sdk.Msg{swap}}, false, passThrough)
	require.ErrorIs(t, err, dextypes.ErrInvalidAsset)

	swap.OfferDenom = "uatom"
	_, err = d.AnteHandle(ctx, stubTx{msgs: []sdk.Msg{swap}}, false, passThrough)
	require.NoError(t, err)

	pool.Frozen = true
	require.NoError(t, k.SetPool(ctx, pool))

	_, err = d.AnteHandle(ctx, stubTx{msgs: []sdk.Msg{swap}}, false, passThrough)
	require.ErrorIs(t, err, dextypes.ErrFrozen)

	provide := &dextypes.MsgProvideLiquidity{
		Sender:  testAddr(2).String(),
		PoolId:  pool.Id,
		AmountA: math.NewInt(100),
		AmountB: math.NewInt(100),
	}
	_, err = d.AnteHandle(ctx, stubTx{msgs: []sdk.Msg{provide}}, false, passThrough)
	require.ErrorIs(t, err, dextypes.ErrFrozen)

	// Withdrawals from a frozen pool stay allowed.
	withdraw := &dextypes.MsgWithdrawLiquidity{
		Sender: creator.String(),
		PoolId: pool.Id,
		Shares: math.NewInt(100),
	}
	_, err = d.AnteHandle(ctx, stubTx{msgs: []sdk.Msg{withdraw}}, false, passThrough)
	require.NoError(t, err)
}

func TestStakeDecorator_RejectsUnknownPeriod(t *testing.T) {
	k, _, ctx := testkeeper.StakeKeeper(t)
	d := ante.NewStakeDecorator(*k)

	bond := &staketypes.MsgBond{
		Sender: testAddr(1).String(),
		Period: 12345,
		Amount: math.NewInt(100),
	}
	_, err := d.AnteHandle(ctx, stubTx{msgs: []sdk.Msg{bond}}, false, passThrough)
	require.ErrorIs(t, err, staketypes.ErrUnknownPeriod)

	bond.Period = staketypes.DefaultParams().UnbondingPeriods[0].Duration
	_, err = d.AnteHandle(ctx, stubTx{msgs: []sdk.Msg{bond}}, false, passThrough)
	require.NoError(t, err)
}

func TestStakeDecorator_RejectsUnknownFlow(t *testing.T) {
	k, _, ctx := testkeeper.StakeKeeper(t)
	d := ante.NewStakeDecorator(*k)

	fund := &staketypes.MsgFundDistribution{
		Sender:   testAddr(1).String(),
		FlowId:   7,
		Amount:   math.NewInt(1000),
		Duration: 3600,
	}
	_, err := d.AnteHandle(ctx, stubTx{msgs: []sdk.Msg{fund}}, false, passThrough)
	require.ErrorIs(t, err, staketypes.ErrFlowNotFound)
}
