package ante

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	stakekeeper "github.com/coral-dex/coral/x/stake/keeper"
	staketypes "github.com/coral-dex/coral/x/stake/types"
)

// StakeDecorator rejects stake transactions referencing unknown unbonding
// periods or distribution flows before they reach the message server.
type StakeDecorator struct {
	keeper stakekeeper.Keeper
}

// NewStakeDecorator creates a new StakeDecorator
func NewStakeDecorator(keeper stakekeeper.Keeper) StakeDecorator {
	return StakeDecorator{
		keeper: keeper,
	}
}

// AnteHandle implements the AnteDecorator interface
func (sd StakeDecorator) AnteHandle(ctx sdk.Context, tx sdk.Tx, simulate bool, next sdk.AnteHandler) (newCtx sdk.Context, err error) {
	// Skip validation during simulation
	if simulate {
		return next(ctx, tx, simulate)
	}

	for _, msg := range tx.GetMsgs() {
		switch msg := msg.(type) {
		case *staketypes.MsgBond:
			if err := sd.validatePeriod(ctx, msg.Period); err != nil {
				return ctx, err
			}
		case *staketypes.MsgRebond:
			if err := sd.validatePeriod(ctx, msg.FromPeriod); err != nil {
				return ctx, err
			}
			if err := sd.validatePeriod(ctx, msg.ToPeriod); err != nil {
				return ctx, err
			}
		case *staketypes.MsgUnbond:
			if err := sd.validatePeriod(ctx, msg.Period); err != nil {
				return ctx, err
			}
		case *staketypes.MsgFundDistribution:
			if _, err := sd.keeper.GetFlow(ctx, msg.FlowId); err != nil {
				return ctx, err
			}
		}
	}

	return next(ctx, tx, simulate)
}

func (sd StakeDecorator) validatePeriod(ctx sdk.Context, period int64) error {
	params, err := sd.keeper.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("failed to get params: %w", err)
	}

	if _, ok := params.Period(period); !ok {
		return staketypes.ErrUnknownPeriod.Wrapf("no unbonding period of %d seconds", period)
	}

	return nil
}
