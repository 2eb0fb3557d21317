package cli

import (
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/coral-dex/coral/x/stake/types"
)

// GetTxCmd returns the transaction commands for the stake module
func GetTxCmd() *cobra.Command {
	stakeTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Stake transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	stakeTxCmd.AddCommand(
		CmdBond(),
		CmdRebond(),
		CmdUnbond(),
		CmdClaim(),
		CmdCreateDistributionFlow(),
		CmdFundDistribution(),
		CmdWithdrawRewards(),
		CmdDelegateWithdrawal(),
	)

	return stakeTxCmd
}

// CmdBond returns a CLI command handler for bonding tokens
func CmdBond() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bond [period-seconds] [amount]",
		Short: "Bond tokens into an unbonding period",
		Long: `Bond staked-denom tokens into one of the configured unbonding periods.
Longer periods earn more reward points per token.

Example:
  $ corald tx stake bond 604800 1000000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			period, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid period: %w", err)
			}
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[1])
			}

			msg := &types.MsgBond{
				Sender: clientCtx.GetFromAddress().String(),
				Period: period,
				Amount: amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdRebond returns a CLI command handler for moving a bond between periods
func CmdRebond() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rebond [from-period] [to-period] [amount]",
		Short: "Move bonded tokens between unbonding periods",
		Long: `Move part of a bond from one unbonding period to another without
waiting out an unbonding delay. Points on both sides are recomputed.

Example:
  $ corald tx stake rebond 1209600 604800 500000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			fromPeriod, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid from-period: %w", err)
			}
			toPeriod, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid to-period: %w", err)
			}
			amount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[2])
			}

			msg := &types.MsgRebond{
				Sender:     clientCtx.GetFromAddress().String(),
				FromPeriod: fromPeriod,
				ToPeriod:   toPeriod,
				Amount:     amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUnbond returns a CLI command handler for starting an unbond
func CmdUnbond() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unbond [period-seconds] [amount]",
		Short: "Unbond tokens into the claim queue",
		Long: `Remove tokens from a bond. Points drop immediately; the tokens are
queued as a claim releasing after the period's delay.

Example:
  $ corald tx stake unbond 604800 500000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			period, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid period: %w", err)
			}
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[1])
			}

			msg := &types.MsgUnbond{
				Sender: clientCtx.GetFromAddress().String(),
				Period: period,
				Amount: amount,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdClaim returns a CLI command handler for releasing matured claims
func CmdClaim() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "Release all matured unbonding claims",
		Long: `Release every claim whose unbonding delay has elapsed. Unmatured
claims stay queued.

Example:
  $ corald tx stake claim --from mykey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgClaim{
				Sender: clientCtx.GetFromAddress().String(),
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdCreateDistributionFlow returns a CLI command handler for registering a
// reward stream
func CmdCreateDistributionFlow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-distribution-flow [reward-denom]",
		Short: "Register a reward distribution flow for a denom",
		Long: `Register a new reward distribution flow. Each reward denom may have
at most one flow. The flow starts dormant until funded.

Example:
  $ corald tx stake create-distribution-flow uusdc --from mykey
  $ corald tx stake create-distribution-flow uusdc --manager coral1... --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			manager, err := cmd.Flags().GetString(FlagManager)
			if err != nil {
				return err
			}

			msg := &types.MsgCreateDistributionFlow{
				Sender:      clientCtx.GetFromAddress().String(),
				RewardDenom: args[0],
				Manager:     manager,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagManager, "", "Account allowed to fund the flow; defaults to the sender")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdFundDistribution returns a CLI command handler for funding a flow
func CmdFundDistribution() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fund-distribution [flow-id] [amount] [duration-seconds]",
		Short: "Fund a distribution flow over a fresh emission window",
		Long: `Add reward funds to a flow. Whatever the flow has left undistributed
is folded together with the new amount and emitted evenly over the given
duration starting now.

Example:
  $ corald tx stake fund-distribution 1 10000000 2592000 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			flowID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid flow ID: %w", err)
			}
			amount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount: %s (must be integer)", args[1])
			}
			duration, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid duration: %w", err)
			}

			msg := &types.MsgFundDistribution{
				Sender:   clientCtx.GetFromAddress().String(),
				FlowId:   flowID,
				Amount:   amount,
				Duration: duration,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawRewards returns a CLI command handler for withdrawing rewards
func CmdWithdrawRewards() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-rewards",
		Short: "Withdraw accrued staking rewards",
		Long: `Withdraw the sender's accrued rewards, or another owner's rewards if
the sender is their registered delegate. Without --flow-id all flows pay out.

Example:
  $ corald tx stake withdraw-rewards --from mykey
  $ corald tx stake withdraw-rewards --flow-id 1 --from mykey
  $ corald tx stake withdraw-rewards --owner coral1... --receiver coral1... --from mykey`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			owner, err := cmd.Flags().GetString(FlagOwner)
			if err != nil {
				return err
			}
			flowID, err := cmd.Flags().GetUint64(FlagFlowID)
			if err != nil {
				return err
			}
			receiver, err := cmd.Flags().GetString(FlagReceiver)
			if err != nil {
				return err
			}

			msg := &types.MsgWithdrawRewards{
				Sender:   clientCtx.GetFromAddress().String(),
				Owner:    owner,
				FlowId:   flowID,
				Receiver: receiver,
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagOwner, "", "Owner whose rewards to withdraw; defaults to the sender")
	cmd.Flags().Uint64(FlagFlowID, 0, "Withdraw from this flow only; zero withdraws from all")
	cmd.Flags().String(FlagReceiver, "", "Account receiving the rewards; defaults to the owner")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdDelegateWithdrawal returns a CLI command handler for registering a
// withdrawal delegate
func CmdDelegateWithdrawal() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delegate-withdrawal [delegate]",
		Short: "Authorize an account to withdraw your rewards",
		Long: `Authorize one account to withdraw the sender's rewards on their
behalf. A later call replaces the previous delegate.

Example:
  $ corald tx stake delegate-withdrawal coral1... --from mykey`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			msg := &types.MsgDelegateWithdrawal{
				Sender:   clientCtx.GetFromAddress().String(),
				Delegate: args[0],
			}
			if err := msg.ValidateBasic(); err != nil {
				return err
			}
			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	flags.AddTxFlagsToCmd(cmd)
	return cmd
}
