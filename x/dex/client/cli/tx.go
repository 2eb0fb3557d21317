package cli

import (
	"fmt"
	"strconv"
	"strings"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"

	"github.com/coral-dex/coral/x/dex/types"
)

// GetTxCmd returns the transaction commands for the dex module
func GetTxCmd() *cobra.Command {
	dexTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "DEX transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	dexTxCmd.AddCommand(
		CmdCreatePool(),
		CmdProvideLiquidity(),
		CmdWithdrawLiquidity(),
		CmdSwap(),
		CmdMultiHopSwap(),
		CmdUpdateFees(),
		CmdFreeze(),
		CmdProposeOwner(),
		CmdClaimOwnership(),
		CmdDropOwnerProposal(),
	)

	return dexTxCmd
}

// CmdCreatePool returns a CLI command handler for creating a liquidity pool
func CmdCreatePool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-pool [denom-a] [amount-a] [denom-b] [amount-b]",
		Short: "Create a new liquidity pool",
		Long: `Create a new liquidity pool with an initial deposit of both denoms.

Example:
  $ corald tx dex create-pool uatom 1000000 uusdc 2000000 --from mykey
  $ corald tx dex create-pool uusdc 1000000 uusdt 1000000 --curve stable --amp 100 --from mykey`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			amountA, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-a: %s (must be integer)", args[1])
			}
			amountB, ok := math.NewIntFromString(args[3])
			if !ok {
				return fmt.Errorf("invalid amount-b: %s (must be integer)", args[3])
			}

			curve, err := cmd.Flags().GetString(FlagCurve)
			if err != nil {
				return err
			}
			amp, err := cmd.Flags().GetUint64(FlagAmp)
			if err != nil {
				return err
			}
			protocolBps, err := cmd.Flags().GetUint32(FlagProtocolFeeBps)
			if err != nil {
				return err
			}
			lpBps, err := cmd.Flags().GetUint32(FlagLpFeeBps)
			if err != nil {
				return err
			}
			feeReceiver, err := cmd.Flags().GetString(FlagFeeReceiver)
			if err != nil {
				return err
			}
			tradingStarts, err := cmd.Flags().GetInt64(FlagTradingStarts)
			if err != nil {
				return err
			}
			circuitBreaker, err := cmd.Flags().GetString(FlagCircuitBreaker)
			if err != nil {
				return err
			}

			msg := &types.MsgCreatePool{
				Creator: clientCtx.GetFromAddress().String(),
				DenomA:  args[0],
				DenomB:  args[2],
				AmountA: amountA,
				AmountB: amountB,
				Curve:   types.CurveKind(curve),
				Amp:     amp,
				FeeConfig: types.FeeConfig{
					ProtocolFeeBps: protocolBps,
					LpFeeBps:       lpBps,
					FeeReceiver:    feeReceiver,
				},
				TradingStarts:  tradingStarts,
				CircuitBreaker: circuitBreaker,
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().AddFlagSet(FlagSetCreatePool(string(types.CurveXYK)))
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdProvideLiquidity returns a CLI command handler for depositing into a pool
func CmdProvideLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provide-liquidity [pool-id] [amount-a] [amount-b]",
		Short: "Deposit both denoms into an existing pool",
		Long: `Deposit both denoms into an existing pool and receive LP shares.

The deposit should match the current pool ratio; deviation beyond the
slippage tolerance is rejected.

Example:
  $ corald tx dex provide-liquidity 1 1000000 2000000 --from mykey
  $ corald tx dex provide-liquidity 1 1000000 2000000 --slippage-tolerance 0.01 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			amountA, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid amount-a: %s (must be integer)", args[1])
			}
			amountB, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid amount-b: %s (must be integer)", args[2])
			}

			msg := &types.MsgProvideLiquidity{
				Sender:  clientCtx.GetFromAddress().String(),
				PoolId:  poolID,
				AmountA: amountA,
				AmountB: amountB,
			}

			if tolerance, err := cmd.Flags().GetString(FlagSlippageTolerance); err != nil {
				return err
			} else if tolerance != "" {
				dec, err := math.LegacyNewDecFromStr(tolerance)
				if err != nil {
					return fmt.Errorf("invalid slippage tolerance: %w", err)
				}
				msg.SlippageTolerance = &dec
			}
			if receiver, err := cmd.Flags().GetString(FlagReceiver); err != nil {
				return err
			} else if receiver != "" {
				msg.Receiver = receiver
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagSlippageTolerance, "", "Accepted deposit-to-pool ratio deviation; empty selects the module default")
	cmd.Flags().String(FlagReceiver, "", "Receiver of the minted shares; defaults to the sender")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdWithdrawLiquidity returns a CLI command handler for burning LP shares
func CmdWithdrawLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdraw-liquidity [pool-id] [shares]",
		Short: "Burn LP shares for the underlying reserves",
		Long: `Burn LP shares and withdraw the proportional amounts of both denoms.

Example:
  $ corald tx dex withdraw-liquidity 1 500000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			shares, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid shares: %s (must be integer)", args[1])
			}

			msg := &types.MsgWithdrawLiquidity{
				Sender: clientCtx.GetFromAddress().String(),
				PoolId: poolID,
				Shares: shares,
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

// CmdSwap returns a CLI command handler for a single-pool swap
func CmdSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swap [pool-id] [offer-denom] [offer-amount]",
		Short: "Swap one denom for the other side of a pool",
		Long: `Swap an exact offer amount against a pool, bounded by max spread and
an optional belief price.

Example:
  $ corald tx dex swap 1 uatom 1000000 --from mykey
  $ corald tx dex swap 1 uatom 1000000 --max-spread 0.01 --belief-price 0.5 --from mykey`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			offerAmount, ok := math.NewIntFromString(args[2])
			if !ok {
				return fmt.Errorf("invalid offer amount: %s (must be integer)", args[2])
			}

			msg := &types.MsgSwap{
				Sender:      clientCtx.GetFromAddress().String(),
				PoolId:      poolID,
				OfferDenom:  args[1],
				OfferAmount: offerAmount,
			}

			if belief, err := cmd.Flags().GetString(FlagBeliefPrice); err != nil {
				return err
			} else if belief != "" {
				dec, err := math.LegacyNewDecFromStr(belief)
				if err != nil {
					return fmt.Errorf("invalid belief price: %w", err)
				}
				msg.BeliefPrice = &dec
			}
			if spread, err := cmd.Flags().GetString(FlagMaxSpread); err != nil {
				return err
			} else if spread != "" {
				dec, err := math.LegacyNewDecFromStr(spread)
				if err != nil {
					return fmt.Errorf("invalid max spread: %w", err)
				}
				msg.MaxSpread = &dec
			}
			if to, err := cmd.Flags().GetString(FlagTo); err != nil {
				return err
			} else if to != "" {
				msg.To = to
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().AddFlagSet(FlagSetSwap())
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdMultiHopSwap returns a CLI command handler for a routed swap. The route
// argument is a denom path like uatom,uusdc,ujuno; each adjacent pair must
// have a pool.
func CmdMultiHopSwap() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "multi-hop-swap [route] [offer-amount]",
		Short: "Swap along a route of pools atomically",
		Long: `Swap an exact offer amount along a comma-separated denom route. Either
every hop settles or none does.

Example:
  $ corald tx dex multi-hop-swap uatom,uusdc,ujuno 1000000 --from mykey
  $ corald tx dex multi-hop-swap uatom,uusdc,ujuno 1000000 --minimum-receive 950000 --from mykey`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			route := strings.Split(args[0], ",")
			if len(route) < 2 {
				return fmt.Errorf("route needs at least two denoms, got %q", args[0])
			}
			operations := make([]types.SwapOperation, 0, len(route)-1)
			for i := 0; i < len(route)-1; i++ {
				operations = append(operations, types.SwapOperation{
					OfferDenom: route[i],
					AskDenom:   route[i+1],
				})
			}

			offerAmount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid offer amount: %s (must be integer)", args[1])
			}

			msg := &types.MsgMultiHopSwap{
				Sender:      clientCtx.GetFromAddress().String(),
				Operations:  operations,
				OfferAmount: offerAmount,
			}

			if minimum, err := cmd.Flags().GetString(FlagMinimumReceive); err != nil {
				return err
			} else if minimum != "" {
				amount, ok := math.NewIntFromString(minimum)
				if !ok {
					return fmt.Errorf("invalid minimum receive: %s (must be integer)", minimum)
				}
				msg.MinimumReceive = &amount
			}
			if spread, err := cmd.Flags().GetString(FlagMaxSpread); err != nil {
				return err
			} else if spread != "" {
				dec, err := math.LegacyNewDecFromStr(spread)
				if err != nil {
					return fmt.Errorf("invalid max spread: %w", err)
				}
				msg.MaxSpread = &dec
			}
			if receiver, err := cmd.Flags().GetString(FlagReceiver); err != nil {
				return err
			} else if receiver != "" {
				msg.Receiver = receiver
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagMinimumReceive, "", "Abort the route if the final return falls short")
	cmd.Flags().String(FlagMaxSpread, "", "Accepted spread ratio per hop; empty selects the module default")
	cmd.Flags().String(FlagReceiver, "", "Receiver of the final return; defaults to the sender")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdUpdateFees returns a CLI command handler for replacing a pool's fee config
func CmdUpdateFees() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-fees [pool-id] [protocol-fee-bps] [lp-fee-bps]",
		Short: "Replace the fee config of a pool (owner only)",
		Long: `Replace the fee configuration of a pool. Only the pool owner may do this.

Example:
  $ corald tx dex update-fees 1 10 20 --from owner
  $ corald tx dex update-fees 1 10 20 --fee-receiver coral1... --from owner`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			protocolBps, err := cast.ToUint32E(args[1])
			if err != nil {
				return fmt.Errorf("invalid protocol fee bps: %w", err)
			}
			lpBps, err := cast.ToUint32E(args[2])
			if err != nil {
				return fmt.Errorf("invalid lp fee bps: %w", err)
			}
			feeReceiver, err := cmd.Flags().GetString(FlagFeeReceiver)
			if err != nil {
				return err
			}

			msg := &types.MsgUpdateFees{
				Sender: clientCtx.GetFromAddress().String(),
				PoolId: poolID,
				FeeConfig: types.FeeConfig{
					ProtocolFeeBps: protocolBps,
					LpFeeBps:       lpBps,
					FeeReceiver:    feeReceiver,
				},
			}

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(FlagFeeReceiver, "", "Direct receiver of the protocol fee; empty accrues to the fee pot")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdFreeze returns a CLI command handler for tripping a pool's circuit breaker
func CmdFreeze() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freeze [pool-id]",
		Short: "Freeze a pool (circuit breaker only)",
		Long: `Freeze a pool so it serves withdrawals and nothing else. Only the
configured circuit breaker may do this and the transition is permanent.

Example:
  $ corald tx dex freeze 1 --from breaker`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgFreeze{
				Sender: clientCtx.GetFromAddress().String(),
				PoolId: poolID,
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

// CmdProposeOwner returns a CLI command handler for starting an ownership handover
func CmdProposeOwner() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "propose-owner [pool-id] [new-owner] [expires-in-seconds]",
		Short: "Propose a new pool owner (owner only)",
		Long: `Start a two-step ownership handover. The nominee must claim before the
proposal expires.

Example:
  $ corald tx dex propose-owner 1 coral1... 86400 --from owner`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}
			expiresIn, err := strconv.ParseInt(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expiry: %w", err)
			}

			msg := &types.MsgProposeOwner{
				Sender:    clientCtx.GetFromAddress().String(),
				PoolId:    poolID,
				NewOwner:  args[1],
				ExpiresIn: expiresIn,
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

// CmdClaimOwnership returns a CLI command handler for completing a handover
func CmdClaimOwnership() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claim-ownership [pool-id]",
		Short: "Claim a proposed pool ownership (nominee only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgClaimOwnership{
				Sender: clientCtx.GetFromAddress().String(),
				PoolId: poolID,
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

// CmdDropOwnerProposal returns a CLI command handler for withdrawing a handover
func CmdDropOwnerProposal() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "drop-owner-proposal [pool-id]",
		Short: "Drop a pending ownership proposal (owner or nominee)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			poolID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid pool ID: %w", err)
			}

			msg := &types.MsgDropOwnerProposal{
				Sender: clientCtx.GetFromAddress().String(),
				PoolId: poolID,
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
