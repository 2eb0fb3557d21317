package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"

	"github.com/coral-dex/coral/x/stake/types"
)

// GetQueryCmd returns the cli query commands for the stake module
func GetQueryCmd() *cobra.Command {
	stakeQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the stake module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	stakeQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryClaims(),
		GetCmdQueryStaked(),
		GetCmdQueryAllStaked(),
		GetCmdQueryTotalStaked(),
		GetCmdQueryTotalUnbonding(),
		GetCmdQueryBondingInfo(),
		GetCmdQueryRewardsPower(),
		GetCmdQueryTotalRewardsPower(),
		GetCmdQueryAnnualizedRewards(),
		GetCmdQueryWithdrawableRewards(),
		GetCmdQueryDistributedRewards(),
		GetCmdQueryUndistributedRewards(),
	)

	return stakeQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current stake module parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Params(context.Background(), &types.QueryParamsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryClaims returns the command to query a user's claim queue
func GetCmdQueryClaims() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "claims [address]",
		Short: "Query a user's unbonding claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Claims(context.Background(), &types.QueryClaimsRequest{
				Address: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryStaked returns the command to query a user's bond in one period
func GetCmdQueryStaked() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staked [address] [period-seconds]",
		Short: "Query a user's bond in one unbonding period",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			period, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid period: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Staked(context.Background(), &types.QueryStakedRequest{
				Address: args[0],
				Period:  period,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryAllStaked returns the command to query all of a user's bonds
func GetCmdQueryAllStaked() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all-staked [address]",
		Short: "Query a user's bonds across all unbonding periods",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.AllStaked(context.Background(), &types.QueryAllStakedRequest{
				Address: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryTotalStaked returns the command to query the total bonded amount
func GetCmdQueryTotalStaked() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total-staked",
		Short: "Query the total bonded amount across all users",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.TotalStaked(context.Background(), &types.QueryTotalStakedRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryTotalUnbonding returns the command to query the total unbonding amount
func GetCmdQueryTotalUnbonding() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total-unbonding",
		Short: "Query the total amount queued in unbonding claims",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.TotalUnbonding(context.Background(), &types.QueryTotalUnbondingRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryBondingInfo returns the command to query per-period bonding info
func GetCmdQueryBondingInfo() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bonding-info",
		Short: "Query the configured unbonding periods and their point totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.BondingInfo(context.Background(), &types.QueryBondingInfoRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryRewardsPower returns the command to query a user's rewards power
func GetCmdQueryRewardsPower() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewards-power [address]",
		Short: "Query a user's normalized rewards power",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.RewardsPower(context.Background(), &types.QueryRewardsPowerRequest{
				Address: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryTotalRewardsPower returns the command to query total rewards power
func GetCmdQueryTotalRewardsPower() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "total-rewards-power",
		Short: "Query the total normalized rewards power",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.TotalRewardsPower(context.Background(), &types.QueryTotalRewardsPowerRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryAnnualizedRewards returns the command to query yearly emission projections
func GetCmdQueryAnnualizedRewards() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annualized-rewards",
		Short: "Query each flow's emission projected over a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.AnnualizedRewards(context.Background(), &types.QueryAnnualizedRewardsRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryWithdrawableRewards returns the command to query withdrawable rewards
func GetCmdQueryWithdrawableRewards() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "withdrawable-rewards [address]",
		Short: "Query what a user could withdraw right now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.WithdrawableRewards(context.Background(), &types.QueryWithdrawableRewardsRequest{
				Address: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryDistributedRewards returns the command to query a flow's emitted total
func GetCmdQueryDistributedRewards() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distributed-rewards [flow-id]",
		Short: "Query what a flow has distributed so far",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			flowID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid flow ID: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.DistributedRewards(context.Background(), &types.QueryDistributedRewardsRequest{
				FlowId: flowID,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryUndistributedRewards returns the command to query a flow's remaining funds
func GetCmdQueryUndistributedRewards() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "undistributed-rewards [flow-id]",
		Short: "Query a flow's funded but not yet distributed balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			flowID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid flow ID: %w", err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.UndistributedRewards(context.Background(), &types.QueryUndistributedRewardsRequest{
				FlowId: flowID,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintProto(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
