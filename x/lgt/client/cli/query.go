package cli

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lgt-chain/lgt/x/lgt/types"
)

// GetQueryCmd returns the cli query commands for the lgt module
func GetQueryCmd() *cobra.Command {
	lgtQueryCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Querying commands for the lgt module",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	lgtQueryCmd.AddCommand(
		GetCmdQueryParams(),
		GetCmdQueryPool(),
		GetCmdQuerySupply(),
		GetCmdQueryPrice(),
		GetCmdQueryLiquidityBalance(),
	)

	return lgtQueryCmd
}

// GetCmdQueryParams returns the command to query module parameters
func GetCmdQueryParams() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Query the current lgt module parameters",
		Long: `Query the current parameters of the lgt module including the pool currency
denom, the fee ratio, and the minimum bootstrap deposit.

Example:
  $ lgtd query lgt params`,
		Args: cobra.NoArgs,
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

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPool returns the command to query the pool reserves
func GetCmdQueryPool() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Query the pool reserves and liquidity share supply",
		Long: `Query the current currency reserve, token reserve, and outstanding
liquidity shares of the pool.

Example:
  $ lgtd query lgt pool`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Pool(context.Background(), &types.QueryPoolRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQuerySupply returns the command to query the token supply counters
func GetCmdQuerySupply() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "supply",
		Short: "Query the owned, circulating, and total token supply",
		Long: `Query the token supply counters. The owned supply counts tokens held by
the pool itself; the circulating supply counts everything else.

Example:
  $ lgtd query lgt supply`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.Supply(context.Background(), &types.QuerySupplyRequest{})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryPrice returns the command to quote a token sale
func GetCmdQueryPrice() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price [token-amount]",
		Short: "Quote the currency payout for selling tokens",
		Long: `Quote the currency payout for selling [token-amount] tokens against the
current reserves, without executing the sale.

Example:
  $ lgtd query lgt price 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			tokenAmount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid token amount: %s", args[0])
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.TokenToCurrencyInputPrice(context.Background(), &types.QueryTokenToCurrencyInputPriceRequest{
				TokenAmount: tokenAmount,
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}

// GetCmdQueryLiquidityBalance returns the command to query a holder's shares
func GetCmdQueryLiquidityBalance() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liquidity-balance [address]",
		Short: "Query a holder's liquidity share balance",
		Long: `Query the liquidity share balance of a specific address.

Example:
  $ lgtd query lgt liquidity-balance lgt1abcdef...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientQueryContext(cmd)
			if err != nil {
				return err
			}

			if _, err := sdk.AccAddressFromBech32(args[0]); err != nil {
				return fmt.Errorf("invalid address %s: %w", args[0], err)
			}

			queryClient := types.NewQueryClient(clientCtx)
			res, err := queryClient.LiquidityBalance(context.Background(), &types.QueryLiquidityBalanceRequest{
				Address: args[0],
			})
			if err != nil {
				return err
			}

			return clientCtx.PrintObjectLegacy(res)
		},
	}

	flags.AddQueryFlagsToCmd(cmd)
	return cmd
}
