package cli

import (
	"fmt"
	"time"

	"cosmossdk.io/math"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/client/flags"
	"github.com/cosmos/cosmos-sdk/client/tx"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lgt-chain/lgt/x/lgt/types"
)

const (
	flagMinLiquidity   = "min-liquidity"
	flagMinCurrencyOut = "min-currency-out"
	flagRecipient      = "recipient"
	flagDeadline       = "deadline"

	// defaultDeadlineSecs is applied when --deadline is not set.
	defaultDeadlineSecs = 300
)

// GetTxCmd returns the transaction commands for the lgt module
func GetTxCmd() *cobra.Command {
	lgtTxCmd := &cobra.Command{
		Use:                        types.ModuleName,
		Short:                      "Liquid gas token transaction subcommands",
		DisableFlagParsing:         true,
		SuggestionsMinimumDistance: 2,
		RunE:                       client.ValidateCmd,
	}

	lgtTxCmd.AddCommand(
		CmdMintToLiquidity(),
		CmdMintToSell(),
		CmdMintToSellTo(),
	)

	return lgtTxCmd
}

// CmdMintToLiquidity returns a CLI command handler for minting tokens into the pool
func CmdMintToLiquidity() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint-to-liquidity [token-amount] [currency-amount]",
		Short: "Mint tokens into the pool alongside a currency deposit",
		Long: `Mint up to [token-amount] tokens directly into the pool reserve, matched
against [currency-amount] of the pool currency, and receive liquidity shares.

On the first call the pool is bootstrapped at a 1:1 ratio. On later calls the
engine keeps the reserve ratio: it draws only as much currency as the minted
tokens support and leaves the rest with the sender.

Examples:
  $ lgtd tx lgt mint-to-liquidity 10 100000000000000000 --from my-key
  $ lgtd tx lgt mint-to-liquidity 10 100000000000000000 --min-liquidity 90000000000000000 --from my-key
  $ lgtd tx lgt mint-to-liquidity 10 100000000000000000 --recipient lgt1abcdef... --from my-key`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			tokenAmount, ok := math.NewIntFromString(args[0])
			if !ok {
				return fmt.Errorf("invalid token amount: %s", args[0])
			}

			currencyAmount, ok := math.NewIntFromString(args[1])
			if !ok {
				return fmt.Errorf("invalid currency amount: %s", args[1])
			}

			minLiquidityStr, err := cmd.Flags().GetString(flagMinLiquidity)
			if err != nil {
				return err
			}
			minLiquidity := math.ZeroInt()
			if minLiquidityStr != "" {
				minLiquidity, ok = math.NewIntFromString(minLiquidityStr)
				if !ok {
					return fmt.Errorf("invalid min liquidity: %s", minLiquidityStr)
				}
			}

			recipient, err := cmd.Flags().GetString(flagRecipient)
			if err != nil {
				return err
			}
			if recipient != "" {
				if _, err := sdk.AccAddressFromBech32(recipient); err != nil {
					return fmt.Errorf("invalid recipient address %s: %w", recipient, err)
				}
			}

			deadline, err := readDeadline(cmd)
			if err != nil {
				return err
			}

			msg := types.NewMsgMintToLiquidity(
				clientCtx.GetFromAddress().String(),
				tokenAmount,
				minLiquidity,
				deadline,
				recipient,
				currencyAmount,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagMinLiquidity, "", "Minimum liquidity shares to accept (slippage guard)")
	cmd.Flags().String(flagRecipient, "", "Address credited with the liquidity shares (defaults to sender)")
	cmd.Flags().String(flagDeadline, "", "Unix deadline in seconds (defaults to now + 300s)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdMintToSell returns a CLI command handler for minting and selling tokens
func CmdMintToSell() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint-to-sell [token-amount]",
		Short: "Mint tokens into the pool and sell them for currency",
		Long: `Mint [token-amount] tokens directly into the pool reserve and sell them
along the constant-product curve. The currency proceeds are paid to the sender.

Examples:
  $ lgtd tx lgt mint-to-sell 5 --from my-key
  $ lgtd tx lgt mint-to-sell 5 --min-currency-out 40000000000000000 --from my-key`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			tokenAmount, minCurrencyOut, deadline, err := readSellArgs(cmd, args[0])
			if err != nil {
				return err
			}

			msg := types.NewMsgMintToSell(
				clientCtx.GetFromAddress().String(),
				tokenAmount,
				minCurrencyOut,
				deadline,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagMinCurrencyOut, "", "Minimum currency payout to accept (slippage guard)")
	cmd.Flags().String(flagDeadline, "", "Unix deadline in seconds (defaults to now + 300s)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

// CmdMintToSellTo returns a CLI command handler for minting and selling tokens
// with the payout sent to a third party
func CmdMintToSellTo() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mint-to-sell-to [token-amount] [recipient]",
		Short: "Mint tokens into the pool, sell them, and pay a third party",
		Long: `Mint [token-amount] tokens directly into the pool reserve, sell them along
the constant-product curve, and pay the currency proceeds to [recipient].

Example:
  $ lgtd tx lgt mint-to-sell-to 5 lgt1abcdef... --from my-key`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			clientCtx, err := client.GetClientTxContext(cmd)
			if err != nil {
				return err
			}

			tokenAmount, minCurrencyOut, deadline, err := readSellArgs(cmd, args[0])
			if err != nil {
				return err
			}

			recipient := args[1]
			if _, err := sdk.AccAddressFromBech32(recipient); err != nil {
				return fmt.Errorf("invalid recipient address %s: %w", recipient, err)
			}

			msg := types.NewMsgMintToSellTo(
				clientCtx.GetFromAddress().String(),
				tokenAmount,
				minCurrencyOut,
				deadline,
				recipient,
			)

			if err := msg.ValidateBasic(); err != nil {
				return err
			}

			return tx.GenerateOrBroadcastTxCLI(clientCtx, cmd.Flags(), msg)
		},
	}

	cmd.Flags().String(flagMinCurrencyOut, "", "Minimum currency payout to accept (slippage guard)")
	cmd.Flags().String(flagDeadline, "", "Unix deadline in seconds (defaults to now + 300s)")
	flags.AddTxFlagsToCmd(cmd)
	return cmd
}

func readSellArgs(cmd *cobra.Command, tokenArg string) (tokenAmount, minCurrencyOut math.Int, deadline int64, err error) {
	tokenAmount, ok := math.NewIntFromString(tokenArg)
	if !ok {
		return math.Int{}, math.Int{}, 0, fmt.Errorf("invalid token amount: %s", tokenArg)
	}

	minOutStr, err := cmd.Flags().GetString(flagMinCurrencyOut)
	if err != nil {
		return math.Int{}, math.Int{}, 0, err
	}
	minCurrencyOut = math.ZeroInt()
	if minOutStr != "" {
		minCurrencyOut, ok = math.NewIntFromString(minOutStr)
		if !ok {
			return math.Int{}, math.Int{}, 0, fmt.Errorf("invalid min currency out: %s", minOutStr)
		}
	}

	deadline, err = readDeadline(cmd)
	if err != nil {
		return math.Int{}, math.Int{}, 0, err
	}

	return tokenAmount, minCurrencyOut, deadline, nil
}

func readDeadline(cmd *cobra.Command) (int64, error) {
	raw, err := cmd.Flags().GetString(flagDeadline)
	if err != nil {
		return 0, err
	}
	if raw == "" {
		return time.Now().Unix() + defaultDeadlineSecs, nil
	}
	deadline, err := cast.ToInt64E(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid deadline %q: %w", raw, err)
	}
	if deadline < 0 {
		return 0, fmt.Errorf("deadline cannot be negative: %d", deadline)
	}
	return deadline, nil
}
