package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lgt-chain/lgt/x/lgt/types"
)

// MintToLiquidity mints tokenAmount new tokens into the pool reserve against
// a currency contribution drawn from the provider's attached payment, and
// credits the recipient with newly minted liquidity shares.
//
// On an empty pool the full requested amounts are accepted and the provider
// sets the initial price ratio; shares are denominated 1:1 with the currency
// contribution. On a bootstrapped pool the engine mints the fewest tokens
// that cover the payment, capped at tokenAmount, then draws the largest
// payment those tokens support:
//
//	tokensAdded     = min(tokenAmount, ceil(currencyAmount*R_t/R_c))
//	currencyCap     = ceil(tokensAdded*R_c/R_t) - 1
//	currencyAdded   = min(currencyAmount, currencyCap)
//	liquidityMinted = floor(currencyAdded*S/R_c)
//
// The remainder of the attached payment is never drawn from the provider.
// The operation is validate-then-commit: every value is computed and checked
// against a snapshot of the ledgers, the currency transfer runs, and only
// then are the ledgers updated. Any failure leaves all state untouched.
func (k Keeper) MintToLiquidity(
	ctx context.Context,
	provider sdk.AccAddress,
	tokenAmount, minLiquidity math.Int,
	deadline int64,
	recipient sdk.AccAddress,
	currencyAmount math.Int,
) (types.MintToLiquidityResult, error) {
	var zero types.MintToLiquidityResult
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	// 1. Preconditions, in reporting order
	if sdkCtx.BlockTime().Unix() > deadline {
		return zero, types.ErrDeadlineExpired.Wrapf("deadline %d, block time %d", deadline, sdkCtx.BlockTime().Unix())
	}
	if !tokenAmount.IsPositive() {
		return zero, types.ErrBelowMinimumMint.Wrapf("requested token amount %s", tokenAmount)
	}
	if !currencyAmount.IsPositive() {
		return zero, types.ErrNoCurrencySupplied
	}

	params := k.GetParams(ctx)

	// 2. Snapshot the ledgers and compute the accepted amounts
	var (
		currencyReserve = k.GetCurrencyReserve(ctx)
		tokenReserve    = k.GetTokenReserve(ctx)
		liquiditySupply = k.GetLiquiditySupply(ctx)

		tokensAdded, currencyAdded, liquidityMinted math.Int
	)

	if liquiditySupply.IsZero() {
		// Bootstrap: the provider sets the initial price ratio. The currency
		// floor rules out a degenerate near-zero initial price.
		if currencyAmount.LT(params.MinInitialCurrency) {
			return zero, types.ErrBelowMinimumInitialCurrency.Wrapf(
				"supplied %s, minimum %s", currencyAmount, params.MinInitialCurrency)
		}

		tokensAdded = tokenAmount
		currencyAdded = currencyAmount
		liquidityMinted = currencyAmount
	} else {
		tokensNeeded, err := SafeMulDivCeil(currencyAmount, tokenReserve, currencyReserve)
		if err != nil {
			return zero, types.ErrOverflow.Wrapf("tokens needed: %v", err)
		}
		tokensAdded = MinInt(tokenAmount, tokensNeeded)

		// The pool keeps strictly less currency than the minted tokens are
		// worth at the reserve ratio, so the price per token never rises.
		currencyCapBound, err := SafeMulDivCeil(tokensAdded, currencyReserve, tokenReserve)
		if err != nil {
			return zero, types.ErrOverflow.Wrapf("currency cap: %v", err)
		}
		currencyCap := currencyCapBound.Sub(math.OneInt())

		currencyAdded = MinInt(currencyAmount, currencyCap)

		// On a token-heavy pool a sub-ratio payment caps to a zero draw.
		// Committing it would add reserve tokens for free, so reject it.
		if !currencyAdded.IsPositive() {
			return zero, types.ErrNoCurrencySupplied.Wrapf(
				"payment %s below one reserve-ratio unit", currencyAmount)
		}

		liquidityMinted, err = SafeMulDiv(currencyAdded, liquiditySupply, currencyReserve)
		if err != nil {
			return zero, types.ErrOverflow.Wrapf("liquidity minted: %v", err)
		}
	}

	if liquidityMinted.LT(minLiquidity) {
		return zero, types.ErrSlippageExceeded.Wrapf(
			"liquidity minted %s below minimum %s", liquidityMinted, minLiquidity)
	}

	// 3. Compute the post-state before touching anything
	newCurrencyReserve, err := SafeAdd(currencyReserve, currencyAdded)
	if err != nil {
		return zero, types.ErrOverflow.Wrapf("currency reserve: %v", err)
	}
	newTokenReserve, err := SafeAdd(tokenReserve, tokensAdded)
	if err != nil {
		return zero, types.ErrOverflow.Wrapf("token reserve: %v", err)
	}
	newLiquiditySupply, err := SafeAdd(liquiditySupply, liquidityMinted)
	if err != nil {
		return zero, types.ErrOverflow.Wrapf("liquidity supply: %v", err)
	}
	newCirculating, err := SafeAdd(k.GetCirculatingSupply(ctx), tokensAdded)
	if err != nil {
		return zero, types.ErrOverflow.Wrapf("circulating supply: %v", err)
	}
	refund := currencyAmount.Sub(currencyAdded)

	// 4. Draw exactly the consumed currency from the provider; the remainder
	// of the attached payment never leaves the provider's account.
	if currencyAdded.IsPositive() {
		payment := sdk.NewCoins(sdk.NewCoin(params.CurrencyDenom, currencyAdded))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, payment); err != nil {
			return zero, types.ErrTransferFailed.Wrapf("drawing %s from provider: %v", payment, err)
		}
	}

	// 5. Commit
	k.SetCurrencyReserve(ctx, newCurrencyReserve)
	k.SetTokenReserve(ctx, newTokenReserve)
	k.SetLiquiditySupply(ctx, newLiquiditySupply)
	k.SetCirculatingSupply(ctx, newCirculating)
	k.AddShares(ctx, recipient, liquidityMinted)

	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeMintToLiquidity,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyTokensAdded, tokensAdded.String()),
			sdk.NewAttribute(types.AttributeKeyCurrencyAdded, currencyAdded.String()),
			sdk.NewAttribute(types.AttributeKeyLiquidityMinted, liquidityMinted.String()),
			sdk.NewAttribute(types.AttributeKeyRefund, refund.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(sdk.AttributeKeySender, provider.String()),
		),
	})

	if k.metrics != nil {
		k.metrics.MintToLiquidityTotal.Inc()
		k.metrics.PoolCurrencyReserve.Set(intToFloat(newCurrencyReserve))
		k.metrics.PoolTokenReserve.Set(intToFloat(newTokenReserve))
		k.metrics.LiquidityShareSupply.Set(intToFloat(newLiquiditySupply))
	}

	k.Logger(ctx).Debug("minted to liquidity",
		"provider", provider.String(),
		"tokens_added", tokensAdded.String(),
		"currency_added", currencyAdded.String(),
		"liquidity_minted", liquidityMinted.String(),
	)

	return types.MintToLiquidityResult{
		TokensAdded:     tokensAdded,
		CurrencyAdded:   currencyAdded,
		LiquidityMinted: liquidityMinted,
		Refund:          refund,
	}, nil
}
