package keeper

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lgt-chain/lgt/x/lgt/types"
)

// MintToSell mints tokenAmount new tokens directly into the pool's token
// reserve and sells them along the constant-product curve, paying the
// currency proceeds to recipient. The seller never holds the minted tokens;
// they exist only as pool reserve. The owned supply is untouched.
//
// The sale is priced against the pre-mint reserves, so the payout equals the
// read-only price quote for the same amount. Like every operation here it is
// validate-then-commit: a failed payout leaves the ledgers untouched.
func (k Keeper) MintToSell(
	ctx context.Context,
	seller sdk.AccAddress,
	tokenAmount, minCurrencyOut math.Int,
	deadline int64,
	recipient sdk.AccAddress,
) (math.Int, error) {
	sdkCtx := sdk.UnwrapSDKContext(ctx)

	// 1. Preconditions, in reporting order
	if sdkCtx.BlockTime().Unix() > deadline {
		return math.ZeroInt(), types.ErrDeadlineExpired.Wrapf("deadline %d, block time %d", deadline, sdkCtx.BlockTime().Unix())
	}
	if !tokenAmount.IsPositive() {
		return math.ZeroInt(), types.ErrMustSellPositiveAmount.Wrapf("token amount %s", tokenAmount)
	}

	params := k.GetParams(ctx)

	// 2. Price against a snapshot of the reserves
	currencyReserve := k.GetCurrencyReserve(ctx)
	tokenReserve := k.GetTokenReserve(ctx)

	payout, err := TokenToCurrencyInput(tokenAmount, tokenReserve, currencyReserve, params.FeeNumerator, params.FeeDenominator)
	if err != nil {
		return math.ZeroInt(), err
	}

	if payout.LT(minCurrencyOut) {
		return math.ZeroInt(), types.ErrSlippageExceeded.Wrapf(
			"payout %s below minimum %s", payout, minCurrencyOut)
	}

	// 3. Compute the post-state before touching anything. The curve keeps
	// payout strictly below the currency reserve, so the pool stays funded.
	newTokenReserve, err := SafeAdd(tokenReserve, tokenAmount)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("token reserve: %v", err)
	}
	newCurrencyReserve, err := SafeSub(currencyReserve, payout)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("currency reserve: %v", err)
	}
	newCirculating, err := SafeAdd(k.GetCirculatingSupply(ctx), tokenAmount)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("circulating supply: %v", err)
	}

	// 4. Pay out; a rejected transfer aborts the whole operation
	if payout.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(params.CurrencyDenom, payout))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
			return math.ZeroInt(), types.ErrTransferFailed.Wrapf("paying out %s: %v", coins, err)
		}
	}

	// 5. Commit
	k.SetTokenReserve(ctx, newTokenReserve)
	k.SetCurrencyReserve(ctx, newCurrencyReserve)
	k.SetCirculatingSupply(ctx, newCirculating)

	sdkCtx.EventManager().EmitEvents(sdk.Events{
		sdk.NewEvent(
			types.EventTypeMintToSell,
			sdk.NewAttribute(types.AttributeKeySeller, seller.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyTokensSold, tokenAmount.String()),
			sdk.NewAttribute(types.AttributeKeyCurrencyPayout, payout.String()),
		),
		sdk.NewEvent(
			sdk.EventTypeMessage,
			sdk.NewAttribute(sdk.AttributeKeyModule, types.ModuleName),
			sdk.NewAttribute(sdk.AttributeKeySender, seller.String()),
		),
	})

	if k.metrics != nil {
		k.metrics.MintToSellTotal.Inc()
		k.metrics.PoolCurrencyReserve.Set(intToFloat(newCurrencyReserve))
		k.metrics.PoolTokenReserve.Set(intToFloat(newTokenReserve))
	}

	k.Logger(ctx).Debug("minted to sell",
		"seller", seller.String(),
		"recipient", recipient.String(),
		"tokens_sold", tokenAmount.String(),
		"currency_payout", payout.String(),
	)

	return payout, nil
}
