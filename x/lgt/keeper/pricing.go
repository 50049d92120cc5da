package keeper

import (
	"context"

	"cosmossdk.io/math"

	"github.com/lgt-chain/lgt/x/lgt/types"
)

// TokenToCurrencyInput prices a token sale of tokenIn against the given
// reserves on the constant-product curve, with the input-side trading fee
// feeNum/feeDen applied:
//
//	out = floor(tokenIn*feeNum*currencyReserve / (tokenReserve*feeDen + tokenIn*feeNum))
//
// Pure: no state is read or written. The output is strictly increasing in
// tokenIn and strictly below currencyReserve for any finite input, so a sale
// can never drain the currency reserve.
func TokenToCurrencyInput(tokenIn, tokenReserve, currencyReserve math.Int, feeNum, feeDen uint64) (math.Int, error) {
	if !tokenReserve.IsPositive() || !currencyReserve.IsPositive() {
		return math.ZeroInt(), types.ErrInvalidReserves.Wrapf(
			"token reserve %s, currency reserve %s", tokenReserve, currencyReserve)
	}
	if tokenIn.IsZero() {
		return math.ZeroInt(), nil
	}

	inWithFee, err := SafeMul(tokenIn, math.NewIntFromUint64(feeNum))
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("fee-adjusted input: %v", err)
	}

	numerator, err := SafeMul(inWithFee, currencyReserve)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("pricing numerator: %v", err)
	}

	scaledReserve, err := SafeMul(tokenReserve, math.NewIntFromUint64(feeDen))
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("pricing denominator: %v", err)
	}
	denominator, err := SafeAdd(scaledReserve, inWithFee)
	if err != nil {
		return math.ZeroInt(), types.ErrOverflow.Wrapf("pricing denominator: %v", err)
	}

	return numerator.Quo(denominator), nil
}

// GetTokenToCurrencyInputPrice quotes a sale of tokenAmount against the
// current pool reserves without executing it.
func (k Keeper) GetTokenToCurrencyInputPrice(ctx context.Context, tokenAmount math.Int) (math.Int, error) {
	params := k.GetParams(ctx)
	return TokenToCurrencyInput(
		tokenAmount,
		k.GetTokenReserve(ctx),
		k.GetCurrencyReserve(ctx),
		params.FeeNumerator,
		params.FeeDenominator,
	)
}
