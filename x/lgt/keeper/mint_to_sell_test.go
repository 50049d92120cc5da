package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/lgt-chain/lgt/testutil/keeper"
	"github.com/lgt-chain/lgt/x/lgt/types"
)

func TestMintToSell(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	denom := types.DefaultParams().CurrencyDenom
	seller := keepertest.FundedAddr(bank, "seller", math.ZeroInt())

	quote, err := k.GetTokenToCurrencyInputPrice(ctx, math.NewInt(10))
	require.NoError(t, err)

	payout, err := k.MintToSell(ctx, seller, math.NewInt(10), math.ZeroInt(), farDeadline, seller)
	require.NoError(t, err)
	require.Equal(t, quote, payout)

	// the payout reached the seller and the ledgers moved together
	require.Equal(t, payout, bank.GetBalance(ctx, seller, denom).Amount)
	require.Equal(t, tenthEth.Sub(payout), k.GetCurrencyReserve(ctx))
	require.Equal(t, math.NewInt(20), k.GetTokenReserve(ctx))
	require.Equal(t, math.NewInt(20), k.GetCirculatingSupply(ctx))

	// selling never mints liquidity shares
	require.Equal(t, tenthEth, k.GetLiquiditySupply(ctx))
	require.True(t, k.GetShares(ctx, seller).IsZero())
}

func TestMintToSellTo(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	denom := types.DefaultParams().CurrencyDenom
	seller := keepertest.FundedAddr(bank, "seller", math.ZeroInt())
	recipient := keepertest.FundedAddr(bank, "recipient", math.ZeroInt())

	quote, err := k.GetTokenToCurrencyInputPrice(ctx, math.NewInt(20))
	require.NoError(t, err)

	payout, err := k.MintToSell(ctx, seller, math.NewInt(20), math.ZeroInt(), farDeadline, recipient)
	require.NoError(t, err)
	require.Equal(t, quote, payout)

	require.True(t, bank.GetBalance(ctx, seller, denom).Amount.IsZero())
	require.Equal(t, payout, bank.GetBalance(ctx, recipient, denom).Amount)
}

func TestMintToSellMatchesGoldenPayout(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	seller := keepertest.FundedAddr(bank, "seller", math.ZeroInt())
	payout, err := k.MintToSell(ctx, seller, math.NewInt(10), math.ZeroInt(), farDeadline, seller)
	require.NoError(t, err)

	// 10*997*1e17 / (10*1000 + 10*997) on the reference pool
	require.Equal(t, math.NewInt(49924887330996494), payout)
}

func TestMintToSellSlippageGuard(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	seller := keepertest.FundedAddr(bank, "seller", math.ZeroInt())
	quote, err := k.GetTokenToCurrencyInputPrice(ctx, math.NewInt(10))
	require.NoError(t, err)

	_, err = k.MintToSell(ctx, seller, math.NewInt(10), quote.AddRaw(1), farDeadline, seller)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
}

func TestMintToSellErrors(t *testing.T) {
	tests := []struct {
		name      string
		tokens    math.Int
		deadline  int64
		bootstrap bool
		wantErr   error
	}{
		{
			name:      "expired deadline",
			tokens:    math.NewInt(10),
			deadline:  1,
			bootstrap: true,
			wantErr:   types.ErrDeadlineExpired,
		},
		{
			name:      "zero tokens",
			tokens:    math.ZeroInt(),
			deadline:  farDeadline,
			bootstrap: true,
			wantErr:   types.ErrMustSellPositiveAmount,
		},
		{
			name:      "empty pool",
			tokens:    math.NewInt(10),
			deadline:  farDeadline,
			bootstrap: false,
			wantErr:   types.ErrInvalidReserves,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, bank, ctx := keepertest.LgtKeeper(t)
			if tt.bootstrap {
				bootstrapPool(t, k, bank, ctx)
			}
			seller := keepertest.FundedAddr(bank, "seller", math.ZeroInt())

			_, err := k.MintToSell(ctx, seller, tt.tokens, math.ZeroInt(), tt.deadline, seller)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMintToSellTransferFailureKeepsState(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	currencyBefore := k.GetCurrencyReserve(ctx)
	tokensBefore := k.GetTokenReserve(ctx)
	circulatingBefore := k.GetCirculatingSupply(ctx)

	seller := keepertest.FundedAddr(bank, "seller", math.ZeroInt())
	bank.FailSendToAccount = true

	_, err := k.MintToSell(ctx, seller, math.NewInt(10), math.ZeroInt(), farDeadline, seller)
	require.ErrorIs(t, err, types.ErrTransferFailed)

	require.Equal(t, currencyBefore, k.GetCurrencyReserve(ctx))
	require.Equal(t, tokensBefore, k.GetTokenReserve(ctx))
	require.Equal(t, circulatingBefore, k.GetCirculatingSupply(ctx))
}

func TestMintToSellNeverDrainsReserve(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	seller := keepertest.FundedAddr(bank, "seller", math.ZeroInt())

	// even an absurdly large sale leaves currency in the pool
	payout, err := k.MintToSell(ctx, seller, math.NewIntWithDecimal(1, 30), math.ZeroInt(), farDeadline, seller)
	require.NoError(t, err)
	require.True(t, payout.LT(tenthEth))
	require.True(t, k.GetCurrencyReserve(ctx).IsPositive())
}

func TestMintToSellEmitsEvent(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	seller := keepertest.FundedAddr(bank, "seller", math.ZeroInt())
	payout, err := k.MintToSell(ctx, seller, math.NewInt(5), math.ZeroInt(), farDeadline, seller)
	require.NoError(t, err)

	var found bool
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == types.EventTypeMintToSell {
			found = true
			attrs := map[string]string{}
			for _, a := range ev.Attributes {
				attrs[a.Key] = a.Value
			}
			require.Equal(t, seller.String(), attrs[types.AttributeKeySeller])
			require.Equal(t, "5", attrs[types.AttributeKeyTokensSold])
			require.Equal(t, payout.String(), attrs[types.AttributeKeyCurrencyPayout])
		}
	}
	require.True(t, found, "mint_to_sell event not emitted")
}
