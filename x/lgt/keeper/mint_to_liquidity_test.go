package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	keepertest "github.com/lgt-chain/lgt/testutil/keeper"
	"github.com/lgt-chain/lgt/x/lgt/keeper"
	"github.com/lgt-chain/lgt/x/lgt/types"
)

const farDeadline = int64(99999999999)

var (
	ether    = math.NewIntWithDecimal(1, 18)
	tenthEth = math.NewIntWithDecimal(1, 17) // 0.1 ether
)

// bootstrapPool initializes the pool with 10 tokens against 0.1 ether, the
// reference ratio used throughout these tests.
func bootstrapPool(t *testing.T, k keeper.Keeper, bank *keepertest.MockBankKeeper, ctx sdk.Context) sdk.AccAddress {
	t.Helper()
	provider := keepertest.FundedAddr(bank, "bootstrapper", tenthEth)
	_, err := k.MintToLiquidity(ctx, provider, math.NewInt(10), math.ZeroInt(), farDeadline, provider, tenthEth)
	require.NoError(t, err)
	return provider
}

func TestMintToEmptyLiquidity(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)

	provider := keepertest.FundedAddr(bank, "provider", tenthEth)
	res, err := k.MintToLiquidity(ctx, provider, math.NewInt(10), math.ZeroInt(), farDeadline, provider, tenthEth)
	require.NoError(t, err)

	require.Equal(t, math.NewInt(10), res.TokensAdded)
	require.Equal(t, tenthEth, res.CurrencyAdded)
	require.Equal(t, tenthEth, res.LiquidityMinted)
	require.True(t, res.Refund.IsZero())

	require.Equal(t, tenthEth, k.GetCurrencyReserve(ctx))
	require.Equal(t, math.NewInt(10), k.GetTokenReserve(ctx))
	require.Equal(t, tenthEth, k.GetLiquiditySupply(ctx))
	require.Equal(t, math.NewInt(10), k.GetCirculatingSupply(ctx))
	require.Equal(t, tenthEth, k.GetShares(ctx, provider))

	// the pool drew the full deposit
	moduleBalance := bank.GetBalance(ctx, k.GetModuleAddress(), types.DefaultParams().CurrencyDenom)
	require.Equal(t, tenthEth, moduleBalance.Amount)
}

func TestMintToLiquidityTokenConstraint(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	// 0.1 ether would need 10 tokens but only 4 are allowed, so the draw is
	// capped at just under 0.04 ether
	provider := keepertest.FundedAddr(bank, "provider", tenthEth)
	res, err := k.MintToLiquidity(ctx, provider, math.NewInt(4), math.ZeroInt(), farDeadline, provider, tenthEth)
	require.NoError(t, err)

	wantCurrency := math.NewIntWithDecimal(4, 16).SubRaw(1) // 0.04 ether - 1
	require.Equal(t, math.NewInt(4), res.TokensAdded)
	require.Equal(t, wantCurrency, res.CurrencyAdded)
	require.Equal(t, wantCurrency, res.LiquidityMinted)
	require.Equal(t, tenthEth.Sub(wantCurrency), res.Refund)

	require.Equal(t, tenthEth.Add(wantCurrency), k.GetCurrencyReserve(ctx))
	require.Equal(t, math.NewInt(14), k.GetTokenReserve(ctx))
	require.Equal(t, math.NewInt(14), k.GetTotalSupply(ctx))
}

func TestMintToLiquidityCurrencyConstraint(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	// 100 tokens allowed but 0.1 ether only supports 10; one unit of the
	// payment is left with the provider to keep the draw strictly below the
	// reserve-ratio worth of the minted tokens
	provider := keepertest.FundedAddr(bank, "provider", tenthEth)
	res, err := k.MintToLiquidity(ctx, provider, math.NewInt(100), math.ZeroInt(), farDeadline, provider, tenthEth)
	require.NoError(t, err)

	wantCurrency := tenthEth.SubRaw(1)
	require.Equal(t, math.NewInt(10), res.TokensAdded)
	require.Equal(t, wantCurrency, res.CurrencyAdded)
	require.Equal(t, wantCurrency, res.LiquidityMinted)
	require.Equal(t, math.OneInt(), res.Refund)

	require.Equal(t, tenthEth.Add(wantCurrency), k.GetCurrencyReserve(ctx))
	require.Equal(t, math.NewInt(20), k.GetTokenReserve(ctx))
	require.Equal(t, tenthEth.Add(wantCurrency), k.GetLiquiditySupply(ctx))
}

func TestMintToLiquidityExactPayment(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	payment := math.NewIntWithDecimal(15, 16).SubRaw(1) // 0.15 ether - 1
	provider := keepertest.FundedAddr(bank, "provider", payment)
	res, err := k.MintToLiquidity(ctx, provider, math.NewInt(15), math.ZeroInt(), farDeadline, provider, payment)
	require.NoError(t, err)

	require.Equal(t, math.NewInt(15), res.TokensAdded)
	require.Equal(t, payment, res.CurrencyAdded)
	require.Equal(t, payment, res.LiquidityMinted)
	require.True(t, res.Refund.IsZero())

	require.Equal(t, tenthEth.Add(payment), k.GetCurrencyReserve(ctx))
	require.Equal(t, math.NewInt(25), k.GetTokenReserve(ctx))
}

func TestMintToLiquidityRefund(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	denom := types.DefaultParams().CurrencyDenom
	payment := ether.MulRaw(2)
	provider := keepertest.FundedAddr(bank, "provider", payment)
	res, err := k.MintToLiquidity(ctx, provider, math.NewInt(15), math.ZeroInt(), farDeadline, provider, payment)
	require.NoError(t, err)

	wantCurrency := math.NewIntWithDecimal(15, 16).SubRaw(1)
	require.Equal(t, math.NewInt(15), res.TokensAdded)
	require.Equal(t, wantCurrency, res.CurrencyAdded)
	require.Equal(t, payment.Sub(wantCurrency), res.Refund)

	// only the consumed currency ever left the provider's account
	providerBalance := bank.GetBalance(ctx, provider, denom)
	require.Equal(t, payment.Sub(wantCurrency), providerBalance.Amount)
}

func TestMintToLiquidityRecipient(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	provider := keepertest.FundedAddr(bank, "provider", tenthEth)
	recipient := keepertest.FundedAddr(bank, "recipient", math.ZeroInt())

	res, err := k.MintToLiquidity(ctx, provider, math.NewInt(4), math.ZeroInt(), farDeadline, recipient, tenthEth)
	require.NoError(t, err)

	require.Equal(t, res.LiquidityMinted, k.GetShares(ctx, recipient))
	require.True(t, k.GetShares(ctx, provider).IsZero())
}

func TestMintToLiquiditySlippageGuard(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	// minting 4 tokens yields just under 0.04 ether of liquidity
	provider := keepertest.FundedAddr(bank, "provider", tenthEth)
	minLiquidity := math.NewIntWithDecimal(4, 16)
	_, err := k.MintToLiquidity(ctx, provider, math.NewInt(4), minLiquidity, farDeadline, provider, tenthEth)
	require.ErrorIs(t, err, types.ErrSlippageExceeded)
}

func TestMintToLiquidityErrors(t *testing.T) {
	tests := []struct {
		name     string
		tokens   math.Int
		currency math.Int
		deadline int64
		wantErr  error
	}{
		{
			name:     "expired deadline",
			tokens:   math.NewInt(10),
			currency: tenthEth,
			deadline: 1,
			wantErr:  types.ErrDeadlineExpired,
		},
		{
			name:     "zero tokens",
			tokens:   math.ZeroInt(),
			currency: tenthEth,
			deadline: farDeadline,
			wantErr:  types.ErrBelowMinimumMint,
		},
		{
			name:     "zero currency",
			tokens:   math.NewInt(10),
			currency: math.ZeroInt(),
			deadline: farDeadline,
			wantErr:  types.ErrNoCurrencySupplied,
		},
		{
			name:     "initial currency below floor",
			tokens:   math.NewInt(10),
			currency: math.NewInt(500_000_000), // 0.5 gwei
			deadline: farDeadline,
			wantErr:  types.ErrBelowMinimumInitialCurrency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, bank, ctx := keepertest.LgtKeeper(t)
			provider := keepertest.FundedAddr(bank, "provider", tenthEth)

			_, err := k.MintToLiquidity(ctx, provider, tt.tokens, math.ZeroInt(), tt.deadline, provider, tt.currency)
			require.ErrorIs(t, err, tt.wantErr)

			// nothing was written
			require.True(t, k.GetCurrencyReserve(ctx).IsZero())
			require.True(t, k.GetTokenReserve(ctx).IsZero())
			require.True(t, k.GetLiquiditySupply(ctx).IsZero())
		})
	}
}

func TestMintToLiquidityZeroDrawRejected(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)

	// bootstrap a token-heavy pool: 1e12 tokens against 1 gwei
	gwei := math.NewInt(1_000_000_000)
	bootstrapper := keepertest.FundedAddr(bank, "bootstrapper", gwei)
	_, err := k.MintToLiquidity(ctx, bootstrapper, math.NewIntWithDecimal(1, 12), math.ZeroInt(), farDeadline, bootstrapper, gwei)
	require.NoError(t, err)

	// a 1-unit payment supports no currency draw at this ratio; accepting it
	// would mint reserve tokens for free
	provider := keepertest.FundedAddr(bank, "provider", math.OneInt())
	_, err = k.MintToLiquidity(ctx, provider, math.NewInt(1000), math.ZeroInt(), farDeadline, provider, math.OneInt())
	require.ErrorIs(t, err, types.ErrNoCurrencySupplied)

	require.Equal(t, gwei, k.GetCurrencyReserve(ctx))
	require.Equal(t, math.NewIntWithDecimal(1, 12), k.GetTokenReserve(ctx))
	require.Equal(t, gwei, k.GetLiquiditySupply(ctx))
	require.True(t, k.GetShares(ctx, provider).IsZero())
}

func TestMintToLiquidityDeadlineBoundary(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	provider := keepertest.FundedAddr(bank, "provider", tenthEth)
	deadline := ctx.BlockTime().Unix() + 10

	// a block exactly at the deadline is still in time
	_, err := k.MintToLiquidity(keepertest.WithBlockTime(ctx, deadline), provider, math.NewInt(10), math.ZeroInt(), deadline, provider, tenthEth)
	require.NoError(t, err)

	k2, bank2, ctx2 := keepertest.LgtKeeper(t)
	provider2 := keepertest.FundedAddr(bank2, "provider", tenthEth)

	// one second past the deadline rejects
	_, err = k2.MintToLiquidity(keepertest.WithBlockTime(ctx2, deadline+1), provider2, math.NewInt(10), math.ZeroInt(), deadline, provider2, tenthEth)
	require.ErrorIs(t, err, types.ErrDeadlineExpired)
}

func TestMintToLiquidityDeadlineOrderedFirst(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	provider := keepertest.FundedAddr(bank, "provider", tenthEth)

	// an expired deadline wins over every other broken argument
	_, err := k.MintToLiquidity(ctx, provider, math.ZeroInt(), math.ZeroInt(), 1, provider, math.ZeroInt())
	require.ErrorIs(t, err, types.ErrDeadlineExpired)
}

func TestMintToLiquidityTransferFailureKeepsState(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	currencyBefore := k.GetCurrencyReserve(ctx)
	tokensBefore := k.GetTokenReserve(ctx)
	liquidityBefore := k.GetLiquiditySupply(ctx)
	circulatingBefore := k.GetCirculatingSupply(ctx)

	provider := keepertest.FundedAddr(bank, "provider", tenthEth)
	bank.FailSendToModule = true

	_, err := k.MintToLiquidity(ctx, provider, math.NewInt(4), math.ZeroInt(), farDeadline, provider, tenthEth)
	require.ErrorIs(t, err, types.ErrTransferFailed)

	require.Equal(t, currencyBefore, k.GetCurrencyReserve(ctx))
	require.Equal(t, tokensBefore, k.GetTokenReserve(ctx))
	require.Equal(t, liquidityBefore, k.GetLiquiditySupply(ctx))
	require.Equal(t, circulatingBefore, k.GetCirculatingSupply(ctx))
	require.True(t, k.GetShares(ctx, provider).IsZero())
}

func TestMintToLiquidityInsufficientFunds(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	bootstrapPool(t, k, bank, ctx)

	// claims a 0.1 ether payment but holds nothing
	provider := keepertest.FundedAddr(bank, "broke", math.ZeroInt())
	_, err := k.MintToLiquidity(ctx, provider, math.NewInt(4), math.ZeroInt(), farDeadline, provider, tenthEth)
	require.ErrorIs(t, err, types.ErrTransferFailed)
}

func TestMintToLiquidityEmitsEvent(t *testing.T) {
	k, bank, ctx := keepertest.LgtKeeper(t)
	provider := keepertest.FundedAddr(bank, "provider", tenthEth)

	_, err := k.MintToLiquidity(ctx, provider, math.NewInt(10), math.ZeroInt(), farDeadline, provider, tenthEth)
	require.NoError(t, err)

	var found bool
	for _, ev := range ctx.EventManager().Events() {
		if ev.Type == types.EventTypeMintToLiquidity {
			found = true
			attrs := map[string]string{}
			for _, a := range ev.Attributes {
				attrs[a.Key] = a.Value
			}
			require.Equal(t, provider.String(), attrs[types.AttributeKeyProvider])
			require.Equal(t, "10", attrs[types.AttributeKeyTokensAdded])
			require.Equal(t, tenthEth.String(), attrs[types.AttributeKeyCurrencyAdded])
		}
	}
	require.True(t, found, "mint_to_liquidity event not emitted")
}
