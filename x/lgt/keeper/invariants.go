package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lgt-chain/lgt/x/lgt/types"
)

// RegisterInvariants registers all lgt module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "pool-state",
		PoolStateInvariant(k))
	ir.RegisterRoute(types.ModuleName, "share-supply",
		ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "module-balance",
		ModuleBalanceInvariant(k))
	ir.RegisterRoute(types.ModuleName, "token-supply",
		TokenSupplyInvariant(k))
}

// AllInvariants runs all invariants of the lgt module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := PoolStateInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = ShareSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = ModuleBalanceInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return TokenSupplyInvariant(k)(ctx)
	}
}

// PoolStateInvariant checks that the pool is either fully empty or fully
// bootstrapped. A pool with a nonzero share supply must hold both reserves.
func PoolStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		currencyReserve := k.GetCurrencyReserve(ctx)
		tokenReserve := k.GetTokenReserve(ctx)
		liquiditySupply := k.GetLiquiditySupply(ctx)

		empty := liquiditySupply.IsZero() && currencyReserve.IsZero() && tokenReserve.IsZero()
		funded := liquiditySupply.IsPositive() && currencyReserve.IsPositive() && tokenReserve.IsPositive()

		var (
			broken bool
			msg    string
		)
		if !empty && !funded {
			broken = true
			msg = fmt.Sprintf(
				"pool is neither empty nor fully bootstrapped\n"+
					"\tcurrency reserve: %s\n"+
					"\ttoken reserve: %s\n"+
					"\tliquidity supply: %s",
				currencyReserve, tokenReserve, liquiditySupply,
			)
		}

		return sdk.FormatInvariant(types.ModuleName, "pool-state", msg), broken
	}
}

// ShareSupplyInvariant checks that the sum of all holder share balances equals
// the recorded liquidity share supply.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		sum := math.ZeroInt()
		k.IterateShares(ctx, func(_ sdk.AccAddress, shares math.Int) bool {
			sum = sum.Add(shares)
			return false
		})

		liquiditySupply := k.GetLiquiditySupply(ctx)

		var (
			broken bool
			msg    string
		)
		if !sum.Equal(liquiditySupply) {
			broken = true
			msg = fmt.Sprintf(
				"share balances do not sum to the liquidity supply\n"+
					"\tsum of balances: %s\n"+
					"\tliquidity supply: %s",
				sum, liquiditySupply,
			)
		}

		return sdk.FormatInvariant(types.ModuleName, "share-supply", msg), broken
	}
}

// ModuleBalanceInvariant checks that the module account holds at least the
// recorded currency reserve.
func ModuleBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params := k.GetParams(ctx)
		currencyReserve := k.GetCurrencyReserve(ctx)
		balance := k.bankKeeper.GetBalance(ctx, k.GetModuleAddress(), params.CurrencyDenom)

		var (
			broken bool
			msg    string
		)
		if balance.Amount.LT(currencyReserve) {
			broken = true
			msg = fmt.Sprintf(
				"module account balance below the currency reserve\n"+
					"\tbalance: %s\n"+
					"\tcurrency reserve: %s",
				balance.Amount, currencyReserve,
			)
		}

		return sdk.FormatInvariant(types.ModuleName, "module-balance", msg), broken
	}
}

// TokenSupplyInvariant checks that the circulating supply covers the token
// reserve and that no supply counter is negative.
func TokenSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		owned := k.GetOwnedSupply(ctx)
		circulating := k.GetCirculatingSupply(ctx)
		tokenReserve := k.GetTokenReserve(ctx)

		var (
			broken bool
			msg    string
		)
		switch {
		case owned.IsNegative() || circulating.IsNegative():
			broken = true
			msg = fmt.Sprintf(
				"negative supply counter\n\towned: %s\n\tcirculating: %s",
				owned, circulating,
			)
		case circulating.LT(tokenReserve):
			broken = true
			msg = fmt.Sprintf(
				"circulating supply below the token reserve\n"+
					"\tcirculating supply: %s\n"+
					"\ttoken reserve: %s",
				circulating, tokenReserve,
			)
		}

		return sdk.FormatInvariant(types.ModuleName, "token-supply", msg), broken
	}
}
