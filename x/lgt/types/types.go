package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MintToLiquidityResult is the outcome of a liquidity mint: the amounts the
// pool actually accepted, the shares created, and the unconsumed remainder of
// the attached payment.
type MintToLiquidityResult struct {
	TokensAdded     math.Int
	CurrencyAdded   math.Int
	LiquidityMinted math.Int
	Refund          math.Int
}

// TestAddr returns a deterministic address for testing purposes
func TestAddr() sdk.AccAddress {
	return sdk.AccAddress([]byte("lgt_test_address____"))
}
