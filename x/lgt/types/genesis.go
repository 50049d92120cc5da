package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// ShareBalance is a single holder's liquidity share position.
type ShareBalance struct {
	Holder string   `json:"holder"`
	Shares math.Int `json:"shares"`
}

// GenesisState defines the LGT module's genesis state. OwnedSupply is fixed
// here and never mutated by any module operation afterwards.
type GenesisState struct {
	Params            Params         `json:"params"`
	OwnedSupply       math.Int       `json:"owned_supply"`
	CirculatingSupply math.Int       `json:"circulating_supply"`
	CurrencyReserve   math.Int       `json:"currency_reserve"`
	TokenReserve      math.Int       `json:"token_reserve"`
	LiquiditySupply   math.Int       `json:"liquidity_supply"`
	Shares            []ShareBalance `json:"shares"`
}

// DefaultGenesis returns the default genesis state: an empty pool and no
// pre-allocated supply.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:            DefaultParams(),
		OwnedSupply:       math.ZeroInt(),
		CirculatingSupply: math.ZeroInt(),
		CurrencyReserve:   math.ZeroInt(),
		TokenReserve:      math.ZeroInt(),
		LiquiditySupply:   math.ZeroInt(),
		Shares:            []ShareBalance{},
	}
}

// Validate ensures the genesis state is well-formed. The pool must be either
// fully empty or fully bootstrapped, and issued shares must sum to the
// liquidity supply.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}

	for _, v := range []struct {
		name string
		val  math.Int
	}{
		{"owned supply", gs.OwnedSupply},
		{"circulating supply", gs.CirculatingSupply},
		{"currency reserve", gs.CurrencyReserve},
		{"token reserve", gs.TokenReserve},
		{"liquidity supply", gs.LiquiditySupply},
	} {
		if v.val.IsNil() || v.val.IsNegative() {
			return fmt.Errorf("%s must be non-negative", v.name)
		}
	}

	empty := gs.LiquiditySupply.IsZero()
	if empty != gs.CurrencyReserve.IsZero() || empty != gs.TokenReserve.IsZero() {
		return fmt.Errorf("pool must be fully empty or fully bootstrapped")
	}

	sum := math.ZeroInt()
	seen := make(map[string]bool, len(gs.Shares))
	for _, sb := range gs.Shares {
		if _, err := sdk.AccAddressFromBech32(sb.Holder); err != nil {
			return fmt.Errorf("invalid share holder address %s: %w", sb.Holder, err)
		}
		if seen[sb.Holder] {
			return fmt.Errorf("duplicate share holder %s", sb.Holder)
		}
		seen[sb.Holder] = true
		if sb.Shares.IsNil() || !sb.Shares.IsPositive() {
			return fmt.Errorf("share balance for %s must be positive", sb.Holder)
		}
		sum = sum.Add(sb.Shares)
	}
	if !sum.Equal(gs.LiquiditySupply) {
		return fmt.Errorf("share balances sum %s does not match liquidity supply %s", sum, gs.LiquiditySupply)
	}

	if gs.CirculatingSupply.LT(gs.TokenReserve) {
		return fmt.Errorf("circulating supply %s below pool token reserve %s", gs.CirculatingSupply, gs.TokenReserve)
	}

	return nil
}
