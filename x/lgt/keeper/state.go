package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	"github.com/lgt-chain/lgt/x/lgt/types"
)

// The reserve and supply ledgers are plain math.Int counters under fixed
// keys. A missing key reads as zero so the pool starts empty without any
// explicit initialization.

func (k Keeper) getInt(ctx context.Context, key []byte) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(key)
	if bz == nil {
		return math.ZeroInt()
	}

	var v math.Int
	if err := v.Unmarshal(bz); err != nil {
		panic(fmt.Errorf("corrupted lgt counter %x: %w", key, err))
	}
	return v
}

func (k Keeper) setInt(ctx context.Context, key []byte, v math.Int) {
	store := k.getStore(ctx)
	bz, err := v.Marshal()
	if err != nil {
		panic(fmt.Errorf("marshal lgt counter %x: %w", key, err))
	}
	store.Set(key, bz)
}

// GetCurrencyReserve returns the pool's settlement-currency reserve
func (k Keeper) GetCurrencyReserve(ctx context.Context) math.Int {
	return k.getInt(ctx, types.CurrencyReserveKey)
}

// SetCurrencyReserve sets the pool's settlement-currency reserve
func (k Keeper) SetCurrencyReserve(ctx context.Context, v math.Int) {
	k.setInt(ctx, types.CurrencyReserveKey, v)
}

// GetTokenReserve returns the pool's token reserve
func (k Keeper) GetTokenReserve(ctx context.Context) math.Int {
	return k.getInt(ctx, types.TokenReserveKey)
}

// SetTokenReserve sets the pool's token reserve
func (k Keeper) SetTokenReserve(ctx context.Context, v math.Int) {
	k.setInt(ctx, types.TokenReserveKey, v)
}

// GetLiquiditySupply returns the total supply of liquidity shares
func (k Keeper) GetLiquiditySupply(ctx context.Context) math.Int {
	return k.getInt(ctx, types.LiquiditySupplyKey)
}

// SetLiquiditySupply sets the total supply of liquidity shares
func (k Keeper) SetLiquiditySupply(ctx context.Context, v math.Int) {
	k.setInt(ctx, types.LiquiditySupplyKey, v)
}

// GetOwnedSupply returns the genesis-allocated token supply. It is constant
// under every operation in this module.
func (k Keeper) GetOwnedSupply(ctx context.Context) math.Int {
	return k.getInt(ctx, types.OwnedSupplyKey)
}

// SetOwnedSupply sets the owned supply. Only genesis may call this.
func (k Keeper) SetOwnedSupply(ctx context.Context, v math.Int) {
	k.setInt(ctx, types.OwnedSupplyKey, v)
}

// GetCirculatingSupply returns the token supply minted through the pool
func (k Keeper) GetCirculatingSupply(ctx context.Context) math.Int {
	return k.getInt(ctx, types.CirculatingSupplyKey)
}

// SetCirculatingSupply sets the circulating supply
func (k Keeper) SetCirculatingSupply(ctx context.Context, v math.Int) {
	k.setInt(ctx, types.CirculatingSupplyKey, v)
}

// GetTotalSupply returns owned plus circulating token supply
func (k Keeper) GetTotalSupply(ctx context.Context) math.Int {
	return k.GetOwnedSupply(ctx).Add(k.GetCirculatingSupply(ctx))
}

// IsPoolEmpty reports whether the pool has never been bootstrapped. The
// empty and bootstrapped states are the only two the ledger can be in.
func (k Keeper) IsPoolEmpty(ctx context.Context) bool {
	return k.GetLiquiditySupply(ctx).IsZero()
}
