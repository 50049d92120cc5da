package keeper

import (
	"context"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lgt-chain/lgt/x/lgt/types"
)

// GetShares returns a holder's liquidity share balance
func (k Keeper) GetShares(ctx context.Context, holder sdk.AccAddress) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(types.ShareKey(holder))
	if bz == nil {
		return math.ZeroInt()
	}

	var shares math.Int
	if err := shares.Unmarshal(bz); err != nil {
		panic(err)
	}
	return shares
}

// SetShares sets a holder's liquidity share balance. A zero balance removes
// the entry.
func (k Keeper) SetShares(ctx context.Context, holder sdk.AccAddress, shares math.Int) {
	store := k.getStore(ctx)
	if shares.IsZero() {
		store.Delete(types.ShareKey(holder))
		return
	}

	bz, err := shares.Marshal()
	if err != nil {
		panic(err)
	}
	store.Set(types.ShareKey(holder), bz)
}

// AddShares credits newly minted liquidity shares to a holder
func (k Keeper) AddShares(ctx context.Context, holder sdk.AccAddress, shares math.Int) {
	k.SetShares(ctx, holder, k.GetShares(ctx, holder).Add(shares))
}

// IterateShares iterates over all liquidity share positions
func (k Keeper) IterateShares(ctx context.Context, cb func(holder sdk.AccAddress, shares math.Int) (stop bool)) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, types.ShareKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		holder := sdk.AccAddress(iterator.Key()[len(types.ShareKeyPrefix):])

		var shares math.Int
		if err := shares.Unmarshal(iterator.Value()); err != nil {
			panic(err)
		}
		if cb(holder, shares) {
			break
		}
	}
}
