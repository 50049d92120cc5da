package keeper

import (
	"context"

	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/lgt-chain/lgt/x/lgt/types"
)

// Keeper of the lgt store. It owns the pool's reserve ledger, the supply
// ledger and the liquidity share ledger; the bank keeper is the external
// currency-transfer primitive.
type Keeper struct {
	storeKey   storetypes.StoreKey
	bankKeeper types.BankKeeper
	metrics    *Metrics

	// module account address, computed once
	moduleAddressCache sdk.AccAddress
}

// NewKeeper creates a new lgt Keeper instance
func NewKeeper(
	key storetypes.StoreKey,
	bankKeeper types.BankKeeper,
) Keeper {
	return Keeper{
		storeKey:           key,
		bankKeeper:         bankKeeper,
		metrics:            NewMetrics(),
		moduleAddressCache: authtypes.NewModuleAddress(types.ModuleName),
	}
}

// getStore returns the KVStore for the lgt module
func (k Keeper) getStore(ctx context.Context) storetypes.KVStore {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.KVStore(k.storeKey)
}

// Logger returns a module-specific logger
func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// GetModuleAddress returns the cached module account address holding the
// pool's currency reserve.
func (k Keeper) GetModuleAddress() sdk.AccAddress {
	return k.moduleAddressCache
}
