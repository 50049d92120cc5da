package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lgt-chain/lgt/x/lgt/types"
)

// InitGenesis initializes the module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("invalid lgt genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("set params: %w", err)
	}

	k.SetCurrencyReserve(ctx, genState.CurrencyReserve)
	k.SetTokenReserve(ctx, genState.TokenReserve)
	k.SetLiquiditySupply(ctx, genState.LiquiditySupply)
	k.SetOwnedSupply(ctx, genState.OwnedSupply)
	k.SetCirculatingSupply(ctx, genState.CirculatingSupply)

	for _, sb := range genState.Shares {
		holder, err := sdk.AccAddressFromBech32(sb.Holder)
		if err != nil {
			return fmt.Errorf("invalid share holder %q: %w", sb.Holder, err)
		}
		k.SetShares(ctx, holder, sb.Shares)
	}

	return nil
}

// ExportGenesis exports the module state into a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) *types.GenesisState {
	genState := &types.GenesisState{
		Params:            k.GetParams(ctx),
		CurrencyReserve:   k.GetCurrencyReserve(ctx),
		TokenReserve:      k.GetTokenReserve(ctx),
		LiquiditySupply:   k.GetLiquiditySupply(ctx),
		OwnedSupply:       k.GetOwnedSupply(ctx),
		CirculatingSupply: k.GetCirculatingSupply(ctx),
	}

	k.IterateShares(ctx, func(holder sdk.AccAddress, shares math.Int) bool {
		genState.Shares = append(genState.Shares, types.ShareBalance{
			Holder: holder.String(),
			Shares: shares,
		})
		return false
	})

	return genState
}
