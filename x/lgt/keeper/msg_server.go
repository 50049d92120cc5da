package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/lgt-chain/lgt/x/lgt/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the lgt MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// MintToLiquidity handles minting tokens into the pool alongside deposited currency
func (ms msgServer) MintToLiquidity(goCtx context.Context, msg *types.MsgMintToLiquidity) (*types.MsgMintToLiquidityResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("MintToLiquidity: validate: %w", err)
	}

	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("provider: %v", err)
	}

	// The recipient defaults to the provider when unset
	recipient := provider
	if msg.Recipient != "" {
		recipient, err = sdk.AccAddressFromBech32(msg.Recipient)
		if err != nil {
			return nil, types.ErrInvalidAddress.Wrapf("recipient: %v", err)
		}
	}

	res, err := ms.Keeper.MintToLiquidity(goCtx, provider, msg.TokenAmount, msg.MinLiquidity, msg.Deadline, recipient, msg.CurrencyAmount)
	if err != nil {
		return nil, fmt.Errorf("MintToLiquidity: %w", err)
	}

	return &types.MsgMintToLiquidityResponse{
		TokensAdded:     res.TokensAdded,
		CurrencyAdded:   res.CurrencyAdded,
		LiquidityMinted: res.LiquidityMinted,
		Refund:          res.Refund,
	}, nil
}

// MintToSell handles minting tokens into the pool and paying the sale proceeds to the seller
func (ms msgServer) MintToSell(goCtx context.Context, msg *types.MsgMintToSell) (*types.MsgMintToSellResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("MintToSell: validate: %w", err)
	}

	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("seller: %v", err)
	}

	payout, err := ms.Keeper.MintToSell(goCtx, seller, msg.TokenAmount, msg.MinCurrencyOut, msg.Deadline, seller)
	if err != nil {
		return nil, fmt.Errorf("MintToSell: %w", err)
	}

	return &types.MsgMintToSellResponse{
		CurrencyPayout: payout,
	}, nil
}

// MintToSellTo handles minting tokens into the pool and paying the sale proceeds to a third party
func (ms msgServer) MintToSellTo(goCtx context.Context, msg *types.MsgMintToSellTo) (*types.MsgMintToSellToResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("MintToSellTo: validate: %w", err)
	}

	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("seller: %v", err)
	}

	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("recipient: %v", err)
	}

	payout, err := ms.Keeper.MintToSell(goCtx, seller, msg.TokenAmount, msg.MinCurrencyOut, msg.Deadline, recipient)
	if err != nil {
		return nil, fmt.Errorf("MintToSellTo: %w", err)
	}

	return &types.MsgMintToSellToResponse{
		CurrencyPayout: payout,
	}, nil
}
