package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the message server interface
type MsgServer interface {
	MintToLiquidity(context.Context, *MsgMintToLiquidity) (*MsgMintToLiquidityResponse, error)
	MintToSell(context.Context, *MsgMintToSell) (*MsgMintToSellResponse, error)
	MintToSellTo(context.Context, *MsgMintToSellTo) (*MsgMintToSellToResponse, error)
}

// MsgMintToLiquidityResponse defines the response for MintToLiquidity
type MsgMintToLiquidityResponse struct {
	TokensAdded     math.Int `json:"tokens_added"`
	CurrencyAdded   math.Int `json:"currency_added"`
	LiquidityMinted math.Int `json:"liquidity_minted"`
	Refund          math.Int `json:"refund"`
}

// MsgMintToSellResponse defines the response for MintToSell
type MsgMintToSellResponse struct {
	CurrencyPayout math.Int `json:"currency_payout"`
}

// MsgMintToSellToResponse defines the response for MintToSellTo
type MsgMintToSellToResponse struct {
	CurrencyPayout math.Int `json:"currency_payout"`
}
