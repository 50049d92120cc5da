package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer defines the read-only surface of the module
type QueryServer interface {
	Params(context.Context, *QueryParamsRequest) (*QueryParamsResponse, error)
	Pool(context.Context, *QueryPoolRequest) (*QueryPoolResponse, error)
	Supply(context.Context, *QuerySupplyRequest) (*QuerySupplyResponse, error)
	TokenToCurrencyInputPrice(context.Context, *QueryTokenToCurrencyInputPriceRequest) (*QueryTokenToCurrencyInputPriceResponse, error)
	LiquidityBalance(context.Context, *QueryLiquidityBalanceRequest) (*QueryLiquidityBalanceResponse, error)
}

// QueryParamsRequest is the request for the Params query
type QueryParamsRequest struct{}

// QueryParamsResponse is the response for the Params query
type QueryParamsResponse struct {
	Params Params `json:"params"`
}

// QueryPoolRequest is the request for the Pool query
type QueryPoolRequest struct{}

// QueryPoolResponse reports the pool reserves and the liquidity share supply
type QueryPoolResponse struct {
	CurrencyReserve math.Int `json:"currency_reserve"`
	TokenReserve    math.Int `json:"token_reserve"`
	LiquiditySupply math.Int `json:"liquidity_supply"`
}

// QuerySupplyRequest is the request for the Supply query
type QuerySupplyRequest struct{}

// QuerySupplyResponse reports the token supply counters
type QuerySupplyResponse struct {
	OwnedSupply       math.Int `json:"owned_supply"`
	CirculatingSupply math.Int `json:"circulating_supply"`
	TotalSupply       math.Int `json:"total_supply"`
}

// QueryTokenToCurrencyInputPriceRequest prices a token sale against the
// current reserves without executing it
type QueryTokenToCurrencyInputPriceRequest struct {
	TokenAmount math.Int `json:"token_amount"`
}

// QueryTokenToCurrencyInputPriceResponse is the quoted currency output
type QueryTokenToCurrencyInputPriceResponse struct {
	CurrencyOut math.Int `json:"currency_out"`
}

// QueryLiquidityBalanceRequest is the request for a holder's share balance
type QueryLiquidityBalanceRequest struct {
	Address string `json:"address"`
}

// QueryLiquidityBalanceResponse is a holder's liquidity share balance
type QueryLiquidityBalanceResponse struct {
	Shares math.Int `json:"shares"`
}
