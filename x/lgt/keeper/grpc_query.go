package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lgt-chain/lgt/x/lgt/types"
)

type queryServer struct {
	Keeper
}

// NewQueryServerImpl returns an implementation of the lgt QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// Params returns the current module parameters
func (qs queryServer) Params(goCtx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryParamsResponse{Params: qs.GetParams(goCtx)}, nil
}

// Pool returns the pool reserves and the liquidity share supply
func (qs queryServer) Pool(goCtx context.Context, req *types.QueryPoolRequest) (*types.QueryPoolResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	return &types.QueryPoolResponse{
		CurrencyReserve: qs.GetCurrencyReserve(goCtx),
		TokenReserve:    qs.GetTokenReserve(goCtx),
		LiquiditySupply: qs.GetLiquiditySupply(goCtx),
	}, nil
}

// Supply returns the owned, circulating, and total token supply
func (qs queryServer) Supply(goCtx context.Context, req *types.QuerySupplyRequest) (*types.QuerySupplyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	owned := qs.GetOwnedSupply(goCtx)
	circulating := qs.GetCirculatingSupply(goCtx)
	return &types.QuerySupplyResponse{
		OwnedSupply:       owned,
		CirculatingSupply: circulating,
		TotalSupply:       owned.Add(circulating),
	}, nil
}

// TokenToCurrencyInputPrice quotes a token sale against the current reserves
func (qs queryServer) TokenToCurrencyInputPrice(goCtx context.Context, req *types.QueryTokenToCurrencyInputPriceRequest) (*types.QueryTokenToCurrencyInputPriceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	if req.TokenAmount.IsNil() || req.TokenAmount.IsNegative() {
		return nil, status.Error(codes.InvalidArgument, "token amount must be non-negative")
	}
	out, err := qs.GetTokenToCurrencyInputPrice(goCtx, req.TokenAmount)
	if err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	return &types.QueryTokenToCurrencyInputPriceResponse{CurrencyOut: out}, nil
}

// LiquidityBalance returns a holder's liquidity share balance
func (qs queryServer) LiquidityBalance(goCtx context.Context, req *types.QueryLiquidityBalanceRequest) (*types.QueryLiquidityBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	holder, err := sdk.AccAddressFromBech32(req.Address)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid address: %v", err)
	}
	return &types.QueryLiquidityBalanceResponse{Shares: qs.GetShares(goCtx, holder)}, nil
}
