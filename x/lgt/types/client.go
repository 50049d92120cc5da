package types

import (
	"context"

	grpc1 "github.com/cosmos/gogoproto/grpc"
	grpc "google.golang.org/grpc"
)

// QueryClient is the client API for Query service.
type QueryClient interface {
	Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error)
	Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error)
	Supply(ctx context.Context, in *QuerySupplyRequest, opts ...grpc.CallOption) (*QuerySupplyResponse, error)
	TokenToCurrencyInputPrice(ctx context.Context, in *QueryTokenToCurrencyInputPriceRequest, opts ...grpc.CallOption) (*QueryTokenToCurrencyInputPriceResponse, error)
	LiquidityBalance(ctx context.Context, in *QueryLiquidityBalanceRequest, opts ...grpc.CallOption) (*QueryLiquidityBalanceResponse, error)
}

type queryClient struct {
	cc grpc1.ClientConn
}

func NewQueryClient(cc grpc1.ClientConn) QueryClient {
	return &queryClient{cc}
}

func (c *queryClient) Params(ctx context.Context, in *QueryParamsRequest, opts ...grpc.CallOption) (*QueryParamsResponse, error) {
	out := new(QueryParamsResponse)
	err := c.cc.Invoke(ctx, "/lgt.v1.Query/Params", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Pool(ctx context.Context, in *QueryPoolRequest, opts ...grpc.CallOption) (*QueryPoolResponse, error) {
	out := new(QueryPoolResponse)
	err := c.cc.Invoke(ctx, "/lgt.v1.Query/Pool", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) Supply(ctx context.Context, in *QuerySupplyRequest, opts ...grpc.CallOption) (*QuerySupplyResponse, error) {
	out := new(QuerySupplyResponse)
	err := c.cc.Invoke(ctx, "/lgt.v1.Query/Supply", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) TokenToCurrencyInputPrice(ctx context.Context, in *QueryTokenToCurrencyInputPriceRequest, opts ...grpc.CallOption) (*QueryTokenToCurrencyInputPriceResponse, error) {
	out := new(QueryTokenToCurrencyInputPriceResponse)
	err := c.cc.Invoke(ctx, "/lgt.v1.Query/TokenToCurrencyInputPrice", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *queryClient) LiquidityBalance(ctx context.Context, in *QueryLiquidityBalanceRequest, opts ...grpc.CallOption) (*QueryLiquidityBalanceResponse, error) {
	out := new(QueryLiquidityBalanceResponse)
	err := c.cc.Invoke(ctx, "/lgt.v1.Query/LiquidityBalance", in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}
