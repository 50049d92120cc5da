package types_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/lgt-chain/lgt/x/lgt/types"
)

func testAddrBech32() string {
	return types.TestAddr().String()
}

func TestMsgMintToLiquidityValidateBasic(t *testing.T) {
	addr := testAddrBech32()

	tests := []struct {
		name    string
		msg     *types.MsgMintToLiquidity
		wantErr bool
	}{
		{
			name:    "valid",
			msg:     types.NewMsgMintToLiquidity(addr, math.NewInt(10), math.ZeroInt(), 99999999999, addr, math.NewInt(1000)),
			wantErr: false,
		},
		{
			name:    "valid without recipient",
			msg:     types.NewMsgMintToLiquidity(addr, math.NewInt(10), math.ZeroInt(), 99999999999, "", math.NewInt(1000)),
			wantErr: false,
		},
		{
			name:    "invalid provider",
			msg:     types.NewMsgMintToLiquidity("garbage", math.NewInt(10), math.ZeroInt(), 99999999999, addr, math.NewInt(1000)),
			wantErr: true,
		},
		{
			name:    "invalid recipient",
			msg:     types.NewMsgMintToLiquidity(addr, math.NewInt(10), math.ZeroInt(), 99999999999, "garbage", math.NewInt(1000)),
			wantErr: true,
		},
		{
			name:    "negative token amount",
			msg:     types.NewMsgMintToLiquidity(addr, math.NewInt(-1), math.ZeroInt(), 99999999999, addr, math.NewInt(1000)),
			wantErr: true,
		},
		{
			name:    "negative min liquidity",
			msg:     types.NewMsgMintToLiquidity(addr, math.NewInt(10), math.NewInt(-1), 99999999999, addr, math.NewInt(1000)),
			wantErr: true,
		},
		{
			name:    "negative currency amount",
			msg:     types.NewMsgMintToLiquidity(addr, math.NewInt(10), math.ZeroInt(), 99999999999, addr, math.NewInt(-1)),
			wantErr: true,
		},
		{
			name:    "nil amount",
			msg:     &types.MsgMintToLiquidity{Provider: addr, Recipient: addr, MinLiquidity: math.ZeroInt(), CurrencyAmount: math.NewInt(1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgMintToSellValidateBasic(t *testing.T) {
	addr := testAddrBech32()

	tests := []struct {
		name    string
		msg     *types.MsgMintToSell
		wantErr bool
	}{
		{
			name:    "valid",
			msg:     types.NewMsgMintToSell(addr, math.NewInt(10), math.ZeroInt(), 99999999999),
			wantErr: false,
		},
		{
			name:    "invalid seller",
			msg:     types.NewMsgMintToSell("garbage", math.NewInt(10), math.ZeroInt(), 99999999999),
			wantErr: true,
		},
		{
			name:    "negative token amount",
			msg:     types.NewMsgMintToSell(addr, math.NewInt(-1), math.ZeroInt(), 99999999999),
			wantErr: true,
		},
		{
			name:    "negative min currency out",
			msg:     types.NewMsgMintToSell(addr, math.NewInt(10), math.NewInt(-1), 99999999999),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgMintToSellToValidateBasic(t *testing.T) {
	addr := testAddrBech32()
	recipient := sdk.AccAddress([]byte("lgt_test_recipient__")).String()

	tests := []struct {
		name    string
		msg     *types.MsgMintToSellTo
		wantErr bool
	}{
		{
			name:    "valid",
			msg:     types.NewMsgMintToSellTo(addr, math.NewInt(10), math.ZeroInt(), 99999999999, recipient),
			wantErr: false,
		},
		{
			name:    "missing recipient",
			msg:     types.NewMsgMintToSellTo(addr, math.NewInt(10), math.ZeroInt(), 99999999999, ""),
			wantErr: true,
		},
		{
			name:    "invalid recipient",
			msg:     types.NewMsgMintToSellTo(addr, math.NewInt(10), math.ZeroInt(), 99999999999, "garbage"),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.msg.ValidateBasic()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestMsgGetSigners(t *testing.T) {
	addr := types.TestAddr()

	liqMsg := types.NewMsgMintToLiquidity(addr.String(), math.NewInt(10), math.ZeroInt(), 1, "", math.NewInt(1))
	require.Equal(t, []sdk.AccAddress{addr}, liqMsg.GetSigners())

	sellMsg := types.NewMsgMintToSell(addr.String(), math.NewInt(10), math.ZeroInt(), 1)
	require.Equal(t, []sdk.AccAddress{addr}, sellMsg.GetSigners())
}

func TestMsgTypeAndRoute(t *testing.T) {
	addr := testAddrBech32()

	liqMsg := types.NewMsgMintToLiquidity(addr, math.NewInt(10), math.ZeroInt(), 1, "", math.NewInt(1))
	require.Equal(t, types.RouterKey, liqMsg.Route())
	require.Equal(t, "mint_to_liquidity", liqMsg.Type())

	sellMsg := types.NewMsgMintToSell(addr, math.NewInt(10), math.ZeroInt(), 1)
	require.Equal(t, "mint_to_sell", sellMsg.Type())

	sellToMsg := types.NewMsgMintToSellTo(addr, math.NewInt(10), math.ZeroInt(), 1, addr)
	require.Equal(t, "mint_to_sell_to", sellToMsg.Type())
}
