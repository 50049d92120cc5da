package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/gogoproto/proto"
)

// RegisterCodec registers the necessary interfaces and concrete types
func RegisterCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgMintToLiquidity{}, "lgt/MsgMintToLiquidity", nil)
	cdc.RegisterConcrete(&MsgMintToSell{}, "lgt/MsgMintToSell", nil)
	cdc.RegisterConcrete(&MsgMintToSellTo{}, "lgt/MsgMintToSellTo", nil)
}

// RegisterInterfaces registers the module's interfaces with the interface registry
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgMintToLiquidity{},
		&MsgMintToSell{},
		&MsgMintToSellTo{},
	)
}

var (
	amino     = codec.NewLegacyAmino()
	ModuleCdc = codec.NewAminoCodec(amino)
)

func init() {
	RegisterCodec(amino)
	amino.Seal()

	// Hand-written messages need explicit registration so the interface
	// registry can resolve their type URLs.
	proto.RegisterType((*MsgMintToLiquidity)(nil), "lgt.MsgMintToLiquidity")
	proto.RegisterType((*MsgMintToSell)(nil), "lgt.MsgMintToSell")
	proto.RegisterType((*MsgMintToSellTo)(nil), "lgt.MsgMintToSellTo")
}
