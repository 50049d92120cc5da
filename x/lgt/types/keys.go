package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "lgt"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes
var (
	CurrencyReserveKey   = []byte{0x01} // pool settlement-currency reserve
	TokenReserveKey      = []byte{0x02} // pool token reserve
	LiquiditySupplyKey   = []byte{0x03} // total liquidity share supply
	OwnedSupplyKey       = []byte{0x04} // genesis-allocated token supply
	CirculatingSupplyKey = []byte{0x05} // token supply minted through the pool
	ParamsKey            = []byte{0x06} // module parameters
	ShareKeyPrefix       = []byte{0x07} // prefix for per-holder liquidity shares
)

// ShareKey returns the store key for a holder's liquidity share balance
func ShareKey(holder sdk.AccAddress) []byte {
	return append(ShareKeyPrefix, holder.Bytes()...)
}
