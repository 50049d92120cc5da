package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var _ sdk.Msg = &MsgMintToLiquidity{}

// MsgMintToLiquidity defines a message to mint tokens directly into the pool
// alongside a currency contribution, receiving liquidity shares in return.
// TokenAmount is the requested (maximum) number of tokens to mint;
// CurrencyAmount is the attached payment the engine may draw from.
type MsgMintToLiquidity struct {
	Provider       string   `json:"provider"`
	TokenAmount    math.Int `json:"token_amount"`
	MinLiquidity   math.Int `json:"min_liquidity"`
	Deadline       int64    `json:"deadline"`
	Recipient      string   `json:"recipient"`
	CurrencyAmount math.Int `json:"currency_amount"`
}

// NewMsgMintToLiquidity creates a new MsgMintToLiquidity instance
func NewMsgMintToLiquidity(provider string, tokenAmount, minLiquidity math.Int, deadline int64, recipient string, currencyAmount math.Int) *MsgMintToLiquidity {
	return &MsgMintToLiquidity{
		Provider:       provider,
		TokenAmount:    tokenAmount,
		MinLiquidity:   minLiquidity,
		Deadline:       deadline,
		Recipient:      recipient,
		CurrencyAmount: currencyAmount,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgMintToLiquidity) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgMintToLiquidity) Type() string {
	return "mint_to_liquidity"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgMintToLiquidity) GetSigners() []sdk.AccAddress {
	provider, err := sdk.AccAddressFromBech32(msg.Provider)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{provider}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgMintToLiquidity) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgMintToLiquidity) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Provider); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid provider address: %s", err)
	}

	// An empty recipient credits the shares to the provider
	if msg.Recipient != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
			return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
		}
	}

	if msg.TokenAmount.IsNil() || msg.TokenAmount.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "token amount cannot be negative")
	}

	if msg.MinLiquidity.IsNil() || msg.MinLiquidity.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min liquidity cannot be negative")
	}

	if msg.CurrencyAmount.IsNil() || msg.CurrencyAmount.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "currency amount cannot be negative")
	}

	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgMintToLiquidity) Reset() { *msg = MsgMintToLiquidity{} }

// String implements the proto.Message interface
func (msg *MsgMintToLiquidity) String() string {
	return fmt.Sprintf("MsgMintToLiquidity{Provider: %s, TokenAmount: %s, CurrencyAmount: %s}",
		msg.Provider, msg.TokenAmount, msg.CurrencyAmount)
}

// ProtoMessage implements the proto.Message interface
func (*MsgMintToLiquidity) ProtoMessage() {}
