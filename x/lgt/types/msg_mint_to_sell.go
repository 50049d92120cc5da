package types

import (
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

var (
	_ sdk.Msg = &MsgMintToSell{}
	_ sdk.Msg = &MsgMintToSellTo{}
)

// MsgMintToSell defines a message to mint tokens into the pool reserve and
// immediately sell them for currency, paid out to the seller.
type MsgMintToSell struct {
	Seller         string   `json:"seller"`
	TokenAmount    math.Int `json:"token_amount"`
	MinCurrencyOut math.Int `json:"min_currency_out"`
	Deadline       int64    `json:"deadline"`
}

// NewMsgMintToSell creates a new MsgMintToSell instance
func NewMsgMintToSell(seller string, tokenAmount, minCurrencyOut math.Int, deadline int64) *MsgMintToSell {
	return &MsgMintToSell{
		Seller:         seller,
		TokenAmount:    tokenAmount,
		MinCurrencyOut: minCurrencyOut,
		Deadline:       deadline,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgMintToSell) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgMintToSell) Type() string {
	return "mint_to_sell"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgMintToSell) GetSigners() []sdk.AccAddress {
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{seller}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgMintToSell) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgMintToSell) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid seller address: %s", err)
	}

	if msg.TokenAmount.IsNil() || msg.TokenAmount.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "token amount cannot be negative")
	}

	if msg.MinCurrencyOut.IsNil() || msg.MinCurrencyOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min currency out cannot be negative")
	}

	return nil
}

// MsgMintToSellTo is MsgMintToSell with an explicit payout recipient.
type MsgMintToSellTo struct {
	Seller         string   `json:"seller"`
	TokenAmount    math.Int `json:"token_amount"`
	MinCurrencyOut math.Int `json:"min_currency_out"`
	Deadline       int64    `json:"deadline"`
	Recipient      string   `json:"recipient"`
}

// NewMsgMintToSellTo creates a new MsgMintToSellTo instance
func NewMsgMintToSellTo(seller string, tokenAmount, minCurrencyOut math.Int, deadline int64, recipient string) *MsgMintToSellTo {
	return &MsgMintToSellTo{
		Seller:         seller,
		TokenAmount:    tokenAmount,
		MinCurrencyOut: minCurrencyOut,
		Deadline:       deadline,
		Recipient:      recipient,
	}
}

// Route implements the sdk.Msg interface
func (msg MsgMintToSellTo) Route() string {
	return RouterKey
}

// Type implements the sdk.Msg interface
func (msg MsgMintToSellTo) Type() string {
	return "mint_to_sell_to"
}

// GetSigners implements the sdk.Msg interface
func (msg MsgMintToSellTo) GetSigners() []sdk.AccAddress {
	seller, err := sdk.AccAddressFromBech32(msg.Seller)
	if err != nil {
		panic(err)
	}
	return []sdk.AccAddress{seller}
}

// GetSignBytes implements the sdk.Msg interface
func (msg MsgMintToSellTo) GetSignBytes() []byte {
	bz := ModuleCdc.MustMarshalJSON(&msg)
	return sdk.MustSortJSON(bz)
}

// ValidateBasic implements the sdk.Msg interface
func (msg MsgMintToSellTo) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid seller address: %s", err)
	}

	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return sdkerrors.Wrapf(ErrInvalidAddress, "invalid recipient address: %s", err)
	}

	if msg.TokenAmount.IsNil() || msg.TokenAmount.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "token amount cannot be negative")
	}

	if msg.MinCurrencyOut.IsNil() || msg.MinCurrencyOut.IsNegative() {
		return sdkerrors.Wrap(ErrInvalidAmount, "min currency out cannot be negative")
	}

	return nil
}

// Reset implements the proto.Message interface
func (msg *MsgMintToSell) Reset() { *msg = MsgMintToSell{} }

// String implements the proto.Message interface
func (msg *MsgMintToSell) String() string {
	return fmt.Sprintf("MsgMintToSell{Seller: %s, TokenAmount: %s, MinCurrencyOut: %s}",
		msg.Seller, msg.TokenAmount, msg.MinCurrencyOut)
}

// ProtoMessage implements the proto.Message interface
func (*MsgMintToSell) ProtoMessage() {}

// Reset implements the proto.Message interface
func (msg *MsgMintToSellTo) Reset() { *msg = MsgMintToSellTo{} }

// String implements the proto.Message interface
func (msg *MsgMintToSellTo) String() string {
	return fmt.Sprintf("MsgMintToSellTo{Seller: %s, Recipient: %s, TokenAmount: %s}",
		msg.Seller, msg.Recipient, msg.TokenAmount)
}

// ProtoMessage implements the proto.Message interface
func (*MsgMintToSellTo) ProtoMessage() {}
