package types

// Event types for the LGT module
const (
	EventTypeMintToLiquidity = "mint_to_liquidity"
	EventTypeMintToSell      = "mint_to_sell"

	AttributeKeyProvider        = "provider"
	AttributeKeySeller          = "seller"
	AttributeKeyRecipient       = "recipient"
	AttributeKeyTokensAdded     = "tokens_added"
	AttributeKeyTokensSold      = "tokens_sold"
	AttributeKeyCurrencyAdded   = "currency_added"
	AttributeKeyCurrencyPayout  = "currency_payout"
	AttributeKeyLiquidityMinted = "liquidity_minted"
	AttributeKeyRefund          = "refund"
)
