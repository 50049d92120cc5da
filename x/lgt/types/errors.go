package types

import (
	"cosmossdk.io/errors"
)

// LGT module sentinel errors
var (
	ErrDeadlineExpired             = errors.Register(ModuleName, 1, "deadline passed")
	ErrBelowMinimumMint            = errors.Register(ModuleName, 2, "cannot mint less than one token")
	ErrNoCurrencySupplied          = errors.Register(ModuleName, 3, "must supply currency to add liquidity")
	ErrBelowMinimumInitialCurrency = errors.Register(ModuleName, 4, "initial currency below minimum")
	ErrMustSellPositiveAmount      = errors.Register(ModuleName, 5, "must sell one or more tokens")
	ErrSlippageExceeded            = errors.Register(ModuleName, 6, "output amount less than minimum required")
	ErrInvalidReserves             = errors.Register(ModuleName, 7, "pool reserves are empty")
	ErrTransferFailed              = errors.Register(ModuleName, 8, "currency transfer failed")
	ErrOverflow                    = errors.Register(ModuleName, 9, "arithmetic overflow")
	ErrInvalidAmount               = errors.Register(ModuleName, 10, "invalid amount")
	ErrInvalidAddress              = errors.Register(ModuleName, 11, "invalid address")
	ErrInvalidState                = errors.Register(ModuleName, 12, "invalid pool state")
)
