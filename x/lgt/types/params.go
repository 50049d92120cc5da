package types

import (
	"fmt"
	"strings"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// DefaultCurrencyDenom is the native settlement currency denomination.
	DefaultCurrencyDenom = "ugas"

	// DefaultFeeNumerator and DefaultFeeDenominator encode the input-side
	// trading fee of the constant-product curve: in' = in * 997 / 1000,
	// a 0.30% fee. Both are pool-wide configuration, not derived state.
	DefaultFeeNumerator   = 997
	DefaultFeeDenominator = 1000
)

// DefaultMinInitialCurrency is the floor for the currency contribution that
// bootstraps an empty pool: 1e9 base units (one gwei-equivalent). It prevents
// a degenerate near-zero initial price.
var DefaultMinInitialCurrency = math.NewInt(1_000_000_000)

// Params defines the parameters for the LGT module.
type Params struct {
	CurrencyDenom      string   `json:"currency_denom"`
	FeeNumerator       uint64   `json:"fee_numerator"`
	FeeDenominator     uint64   `json:"fee_denominator"`
	MinInitialCurrency math.Int `json:"min_initial_currency"`
}

// DefaultParams returns default parameters for the LGT module
func DefaultParams() Params {
	return Params{
		CurrencyDenom:      DefaultCurrencyDenom,
		FeeNumerator:       DefaultFeeNumerator,
		FeeDenominator:     DefaultFeeDenominator,
		MinInitialCurrency: DefaultMinInitialCurrency,
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if strings.TrimSpace(p.CurrencyDenom) == "" {
		return fmt.Errorf("currency denom cannot be blank")
	}
	if err := sdk.ValidateDenom(p.CurrencyDenom); err != nil {
		return fmt.Errorf("invalid currency denom: %w", err)
	}
	if p.FeeDenominator == 0 {
		return fmt.Errorf("fee denominator must be positive")
	}
	if p.FeeNumerator > p.FeeDenominator {
		return fmt.Errorf("fee numerator %d exceeds denominator %d", p.FeeNumerator, p.FeeDenominator)
	}
	if p.FeeNumerator == 0 {
		return fmt.Errorf("fee numerator must be positive")
	}
	if p.MinInitialCurrency.IsNil() || !p.MinInitialCurrency.IsPositive() {
		return fmt.Errorf("minimum initial currency must be positive")
	}
	return nil
}
