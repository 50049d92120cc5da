package keeper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/lgt-chain/lgt/x/lgt/keeper"
	"github.com/lgt-chain/lgt/x/lgt/types"
)

// MockBankKeeper is an in-memory bank for keeper tests. It tracks per-address
// balances and can be forced to reject transfers in either direction.
type MockBankKeeper struct {
	balances map[string]sdk.Coins

	// FailSendToModule / FailSendToAccount make the next transfers fail
	FailSendToModule  bool
	FailSendToAccount bool
}

// NewMockBankKeeper creates an empty mock bank
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

// FundAccount credits coins to an account
func (m *MockBankKeeper) FundAccount(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
}

// SendCoinsFromAccountToModule moves coins from an account to a module account
func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	if m.FailSendToModule {
		return fmt.Errorf("transfer to module %s rejected", recipientModule)
	}
	balance := m.balances[senderAddr.String()]
	if !balance.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds: %s < %s", balance, amt)
	}
	m.balances[senderAddr.String()] = balance.Sub(amt...)
	moduleAddr := authtypes.NewModuleAddress(recipientModule)
	m.balances[moduleAddr.String()] = m.balances[moduleAddr.String()].Add(amt...)
	return nil
}

// SendCoinsFromModuleToAccount moves coins from a module account to an account
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	if m.FailSendToAccount {
		return fmt.Errorf("transfer from module %s rejected", senderModule)
	}
	moduleAddr := authtypes.NewModuleAddress(senderModule)
	balance := m.balances[moduleAddr.String()]
	if !balance.IsAllGTE(amt) {
		return fmt.Errorf("insufficient module funds: %s < %s", balance, amt)
	}
	m.balances[moduleAddr.String()] = balance.Sub(amt...)
	m.balances[recipientAddr.String()] = m.balances[recipientAddr.String()].Add(amt...)
	return nil
}

// GetBalance returns an account's balance of a single denom
func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	balance := m.balances[addr.String()]
	return sdk.NewCoin(denom, balance.AmountOf(denom))
}

// LgtKeeper creates a test keeper for the lgt module backed by an in-memory
// store and the mock bank. The context carries a fixed block time so deadline
// behavior is deterministic.
func LgtKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	bank := NewMockBankKeeper()
	k := keeper.NewKeeper(storeKey, bank)

	header := cmtproto.Header{Time: time.Unix(1_000_000, 0)}
	ctx := sdk.NewContext(stateStore, header, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, bank, ctx
}

// WithBlockTime returns a copy of the context at the given unix time
func WithBlockTime(ctx sdk.Context, unix int64) sdk.Context {
	return ctx.WithBlockTime(time.Unix(unix, 0))
}

// FundedAddr creates a deterministic test address funded with the given
// amount of the default pool currency.
func FundedAddr(bank *MockBankKeeper, name string, amount math.Int) sdk.AccAddress {
	addr := sdk.AccAddress([]byte(fmt.Sprintf("%-20s", name)))
	if amount.IsPositive() {
		bank.FundAccount(addr, sdk.NewCoins(sdk.NewCoin(types.DefaultParams().CurrencyDenom, amount)))
	}
	return addr
}
