package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

var (
	balancePrefix = []byte{0x01}
	supplyPrefix  = []byte{0x02}
)

// MockBankKeeper is a minimal token ledger backing keeper tests. Balances
// live in a KVStore mounted next to the module store, so cache contexts roll
// ledger writes back together with module state. It enforces balances on
// transfers and tracks total supply across mints and burns.
type MockBankKeeper struct {
	storeKey storetypes.StoreKey
}

// NewMockBankKeeper creates a ledger over the given store key
func NewMockBankKeeper(storeKey storetypes.StoreKey) *MockBankKeeper {
	return &MockBankKeeper{storeKey: storeKey}
}

func (m *MockBankKeeper) getStore(ctx context.Context) storetypes.KVStore {
	return sdk.UnwrapSDKContext(ctx).KVStore(m.storeKey)
}

func (m *MockBankKeeper) getCoins(ctx context.Context, key []byte) sdk.Coins {
	bz := m.getStore(ctx).Get(key)
	if bz == nil {
		return sdk.NewCoins()
	}
	coins, err := sdk.ParseCoinsNormalized(string(bz))
	if err != nil {
		panic(fmt.Sprintf("corrupt test ledger entry: %v", err))
	}
	return coins
}

func (m *MockBankKeeper) setCoins(ctx context.Context, key []byte, coins sdk.Coins) {
	store := m.getStore(ctx)
	if coins.IsZero() {
		store.Delete(key)
		return
	}
	store.Set(key, []byte(coins.String()))
}

func balanceKey(addr string) []byte {
	return append(balancePrefix, []byte(addr)...)
}

// FundAccount credits an account out of thin air, growing supply to match.
func (m *MockBankKeeper) FundAccount(ctx context.Context, addr sdk.AccAddress, amt sdk.Coins) {
	key := balanceKey(addr.String())
	m.setCoins(ctx, key, m.getCoins(ctx, key).Add(amt...))
	m.setCoins(ctx, supplyPrefix, m.getCoins(ctx, supplyPrefix).Add(amt...))
}

// Balance returns the full balance of an account
func (m *MockBankKeeper) Balance(ctx context.Context, addr sdk.AccAddress) sdk.Coins {
	return m.getCoins(ctx, balanceKey(addr.String()))
}

func (m *MockBankKeeper) transfer(ctx context.Context, from, to string, amt sdk.Coins) error {
	fromKey, toKey := balanceKey(from), balanceKey(to)
	remaining, negative := m.getCoins(ctx, fromKey).SafeSub(amt...)
	if negative {
		return fmt.Errorf("insufficient funds: %s needs %s", from, amt)
	}
	m.setCoins(ctx, fromKey, remaining)
	m.setCoins(ctx, toKey, m.getCoins(ctx, toKey).Add(amt...))
	return nil
}

// SendCoins moves tokens between accounts
func (m *MockBankKeeper) SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.transfer(ctx, fromAddr.String(), toAddr.String(), amt)
}

// SendCoinsFromAccountToModule moves tokens from an account to a module account
func (m *MockBankKeeper) SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.transfer(ctx, senderAddr.String(), authtypes.NewModuleAddress(recipientModule).String(), amt)
}

// SendCoinsFromModuleToAccount moves tokens from a module account to an account
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.transfer(ctx, authtypes.NewModuleAddress(senderModule).String(), recipientAddr.String(), amt)
}

// MintCoins credits a module account and grows supply
func (m *MockBankKeeper) MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	key := balanceKey(authtypes.NewModuleAddress(moduleName).String())
	m.setCoins(ctx, key, m.getCoins(ctx, key).Add(amt...))
	m.setCoins(ctx, supplyPrefix, m.getCoins(ctx, supplyPrefix).Add(amt...))
	return nil
}

// BurnCoins debits a module account and shrinks supply
func (m *MockBankKeeper) BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error {
	key := balanceKey(authtypes.NewModuleAddress(moduleName).String())
	remaining, negative := m.getCoins(ctx, key).SafeSub(amt...)
	if negative {
		return fmt.Errorf("cannot burn %s from module %s", amt, moduleName)
	}
	supply, negative := m.getCoins(ctx, supplyPrefix).SafeSub(amt...)
	if negative {
		return fmt.Errorf("burn exceeds supply: %s", amt)
	}
	m.setCoins(ctx, key, remaining)
	m.setCoins(ctx, supplyPrefix, supply)
	return nil
}

// GetBalance returns an account's balance in one denom
func (m *MockBankKeeper) GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.Balance(ctx, addr).AmountOf(denom))
}

// GetSupply returns the total supply of one denom
func (m *MockBankKeeper) GetSupply(ctx context.Context, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.getCoins(ctx, supplyPrefix).AmountOf(denom))
}
