package types

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "dex"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes
var (
	PoolKeyPrefix         = []byte{0x01} // prefix for pools by id
	PoolCountKey          = []byte{0x02} // key for the pool id counter
	PoolByDenomsKeyPrefix = []byte{0x03} // prefix for pool lookup by denom pair
	CollectedFeeKeyPrefix = []byte{0x04} // prefix for accrued protocol fees by denom
	ParamsKey             = []byte{0x05} // key for module params
)

// PoolKey returns the store key for a pool
func PoolKey(poolID uint64) []byte {
	return append(PoolKeyPrefix, sdk.Uint64ToBigEndian(poolID)...)
}

// PoolByDenomsKey returns the store key indexing a pool by its denom pair.
// Denoms are sorted so the lookup is order-independent.
func PoolByDenomsKey(denomA, denomB string) []byte {
	if denomA > denomB {
		denomA, denomB = denomB, denomA
	}
	key := append(PoolByDenomsKeyPrefix, []byte(denomA)...)
	key = append(key, []byte("/")...)
	return append(key, []byte(denomB)...)
}

// CollectedFeeKey returns the store key for accrued protocol fees in a denom
func CollectedFeeKey(denom string) []byte {
	return append(CollectedFeeKeyPrefix, []byte(denom)...)
}

// LPDenom returns the liquidity share denom minted for a pool
func LPDenom(poolID uint64) string {
	return fmt.Sprintf("coral/pool/%d", poolID)
}
