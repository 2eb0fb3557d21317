package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/address"
)

const (
	// ModuleName defines the module name
	ModuleName = "stake"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName
)

// Store key prefixes
var (
	ParamsKey               = []byte{0x01} // key for module params
	BondEntryKeyPrefix      = []byte{0x02} // prefix for bond entries by (user, period)
	ClaimsKeyPrefix         = []byte{0x03} // prefix for claim queues by user
	PeriodTotalKeyPrefix    = []byte{0x04} // prefix for per-period point totals
	FlowKeyPrefix           = []byte{0x05} // prefix for distribution flows by id
	FlowCountKey            = []byte{0x06} // key for the flow id counter
	FlowByDenomKeyPrefix    = []byte{0x07} // prefix for flow lookup by reward denom
	RewardSnapshotKeyPrefix = []byte{0x08} // prefix for reward snapshots by (user, flow)
	DelegateKeyPrefix       = []byte{0x09} // prefix for withdrawal delegates by user
)

// BondEntryKey returns the store key for a user's bond in one unbonding period
func BondEntryKey(addr sdk.AccAddress, period int64) []byte {
	key := append(BondEntryKeyPrefix, address.MustLengthPrefix(addr)...)
	return append(key, sdk.Uint64ToBigEndian(uint64(period))...)
}

// BondEntryUserPrefix returns the prefix under which all of a user's bond
// entries are stored.
func BondEntryUserPrefix(addr sdk.AccAddress) []byte {
	return append(BondEntryKeyPrefix, address.MustLengthPrefix(addr)...)
}

// ClaimsKey returns the store key for a user's claim queue
func ClaimsKey(addr sdk.AccAddress) []byte {
	return append(ClaimsKeyPrefix, addr.Bytes()...)
}

// PeriodTotalKey returns the store key for a period's total points
func PeriodTotalKey(period int64) []byte {
	return append(PeriodTotalKeyPrefix, sdk.Uint64ToBigEndian(uint64(period))...)
}

// FlowKey returns the store key for a distribution flow
func FlowKey(flowID uint64) []byte {
	return append(FlowKeyPrefix, sdk.Uint64ToBigEndian(flowID)...)
}

// FlowByDenomKey returns the store key indexing a flow by its reward denom
func FlowByDenomKey(denom string) []byte {
	return append(FlowByDenomKeyPrefix, []byte(denom)...)
}

// RewardSnapshotKey returns the store key for a user's snapshot against one flow
func RewardSnapshotKey(addr sdk.AccAddress, flowID uint64) []byte {
	key := append(RewardSnapshotKeyPrefix, address.MustLengthPrefix(addr)...)
	return append(key, sdk.Uint64ToBigEndian(flowID)...)
}

// RewardSnapshotUserPrefix returns the prefix under which all of a user's
// reward snapshots are stored.
func RewardSnapshotUserPrefix(addr sdk.AccAddress) []byte {
	return append(RewardSnapshotKeyPrefix, address.MustLengthPrefix(addr)...)
}

// DelegateKey returns the store key for a user's withdrawal delegate
func DelegateKey(addr sdk.AccAddress) []byte {
	return append(DelegateKeyPrefix, addr.Bytes()...)
}
