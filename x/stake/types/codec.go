package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the stake message types on the amino codec
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgBond{}, "stake/MsgBond", nil)
	cdc.RegisterConcrete(&MsgRebond{}, "stake/MsgRebond", nil)
	cdc.RegisterConcrete(&MsgUnbond{}, "stake/MsgUnbond", nil)
	cdc.RegisterConcrete(&MsgClaim{}, "stake/MsgClaim", nil)
	cdc.RegisterConcrete(&MsgCreateDistributionFlow{}, "stake/MsgCreateDistributionFlow", nil)
	cdc.RegisterConcrete(&MsgFundDistribution{}, "stake/MsgFundDistribution", nil)
	cdc.RegisterConcrete(&MsgWithdrawRewards{}, "stake/MsgWithdrawRewards", nil)
	cdc.RegisterConcrete(&MsgDelegateWithdrawal{}, "stake/MsgDelegateWithdrawal", nil)
}

// RegisterInterfaces registers the stake message implementations
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgBond{},
		&MsgRebond{},
		&MsgUnbond{},
		&MsgClaim{},
		&MsgCreateDistributionFlow{},
		&MsgFundDistribution{},
		&MsgWithdrawRewards{},
		&MsgDelegateWithdrawal{},
	)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
