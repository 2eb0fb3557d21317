package types

import (
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// RegisterLegacyAminoCodec registers the dex message types on the amino codec
func RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&MsgCreatePool{}, "dex/MsgCreatePool", nil)
	cdc.RegisterConcrete(&MsgProvideLiquidity{}, "dex/MsgProvideLiquidity", nil)
	cdc.RegisterConcrete(&MsgWithdrawLiquidity{}, "dex/MsgWithdrawLiquidity", nil)
	cdc.RegisterConcrete(&MsgSwap{}, "dex/MsgSwap", nil)
	cdc.RegisterConcrete(&MsgMultiHopSwap{}, "dex/MsgMultiHopSwap", nil)
	cdc.RegisterConcrete(&MsgUpdateFees{}, "dex/MsgUpdateFees", nil)
	cdc.RegisterConcrete(&MsgFreeze{}, "dex/MsgFreeze", nil)
	cdc.RegisterConcrete(&MsgProposeOwner{}, "dex/MsgProposeOwner", nil)
	cdc.RegisterConcrete(&MsgClaimOwnership{}, "dex/MsgClaimOwnership", nil)
	cdc.RegisterConcrete(&MsgDropOwnerProposal{}, "dex/MsgDropOwnerProposal", nil)
	cdc.RegisterConcrete(&MsgDistributeFees{}, "dex/MsgDistributeFees", nil)
}

// RegisterInterfaces registers the dex message implementations
func RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&MsgCreatePool{},
		&MsgProvideLiquidity{},
		&MsgWithdrawLiquidity{},
		&MsgSwap{},
		&MsgMultiHopSwap{},
		&MsgUpdateFees{},
		&MsgFreeze{},
		&MsgProposeOwner{},
		&MsgClaimOwnership{},
		&MsgDropOwnerProposal{},
		&MsgDistributeFees{},
	)
}

var amino = codec.NewLegacyAmino()

func init() {
	RegisterLegacyAminoCodec(amino)
	amino.Seal()
}
