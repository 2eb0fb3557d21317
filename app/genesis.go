package app

import (
	"encoding/json"
	"time"

	"cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	crisistypes "github.com/cosmos/cosmos-sdk/x/crisis/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types/v1"
	minttypes "github.com/cosmos/cosmos-sdk/x/mint/types"
	stakingtypes "github.com/cosmos/cosmos-sdk/x/staking/types"
)

// GenesisState represents the genesis state of the blockchain.
// It is a map from module name to module genesis state.
type GenesisState map[string]json.RawMessage

// NewDefaultGenesisState generates the default state for the application,
// with the coral chain parameters applied on top of the module defaults.
func NewDefaultGenesisState(cdc codec.JSONCodec) GenesisState {
	genesis := ModuleBasics.DefaultGenesis(cdc)

	// Staking module - validator and delegation management
	stakingGenesis := stakingtypes.DefaultGenesisState()
	stakingGenesis.Params.BondDenom = BondDenom
	stakingGenesis.Params.UnbondingTime = time.Duration(1814400) * time.Second // 21 days
	genesis[stakingtypes.ModuleName] = mustMarshalJSON(stakingGenesis)

	// Mint module - token emission (disabled, fixed supply)
	mintGenesis := minttypes.DefaultGenesisState()
	mintGenesis.Params.MintDenom = BondDenom
	mintGenesis.Params.InflationRateChange = math.LegacyZeroDec()
	mintGenesis.Params.InflationMax = math.LegacyZeroDec()
	mintGenesis.Params.InflationMin = math.LegacyZeroDec()
	mintGenesis.Minter = minttypes.Minter{
		Inflation:        math.LegacyZeroDec(),
		AnnualProvisions: math.LegacyZeroDec(),
	}
	genesis[minttypes.ModuleName] = mustMarshalJSON(mintGenesis)

	// Bank module - register the display metadata for the native token
	bankGenesis := banktypes.DefaultGenesisState()
	bankGenesis.DenomMetadata = []banktypes.Metadata{
		{
			Description: "The native token of the coral network",
			DenomUnits: []*banktypes.DenomUnit{
				{Denom: BondDenom, Exponent: 0},
				{Denom: DisplayDenom, Exponent: 6},
			},
			Base:    BondDenom,
			Display: DisplayDenom,
			Name:    DisplayDenom,
			Symbol:  DisplayDenom,
		},
	}
	genesis[banktypes.ModuleName] = mustMarshalJSON(bankGenesis)

	// Governance module - deposits and fees denominated in ucoral
	govGenesis := govtypes.DefaultGenesisState()
	govGenesis.Params.MinDeposit = sdk.NewCoins(sdk.NewInt64Coin(BondDenom, 10_000_000_000))
	genesis["gov"] = mustMarshalJSON(govGenesis)

	// Crisis module - invariant checking
	crisisGenesis := crisistypes.DefaultGenesisState()
	crisisGenesis.ConstantFee = sdk.NewInt64Coin(BondDenom, 1_000_000_000)
	genesis[crisistypes.ModuleName] = mustMarshalJSON(crisisGenesis)

	return genesis
}

func mustMarshalJSON(v interface{}) json.RawMessage {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}
