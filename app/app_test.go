package app

import (
	"encoding/json"
	"testing"

	"cosmossdk.io/log"
	abci "github.com/cometbft/cometbft/abci/types"
	dbm "github.com/cosmos/cosmos-db"
	simtestutil "github.com/cosmos/cosmos-sdk/testutil/sims"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	dextypes "github.com/coral-dex/coral/x/dex/types"
	staketypes "github.com/coral-dex/coral/x/stake/types"
)

func TestCoralApp_InitChain(t *testing.T) {
	db := dbm.NewMemDB()
	app := NewCoralApp(log.NewNopLogger(), db, nil, true, simtestutil.EmptyAppOptions{})

	genesisState := NewDefaultGenesisState(app.AppCodec())
	stateBytes, err := json.MarshalIndent(genesisState, "", "  ")
	require.NoError(t, err)

	_, err = app.InitChain(&abci.RequestInitChain{
		ChainId:         "coral-test-1",
		Validators:      []abci.ValidatorUpdate{},
		ConsensusParams: simtestutil.DefaultConsensusParams,
		AppStateBytes:   stateBytes,
	})
	require.NoError(t, err)

	_, err = app.Commit()
	require.NoError(t, err)
}

func TestModuleAccountPermissions(t *testing.T) {
	perms := GetMaccPerms()

	require.Contains(t, perms, dextypes.ModuleName)
	require.ElementsMatch(t, []string{authtypes.Minter, authtypes.Burner}, perms[dextypes.ModuleName])

	require.Contains(t, perms, staketypes.ModuleName)
	require.Empty(t, perms[staketypes.ModuleName])
}

func TestBlockedModuleAccountAddrs(t *testing.T) {
	blocked := BlockedModuleAccountAddrs()

	require.True(t, blocked[authtypes.NewModuleAddress(authtypes.FeeCollectorName).String()])
	require.True(t, blocked[authtypes.NewModuleAddress(dextypes.ModuleName).String()])
}
