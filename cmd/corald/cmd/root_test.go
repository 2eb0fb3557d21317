package cmd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_RegistersCoreCommands(t *testing.T) {
	rootCmd := NewRootCmd()

	require.Equal(t, "corald", rootCmd.Use)

	for _, name := range []string{"init", "start", "keys", "query", "tx", "gentx", "status"} {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		require.True(t, found, "missing %s command", name)
	}
}

func TestQueryCommand_IncludesCoralModules(t *testing.T) {
	initSDKConfig()

	cmd := queryCommand()

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	require.True(t, names["dex"], "missing dex query command")
	require.True(t, names["stake"], "missing stake query command")
}
