package main

import (
	"os"

	svrcmd "github.com/cosmos/cosmos-sdk/server/cmd"

	"github.com/coral-dex/coral/app"
	"github.com/coral-dex/coral/cmd/corald/cmd"
)

func main() {
	// Serve the dex and stake module metrics alongside the node.
	StartPrometheusServer(defaultMetricsPort)

	rootCmd := cmd.NewRootCmd()

	if err := svrcmd.Execute(rootCmd, "", app.DefaultNodeHome); err != nil {
		os.Exit(1)
	}
}
