package main

import (
	"os"

	"github.com/worldwide-asset-exchange/wax-cdt/cmd/wax-crypto/commands"
)

func main() {
	rootCmd := commands.RootCmd
	rootCmd.AddCommand(
		commands.HashCmd,
		commands.KeygenCmd,
		commands.SignCmd,
		commands.RecoverCmd,
		commands.VerifyRSACmd,
	)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
