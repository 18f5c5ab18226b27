package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the root command for the wax-crypto toolbox.
var RootCmd = &cobra.Command{
	Use:          "wax-crypto",
	Short:        "Hashing, key recovery and RSA verification tools for the WAX crypto API",
	SilenceUsage: true,
}

// readInput reads the single optional file argument, with "-" or no
// argument meaning stdin.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
