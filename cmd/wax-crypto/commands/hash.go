package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worldwide-asset-exchange/wax-cdt/crypto"
)

var hashAlgo string

// HashCmd hashes a file (or stdin) and prints the hex digest.
var HashCmd = &cobra.Command{
	Use:   "hash [file]",
	Short: "Hash a file (or stdin) and print the hex digest",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHash,
}

func init() {
	HashCmd.Flags().StringVar(&hashAlgo, "algo", "sha256", "digest algorithm: sha256, sha1, sha512 or ripemd160")
}

func runHash(_ *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return err
	}

	var digest []byte
	switch hashAlgo {
	case "sha256":
		h := crypto.Sha256(data)
		digest = h.Bytes()
	case "sha1":
		h := crypto.Sha1(data)
		digest = h.Bytes()
	case "sha512":
		h := crypto.Sha512(data)
		digest = h.Bytes()
	case "ripemd160":
		h := crypto.Ripemd160(data)
		digest = h.Bytes()
	default:
		return fmt.Errorf("unknown digest algorithm %q", hashAlgo)
	}

	fmt.Printf("%x\n", digest)
	return nil
}
