package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worldwide-asset-exchange/wax-cdt/crypto"
	"github.com/worldwide-asset-exchange/wax-cdt/crypto/encoding"
	"github.com/worldwide-asset-exchange/wax-cdt/crypto/secp256k1"
	"github.com/worldwide-asset-exchange/wax-cdt/crypto/secp256r1"
)

var keygenType string

// KeygenCmd generates a key pair and prints the private key bytes and
// the wire-encoded public key as hex.
var KeygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a K1 or R1 key pair",
	Args:  cobra.NoArgs,
	RunE:  runKeygen,
}

func init() {
	KeygenCmd.Flags().StringVar(&keygenType, "type", "k1", "key type: k1 or r1")
}

func runKeygen(_ *cobra.Command, _ []string) error {
	var (
		privBytes []byte
		pub       crypto.PublicKey
	)
	switch keygenType {
	case "k1":
		priv := secp256k1.GenPrivKey()
		privBytes = priv.Bytes()
		pub = priv.PubKey()
	case "r1":
		priv := secp256r1.GenPrivKey()
		privBytes = priv.Bytes()
		pub = priv.PubKey()
	default:
		return fmt.Errorf("unknown key type %q", keygenType)
	}

	wire, err := encoding.MarshalPublicKey(pub)
	if err != nil {
		return err
	}
	fmt.Printf("private: %x\npublic:  %x\n", privBytes, wire)
	return nil
}
