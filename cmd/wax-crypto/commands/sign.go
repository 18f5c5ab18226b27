package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worldwide-asset-exchange/wax-cdt/crypto"
	"github.com/worldwide-asset-exchange/wax-cdt/crypto/encoding"
	"github.com/worldwide-asset-exchange/wax-cdt/crypto/secp256k1"
	"github.com/worldwide-asset-exchange/wax-cdt/crypto/secp256r1"
)

var (
	signKeyType string
	signKey     string
	signDigest  string
)

// SignCmd signs a 256-bit digest and prints the wire-encoded
// signature as hex.
var SignCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a 256-bit digest with a K1 or R1 private key",
	Args:  cobra.NoArgs,
	RunE:  runSign,
}

func init() {
	SignCmd.Flags().StringVar(&signKeyType, "type", "k1", "key type: k1 or r1")
	SignCmd.Flags().StringVar(&signKey, "key", "", "private key as hex (required)")
	SignCmd.Flags().StringVar(&signDigest, "digest", "", "digest to sign as 64 hex characters (required)")
	_ = SignCmd.MarkFlagRequired("key")
	_ = SignCmd.MarkFlagRequired("digest")
}

func runSign(_ *cobra.Command, _ []string) error {
	keyBytes, err := hex.DecodeString(signKey)
	if err != nil {
		return fmt.Errorf("bad private key hex: %w", err)
	}
	digest, err := crypto.Checksum256FromHex(signDigest)
	if err != nil {
		return err
	}

	var sig crypto.Signature
	switch signKeyType {
	case "k1":
		sig, err = secp256k1.PrivKey(keyBytes).Sign(digest)
	case "r1":
		sig, err = secp256r1.PrivKey(keyBytes).Sign(digest)
	default:
		return fmt.Errorf("unknown key type %q", signKeyType)
	}
	if err != nil {
		return err
	}

	wire, err := encoding.MarshalSignature(sig)
	if err != nil {
		return err
	}
	fmt.Printf("%x\n", wire)
	return nil
}
