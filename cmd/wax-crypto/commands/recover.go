package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worldwide-asset-exchange/wax-cdt/crypto"
	"github.com/worldwide-asset-exchange/wax-cdt/crypto/chainapi"
	"github.com/worldwide-asset-exchange/wax-cdt/crypto/encoding"
)

var (
	recoverDigest    string
	recoverSignature string
)

// RecoverCmd recovers the signer's public key from a signature and
// the digest it was computed over, printing it wire-encoded as hex.
var RecoverCmd = &cobra.Command{
	Use:   "recover",
	Short: "Recover the public key that produced a signature",
	Args:  cobra.NoArgs,
	RunE:  runRecover,
}

func init() {
	RecoverCmd.Flags().StringVar(&recoverDigest, "digest", "", "signed digest as 64 hex characters (required)")
	RecoverCmd.Flags().StringVar(&recoverSignature, "signature", "", "wire-encoded signature as hex (required)")
	_ = RecoverCmd.MarkFlagRequired("digest")
	_ = RecoverCmd.MarkFlagRequired("signature")
}

func runRecover(_ *cobra.Command, _ []string) error {
	digest, err := crypto.Checksum256FromHex(recoverDigest)
	if err != nil {
		return err
	}
	sigBytes, err := hex.DecodeString(recoverSignature)
	if err != nil {
		return fmt.Errorf("bad signature hex: %w", err)
	}
	sig, err := encoding.UnmarshalSignature(sigBytes)
	if err != nil {
		return err
	}

	pub, err := chainapi.New().RecoverKey(digest, sig)
	if err != nil {
		return err
	}
	wire, err := encoding.MarshalPublicKey(pub)
	if err != nil {
		return err
	}
	fmt.Printf("%x\n", wire)
	return nil
}
