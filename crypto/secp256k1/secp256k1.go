package secp256k1

import (
	"bytes"
	"fmt"

	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"github.com/worldwide-asset-exchange/wax-cdt/crypto"
)

// -------------------------------------
const (
	KeyType = crypto.KeyTypeK1

	PrivKeySize   = 32
	PubKeySize    = crypto.PubKeySize
	SignatureSize = crypto.SignatureSize
)

var (
	_ crypto.PublicKey = PubKey{}
	_ crypto.Signature = Signature{}
)

// PrivKey is a secp256k1 private key. It exists so recoverable
// signatures can be produced and round-tripped; the chain API itself
// only ever consumes public keys and signatures.
type PrivKey []byte

// GenPrivKey generates a new secp256k1 private key from OS randomness.
func GenPrivKey() PrivKey {
	priv, err := secp256k1.NewPrivateKey()
	if err != nil {
		panic(err)
	}
	return priv.Serialize()
}

func (privKey PrivKey) Bytes() []byte {
	return []byte(privKey)
}

// PubKey derives the compressed public key for the private key.
func (privKey PrivKey) PubKey() PubKey {
	if len(privKey) != PrivKeySize {
		panic(fmt.Sprintf("length of privkey is incorrect %d != %d", len(privKey), PrivKeySize))
	}
	_, pub := secp256k1.PrivKeyFromBytes(privKey)
	return PubKey(pub.SerializeCompressed())
}

// Sign produces a recoverable signature over a 256-bit digest: a
// recovery header byte followed by the canonical (low-S) R and S
// values.
func (privKey PrivKey) Sign(digest crypto.Checksum256) (Signature, error) {
	if len(privKey) != PrivKeySize {
		return nil, fmt.Errorf("secp256k1: invalid private key length %d", len(privKey))
	}
	priv, _ := secp256k1.PrivKeyFromBytes(privKey)
	sig, err := btcecdsa.SignCompact(priv, digest.Bytes(), true)
	if err != nil {
		return nil, err
	}
	return Signature(sig), nil
}

// -------------------------------------

// PubKey is a compressed secp256k1 public key.
type PubKey []byte

func (PubKey) KeyType() crypto.KeyType {
	return KeyType
}

func (pubKey PubKey) Bytes() []byte {
	return []byte(pubKey)
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeyK1{%X}", []byte(pubKey))
}

// Equals reports tuple equality: the other key must be a K1 key and
// match byte for byte.
func (pubKey PubKey) Equals(other crypto.PublicKey) bool {
	otherK1, ok := other.(PubKey)
	return ok && bytes.Equal(pubKey[:], otherK1[:])
}

// -------------------------------------

// Signature is a recoverable secp256k1 signature: one header byte
// carrying the recovery id (27 + 4 + id, compressed form) followed by
// the 32-byte R and S values.
type Signature []byte

func (Signature) KeyType() crypto.KeyType {
	return KeyType
}

func (sig Signature) Bytes() []byte {
	return []byte(sig)
}

func (sig Signature) String() string {
	return fmt.Sprintf("SigK1{%X}", []byte(sig))
}

// Equals reports tuple equality, same rule as PubKey.Equals.
func (sig Signature) Equals(other crypto.Signature) bool {
	otherK1, ok := other.(Signature)
	return ok && bytes.Equal(sig[:], otherK1[:])
}

// Recover derives the public key that produced sig over digest.
func (sig Signature) Recover(digest crypto.Checksum256) (crypto.PublicKey, error) {
	if len(sig) != SignatureSize {
		return nil, crypto.ErrMalformedSignature{
			Type:   KeyType,
			Reason: fmt.Sprintf("got %d bytes, want %d", len(sig), SignatureSize),
		}
	}
	pub, compressed, err := btcecdsa.RecoverCompact(sig, digest.Bytes())
	if err != nil {
		return nil, crypto.ErrMalformedSignature{Type: KeyType, Reason: err.Error()}
	}
	if !compressed {
		return nil, crypto.ErrMalformedSignature{Type: KeyType, Reason: "recovery header encodes an uncompressed key"}
	}
	return PubKey(pub.SerializeCompressed()), nil
}
