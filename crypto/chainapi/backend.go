package chainapi

import (
	"github.com/worldwide-asset-exchange/wax-cdt/crypto"
)

// Backend is the narrow interface to the trusted cryptographic
// primitives. The contract logic above it never touches curve or hash
// internals, so it can be exercised against a substitute
// implementation.
type Backend interface {
	Sha256(data []byte) crypto.Checksum256
	Sha1(data []byte) crypto.Checksum160
	Sha512(data []byte) crypto.Checksum512
	Ripemd160(data []byte) crypto.Checksum160

	// RecoverKey derives the public key that produced sig over digest,
	// with the same error contract as crypto.Signature.Recover, plus
	// crypto.ErrUnsupportedKeyType for variants the backend does not
	// implement.
	RecoverKey(digest crypto.Checksum256, sig crypto.Signature) (crypto.PublicKey, error)

	// SupportsKeyType reports whether the backend implements recovery
	// for the given variant tag.
	SupportsKeyType(t crypto.KeyType) bool
}

// NativeBackend implements Backend with the hash functions and curve
// packages of this module.
type NativeBackend struct{}

var _ Backend = NativeBackend{}

func (NativeBackend) Sha256(data []byte) crypto.Checksum256 { return crypto.Sha256(data) }

func (NativeBackend) Sha1(data []byte) crypto.Checksum160 { return crypto.Sha1(data) }

func (NativeBackend) Sha512(data []byte) crypto.Checksum512 { return crypto.Sha512(data) }

func (NativeBackend) Ripemd160(data []byte) crypto.Checksum160 { return crypto.Ripemd160(data) }

func (b NativeBackend) RecoverKey(digest crypto.Checksum256, sig crypto.Signature) (crypto.PublicKey, error) {
	if !b.SupportsKeyType(sig.KeyType()) {
		return nil, crypto.ErrUnsupportedKeyType{Type: sig.KeyType()}
	}
	return sig.Recover(digest)
}

func (NativeBackend) SupportsKeyType(t crypto.KeyType) bool {
	return t == crypto.KeyTypeK1 || t == crypto.KeyTypeR1
}
