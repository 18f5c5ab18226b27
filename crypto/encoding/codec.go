// Package encoding implements the wire codec for variant-tagged
// public keys and signatures: the key type as an unsigned varint
// (LEB128, little-endian byte order) immediately followed by the raw
// fixed-size payload. The payload carries no length prefix; its length
// is fixed at 33 bytes for public keys and 65 bytes for signatures
// regardless of the tag.
package encoding

import (
	"encoding/binary"

	"github.com/worldwide-asset-exchange/wax-cdt/crypto"
	"github.com/worldwide-asset-exchange/wax-cdt/crypto/secp256k1"
	"github.com/worldwide-asset-exchange/wax-cdt/crypto/secp256r1"
)

// ErrInvalidWireFormat describes a buffer that cannot be parsed as a
// tag-prefixed key or signature at all (truncated or overlong varint).
type ErrInvalidWireFormat struct {
	Reason string
}

func (e ErrInvalidWireFormat) Error() string {
	return "encoding: invalid wire format: " + e.Reason
}

// MarshalPublicKey encodes k as its variant tag followed by the fixed
// 33-byte payload.
func MarshalPublicKey(k crypto.PublicKey) ([]byte, error) {
	bz := k.Bytes()
	if len(bz) != crypto.PubKeySize {
		return nil, crypto.ErrInvalidKeyLen{Kind: "public key", Got: len(bz), Want: crypto.PubKeySize}
	}
	out := binary.AppendUvarint(make([]byte, 0, crypto.PubKeySize+1), uint64(k.KeyType()))
	return append(out, bz...), nil
}

// UnmarshalPublicKey decodes a tag-prefixed public key. The buffer
// must contain exactly one encoded key. Unknown tags are rejected with
// crypto.ErrUnsupportedKeyType; they are never accepted as opaque
// bytes.
func UnmarshalPublicKey(bz []byte) (crypto.PublicKey, error) {
	tag, rest, err := splitTag(bz)
	if err != nil {
		return nil, err
	}
	if len(rest) != crypto.PubKeySize {
		return nil, crypto.ErrInvalidKeyLen{Kind: "public key", Got: len(rest), Want: crypto.PubKeySize}
	}
	switch crypto.KeyType(tag) {
	case crypto.KeyTypeK1:
		pk := make(secp256k1.PubKey, crypto.PubKeySize)
		copy(pk, rest)
		return pk, nil
	case crypto.KeyTypeR1:
		pk := make(secp256r1.PubKey, crypto.PubKeySize)
		copy(pk, rest)
		return pk, nil
	default:
		return nil, crypto.ErrUnsupportedKeyType{Type: crypto.KeyType(tag)}
	}
}

// MarshalSignature encodes sig as its variant tag followed by the
// fixed 65-byte payload.
func MarshalSignature(sig crypto.Signature) ([]byte, error) {
	bz := sig.Bytes()
	if len(bz) != crypto.SignatureSize {
		return nil, crypto.ErrInvalidKeyLen{Kind: "signature", Got: len(bz), Want: crypto.SignatureSize}
	}
	out := binary.AppendUvarint(make([]byte, 0, crypto.SignatureSize+1), uint64(sig.KeyType()))
	return append(out, bz...), nil
}

// UnmarshalSignature decodes a tag-prefixed signature. Same contract
// as UnmarshalPublicKey.
func UnmarshalSignature(bz []byte) (crypto.Signature, error) {
	tag, rest, err := splitTag(bz)
	if err != nil {
		return nil, err
	}
	if len(rest) != crypto.SignatureSize {
		return nil, crypto.ErrInvalidKeyLen{Kind: "signature", Got: len(rest), Want: crypto.SignatureSize}
	}
	switch crypto.KeyType(tag) {
	case crypto.KeyTypeK1:
		sig := make(secp256k1.Signature, crypto.SignatureSize)
		copy(sig, rest)
		return sig, nil
	case crypto.KeyTypeR1:
		sig := make(secp256r1.Signature, crypto.SignatureSize)
		copy(sig, rest)
		return sig, nil
	default:
		return nil, crypto.ErrUnsupportedKeyType{Type: crypto.KeyType(tag)}
	}
}

func splitTag(bz []byte) (uint64, []byte, error) {
	tag, n := binary.Uvarint(bz)
	if n <= 0 {
		return 0, nil, ErrInvalidWireFormat{Reason: "bad key type varint"}
	}
	// The wire form is canonical: each tag has exactly one encoding,
	// so overlong varints are rejected.
	if n != uvarintLen(tag) {
		return 0, nil, ErrInvalidWireFormat{Reason: "non-canonical key type varint"}
	}
	return tag, bz[n:], nil
}

func uvarintLen(v uint64) int {
	n := 1
	for v >= 0x80 {
		v >>= 7
		n++
	}
	return n
}
