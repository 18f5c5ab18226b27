package crypto

import "fmt"

// KeyType selects the curve family of a public key or signature. It
// is the value serialized as the leading varint of the wire encoding.
type KeyType uint32

const (
	// KeyTypeK1 is the secp256k1 family.
	KeyTypeK1 KeyType = iota
	// KeyTypeR1 is the NIST P-256 family.
	KeyTypeR1
)

func (t KeyType) String() string {
	switch t {
	case KeyTypeK1:
		return "K1"
	case KeyTypeR1:
		return "R1"
	default:
		return fmt.Sprintf("KeyType(%d)", uint32(t))
	}
}

const (
	// PubKeySize is the payload size of a public key for every curve
	// family: a compressed curve point.
	PubKeySize = 33

	// SignatureSize is the payload size of a signature for every curve
	// family: a recovery header byte followed by the 32-byte R and S
	// components.
	SignatureSize = 65
)

// PublicKey is a variant-tagged compressed public key.
//
// Equality is tuple equality: two keys are equal only when both the
// key type and every payload byte match. It is never a semantic curve
// comparison.
type PublicKey interface {
	KeyType() KeyType
	Bytes() []byte
	Equals(other PublicKey) bool
}

// Signature is a variant-tagged recoverable signature.
type Signature interface {
	KeyType() KeyType
	Bytes() []byte
	Equals(other Signature) bool

	// Recover derives the public key that produced the signature over
	// digest. The returned key carries the same key type as the
	// signature. Recover fails with ErrMalformedSignature when the
	// payload is not a valid point/recovery-id encoding for the
	// signature's family; it never returns a garbage key.
	Recover(digest Checksum256) (PublicKey, error)
}
