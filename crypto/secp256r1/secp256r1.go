// Package secp256r1 implements the R1 key and signature family over
// the NIST P-256 curve, including public key recovery from compact
// recoverable signatures. The signature layout is identical to the K1
// family: one recovery header byte (27 + 4 + id, compressed form)
// followed by the 32-byte R and S values.
package secp256r1

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/worldwide-asset-exchange/wax-cdt/crypto"
)

// -------------------------------------
const (
	KeyType = crypto.KeyTypeR1

	PrivKeySize   = 32
	PubKeySize    = crypto.PubKeySize
	SignatureSize = crypto.SignatureSize

	// compactHeaderBase is the value of the recovery header byte for
	// recovery id 0. Only the compressed form is produced or accepted.
	compactHeaderBase = 27 + 4
)

var (
	_ crypto.PublicKey = PubKey{}
	_ crypto.Signature = Signature{}

	p256       = elliptic.P256()
	p256Params = p256.Params()
)

// PrivKey is a P-256 private key (the scalar, big-endian).
type PrivKey []byte

// GenPrivKey generates a new P-256 private key from OS randomness.
func GenPrivKey() PrivKey {
	key, err := ecdsa.GenerateKey(p256, rand.Reader)
	if err != nil {
		panic(err)
	}
	return key.D.FillBytes(make([]byte, PrivKeySize))
}

func (privKey PrivKey) Bytes() []byte {
	return []byte(privKey)
}

// PubKey derives the compressed public key for the private key.
func (privKey PrivKey) PubKey() PubKey {
	key, err := privKey.ecdsaKey()
	if err != nil {
		panic(err)
	}
	return PubKey(elliptic.MarshalCompressed(p256, key.X, key.Y))
}

// Sign produces a recoverable signature over a 256-bit digest. The
// recovery id is determined by recovering against each candidate and
// matching the signer's own public key.
func (privKey PrivKey) Sign(digest crypto.Checksum256) (Signature, error) {
	key, err := privKey.ecdsaKey()
	if err != nil {
		return nil, err
	}
	r, s, err := ecdsa.Sign(rand.Reader, key, digest.Bytes())
	if err != nil {
		return nil, err
	}

	sig := make(Signature, SignatureSize)
	r.FillBytes(sig[1:33])
	s.FillBytes(sig[33:65])

	want := elliptic.MarshalCompressed(p256, key.X, key.Y)
	for id := 0; id < 4; id++ {
		x, y, reason := recoverPoint(digest, r, s, id)
		if reason != "" {
			continue
		}
		if bytes.Equal(elliptic.MarshalCompressed(p256, x, y), want) {
			sig[0] = compactHeaderBase + byte(id)
			return sig, nil
		}
	}
	return nil, fmt.Errorf("secp256r1: no recovery id reproduces the signing key")
}

func (privKey PrivKey) ecdsaKey() (*ecdsa.PrivateKey, error) {
	if len(privKey) != PrivKeySize {
		return nil, fmt.Errorf("secp256r1: invalid private key length %d", len(privKey))
	}
	d := new(big.Int).SetBytes(privKey)
	if d.Sign() == 0 || d.Cmp(p256Params.N) >= 0 {
		return nil, fmt.Errorf("secp256r1: private key scalar out of range")
	}
	key := &ecdsa.PrivateKey{D: d}
	key.Curve = p256
	key.X, key.Y = p256.ScalarBaseMult(privKey)
	return key, nil
}

// -------------------------------------

// PubKey is a compressed P-256 public key.
type PubKey []byte

func (PubKey) KeyType() crypto.KeyType {
	return KeyType
}

func (pubKey PubKey) Bytes() []byte {
	return []byte(pubKey)
}

func (pubKey PubKey) String() string {
	return fmt.Sprintf("PubKeyR1{%X}", []byte(pubKey))
}

// Equals reports tuple equality: the other key must be an R1 key and
// match byte for byte.
func (pubKey PubKey) Equals(other crypto.PublicKey) bool {
	otherR1, ok := other.(PubKey)
	return ok && bytes.Equal(pubKey[:], otherR1[:])
}

// -------------------------------------

// Signature is a recoverable P-256 signature.
type Signature []byte

func (Signature) KeyType() crypto.KeyType {
	return KeyType
}

func (sig Signature) Bytes() []byte {
	return []byte(sig)
}

func (sig Signature) String() string {
	return fmt.Sprintf("SigR1{%X}", []byte(sig))
}

// Equals reports tuple equality, same rule as PubKey.Equals.
func (sig Signature) Equals(other crypto.Signature) bool {
	otherR1, ok := other.(Signature)
	return ok && bytes.Equal(sig[:], otherR1[:])
}

// Recover derives the public key that produced sig over digest.
func (sig Signature) Recover(digest crypto.Checksum256) (crypto.PublicKey, error) {
	if len(sig) != SignatureSize {
		return nil, crypto.ErrMalformedSignature{
			Type:   KeyType,
			Reason: fmt.Sprintf("got %d bytes, want %d", len(sig), SignatureSize),
		}
	}
	header := sig[0]
	if header < compactHeaderBase || header > compactHeaderBase+3 {
		return nil, crypto.ErrMalformedSignature{
			Type:   KeyType,
			Reason: fmt.Sprintf("invalid recovery header %d", header),
		}
	}
	r := new(big.Int).SetBytes(sig[1:33])
	s := new(big.Int).SetBytes(sig[33:65])
	x, y, reason := recoverPoint(digest, r, s, int(header-compactHeaderBase))
	if reason != "" {
		return nil, crypto.ErrMalformedSignature{Type: KeyType, Reason: reason}
	}
	return PubKey(elliptic.MarshalCompressed(p256, x, y)), nil
}

// recoverPoint computes the public key point for one recovery id
// candidate, per SEC 1 section 4.1.6: rebuild the ephemeral point R
// from its x coordinate, then Q = r⁻¹(u1·G + u2·R) with
// u1 = -e·r⁻¹ and u2 = s·r⁻¹ folded in. A non-empty reason string
// means the signature components cannot encode a point for this id.
func recoverPoint(digest crypto.Checksum256, r, s *big.Int, id int) (x, y *big.Int, reason string) {
	n := p256Params.N
	p := p256Params.P

	if r.Sign() <= 0 || r.Cmp(n) >= 0 {
		return nil, nil, "r component out of range"
	}
	if s.Sign() <= 0 || s.Cmp(n) >= 0 {
		return nil, nil, "s component out of range"
	}

	// Candidate x coordinate, shifted by the group order when the
	// recovery id says the original x overflowed it.
	rx := new(big.Int).Set(r)
	if id&2 != 0 {
		rx.Add(rx, n)
	}
	if rx.Cmp(p) >= 0 {
		return nil, nil, "x coordinate exceeds the field"
	}

	// y² = x³ - 3x + b over the field.
	ry2 := new(big.Int).Mul(rx, rx)
	ry2.Mul(ry2, rx)
	threeX := new(big.Int).Lsh(rx, 1)
	threeX.Add(threeX, rx)
	ry2.Sub(ry2, threeX)
	ry2.Add(ry2, p256Params.B)
	ry2.Mod(ry2, p)

	ry := new(big.Int).ModSqrt(ry2, p)
	if ry == nil {
		return nil, nil, "r component is not the x coordinate of a curve point"
	}
	if ry.Bit(0) != uint(id&1) {
		ry.Sub(p, ry)
	}

	e := new(big.Int).SetBytes(digest.Bytes())
	rInv := new(big.Int).ModInverse(r, n)
	u1 := new(big.Int).Mul(e, rInv)
	u1.Neg(u1)
	u1.Mod(u1, n)
	u2 := new(big.Int).Mul(s, rInv)
	u2.Mod(u2, n)

	gx, gy := p256.ScalarBaseMult(u1.Bytes())
	qx, qy := p256.ScalarMult(rx, ry, u2.Bytes())
	qx, qy = p256.Add(gx, gy, qx, qy)
	if qx.Sign() == 0 && qy.Sign() == 0 {
		return nil, nil, "recovered the point at infinity"
	}
	return qx, qy, ""
}
