// Package rsa verifies PKCS#1 v1.5 RSA signatures over SHA-256
// against raw public key material supplied as hex text.
//
// Unlike the assert family in crypto/chainapi this is a check, not an
// assertion: a structural problem with the inputs is reported as an
// error, a failed verification as false, and neither aborts the
// caller.
package rsa

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"

	"github.com/minio/sha256-simd"
)

// sha256Prefix is the DER DigestInfo prefix for SHA-256, per RFC 8017
// section 9.2 note 1.
var sha256Prefix = []byte{
	0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
	0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00, 0x04, 0x20,
}

// ErrInvalidHexEncoding describes a signature, exponent or modulus
// string that is not well-formed hex (odd length or non-hex
// characters), or an exponent with a leading zero byte.
type ErrInvalidHexEncoding struct {
	Field string
	Err   error
}

func (e ErrInvalidHexEncoding) Error() string {
	return fmt.Sprintf("rsa: invalid %s encoding: %v", e.Field, e.Err)
}

func (e ErrInvalidHexEncoding) Unwrap() error {
	return e.Err
}

// ErrInvalidModulusEncoding describes a modulus that decodes to hex
// but cannot name a valid positive integer: empty, or carrying a
// leading zero byte. A leading zero is rejected outright, never
// stripped.
type ErrInvalidModulusEncoding struct {
	Reason string
}

func (e ErrInvalidModulusEncoding) Error() string {
	return "rsa: invalid modulus encoding: " + e.Reason
}

// ErrInvalidSignatureEncoding describes a signature integer that
// cannot belong to the given modulus.
type ErrInvalidSignatureEncoding struct {
	Reason string
}

func (e ErrInvalidSignatureEncoding) Error() string {
	return "rsa: invalid signature encoding: " + e.Reason
}

// VerifySHA256 checks a PKCS#1 v1.5 signature over the SHA-256 of
// message. The signature, public exponent and modulus are big-endian
// hex strings (case-insensitive, two characters per byte). It returns
// true only when the recovered encoded message carries the exact
// padding structure and digest; any structural or value mismatch
// yields false.
//
// This is the canonical byte-length-based entry point; every other
// message representation funnels into it, so verification semantics
// never depend on how the message was supplied.
func VerifySHA256(message []byte, signature, exponent, modulus string) (bool, error) {
	sigBytes, err := decodeHex("signature", signature)
	if err != nil {
		return false, err
	}
	expBytes, err := decodeHex("exponent", exponent)
	if err != nil {
		return false, err
	}
	modBytes, err := decodeHex("modulus", modulus)
	if err != nil {
		return false, err
	}

	if len(modBytes) == 0 {
		return false, ErrInvalidModulusEncoding{Reason: "empty modulus"}
	}
	if modBytes[0] == 0 {
		return false, ErrInvalidModulusEncoding{Reason: "leading zero byte"}
	}
	if len(expBytes) == 0 || expBytes[0] == 0 {
		return false, ErrInvalidHexEncoding{Field: "exponent", Err: errors.New("empty or leading zero byte")}
	}

	n := new(big.Int).SetBytes(modBytes)
	e := new(big.Int).SetBytes(expBytes)
	s := new(big.Int).SetBytes(sigBytes)
	if s.Cmp(n) >= 0 {
		return false, ErrInvalidSignatureEncoding{Reason: "signature integer not below the modulus"}
	}

	// RSA public-key operation: em = s^e mod n, left-padded to the
	// modulus length.
	em := new(big.Int).Exp(s, e, n).FillBytes(make([]byte, len(modBytes)))

	digest := sha256.Sum256(message)
	return checkPKCS1v15SHA256(em, digest[:]), nil
}

// VerifySHA256String verifies a message supplied as a string. It
// funnels into VerifySHA256.
func VerifySHA256String(message, signature, exponent, modulus string) (bool, error) {
	return VerifySHA256([]byte(message), signature, exponent, modulus)
}

// checkPKCS1v15SHA256 compares em against the EMSA-PKCS1-v1_5
// encoding of digest:
//
//	EM = 0x00 || 0x01 || PS || 0x00 || DigestInfo || H
//
// where PS is at least eight 0xff bytes.
func checkPKCS1v15SHA256(em, digest []byte) bool {
	tLen := len(sha256Prefix) + len(digest)
	if len(em) < tLen+11 {
		return false
	}
	if em[0] != 0x00 || em[1] != 0x01 {
		return false
	}
	psLen := len(em) - tLen - 3
	for _, b := range em[2 : 2+psLen] {
		if b != 0xff {
			return false
		}
	}
	if em[2+psLen] != 0x00 {
		return false
	}
	rest := em[3+psLen:]
	if !bytes.Equal(rest[:len(sha256Prefix)], sha256Prefix) {
		return false
	}
	return bytes.Equal(rest[len(sha256Prefix):], digest)
}

func decodeHex(field, s string) ([]byte, error) {
	bz, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidHexEncoding{Field: field, Err: err}
	}
	return bz, nil
}
