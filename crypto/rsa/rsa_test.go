package rsa_test

import (
	stdcrypto "crypto"
	"crypto/rand"
	stdrsa "crypto/rsa"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldwide-asset-exchange/wax-cdt/crypto/rsa"
)

// signedVector produces a fresh RSA-2048 key pair and a PKCS#1 v1.5
// SHA-256 signature over message, hex-encoded the way the chain API
// consumes them.
func signedVector(t *testing.T, message []byte) (sigHex, expHex, modHex string) {
	t.Helper()

	key, err := stdrsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	digest := sha256.Sum256(message)
	sig, err := stdrsa.SignPKCS1v15(rand.Reader, key, stdcrypto.SHA256, digest[:])
	require.NoError(t, err)

	return hex.EncodeToString(sig),
		"010001", // F4, the exponent crypto/rsa generates
		hex.EncodeToString(key.N.Bytes())
}

func TestVerifyKnownGood(t *testing.T) {
	message := []byte("transaction body")
	sigHex, expHex, modHex := signedVector(t, message)

	ok, err := rsa.VerifySHA256(message, sigHex, expHex, modHex)
	require.NoError(t, err)
	assert.True(t, ok)

	// Uppercase hex is accepted too.
	ok, err = rsa.VerifySHA256(message, sigHex, expHex, hexUpper(modHex))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyStringFunnelsToCanonical(t *testing.T) {
	message := "transaction body"
	sigHex, expHex, modHex := signedVector(t, []byte(message))

	ok, err := rsa.VerifySHA256String(message, sigHex, expHex, modHex)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyTamperedInputs(t *testing.T) {
	message := []byte("transaction body")
	sigHex, expHex, modHex := signedVector(t, message)

	// Flipping the low hex digit of the signature must fail the check.
	flipped := []byte(sigHex)
	last := len(flipped) - 1
	if flipped[last] == '0' {
		flipped[last] = '1'
	} else {
		flipped[last] = '0'
	}
	ok, err := rsa.VerifySHA256(message, string(flipped), expHex, modHex)
	require.NoError(t, err)
	assert.False(t, ok)

	// A different message fails too.
	ok, err = rsa.VerifySHA256([]byte("another body"), sigHex, expHex, modHex)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyLeadingZeroModulus(t *testing.T) {
	message := []byte("transaction body")
	sigHex, expHex, modHex := signedVector(t, message)

	// A leading zero byte is rejected outright, not stripped.
	ok, err := rsa.VerifySHA256(message, sigHex, expHex, "00"+modHex)
	assert.False(t, ok)

	var modErr rsa.ErrInvalidModulusEncoding
	require.True(t, errors.As(err, &modErr), "got %v", err)
}

func TestVerifyStructuralErrors(t *testing.T) {
	message := []byte("transaction body")
	sigHex, expHex, modHex := signedVector(t, message)

	var hexErr rsa.ErrInvalidHexEncoding

	// Odd-length hex.
	_, err := rsa.VerifySHA256(message, sigHex[:len(sigHex)-1], expHex, modHex)
	require.True(t, errors.As(err, &hexErr), "got %v", err)
	assert.Equal(t, "signature", hexErr.Field)

	// Non-hex characters.
	_, err = rsa.VerifySHA256(message, sigHex, "zz", modHex)
	require.True(t, errors.As(err, &hexErr), "got %v", err)

	// Empty modulus.
	_, err = rsa.VerifySHA256(message, sigHex, expHex, "")
	var modErr rsa.ErrInvalidModulusEncoding
	require.True(t, errors.As(err, &modErr), "got %v", err)

	// Exponent with a leading zero byte.
	_, err = rsa.VerifySHA256(message, sigHex, "00010001", modHex)
	require.True(t, errors.As(err, &hexErr), "got %v", err)

	// Signature integer not below the modulus.
	var sigErr rsa.ErrInvalidSignatureEncoding
	_, err = rsa.VerifySHA256(message, modHex+modHex, expHex, modHex)
	require.True(t, errors.As(err, &sigErr), "got %v", err)
}

func hexUpper(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'a' && c <= 'f' {
			out[i] = c - 'a' + 'A'
		}
	}
	return string(out)
}
