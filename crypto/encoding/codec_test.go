package encoding_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldwide-asset-exchange/wax-cdt/crypto"
	"github.com/worldwide-asset-exchange/wax-cdt/crypto/encoding"
	"github.com/worldwide-asset-exchange/wax-cdt/crypto/secp256k1"
	"github.com/worldwide-asset-exchange/wax-cdt/crypto/secp256r1"
)

func TestPublicKeyRoundtrip(t *testing.T) {
	keys := []crypto.PublicKey{
		secp256k1.GenPrivKey().PubKey(),
		secp256r1.GenPrivKey().PubKey(),
	}
	for _, key := range keys {
		t.Run(key.KeyType().String(), func(t *testing.T) {
			bz, err := encoding.MarshalPublicKey(key)
			require.NoError(t, err)
			// One tag byte plus the fixed payload.
			require.Len(t, bz, crypto.PubKeySize+1)
			assert.Equal(t, byte(key.KeyType()), bz[0])

			decoded, err := encoding.UnmarshalPublicKey(bz)
			require.NoError(t, err)
			assert.True(t, decoded.Equals(key))
		})
	}
}

func TestSignatureRoundtrip(t *testing.T) {
	digest := crypto.Sha256([]byte("payload"))

	k1Sig, err := secp256k1.GenPrivKey().Sign(digest)
	require.NoError(t, err)
	r1Sig, err := secp256r1.GenPrivKey().Sign(digest)
	require.NoError(t, err)

	for _, sig := range []crypto.Signature{k1Sig, r1Sig} {
		t.Run(sig.KeyType().String(), func(t *testing.T) {
			bz, err := encoding.MarshalSignature(sig)
			require.NoError(t, err)
			require.Len(t, bz, crypto.SignatureSize+1)
			assert.Equal(t, byte(sig.KeyType()), bz[0])

			decoded, err := encoding.UnmarshalSignature(bz)
			require.NoError(t, err)
			assert.True(t, decoded.Equals(sig))
		})
	}
}

func TestUnmarshalUnknownTag(t *testing.T) {
	bz := append([]byte{0x07}, make([]byte, crypto.PubKeySize)...)
	_, err := encoding.UnmarshalPublicKey(bz)

	var unsupported crypto.ErrUnsupportedKeyType
	require.True(t, errors.As(err, &unsupported), "got %v", err)
	assert.Equal(t, crypto.KeyType(7), unsupported.Type)

	bz = append([]byte{0x07}, make([]byte, crypto.SignatureSize)...)
	_, err = encoding.UnmarshalSignature(bz)
	require.True(t, errors.As(err, &unsupported), "got %v", err)
}

func TestUnmarshalBadLength(t *testing.T) {
	var lenErr crypto.ErrInvalidKeyLen

	_, err := encoding.UnmarshalPublicKey([]byte{0x00, 0x01, 0x02})
	require.True(t, errors.As(err, &lenErr), "got %v", err)

	// Trailing garbage is rejected too: the buffer must hold exactly
	// one encoded value.
	bz := append([]byte{0x00}, make([]byte, crypto.PubKeySize+1)...)
	_, err = encoding.UnmarshalPublicKey(bz)
	require.True(t, errors.As(err, &lenErr), "got %v", err)

	_, err = encoding.UnmarshalSignature([]byte{0x01})
	require.True(t, errors.As(err, &lenErr), "got %v", err)

	_, err = encoding.UnmarshalPublicKey(nil)
	require.Error(t, err)
}

func TestUnmarshalNonCanonicalTag(t *testing.T) {
	// Tag 0 spelled over two bytes decodes to the same value as a bare
	// 0x00; only the one-byte spelling is accepted, so every key has
	// exactly one wire form.
	bz := append([]byte{0x80, 0x00}, make([]byte, crypto.PubKeySize)...)
	_, err := encoding.UnmarshalPublicKey(bz)

	var wireErr encoding.ErrInvalidWireFormat
	require.True(t, errors.As(err, &wireErr), "got %v", err)

	bz = append([]byte{0x80, 0x00}, make([]byte, crypto.SignatureSize)...)
	_, err = encoding.UnmarshalSignature(bz)
	require.True(t, errors.As(err, &wireErr), "got %v", err)
}

func TestTupleEqualityAcrossFamilies(t *testing.T) {
	// Same payload bytes under different tags are different keys.
	payload := secp256k1.GenPrivKey().PubKey().Bytes()

	k1, err := encoding.UnmarshalPublicKey(append([]byte{byte(crypto.KeyTypeK1)}, payload...))
	require.NoError(t, err)
	r1, err := encoding.UnmarshalPublicKey(append([]byte{byte(crypto.KeyTypeR1)}, payload...))
	require.NoError(t, err)

	assert.Equal(t, k1.Bytes(), r1.Bytes())
	assert.False(t, k1.Equals(r1))
	assert.False(t, r1.Equals(k1))
}
