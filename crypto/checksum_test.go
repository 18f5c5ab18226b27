package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worldwide-asset-exchange/wax-cdt/crypto"
)

func TestChecksumFromBytes(t *testing.T) {
	bz := bytes.Repeat([]byte{0xab}, crypto.Checksum256Size)
	h, err := crypto.Checksum256FromBytes(bz)
	require.NoError(t, err)
	assert.Equal(t, bz, h.Bytes())

	_, err = crypto.Checksum256FromBytes(bz[:31])
	var lenErr crypto.ErrInvalidChecksumLen
	require.True(t, errors.As(err, &lenErr))
	assert.Equal(t, 31, lenErr.Got)
	assert.Equal(t, crypto.Checksum256Size, lenErr.Want)

	_, err = crypto.Checksum160FromBytes(bz)
	require.Error(t, err)

	_, err = crypto.Checksum512FromBytes(bz)
	require.Error(t, err)
}

func TestChecksum256FromHex(t *testing.T) {
	const s = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	h, err := crypto.Checksum256FromHex(s)
	require.NoError(t, err)
	assert.Equal(t, crypto.Sha256(nil), h)

	// Case-insensitive.
	h2, err := crypto.Checksum256FromHex("E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855")
	require.NoError(t, err)
	assert.Equal(t, h, h2)

	_, err = crypto.Checksum256FromHex(s[:63])
	require.Error(t, err)

	_, err = crypto.Checksum256FromHex("zz" + s[2:])
	require.Error(t, err)
}

func TestChecksumString(t *testing.T) {
	assert.Equal(t,
		"Checksum256{E3B0C44298FC1C149AFBF4C8996FB92427AE41E4649B934CA495991B7852B855}",
		crypto.Sha256(nil).String())
}
