package crypto

import (
	"crypto/sha1" //nolint:gosec // digest algorithm mandated by the chain API
	"crypto/sha512"

	"github.com/minio/sha256-simd"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // ditto
)

// Sha256 returns the SHA-256 of data. Pure and total: every byte
// sequence, including the empty one, is valid input.
func Sha256(data []byte) Checksum256 {
	return Checksum256(sha256.Sum256(data))
}

// Sha1 returns the SHA-1 of data.
func Sha1(data []byte) Checksum160 {
	return Checksum160(sha1.Sum(data))
}

// Sha512 returns the SHA-512 of data.
func Sha512(data []byte) Checksum512 {
	return Checksum512(sha512.Sum512(data))
}

// Ripemd160 returns the RIPEMD-160 of data.
func Ripemd160(data []byte) Checksum160 {
	hasher := ripemd160.New()
	hasher.Write(data)

	var h Checksum160
	copy(h[:], hasher.Sum(nil))
	return h
}
