package crypto

import (
	"encoding/hex"
	"fmt"
)

const (
	Checksum160Size = 20
	Checksum256Size = 32
	Checksum512Size = 64
)

// Checksum160 is a finalized 160-bit digest (SHA-1 or RIPEMD-160).
// Checksums compare byte-wise with ==.
type Checksum160 [Checksum160Size]byte

// Checksum256 is a finalized 256-bit digest (SHA-256).
type Checksum256 [Checksum256Size]byte

// Checksum512 is a finalized 512-bit digest (SHA-512).
type Checksum512 [Checksum512Size]byte

func (h Checksum160) Bytes() []byte { return h[:] }
func (h Checksum256) Bytes() []byte { return h[:] }
func (h Checksum512) Bytes() []byte { return h[:] }

func (h Checksum160) String() string { return fmt.Sprintf("Checksum160{%X}", h[:]) }
func (h Checksum256) String() string { return fmt.Sprintf("Checksum256{%X}", h[:]) }
func (h Checksum512) String() string { return fmt.Sprintf("Checksum512{%X}", h[:]) }

// Checksum160FromBytes copies bz into a Checksum160. The length must
// match exactly; it is fixed by the algorithm, never by the caller.
func Checksum160FromBytes(bz []byte) (Checksum160, error) {
	var h Checksum160
	if len(bz) != Checksum160Size {
		return h, ErrInvalidChecksumLen{Got: len(bz), Want: Checksum160Size}
	}
	copy(h[:], bz)
	return h, nil
}

// Checksum256FromBytes copies bz into a Checksum256.
func Checksum256FromBytes(bz []byte) (Checksum256, error) {
	var h Checksum256
	if len(bz) != Checksum256Size {
		return h, ErrInvalidChecksumLen{Got: len(bz), Want: Checksum256Size}
	}
	copy(h[:], bz)
	return h, nil
}

// Checksum512FromBytes copies bz into a Checksum512.
func Checksum512FromBytes(bz []byte) (Checksum512, error) {
	var h Checksum512
	if len(bz) != Checksum512Size {
		return h, ErrInvalidChecksumLen{Got: len(bz), Want: Checksum512Size}
	}
	copy(h[:], bz)
	return h, nil
}

// Checksum256FromHex decodes a 64-character hex string into a
// Checksum256.
func Checksum256FromHex(s string) (Checksum256, error) {
	bz, err := hex.DecodeString(s)
	if err != nil {
		return Checksum256{}, fmt.Errorf("crypto: invalid checksum hex: %w", err)
	}
	return Checksum256FromBytes(bz)
}
