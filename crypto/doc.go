// Package crypto implements the typed checksum, public key and
// signature primitives of the WAX chain crypto API.
//
// Checksums are fixed-width, finalized digests:
//
//	Checksum160 // SHA-1 and RIPEMD-160
//	Checksum256 // SHA-256
//	Checksum512 // SHA-512
//
// Public keys and signatures are variant-tagged: a small integer key
// type selects the curve family, and every family shares one fixed
// payload size (33 bytes for a compressed public key, 65 bytes for a
// recoverable signature). The concrete implementations live in the
// per-curve packages:
//
//	crypto/secp256k1 // K1
//	crypto/secp256r1 // R1
//
// The tag-prefixed wire encoding is implemented by crypto/encoding,
// and the assertion/recovery surface bound to an execution context by
// crypto/chainapi.
package crypto
