package crypto

import "fmt"

// ErrUnsupportedKeyType describes the use of a public key or
// signature whose variant tag names no known curve family. It is a
// hard failure: an unknown tag is never silently accepted.
type ErrUnsupportedKeyType struct {
	Type KeyType
}

func (e ErrUnsupportedKeyType) Error() string {
	return fmt.Sprintf("crypto: unsupported key type %s", e.Type)
}

// ErrInvalidKeyLen describes a public key or signature payload whose
// length does not match the fixed size shared by every curve family.
type ErrInvalidKeyLen struct {
	Kind      string
	Got, Want int
}

func (e ErrInvalidKeyLen) Error() string {
	return fmt.Sprintf("crypto: invalid %s length, got %d, want %d", e.Kind, e.Got, e.Want)
}

// ErrInvalidChecksumLen describes a checksum constructed from a byte
// slice of the wrong length.
type ErrInvalidChecksumLen struct {
	Got, Want int
}

func (e ErrInvalidChecksumLen) Error() string {
	return fmt.Sprintf("crypto: invalid checksum length, got %d, want %d", e.Got, e.Want)
}

// ErrMalformedSignature describes a signature whose payload is not a
// valid point/recovery-id encoding for its declared curve family.
type ErrMalformedSignature struct {
	Type   KeyType
	Reason string
}

func (e ErrMalformedSignature) Error() string {
	return fmt.Sprintf("crypto: malformed %s signature: %s", e.Type, e.Reason)
}
