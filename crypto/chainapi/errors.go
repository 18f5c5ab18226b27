package chainapi

import (
	"errors"
	"fmt"

	"github.com/worldwide-asset-exchange/wax-cdt/crypto"
)

// AbortError marks a failed assertion. The caller owning the current
// unit of work is required to stop it immediately and propagate the
// error; an AbortError is never recoverable within the operation that
// produced it. The wrapped reason is an ErrDigestMismatch or
// ErrKeyMismatch.
type AbortError struct {
	Reason error
}

func (e *AbortError) Error() string {
	return fmt.Sprintf("chainapi: operation aborted: %v", e.Reason)
}

func (e *AbortError) Unwrap() error {
	return e.Reason
}

// IsAbort reports whether err is (or wraps) an AbortError.
func IsAbort(err error) bool {
	var abort *AbortError
	return errors.As(err, &abort)
}

// ErrDigestMismatch describes a recomputed digest that differs from
// the expected one.
type ErrDigestMismatch struct {
	Algo      string
	Want, Got []byte
}

func (e ErrDigestMismatch) Error() string {
	return fmt.Sprintf("chainapi: %s digest mismatch, want %X, got %X", e.Algo, e.Want, e.Got)
}

// ErrKeyMismatch describes a recovered public key that differs from
// the expected one under tuple equality.
type ErrKeyMismatch struct {
	Want, Got crypto.PublicKey
}

func (e ErrKeyMismatch) Error() string {
	return fmt.Sprintf("chainapi: recovered key mismatch, want %s{%X}, got %s{%X}",
		e.Want.KeyType(), e.Want.Bytes(), e.Got.KeyType(), e.Got.Bytes())
}
