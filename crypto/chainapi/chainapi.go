// Package chainapi exposes the chain crypto intrinsics: digest
// computation and assertion, public key recovery, and recovery
// assertion.
//
// Operations come in two families. The compute family (Sha256,
// RecoverKey, ...) returns a value or an explicit input error. The
// assert family (AssertSha256, AssertRecoverKey, ...) recomputes or
// recovers, compares against a caller-supplied expected value, and on
// mismatch fails with an *AbortError: the unit of work that received
// it must stop immediately and must not commit any of its effects.
package chainapi

import (
	"github.com/worldwide-asset-exchange/wax-cdt/crypto"
)

// API is the crypto API surface bound to one execution context
// configuration. It holds no cross-call state; every method is a pure
// function of its arguments, so values may be shared across
// goroutines freely.
type API struct {
	backend  Backend
	fastEval bool
	onAbort  func(error)
}

// Option configures an API at construction.
type Option func(*API)

// WithBackend substitutes the trusted primitive provider. The default
// is the native provider backed by the crypto packages of this module.
func WithBackend(b Backend) Option {
	return func(api *API) { api.backend = b }
}

// WithFastEval elides the cryptographic work of the assert family:
// digest asserts and key-recovery asserts succeed without recomputing
// or recovering. Format and length validation still applies, an
// unsupported signature variant still fails. Enabling it trades away
// the verification guarantees of the assert family and is only sound
// when the enclosing environment has already validated the data, e.g.
// when replaying operations known to be good.
func WithFastEval() Option {
	return func(api *API) { api.fastEval = true }
}

// WithAbortHandler installs a hook invoked with the *AbortError before
// an assert-family failure is returned. It models the host
// environment's abort_with entry point.
func WithAbortHandler(fn func(error)) Option {
	return func(api *API) { api.onAbort = fn }
}

// New constructs an API.
func New(opts ...Option) *API {
	api := &API{backend: NativeBackend{}}
	for _, opt := range opts {
		opt(api)
	}
	return api
}

func (api *API) abort(reason error) error {
	err := &AbortError{Reason: reason}
	if api.onAbort != nil {
		api.onAbort(err)
	}
	return err
}

// Sha256 returns the SHA-256 of data.
func (api *API) Sha256(data []byte) crypto.Checksum256 { return api.backend.Sha256(data) }

// Sha1 returns the SHA-1 of data.
func (api *API) Sha1(data []byte) crypto.Checksum160 { return api.backend.Sha1(data) }

// Sha512 returns the SHA-512 of data.
func (api *API) Sha512(data []byte) crypto.Checksum512 { return api.backend.Sha512(data) }

// Ripemd160 returns the RIPEMD-160 of data.
func (api *API) Ripemd160(data []byte) crypto.Checksum160 { return api.backend.Ripemd160(data) }

// AssertSha256 recomputes the SHA-256 of data and aborts with
// ErrDigestMismatch if it differs from expected.
func (api *API) AssertSha256(data []byte, expected crypto.Checksum256) error {
	if api.fastEval {
		return nil
	}
	if got := api.backend.Sha256(data); got != expected {
		return api.abort(ErrDigestMismatch{Algo: "sha256", Want: expected.Bytes(), Got: got.Bytes()})
	}
	return nil
}

// AssertSha1 recomputes the SHA-1 of data and aborts with
// ErrDigestMismatch if it differs from expected.
func (api *API) AssertSha1(data []byte, expected crypto.Checksum160) error {
	if api.fastEval {
		return nil
	}
	if got := api.backend.Sha1(data); got != expected {
		return api.abort(ErrDigestMismatch{Algo: "sha1", Want: expected.Bytes(), Got: got.Bytes()})
	}
	return nil
}

// AssertSha512 recomputes the SHA-512 of data and aborts with
// ErrDigestMismatch if it differs from expected.
func (api *API) AssertSha512(data []byte, expected crypto.Checksum512) error {
	if api.fastEval {
		return nil
	}
	if got := api.backend.Sha512(data); got != expected {
		return api.abort(ErrDigestMismatch{Algo: "sha512", Want: expected.Bytes(), Got: got.Bytes()})
	}
	return nil
}

// AssertRipemd160 recomputes the RIPEMD-160 of data and aborts with
// ErrDigestMismatch if it differs from expected.
func (api *API) AssertRipemd160(data []byte, expected crypto.Checksum160) error {
	if api.fastEval {
		return nil
	}
	if got := api.backend.Ripemd160(data); got != expected {
		return api.abort(ErrDigestMismatch{Algo: "ripemd160", Want: expected.Bytes(), Got: got.Bytes()})
	}
	return nil
}

// RecoverKey derives the public key that produced sig over digest.
// The returned key carries the same key type as the signature.
// Malformed or unsupported input is an explicit error, never a garbage
// key and never an abort.
func (api *API) RecoverKey(digest crypto.Checksum256, sig crypto.Signature) (crypto.PublicKey, error) {
	return api.backend.RecoverKey(digest, sig)
}

// AssertRecoverKey recovers the signer of sig over digest and aborts
// with ErrKeyMismatch unless the result equals expected under tuple
// equality (key type and payload bytes both match). Input errors from
// recovery pass through unchanged.
func (api *API) AssertRecoverKey(digest crypto.Checksum256, sig crypto.Signature, expected crypto.PublicKey) error {
	if api.fastEval {
		if !api.backend.SupportsKeyType(sig.KeyType()) {
			return crypto.ErrUnsupportedKeyType{Type: sig.KeyType()}
		}
		return nil
	}
	recovered, err := api.RecoverKey(digest, sig)
	if err != nil {
		return err
	}
	if !recovered.Equals(expected) {
		return api.abort(ErrKeyMismatch{Want: expected, Got: recovered})
	}
	return nil
}
