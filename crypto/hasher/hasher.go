// Package hasher provides the pluggable digest strategies used to build
// and verify Merkle trees.
//
// A strategy is registered under a string identifier, usually from the
// init function of its package, and looked up by that identifier:
//
//	import _ "github.com/coniks-sys/coniks-merklelog/crypto/hasher/sha256"
//
//	h, err := hasher.SecureHasher("SHA-256")
//
// Only strategies reporting Secure() == true give tamper-evidence.
// The insecure ones exist as fast stand-ins for benchmarking and must be
// requested explicitly through Hasher.
package hasher

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownHasher indicates that no hasher is registered
	// under the requested identifier.
	ErrUnknownHasher = errors.New("[hasher] Unknown hasher")
	// ErrInsecureHasher indicates that a non-cryptographic hasher
	// was requested where a secure one is required.
	ErrInsecureHasher = errors.New("[hasher] Insecure hasher")
)

// TreeHasher provides hash functions for the Merkle tree implementation.
type TreeHasher interface {
	// ID returns the name of the hash strategy.
	ID() string
	// Size returns the size of the hash output in bytes.
	Size() int
	// Secure reports whether the underlying function is preimage- and
	// collision-resistant. Proofs produced with an insecure hasher
	// carry no integrity guarantee.
	Secure() bool
	// Digest hashes the concatenation of all passed byte slices.
	// The passed slices won't be mutated.
	Digest(ms ...[]byte) []byte

	// HashLeaf computes the hash of a record as: H(data)
	HashLeaf(data []byte) []byte
	// HashInterior computes the hash of an interior node as: H(left || right)
	HashInterior(left, right []byte) []byte
}

var hashers = make(map[string]TreeHasher)

// RegisterHasher registers a hasher for use.
// It panics if h is already registered.
func RegisterHasher(h string, f func() TreeHasher) {
	if _, ok := hashers[h]; ok {
		panic(fmt.Sprintf("RegisterHasher(%v) is already registered", h))
	}
	hashers[h] = f()
}

// Hasher returns the TreeHasher registered as h,
// whether it is secure or not.
func Hasher(h string) (TreeHasher, error) {
	if f, ok := hashers[h]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, h)
}

// SecureHasher returns the TreeHasher registered as h.
// It returns ErrInsecureHasher if that hasher is not cryptographically
// strong.
func SecureHasher(h string) (TreeHasher, error) {
	f, err := Hasher(h)
	if err != nil {
		return nil, err
	}
	if !f.Secure() {
		return nil, fmt.Errorf("%w: %q", ErrInsecureHasher, h)
	}
	return f, nil
}

// Registered returns the identifiers of all registered hashers,
// sorted alphabetically.
func Registered() []string {
	ids := make([]string, 0, len(hashers))
	for id := range hashers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
