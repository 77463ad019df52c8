// Package sha256 registers the default SHA-256 tree hasher.
package sha256

import (
	"github.com/coniks-sys/coniks-merklelog/crypto"
	"github.com/coniks-sys/coniks-merklelog/crypto/hasher"
)

func init() {
	hasher.RegisterHasher(SHA256, New)
}

// SHA256 is the identity of the default hashing strategy.
const SHA256 = crypto.DefaultHashID

type sha256Hasher struct{}

// New returns an instance of the SHA-256 hasher.
func New() hasher.TreeHasher {
	return sha256Hasher{}
}

func (sha256Hasher) ID() string {
	return SHA256
}

func (sha256Hasher) Size() int {
	return crypto.DefaultHashSizeByte
}

func (sha256Hasher) Secure() bool {
	return true
}

func (sha256Hasher) Digest(ms ...[]byte) []byte {
	return crypto.Digest(ms...)
}

func (sha256Hasher) HashLeaf(data []byte) []byte {
	return crypto.Digest(data)
}

func (sha256Hasher) HashInterior(left, right []byte) []byte {
	return crypto.Digest(left, right)
}
