// Package blake3 registers a BLAKE3 tree hasher with 256-bit output.
package blake3

import (
	"github.com/coniks-sys/coniks-merklelog/crypto/hasher"
	"lukechampine.com/blake3"
)

func init() {
	hasher.RegisterHasher(BLAKE3, New)
}

const (
	// BLAKE3 is the identity of the BLAKE3 hashing strategy.
	BLAKE3 = "BLAKE3"

	// HashSizeByte is the size of the hash output in bytes.
	HashSizeByte = 32
)

type blake3Hasher struct{}

// New returns an instance of the BLAKE3 hasher.
func New() hasher.TreeHasher {
	return blake3Hasher{}
}

func (blake3Hasher) ID() string {
	return BLAKE3
}

func (blake3Hasher) Size() int {
	return HashSizeByte
}

func (blake3Hasher) Secure() bool {
	return true
}

func (blake3Hasher) Digest(ms ...[]byte) []byte {
	h := blake3.New(HashSizeByte, nil)
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}

func (bh blake3Hasher) HashLeaf(data []byte) []byte {
	sum := blake3.Sum256(data)
	return sum[:]
}

func (bh blake3Hasher) HashInterior(left, right []byte) []byte {
	return bh.Digest(left, right)
}
