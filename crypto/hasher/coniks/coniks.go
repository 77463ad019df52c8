package coniks

import (
	"github.com/coniks-sys/coniks-merklelog/crypto/hasher"
	"golang.org/x/crypto/sha3"
)

func init() {
	hasher.RegisterHasher(SHAKE128, New)
}

const (
	// SHAKE128 is the identity of the hashing strategy used by the
	// CONIKS tree, SHAKE128 read out to HashSizeByte bytes.
	SHAKE128 = "SHAKE128"

	// HashSizeByte is the output length read from the sponge.
	HashSizeByte = 32
)

type coniksHasher struct{}

// New returns an instance of the SHAKE128 hasher.
func New() hasher.TreeHasher {
	return coniksHasher{}
}

func (coniksHasher) Digest(ms ...[]byte) []byte {
	h := sha3.NewShake128()
	for _, m := range ms {
		h.Write(m)
	}
	ret := make([]byte, HashSizeByte)
	h.Read(ret)
	return ret
}

func (coniksHasher) ID() string {
	return SHAKE128
}

func (coniksHasher) Size() int {
	return HashSizeByte
}

func (coniksHasher) Secure() bool {
	return true
}

func (ch coniksHasher) HashLeaf(data []byte) []byte {
	return ch.Digest(data)
}

func (ch coniksHasher) HashInterior(left, right []byte) []byte {
	return ch.Digest(left, right)
}
