// Package insecure registers fast, non-cryptographic tree hashers.
//
// These hashers are performance stand-ins only. A Merkle tree built with
// any of them detects accidental corruption at best: an adversary can
// forge records, proofs and roots. They report Secure() == false, so
// hasher.SecureHasher refuses them.
package insecure

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/coniks-sys/coniks-merklelog/crypto/hasher"
)

func init() {
	hasher.RegisterHasher(XXH64, NewXXH64)
	hasher.RegisterHasher(Rolling31, NewRolling31)
}

const (
	// XXH64 is the identity of the xxHash64 strategy.
	XXH64 = "XXH64"
	// Rolling31 is the identity of the polynomial rolling hash
	// with base 31 modulo 1e9+9.
	Rolling31 = "ROLLING31"

	// HashSizeByte is the output size of both strategies.
	HashSizeByte = 8

	rollingBase    = 31
	rollingModulus = 1_000_000_009
)

type xxh64Hasher struct{}

// NewXXH64 returns an instance of the xxHash64 hasher.
func NewXXH64() hasher.TreeHasher {
	return xxh64Hasher{}
}

func (xxh64Hasher) ID() string { return XXH64 }
func (xxh64Hasher) Size() int { return HashSizeByte }
func (xxh64Hasher) Secure() bool { return false }

func (xxh64Hasher) Digest(ms ...[]byte) []byte {
	d := xxhash.New()
	for _, m := range ms {
		d.Write(m)
	}
	return d.Sum(nil)
}

func (xh xxh64Hasher) HashLeaf(data []byte) []byte {
	return binary.BigEndian.AppendUint64(nil, xxhash.Sum64(data))
}

func (xh xxh64Hasher) HashInterior(left, right []byte) []byte {
	return xh.Digest(left, right)
}

type rollingHasher struct{}

// NewRolling31 returns an instance of the polynomial rolling hasher.
func NewRolling31() hasher.TreeHasher {
	return rollingHasher{}
}

func (rollingHasher) ID() string { return Rolling31 }
func (rollingHasher) Size() int { return HashSizeByte }
func (rollingHasher) Secure() bool { return false }

// Digest computes sum(b_i * 31^(n-1-i)) mod 1e9+9 over the
// concatenated input bytes, as a big-endian uint64.
func (rollingHasher) Digest(ms ...[]byte) []byte {
	var h uint64
	for _, m := range ms {
		for _, b := range m {
			h = (h*rollingBase + uint64(b)) % rollingModulus
		}
	}
	return binary.BigEndian.AppendUint64(nil, h)
}

func (rh rollingHasher) HashLeaf(data []byte) []byte {
	return rh.Digest(data)
}

func (rh rollingHasher) HashInterior(left, right []byte) []byte {
	return rh.Digest(left, right)
}
