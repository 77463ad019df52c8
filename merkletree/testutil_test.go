package merkletree

import (
	"fmt"
	"testing"

	"github.com/coniks-sys/coniks-merklelog/crypto/hasher"
	"github.com/coniks-sys/coniks-merklelog/crypto/hasher/sha256"
)

var testHasher = sha256.New()

func recordsOf(ss ...string) [][]byte {
	records := make([][]byte, len(ss))
	for i, s := range ss {
		records[i] = []byte(s)
	}
	return records
}

func generateRecords(n int) [][]byte {
	records := make([][]byte, n)
	for i := range records {
		records[i] = []byte(fmt.Sprintf("record-%d", i))
	}
	return records
}

func newTestTree(t *testing.T, records [][]byte) *MerkleTree {
	t.Helper()
	m, err := Build(testHasher, records)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

// truncatingHasher returns interior digests one byte short.
type truncatingHasher struct {
	hasher.TreeHasher
}

func (th truncatingHasher) HashInterior(left, right []byte) []byte {
	return th.TreeHasher.HashInterior(left, right)[1:]
}

// sizelessHasher reports a non-positive output size.
type sizelessHasher struct {
	hasher.TreeHasher
}

func (sizelessHasher) Size() int {
	return 0
}
