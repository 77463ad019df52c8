package merkletree

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/coniks-sys/coniks-merklelog/crypto"
	"github.com/coniks-sys/coniks-merklelog/crypto/hasher"
)

var (
	// ErrInvalidInput indicates an attempt to build a tree
	// from an empty or nil record sequence.
	ErrInvalidInput = errors.New("[merkletree] Empty record sequence")
	// ErrNotFound indicates that no leaf matches the requested record.
	ErrNotFound = errors.New("[merkletree] Record not found")
	// ErrIndexOutOfRange indicates a leaf index outside of the tree.
	ErrIndexOutOfRange = errors.New("[merkletree] Leaf index out of range")
	// ErrDigestFailure indicates a missing or misbehaving hasher.
	ErrDigestFailure = errors.New("[merkletree] Digest failure")
)

// MerkleTree represents an immutable binary Merkle tree built from an
// ordered record sequence. levels[0] holds the leaves and the last level
// holds only the root.
//
// A MerkleTree is safe for concurrent use by multiple goroutines as long
// as its hasher is.
type MerkleTree struct {
	hasher hasher.TreeHasher
	levels [][]node
}

// Build hashes every record into a leaf and combines the leaves pairwise,
// level by level, up to a single root. The last node of a level with an
// odd node count is paired with itself.
//
// Build returns ErrInvalidInput if records is empty, and ErrDigestFailure
// if h is nil or produces digests of the wrong width.
func Build(h hasher.TreeHasher, records [][]byte) (*MerkleTree, error) {
	if err := checkHasher(h); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrInvalidInput
	}

	leaves := make([]node, len(records))
	for i, r := range records {
		d := h.HashLeaf(r)
		if err := checkWidth(h, d); err != nil {
			return nil, err
		}
		leaves[i] = newLeafNode(d)
	}

	m := &MerkleTree{
		hasher: h,
		levels: [][]node{leaves},
	}
	for level := leaves; len(level) > 1; {
		parents := make([]node, 0, (len(level)+1)/2)
		for left := 0; left < len(level); left += 2 {
			right := left + 1
			if right == len(level) {
				right = left
			}
			d := h.HashInterior(level[left].digest, level[right].digest)
			if err := checkWidth(h, d); err != nil {
				return nil, err
			}
			level[left].parent = len(parents)
			level[right].parent = len(parents)
			parents = append(parents, newInteriorNode(d, left, right))
		}
		m.levels = append(m.levels, parents)
		level = parents
	}
	return m, nil
}

func checkHasher(h hasher.TreeHasher) error {
	if h == nil {
		return fmt.Errorf("%w: no hasher configured", ErrDigestFailure)
	}
	if h.Size() <= 0 {
		return fmt.Errorf("%w: %s reports size %d", ErrDigestFailure, h.ID(), h.Size())
	}
	return nil
}

func checkWidth(h hasher.TreeHasher, d []byte) error {
	if len(d) != h.Size() {
		return fmt.Errorf("%w: %s returned %d bytes, want %d",
			ErrDigestFailure, h.ID(), len(d), h.Size())
	}
	return nil
}

// Hasher returns the hasher the tree was built with.
func (m *MerkleTree) Hasher() hasher.TreeHasher {
	return m.hasher
}

// Root returns a copy of the root digest.
func (m *MerkleTree) Root() []byte {
	return append([]byte{}, m.root().digest...)
}

// RootHash returns the root digest as lowercase hex.
func (m *MerkleTree) RootHash() string {
	return crypto.EncodeDigest(m.root().digest)
}

func (m *MerkleTree) root() *node {
	return &m.levels[len(m.levels)-1][0]
}

// Len returns the number of leaves.
func (m *MerkleTree) Len() int {
	return len(m.levels[0])
}

// Height returns the number of levels above the leaves,
// which is ceil(log2(Len())).
func (m *MerkleTree) Height() int {
	return len(m.levels) - 1
}

// Leaves returns the leaves in input order.
// The returned digests are copies.
func (m *MerkleTree) Leaves() []LeafNode {
	leaves := make([]LeafNode, len(m.levels[0]))
	for i, n := range m.levels[0] {
		leaves[i] = LeafNode{
			Digest: append([]byte{}, n.digest...),
			Index:  i,
		}
	}
	return leaves
}

// Leaf returns the leaf at the given index.
func (m *MerkleTree) Leaf(index int) (LeafNode, error) {
	if err := m.checkIndex(index); err != nil {
		return LeafNode{}, err
	}
	return LeafNode{
		Digest: append([]byte{}, m.levels[0][index].digest...),
		Index:  index,
	}, nil
}

// IndexOf returns the index of the first leaf whose digest matches
// the digest of record, or ErrNotFound.
func (m *MerkleTree) IndexOf(record []byte) (int, error) {
	target := m.hasher.HashLeaf(record)
	for i := range m.levels[0] {
		if bytes.Equal(m.levels[0][i].digest, target) {
			return i, nil
		}
	}
	return noIndex, ErrNotFound
}

func (m *MerkleTree) checkIndex(index int) error {
	if index < 0 || index >= m.Len() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, m.Len())
	}
	return nil
}

// CompareRoots reports whether two roots are equal. Rebuilding a tree
// from a candidate record set and comparing its root against a trusted
// one is how tampering of the whole set is detected; a single proof only
// shows membership of one record.
func CompareRoots(a, b []byte) bool {
	return crypto.Equal(a, b)
}

// DetectTampering rebuilds a tree from candidate with h and reports
// whether its root differs from originalRoot. An empty candidate set
// counts as tampered, since a root always commits to at least one record.
func DetectTampering(h hasher.TreeHasher, originalRoot []byte, candidate [][]byte) (bool, error) {
	m, err := Build(h, candidate)
	switch {
	case errors.Is(err, ErrInvalidInput):
		return true, nil
	case err != nil:
		return false, err
	}
	return !CompareRoots(originalRoot, m.root().digest), nil
}
