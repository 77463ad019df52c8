package merkletree

import (
	"bytes"
	"errors"
	"math/bits"
	"reflect"
	"sync"
	"testing"

	"github.com/coniks-sys/coniks-merklelog/crypto"
)

func TestBuildEmpty(t *testing.T) {
	if _, err := Build(testHasher, nil); !errors.Is(err, ErrInvalidInput) {
		t.Error("Expect ErrInvalidInput for nil records, got", err)
	}
	if m, err := Build(testHasher, [][]byte{}); !errors.Is(err, ErrInvalidInput) || m != nil {
		t.Error("Expect ErrInvalidInput and no tree for empty records, got", err)
	}
}

func TestBuildDigestFailure(t *testing.T) {
	if _, err := Build(nil, recordsOf("a")); !errors.Is(err, ErrDigestFailure) {
		t.Error("Expect ErrDigestFailure for a nil hasher, got", err)
	}
	if _, err := Build(sizelessHasher{testHasher}, recordsOf("a")); !errors.Is(err, ErrDigestFailure) {
		t.Error("Expect ErrDigestFailure for a sizeless hasher, got", err)
	}
	m, err := Build(truncatingHasher{testHasher}, recordsOf("a", "b"))
	if !errors.Is(err, ErrDigestFailure) || m != nil {
		t.Error("Expect ErrDigestFailure and no tree for short digests, got", err)
	}
	// a single record never reaches HashInterior
	if _, err := Build(truncatingHasher{testHasher}, recordsOf("a")); err != nil {
		t.Error("Unexpected error", err)
	}
}

func TestOneEntry(t *testing.T) {
	m := newTestTree(t, recordsOf("only"))

	expect := crypto.Digest([]byte("only"))
	if !bytes.Equal(m.Root(), expect) {
		t.Error("Wrong root hash!",
			"expected", expect,
			"get", m.Root())
	}
	if m.Height() != 0 || m.Len() != 1 {
		t.Fatal("Malformed tree", "height", m.Height(), "len", m.Len())
	}

	proof, err := m.Proof([]byte("only"))
	if err != nil {
		t.Fatal(err)
	}
	if len(proof) != 0 {
		t.Error("Expect an empty proof, got", proof)
	}
	if !Verify(testHasher, []byte("only"), proof, m.Root()) {
		t.Error("Proof of inclusion verification failed.")
	}
}

func TestThreeEntries(t *testing.T) {
	m := newTestTree(t, recordsOf("a", "b", "c"))

	a := crypto.Digest([]byte("a"))
	b := crypto.Digest([]byte("b"))
	c := crypto.Digest([]byte("c"))
	ab := crypto.Digest(a, b)
	cc := crypto.Digest(c, c) // c is paired with itself
	root := crypto.Digest(ab, cc)

	if !bytes.Equal(m.Root(), root) {
		t.Fatal("Wrong root hash!",
			"expected", root,
			"get", m.Root())
	}
	if m.RootHash() != crypto.EncodeDigest(root) {
		t.Error("Wrong hex root", m.RootHash())
	}
	if m.Height() != 2 {
		t.Error("Expect height 2, got", m.Height())
	}
	if n := m.levels[1][1]; n.left != 2 || n.right != 2 {
		t.Error("Expect the last leaf to be paired with itself, got", n.left, n.right)
	}

	proof, err := m.Proof([]byte("b"))
	if err != nil {
		t.Fatal(err)
	}
	want := Proof{
		{Sibling: a, Side: Left},
		{Sibling: cc, Side: Right},
	}
	if !reflect.DeepEqual(proof, want) {
		t.Fatalf("Proof mismatch %v / %v", proof, want)
	}
	if !Verify(testHasher, []byte("b"), proof, root) {
		t.Error("Proof of inclusion verification failed.")
	}

	proof, err = m.Proof([]byte("c"))
	if err != nil {
		t.Fatal(err)
	}
	want = Proof{
		{Sibling: c, Side: Right},
		{Sibling: ab, Side: Left},
	}
	if !reflect.DeepEqual(proof, want) {
		t.Fatalf("Proof mismatch %v / %v", proof, want)
	}
}

func TestLevelsAreIndexed(t *testing.T) {
	m := newTestTree(t, generateRecords(11))
	for depth, level := range m.levels {
		for i := range level {
			n := &level[i]
			if (depth == 0) != n.isLeaf() {
				t.Fatalf("Node %d at depth %d has the wrong kind", i, depth)
			}
			if depth == m.Height() {
				if n.parent != noIndex {
					t.Fatal("Root must not have a parent")
				}
				continue
			}
			parent := m.levels[depth+1][n.parent]
			if parent.left != i && parent.right != i {
				t.Fatalf("Node %d at depth %d is not a child of its parent", i, depth)
			}
			want := crypto.Digest(level[parent.left].digest, level[parent.right].digest)
			if !bytes.Equal(parent.digest, want) {
				t.Fatalf("Parent of node %d at depth %d has a wrong digest", i, depth)
			}
		}
	}
}

func TestHeight(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5, 7, 8, 9, 16, 17, 100, 1000} {
		m := newTestTree(t, generateRecords(n))
		if want := bits.Len(uint(n - 1)); m.Height() != want {
			t.Errorf("Height of %d leaves: got %d, want %d", n, m.Height(), want)
		}
	}
}

func TestLeafOrder(t *testing.T) {
	records := generateRecords(7)
	m := newTestTree(t, records)
	leaves := m.Leaves()
	if len(leaves) != len(records) {
		t.Fatal("Leaf count mismatch", len(leaves))
	}
	for i, l := range leaves {
		if l.Index != i || !bytes.Equal(l.Digest, crypto.Digest(records[i])) {
			t.Errorf("Leaf %d does not match record %d", l.Index, i)
		}
	}

	// returned digests are copies
	leaves[0].Digest[0] ^= 0xff
	l, err := m.Leaf(0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(l.Digest, crypto.Digest(records[0])) {
		t.Error("Tree was mutated through Leaves()")
	}
	root := m.Root()
	root[0] ^= 0xff
	if bytes.Equal(root, m.Root()) {
		t.Error("Tree was mutated through Root()")
	}

	if _, err := m.Leaf(7); !errors.Is(err, ErrIndexOutOfRange) {
		t.Error("Expect ErrIndexOutOfRange, got", err)
	}
}

func TestDeterminism(t *testing.T) {
	records := generateRecords(33)
	m1 := newTestTree(t, records)
	m2 := newTestTree(t, generateRecords(33))
	if !CompareRoots(m1.Root(), m2.Root()) {
		t.Error("Same records produced different roots")
	}
}

func TestOrderSensitivity(t *testing.T) {
	records := generateRecords(10)
	m1 := newTestTree(t, records)
	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			swapped := append([][]byte{}, records...)
			swapped[i], swapped[j] = swapped[j], swapped[i]
			m2 := newTestTree(t, swapped)
			if CompareRoots(m1.Root(), m2.Root()) {
				t.Errorf("Swapping records %d and %d did not change the root", i, j)
			}
		}
	}
}

func TestOddLeafDuplication(t *testing.T) {
	// repeating the last record of an odd set reproduces the same root
	m1 := newTestTree(t, recordsOf("a", "b", "c"))
	m2 := newTestTree(t, recordsOf("a", "b", "c", "c"))
	if !CompareRoots(m1.Root(), m2.Root()) {
		t.Error("Expect odd-leaf duplication to match the padded tree")
	}
}

func TestConcurrentProofs(t *testing.T) {
	records := generateRecords(257)
	m := newTestTree(t, records)
	root := m.Root()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := w; i < len(records); i += 8 {
				proof, err := m.Proof(records[i])
				if err != nil {
					t.Error(err)
					return
				}
				if !Verify(testHasher, records[i], proof, root) {
					t.Errorf("Proof of record %d failed", i)
				}
			}
		}(w)
	}
	wg.Wait()
}
