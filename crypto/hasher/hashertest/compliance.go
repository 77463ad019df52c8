// Package hashertest contains a compliance suite that every
// hasher.TreeHasher implementation runs from its own tests.
package hashertest

import (
	"sync"
	"testing"

	"github.com/coniks-sys/coniks-merklelog/crypto/hasher"
	"github.com/stretchr/testify/require"
)

// HasherFactory returns a fresh instance of the hasher under test.
type HasherFactory func() hasher.TreeHasher

// TestHasherCompliance checks the properties the Merkle tree relies on.
func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("size is positive", func(t *testing.T) {
		t.Parallel()

		require.Positive(t, f().Size())
	})

	t.Run("leaf is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()
		require.Equal(t, h.HashLeaf([]byte("deterministic_data")), h.HashLeaf([]byte("deterministic_data")))
		require.Equal(t, h.HashLeaf([]byte("deterministic_data")), f().HashLeaf([]byte("deterministic_data")))
	})

	t.Run("outputs have fixed width", func(t *testing.T) {
		t.Parallel()

		h := f()
		for _, in := range [][]byte{nil, {}, []byte("a"), make([]byte, 4096)} {
			require.Len(t, h.HashLeaf(in), h.Size())
			require.Len(t, h.Digest(in, in), h.Size())
		}
		l := h.HashLeaf([]byte("left"))
		r := h.HashLeaf([]byte("right"))
		require.Len(t, h.HashInterior(l, r), h.Size())
	})

	t.Run("digest hashes the concatenation", func(t *testing.T) {
		t.Parallel()

		h := f()
		require.Equal(t, h.HashLeaf([]byte("helloworld")), h.Digest([]byte("hello"), []byte("world")))
		require.Equal(t, h.HashLeaf([]byte("helloworld")), h.Digest([]byte("hello"), nil, []byte("world")))
	})

	t.Run("interior is raw left-then-right concatenation", func(t *testing.T) {
		t.Parallel()

		h := f()
		l := h.HashLeaf([]byte("left"))
		r := h.HashLeaf([]byte("right"))
		concat := append(append([]byte{}, l...), r...)
		require.Equal(t, h.HashLeaf(concat), h.HashInterior(l, r))
	})

	t.Run("interior respects order", func(t *testing.T) {
		t.Parallel()

		h := f()
		l := h.HashLeaf([]byte("left"))
		r := h.HashLeaf([]byte("right"))
		require.NotEqual(t, h.HashInterior(l, r), h.HashInterior(r, l))
	})

	t.Run("inputs are not mutated", func(t *testing.T) {
		t.Parallel()

		h := f()
		l := []byte("left-input")
		r := []byte("right-input")
		h.HashInterior(l, r)
		h.Digest(l, r)
		require.Equal(t, []byte("left-input"), l)
		require.Equal(t, []byte("right-input"), r)
	})

	t.Run("concurrent use", func(t *testing.T) {
		t.Parallel()

		h := f()
		want := h.HashLeaf([]byte("shared"))

		var wg sync.WaitGroup
		got := make([][]byte, 16)
		for i := range got {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				got[i] = h.HashLeaf([]byte("shared"))
			}(i)
		}
		wg.Wait()

		for _, g := range got {
			require.Equal(t, want, g)
		}
	})
}
