package insecure

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/coniks-sys/coniks-merklelog/crypto/hasher"
	"github.com/coniks-sys/coniks-merklelog/crypto/hasher/hashertest"
)

func TestCompliance(t *testing.T) {
	t.Run(XXH64, func(t *testing.T) {
		hashertest.TestHasherCompliance(t, NewXXH64)
	})
	t.Run(Rolling31, func(t *testing.T) {
		hashertest.TestHasherCompliance(t, NewRolling31)
	})
}

func TestNeverSecure(t *testing.T) {
	for _, id := range []string{XXH64, Rolling31} {
		h, err := hasher.Hasher(id)
		if err != nil {
			t.Fatal(err)
		}
		if h.Secure() {
			t.Errorf("%s must not report itself as secure", id)
		}
		if _, err := hasher.SecureHasher(id); !errors.Is(err, hasher.ErrInsecureHasher) {
			t.Errorf("SecureHasher(%s): expect ErrInsecureHasher, got %v", id, err)
		}
	}
}

func TestXXH64MatchesLibrary(t *testing.T) {
	got := NewXXH64().HashLeaf([]byte("abc"))
	if binary.BigEndian.Uint64(got) != xxhash.Sum64String("abc") {
		t.Errorf("HashLeaf(abc): %x, want %x", got, xxhash.Sum64String("abc"))
	}
}

func TestRollingVectors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want uint64
	}{
		{in: "", want: 0},
		{in: "a", want: 97},
		// 97*31 + 98
		{in: "ab", want: 3105},
		// 3105*31 + 99
		{in: "abc", want: 96354},
	} {
		got := binary.BigEndian.Uint64(NewRolling31().HashLeaf([]byte(tc.in)))
		if got != tc.want {
			t.Errorf("HashLeaf(%q): %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestRollingWrapsModulus(t *testing.T) {
	in := make([]byte, 64)
	for i := range in {
		in[i] = 0xff
	}
	if got := binary.BigEndian.Uint64(NewRolling31().HashLeaf(in)); got >= rollingModulus {
		t.Errorf("HashLeaf exceeds the modulus: %d", got)
	}
}
