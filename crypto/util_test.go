package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"
)

func TestDigestVector(t *testing.T) {
	// sha256("abc")
	want, _ := hex.DecodeString("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")
	if got := Digest([]byte("abc")); !bytes.Equal(got, want) {
		t.Fatalf("Digest(abc) = %x, want %x", got, want)
	}
	if got := Digest([]byte("a"), []byte("bc")); !bytes.Equal(got, want) {
		t.Fatal("Digest should hash the concatenation of its arguments")
	}
	if len(Digest()) != DefaultHashSizeByte {
		t.Fatal("Unexpected digest width")
	}
}

func TestEncodeDecodeDigest(t *testing.T) {
	d := Digest([]byte("record"))
	got, err := DecodeDigest(EncodeDigest(d), DefaultHashSizeByte)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, d) {
		t.Error("Digest changed after encoding round trip")
	}

	if _, err := DecodeDigest("zz", 0); !errors.Is(err, ErrMalformedDigest) {
		t.Error("Expect ErrMalformedDigest for non-hex input, got", err)
	}
	if _, err := DecodeDigest("abcd", DefaultHashSizeByte); !errors.Is(err, ErrMalformedDigest) {
		t.Error("Expect ErrMalformedDigest for a short digest, got", err)
	}
}

func TestEqual(t *testing.T) {
	a := Digest([]byte("a"))
	b := Digest([]byte("b"))
	if !Equal(a, append([]byte{}, a...)) {
		t.Error("Equal digests compare as different")
	}
	if Equal(a, b) {
		t.Error("Different digests compare as equal")
	}
	if Equal(a, a[:16]) {
		t.Error("Digests of different length compare as equal")
	}
}
