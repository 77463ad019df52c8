package crypto

import (
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/minio/sha256-simd"
)

const (
	// DefaultHashSizeByte is the size of the default hash output in bytes.
	DefaultHashSizeByte = sha256.Size
	// DefaultHashID identifies the default hash as a string.
	DefaultHashID = "SHA-256"
)

// ErrMalformedDigest indicates a hex digest that could not be decoded.
var ErrMalformedDigest = errors.New("[crypto] Malformed digest")

// Digest hashes all passed byte slices with the default hash.
// The passed slices won't be mutated.
func Digest(ms ...[]byte) []byte {
	h := sha256.New()
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}

// EncodeDigest renders d as lowercase hex text.
func EncodeDigest(d []byte) string {
	return hex.EncodeToString(d)
}

// DecodeDigest parses a hex digest produced by EncodeDigest.
// If size is positive, the decoded digest must be exactly size bytes long.
func DecodeDigest(s string, size int) ([]byte, error) {
	d, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDigest, err)
	}
	if size > 0 && len(d) != size {
		return nil, fmt.Errorf("%w: want %d bytes, got %d",
			ErrMalformedDigest, size, len(d))
	}
	return d, nil
}

// Equal reports whether a and b are the same digest.
// The comparison takes time independent of the contents.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
