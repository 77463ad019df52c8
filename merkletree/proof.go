package merkletree

import (
	"errors"
	"fmt"

	"github.com/coniks-sys/coniks-merklelog/crypto"
	"github.com/coniks-sys/coniks-merklelog/crypto/hasher"
)

// ErrMalformedSide indicates a side flag that is neither left nor right.
var ErrMalformedSide = errors.New("[merkletree] Malformed side")

// Side tells on which side of the running digest a sibling
// is concatenated during verification.
type Side int

const (
	undeterminedSide Side = iota
	// Left means the sibling precedes the running digest: H(sibling || running).
	Left
	// Right means the sibling follows the running digest: H(running || sibling).
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) {
	if s != Left && s != Right {
		return nil, fmt.Errorf("%w: %d", ErrMalformedSide, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left":
		*s = Left
	case "right":
		*s = Right
	default:
		return fmt.Errorf("%w: %q", ErrMalformedSide, text)
	}
	return nil
}

// ProofStep is one level of an inclusion proof: the digest of the
// sibling of the current node and the side that sibling is on.
type ProofStep struct {
	Sibling []byte
	Side    Side
}

// Proof is an inclusion proof, ordered from the leaf level to the level
// just below the root. The proof of a single-leaf tree is empty.
type Proof []ProofStep

// Proof returns the inclusion proof of the first leaf whose digest
// matches record. It returns ErrNotFound if there is no such leaf.
func (m *MerkleTree) Proof(record []byte) (Proof, error) {
	index, err := m.IndexOf(record)
	if err != nil {
		return nil, err
	}
	return m.authPath(index), nil
}

// ProofAt returns the inclusion proof of the leaf at index.
// Use it to prove a specific occurrence of a duplicated record.
func (m *MerkleTree) ProofAt(index int) (Proof, error) {
	if err := m.checkIndex(index); err != nil {
		return nil, err
	}
	return m.authPath(index), nil
}

// authPath walks from the leaf at index to the root by parent index,
// collecting the sibling at every level. A node paired with itself is
// the left child, and its sibling is its own digest.
func (m *MerkleTree) authPath(index int) Proof {
	proof := make(Proof, 0, m.Height())
	current := index
	for depth := 0; depth < m.Height(); depth++ {
		level := m.levels[depth]
		parent := m.levels[depth+1][level[current].parent]
		var step ProofStep
		if parent.left == current {
			step = ProofStep{
				Sibling: append([]byte{}, level[parent.right].digest...),
				Side:    Right,
			}
		} else {
			step = ProofStep{
				Sibling: append([]byte{}, level[parent.left].digest...),
				Side:    Left,
			}
		}
		proof = append(proof, step)
		current = level[current].parent
	}
	return proof
}

// Verify recomputes a root from record and proof with h and compares it
// to root. It does not need the tree the proof came from.
//
// Verify returns false for a nil hasher, a sibling of the wrong width or
// an undetermined side. A true result only proves membership if h is a
// secure hasher and root comes from a trusted source.
func Verify(h hasher.TreeHasher, record []byte, proof Proof, root []byte) bool {
	if h == nil || len(root) != h.Size() {
		return false
	}
	running := h.HashLeaf(record)
	for _, step := range proof {
		if len(step.Sibling) != h.Size() {
			return false
		}
		switch step.Side {
		case Left:
			running = h.HashInterior(step.Sibling, running)
		case Right:
			running = h.HashInterior(running, step.Sibling)
		default:
			return false
		}
	}
	return crypto.Equal(running, root)
}

// VerifyHex is Verify with the root given as hex text, as returned by
// RootHash. A malformed rootHash fails verification.
func VerifyHex(h hasher.TreeHasher, record []byte, proof Proof, rootHash string) bool {
	if h == nil {
		return false
	}
	root, err := crypto.DecodeDigest(rootHash, h.Size())
	if err != nil {
		return false
	}
	return Verify(h, record, proof, root)
}
