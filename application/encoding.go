// Defines functions to encode/decode inclusion proofs exchanged
// between the command-line tools. Currently only JSON is supported.

package application

import (
	"encoding/json"

	"github.com/coniks-sys/coniks-merklelog/crypto"
	"github.com/coniks-sys/coniks-merklelog/merkletree"
)

type proofStep struct {
	Digest string          `json:"digest"`
	Side   merkletree.Side `json:"side"`
}

// MarshalProof returns a JSON encoding of proof: an array of
// {"digest": <hex>, "side": "left"|"right"} objects in leaf-to-root order.
func MarshalProof(proof merkletree.Proof) ([]byte, error) {
	steps := make([]proofStep, len(proof))
	for i, step := range proof {
		steps[i] = proofStep{
			Digest: crypto.EncodeDigest(step.Sibling),
			Side:   step.Side,
		}
	}
	return json.MarshalIndent(steps, "", "  ")
}

// UnmarshalProof parses a JSON-encoded proof created by MarshalProof.
// It does not check digest widths; Verify rejects siblings whose
// width does not match the hasher.
func UnmarshalProof(msg []byte) (merkletree.Proof, error) {
	var steps []proofStep
	if err := json.Unmarshal(msg, &steps); err != nil {
		return nil, err
	}
	proof := make(merkletree.Proof, len(steps))
	for i, step := range steps {
		d, err := crypto.DecodeDigest(step.Digest, 0)
		if err != nil {
			return nil, err
		}
		proof[i] = merkletree.ProofStep{
			Sibling: d,
			Side:    step.Side,
		}
	}
	return proof, nil
}
