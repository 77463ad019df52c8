package merkletree

// noIndex marks a missing child (leaves) or parent (root).
const noIndex = -1

// node is an entry of one tree level. Children are indices into the level
// below, the parent is an index into the level above.
type node struct {
	digest []byte
	left   int
	right  int
	parent int
}

func newLeafNode(digest []byte) node {
	return node{
		digest: digest,
		left:   noIndex,
		right:  noIndex,
		parent: noIndex,
	}
}

func newInteriorNode(digest []byte, left, right int) node {
	return node{
		digest: digest,
		left:   left,
		right:  right,
		parent: noIndex,
	}
}

func (n *node) isLeaf() bool {
	return n.left == noIndex
}

// LeafNode is the digest of one record together with
// the record's position in the input sequence.
type LeafNode struct {
	Digest []byte
	Index  int
}
