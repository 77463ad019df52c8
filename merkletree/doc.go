/*
Package merkletree implements a binary Merkle hash tree over an ordered
sequence of opaque records, together with inclusion proofs for single
records and the rebuild-and-compare check used to detect tampering of a
whole record set.

Tree Construction

A tree is built once, from a fixed record sequence, and never changes
afterwards. Level 0 holds the leaf digests H(r) in input order. Each
following level is formed by hashing adjacent pairs as H(left || right),
where || is the raw concatenation of the two fixed-width digests. When a
level has an odd number of nodes, the last node is paired with itself.
The single node left at the top is the root. A tree of one record has
that record's leaf digest as its root.

Every level is stored as a flat slice, and each node keeps the index of
its parent in the next level and of its children in the previous one.
Proof generation walks these indices from a leaf up to the root.

Inclusion Proofs

A Proof lists, from the leaf upwards, the digest of the sibling at each
level and the side the sibling is on. Verify recomputes the root from a
record and a proof and needs nothing from the tree itself, so a proof and
a trusted root are enough to check membership out-of-band.

Proof looks a record up by content and returns the proof for its first
occurrence. Records that occur more than once can be addressed by leaf
index with ProofAt.

Security Considerations

Completeness holds for any hasher. Soundness (a modified record, sibling,
side or root failing verification) and tamper-evidence only hold for a
cryptographically strong hasher; see hasher.SecureHasher.

Duplicating the last node of an odd level makes the root of n leaves
equal to the root of the n+1 leaves obtained by repeating the last record.
Leaf and interior digests also share one domain, so an interior digest
can be presented as a leaf. The construction is kept for compatibility
with existing roots; callers that need to rule these cases out must fix
the record count out-of-band.
*/
package merkletree
