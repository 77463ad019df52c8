/*
Package auditor keeps a record log in a key-value store and audits it
against a trusted Merkle root.

An Auditor appends records, rebuilds the Merkle tree over the stored
records on demand, and hands out inclusion proofs. A checkpoint stores
the current root; a later audit rebuilds the tree and reports whether
the records still produce the checkpointed root. Any edit, removal,
insertion or reordering of stored records is reported as tampering.
*/
package auditor
