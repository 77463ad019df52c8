// Package crypto contains the cryptographic routines shared by the
// merklelog packages, to:
// - hash arbitrary data (`Digest`) using sha256
// - render and parse digests as hex text
// - compare digests in constant time.
//
// Pluggable digest strategies live in the hasher sub-package.
package crypto
