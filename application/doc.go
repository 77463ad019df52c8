/*
Package application is a library for building merklelog executables.

Config

This module implements a TOML configuration layer shared by all
executables: an AppConfig is loaded from and saved to a file through
the ConfigLoader of its encoding.

Encoding

This module implements the JSON encoding of inclusion proofs, so that
proofs can be handed to a verifier that has no access to the record log.

Logger

This module implements a generic logging system that can be used by any
merklelog application/executable.
*/
package application
