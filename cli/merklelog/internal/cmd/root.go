package cmd

import (
	"github.com/coniks-sys/coniks-merklelog/cli"

	// registered hashers
	_ "github.com/coniks-sys/coniks-merklelog/crypto/hasher/blake3"
	_ "github.com/coniks-sys/coniks-merklelog/crypto/hasher/coniks"
	_ "github.com/coniks-sys/coniks-merklelog/crypto/hasher/insecure"
	_ "github.com/coniks-sys/coniks-merklelog/crypto/hasher/sha256"
)

// RootCmd represents the base "merklelog" command when called without any
// subcommands (append, prove, audit, ...).
var RootCmd = cli.NewRootCommand("merklelog",
	"Tamper-evident record log built on a Merkle tree",
	`merklelog appends records to a local log, proves that a record is part
of the log and detects any modification of the log since a checkpoint.`)

func init() {
	RootCmd.PersistentFlags().StringP("config", "c", "config.toml",
		"Path to the merklelog configuration file")
}
