// Executable merklelog keeps a record log, hands out inclusion proofs
// for its records and audits it against a checkpointed Merkle root.
package main

import (
	"github.com/coniks-sys/coniks-merklelog/cli"
	"github.com/coniks-sys/coniks-merklelog/cli/merklelog/internal/cmd"
)

func main() {
	cli.ExecuteRoot(cmd.RootCmd)
}
