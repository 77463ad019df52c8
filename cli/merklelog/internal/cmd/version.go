package cmd

import (
	"github.com/coniks-sys/coniks-merklelog/cli"
)

var versionCmd = cli.NewVersionCommand("merklelog")

func init() {
	RootCmd.AddCommand(versionCmd)
}
