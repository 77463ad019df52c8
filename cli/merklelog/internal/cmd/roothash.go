package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coniks-sys/coniks-merklelog/application/auditor"
	"github.com/coniks-sys/coniks-merklelog/cli"
)

var rootHashCmd = cli.NewActionCommand("root",
	"Print the current root of the log.",
	`Rebuild the Merkle tree over all records and print its root as hex.`,
	cobra.NoArgs, printRoot)

func init() {
	RootCmd.AddCommand(rootHashCmd)
}

func printRoot(cmd *cobra.Command, args []string) error {
	return withAuditor(cmd, func(a *auditor.Auditor) error {
		m, err := a.Tree()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), m.RootHash())
		return nil
	})
}
