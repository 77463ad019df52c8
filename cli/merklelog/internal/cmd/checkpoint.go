package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coniks-sys/coniks-merklelog/application/auditor"
	"github.com/coniks-sys/coniks-merklelog/cli"
)

var checkpointCmd = cli.NewActionCommand("checkpoint",
	"Store the current root as the trusted root.",
	`Store the current root of the log. Later audits compare the log
against this root.`,
	cobra.NoArgs, checkpoint)

func init() {
	RootCmd.AddCommand(checkpointCmd)
}

func checkpoint(cmd *cobra.Command, args []string) error {
	return withAuditor(cmd, func(a *auditor.Auditor) error {
		cp, err := a.Checkpoint()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %d %s\n", cp.Hasher, cp.Size, cp.Root)
		return nil
	})
}
