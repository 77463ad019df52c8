package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coniks-sys/coniks-merklelog/application/auditor"
	"github.com/coniks-sys/coniks-merklelog/cli"
)

var auditCmd = cli.NewActionCommand("audit",
	"Check the log against the stored checkpoint.",
	`Rebuild the Merkle tree over all records and compare its root with the
checkpoint. Exits with a non-zero status if the log was modified.`,
	cobra.NoArgs, audit)

func init() {
	RootCmd.AddCommand(auditCmd)
}

func audit(cmd *cobra.Command, args []string) error {
	return withAuditor(cmd, func(a *auditor.Auditor) error {
		report, err := a.Audit()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "checkpoint %d %s\n", report.Checkpoint.Size, report.Checkpoint.Root)
		fmt.Fprintf(out, "current    %d %s\n", report.Size, report.CurrentRoot)
		if report.Tampered {
			fmt.Fprintln(out, "TAMPERED")
			return errCheckFailed
		}
		fmt.Fprintln(out, "OK")
		return nil
	})
}
