package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coniks-sys/coniks-merklelog/application/auditor"
	"github.com/coniks-sys/coniks-merklelog/cli"
)

var appendCmd = cli.NewActionCommand("append [record...]",
	"Append records to the log.",
	`Append records to the log. Records are taken from the arguments,
or one per line from the file given with --file ("-" reads stdin).`,
	cobra.ArbitraryArgs, appendRecords)

func init() {
	RootCmd.AddCommand(appendCmd)
	appendCmd.Flags().StringP("file", "f", "",
		"File containing newline-separated records")
}

func appendRecords(cmd *cobra.Command, args []string) error {
	var records [][]byte
	if file := cmd.Flag("file").Value.String(); file != "" {
		var err error
		if records, err = readRecordsFile(file); err != nil {
			return err
		}
	}
	for _, arg := range args {
		records = append(records, []byte(arg))
	}
	if len(records) == 0 {
		return errors.New("No records given")
	}

	return withAuditor(cmd, func(a *auditor.Auditor) error {
		if err := a.Append(records); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Appended %d records\n", len(records))
		return nil
	})
}
