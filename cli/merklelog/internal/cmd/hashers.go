package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/coniks-sys/coniks-merklelog/cli"
	"github.com/coniks-sys/coniks-merklelog/crypto/hasher"
)

var hashersCmd = cli.NewActionCommand("hashers",
	"List the available hashers.",
	`List the available hashers, their output size and whether they are
cryptographically secure. Insecure hashers must be enabled with
allow_insecure_hasher in the config.`,
	cobra.NoArgs, listHashers)

func init() {
	RootCmd.AddCommand(hashersCmd)
}

func listHashers(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSIZE\tSECURE")
	for _, id := range hasher.Registered() {
		h, err := hasher.Hasher(id)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%t\n", h.ID(), h.Size(), h.Secure())
	}
	return w.Flush()
}
