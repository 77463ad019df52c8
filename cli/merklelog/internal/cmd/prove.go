package cmd

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coniks-sys/coniks-merklelog/application"
	"github.com/coniks-sys/coniks-merklelog/application/auditor"
	"github.com/coniks-sys/coniks-merklelog/cli"
	"github.com/coniks-sys/coniks-merklelog/crypto"
	"github.com/coniks-sys/coniks-merklelog/merkletree"
	"github.com/coniks-sys/coniks-merklelog/utils"
)

var proveCmd = cli.NewActionCommand("prove [record]",
	"Print the inclusion proof of a record.",
	`Print the inclusion proof of a record as JSON, and the root it
verifies against on stderr. Without --index the first record equal to
the argument is proven.`,
	cobra.MaximumNArgs(1), prove)

func init() {
	RootCmd.AddCommand(proveCmd)
	proveCmd.Flags().IntP("index", "i", -1,
		"Index of the record to prove, for duplicated records")
	proveCmd.Flags().StringP("out", "o", "",
		"Write the proof to this file instead of stdout")
}

func prove(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(cmd.Flag("index").Value.String())
	if err != nil {
		return err
	}
	if (len(args) == 1) == (index >= 0) {
		return errors.New("Give either a record or --index")
	}

	return withAuditor(cmd, func(a *auditor.Auditor) error {
		var proof merkletree.Proof
		var root []byte
		if index >= 0 {
			proof, root, err = a.ProveAt(index)
		} else {
			proof, root, err = a.Prove([]byte(args[0]))
		}
		if err != nil {
			return err
		}

		msg, err := application.MarshalProof(proof)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "root", crypto.EncodeDigest(root))
		if out := cmd.Flag("out").Value.String(); out != "" {
			return utils.WriteFile(out, append(msg, '\n'), 0644)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(msg))
		return nil
	})
}
