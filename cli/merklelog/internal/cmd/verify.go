package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/coniks-sys/coniks-merklelog/application"
	"github.com/coniks-sys/coniks-merklelog/cli"
	"github.com/coniks-sys/coniks-merklelog/merkletree"
)

var verifyCmd = cli.NewActionCommand("verify <record>",
	"Verify the inclusion proof of a record.",
	`Verify that a record is included under a root, using a proof printed
by "prove". Only the configured hasher is needed, not the log itself.
Prints true or false, and exits with a non-zero status on false.`,
	cobra.ExactArgs(1), verify)

func init() {
	RootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringP("proof", "p", "", "File containing the JSON proof")
	verifyCmd.Flags().StringP("root", "r", "", "Trusted root as hex")
}

func verify(cmd *cobra.Command, args []string) error {
	proofFile := cmd.Flag("proof").Value.String()
	rootHash := cmd.Flag("root").Value.String()
	if proofFile == "" || rootHash == "" {
		return errors.New("Both --proof and --root are required")
	}

	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	h, err := conf.TreeHasher()
	if err != nil {
		return err
	}
	msg, err := os.ReadFile(proofFile)
	if err != nil {
		return err
	}
	proof, err := application.UnmarshalProof(msg)
	if err != nil {
		return fmt.Errorf("Cannot parse proof: %w", err)
	}

	ok := merkletree.VerifyHex(h, []byte(args[0]), proof, rootHash)
	fmt.Fprintln(cmd.OutOrStdout(), ok)
	if !ok {
		return errCheckFailed
	}
	return nil
}
