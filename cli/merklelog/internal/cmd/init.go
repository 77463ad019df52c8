package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coniks-sys/coniks-merklelog/application"
	"github.com/coniks-sys/coniks-merklelog/application/auditor"
	"github.com/coniks-sys/coniks-merklelog/cli"
	"github.com/coniks-sys/coniks-merklelog/crypto/hasher"
)

var initCmd = cli.NewInitCommand("merklelog", mkConfig)

func init() {
	RootCmd.AddCommand(initCmd)
	initCmd.Flags().StringP("dir", "d", ".",
		"Location of directory for storing generated files")
	initCmd.Flags().String("hasher", "SHA-256",
		"Hasher used to build the tree")
}

func mkConfig(cmd *cobra.Command, args []string) error {
	dir := cmd.Flag("dir").Value.String()
	file := filepath.Join(dir, "config.toml")
	hasherID := cmd.Flag("hasher").Value.String()

	h, err := hasher.Hasher(hasherID)
	if err != nil {
		return err
	}

	logger := &application.LoggerConfig{
		Environment: "development",
		Path:        "merklelog.log",
	}
	conf := auditor.NewConfig(file, "toml", "merklelog.db", logger)
	conf.Hasher = h.ID()
	conf.AllowInsecureHasher = !h.Secure()
	if err := conf.Save(); err != nil {
		return fmt.Errorf("Couldn't save config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Config written to", file)
	return nil
}
