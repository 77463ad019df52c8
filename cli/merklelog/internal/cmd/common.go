package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/coniks-sys/coniks-merklelog/application/auditor"
	"github.com/coniks-sys/coniks-merklelog/storage/kv"
	"github.com/coniks-sys/coniks-merklelog/storage/kv/leveldbkv"
)

const configMissingUsage = `
Couldn't load the merklelog config-file.

To create a valid config, run
  merklelog init
This creates a config.toml in the current working directory.
If you prefer the config-file to be named or stored somewhere different you can
specify where to look for the config with the --config flag.
`

const maxRecordSize = 1 << 20

// errCheckFailed makes the executable exit with a non-zero status
// after a negative verification or audit result has been printed.
var errCheckFailed = errors.New("check failed")

func loadConfig(cmd *cobra.Command) (*auditor.Config, error) {
	file := cmd.Flag("config").Value.String()
	conf := &auditor.Config{}
	if err := conf.Load(file, "toml"); err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), configMissingUsage)
		return nil, err
	}
	return conf, nil
}

// withAuditor opens the record log of the configured database for the
// duration of f.
func withAuditor(cmd *cobra.Command, f func(a *auditor.Auditor) error) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	db, err := leveldbkv.OpenDB(conf.DatabasePath)
	if err != nil {
		return err
	}
	defer closeDB(cmd, db)

	a, err := auditor.New(conf, db)
	if err != nil {
		return err
	}
	return f(a)
}

func closeDB(cmd *cobra.Command, db kv.DB) {
	if err := db.Close(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Cannot close database:", err)
	}
}

// readRecords returns the lines of r as records, without line endings.
func readRecords(r io.Reader) ([][]byte, error) {
	var records [][]byte
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxRecordSize)
	for scanner.Scan() {
		records = append(records, append([]byte{}, scanner.Bytes()...))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func readRecordsFile(file string) ([][]byte, error) {
	if file == "-" {
		return readRecords(os.Stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readRecords(f)
}
