package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	RootCmd.SetOut(&stdout)
	RootCmd.SetErr(&stderr)
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestReadRecords(t *testing.T) {
	records, err := readRecords(strings.NewReader("a\nb b\n\nc\r\n"))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{[]byte("a"), []byte("b b"), {}, []byte("c")}, records)

	_, err = readRecords(strings.NewReader(strings.Repeat("x", maxRecordSize+1)))
	assert.Error(t, err)
}

func TestWorkflow(t *testing.T) {
	dir := t.TempDir()
	conf := filepath.Join(dir, "config.toml")
	recordsFile := filepath.Join(dir, "records.txt")
	proofFile := filepath.Join(dir, "proof.json")
	require.NoError(t, os.WriteFile(recordsFile, []byte("a\nb\nc\n"), 0600))

	_, _, err := execute(t, "init", "-d", dir)
	require.NoError(t, err)
	_, _, err = execute(t, "init", "-d", dir)
	assert.Error(t, err, "init must not overwrite a config")

	_, _, err = execute(t, "-c", conf, "append", "-f", recordsFile)
	require.NoError(t, err)

	out, _, err := execute(t, "-c", conf, "root")
	require.NoError(t, err)
	root := strings.TrimSpace(out)
	assert.Len(t, root, 64)

	_, stderr, err := execute(t, "-c", conf, "prove", "b", "-o", proofFile)
	require.NoError(t, err)
	assert.Contains(t, stderr, root)

	out, _, err = execute(t, "-c", conf, "verify", "b", "--proof", proofFile, "--root", root)
	require.NoError(t, err)
	assert.Equal(t, "true", strings.TrimSpace(out))

	out, _, err = execute(t, "-c", conf, "verify", "d", "--proof", proofFile, "--root", root)
	assert.True(t, errors.Is(err, errCheckFailed))
	assert.Equal(t, "false", strings.TrimSpace(out))

	_, _, err = execute(t, "-c", conf, "checkpoint")
	require.NoError(t, err)
	out, _, err = execute(t, "-c", conf, "audit")
	require.NoError(t, err)
	assert.Contains(t, out, "OK")

	_, _, err = execute(t, "-c", conf, "append", "d")
	require.NoError(t, err)
	out, _, err = execute(t, "-c", conf, "audit")
	assert.True(t, errors.Is(err, errCheckFailed))
	assert.Contains(t, out, "TAMPERED")
}

func TestHashers(t *testing.T) {
	out, _, err := execute(t, "hashers")
	require.NoError(t, err)
	for _, id := range []string{"BLAKE3", "ROLLING31", "SHA-256", "SHAKE128", "XXH64"} {
		assert.Contains(t, out, id)
	}
}
