package application

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerEnvironment(t *testing.T) {
	_, err := NewLogger(&LoggerConfig{Environment: "staging"})
	assert.Error(t, err)

	for _, env := range []string{"development", "Production"} {
		l, err := NewLogger(&LoggerConfig{Environment: env})
		require.NoError(t, err, env)
		assert.NotNil(t, l)
	}
}

func TestLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merklelog.log")
	l, err := NewLogger(&LoggerConfig{
		Environment: "production",
		Path:        path,
	})
	require.NoError(t, err)

	l.Debug("hidden in production")
	l.Info("tree built", "size", 3)
	l.Warn("insecure hasher")
	_ = l.Sync()

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(buf), "tree built")
	assert.Contains(t, string(buf), "insecure hasher")
	assert.NotContains(t, string(buf), "hidden in production")
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Error("discarded", "err", "none")
	assert.NoError(t, l.Sync())
}
