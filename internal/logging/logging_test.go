package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDir_WritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	})

	dir := filepath.Join(t.TempDir(), "logs")
	closer, err := InitDir(dir, slog.LevelInfo)
	require.NoError(t, err)

	slog.Debug("hidden message")
	slog.Info("project added", "project_id", "p1")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(filepath.Join(dir, "projboard.log"))
	require.NoError(t, err)

	content := string(data)
	assert.True(t, strings.Contains(content, "project added"), "log file should contain info message")
	assert.True(t, strings.Contains(content, "project_id=p1"))
	assert.False(t, strings.Contains(content, "hidden message"), "debug message should be filtered at info level")
	assert.NotNil(t, Logger)
}
