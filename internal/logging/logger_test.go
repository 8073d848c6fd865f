package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "manning.log")

	logger, err := New(path, false)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("roster loaded", zap.String("sheet", "3月"))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"roster loaded"`)
	assert.Contains(t, string(data), `"sheet":"3月"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNewVerboseKeepsDebug(t *testing.T) {
	path := filepath.Join(t.TempDir(), "manning.log")

	logger, err := New(path, true)
	require.NoError(t, err)
	logger.Debug("detail")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "detail")
}

func TestNewConsoleLevel(t *testing.T) {
	quiet, err := NewConsole(false)
	require.NoError(t, err)
	assert.False(t, quiet.Core().Enabled(zap.InfoLevel))
	assert.True(t, quiet.Core().Enabled(zap.WarnLevel))

	loud, err := NewConsole(true)
	require.NoError(t, err)
	assert.True(t, loud.Core().Enabled(zap.DebugLevel))
}
