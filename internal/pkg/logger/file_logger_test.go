//go:build unit
// +build unit

package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/gost-vault/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	logger := NewFileLogger(config.LogLevelInfo, logPath, 10, 3, 28)
	require.NotNil(t, logger)
	t.Cleanup(func() {
		_ = logger.(*FileLogger).Close()
	})

	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	_, err := os.Stat(logPath)
	assert.NoError(t, err)

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	logOutput := string(content)
	assert.Contains(t, logOutput, "info message")
	assert.Contains(t, logOutput, "warn message")
	assert.Contains(t, logOutput, "error message")
	assert.Contains(t, logOutput, "INFO")
	assert.Contains(t, logOutput, "WARN")
	assert.Contains(t, logOutput, "ERROR")
	assert.Contains(t, logOutput, `"service":"gost-vault"`)
}

func TestNewFileLogger_LevelFilter(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "warn.log")

	logger := NewFileLogger(config.LogLevelWarning, logPath, 10, 3, 28)
	t.Cleanup(func() {
		_ = logger.(*FileLogger).Close()
	})

	logger.Info("dropped message")
	logger.Warn("kept message")

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.NotContains(t, string(content), "dropped message")
	assert.Contains(t, string(content), "kept message")
}
