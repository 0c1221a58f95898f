// ABOUTME: Tests for logger construction
// ABOUTME: Verifies level parsing and file output in the config directory

package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"info":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestFileConfig(t *testing.T) {
	cfg := FileConfig(DefaultConfig(), "/tmp/estimator")
	assert.Equal(t, filepath.Join("/tmp/estimator", DebugLogFile), cfg.Output)
	assert.Equal(t, "info", cfg.Level)

	assert.Empty(t, FileConfig(DefaultConfig(), "").Output)
}

func TestNew_EmptyOutputIsNop(t *testing.T) {
	logger, closeFn, err := New(Config{})
	require.NoError(t, err)
	defer closeFn()
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNew_WritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	cfg := FileConfig(Config{Level: "warn", Format: "json"}, dir)

	logger, closeFn, err := New(cfg)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Error("estimate request failed")
	closeFn()

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, "estimate request failed")
	assert.False(t, strings.Contains(out, "hidden"), "info entry should be filtered at warn level")

	info, err := os.Stat(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
