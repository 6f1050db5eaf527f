package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogging_WritesToFile(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	dir := t.TempDir()
	logPath := filepath.Join(dir, "bootstrapgen.log")

	require.NoError(t, setupLogging("info", logPath))
	slog.Info("hello world")
	slog.Debug("hidden")

	data, err := os.ReadFile(logPath)
	assert.NoError(t, err)
	assert.Contains(t, string(data), "INFO: hello world")
	assert.NotContains(t, string(data), "hidden")
}

func TestSetupLogging_RejectsUnknownLevel(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	err := setupLogging("verbose", "")
	assert.Error(t, err)
}

func TestSimpleHandler_FormatsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(&simpleHandler{level: slog.LevelDebug, writer: &buf})

	logger.Warn("shape tree truncated at depth limit", "limit", 3)
	logger.Log(context.Background(), slog.LevelDebug, "plain")

	assert.Equal(t, "WARN: shape tree truncated at depth limit (limit='3')\nDEBUG: plain\n", buf.String())
}
