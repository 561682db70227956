package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/reglet-dev/seclog/internal/infrastructure/container"
	"github.com/stretchr/testify/require"
)

// newTestCommandContext builds a command context whose system config is
// systemConfig (empty for defaults).
func newTestCommandContext(t *testing.T, schema, systemConfig string) *CommandContext {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	if systemConfig != "" {
		require.NoError(t, os.WriteFile(configPath, []byte(systemConfig), 0o600))
	}

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	c, err := container.New(container.Options{
		Logger:           logger,
		SystemConfigPath: configPath,
		Schema:           schema,
	})
	require.NoError(t, err)

	return &CommandContext{Container: c, Logger: logger, Context: context.Background()}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
