package container

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/reglet-dev/seclog/internal/application/errors"
	"github.com/reglet-dev/seclog/internal/application/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func TestNew_Defaults(t *testing.T) {
	c, err := New(Options{
		Logger:           quietLogger(),
		SystemConfigPath: filepath.Join(t.TempDir(), "missing.yaml"),
	})
	require.NoError(t, err)

	assert.Equal(t, services.SchemaFlat, c.Translator().Schema())
	assert.NotNil(t, c.ApplyFilesUseCase())
	assert.NotNil(t, c.FormatterFactory())
	assert.NotNil(t, c.SystemConfigProvider())
	assert.Equal(t, "table", c.SystemConfig().Output.Format)
}

func TestNew_SchemaFromSystemConfig(t *testing.T) {
	c, err := New(Options{
		Logger:           quietLogger(),
		SystemConfigPath: writeConfig(t, "schema:\n  strategy: legacy\n"),
	})
	require.NoError(t, err)

	assert.Equal(t, services.SchemaLegacy, c.Translator().Schema())
}

func TestNew_FlagOverridesSystemConfig(t *testing.T) {
	c, err := New(Options{
		Logger:           quietLogger(),
		SystemConfigPath: writeConfig(t, "schema:\n  strategy: legacy\n"),
		Schema:           services.SchemaPublish,
	})
	require.NoError(t, err)

	assert.Equal(t, services.SchemaPublish, c.Translator().Schema())
}

func TestNew_InvalidSystemConfigFallsBackToDefaults(t *testing.T) {
	c, err := New(Options{
		Logger:           quietLogger(),
		SystemConfigPath: writeConfig(t, "schema:\n  strategy: nested\n"),
	})
	require.NoError(t, err)

	assert.Equal(t, services.SchemaFlat, c.Translator().Schema())
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"unknown schema", Options{Schema: "nested"}},
		{"bad constraint", Options{VersionConstraint: "not a constraint"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Logger = quietLogger()
			tt.opts.SystemConfigPath = filepath.Join(t.TempDir(), "missing.yaml")

			_, err := New(tt.opts)

			var cfgErr *apperrors.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
}
