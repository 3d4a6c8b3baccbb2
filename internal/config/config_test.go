package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.True(t, cfg.Rollback())
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_UnsetUsesDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FromEnv(t *testing.T) {
	path := writeConfig(t, `
extension: .gwf
exclude:
  - "drafts/**"
max_depth: 64
on_syntax_error: keep
log_level: debug
log_format: json
`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ".gwf", cfg.Extension)
	assert.Equal(t, []string{"drafts/**"}, cfg.Exclude)
	assert.Equal(t, 64, cfg.MaxDepth)
	assert.False(t, cfg.Rollback())
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.IndexDB, "unset fields keep defaults")
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad policy", "on_syntax_error: ignore\n"},
		{"zero depth", "max_depth: 0\n"},
		{"bad level", "log_level: loud\n"},
		{"bad format", "log_format: xml\n"},
		{"extension without dot", "extension: scs\n"},
		{"bad glob", "exclude: [\"[unclosed\"]\n"},
		{"not yaml", "max_depth: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
