package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "uv", cfg.UV.Path)
	assert.Equal(t, ".vscode/settings.json", cfg.Editor.SettingsFile)
	assert.Equal(t, "python.defaultInterpreterPath", cfg.Editor.InterpreterKey)
	assert.Equal(t, []string{".vscode", ".git"}, cfg.Editor.RootMarkers)
	assert.Equal(t, []string{"**/*.py"}, cfg.Watch.Globs)
	assert.Equal(t, 200*time.Millisecond, cfg.Watch.Debounce)
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "uv", cfg.UV.Path)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
uv:
  sync_before_find: true
editor:
  interpreter_key: python.pythonPath
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.UV.SyncBeforeFind)
	assert.Equal(t, "python.pythonPath", cfg.Editor.InterpreterKey)

	// Unset values fall back to defaults.
	assert.Equal(t, "uv", cfg.UV.Path)
	assert.Equal(t, ".vscode/settings.json", cfg.Editor.SettingsFile)
	assert.Equal(t, []string{"**/*.py"}, cfg.Watch.Globs)
}

func TestLoad_Templates(t *testing.T) {
	path := writeConfig(t, `
templates:
  cli:
    description: argparse starter
    content: |
      # /// script
      # requires-python = ">=3.12"
      # ///
      print("hi")
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Contains(t, cfg.Templates, "cli")
	assert.Equal(t, "argparse starter", cfg.Templates["cli"].Description)
	assert.Contains(t, cfg.Templates["cli"].Content, "# /// script")
}

func TestLoad_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "invalid glob",
			yaml:    "watch:\n  globs: [\"[\"]\n",
			wantErr: "invalid pattern",
		},
		{
			name:    "template without content",
			yaml:    "templates:\n  empty:\n    description: no body\n",
			wantErr: "content is required",
		},
		{
			name:    "malformed yaml",
			yaml:    "uv: [\n",
			wantErr: "parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
