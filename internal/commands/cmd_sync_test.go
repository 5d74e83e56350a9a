package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/scriptmeta/internal/core/config"
	"github.com/colonyops/scriptmeta/pkg/executil"
)

func syncWorkspace(t *testing.T) (root, script string) {
	t.Helper()

	root = t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))

	script = filepath.Join(root, "script.py")
	require.NoError(t, os.WriteFile(script, []byte(scriptWithBlock), 0o644))

	return root, script
}

func syncApp(buf *bytes.Buffer, flags *Flags) *cli.Command {
	app := &cli.Command{
		Name:   "scriptmeta",
		Writer: buf,
	}
	NewSyncCmd(flags).Register(app)
	return app
}

func TestSync_WritesSettings(t *testing.T) {
	root, script := syncWorkspace(t)

	cfg := config.DefaultConfig()
	exec := &executil.RecordingExecutor{
		Outputs: map[string][]byte{"uv": []byte("/venvs/abc/bin/python\n")},
	}
	flags := &Flags{Config: &cfg, Exec: exec}

	var buf bytes.Buffer
	err := syncApp(&buf, flags).Run(context.Background(),
		[]string{"scriptmeta", "sync", script})
	require.NoError(t, err)

	// Only the find step runs with sync_before_find off.
	require.Len(t, exec.Commands, 1)
	assert.Equal(t, []string{"python", "find", "--script", script}, exec.Commands[0].Args)

	raw, err := os.ReadFile(filepath.Join(root, ".vscode", "settings.json"))
	require.NoError(t, err)
	assert.Equal(t, "/venvs/abc/bin/python",
		gjson.GetBytes(raw, `python\.defaultInterpreterPath`).Str)
}

func TestSync_SyncBeforeFind(t *testing.T) {
	_, script := syncWorkspace(t)

	cfg := config.DefaultConfig()
	cfg.UV.SyncBeforeFind = true
	exec := &executil.RecordingExecutor{
		Outputs: map[string][]byte{"uv": []byte("/venvs/abc/bin/python\n")},
	}
	flags := &Flags{Config: &cfg, Exec: exec}

	var buf bytes.Buffer
	err := syncApp(&buf, flags).Run(context.Background(),
		[]string{"scriptmeta", "sync", script})
	require.NoError(t, err)

	require.Len(t, exec.Commands, 2)
	assert.Equal(t, []string{"sync", "--script", script}, exec.Commands[0].Args)
	assert.Equal(t, []string{"python", "find", "--script", script}, exec.Commands[1].Args)
}

func TestSync_DryRun(t *testing.T) {
	root, script := syncWorkspace(t)

	cfg := config.DefaultConfig()
	exec := &executil.RecordingExecutor{
		Outputs: map[string][]byte{"uv": []byte("/venvs/abc/bin/python\n")},
	}
	flags := &Flags{Config: &cfg, Exec: exec}

	var buf bytes.Buffer
	err := syncApp(&buf, flags).Run(context.Background(),
		[]string{"scriptmeta", "sync", "--dry-run", script})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "dry-run")
	assert.NoFileExists(t, filepath.Join(root, ".vscode", "settings.json"))
}

func TestSync_NoMetadataBlock(t *testing.T) {
	root := t.TempDir()
	script := filepath.Join(root, "plain.py")
	require.NoError(t, os.WriteFile(script, []byte("print('hi')\n"), 0o644))

	cfg := config.DefaultConfig()
	exec := &executil.RecordingExecutor{}
	flags := &Flags{Config: &cfg, Exec: exec}

	var buf bytes.Buffer
	err := syncApp(&buf, flags).Run(context.Background(),
		[]string{"scriptmeta", "sync", script})
	require.NoError(t, err)

	assert.Empty(t, exec.Commands)
	assert.Contains(t, buf.String(), "nothing to sync")
}
