package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const scriptWithBlock = `# /// script
# requires-python = ">=3.12"
# dependencies = []
# ///
print("hi")
`

func detectApp(buf *bytes.Buffer) *cli.Command {
	app := &cli.Command{
		Name:   "scriptmeta",
		Writer: buf,
		// Keep cli.Exit errors from terminating the test binary.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	NewDetectCmd(&Flags{}).Register(app)
	return app
}

func TestDetect_JSON(t *testing.T) {
	dir := t.TempDir()

	withBlock := filepath.Join(dir, "with.py")
	require.NoError(t, os.WriteFile(withBlock, []byte(scriptWithBlock), 0o644))

	withoutBlock := filepath.Join(dir, "without.py")
	require.NoError(t, os.WriteFile(withoutBlock, []byte("print('hi')\n"), 0o644))

	var buf bytes.Buffer
	err := detectApp(&buf).Run(context.Background(),
		[]string{"scriptmeta", "detect", "--json", withBlock, withoutBlock})

	// One file lacks a block, so the command exits non-zero.
	require.Error(t, err)
	assert.Empty(t, err.Error())

	var verdicts []detectVerdict
	require.NoError(t, json.Unmarshal(buf.Bytes(), &verdicts))
	require.Len(t, verdicts, 2)

	assert.Equal(t, withBlock, verdicts[0].File)
	assert.True(t, verdicts[0].HasHeader)
	assert.Equal(t, withoutBlock, verdicts[1].File)
	assert.False(t, verdicts[1].HasHeader)
}

func TestDetect_AllHaveBlocks(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "script.py")
	require.NoError(t, os.WriteFile(path, []byte(scriptWithBlock), 0o644))

	var buf bytes.Buffer
	err := detectApp(&buf).Run(context.Background(),
		[]string{"scriptmeta", "detect", "--json", path})
	require.NoError(t, err)
}

func TestDetect_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := detectApp(&buf).Run(context.Background(),
		[]string{"scriptmeta", "detect", "--json", "/does/not/exist.py"})
	require.Error(t, err)

	var verdicts []detectVerdict
	require.NoError(t, json.Unmarshal(buf.Bytes(), &verdicts))
	require.Len(t, verdicts, 1)
	assert.False(t, verdicts[0].HasHeader)
	assert.NotEmpty(t, verdicts[0].Error)
}

func TestDetect_NoArgs(t *testing.T) {
	var buf bytes.Buffer
	err := detectApp(&buf).Run(context.Background(), []string{"scriptmeta", "detect"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no files given")
}
