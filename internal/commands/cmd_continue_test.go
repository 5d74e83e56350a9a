package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func continueApp(buf *bytes.Buffer) *cli.Command {
	app := &cli.Command{
		Name:   "scriptmeta",
		Writer: buf,
	}
	NewContinueCmd(&Flags{}).Register(app)
	return app
}

func insertText(t *testing.T, buf *bytes.Buffer) string {
	t.Helper()
	var insert struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &insert))
	return insert.Text
}

func TestContinue_FileMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.py")
	require.NoError(t, os.WriteFile(path, []byte(scriptWithBlock), 0o644))

	tests := []struct {
		name string
		line int
		char int
		want string
	}{
		{
			name: "end of line inside block carries prefix",
			line: 1,
			char: len(`# requires-python = ">=3.12"`),
			want: "\n# ",
		},
		{
			name: "outside block is a bare newline",
			line: 4,
			char: 5,
			want: "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := continueApp(&buf).Run(context.Background(), []string{
				"scriptmeta", "continue",
				"--line", strconv.Itoa(tt.line),
				"--char", strconv.Itoa(tt.char),
				path,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, insertText(t, &buf))
		})
	}
}

func TestContinue_JSONRequestMode(t *testing.T) {
	dir := t.TempDir()
	req := continueRequest{Line: 1, Char: 4, Buffer: scriptWithBlock}

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	reqPath := filepath.Join(dir, "request.json")
	require.NoError(t, os.WriteFile(reqPath, raw, 0o644))

	var buf bytes.Buffer
	err = continueApp(&buf).Run(context.Background(),
		[]string{"scriptmeta", "continue", "-f", reqPath})
	require.NoError(t, err)

	// Cursor sits inside "# requires-python..." after the prefix.
	assert.Equal(t, "\n# ", insertText(t, &buf))
}

func TestContinue_HalfSpecifiedPosition(t *testing.T) {
	var buf bytes.Buffer
	err := continueApp(&buf).Run(context.Background(),
		[]string{"scriptmeta", "continue", "--line", "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "given together")
}
