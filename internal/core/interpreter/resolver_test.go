package interpreter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/scriptmeta/pkg/executil"
)

func TestResolver_Resolve(t *testing.T) {
	exec := &executil.RecordingExecutor{
		Outputs: map[string][]byte{"uv": []byte("/home/user/.venv/bin/python3\n")},
	}
	r := NewResolver(exec, "uv", false, zerolog.Nop())

	path, err := r.Resolve(context.Background(), "/proj/fetch.py")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/.venv/bin/python3", path)

	require.Len(t, exec.Commands, 1)
	assert.Equal(t, "uv", exec.Commands[0].Cmd)
	assert.Equal(t, []string{"python", "find", "--script", "/proj/fetch.py"}, exec.Commands[0].Args)
	assert.Equal(t, "/proj", exec.Commands[0].Dir)
}

func TestResolver_SyncBeforeFind(t *testing.T) {
	exec := &executil.RecordingExecutor{
		Outputs: map[string][]byte{"uv": []byte("/usr/bin/python3\n")},
	}
	r := NewResolver(exec, "uv", true, zerolog.Nop())

	path, err := r.Resolve(context.Background(), "/proj/fetch.py")
	require.NoError(t, err)
	assert.Equal(t, "/usr/bin/python3", path)

	require.Len(t, exec.Commands, 2)
	assert.Equal(t, []string{"sync", "--script", "/proj/fetch.py"}, exec.Commands[0].Args)
	assert.Equal(t, []string{"python", "find", "--script", "/proj/fetch.py"}, exec.Commands[1].Args)
}

func TestResolver_SyncFailureShortCircuits(t *testing.T) {
	exec := &executil.RecordingExecutor{
		Errors: map[string]error{"uv": errors.New("no network")},
	}
	r := NewResolver(exec, "uv", true, zerolog.Nop())

	_, err := r.Resolve(context.Background(), "/proj/fetch.py")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sync script environment")

	// The find step never ran.
	require.Len(t, exec.Commands, 1)
	assert.Equal(t, []string{"sync", "--script", "/proj/fetch.py"}, exec.Commands[0].Args)
}

func TestResolver_EmptyOutput(t *testing.T) {
	exec := &executil.RecordingExecutor{
		Outputs: map[string][]byte{"uv": []byte("  \n\n")},
	}
	r := NewResolver(exec, "uv", false, zerolog.Nop())

	_, err := r.Resolve(context.Background(), "/proj/fetch.py")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no path")
}

func TestResolver_CustomUVPath(t *testing.T) {
	exec := &executil.RecordingExecutor{
		Outputs: map[string][]byte{"/opt/uv/bin/uv": []byte("/usr/bin/python3\n")},
	}
	r := NewResolver(exec, "/opt/uv/bin/uv", false, zerolog.Nop())

	_, err := r.Resolve(context.Background(), "/proj/fetch.py")
	require.NoError(t, err)
	assert.Equal(t, "/opt/uv/bin/uv", exec.Commands[0].Cmd)
}

func TestThen_ShortCircuit(t *testing.T) {
	boom := errors.New("boom")

	res := Then(Fail[int](boom), func(v int) Result[string] {
		t.Fatal("step ran after a failure")
		return Ok("")
	})

	require.ErrorIs(t, res.Err, boom)
}

func TestThen_Chains(t *testing.T) {
	res := Then(Ok(2), func(v int) Result[string] {
		return Ok(fmt.Sprintf("value=%d", v))
	})

	require.NoError(t, res.Err)
	assert.Equal(t, "value=2", res.Value)
}
