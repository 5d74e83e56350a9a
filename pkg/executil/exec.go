// Package executil provides process execution utilities.
package executil

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

const maxStderrLen = 500

// limitedWriter caps writes to a bytes.Buffer at a maximum byte count.
// Bytes beyond the limit are silently discarded.
type limitedWriter struct {
	buf *bytes.Buffer
	n   int64
	max int64
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.n >= w.max {
		return len(p), nil
	}
	remaining := w.max - w.n
	origLen := len(p)
	if int64(origLen) > remaining {
		p = p[:remaining]
	}
	n, err := w.buf.Write(p)
	w.n += int64(n)
	if err != nil {
		return n, err
	}
	return origLen, nil
}

// Executor runs external commands.
type Executor interface {
	// Output executes a command and returns its stdout. Stderr is captured
	// separately and folded into the error on failure, so stdout stays
	// parseable.
	Output(ctx context.Context, dir, cmd string, args ...string) ([]byte, error)
	// Run executes a command for its side effects, discarding stdout.
	Run(ctx context.Context, dir, cmd string, args ...string) error
}

// RealExecutor calls actual commands via os/exec.
type RealExecutor struct{}

// Output executes a command and returns its stdout. The empty dir inherits
// the current working directory.
// On failure, stderr is included in the error message, capped at 500 bytes to
// prevent large or ANSI-polluted output from corrupting logs. The original
// *exec.ExitError is preserved via wrapping so callers can inspect exit codes
// with errors.As.
func (e *RealExecutor) Output(ctx context.Context, dir, cmd string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, cmd, args...)
	if dir != "" {
		c.Dir = dir
	}

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &limitedWriter{buf: &stderr, max: maxStderrLen}

	if err := c.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout.Bytes(), fmt.Errorf("exec %s: %s: %w", cmd, msg, err)
		}
		return stdout.Bytes(), fmt.Errorf("exec %s: %w", cmd, err)
	}

	return stdout.Bytes(), nil
}

// Run executes a command, discarding stdout.
func (e *RealExecutor) Run(ctx context.Context, dir, cmd string, args ...string) error {
	_, err := e.Output(ctx, dir, cmd, args...)
	return err
}
