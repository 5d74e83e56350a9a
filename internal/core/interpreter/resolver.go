// Package interpreter resolves the Python interpreter for a metadata-carrying
// script by shelling out to uv.
package interpreter

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/colonyops/scriptmeta/pkg/executil"
)

// Resolver shells out to uv to locate the interpreter for a script.
type Resolver struct {
	exec      executil.Executor
	uvPath    string
	syncFirst bool
	logger    zerolog.Logger
}

// NewResolver creates a resolver. When syncFirst is set, `uv sync --script`
// runs before the find step so the script environment exists.
func NewResolver(exec executil.Executor, uvPath string, syncFirst bool, logger zerolog.Logger) *Resolver {
	return &Resolver{
		exec:      exec,
		uvPath:    uvPath,
		syncFirst: syncFirst,
		logger:    logger,
	}
}

// Resolve returns the interpreter path for scriptPath. The sync and find
// steps run in order; the find step never runs when sync fails.
func (r *Resolver) Resolve(ctx context.Context, scriptPath string) (string, error) {
	res := Then(Ok(scriptPath), func(path string) Result[string] {
		return r.sync(ctx, path)
	})
	res = Then(res, func(path string) Result[string] {
		return r.find(ctx, path)
	})

	if res.Err != nil {
		return "", res.Err
	}
	return res.Value, nil
}

func (r *Resolver) sync(ctx context.Context, scriptPath string) Result[string] {
	if !r.syncFirst {
		return Ok(scriptPath)
	}

	r.logger.Debug().Str("script", scriptPath).Msg("syncing script environment")
	if err := r.exec.Run(ctx, filepath.Dir(scriptPath), r.uvPath, "sync", "--script", scriptPath); err != nil {
		return Fail[string](fmt.Errorf("sync script environment: %w", err))
	}
	return Ok(scriptPath)
}

func (r *Resolver) find(ctx context.Context, scriptPath string) Result[string] {
	out, err := r.exec.Output(ctx, filepath.Dir(scriptPath), r.uvPath, "python", "find", "--script", scriptPath)
	if err != nil {
		return Fail[string](fmt.Errorf("find interpreter: %w", err))
	}

	path := firstLine(string(out))
	if path == "" {
		return Fail[string](fmt.Errorf("find interpreter: uv returned no path for %s", scriptPath))
	}

	r.logger.Debug().Str("script", scriptPath).Str("interpreter", path).Msg("resolved interpreter")
	return Ok(path)
}

// firstLine returns the first non-empty trimmed line of s.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
