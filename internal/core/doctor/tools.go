package doctor

import (
	"context"
	"os/exec"
	"strings"

	"github.com/colonyops/scriptmeta/pkg/executil"
)

// lookPathFunc is the function used to find executables on PATH.
// Package-level variable to allow test overrides.
var lookPathFunc = exec.LookPath

// ToolsCheck verifies that uv is available and reports its version.
type ToolsCheck struct {
	uvPath string
	exec   executil.Executor
}

// NewToolsCheck creates a tools check for the configured uv binary.
func NewToolsCheck(uvPath string, exec executil.Executor) *ToolsCheck {
	return &ToolsCheck{uvPath: uvPath, exec: exec}
}

func (c *ToolsCheck) Name() string {
	return "Tools"
}

func (c *ToolsCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	path, err := lookPathFunc(c.uvPath)
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "uv",
			Status: StatusFail,
			Detail: "not found on PATH (https://docs.astral.sh/uv/)",
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "uv",
		Status: StatusPass,
		Detail: path,
	})

	out, err := c.exec.Output(ctx, "", c.uvPath, "--version")
	if err != nil {
		result.Items = append(result.Items, CheckItem{
			Label:  "uv --version",
			Status: StatusWarn,
			Detail: err.Error(),
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "uv --version",
		Status: StatusPass,
		Detail: strings.TrimSpace(string(out)),
	})

	return result
}
