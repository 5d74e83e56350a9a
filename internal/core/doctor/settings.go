package doctor

import (
	"context"
	"os"
	"path/filepath"

	"github.com/colonyops/scriptmeta/internal/core/config"
	"github.com/colonyops/scriptmeta/internal/core/editorcfg"
)

// SettingsCheck verifies that a settings target exists for the current
// directory and is writable.
type SettingsCheck struct {
	cfg config.EditorConfig
	cwd string
}

// NewSettingsCheck creates a settings check anchored at cwd.
func NewSettingsCheck(cfg config.EditorConfig, cwd string) *SettingsCheck {
	return &SettingsCheck{cfg: cfg, cwd: cwd}
}

func (c *SettingsCheck) Name() string {
	return "Editor settings"
}

func (c *SettingsCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}

	root, ok := editorcfg.FindRoot(c.cwd, c.cfg.RootMarkers)
	if !ok {
		if c.cfg.GlobalSettings == "" {
			result.Items = append(result.Items, CheckItem{
				Label:  "workspace root",
				Status: StatusWarn,
				Detail: "no root marker found and editor.global_settings is not set",
			})
			return result
		}

		result.Items = append(result.Items, CheckItem{
			Label:  "workspace root",
			Status: StatusPass,
			Detail: "none; falling back to " + c.cfg.GlobalSettings,
		})
		return result
	}

	result.Items = append(result.Items, CheckItem{
		Label:  "workspace root",
		Status: StatusPass,
		Detail: root,
	})

	target := filepath.Join(root, filepath.FromSlash(c.cfg.SettingsFile))
	item := CheckItem{Label: c.cfg.SettingsFile}
	switch _, err := os.Stat(target); {
	case err == nil:
		item.Status = StatusPass
		item.Detail = target
	case os.IsNotExist(err):
		item.Status = StatusPass
		item.Detail = "will be created on first sync"
	default:
		item.Status = StatusFail
		item.Detail = err.Error()
	}
	result.Items = append(result.Items, item)

	return result
}
