package editorcfg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/colonyops/scriptmeta/internal/core/config"
)

// ErrNoTarget is returned when a script has no enclosing workspace and no
// global settings fallback is configured.
var ErrNoTarget = errors.New("no settings target: script has no workspace root and editor.global_settings is not set")

// Settings writes interpreter paths into an editor settings file.
type Settings struct {
	cfg    config.EditorConfig
	logger zerolog.Logger
}

// NewSettings creates a settings writer from editor configuration.
func NewSettings(cfg config.EditorConfig, logger zerolog.Logger) *Settings {
	return &Settings{cfg: cfg, logger: logger}
}

// TargetFor resolves the settings file that governs scriptPath: the
// workspace-relative settings file when a workspace root is found, otherwise
// the configured global settings file.
func (s *Settings) TargetFor(scriptPath string) (string, error) {
	dir := filepath.Dir(scriptPath)
	if root, ok := FindRoot(dir, s.cfg.RootMarkers); ok {
		return filepath.Join(root, filepath.FromSlash(s.cfg.SettingsFile)), nil
	}

	if s.cfg.GlobalSettings != "" {
		return s.cfg.GlobalSettings, nil
	}

	return "", ErrNoTarget
}

// SetInterpreter records interpreter as the value of the configured settings
// key in the file governing scriptPath. The update is surgical: all other
// content in the file is preserved, and an already-correct value is left
// untouched. Returns the settings file path and whether a write happened.
func (s *Settings) SetInterpreter(scriptPath, interpreter string) (string, bool, error) {
	target, err := s.TargetFor(scriptPath)
	if err != nil {
		return "", false, err
	}

	raw, err := os.ReadFile(target)
	if err != nil {
		if !os.IsNotExist(err) {
			return target, false, fmt.Errorf("read settings: %w", err)
		}
		raw = []byte("{}\n")
	}

	key := escapeKey(s.cfg.InterpreterKey)

	current := gjson.GetBytes(raw, key)
	if current.Type == gjson.String && current.Str == interpreter {
		s.logger.Debug().Str("file", target).Msg("interpreter already set")
		return target, false, nil
	}

	updated, err := sjson.SetBytes(raw, key, interpreter)
	if err != nil {
		return target, false, fmt.Errorf("update settings key: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return target, false, fmt.Errorf("create settings dir: %w", err)
	}

	if err := os.WriteFile(target, updated, 0o644); err != nil {
		return target, false, fmt.Errorf("write settings: %w", err)
	}

	s.logger.Info().
		Str("file", target).
		Str("interpreter", interpreter).
		Msg("updated editor settings")

	return target, true, nil
}

// escapeKey makes a dotted settings key (e.g. "python.defaultInterpreterPath")
// address a single top-level JSON property instead of a nested path.
func escapeKey(key string) string {
	return strings.ReplaceAll(key, ".", `\.`)
}
