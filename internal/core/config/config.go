// Package config handles configuration loading and validation for scriptmeta.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	UV        UVConfig            `yaml:"uv"`
	Editor    EditorConfig        `yaml:"editor"`
	Watch     WatchConfig         `yaml:"watch"`
	Templates map[string]Template `yaml:"templates"`
}

// UVConfig controls how the uv binary is invoked.
type UVConfig struct {
	// Path is the uv executable name or absolute path.
	Path string `yaml:"path"`
	// SyncBeforeFind runs `uv sync --script` before resolving the
	// interpreter so the script environment exists.
	SyncBeforeFind bool `yaml:"sync_before_find"`
}

// EditorConfig controls where resolved interpreter paths are persisted.
type EditorConfig struct {
	// SettingsFile is the workspace-relative settings path.
	SettingsFile string `yaml:"settings_file"`
	// InterpreterKey is the settings key that receives the interpreter path.
	InterpreterKey string `yaml:"interpreter_key"`
	// RootMarkers are directory entries that identify a workspace root when
	// walking up from a script's location.
	RootMarkers []string `yaml:"root_markers"`
	// GlobalSettings is the fallback settings file used when no workspace
	// root is found. Empty disables the fallback.
	GlobalSettings string `yaml:"global_settings"`
}

// WatchConfig controls watch mode.
type WatchConfig struct {
	// Globs select which files trigger the sync pipeline.
	Globs []string `yaml:"globs"`
	// Debounce coalesces rapid events per file.
	Debounce time.Duration `yaml:"debounce"`
}

// Template defines a script scaffold rendered by the new command.
type Template struct {
	Description string `yaml:"description"`
	// Content is the full script body as a Go template.
	Content string `yaml:"content"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UV: UVConfig{
			Path:           "uv",
			SyncBeforeFind: false,
		},
		Editor: EditorConfig{
			SettingsFile:   ".vscode/settings.json",
			InterpreterKey: "python.defaultInterpreterPath",
			RootMarkers:    []string{".vscode", ".git"},
		},
		Watch: WatchConfig{
			Globs:    []string{"**/*.py"},
			Debounce: 200 * time.Millisecond,
		},
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.UV.Path == "" {
		c.UV.Path = defaults.UV.Path
	}
	if c.Editor.SettingsFile == "" {
		c.Editor.SettingsFile = defaults.Editor.SettingsFile
	}
	if c.Editor.InterpreterKey == "" {
		c.Editor.InterpreterKey = defaults.Editor.InterpreterKey
	}
	if len(c.Editor.RootMarkers) == 0 {
		c.Editor.RootMarkers = defaults.Editor.RootMarkers
	}
	if len(c.Watch.Globs) == 0 {
		c.Watch.Globs = defaults.Watch.Globs
	}
	if c.Watch.Debounce <= 0 {
		c.Watch.Debounce = defaults.Watch.Debounce
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.UV.Path == "" {
		return fmt.Errorf("uv.path cannot be empty")
	}

	if c.Editor.SettingsFile == "" {
		return fmt.Errorf("editor.settings_file cannot be empty")
	}

	if c.Editor.InterpreterKey == "" {
		return fmt.Errorf("editor.interpreter_key cannot be empty")
	}

	for _, glob := range c.Watch.Globs {
		if !doublestar.ValidatePattern(glob) {
			return fmt.Errorf("watch.globs: invalid pattern %q", glob)
		}
	}

	for name, tmpl := range c.Templates {
		if err := tmpl.Validate(name); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks that a template definition is valid.
func (t *Template) Validate(name string) error {
	if t.Content == "" {
		return fmt.Errorf("template %q: content is required", name)
	}
	return nil
}
