package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/colonyops/scriptmeta/internal/core/config"
	"github.com/colonyops/scriptmeta/pkg/executil"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config

	// Exec runs external processes (uv). Tests swap in a recorder.
	Exec executil.Executor
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "scriptmeta", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/scriptmeta/scriptmeta.log
// On Linux: $XDG_STATE_HOME/scriptmeta/scriptmeta.log (defaults to ~/.local/state/scriptmeta/scriptmeta.log)
func DefaultLogFile() string {
	// Check XDG_STATE_HOME first (works on both macOS and Linux)
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "scriptmeta", "scriptmeta.log")
	}

	home, _ := os.UserHomeDir()

	// On macOS, use ~/Library/Logs
	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "scriptmeta", "scriptmeta.log")
	}

	// On Linux, use ~/.local/state
	return filepath.Join(home, ".local", "state", "scriptmeta", "scriptmeta.log")
}
